package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/shouni/gemini-cinema-kit/internal/config"
	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/gemini-cinema-kit/pkg/generator"
	"github.com/shouni/gemini-cinema-kit/pkg/prompt"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// BoardRunner は 1 枚のソース画像を全ルックで並列変換し、
// ルックボード（比較用の一覧）を生成します。
type BoardRunner struct {
	transformer Transformer
	resolver    generator.PayloadResolver
	writer      remoteio.OutputWriter
	opts        config.RunOptions
}

// NewBoardRunner は BoardRunner の新しいインスタンスを生成して返します。
func NewBoardRunner(
	transformer Transformer,
	resolver generator.PayloadResolver,
	writer remoteio.OutputWriter,
	opts config.RunOptions,
) *BoardRunner {
	return &BoardRunner{
		transformer: transformer,
		resolver:    resolver,
		writer:      writer,
		opts:        opts,
	}
}

// Run はソース画像を一度だけ取得し、参照ルックを除く全ルックへ並列で
// 変換を実行します。保存したファイルのパス一覧を返します。
func (r *BoardRunner) Run(ctx context.Context) ([]string, error) {
	if r.writer == nil {
		return nil, fmt.Errorf("出力先が初期化されていません")
	}

	source, err := r.resolver.ResolvePayload(ctx, r.opts.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("ソース画像の取得に失敗しました: %w", err)
	}

	// カスタムグラデーション（参照画像モード）は対象外。比較すべき
	// 固定スタイルだけを並べます。
	var targets []domain.LookDefinition
	for _, look := range domain.Looks() {
		if look.IsReference() {
			continue
		}
		targets = append(targets, look)
	}

	details := r.opts.SceneDetails()
	paths := make([]string, len(targets))
	eg, egCtx := errgroup.WithContext(ctx)

	// Burst 2 により、開始直後に2枚までは同時にリクエストを開始できます
	limiter := rate.NewLimiter(rate.Every(config.DefaultRateLimit), 2)
	slog.Info("ルックボードの並列生成を開始します", "count", len(targets), "interval", config.DefaultRateLimit)

	for i, look := range targets {
		i, look := i, look

		eg.Go(func() error {
			if err := limiter.Wait(egCtx); err != nil {
				return err
			}

			instruction := prompt.ComposeInstruction(look, r.opts.Instruction, details, false)

			slog.Info("ルックを生成中...", "look", look.ID, "name", look.Name)

			result, err := r.transformer.TransformImage(egCtx, domain.TransformRequest{
				Source:      *source,
				LookID:      look.ID,
				Instruction: instruction,
				AspectRatio: generator.DefaultAspectRatio,
			})
			if err != nil {
				slog.Error("ルックの生成に失敗しました", "look", look.ID, "error", err)
				return err
			}

			outputPath := path.Join(r.opts.OutputDir, fmt.Sprintf("%s.png", look.ID))
			if err := r.writer.Write(egCtx, outputPath, bytes.NewReader(result.Data), result.MimeType); err != nil {
				return fmt.Errorf("ルック '%s' の保存に失敗しました: %w", look.ID, err)
			}

			paths[i] = outputPath
			slog.Info("ルックの生成に成功しました", "look", look.ID, "path", outputPath)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	slog.Info("すべてのルックが正常に生成されました", "total", len(paths))
	return paths, nil
}
