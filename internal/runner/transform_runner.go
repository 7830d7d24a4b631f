package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-cinema-kit/internal/config"
	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/gemini-cinema-kit/pkg/generator"
	"github.com/shouni/gemini-cinema-kit/pkg/imgutil"
	"github.com/shouni/gemini-cinema-kit/pkg/prompt"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// Transformer は画像変換の実行インターフェースです。テストではモックに差し替えます。
type Transformer interface {
	TransformImage(ctx context.Context, req domain.TransformRequest) (*domain.TransformResult, error)
}

// Enhancer はシーン記述をAIで増強するインターフェースです。
type Enhancer interface {
	EnhanceScenePrompt(ctx context.Context, details domain.SceneDetails) (string, error)
}

// TransformRunner は 1 枚の画像をシネマティック・ショットへ変換して保存します。
type TransformRunner struct {
	transformer Transformer
	enhancer    Enhancer
	resolver    generator.PayloadResolver
	writer      remoteio.OutputWriter
	opts        config.RunOptions
}

// NewTransformRunner は TransformRunner の新しいインスタンスを生成して返します。
func NewTransformRunner(
	transformer Transformer,
	enhancer Enhancer,
	resolver generator.PayloadResolver,
	writer remoteio.OutputWriter,
	opts config.RunOptions,
) *TransformRunner {
	return &TransformRunner{
		transformer: transformer,
		enhancer:    enhancer,
		resolver:    resolver,
		writer:      writer,
		opts:        opts,
	}
}

// Run は変換パイプライン全体（取得 → プロンプト構築 → 生成 → 保存）を実行し、
// 保存先パスを返します。
func (r *TransformRunner) Run(ctx context.Context) (string, error) {
	look, err := domain.FindLook(domain.LookID(r.opts.Look))
	if err != nil {
		return "", err
	}

	source, err := r.resolver.ResolvePayload(ctx, r.opts.SourcePath)
	if err != nil {
		return "", fmt.Errorf("ソース画像の取得に失敗しました: %w", err)
	}

	var reference *domain.ImagePayload
	if r.opts.ReferencePath != "" {
		reference, err = r.resolver.ResolvePayload(ctx, r.opts.ReferencePath)
		if err != nil {
			return "", fmt.Errorf("参照画像の取得に失敗しました: %w", err)
		}
	}

	instruction, err := r.buildInstruction(ctx, *look)
	if err != nil {
		return "", err
	}

	result, err := r.transformer.TransformImage(ctx, domain.TransformRequest{
		Source:      *source,
		LookID:      look.ID,
		Instruction: instruction,
		Reference:   reference,
		AspectRatio: generator.DefaultAspectRatio,
	})
	if err != nil {
		return "", err
	}

	outputPath := r.opts.OutputFile
	if err := r.save(ctx, outputPath, result); err != nil {
		return "", err
	}
	return outputPath, nil
}

// buildInstruction はルックとシーン指定から送信用の指示文を組み立てます。
// --enhance 指定時は、ディレクター指示をAIで増強した記述に置き換えます。
func (r *TransformRunner) buildInstruction(ctx context.Context, look domain.LookDefinition) (string, error) {
	override := r.opts.Instruction
	details := r.opts.SceneDetails()

	if r.opts.Enhance && r.enhancer != nil && !details.IsEmpty() {
		enhanced, err := r.enhancer.EnhanceScenePrompt(ctx, details)
		if err != nil {
			return "", fmt.Errorf("シーン記述の増強に失敗しました: %w", err)
		}
		slog.InfoContext(ctx, "シーン記述を増強しました", "length", len(enhanced))
		override = enhanced
	}

	return prompt.ComposeInstruction(look, override, details, look.IsReference()), nil
}

// save は生成結果を指定パスへ書き出します。--format jpg の場合は
// 透過部分を黒でマットした JPEG へ再エンコードします。
func (r *TransformRunner) save(ctx context.Context, path string, result *domain.TransformResult) error {
	if r.writer == nil {
		return fmt.Errorf("出力先が初期化されていません")
	}

	data := result.Data
	mimeType := result.MimeType
	if strings.EqualFold(r.opts.Format, "jpg") || strings.EqualFold(r.opts.Format, "jpeg") {
		converted, err := imgutil.ConvertToJPEG(data)
		if err != nil {
			return fmt.Errorf("JPEGへの変換に失敗しました: %w", err)
		}
		data = converted
		mimeType = "image/jpeg"
	}

	if err := r.writer.Write(ctx, path, bytes.NewReader(data), mimeType); err != nil {
		return fmt.Errorf("生成画像の保存に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "シネマティック・ショットを保存しました", "path", path, "mime_type", mimeType)
	return nil
}
