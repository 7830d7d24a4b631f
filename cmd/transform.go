package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-cinema-kit/internal/builder"
	"github.com/shouni/gemini-cinema-kit/internal/runner"

	"github.com/spf13/cobra"
)

// transformCmd は、1枚の画像をシネマティック・ショットへ変換するサブコマンドです。
var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "画像をシネマティックな映画ショットへ変換します。",
	Long: `ソース画像とルック・シーン指定からプロンプトを組み立て、
Gemini の画像生成で 16:9 のシネマティック・ショットを生成して保存します。`,
	RunE: transformCommand,
}

func transformCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourcePath == "" {
		return fmt.Errorf("変換元の画像（--source）を指定してください")
	}

	cfg := loadConfig()

	slog.Info("シネマティック変換を開始します",
		"look", opts.Look,
		"image_model", cfg.GeminiImageModel,
		"output", opts.OutputFile)

	appCtx, err := builder.SetupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	transformer, err := builder.BuildTransformer(appCtx)
	if err != nil {
		return err
	}
	enhancer, err := builder.BuildEnhancer(appCtx)
	if err != nil {
		return err
	}
	core, err := builder.BuildCinemaCore(appCtx)
	if err != nil {
		return err
	}

	r := runner.NewTransformRunner(transformer, enhancer, core, appCtx.Writer, cfg.Options)
	outputPath, err := r.Run(ctx)
	if err != nil {
		return fmt.Errorf("変換の実行中にエラーが発生しました: %w", err)
	}

	slog.Info("変換が完了しました", "path", outputPath)
	return nil
}
