package cmd

import (
	"fmt"

	"github.com/shouni/gemini-cinema-kit/internal/builder"

	"github.com/spf13/cobra"
)

// enhanceCmd は、シーン指定からAI増強済みプロンプトを生成して表示するサブコマンドです。
// 画像生成は行わないため、プロンプトの下見や他ツールへの貼り付けに使えます。
var enhanceCmd = &cobra.Command{
	Use:   "enhance",
	Short: "シーン記述をAIで撮影監督レベルの文章へ増強します。",
	RunE:  enhanceCommand,
}

func enhanceCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := loadConfig()

	appCtx, err := builder.SetupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	enhancer, err := builder.BuildEnhancer(appCtx)
	if err != nil {
		return err
	}

	enhanced, err := enhancer.EnhanceScenePrompt(ctx, opts.SceneDetails())
	if err != nil {
		return fmt.Errorf("シーン記述の増強に失敗しました: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), enhanced)
	return nil
}
