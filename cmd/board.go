package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-cinema-kit/internal/builder"
	"github.com/shouni/gemini-cinema-kit/internal/config"
	"github.com/shouni/gemini-cinema-kit/internal/runner"

	"github.com/spf13/cobra"
)

// boardCmd は、1枚のソース画像を全ルックで変換して見比べるためのサブコマンドです。
var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "全ルックで変換したルックボードを生成します。",
	Long: `ソース画像を参照ルックを除くすべてのシネマティック・ルックで並列変換し、
ルックごとのファイルとして保存します。スタイル選びの比較に便利です。`,
	RunE: boardCommand,
}

func init() {
	boardCmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "d", config.DefaultBoardDir, "生成された画像を保存するディレクトリ（ローカル or gs://...）です。")
}

func boardCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.SourcePath == "" {
		return fmt.Errorf("変換元の画像（--source）を指定してください")
	}

	cfg := loadConfig()

	appCtx, err := builder.SetupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	transformer, err := builder.BuildTransformer(appCtx)
	if err != nil {
		return err
	}
	core, err := builder.BuildCinemaCore(appCtx)
	if err != nil {
		return err
	}

	r := runner.NewBoardRunner(transformer, core, appCtx.Writer, cfg.Options)
	paths, err := r.Run(ctx)
	if err != nil {
		return fmt.Errorf("ルックボードの生成中にエラーが発生しました: %w", err)
	}

	slog.Info("ルックボードが完成しました", "count", len(paths), "dir", opts.OutputDir)
	return nil
}
