package cmd

import (
	"github.com/shouni/gemini-cinema-kit/internal/builder"
	"github.com/shouni/gemini-cinema-kit/internal/runner"

	"github.com/spf13/cobra"
)

// chatCmd は、CineBot との対話セッションを開始するサブコマンドです。
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "撮影技術に詳しい CineBot と対話します。",
	Long: `映画制作、写真撮影、ARRI などのシネマカメラの技術的な側面に
特化したアシスタント CineBot との対話セッションを開始します。
会話の文脈はセッション中保持されます。`,
	RunE: chatCommand,
}

func chatCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg := loadConfig()

	appCtx, err := builder.SetupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	manager, err := builder.BuildChatManager(appCtx)
	if err != nil {
		return err
	}

	r := runner.NewChatRunner(manager, cmd.InOrStdin(), cmd.OutOrStdout())
	return r.Run(ctx, "cli")
}
