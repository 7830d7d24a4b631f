package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/gemini-cinema-kit/internal/config"
	"github.com/shouni/gemini-cinema-kit/pkg/domain"

	"github.com/spf13/cobra"
)

// opts は全サブコマンドで共有する実行時パラメータです。
var opts config.RunOptions

// rootCmd はアプリケーションのルートコマンドです。
var rootCmd = &cobra.Command{
	Use:   "cinema-kit",
	Short: "写真をシネマティックな映画ショットへ変換するGemini製ツールキットです。",
	Long: `ソース画像とシーン指定（ルック、キャラクター、衣装、動作、舞台）から
プロンプトを組み立て、Gemini の画像生成で 16:9 のシネマティック・ショットを
生成します。撮影技術について相談できる CineBot チャットも備えています。`,
	SilenceUsage:      true,
	PersistentPreRunE: preRunAppE,
}

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義します。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.SourcePath, "source", "s", "", "変換元の画像（ローカルパス / URL / gs:// / data URI）です。")
	rootCmd.PersistentFlags().StringVarP(&opts.ReferencePath, "reference", "r", "", "カラーグレーディングの参照画像です（custom-gradient ルックで必須）。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFile, "output-file", "o", config.DefaultOutputFile, "保存パス（ローカル or gs://...）です。")
	rootCmd.PersistentFlags().StringVar(&opts.Format, "format", "png", "出力フォーマット（png または jpg）です。")

	// --- シーン指定関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Look, "look", "l", string(domain.LookSciFiNeon), "適用するシネマティック・ルックのIDです。")
	rootCmd.PersistentFlags().StringVar(&opts.Instruction, "instruction", "", "自由記述のディレクター指示です（シーン指定フラグより優先）。")
	rootCmd.PersistentFlags().StringVar(&opts.Character, "character", "", "キャラクターの描写です。")
	rootCmd.PersistentFlags().StringVar(&opts.Clothing, "clothing", "", "衣装の描写です。")
	rootCmd.PersistentFlags().StringVar(&opts.Action, "action", "", "動作の描写です。")
	rootCmd.PersistentFlags().StringVar(&opts.Setting, "setting", "", "舞台・環境の描写です。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.TextModel, "model", config.DefaultTextModel, "テキスト生成に使用する Gemini モデル名です。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "画像生成に使用する Gemini モデル名です。")
	rootCmd.PersistentFlags().BoolVar(&opts.Enhance, "enhance", false, "送信前にシーン記述をAIで増強します。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトです。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行います。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// looks コマンドはAPIを使わないため、キーなしでも実行を許可します
	if cmd.Name() == "looks" {
		return nil
	}
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須です")
	}
	return nil
}

// Execute は、アプリケーションのメインエントリポイントです。
// main.go から呼び出されて、cobra のコマンドライン解析を開始します。
func Execute() {
	addAppFlags(rootCmd)
	rootCmd.AddCommand(
		transformCmd,
		boardCmd,
		enhanceCmd,
		chatCmd,
		looksCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig は環境変数からの設定とCLIフラグをマージして返します。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.GeminiTextModel = opts.TextModel
	cfg.GeminiImageModel = opts.ImageModel
	cfg.Options = opts
	return cfg
}
