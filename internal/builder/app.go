package builder

import (
	"github.com/shouni/gemini-cinema-kit/internal/config"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// AppContext は、アプリケーション実行に必要な共通コンテキストを保持します。
// これを各Build関数に渡すことで、依存関係の注入を簡素化します。
type AppContext struct {
	Config      *config.Config          // Configは、環境変数から読み込まれたグローバルな設定です（APIキー、モデル名など）。
	Options     config.RunOptions       // Optionsは、コマンドラインから渡された実行時の設定です。
	Reader      remoteio.InputReader    // Readerは、gs:// を含む入力画像の読み込みに使用します。
	Writer      remoteio.OutputWriter   // Writerは、生成された画像を保存するための出力先です。
	aiClient    gemini.GenerativeModel  // aiClient はGeminiの生成呼び出しに使う共通クライアント
	genaiClient *genai.Client           // genaiClient はチャットセッション用のSDKクライアント
	httpClient  httpkit.ClientInterface // httpClient はリモート画像の取得に使う共通クライアント
}

// NewAppContext は AppContext の新しいインスタンスを生成します。
func NewAppContext(
	cfg *config.Config,
	httpClient httpkit.ClientInterface,
	aiClient gemini.GenerativeModel,
	genaiClient *genai.Client,
	reader remoteio.InputReader,
	writer remoteio.OutputWriter,
) AppContext {
	return AppContext{
		Config:      cfg,
		Options:     cfg.Options,
		aiClient:    aiClient,
		genaiClient: genaiClient,
		httpClient:  httpClient,
		Reader:      reader,
		Writer:      writer,
	}
}
