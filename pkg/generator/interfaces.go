package generator

import (
	"context"
	"time"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// TransformCore は、変換リクエストの画像パーツ準備とレスポンス解析を
// 抽象化するインターフェースです。
type TransformCore interface {
	// ToPart は、デコード済みペイロードを genai のインラインパーツに変換します。
	ToPart(p domain.ImagePayload) *genai.Part
	// ParseToResponse は、Gemini の異種混在レスポンスから最初の画像パーツを抽出します。
	ParseToResponse(resp *gemini.Response) (*domain.TransformResult, error)
}

// PayloadResolver は、外部参照（データURI・ローカルパス・URL・gs://）を
// デコード済みペイロードへ解決するためのインターフェースです。
type PayloadResolver interface {
	ResolvePayload(ctx context.Context, ref string) (*domain.ImagePayload, error)
}

// HTTPClient は、HTTPリクエストを実行し、URLからデータを取得するためのインターフェースです。
type HTTPClient interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// PayloadCacher は、取得済みペイロードをキャッシュするためのインターフェースです。
type PayloadCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}
