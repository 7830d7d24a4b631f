package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/gemini-cinema-kit/pkg/imgutil"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

const (
	UseImageCompression     = true
	ImageCompressionQuality = 75

	// maxInlinePayloadBytes を超えるペイロードはインライン送信前にJPEGへ圧縮します。
	maxInlinePayloadBytes = 4 << 20

	cacheKeyPayload = "payload:"
)

// CinemaCore はペイロード解決・パーツ変換・レスポンス解析の共通基盤です。
// 各リクエストは不変の入力から自前のペイロードを組み立てるため、共有の
// 可変バッファは持ちません。
type CinemaCore struct {
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      PayloadCacher
	expiration time.Duration
}

// NewCinemaCore は依存関係を注入して CinemaCore を初期化します。
// reader は gs:// を扱わない構成では nil を許容します。cache も nil を
// 許容します（キャッシュなし動作）。
func NewCinemaCore(reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache PayloadCacher, cacheTTL time.Duration) (*CinemaCore, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}

	return &CinemaCore{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// ResolvePayload は参照文字列をデコード済みペイロードへ解決します。
// データURI、gs:// URI、http(s) URL、ローカルパスの順に判定します。
// http(s) は SSRF 検証とキャッシュを通します。
func (c *CinemaCore) ResolvePayload(ctx context.Context, ref string) (*domain.ImagePayload, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("画像の参照が空です")
	}

	if imgutil.IsDataURI(ref) {
		data, mime, err := imgutil.ParseDataURI(ref)
		if err != nil {
			return nil, err
		}
		return &domain.ImagePayload{Data: data, MIMEType: mime}, nil
	}

	if strings.HasPrefix(ref, "gs://") {
		if c.reader == nil {
			return nil, fmt.Errorf("gs:// の読み込みに必要なリーダーが構成されていません: %s", ref)
		}
		rc, err := c.reader.Open(ctx, ref)
		if err != nil {
			return nil, fmt.Errorf("gs:// の読み込みに失敗しました: %w", err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, err
		}
		return payloadFromBytes(data), nil
	}

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return c.fetchRemotePayload(ctx, ref)
	}

	// それ以外はローカルファイルとして扱います。
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("ローカル画像の読み込みに失敗しました: %w", err)
	}
	return payloadFromBytes(data), nil
}

func (c *CinemaCore) fetchRemotePayload(ctx context.Context, rawURL string) (*domain.ImagePayload, error) {
	if c.cache != nil {
		if val, ok := c.cache.Get(cacheKeyPayload + rawURL); ok {
			if data, ok := val.([]byte); ok {
				return payloadFromBytes(data), nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", rawURL, "type", fmt.Sprintf("%T", val))
		}
	}

	if safe, err := isSafeURL(rawURL); err != nil || !safe {
		return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
	}

	data, err := c.httpClient.FetchBytes(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("参照画像のダウンロードに失敗しました: %w", err)
	}

	if c.cache != nil {
		c.cache.Set(cacheKeyPayload+rawURL, data, c.expiration)
	}
	return payloadFromBytes(data), nil
}

// ToPart はペイロードを genai.Part (InlineData) に変換します。MIME が
// 画像でない場合は nil を返します。インライン上限を超えるデータは
// JPEG に圧縮してから詰めます。
func (c *CinemaCore) ToPart(p domain.ImagePayload) *genai.Part {
	if p.IsEmpty() {
		return nil
	}

	data := p.Data
	mimeType := p.MIMEType
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		slog.Warn("MIMEタイプが画像ではないためPartに変換できませんでした", "detected_mime_type", mimeType)
		return nil
	}

	if UseImageCompression && len(data) > maxInlinePayloadBytes {
		if compressed, err := imgutil.CompressToJPEG(data, ImageCompressionQuality); err == nil {
			data = compressed
			mimeType = "image/jpeg"
		}
	}

	return &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: mimeType,
			Data:     data,
		},
	}
}

// ParseToResponse は Gemini のレスポンスを走査し、最初にインライン画像
// データを持つパーツを抽出します。呼び出し自体は成功したのに画像が無い
// 場合は通信失敗と区別して domain.ErrNoImageProduced を返します。
func (c *CinemaCore) ParseToResponse(resp *gemini.Response) (*domain.TransformResult, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, fmt.Errorf("Geminiからの有効な応答がありませんでした: %w", domain.ErrNoImageProduced)
	}

	// 現在の仕様では、Geminiからの最初の候補 (Candidate) のみを利用する。
	candidate := resp.RawResponse.Candidates[0]

	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &domain.TransformResult{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
					DataURI:  imgutil.FormatPNGDataURI(part.InlineData.Data),
				}, nil
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, fmt.Errorf("画像生成が異常終了しました (FinishReason: %s): %w", candidate.FinishReason, domain.ErrNoImageProduced)
	}

	return nil, domain.ErrNoImageProduced
}

func payloadFromBytes(data []byte) *domain.ImagePayload {
	return &domain.ImagePayload{
		Data:     data,
		MIMEType: http.DetectContentType(data),
	}
}
