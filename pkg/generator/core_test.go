package generator

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 注意: mockAIClient, mockReader, mockHTTPClient, mockCache は
// mocks_test.go で定義されているため、ここでは定義不要です。

func TestCinemaCore_ResolvePayload(t *testing.T) {
	ctx := context.Background()

	t.Run("データURIはデコードしてMIMEを保持する", func(t *testing.T) {
		core, err := NewCinemaCore(nil, &mockHTTPClient{}, nil, time.Hour)
		require.NoError(t, err)

		raw := []byte("fake-jpeg-binary")
		uri := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(raw)

		payload, err := core.ResolvePayload(ctx, uri)

		require.NoError(t, err)
		assert.Equal(t, raw, payload.Data)
		assert.Equal(t, "image/jpeg", payload.MIMEType)
	})

	t.Run("空の参照はエラーになる", func(t *testing.T) {
		core, _ := NewCinemaCore(nil, &mockHTTPClient{}, nil, time.Hour)

		_, err := core.ResolvePayload(ctx, "   ")
		assert.Error(t, err)
	})

	t.Run("gs:// はリーダー未構成だとエラーになる", func(t *testing.T) {
		core, _ := NewCinemaCore(nil, &mockHTTPClient{}, nil, time.Hour)

		_, err := core.ResolvePayload(ctx, "gs://bucket/photo.png")
		assert.Error(t, err)
	})

	t.Run("gs:// はリーダー経由で読み込む", func(t *testing.T) {
		reader := &mockReader{data: []byte("gcs-image-binary")}
		core, _ := NewCinemaCore(reader, &mockHTTPClient{}, nil, time.Hour)

		payload, err := core.ResolvePayload(ctx, "gs://bucket/photo.png")

		require.NoError(t, err)
		assert.Equal(t, []byte("gcs-image-binary"), payload.Data)
	})
}

func TestCinemaCore_FetchRemotePayload(t *testing.T) {
	ctx := context.Background()

	t.Run("キャッシュがない場合はダウンロードして保存する", func(t *testing.T) {
		cache := &mockCache{data: make(map[string]any)}
		httpMock := &mockHTTPClient{data: []byte("remote-image-binary")}
		core, err := NewCinemaCore(nil, httpMock, cache, time.Hour)
		require.NoError(t, err)

		fileURL := "https://example.com/test.png"
		payload, err := core.ResolvePayload(ctx, fileURL)

		require.NoError(t, err)
		assert.Equal(t, 1, httpMock.fetchCalls)
		assert.Equal(t, []byte("remote-image-binary"), payload.Data)

		cached, ok := cache.Get(cacheKeyPayload + fileURL)
		assert.True(t, ok, "should be cached")
		assert.Equal(t, payload.Data, cached)
	})

	t.Run("キャッシュがある場合はダウンロードをスキップする", func(t *testing.T) {
		cache := &mockCache{data: make(map[string]any)}
		httpMock := &mockHTTPClient{data: []byte("should-not-be-fetched")}
		core, _ := NewCinemaCore(nil, httpMock, cache, time.Hour)

		fileURL := "https://example.com/cached.png"
		cache.Set(cacheKeyPayload+fileURL, []byte("cached-binary"), time.Hour)

		payload, err := core.ResolvePayload(ctx, fileURL)

		require.NoError(t, err)
		assert.Zero(t, httpMock.fetchCalls, "FetchBytes should NOT be called when cached")
		assert.Equal(t, []byte("cached-binary"), payload.Data)
	})
}

func TestCinemaCore_ToPart(t *testing.T) {
	core, err := NewCinemaCore(nil, &mockHTTPClient{}, nil, time.Hour)
	require.NoError(t, err)

	t.Run("空のペイロードはnilになる", func(t *testing.T) {
		part := core.ToPart(domain.ImagePayload{})
		assert.Nil(t, part)
	})

	t.Run("画像以外のMIMEはnilになる", func(t *testing.T) {
		part := core.ToPart(domain.ImagePayload{
			Data:     []byte("<html>not an image</html>"),
			MIMEType: "text/html",
		})
		assert.Nil(t, part)
	})

	t.Run("画像データはInlineDataに変換される", func(t *testing.T) {
		part := core.ToPart(domain.ImagePayload{
			Data:     []byte("fake-png-binary"),
			MIMEType: "image/png",
		})

		require.NotNil(t, part)
		require.NotNil(t, part.InlineData)
		assert.Equal(t, "image/png", part.InlineData.MIMEType)
		assert.Equal(t, []byte("fake-png-binary"), part.InlineData.Data)
	})
}

func TestCinemaCore_ParseToResponse(t *testing.T) {
	core, err := NewCinemaCore(nil, &mockHTTPClient{}, nil, time.Hour)
	require.NoError(t, err)

	t.Run("インライン画像からDataURIを生成する", func(t *testing.T) {
		resp := imageResponse([]byte("generated-image"))

		result, err := core.ParseToResponse(resp)

		require.NoError(t, err)
		assert.Equal(t, []byte("generated-image"), result.Data)
		assert.Equal(t, "image/png", result.MimeType)
		expected := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("generated-image"))
		assert.Equal(t, expected, result.DataURI)
	})

	t.Run("nilレスポンスはErrNoImageProducedになる", func(t *testing.T) {
		_, err := core.ParseToResponse(nil)
		assert.ErrorIs(t, err, domain.ErrNoImageProduced)
	})

	t.Run("候補が空の場合はErrNoImageProducedになる", func(t *testing.T) {
		_, err := core.ParseToResponse(&gemini.Response{
			RawResponse: &genai.GenerateContentResponse{},
		})
		assert.ErrorIs(t, err, domain.ErrNoImageProduced)
	})

	t.Run("テキストのみの応答はErrNoImageProducedになる", func(t *testing.T) {
		resp := &gemini.Response{
			RawResponse: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{
						Parts: []*genai.Part{{Text: "I cannot process this image."}},
					},
				}},
			},
		}

		_, err := core.ParseToResponse(resp)
		assert.ErrorIs(t, err, domain.ErrNoImageProduced)
	})

	t.Run("安全フィルターによる異常終了は理由を含めて報告する", func(t *testing.T) {
		resp := &gemini.Response{
			RawResponse: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					FinishReason: genai.FinishReasonSafety,
					Content:      &genai.Content{},
				}},
			},
		}

		_, err := core.ParseToResponse(resp)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNoImageProduced)
		assert.Contains(t, err.Error(), "FinishReason")
	})
}
