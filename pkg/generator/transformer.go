package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// DefaultAspectRatio はリクエストで未指定の場合に使う固定のアスペクト比です。
const DefaultAspectRatio = "16:9"

// CinemaTransformer は画像変換リクエストの組み立てと実行を担うアダプターです。
// 送信は1回きりで、失敗しても自動リトライは行いません（再試行は呼び出し側の判断）。
type CinemaTransformer struct {
	imgCore  TransformCore
	aiClient gemini.GenerativeModel
	model    string
}

// NewCinemaTransformer は依存関係を注入して CinemaTransformer を初期化します。
func NewCinemaTransformer(core TransformCore, aiClient gemini.GenerativeModel, model string) (*CinemaTransformer, error) {
	if core == nil {
		return nil, fmt.Errorf("core (TransformCore) is required")
	}
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (gemini.GenerativeModel) is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}

	return &CinemaTransformer{
		imgCore:  core,
		aiClient: aiClient,
		model:    model,
	}, nil
}

// TransformImage は順序付きマルチパート（ソース画像 → 参照画像（任意） →
// 指示文）を組み立てて画像モデルを1回呼び出し、応答から最初の画像パーツを
// 抽出して返します。事前条件の違反はネットワークに触れる前に検出します。
func (t *CinemaTransformer) TransformImage(ctx context.Context, req domain.TransformRequest) (*domain.TransformResult, error) {
	look, err := domain.FindLook(req.LookID)
	if err != nil {
		return nil, err
	}

	if req.Source.IsEmpty() {
		return nil, fmt.Errorf("ソース画像が空です")
	}
	if strings.TrimSpace(req.Instruction) == "" {
		return nil, fmt.Errorf("指示文が空です")
	}
	if look.IsReference() && (req.Reference == nil || req.Reference.IsEmpty()) {
		return nil, domain.ErrMissingReferenceImage
	}

	// パーツは順序が契約: ソース画像、（あれば）参照画像、指示テキストの順。
	parts := []*genai.Part{}
	if srcPart := t.imgCore.ToPart(req.Source); srcPart != nil {
		parts = append(parts, srcPart)
	} else {
		return nil, fmt.Errorf("ソース画像をパーツに変換できませんでした")
	}

	if look.IsReference() {
		refPart := t.imgCore.ToPart(*req.Reference)
		if refPart == nil {
			return nil, fmt.Errorf("参照画像をパーツに変換できませんでした")
		}
		parts = append(parts, refPart)
	}

	parts = append(parts, &genai.Part{Text: req.Instruction})

	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = DefaultAspectRatio
	}

	slog.Info("画像変換リクエストを送信します",
		"model", t.model,
		"look", look.ID,
		"reference_mode", look.IsReference(),
		"total_parts", len(parts),
	)

	opts := gemini.GenerateOptions{
		AspectRatio: aspectRatio,
	}

	resp, err := t.aiClient.GenerateWithParts(ctx, t.model, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像変換の呼び出しに失敗しました: %w", err)
	}

	out, err := t.imgCore.ParseToResponse(resp)
	if err != nil {
		return nil, err
	}

	return out, nil
}
