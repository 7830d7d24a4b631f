package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/gemini-cinema-kit/pkg/prompt"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// PromptEnhancer は簡素なシーン詳細をテキストモデルで映画的な説明文へ
// 拡張するアダプターです。変換リクエストと違い、リモート失敗は静的な
// フォールバック文へ縮退し、呼び出し側へはエラーを伝播させません
// （空入力の事前チェックのみがエラーになります）。
type PromptEnhancer struct {
	aiClient gemini.GenerativeModel
	model    string
}

// NewPromptEnhancer は依存関係を注入して PromptEnhancer を初期化します。
func NewPromptEnhancer(aiClient gemini.GenerativeModel, model string) (*PromptEnhancer, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	return &PromptEnhancer{aiClient: aiClient, model: model}, nil
}

// EnhanceScenePrompt はシーン詳細を撮影監督ペルソナのテキストモデルで
// 整形し、固定句2つ（ARRIスタイル接頭句・同一性保持制約）を規定順で
// 先頭に連結して返します。固定句はモデルに生成させず、必ずプログラム側で
// 付与します。
func (e *PromptEnhancer) EnhanceScenePrompt(ctx context.Context, details domain.SceneDetails) (string, error) {
	if details.IsEmpty() {
		return "", domain.ErrEmptyInput
	}

	parts := []*genai.Part{
		{Text: prompt.EnhancementUserMessage(details)},
	}
	opts := gemini.GenerateOptions{
		SystemPrompt: prompt.EnhancementSystemInstruction(),
	}

	resp, err := e.aiClient.GenerateWithParts(ctx, e.model, parts, opts)
	if err != nil {
		// エンハンスは低リスクな補助操作なので、失敗しても全体を止めず
		// 固定句+静的説明文へ縮退します。
		slog.WarnContext(ctx, "プロンプト強化の呼び出しに失敗したため、フォールバック文を使用します",
			"model", e.model, "error", err)
		return prompt.JoinEnhanced(""), nil
	}

	return prompt.JoinEnhanced(resp.Text), nil
}
