package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
)

// MandatoryStylePrefix と IdentityConstraint はエンハンス結果の先頭に
// プログラム側で必ず連結する2つの固定句です。モデル自身には生成させません
// （システム指示で逐語の再現を禁止し、二重化を防ぎます）。
const (
	MandatoryStylePrefix = "Ultra detailed and hyper realistic cinematic shot filmed by an ARRI camera"
	IdentityConstraint   = "Maintain 100% facial identity and character consistency with the source reference image"

	// FallbackDescription はリモート失敗時に固定句へ添える静的な説明文です。
	FallbackDescription = "Highly detailed cinematic scene."
)

// EnhancementSystemInstruction はテキストモデルへ渡す撮影監督ペルソナの
// システム指示を返します。固定句2つの逐語再現を明示的に禁止します。
func EnhancementSystemInstruction() string {
	return fmt.Sprintf(`You are a world-class Director of Photography.
Your task is to take brief descriptions and rewrite them into a cohesive, professional cinematic prompt description.

Instructions:
1. Describe the camera angle (e.g., low angle, wide shot, close-up).
2. Describe the scene development, lighting (chiaroscuro, rim lighting), and mood.
3. Describe the texture (8k, highly detailed).
4. DO NOT include the phrase "%s" or "%s" in your output, as they will be added automatically.
5. Keep the result under 80 words.`, MandatoryStylePrefix, IdentityConstraint)
}

// EnhancementUserMessage はシーン詳細4項目をそのまま列挙するユーザー
// メッセージを組み立てます。空欄もそのまま提示します（原文どおり）。
func EnhancementUserMessage(details domain.SceneDetails) string {
	return fmt.Sprintf(`Create a cinematic description based on these details:
- Character: %s
- Clothing: %s
- Action: %s
- Setting: %s`, details.Character, details.Clothing, details.Action, details.Setting)
}

// JoinEnhanced は固定句2つとモデル生成の説明文を規定順でピリオド結合します。
// description が空のときは静的なフォールバック文を使用します。
func JoinEnhanced(description string) string {
	description = strings.TrimSpace(description)
	if description == "" {
		description = FallbackDescription
	}
	return fmt.Sprintf("%s. %s. %s", MandatoryStylePrefix, IdentityConstraint, description)
}
