package prompt

import (
	"strings"
	"testing"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLook(t *testing.T, id domain.LookID) domain.LookDefinition {
	t.Helper()
	look, err := domain.FindLook(id)
	require.NoError(t, err)
	return *look
}

func TestComposeInstruction(t *testing.T) {
	details := domain.SceneDetails{
		Character: "Cyborg detective",
		Action:    "walking through rain",
	}

	t.Run("同一性保持ブロックはどの分岐でも逐語で含まれる", func(t *testing.T) {
		cases := []struct {
			name          string
			look          domain.LookID
			override      string
			details       domain.SceneDetails
			referenceMode bool
		}{
			{"ルック+詳細", domain.LookSciFiNeon, "", details, false},
			{"ルック+上書き", domain.LookDesertEpic, "Make it rain.", domain.SceneDetails{}, false},
			{"参照モード", domain.LookCustomGradient, "", domain.SceneDetails{}, true},
			{"入力なし", domain.LookSpaceOpera, "", domain.SceneDetails{}, false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got := ComposeInstruction(mustLook(t, tc.look), tc.override, tc.details, tc.referenceMode)
				assert.Contains(t, got, IdentityDirective)
			})
		}
	})

	t.Run("同じ入力からは常に同じ指示文が生成される", func(t *testing.T) {
		look := mustLook(t, domain.LookSciFiNeon)
		first := ComposeInstruction(look, "", details, false)
		second := ComposeInstruction(look, "", details, false)
		assert.Equal(t, first, second)
	})

	t.Run("定型ルックはスタイル名と技術語彙を逐語で含む", func(t *testing.T) {
		look := mustLook(t, domain.LookSciFiNeon)
		got := ComposeInstruction(look, "", details, false)

		assert.Contains(t, got, "Style Base: "+look.Name)
		assert.Contains(t, got, look.PromptModifier)
		assert.NotContains(t, got, "SECOND image")
	})

	t.Run("参照モードは2枚目画像の指示を含みルック語彙を含まない", func(t *testing.T) {
		look := mustLook(t, domain.LookCustomGradient)
		got := ComposeInstruction(look, "", domain.SceneDetails{}, true)

		assert.Contains(t, got, "SECOND image provided (the reference)")
		assert.Contains(t, got, "FIRST image (the source)")
		for _, other := range domain.Looks() {
			if other.PromptModifier == "" {
				continue
			}
			assert.NotContains(t, got, other.PromptModifier, "look %s vocabulary must not leak into reference mode", other.ID)
		}
	})

	t.Run("上書き指示は逐語で入り優先句が付く", func(t *testing.T) {
		look := mustLook(t, domain.LookDystopianMatrix)
		got := ComposeInstruction(look, "Replace the skyline with Tokyo at night", details, false)

		assert.Contains(t, got, "DIRECTOR'S SPECIFIC INSTRUCTIONS: Replace the skyline with Tokyo at night.")
		assert.Contains(t, got, "take precedence over the base style")
		assert.NotContains(t, got, "Character: Cyborg detective", "scene details must be ignored when an override is present")
	})

	t.Run("上書きがなければシーン詳細を合成する", func(t *testing.T) {
		look := mustLook(t, domain.LookPostApocalyptic)
		got := ComposeInstruction(look, "", details, false)

		assert.Contains(t, got, "Character: Cyborg detective. Action: walking through rain")
		assert.NotContains(t, got, "Clothing:", "empty fields must be omitted")
	})

	t.Run("入力が何もなければ創作バリエーション指示になる", func(t *testing.T) {
		look := mustLook(t, domain.LookSpaceOpera)
		got := ComposeInstruction(look, "", domain.SceneDetails{}, false)

		assert.Contains(t, got, "Generate a creative variation")
		assert.NotContains(t, got, "DIRECTOR'S SPECIFIC INSTRUCTIONS")
	})
}

func TestSceneDetailsClause(t *testing.T) {
	t.Run("入力済み項目だけを固定順で整形する", func(t *testing.T) {
		got := SceneDetailsClause(domain.SceneDetails{
			Setting:   "neon-lit alley",
			Character: "Cyborg detective",
		})
		assert.Equal(t, "Character: Cyborg detective. Setting: neon-lit alley", got)
	})

	t.Run("全項目空なら空文字列を返す", func(t *testing.T) {
		got := SceneDetailsClause(domain.SceneDetails{Clothing: "   "})
		assert.Empty(t, got)
	})
}

func TestJoinEnhanced(t *testing.T) {
	t.Run("固定句2つを規定順で先頭に連結する", func(t *testing.T) {
		got := JoinEnhanced("A lone figure in the rain.")

		require.True(t, strings.HasPrefix(got, MandatoryStylePrefix+". "+IdentityConstraint+". "))
		assert.True(t, strings.HasSuffix(got, "A lone figure in the rain."))
	})

	t.Run("空の説明文にはフォールバック文を使う", func(t *testing.T) {
		got := JoinEnhanced("   ")
		assert.True(t, strings.HasSuffix(got, FallbackDescription))
	})
}
