package domain

import "strings"

// SceneDetails は監督指示フォームの4つの自由記述欄です。すべて任意で、
// コアは読み取るだけで書き換えません。
type SceneDetails struct {
	Character string
	Clothing  string
	Action    string
	Setting   string
}

// IsEmpty は4項目すべてが空白のみかどうかを返します。
func (d SceneDetails) IsEmpty() bool {
	return strings.TrimSpace(d.Character) == "" &&
		strings.TrimSpace(d.Clothing) == "" &&
		strings.TrimSpace(d.Action) == "" &&
		strings.TrimSpace(d.Setting) == ""
}

// 会話ロールは Gemini API の role 表記に合わせます。
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatTurn は可視トランスクリプトの1発言です。コアの会話セッションは
// この並びを保持しないため、読みやすい順序は呼び出し側が要求/応答の順で
// 追記して維持します。
type ChatTurn struct {
	Role string
	Text string
}
