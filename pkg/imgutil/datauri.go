package imgutil

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

// dataURIRegex は data:<mime>;base64, の枠付けを検出します。
var dataURIRegex = regexp.MustCompile(`^data:([^;]+);base64,`)

// IsDataURI は文字列が base64 データURIの枠付けを持つかどうかを返します。
func IsDataURI(s string) bool {
	return dataURIRegex.MatchString(strings.TrimSpace(s))
}

// ParseDataURI は data:<mime>;base64,<payload> を復号してバイナリと
// MIME タイプに分解します。枠付けが無い、または base64 が不正な場合は
// エラーを返します。
func ParseDataURI(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	matches := dataURIRegex.FindStringSubmatch(s)
	if len(matches) != 2 {
		return nil, "", fmt.Errorf("データURIの形式ではありません")
	}

	payload := s[len(matches[0]):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("base64の復号に失敗しました: %w", err)
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("データURIが空です")
	}
	return data, matches[1], nil
}

// FormatPNGDataURI は生成画像の出力枠付けです。入力の MIME に関わらず
// 常に image/png を申告します（出力契約の固定仕様）。
func FormatPNGDataURI(data []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)
}
