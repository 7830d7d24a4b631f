// Package prompt は画像変換・プロンプト強化の指示文を組み立てます。
// ここは純粋なテキスト生成のみを担い、失敗しません。参照画像の有無などの
// 事前条件検証は呼び出し側（generator / runner）の責務です。
package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
)

// IdentityDirective は全リクエストに必ず含まれる同一性保持指示です。
// どの分岐でも省略されない最優先ブロックなので、単体の定数として公開し、
// テストから逐語一致を検証できるようにしています。
const IdentityDirective = `CRITICAL IDENTITY INSTRUCTION (PRIORITY #1):
- You MUST preserve the facial identity and body structure of the person in the source image with 100% accuracy.
- The final image MUST use the exact face from the source image. Do NOT generate a random person.
- Do not alter the facial features, bone structure, or likeness.
- The goal is to keep the person exactly as they are but upgrade the lighting, camera quality, and environment around them.`

const framingDirective = `Transform this image into a hyper-realistic, ultra-detailed, cinematic movie shot in 16:9 aspect ratio.`

const upscaleDirective = `CRITICAL UPSCALE & STYLE INSTRUCTIONS:
- Ensure the output looks like it was filmed with an ARRI camera.
- Enhance details and resolution significantly (x2 upscale equivalent).
- Maximize image clarity, sharpness, and texture definition.
- Refine line definitions and facial features with high precision without deforming them.
- Re-stylize the image to obtain the maximum possible clarity and sharpness.
- Apply "High-Frequency Detail Enhancement" to make every texture, pore, and edge crystal clear.
- Ensure the final image is ultra-sharp, in focus, and free of any blur or softness.
- Micro-contrast should be optimized for a hyper-realistic look.`

// referenceStyleClause は参照画像モードの色指示です。定型ルックの語彙は
// 一切含めず、2枚目の画像からグレードを導出させます。
const referenceStyleClause = `CRITICAL COLOR INSTRUCTION: Analyze the color palette, lighting, and mood of the SECOND image provided (the reference). Apply that exact color grading and style to the FIRST image (the source).`

const precedenceWording = `Ensure these instructions take precedence over the base style regarding the scene, action, and clothing, BUT NEVER compromise the facial identity of the source.`

const creativeVariationClause = `No specific user instructions provided. Generate a creative variation based on the style definition while keeping the source character.`

// ComposeInstruction は画像生成モデルへ送る最終指示文を組み立てます。
// 入力が同じなら常に同一の文字列を返す純粋関数で、時刻・乱数・隠れ状態には
// 依存しません。lookID が未知でもここでは失敗せず、スタイル句を参照モード
// か否かのみで分岐します（ID 検証は FindLook を呼ぶ側で行います）。
func ComposeInstruction(look domain.LookDefinition, override string, details domain.SceneDetails, referenceMode bool) string {
	var b strings.Builder

	// 1. 固定の冒頭ブロック。アスペクト比・写実性・同一性保持の順で、
	//    どの分岐でも変わりません。
	b.WriteString(framingDirective)
	b.WriteString("\n\n")
	b.WriteString(IdentityDirective)
	b.WriteString("\n\n")
	b.WriteString(upscaleDirective)
	b.WriteString("\n")

	// 2. スタイル句。参照モードなら2枚目画像からの導出指示、
	//    それ以外はルックの技術語彙を逐語で連結します。
	if referenceMode {
		b.WriteString("\n")
		b.WriteString(referenceStyleClause)
	} else {
		b.WriteString(fmt.Sprintf("\nStyle Base: %s.\nTechnical Details: %s", look.Name, look.PromptModifier))
	}

	// 3. 監督指示句。明示の上書きテキスト > シーン詳細の合成 > 創作指示。
	instruction := strings.TrimSpace(override)
	if instruction == "" {
		instruction = SceneDetailsClause(details)
	}
	if instruction != "" {
		b.WriteString(fmt.Sprintf("\n\nDIRECTOR'S SPECIFIC INSTRUCTIONS: %s.\n%s", instruction, precedenceWording))
	} else {
		b.WriteString("\n\n")
		b.WriteString(creativeVariationClause)
	}

	return b.String()
}

// SceneDetailsClause はシーン詳細の入力済み項目だけを固定順
// （Character, Clothing, Action, Setting）で "Field: value" に整形し、
// ". " で連結します。全項目空なら空文字列を返します。
func SceneDetailsClause(details domain.SceneDetails) string {
	type field struct {
		label string
		value string
	}
	fields := []field{
		{"Character", details.Character},
		{"Clothing", details.Clothing},
		{"Action", details.Action},
		{"Setting", details.Setting},
	}

	var parts []string
	for _, f := range fields {
		if v := strings.TrimSpace(f.value); v != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", f.label, v))
		}
	}
	return strings.Join(parts, ". ")
}
