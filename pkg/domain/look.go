package domain

import "fmt"

// LookID はカタログに登録されたシネマティック・ルックの識別子です。
type LookID string

const (
	LookSciFiNeon       LookID = "SCI_FI_NEON"
	LookDesertEpic      LookID = "DESERT_EPIC"
	LookSpaceOpera      LookID = "SPACE_OPERA"
	LookDystopianMatrix LookID = "DYSTOPIAN_MATRIX"
	LookPostApocalyptic LookID = "POST_APOCALYPTIC"

	// LookCustomGradient は定型スタイルの代わりに参照画像からカラーグレードを
	// 導出する特殊センチネルです。選択時は参照画像の添付が必須になります。
	LookCustomGradient LookID = "CUSTOM_GRADIENT"
)

// LookDefinition はユーザーが選択できる視覚スタイル1件の定義を保持します。
// 表示テキストは英語/スペイン語の二言語、PromptModifier は生成プロンプトに
// そのまま連結される技術語彙です。GradientFrom/GradientTo は UI 専用の
// 装飾メタデータで、コアは一切参照しません。
type LookDefinition struct {
	ID             LookID
	Name           string
	NameES         string
	Description    string
	DescriptionES  string
	PromptModifier string
	GradientFrom   string
	GradientTo     string
}

// IsReference はこのルックが参照画像モードのセンチネルかどうかを返します。
func (l LookDefinition) IsReference() bool {
	return l.ID == LookCustomGradient
}

// DisplayName は言語コード（"es" 以外は英語扱い）に応じた表示名を返します。
func (l LookDefinition) DisplayName(lang string) string {
	if lang == "es" {
		return l.NameES
	}
	return l.Name
}

// looks はプロセス起動時に一度だけ定義される閉じた一覧です。変更不可。
var looks = []LookDefinition{
	{
		ID:             LookSciFiNeon,
		Name:           "Neon Noir",
		NameES:         "Neón Noir",
		Description:    "Tech-Noir aesthetic. Emulates Kodak Vision3 500T film stock with high contrast, anamorphic lens flares, and wet-street reflections. Cyan/Magenta split toning.",
		DescriptionES:  "Estética Tech-Noir. Emula película Kodak Vision3 500T con alto contraste, destellos anamórficos y reflejos en calles mojadas. Tonos Cian/Magenta.",
		PromptModifier: "cinematic lighting, neon noir style, cyberpunk aesthetic, rainy night, vibrant neon blue and pink lights, wet surfaces reflecting light, dramatic shadows, high contrast, 8k resolution, ARRI Alexa Mini LF, Cooke Anamorphic /i lenses, ISO 800 grain structure.",
		GradientFrom:   "from-blue-600",
		GradientTo:     "to-purple-600",
	},
	{
		ID:             LookDesertEpic,
		Name:           "Dune Sands",
		NameES:         "Arenas de Duna",
		Description:    "Large format epic. Features desaturated bleach bypass look, warm golden hour highlights, and atmospheric volumetric dust. Mimics ARRI Rental Alfie lenses.",
		DescriptionES:  "Épica de gran formato. Aspecto desaturado \"bleach bypass\", luces cálidas de hora dorada y polvo volumétrico atmosférico. Lentes ARRI Rental Alfie.",
		PromptModifier: "epic wide shot, desert planet aesthetic, golden hour lighting, floating dust particles, vast scale, muted earth tones, cinematic composition, Denis Villeneuve style, IMAX quality, sharp details, warm color temperature 5600K, low saturation shadows.",
		GradientFrom:   "from-orange-500",
		GradientTo:     "to-yellow-600",
	},
	{
		ID:             LookSpaceOpera,
		Name:           "Interstellar",
		NameES:         "Interestelar",
		Description:    "Deep space realism. Pure black levels (0 IRE), harsh point-source lighting, and 65mm IMAX film resolution. Cold, clinical color temperature.",
		DescriptionES:  "Realismo de espacio profundo. Niveles de negro puro (0 IRE), iluminación dura de punto único y resolución IMAX de 65mm. Temperatura fría y clínica.",
		PromptModifier: "outer space backdrop, realistic sci-fi technology, deep blacks, bright stark starlight, lens flares, anamorphic lens format, Christopher Nolan style, photorealistic, 8k, highly detailed textures, hard lighting, high dynamic range.",
		GradientFrom:   "from-slate-800",
		GradientTo:     "to-indigo-900",
	},
	{
		ID:             LookDystopianMatrix,
		Name:           "System Code",
		NameES:         "Código Sistema",
		Description:    "Cyber-industrial. Heavy green tint in mid-tones, crushed blacks, and digital noise artifacts. 360-degree shutter angle look.",
		DescriptionES:  "Ciber-industrial. Fuerte tinte verde en medios tonos, negros empastados y artefactos digitales. Aspecto de obturador de 360 grados.",
		PromptModifier: "Matrix aesthetic, green color grading, digital rain atmosphere, gritty urban environment, sleek black leather textures, sharp focus, 35mm film grain, Wachowski style, action movie lighting, fluorescent green bias, high contrast monochrome with tint.",
		GradientFrom:   "from-green-700",
		GradientTo:     "to-emerald-900",
	},
	{
		ID:             LookPostApocalyptic,
		Name:           "Wasteland",
		NameES:         "Tierra Baldía",
		Description:    "High-octane action. \"Blockbuster\" Orange & Teal separation. High saturation, high shutter speed look, gritty texture overlay.",
		DescriptionES:  "Acción de alto octanaje. Separación \"Blockbuster\" Naranja y Turquesa. Alta saturación, aspecto de obturación rápida y texturas rugosas.",
		PromptModifier: "Mad Max Fury Road style, high saturation, rusty metal, orange and teal color grading, rugged textures, intense sunlight, desert wasteland, chaotic energy, dynamic angle, award-winning cinematography, overexposed highlights.",
		GradientFrom:   "from-red-700",
		GradientTo:     "to-orange-800",
	},
	{
		ID:             LookCustomGradient,
		Name:           "Reference Match",
		NameES:         "Referencia",
		Description:    "Upload a reference image (grade, gradient, or still). The AI will analyze the histogram and apply that specific color palette to your image.",
		DescriptionES:  "Sube una imagen de referencia (gradiente o fotograma). La IA analizará y aplicará esa paleta de colores específica a tu imagen.",
		PromptModifier: "Match the color grading, lighting temperature, and mood of the provided reference image perfectly. Apply the reference color palette to the scene.",
		GradientFrom:   "from-gray-700",
		GradientTo:     "to-gray-900",
	},
}

// Looks はカタログ全件を定義順で返します。返却スライスは呼び出し側で
// 書き換えないこと（共有の静的データです）。
func Looks() []LookDefinition {
	return looks
}

// FindLook は完全一致でルックを検索します。閉じた列挙なので未知の ID は
// 呼び出し側のバグであり、デフォルトへ置換せず ErrInvalidLook で大きく
// 失敗させます。
func FindLook(id LookID) (*LookDefinition, error) {
	for i := range looks {
		if looks[i].ID == id {
			return &looks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidLook, id)
}
