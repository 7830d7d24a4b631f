package domain

// ImagePayload はデコード済みの画像バイナリと MIME タグの組です。
// ファイル選択やアップロードの関心事は周辺 UI が持ち、コアはこの形で受け取ります。
type ImagePayload struct {
	Data     []byte
	MIMEType string
}

// IsEmpty はペイロードが実体を持たないかどうかを返します。
func (p ImagePayload) IsEmpty() bool {
	return len(p.Data) == 0
}

// TransformRequest は単一の画像変換要求です。Instruction には
// prompt.ComposeInstruction が組み立てた完成済み指示文を渡します。
type TransformRequest struct {
	Source      ImagePayload
	LookID      LookID
	Instruction string
	Reference   *ImagePayload // LookCustomGradient のときのみ必須
	AspectRatio string        // 空なら呼び出し側既定の "16:9"
}

// TransformResult は生成された画像とそのメタデータです。DataURI は入力の
// MIME に関わらず常に data:image/png;base64 の枠付けで返します。
type TransformResult struct {
	Data     []byte
	MimeType string // リモートが申告した実際の MIME
	DataURI  string
}
