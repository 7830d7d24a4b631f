package config

import (
	"fmt"
	"time"

	"github.com/shouni/gemini-cinema-kit/pkg/domain"
	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義です。モデル名は環境変数で上書きできます。
const (
	DefaultImageModel      = "gemini-2.5-flash-image"
	DefaultTextModel       = "gemini-3-pro-preview"
	DefaultHTTPTimeout     = 30 * time.Second
	DefaultRateLimit       = 15 * time.Second
	DefaultCacheExpiration = 30 * time.Minute
	DefaultCacheCleanup    = 1 * time.Hour
	DefaultOutputFile      = "output/scene.png"
	DefaultBoardDir        = "output/board"
)

// Config はアプリケーション全体の環境設定（APIキーやモデル名）を保持する構造体です。
type Config struct {
	GeminiAPIKey     string
	GeminiImageModel string
	GeminiTextModel  string

	Options RunOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返します。
// APIキーの存在チェックは行わないため、必須とするコマンドは Validate を呼びます。
func LoadConfig() *Config {
	return &Config{
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		GeminiTextModel:  envutil.GetEnv("GEMINI_MODEL", DefaultTextModel),
	}
}

// Validate は Gemini API の利用に必要な設定が揃っているか検証します。
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("%w: 環境変数 GEMINI_API_KEY を設定してください", domain.ErrMissingCredential)
	}
	return nil
}

// RunOptions は CLI フラグから渡される実行時のパラメータです。
type RunOptions struct {
	// ソース入力関連
	SourcePath    string // --source: 変換元画像（ローカルパス / URL / gs:// / data URI）
	ReferencePath string // --reference: カラーグレーディング参照画像
	OutputFile    string // --output-file
	OutputDir     string // --output-dir: board コマンドの保存先
	Format        string // --format: png または jpg

	// シーン指定関連
	Look        string // --look
	Instruction string // --instruction: 自由記述のディレクター指示
	Character   string // --character
	Clothing    string // --clothing
	Action      string // --action
	Setting     string // --setting

	// AI挙動設定
	ImageModel string // --image-model
	TextModel  string // --model
	Enhance    bool   // --enhance: 送信前にシーン記述をAIで増強する

	// 実行制御
	HTTPTimeout time.Duration // --http-timeout
}

// SceneDetails は CLI のシーン指定フラグを domain 構造体へ変換します。
func (o RunOptions) SceneDetails() domain.SceneDetails {
	return domain.SceneDetails{
		Character: o.Character,
		Clothing:  o.Clothing,
		Action:    o.Action,
		Setting:   o.Setting,
	}
}
