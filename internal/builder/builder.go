package builder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-cinema-kit/internal/config"
	"github.com/shouni/gemini-cinema-kit/pkg/chat"
	"github.com/shouni/gemini-cinema-kit/pkg/generator"

	"github.com/patrickmn/go-cache"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"google.golang.org/genai"
)

// SetupAppContext は、提供された設定と共有コンポーネントを使用して、
// アプリケーションコンテキストを初期化して返します。
// GCSファクトリーの失敗は致命的とせず、ローカル入出力のみで続行します。
func SetupAppContext(ctx context.Context, cfg *config.Config) (*AppContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := httpkit.New(config.DefaultHTTPTimeout)

	aiClient, err := InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	var (
		reader remoteio.InputReader
		writer remoteio.OutputWriter
	)
	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		slog.WarnContext(ctx, "GCSクライアントファクトリーの初期化に失敗しました。gs:// の入出力は利用できません", "error", err)
	} else {
		reader, err = gcsFactory.NewInputReader()
		if err != nil {
			slog.WarnContext(ctx, "InputReaderの取得に失敗しました", "error", err)
		}
		writer, err = gcsFactory.NewOutputWriter()
		if err != nil {
			slog.WarnContext(ctx, "OutputWriterの取得に失敗しました。保存機能が制限される可能性があります", "error", err)
		}
	}

	appCtx := NewAppContext(cfg, httpClient, aiClient, genaiClient, reader, writer)
	return &appCtx, nil
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}

// BuildCinemaCore は画像ペイロードの解決と応答解析を担う CinemaCore を構築します。
// リモート取得結果はインメモリキャッシュで一定時間再利用します。
func BuildCinemaCore(appCtx *AppContext) (*generator.CinemaCore, error) {
	payloadCache := cache.New(config.DefaultCacheExpiration, config.DefaultCacheCleanup)

	core, err := generator.NewCinemaCore(appCtx.Reader, appCtx.httpClient, payloadCache, config.DefaultCacheExpiration)
	if err != nil {
		return nil, fmt.Errorf("CinemaCoreの初期化に失敗しました: %w", err)
	}
	return core, nil
}

// BuildTransformer は画像変換を担当する CinemaTransformer を構築します。
func BuildTransformer(appCtx *AppContext) (*generator.CinemaTransformer, error) {
	core, err := BuildCinemaCore(appCtx)
	if err != nil {
		return nil, err
	}

	transformer, err := generator.NewCinemaTransformer(core, appCtx.aiClient, appCtx.Config.GeminiImageModel)
	if err != nil {
		return nil, fmt.Errorf("CinemaTransformerの初期化に失敗しました: %w", err)
	}
	return transformer, nil
}

// BuildEnhancer はシーン記述の増強を担当する PromptEnhancer を構築します。
func BuildEnhancer(appCtx *AppContext) (*generator.PromptEnhancer, error) {
	enhancer, err := generator.NewPromptEnhancer(appCtx.aiClient, appCtx.Config.GeminiTextModel)
	if err != nil {
		return nil, fmt.Errorf("PromptEnhancerの初期化に失敗しました: %w", err)
	}
	return enhancer, nil
}

// BuildChatManager は CineBot の会話セッションを管理する Manager を構築します。
func BuildChatManager(appCtx *AppContext) (*chat.Manager, error) {
	factory := chat.NewGeminiSessionFactory(appCtx.genaiClient, appCtx.Config.GeminiTextModel)

	manager, err := chat.NewManager(factory)
	if err != nil {
		return nil, fmt.Errorf("チャットマネージャーの初期化に失敗しました: %w", err)
	}
	return manager, nil
}
