// Package chat はシネマトグラフィー・アシスタント (CineBot) の会話
// セッションを管理します。セッションは呼び出し側が与える会話IDごとに
// 1つだけ生成され、プロセス存続期間中保持されます（明示的な破棄はなし）。
package chat

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// SystemInstruction は CineBot の固定システム指示です。セッション生成時に
// 一度だけ設定され、以後の全ターンへ適用されます。
const SystemInstruction = "You are CineBot, an AI assistant specialized in filmmaking, photography, and the technical aspects of cinema cameras like ARRI. You help users understand visual effects and cinematography."

// Session はリモート会話コンテキストへの単一ハンドルです。
type Session interface {
	// Send は1ターン送信し、モデルの応答テキストを返します。
	Send(ctx context.Context, text string) (string, error)
}

// SessionFactory は新しい会話セッションを生成します。Manager のテストでは
// 生成回数の検証のためにモックへ差し替えます。
type SessionFactory func(ctx context.Context) (Session, error)

// Manager は会話IDごとのセッションを get-or-create で管理します。
// 生成は会話IDにつき一度きりで、以後の送信は同じハンドルを再利用して
// 文脈を維持します。送信失敗時もハンドルは破棄せず、会話を継続可能に
// 保ちます。
type Manager struct {
	factory  SessionFactory
	mu       sync.Mutex
	sessions map[string]Session
}

// NewManager は SessionFactory を注入して Manager を初期化します。
func NewManager(factory SessionFactory) (*Manager, error) {
	if factory == nil {
		return nil, fmt.Errorf("factory is required")
	}
	return &Manager{
		factory:  factory,
		sessions: make(map[string]Session),
	}, nil
}

// Send は指定した会話IDのセッションへ1メッセージ送信し、応答テキストを
// 返します。セッションが未生成なら最初の送信時に一度だけ生成します。
// リモート呼び出しの失敗はラップして返しますが、セッション自体は保持
// されるため、呼び出し側は代替メッセージを表示したうえで会話を続けられます。
func (m *Manager) Send(ctx context.Context, conversationID, text string) (string, error) {
	sess, err := m.getOrCreate(ctx, conversationID)
	if err != nil {
		return "", fmt.Errorf("会話セッションの生成に失敗しました: %w", err)
	}

	reply, err := sess.Send(ctx, text)
	if err != nil {
		return "", fmt.Errorf("チャット送信に失敗しました: %w", err)
	}
	return reply, nil
}

// Reset は指定した会話IDのセッションを破棄します。次の送信で新しい
// セッションが生成されます（UI の「すべてリセット」に対応）。
func (m *Manager) Reset(conversationID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, conversationID)
}

func (m *Manager) getOrCreate(ctx context.Context, conversationID string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[conversationID]; ok {
		return sess, nil
	}

	sess, err := m.factory(ctx)
	if err != nil {
		return nil, err
	}
	m.sessions[conversationID] = sess
	return sess, nil
}

// geminiSession は genai SDK のチャットハンドルをラップした Session 実装です。
type geminiSession struct {
	chat *genai.Chat
}

func (s *geminiSession) Send(ctx context.Context, text string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", err
	}

	reply := resp.Text()
	if reply == "" {
		reply = "I couldn't generate a text response."
	}
	return reply, nil
}

// NewGeminiSessionFactory は genai クライアントを使う SessionFactory を
// 返します。各セッションは CineBot のシステム指示付きで生成されます。
func NewGeminiSessionFactory(client *genai.Client, model string) SessionFactory {
	return func(ctx context.Context) (Session, error) {
		config := &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: SystemInstruction}},
			},
		}

		c, err := client.Chats.Create(ctx, model, config, nil)
		if err != nil {
			return nil, err
		}
		return &geminiSession{chat: c}, nil
	}
}
