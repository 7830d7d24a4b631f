package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-cinema-kit/pkg/chat"
	"github.com/shouni/gemini-cinema-kit/pkg/domain"
)

// apologyMessage は送信失敗時にユーザーへ返す代替メッセージです。
// セッション自体は破棄しないため、次の発言から会話を再開できます。
const apologyMessage = "I'm sorry, I encountered an error. Please try again."

// ChatRunner は CineBot との対話ループを標準入出力で実行します。
// リモートセッションは発言の並びを公開しないため、可読なトランスクリプトは
// こちら側で要求/応答の順に追記して保持します。
type ChatRunner struct {
	manager    *chat.Manager
	in         io.Reader
	out        io.Writer
	transcript []domain.ChatTurn
}

// NewChatRunner は ChatRunner の新しいインスタンスを生成して返します。
func NewChatRunner(manager *chat.Manager, in io.Reader, out io.Writer) *ChatRunner {
	return &ChatRunner{
		manager: manager,
		in:      in,
		out:     out,
	}
}

// Run は入力を1行ずつ読み、CineBot の応答を書き出す REPL を実行します。
// 空行は無視し、"/reset" でセッションを作り直し、"/quit" または EOF で
// 終了します。
func (r *ChatRunner) Run(ctx context.Context, conversationID string) error {
	fmt.Fprintln(r.out, "CineBot: Ask me anything about filmmaking, cameras, or cinematography. (/quit to exit)")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			fmt.Fprintln(r.out, "CineBot: Cut! That's a wrap.")
			return nil
		case line == "/reset":
			r.manager.Reset(conversationID)
			fmt.Fprintln(r.out, "CineBot: Session reset.")
			continue
		}

		reply, err := r.manager.Send(ctx, conversationID, line)
		if err != nil {
			slog.WarnContext(ctx, "チャット応答の取得に失敗しました", "error", err)
			reply = apologyMessage
		}
		r.transcript = append(r.transcript,
			domain.ChatTurn{Role: domain.RoleUser, Text: line},
			domain.ChatTurn{Role: domain.RoleModel, Text: reply},
		)
		fmt.Fprintf(r.out, "CineBot: %s\n", reply)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("入力の読み取りに失敗しました: %w", err)
	}
	return nil
}

// Transcript は要求/応答の順で追記された会話履歴を返します。
func (r *ChatRunner) Transcript() []domain.ChatTurn {
	return r.transcript
}
