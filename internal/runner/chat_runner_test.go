package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shouni/gemini-cinema-kit/pkg/chat"
	"github.com/shouni/gemini-cinema-kit/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedSession struct {
	replies []string
	err     error
}

func (s *scriptedSession) Send(ctx context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(s.replies) == 0 {
		return "ok", nil
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func newTestManager(t *testing.T, session *scriptedSession) *chat.Manager {
	t.Helper()
	manager, err := chat.NewManager(func(ctx context.Context) (chat.Session, error) {
		return session, nil
	})
	require.NoError(t, err)
	return manager
}

func TestChatRunner_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("応答を書き出して/quitで終了する", func(t *testing.T) {
		manager := newTestManager(t, &scriptedSession{replies: []string{"An ARRI Alexa is a digital cinema camera."}})
		out := &bytes.Buffer{}
		in := strings.NewReader("What is an ARRI Alexa?\n/quit\n")

		r := NewChatRunner(manager, in, out)
		err := r.Run(ctx, "test")

		require.NoError(t, err)
		assert.Contains(t, out.String(), "CineBot: An ARRI Alexa is a digital cinema camera.")
		assert.Contains(t, out.String(), "That's a wrap")

		// トランスクリプトは要求→応答の順で並ぶのだ
		transcript := r.Transcript()
		require.Len(t, transcript, 2)
		assert.Equal(t, domain.RoleUser, transcript[0].Role)
		assert.Equal(t, "What is an ARRI Alexa?", transcript[0].Text)
		assert.Equal(t, domain.RoleModel, transcript[1].Role)
	})

	t.Run("空行は送信せずスキップする", func(t *testing.T) {
		session := &scriptedSession{}
		manager := newTestManager(t, session)
		out := &bytes.Buffer{}
		in := strings.NewReader("\n   \n/quit\n")

		r := NewChatRunner(manager, in, out)
		err := r.Run(ctx, "test")

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "CineBot: ok")
	})

	t.Run("送信失敗時は謝罪メッセージで会話を続ける", func(t *testing.T) {
		session := &scriptedSession{err: errors.New("503 unavailable")}
		manager := newTestManager(t, session)
		out := &bytes.Buffer{}
		in := strings.NewReader("hello\n/quit\n")

		r := NewChatRunner(manager, in, out)
		err := r.Run(ctx, "test")

		require.NoError(t, err, "a failed turn must not abort the REPL")
		assert.Contains(t, out.String(), apologyMessage)
	})

	t.Run("EOFで正常終了する", func(t *testing.T) {
		manager := newTestManager(t, &scriptedSession{})
		out := &bytes.Buffer{}

		r := NewChatRunner(manager, strings.NewReader(""), out)
		err := r.Run(ctx, "test")

		require.NoError(t, err)
	})
}
