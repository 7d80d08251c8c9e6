package controllers

import (
	"context"
	"errors"
	"testing"

	"mindmate/mindmate/services/llm"
	"mindmate/mindmate/session"
	"mindmate/mindmate/sources/sqlite/dao"
)

// panickyLLM proves a code path never reaches the service.
type panickyLLM struct{}

func (panickyLLM) Run(ctx context.Context, messages []llm.Message) (string, error) {
	panic("unexpected service call")
}

func (panickyLLM) RunStream(ctx context.Context, messages []llm.Message) (<-chan string, error) {
	panic("unexpected service call")
}

type chatEnv struct {
	chatDAO  *dao.ChatDAO
	sessions *session.Store
	sid      string
}

func setupChatEnv(t *testing.T) chatEnv {
	t.Helper()
	db := testDB(t)
	userDAO := dao.NewUserDAO(db)
	if _, err := userDAO.CreateUser(context.Background(), "aditi", "secret"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	sessions := session.NewStore()
	state := sessions.Create("aditi")
	return chatEnv{
		chatDAO:  dao.NewChatDAO(db),
		sessions: sessions,
		sid:      state.ID,
	}
}

func TestChatPersistsOnSuccess(t *testing.T) {
	env := setupChatEnv(t)
	ctrl := NewChatController(env.chatDAO, stubLLM{reply: "hello aditi"}, env.sessions)
	ctx := context.Background()

	response, err := ctrl.Chat(ctx, env.sid, "aditi", "hi there")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if response != "hello aditi" {
		t.Errorf("unexpected response %q", response)
	}

	n, _ := env.chatDAO.CountChatTurns(ctx, "aditi")
	if n != 1 {
		t.Errorf("expected exactly 1 persisted turn, got %d", n)
	}

	turns, err := ctrl.ListChatHistory(ctx, "aditi")
	if err != nil {
		t.Fatalf("ListChatHistory: %v", err)
	}
	if turns[0].Message != "hi there" || turns[0].Response != "hello aditi" {
		t.Errorf("unexpected newest turn: %+v", turns[0])
	}

	transcript := env.sessions.Transcript(env.sid)
	if len(transcript) != 2 {
		t.Errorf("expected 2 transcript messages, got %d", len(transcript))
	}
}

func TestChatFailurePersistsNothing(t *testing.T) {
	env := setupChatEnv(t)
	ctrl := NewChatController(env.chatDAO, stubLLM{err: errors.New("quota")}, env.sessions)
	ctx := context.Background()

	_, err := ctrl.Chat(ctx, env.sid, "aditi", "hi there")
	if !errors.Is(err, ErrAssistantUnavailable) {
		t.Fatalf("expected ErrAssistantUnavailable, got %v", err)
	}

	n, _ := env.chatDAO.CountChatTurns(ctx, "aditi")
	if n != 0 {
		t.Errorf("failed turn should persist nothing, got %d rows", n)
	}
	if len(env.sessions.Transcript(env.sid)) != 0 {
		t.Error("failed turn should not touch the transcript")
	}
}

func TestChatEmptyMessageRejectedLocally(t *testing.T) {
	env := setupChatEnv(t)
	// A client that panics on use proves no service call is attempted.
	ctrl := NewChatController(env.chatDAO, panickyLLM{}, env.sessions)

	_, err := ctrl.Chat(context.Background(), env.sid, "aditi", "   ")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	n, _ := env.chatDAO.CountChatTurns(context.Background(), "aditi")
	if n != 0 {
		t.Errorf("empty message wrote %d rows", n)
	}
}

func TestChatTranscriptGrowsAcrossTurns(t *testing.T) {
	env := setupChatEnv(t)
	ctrl := NewChatController(env.chatDAO, stubLLM{reply: "ok"}, env.sessions)
	ctx := context.Background()

	for _, msg := range []string{"one", "two", "three"} {
		if _, err := ctrl.Chat(ctx, env.sid, "aditi", msg); err != nil {
			t.Fatalf("Chat(%s): %v", msg, err)
		}
	}
	if got := len(env.sessions.Transcript(env.sid)); got != 6 {
		t.Errorf("expected 6 transcript messages, got %d", got)
	}
	n, _ := env.chatDAO.CountChatTurns(ctx, "aditi")
	if n != 3 {
		t.Errorf("expected 3 persisted turns, got %d", n)
	}
}
