package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mindmate/mindmate/services/llm"
	"mindmate/mindmate/session"
	"mindmate/mindmate/sources/sqlite/dao"
	"mindmate/mindmate/sources/sqlite/models"
	"mindmate/mindmate/utils/logging"

	"go.uber.org/zap"
)

type ChatController struct {
	chatDAO  *dao.ChatDAO
	client   llm.Client
	sessions *session.Store
}

func NewChatController(chatDAO *dao.ChatDAO, client llm.Client, sessions *session.Store) *ChatController {
	return &ChatController{
		chatDAO:  chatDAO,
		client:   client,
		sessions: sessions,
	}
}

// Chat sends one turn to the assistant. The conversation context lives in
// the session transcript; on success the turn is appended there and written
// to chat history, on failure neither happens.
func (c *ChatController) Chat(ctx context.Context, sessionID, username, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyInput
	}
	transcript := c.sessions.Transcript(sessionID)
	transcript = append(transcript, llm.Message{Role: "user", Content: message})

	response, err := c.client.Run(ctx, transcript)
	if err != nil {
		logging.ErrorLogger.Error("chat turn failed",
			zap.String("username", username), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
	}

	c.sessions.AppendTurn(sessionID, message, response)
	if _, err := c.chatDAO.RecordChatTurn(ctx, username, message, response); err != nil {
		return "", err
	}
	return response, nil
}

// ChatStream is the websocket variant: chunks flow out as they arrive and
// the completed turn is persisted once the stream closes cleanly.
func (c *ChatController) ChatStream(ctx context.Context, sessionID, username, message string) (chan string, chan error) {
	ch := make(chan string)
	errCh := make(chan error, 1)

	if strings.TrimSpace(message) == "" {
		errCh <- ErrEmptyInput
		close(ch)
		close(errCh)
		return ch, errCh
	}
	transcript := c.sessions.Transcript(sessionID)
	transcript = append(transcript, llm.Message{Role: "user", Content: message})

	upstream, err := c.client.RunStream(ctx, transcript)
	if err != nil {
		errCh <- fmt.Errorf("%w: %v", ErrAssistantUnavailable, err)
		close(ch)
		close(errCh)
		return ch, errCh
	}

	go func() {
		defer close(ch)
		defer close(errCh)
		var full strings.Builder
		for chunk := range upstream {
			full.WriteString(chunk)
			select {
			case ch <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if full.Len() == 0 {
			errCh <- ErrAssistantUnavailable
			return
		}
		response := full.String()
		c.sessions.AppendTurn(sessionID, message, response)
		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := c.chatDAO.RecordChatTurn(saveCtx, username, message, response); err != nil {
			errCh <- err
		}
	}()

	return ch, errCh
}

func (c *ChatController) ListChatHistory(ctx context.Context, username string) ([]models.ChatTurn, error) {
	return c.chatDAO.ListChatHistory(ctx, username)
}
