package llm

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	httputils "mindmate/mindmate/utils/http"
	"mindmate/mindmate/utils/logging"
	"strings"
	"time"

	"go.uber.org/zap"
)

type GeminiClient struct {
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration
}

// NewGeminiClient returns a client for the Gemini generateContent endpoint.
// The timeout bounds every call; upstream hangs degrade into ordinary errors.
func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	return &GeminiClient{
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Gemini's wire format calls the assistant role "model".
func toContents(messages []Message) []geminiContent {
	contents := make([]geminiContent, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role == "assistant" {
			role = "model"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: m.Content}},
		})
	}
	return contents
}

func (r geminiResponse) text() (string, error) {
	if len(r.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func (c *GeminiClient) headers() map[string]string {
	return map[string]string{"x-goog-api-key": c.apiKey}
}

// Run (non-streaming) chat completion
func (c *GeminiClient) Run(ctx context.Context, messages []Message) (string, error) {
	defer logging.LogDuration(ctx, "gemini_service_run")()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	var resp geminiResponse
	if err := httputils.PostJSON(ctx, url, c.headers(), geminiRequest{Contents: toContents(messages)}, &resp); err != nil {
		return "", err
	}
	return resp.text()
}

// RunStream — streaming version using SSE
func (c *GeminiClient) RunStream(ctx context.Context, messages []Message) (<-chan string, error) {
	defer logging.LogDuration(ctx, "gemini_service_run_stream")()

	url := fmt.Sprintf("%s/models/%s:streamGenerateContent?alt=sse", c.baseURL, c.model)
	body, err := httputils.PostStream(ctx, url, c.headers(), geminiRequest{Contents: toContents(messages)})
	if err != nil {
		return nil, err
	}

	ch := make(chan string)

	go func() {
		defer func() {
			close(ch)
			body.Close()
		}()

		reader := bufio.NewReader(body)

		for {
			select {
			case <-ctx.Done():
				logging.AppLogger.Info("Gemini RunStream context cancelled")
				return
			default:
			}

			line, err := reader.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return
				}
				logging.ErrorLogger.Error("gemini stream read error", zap.Any("err", err))
				return
			}

			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if payload == "" {
				continue
			}

			var chunk geminiResponse
			if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
				logging.ErrorLogger.Error("gemini stream decode error", zap.Any("err", err))
				return
			}
			text, err := chunk.text()
			if err != nil {
				continue
			}

			select {
			case ch <- text:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch, nil
}
