package llm

import "context"

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the generative-text surface the rest of the app talks to. Run is
// a blocking one-shot completion over the given transcript; RunStream yields
// the reply in chunks.
type Client interface {
	Run(ctx context.Context, messages []Message) (string, error)
	RunStream(ctx context.Context, messages []Message) (<-chan string, error)
}
