package llm

import (
	"context"
	"time"
)

const (
	defaultMaxTokens = 8096
	defaultTimeout   = 120 * time.Second
)

// LLM is a chat-completion client. One call sends a system instruction plus
// a user message and returns the model's text reply.
type LLM interface {
	Chat(ctx context.Context, system, user string) (string, error)
	Model() string
}

// Options bound a single completion call. Zero values select the defaults.
type Options struct {
	MaxTokens int
	Timeout   time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxTokens <= 0 {
		o.MaxTokens = defaultMaxTokens
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return o
}
