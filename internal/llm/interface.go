// README: Completion backend contract shared by the Ollama, OpenAI and Gemini clients.
package llm

import (
	"context"
	"fmt"
)

// Options carries per-call generation tuning. Zero values mean "backend default".
type Options struct {
	Temperature float32
	TopP        float32
	// MaxTokens bounds the completion length.
	MaxTokens int
	// Seed pins the sampler so repeated calls with the same prompt diverge only
	// when the seed changes. Backends that cannot honor it ignore it.
	Seed int64
	// JSONFormat asks the backend to constrain output to JSON. The hint helps
	// but models still break it sometimes; callers must parse tolerantly.
	JSONFormat bool
}

// Completer is the single synchronous capability the planner needs from a
// model backend: prompt in, raw text out.
type Completer interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

// StatusError reports a non-2xx reply from the completion backend, as opposed
// to a transport or timeout failure which surfaces as a wrapped network error.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("completion backend HTTP %d: %s", e.StatusCode, e.Body)
}
