package llm

import "context"

// Client is the single gateway every agent component uses to talk to the
// language model: one prompt in, one text completion out.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Func adapts a plain function to the Client interface. Tests use this to
// script model output.
type Func func(ctx context.Context, prompt string) (string, error)

// Generate implements Client.
func (f Func) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
