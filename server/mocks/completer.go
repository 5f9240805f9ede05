package mocks

import (
	"context"
	"sync"
)

// Completer is a stub for the handler-facing upstream client
// (Generate(ctx, prompt) (string, error)).
type Completer struct {
	GenerateFunc func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

// NewCompleter returns a Completer that answers with fn.
func NewCompleter(fn func(ctx context.Context, prompt string) (string, error)) *Completer {
	return &Completer{GenerateFunc: fn}
}

// Generate records the prompt and delegates to GenerateFunc.
func (c *Completer) Generate(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	c.prompts = append(c.prompts, prompt)
	c.mu.Unlock()

	if c.GenerateFunc != nil {
		return c.GenerateFunc(ctx, prompt)
	}
	return "", nil
}

// Calls returns how many times Generate was invoked.
func (c *Completer) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prompts)
}

// Prompts returns a copy of every prompt received, in order.
func (c *Completer) Prompts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.prompts...)
}
