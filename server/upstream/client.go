// Package upstream wraps the external text-generation provider behind a
// single Generate call. The model and sampling temperature are fixed; the
// only per-process settings are the provider credential, an optional
// endpoint override and the call timeout.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/teilomillet/gollm"
	"github.com/teilomillet/gollm/llm"
	"github.com/teilomillet/promptgate/config"
	"github.com/teilomillet/promptgate/server/metrics"
	"go.uber.org/zap"
)

const (
	// Model is the provider model every prompt is sent to.
	Model = "gpt-4"

	// Temperature is the sampling temperature of every call.
	Temperature = 0.7
)

// Generator is the part of gollm.LLM the client relies on.
type Generator interface {
	Generate(ctx context.Context, prompt *gollm.Prompt, opts ...llm.GenerateOption) (string, error)
}

// Client is the long-lived handle on the upstream provider. It holds no
// mutable state and is safe for concurrent use.
type Client struct {
	gen      Generator
	provider string
	timeout  time.Duration
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// New builds a gollm-backed client. Retries are disabled: a failed call is
// reported to the caller as is. gollm's own logger is silenced; failures
// are logged by Generate.
func New(cfg config.UpstreamConfig, logger *zap.Logger, m *metrics.Metrics) (*Client, error) {
	if cfg.Endpoint != "" && cfg.Provider != config.ProviderOllama {
		return nil, fmt.Errorf("endpoint override is not supported for provider %q", cfg.Provider)
	}

	opts := []gollm.ConfigOption{
		gollm.SetProvider(cfg.Provider),
		gollm.SetModel(Model),
		gollm.SetAPIKey(cfg.APIKey),
		gollm.SetTemperature(Temperature),
		gollm.SetMaxRetries(0),
		gollm.SetTimeout(cfg.Timeout),
		gollm.SetLogLevel(gollm.LogLevelOff),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, gollm.SetOllamaEndpoint(cfg.Endpoint))
	}

	lm, err := gollm.NewLLM(opts...)
	if err != nil {
		return nil, fmt.Errorf("create LLM: %w", err)
	}

	logger.Info("Upstream client ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", Model),
		zap.Float64("temperature", Temperature),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("custom_endpoint", cfg.Endpoint != ""),
	)

	c := NewWithGenerator(lm, cfg.Timeout, logger, m)
	c.provider = cfg.Provider
	return c, nil
}

// NewWithGenerator builds a client around any Generator. A zero timeout
// leaves the call bounded only by ctx. m may be nil.
func NewWithGenerator(gen Generator, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Client {
	return &Client{
		gen:      gen,
		provider: "custom",
		timeout:  timeout,
		logger:   logger,
		metrics:  m,
	}
}

// Generate sends prompt to the provider as a single user message and
// returns the generated text unmodified. Every failure comes back as *Error.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	// gollm renders the prompt with Prompt.String, which returns Input
	// unchanged when nothing else is set. Providers wrap it in a single
	// user message.
	text, err := c.gen.Generate(ctx, &gollm.Prompt{Input: prompt})
	elapsed := time.Since(start)

	if err == nil {
		c.metrics.ObserveUpstream(metrics.OutcomeSuccess, elapsed.Seconds())
		c.logger.Debug("Upstream call succeeded",
			zap.Duration("duration", elapsed),
			zap.Int("response_length", len(text)),
		)
		return text, nil
	}

	outcome := metrics.OutcomeError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		outcome = metrics.OutcomeTimeout
		if c.timeout > 0 {
			err = fmt.Errorf("upstream request timed out after %s: %w", c.timeout, err)
		}
	case errors.Is(ctx.Err(), context.Canceled):
		outcome = metrics.OutcomeCanceled
	}
	c.metrics.ObserveUpstream(outcome, elapsed.Seconds())
	c.logger.Warn("Upstream call failed",
		zap.String("provider", c.provider),
		zap.String("outcome", outcome),
		zap.Duration("duration", elapsed),
		zap.Error(err),
	)

	return "", &Error{Provider: c.provider, Model: Model, Err: err}
}
