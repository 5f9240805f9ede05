// Package handlers provides the HTTP handlers of the promptgate server.
// The generate handler relays one prompt to the upstream provider and
// answers with the generated text; the health handler reports liveness.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/teilomillet/promptgate/errors"
	"github.com/teilomillet/promptgate/server/middleware"
	"github.com/teilomillet/promptgate/server/validation"
	"go.uber.org/zap"
)

// Completer turns a prompt into generated text. *upstream.Client
// satisfies it.
type Completer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank"`
}

// GenerateResponse is the success body. Prompt is the submitted prompt,
// byte for byte.
type GenerateResponse struct {
	Content string `json:"content"`
	Prompt  string `json:"prompt"`
}

// GenerateHandler serves POST /api/generate. It keeps no per-request state
// and is safe for concurrent use.
type GenerateHandler struct {
	client Completer
	logger *zap.Logger
}

// NewGenerateHandler creates a generate handler backed by client.
func NewGenerateHandler(client Completer, logger *zap.Logger) *GenerateHandler {
	return &GenerateHandler{
		client: client,
		logger: logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *GenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	logger := h.logger.With(zap.String("request_id", requestID))

	resp, gwErr := h.generate(r.Context(), r, requestID, logger)
	if gwErr != nil {
		errors.LogError(logger, gwErr, requestID)
		errors.WriteError(w, gwErr)
		return
	}

	writeJSON(w, http.StatusOK, resp, requestID, logger)
}

// generate runs the request through validation and the upstream call.
func (h *GenerateHandler) generate(ctx context.Context, r *http.Request, requestID string, logger *zap.Logger) (*GenerateResponse, *errors.GatewayError) {
	req, err := decodeRequest(r.Body)
	if err != nil {
		logger.Debug("Undecodable request body", zap.Error(err))
		return nil, errors.NewValidationError(requestID, errors.MsgPromptRequired)
	}

	if fieldErrs := validation.Struct(req); fieldErrs != nil {
		logger.Debug("Invalid request body", zap.Any("fields", fieldErrs))
		return nil, errors.NewValidationError(requestID, errors.MsgPromptRequired)
	}

	logger.Debug("Forwarding prompt", zap.Int("prompt_length", len(req.Prompt)))

	content, err := h.client.Generate(ctx, req.Prompt)
	if err != nil {
		return nil, errors.NewProviderError(requestID, err)
	}

	return &GenerateResponse{
		Content: content,
		Prompt:  req.Prompt,
	}, nil
}

// decodeRequest reads exactly one JSON value from body. Invalid UTF-8 is
// rejected rather than replaced, so the prompt can be echoed byte for byte.
func decodeRequest(body io.Reader) (GenerateRequest, error) {
	var req GenerateRequest

	raw, err := io.ReadAll(body)
	if err != nil {
		return req, fmt.Errorf("read body: %w", err)
	}
	if !utf8.Valid(raw) {
		return req, fmt.Errorf("body is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return req, fmt.Errorf("unexpected data after JSON body")
	}
	return req, nil
}

// writeJSON encodes v without HTML escaping so generated text reaches the
// client unchanged. The body is buffered so an encoding failure can still
// be reported with a proper status.
func writeJSON(w http.ResponseWriter, status int, v interface{}, requestID string, logger *zap.Logger) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		gwErr := errors.NewInternalError(requestID, fmt.Errorf("failed to encode response: %w", err))
		errors.LogError(logger, gwErr, requestID)
		errors.WriteError(w, gwErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Debug("Failed to write response", zap.Error(err))
	}
}
