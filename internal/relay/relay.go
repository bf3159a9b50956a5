// Package relay translates typed AI assistant requests into chat-completion
// calls against the configured provider and normalizes the replies. The relay
// is stateless: conversation history is held by the caller.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"time"

	"nexus/internal/observability"
)

// Kind is the typed intent of a relay request.
type Kind string

const (
	KindSummarize Kind = "summarize"
	KindStudy     Kind = "study"
	KindModerate  Kind = "moderate"
)

// ChatMessage is one turn in a conversation, matching the provider wire shape.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a single relay invocation. Content carries the raw text for
// summarize and moderate; Messages carries the ordered history, newest user
// message last, for study.
type Request struct {
	Kind     Kind
	Content  string
	Messages []ChatMessage
}

// Result is the discriminated reply type: exactly one variant per request kind.
type Result interface {
	relayResult()
}

// SummarizeResult carries the full model text and the extracted category label.
type SummarizeResult struct {
	Summary  string `json:"summary"`
	Category string `json:"category"`
}

// StudyResult carries the assistant's reply for a study conversation turn.
type StudyResult struct {
	Response string `json:"response"`
}

// ModerateResult carries the model's raw moderation verdict. The relay does
// not parse or validate the JSON the prompt asks for; that is the caller's
// responsibility.
type ModerateResult struct {
	Response string `json:"response"`
}

func (SummarizeResult) relayResult() {}
func (StudyResult) relayResult()     {}
func (ModerateResult) relayResult()  {}

var categoryPattern = regexp.MustCompile(`(?i)CATEGORY:\s*(\w+)`)

// Client calls the external chat-completion provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient returns a relay client for the given provider endpoint. An empty
// apiKey is allowed; Invoke reports it per request.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// chatRequest is the provider request body.
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// chatResponse is the subset of the provider reply the relay reads.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Invoke performs exactly one provider call for the request and normalizes
// the reply into the kind's result variant. It never retries.
func (c *Client) Invoke(ctx context.Context, req Request) (Result, error) {
	ctx, span := observability.TraceRelayInvoke(ctx, string(req.Kind))
	defer span.End()

	start := time.Now()
	res, err := c.invoke(ctx, req)
	if err != nil {
		observability.RecordErrorInContext(ctx, err)
		observability.AssistantRequests.WithLabelValues(string(req.Kind), outcomeLabel(err)).Inc()
		return nil, err
	}

	observability.AssistantRequests.WithLabelValues(string(req.Kind), "success").Inc()
	observability.AssistantLatency.WithLabelValues(string(req.Kind)).Observe(time.Since(start).Seconds())
	return res, nil
}

func (c *Client) invoke(ctx context.Context, req Request) (Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	var messages []ChatMessage
	switch req.Kind {
	case KindSummarize:
		messages = []ChatMessage{
			{Role: "system", Content: summarizePrompt},
			{Role: "user", Content: req.Content},
		}
	case KindStudy:
		// System message first, caller history verbatim afterwards.
		messages = append([]ChatMessage{{Role: "system", Content: studyPrompt}}, req.Messages...)
	case KindModerate:
		messages = []ChatMessage{
			{Role: "system", Content: moderatePrompt},
			{Role: "user", Content: req.Content},
		}
	default:
		return nil, ErrInvalidRequestKind
	}

	content, err := c.chat(ctx, messages)
	if err != nil {
		return nil, err
	}

	switch req.Kind {
	case KindSummarize:
		category := defaultCategory
		if m := categoryPattern.FindStringSubmatch(content); m != nil {
			category = m[1]
		}
		return SummarizeResult{Summary: content, Category: category}, nil
	case KindStudy:
		if content == "" {
			content = studyFallback
		}
		return StudyResult{Response: content}, nil
	default:
		return ModerateResult{Response: content}, nil
	}
}

// chat posts the messages to the provider and returns the first choice's
// content, or an empty string when the reply carries none.
func (c *Client) chat(ctx context.Context, messages []ChatMessage) (string, error) {
	body, err := json.Marshal(chatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", &UpstreamError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", ErrRateLimited
	case resp.StatusCode == http.StatusPaymentRequired:
		return "", ErrQuotaExhausted
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(text)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Err: err}
	}

	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}

func outcomeLabel(err error) string {
	switch {
	case err == ErrMissingCredential:
		return "missing_credential"
	case err == ErrInvalidRequestKind:
		return "invalid_request"
	case err == ErrRateLimited:
		return "rate_limited"
	case err == ErrQuotaExhausted:
		return "quota_exhausted"
	default:
		return "upstream_error"
	}
}
