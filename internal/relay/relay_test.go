package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider stands in for the chat-completions endpoint. Each call is
// counted and the last request body is kept for inspection.
type mockProvider struct {
	status   int
	reply    string
	noChoice bool
	calls    atomic.Int64
	lastBody chatRequest
	lastAuth string
}

func (m *mockProvider) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.calls.Add(1)
		m.lastAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&m.lastBody)

		if m.status != 0 && m.status != http.StatusOK {
			w.WriteHeader(m.status)
			_, _ = w.Write([]byte(`{"error":"upstream"}`))
			return
		}

		resp := map[string]any{"choices": []map[string]any{
			{"message": map[string]any{"content": m.reply}},
		}}
		if m.noChoice {
			resp["choices"] = []map[string]any{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newTestClient(t *testing.T, m *mockProvider) *Client {
	t.Helper()
	srv := httptest.NewServer(m.handler())
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", "test-model")
}

func TestSummarizeExtractsCategory(t *testing.T) {
	m := &mockProvider{reply: "Lost bottle near library.\nCATEGORY: Urgent"}
	c := newTestClient(t, m)

	result, err := c.Invoke(context.Background(), Request{Kind: KindSummarize, Content: "long post text"})
	require.NoError(t, err)

	summary, ok := result.(SummarizeResult)
	require.True(t, ok)
	assert.Equal(t, "Lost bottle near library.\nCATEGORY: Urgent", summary.Summary)
	assert.Equal(t, "Urgent", summary.Category)
	assert.Equal(t, "Bearer test-key", m.lastAuth)
}

func TestSummarizeCategoryIsCaseInsensitive(t *testing.T) {
	m := &mockProvider{reply: "short.\ncategory: events"}
	c := newTestClient(t, m)

	result, err := c.Invoke(context.Background(), Request{Kind: KindSummarize, Content: "text"})
	require.NoError(t, err)
	assert.Equal(t, "events", result.(SummarizeResult).Category)
}

func TestSummarizeDefaultsCategory(t *testing.T) {
	m := &mockProvider{reply: "a summary with no label"}
	c := newTestClient(t, m)

	result, err := c.Invoke(context.Background(), Request{Kind: KindSummarize, Content: "text"})
	require.NoError(t, err)
	assert.Equal(t, "General", result.(SummarizeResult).Category)
}

func TestStudySendsSystemMessageFirst(t *testing.T) {
	m := &mockProvider{reply: "the answer"}
	c := newTestClient(t, m)

	history := []ChatMessage{
		{Role: "user", Content: "what is a mutex?"},
		{Role: "assistant", Content: "a lock"},
		{Role: "user", Content: "and a semaphore?"},
	}
	result, err := c.Invoke(context.Background(), Request{Kind: KindStudy, Messages: history})
	require.NoError(t, err)
	assert.Equal(t, "the answer", result.(StudyResult).Response)

	sent := m.lastBody.Messages
	require.Len(t, sent, 4)
	assert.Equal(t, "system", sent[0].Role)
	assert.Equal(t, studyPrompt, sent[0].Content)
	assert.Equal(t, history, sent[1:])
	assert.Equal(t, "test-model", m.lastBody.Model)
}

func TestStudyEmptyReplyUsesFallback(t *testing.T) {
	m := &mockProvider{noChoice: true}
	c := newTestClient(t, m)

	result, err := c.Invoke(context.Background(), Request{Kind: KindStudy, Messages: []ChatMessage{{Role: "user", Content: "hi"}}})
	require.NoError(t, err)
	assert.Equal(t, studyFallback, result.(StudyResult).Response)
}

func TestModeratePassesVerdictThrough(t *testing.T) {
	m := &mockProvider{reply: `{"safe": true, "reason": ""}`}
	c := newTestClient(t, m)

	result, err := c.Invoke(context.Background(), Request{Kind: KindModerate, Content: "post text"})
	require.NoError(t, err)
	assert.Equal(t, `{"safe": true, "reason": ""}`, result.(ModerateResult).Response)

	sent := m.lastBody.Messages
	require.Len(t, sent, 2)
	assert.Equal(t, moderatePrompt, sent[0].Content)
	assert.Equal(t, "post text", sent[1].Content)
}

func TestRateLimitedIsNotRetried(t *testing.T) {
	m := &mockProvider{status: http.StatusTooManyRequests}
	c := newTestClient(t, m)

	_, err := c.Invoke(context.Background(), Request{Kind: KindSummarize, Content: "text"})
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int64(1), m.calls.Load())
}

func TestQuotaExhausted(t *testing.T) {
	m := &mockProvider{status: http.StatusPaymentRequired}
	c := newTestClient(t, m)

	_, err := c.Invoke(context.Background(), Request{Kind: KindModerate, Content: "text"})
	assert.ErrorIs(t, err, ErrQuotaExhausted)
}

func TestUpstreamErrorCarriesStatus(t *testing.T) {
	m := &mockProvider{status: http.StatusInternalServerError}
	c := newTestClient(t, m)

	_, err := c.Invoke(context.Background(), Request{Kind: KindSummarize, Content: "text"})
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusInternalServerError, upstream.Status)
	assert.Equal(t, int64(1), m.calls.Load())
}

func TestInvalidKindNeverReachesProvider(t *testing.T) {
	m := &mockProvider{reply: "unused"}
	c := newTestClient(t, m)

	_, err := c.Invoke(context.Background(), Request{Kind: Kind("shout"), Content: "text"})
	assert.ErrorIs(t, err, ErrInvalidRequestKind)
	assert.Equal(t, int64(0), m.calls.Load())
}

func TestMissingCredentialCheckedBeforeNetwork(t *testing.T) {
	m := &mockProvider{reply: "unused"}
	srv := httptest.NewServer(m.handler())
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "", "test-model")
	_, err := c.Invoke(context.Background(), Request{Kind: KindSummarize, Content: "text"})
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, int64(0), m.calls.Load())
}

func TestTransportFailureIsUpstreamError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "test-key", "test-model")

	_, err := c.Invoke(context.Background(), Request{Kind: KindStudy, Messages: []ChatMessage{{Role: "user", Content: "hi"}}})
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.False(t, errors.Is(err, ErrRateLimited))
}
