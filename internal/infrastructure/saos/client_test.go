package saos

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janhq/saos-mcp-server/internal/domain/judgment"
)

type capturedRequest struct {
	method string
	path   string
	query  url.Values
	header http.Header
	close  bool
}

type fakeSAOS struct {
	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
	delay    time.Duration
}

func (f *fakeSAOS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		method: r.Method,
		path:   r.URL.Path,
		query:  r.URL.Query(),
		header: r.Header.Clone(),
		close:  r.Close,
	})
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

func (f *fakeSAOS) captured() []capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedRequest(nil), f.requests...)
}

func newTestClient(t *testing.T, fake *fakeSAOS, timeout time.Duration) *Client {
	t.Helper()
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{
		BaseURL:   server.URL + "/api",
		UserAgent: "saos-mcp-server/1.0",
		Timeout:   timeout,
	})
}

func TestClient_ExecuteSuccessReturnsBodyVerbatim(t *testing.T) {
	fake := &fakeSAOS{status: http.StatusOK, body: `{"items": [], "totalElements": 0}`}
	client := newTestClient(t, fake, time.Second)

	body, err := client.Execute(context.Background(), judgment.SearchPath, judgment.NewSearchQuery().Params())
	require.NoError(t, err)
	assert.Equal(t, `{"items": [], "totalElements": 0}`, string(body))

	reqs := fake.captured()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodGet, reqs[0].method)
	assert.Equal(t, "/api/search/judgments", reqs[0].path)
	assert.Equal(t, url.Values{
		"sortingField":     {"JUDGMENT_DATE"},
		"sortingDirection": {"DESC"},
		"pageNumber":       {"0"},
		"pageSize":         {"10"},
	}, reqs[0].query)
}

func TestClient_ExecuteSendsFixedHeaders(t *testing.T) {
	fake := &fakeSAOS{status: http.StatusOK, body: `{}`}
	client := newTestClient(t, fake, time.Second)

	_, err := client.Execute(context.Background(), judgment.JudgmentPath(1), nil)
	require.NoError(t, err)

	reqs := fake.captured()
	require.Len(t, reqs, 1)
	assert.Equal(t, "saos-mcp-server/1.0", reqs[0].header.Get("User-Agent"))
	assert.Equal(t, "application/json", reqs[0].header.Get("Accept"))
	assert.True(t, reqs[0].close, "connection must not be kept alive across calls")
}

func TestClient_ExecuteGetJudgmentPath(t *testing.T) {
	fake := &fakeSAOS{status: http.StatusOK, body: `{"data": {"id": 12345}}`}
	client := newTestClient(t, fake, time.Second)

	_, err := client.Execute(context.Background(), judgment.JudgmentPath(int64(12345)), nil)
	require.NoError(t, err)

	reqs := fake.captured()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/judgments/12345", reqs[0].path)
	assert.Empty(t, reqs[0].query)
}

func TestClient_ExecuteFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		kind       judgment.FailureKind
		statusCode int
	}{
		{"server error", http.StatusInternalServerError, `{"error":"boom"}`, judgment.FailureHTTPStatus, 500},
		{"not found", http.StatusNotFound, `{}`, judgment.FailureHTTPStatus, 404},
		{"redirect status", http.StatusNotModified, ``, judgment.FailureHTTPStatus, 304},
		{"html body", http.StatusOK, `<html>maintenance</html>`, judgment.FailureDecode, 200},
		{"empty body", http.StatusOK, ``, judgment.FailureDecode, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeSAOS{status: tt.status, body: tt.body}
			client := newTestClient(t, fake, time.Second)

			body, err := client.Execute(context.Background(), judgment.SearchPath, nil)
			assert.Nil(t, body)
			require.ErrorIs(t, err, judgment.ErrUnavailable)

			var unavailable *judgment.UnavailableError
			require.ErrorAs(t, err, &unavailable)
			assert.Equal(t, tt.kind, unavailable.Kind)
			assert.Equal(t, tt.statusCode, unavailable.StatusCode)
			assert.Equal(t, judgment.SearchPath, unavailable.Path)
		})
	}
}

func TestClient_ExecuteTimeout(t *testing.T) {
	fake := &fakeSAOS{status: http.StatusOK, body: `{}`, delay: 2 * time.Second}
	client := newTestClient(t, fake, 50*time.Millisecond)

	start := time.Now()
	body, err := client.Execute(context.Background(), judgment.SearchPath, nil)
	assert.Less(t, time.Since(start), time.Second)

	assert.Nil(t, body)
	assert.Equal(t, judgment.FailureTimeout, judgment.KindOf(err))
}

func TestClient_ExecuteNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewClient(ClientConfig{BaseURL: baseURL, Timeout: time.Second})

	body, err := client.Execute(context.Background(), judgment.SearchPath, nil)
	assert.Nil(t, body)
	assert.Equal(t, judgment.FailureNetwork, judgment.KindOf(err))
}

func TestClient_ExecuteCanceledContext(t *testing.T) {
	fake := &fakeSAOS{status: http.StatusOK, body: `{}`}
	client := newTestClient(t, fake, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	body, err := client.Execute(ctx, judgment.SearchPath, nil)
	assert.Nil(t, body)
	assert.ErrorIs(t, err, judgment.ErrUnavailable)
}

func TestClient_ExecuteTwiceIssuesTwoRequests(t *testing.T) {
	fake := &fakeSAOS{status: http.StatusOK, body: `{"items": []}`}
	client := newTestClient(t, fake, time.Second)

	q := judgment.NewSearchQuery()
	q.JudgeName = judgment.Some("Anna Nowak")

	for i := 0; i < 2; i++ {
		_, err := client.Execute(context.Background(), judgment.SearchPath, q.Params())
		require.NoError(t, err)
	}

	reqs := fake.captured()
	require.Len(t, reqs, 2)
	assert.Equal(t, reqs[0].query, reqs[1].query)
	assert.Equal(t, "Anna Nowak", reqs[0].query.Get("judgeName"))
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(ClientConfig{BaseURL: "https://www.saos.org.pl/api/"})
	assert.Equal(t, "https://www.saos.org.pl/api", client.cfg.BaseURL)
	assert.Equal(t, "saos-mcp-server/1.0", client.cfg.UserAgent)
	assert.Equal(t, 30*time.Second, client.cfg.Timeout)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "search_judgments", endpointLabel(judgment.SearchPath))
	assert.Equal(t, "get_judgment", endpointLabel("/judgments/7"))
	assert.Equal(t, "other", endpointLabel("/courts"))
}
