package saos

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/janhq/saos-mcp-server/internal/domain/judgment"
	"github.com/janhq/saos-mcp-server/internal/infrastructure/metrics"
)

const (
	defaultBaseURL   = "https://www.saos.org.pl/api"
	defaultUserAgent = "saos-mcp-server/1.0"
	defaultTimeout   = 30 * time.Second

	tracerName = "github.com/janhq/saos-mcp-server/internal/infrastructure/saos"
)

// ClientConfig captures the knobs exposed to operators for the SAOS client.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Transport overrides the HTTP transport; tests use it to inject failures.
	Transport http.RoundTripper
}

// Client implements judgment.Executor against the SAOS REST API.
type Client struct {
	cfg    ClientConfig
	http   *resty.Client
	tracer trace.Tracer
}

var _ judgment.Executor = (*Client)(nil)

// NewClient wires a resty client with the fixed SAOS headers and timeout.
// Keep-alives are disabled so each call owns its connection and releases it
// when the call returns.
func NewClient(cfg ClientConfig) *Client {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	transport := cfg.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
			ForceAttemptHTTP2: true,
		}
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetTransport(transport)

	return &Client{
		cfg:    cfg,
		http:   httpClient,
		tracer: otel.Tracer(tracerName),
	}
}

// Execute issues one GET to path with params and returns the JSON body
// verbatim. Every failure is returned as *judgment.UnavailableError.
func (c *Client) Execute(ctx context.Context, path string, params []judgment.QueryParam) (json.RawMessage, error) {
	startTime := time.Now()
	endpoint := endpointLabel(path)

	ctx, span := c.tracer.Start(ctx, "saos.request",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", c.cfg.BaseURL+path),
		),
	)
	defer span.End()

	req := c.http.R().SetContext(ctx)
	for _, p := range params {
		req.SetQueryParam(p.Key, p.Value)
	}

	resp, err := req.Get(path)
	body, opErr := classify(path, resp, err)

	outcome := string(judgment.KindOf(opErr))
	metrics.RecordRemoteRequest(endpoint, outcome, time.Since(startTime).Seconds())
	if err == nil && resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	}

	if opErr != nil {
		span.SetAttributes(attribute.String("saos.failure_kind", outcome))
		span.SetStatus(codes.Error, opErr.Error())
		log.Debug().
			Err(opErr).
			Str("service", "saos").
			Str("path", path).
			Str("failure_kind", outcome).
			Int64("duration_ms", time.Since(startTime).Milliseconds()).
			Msg("SAOS API request failed")
		return nil, opErr
	}

	log.Debug().
		Str("service", "saos").
		Str("path", path).
		Int("status", resp.StatusCode()).
		Int("bytes", len(body)).
		Int64("duration_ms", time.Since(startTime).Milliseconds()).
		Msg("SAOS API request completed")
	return body, nil
}

// classify folds the transport outcome into a body or an UnavailableError.
func classify(path string, resp *resty.Response, err error) (json.RawMessage, error) {
	if err != nil {
		kind := judgment.FailureNetwork
		if isTimeout(err) {
			kind = judgment.FailureTimeout
		}
		return nil, &judgment.UnavailableError{Kind: kind, Path: path, Err: err}
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return nil, &judgment.UnavailableError{Kind: judgment.FailureHTTPStatus, StatusCode: status, Path: path}
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, &judgment.UnavailableError{
			Kind:       judgment.FailureDecode,
			StatusCode: status,
			Path:       path,
			Err:        errors.New("response body is not valid JSON"),
		}
	}

	out := make(json.RawMessage, len(body))
	copy(out, body)
	return out, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// endpointLabel maps a request path to a metric label.
func endpointLabel(path string) string {
	switch {
	case path == judgment.SearchPath:
		return "search_judgments"
	case strings.HasPrefix(path, "/judgments/"):
		return "get_judgment"
	default:
		return "other"
	}
}
