package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/goto/lineage/core/lineage"
	"github.com/goto/lineage/pkg/statsd"
	"github.com/goto/salt/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	listPath  = "/api/meta/lineage/list"
	graphPath = "/api/meta/lineage/getlineage"

	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 4 << 10
)

type Config struct {
	Host       string        `yaml:"host" mapstructure:"host" default:"http://localhost:8080"`
	APIToken   string        `yaml:"api_token" mapstructure:"api_token"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout" default:"30s"`
	MaxRetries int           `yaml:"max_retries" mapstructure:"max_retries" default:"3"`
}

// Client talks to the lineage endpoints of the catalog REST API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	backoff    BackoffStrategy
	logger     log.Logger
	reporter   *statsd.Reporter
	tracer     trace.Tracer
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithBackoff(b BackoffStrategy) Option {
	return func(c *Client) { c.backoff = b }
}

func WithLogger(l log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func WithStatsDReporter(r *statsd.Reporter) Option {
	return func(c *Client) { c.reporter = r }
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errMissingHost
	}
	cfg.Host = strings.TrimRight(cfg.Host, "/")
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		backoff:    DefaultBackoff,
		logger:     log.NewNoop(),
		tracer:     otel.Tracer("github.com/goto/lineage/internal/client"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GetLineageList fetches one page of the lineage list.
func (c *Client) GetLineageList(ctx context.Context, req lineage.ListRequest) (lineage.ListResponse, error) {
	var resp lineage.ListResponse
	if err := c.post(ctx, listPath, req, &resp); err != nil {
		return lineage.ListResponse{}, err
	}
	return resp, nil
}

// GetLineage fetches the relation graph around req.GUID.
func (c *Client) GetLineage(ctx context.Context, req lineage.GraphRequest) (*lineage.Response, error) {
	var resp lineage.Response
	if err := c.post(ctx, graphPath, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) (err error) {
	ctx, span := c.tracer.Start(ctx, "lineage.client"+strings.ReplaceAll(path, "/", "."),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("http.route", path)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	requestID := uuid.NewString()
	for attempt := 0; ; attempt++ {
		err = c.do(ctx, path, requestID, body, out)
		if err == nil || attempt >= c.cfg.MaxRetries || !retryable(ctx, err) {
			return err
		}

		wait := c.backoff.Backoff(attempt + 1)
		c.logger.Warn("retrying catalog request",
			"path", path,
			"request_id", requestID,
			"attempt", attempt+1,
			"wait", wait.String(),
			"err", err,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (c *Client) do(ctx context.Context, path, requestID string, body []byte, out interface{}) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		m := c.reporter.Timing("catalog.request", time.Since(start)).
			Tag("path", path).
			Tag("status", strconv.Itoa(status))
		if err != nil {
			m.Failure()
		} else {
			m.Success()
		}
		m.Publish()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Host+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if c.cfg.APIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", errCallCatalog, err)
	}
	defer res.Body.Close()
	status = res.StatusCode

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &APIError{
			Method:     http.MethodPost,
			Path:       path,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(msg)),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response of %s: %w", path, err)
	}

	return nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}
	return errors.Is(err, errCallCatalog)
}
