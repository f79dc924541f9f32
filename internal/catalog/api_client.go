package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"linetrack.dev/internal/logging"
	"linetrack.dev/internal/models"
)

// errNotFound marks upstream 404s, which are never retried.
var errNotFound = errors.New("not found")

// APIClient reads the catalog from a JSON REST API exposing
// /lines, /patterns/{id} and /shapes/{id}.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	logger     *slog.Logger

	// newBackOff builds the retry schedule for a single request.
	newBackOff func() backoff.BackOff
}

// NewAPIClient returns a client for the API rooted at baseURL.
func NewAPIClient(baseURL string, timeout time.Duration, maxRetries int, logger *slog.Logger) *APIClient {
	if logger == nil {
		logger = slog.Default()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: uint64(maxRetries),
		logger:     logger.With(logging.Component("catalog_api")),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 200 * time.Millisecond
			b.MaxElapsedTime = 30 * time.Second
			return b
		},
	}
}

func (c *APIClient) Lines(ctx context.Context) []models.Line {
	var payload []apiLine
	if err := c.getJSON(ctx, "/lines", &payload); err != nil {
		logging.LogError(c.logger, "failed to fetch lines", err)
		return nil
	}

	lines := make([]models.Line, 0, len(payload))
	for _, l := range payload {
		lines = append(lines, l.toModel())
	}
	return lines
}

// Patterns fetches each pattern concurrently. Patterns that fail to load are
// skipped; the rest keep the order of ids.
func (c *APIClient) Patterns(ctx context.Context, ids []string) []models.Pattern {
	results := make([]*models.Pattern, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			var payload apiPattern
			if err := c.getJSON(ctx, "/patterns/"+url.PathEscape(id), &payload); err != nil {
				logging.LogError(c.logger, "failed to fetch pattern", err, slog.String("pattern_id", id))
				return
			}
			p := payload.toModel()
			if p.ID == "" {
				p.ID = id
			}
			results[i] = &p
		}(i, id)
	}
	wg.Wait()

	patterns := make([]models.Pattern, 0, len(ids))
	for _, p := range results {
		if p != nil {
			patterns = append(patterns, *p)
		}
	}
	return patterns
}

func (c *APIClient) Shape(ctx context.Context, id string) (models.Shape, bool) {
	if id == "" {
		return models.Shape{}, false
	}

	var payload apiShape
	if err := c.getJSON(ctx, "/shapes/"+url.PathEscape(id), &payload); err != nil {
		logging.LogError(c.logger, "failed to fetch shape", err, slog.String("shape_id", id))
		return models.Shape{}, false
	}
	shape := payload.toModel(id)
	if len(shape.Coordinates) == 0 {
		return models.Shape{}, false
	}
	return shape, true
}

// getJSON performs a GET against the API and decodes the body into out,
// retrying transport errors and 5xx responses.
func (c *APIClient) getJSON(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL + path

	operation := func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, err
		}
		defer logging.SafeCloseWithLogging(resp.Body, c.logger, "response body")

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, backoff.Permanent(fmt.Errorf("GET %s: %w", path, errNotFound))
		case resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests:
			return nil, fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
		case resp.StatusCode != http.StatusOK:
			return nil, backoff.Permanent(fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode))
		}
		return body, nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), ctx)
	notify := func(err error, wait time.Duration) {
		c.logger.Debug("retrying catalog request",
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Duration("wait", wait))
	}

	body, err := backoff.RetryNotifyWithData[[]byte](operation, b, notify)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
