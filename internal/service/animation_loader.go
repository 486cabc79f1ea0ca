package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/smartcity/erbil-dashboard/internal/domain"
	"github.com/smartcity/erbil-dashboard/internal/observability"
)

// AnimationLoader fetches the JSON loading animation
type AnimationLoader struct {
	url        string
	httpClient *http.Client
	metrics    *observability.Metrics
}

// NewAnimationLoader creates a loader for a fixed animation URL.
// The transport default timeout applies; there is no retry.
func NewAnimationLoader(url string, metrics *observability.Metrics) *AnimationLoader {
	return &AnimationLoader{
		url:        url,
		httpClient: http.DefaultClient,
		metrics:    metrics,
	}
}

// Load fetches the configured animation
func (l *AnimationLoader) Load(ctx context.Context) (json.RawMessage, error) {
	doc, err := FetchAnimation(ctx, l.httpClient, l.url)
	l.metrics.AnimationFetches.WithLabelValues(fetchOutcome(err)).Inc()
	return doc, err
}

// FetchAnimation performs a single GET and returns the whole JSON body.
// Any failure is a *domain.FetchError and no document is returned with it.
func FetchAnimation(ctx context.Context, client *http.Client, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.FetchError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.FetchError{Err: fmt.Errorf("read body: %w", err)}
	}

	var doc json.RawMessage
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &domain.FetchError{Status: resp.StatusCode, Err: fmt.Errorf("decode body: %w", err)}
	}

	return doc, nil
}

func fetchOutcome(err error) string {
	var fe *domain.FetchError
	switch {
	case err == nil:
		return "success"
	case !errors.As(err, &fe):
		return "transport_error"
	case fe.Status == 0:
		return "transport_error"
	case fe.Status == http.StatusOK:
		return "decode_error"
	default:
		return "http_error"
	}
}
