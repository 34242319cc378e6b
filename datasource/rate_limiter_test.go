package datasource

import (
	"context"
	"errors"
	"testing"
	"time"

	"meteocli/models"
)

type countingSource struct {
	calls int
}

func (s *countingSource) Name() string { return "Counting" }

func (s *countingSource) FetchForecast(ctx context.Context, opts models.ForecastOptions) (models.ForecastResponse, error) {
	s.calls++
	return models.ForecastResponse{Provider: s.Name()}, nil
}

func TestRateLimitedForecastSource(t *testing.T) {
	source := &countingSource{}
	limited := NewRateLimitedForecastSource(source, 0.001, 1)

	if limited.Name() != "Counting [Rate Limited]" {
		t.Fatalf("unexpected name %q", limited.Name())
	}

	if _, err := limited.FetchForecast(context.Background(), models.ForecastOptions{}); err != nil {
		t.Fatalf("first request should use the burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := limited.FetchForecast(ctx, models.ForecastOptions{})
	if err == nil {
		t.Fatalf("second request should wait past the deadline")
	}
	if errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("rate limit error should not look like a provider failure")
	}
	if source.calls != 1 {
		t.Fatalf("expected 1 call to the source, got %d", source.calls)
	}
}
