package datasource

import (
	"context"
	"errors"

	"meteocli/models"
)

var (
	// ErrProviderUnavailable is returned when the provider cannot be reached
	// or answers with a non-success status
	ErrProviderUnavailable = errors.New("forecast provider unavailable")

	// ErrMalformedResponse is returned when the provider answer cannot be decoded
	ErrMalformedResponse = errors.New("malformed forecast response")
)

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast performs a single forecast request
	FetchForecast(ctx context.Context, opts models.ForecastOptions) (models.ForecastResponse, error)

	// Name returns the source's name
	Name() string
}
