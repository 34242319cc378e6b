package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"

	"meteocli/datasource"
	"meteocli/forecast"
	"meteocli/models"
	"meteocli/render"
)

type stubSource struct {
	resp models.ForecastResponse
	err  error
	opts models.ForecastOptions
}

func (s *stubSource) Name() string { return "Stub" }

func (s *stubSource) FetchForecast(ctx context.Context, opts models.ForecastOptions) (models.ForecastResponse, error) {
	s.opts = opts
	return s.resp, s.err
}

func entryAt(t time.Time, code float64) models.ForecastEntry {
	return models.ForecastEntry{
		Time: t,
		Values: map[string]models.MeasuredValue{
			render.FieldTemperature:              {Value: 21.5, Unit: "°C"},
			render.FieldRelativeHumidity:         {Value: 55, Unit: "%"},
			render.FieldPrecipitationProbability: {Value: 10, Unit: "%"},
			render.FieldPrecipitation:            {Value: 0.2, Unit: "mm"},
			render.FieldWeatherCode:              {Value: code},
		},
	}
}

func newReport(source *stubSource, mode render.Mode, now time.Time) *Report {
	r := New(source, mode)
	r.Clock = fakeclock.NewFakeClock(now)
	return r
}

func TestRunPrintsUpcomingRows(t *testing.T) {
	day := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	source := &stubSource{resp: models.ForecastResponse{
		Provider: "Stub",
		Hourly: []models.ForecastEntry{
			entryAt(day.Add(13*time.Hour), 3),
			entryAt(day.Add(14*time.Hour), 61),
			entryAt(day.Add(15*time.Hour), 63),
		},
	}}

	var buf bytes.Buffer
	r := newReport(source, render.ModeDescribed, day.Add(14*time.Hour+20*time.Minute))
	if err := r.Run(context.Background(), &buf, models.Location{Lat: 1, Lng: 2}, 100); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[1], "Jan 05, 14h") || !strings.HasSuffix(lines[1], "Rain: Slight intensity") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "Rain: Moderate intensity") {
		t.Fatalf("unexpected second row %q", lines[2])
	}

	opts := source.opts
	if opts.Location.Lat != 1 || opts.Location.Lng != 2 || opts.Elevation == nil || *opts.Elevation != 100 {
		t.Fatalf("unexpected request location %+v", opts)
	}
	if !opts.CurrentWeather || opts.ForecastDays != 2 || len(opts.Hourly) != 5 {
		t.Fatalf("unexpected request options %+v", opts)
	}
}

func TestRunWithoutHourlyData(t *testing.T) {
	source := &stubSource{resp: models.ForecastResponse{Provider: "Stub"}}

	var buf bytes.Buffer
	r := newReport(source, render.ModeBasic, time.Now())
	if err := r.Run(context.Background(), &buf, models.Location{}, 0); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if buf.String() != r.Table.Header()+"\n" {
		t.Fatalf("expected header only, got %q", buf.String())
	}
	if len(source.opts.Hourly) != 4 {
		t.Fatalf("basic mode should request 4 fields, got %v", source.opts.Hourly)
	}
}

func TestRunProviderFailure(t *testing.T) {
	source := &stubSource{err: datasource.ErrProviderUnavailable}

	var buf bytes.Buffer
	err := newReport(source, render.ModeBasic, time.Now()).Run(context.Background(), &buf, models.Location{}, 0)
	if !errors.Is(err, datasource.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestRunMissingField(t *testing.T) {
	now := time.Date(2024, time.January, 5, 10, 0, 0, 0, time.UTC)
	broken := entryAt(now, 0)
	delete(broken.Values, render.FieldRelativeHumidity)
	source := &stubSource{resp: models.ForecastResponse{Hourly: []models.ForecastEntry{broken}}}

	var buf bytes.Buffer
	err := newReport(source, render.ModeBasic, now).Run(context.Background(), &buf, models.Location{}, 0)
	if !errors.Is(err, forecast.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestRunShowsCurrentWeather(t *testing.T) {
	now := time.Date(2024, time.January, 5, 14, 0, 0, 0, time.UTC)
	source := &stubSource{resp: models.ForecastResponse{
		Current: &models.CurrentWeather{
			Temperature: models.MeasuredValue{Value: 3.1, Unit: "°C"},
			WindSpeed:   models.MeasuredValue{Value: 10.2, Unit: "km/h"},
			WeatherCode: 0,
			Timestamp:   now,
		},
	}}

	var buf bytes.Buffer
	r := newReport(source, render.ModeBasic, now)
	r.ShowCurrent = true
	if err := r.Run(context.Background(), &buf, models.Location{}, 0); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	first := strings.SplitN(buf.String(), "\n", 2)[0]
	if first != "Now (Jan 05, 14:00): 3.1 °C, wind 10.2 km/h, Clear sky" {
		t.Fatalf("unexpected current line %q", first)
	}
}
