// Package report runs the fetch, filter and render pipeline once.
package report

import (
	"context"
	"fmt"
	"io"
	"log"

	"code.cloudfoundry.org/clock"

	"meteocli/datasource"
	"meteocli/forecast"
	"meteocli/models"
	"meteocli/render"
	"meteocli/weathercode"
)

// Report prints the upcoming hourly forecast for one location
type Report struct {
	Source      datasource.ForecastSource
	Clock       clock.Clock
	Table       *render.Table
	Filter      forecast.FilterPolicy
	OnMissing   render.MissingFieldPolicy
	ShowCurrent bool
}

// New creates a report with the wall clock, chronological filtering and
// abort-on-missing-field behavior
func New(source datasource.ForecastSource, mode render.Mode) *Report {
	return &Report{
		Source:    source,
		Clock:     clock.NewClock(),
		Table:     render.NewTable(mode),
		Filter:    forecast.FilterChronological,
		OnMissing: render.AbortOnMissing,
	}
}

// Run fetches the forecast once and writes the table to w.
// A response without hourly data produces a header-only table.
func (r *Report) Run(ctx context.Context, w io.Writer, loc models.Location, elevation float64) error {
	opts := models.DefaultForecastOptions(loc, elevation, r.Table.Fields())

	resp, err := r.Source.FetchForecast(ctx, opts)
	if err != nil {
		return fmt.Errorf("error fetching forecast from %s: %w", r.Source.Name(), err)
	}

	now := r.Clock.Now()
	upcoming := forecast.SelectUpcoming(resp.Hourly, now, r.Filter)
	log.Printf("Received %d hourly entries from %s, %d upcoming (%s filter)",
		len(resp.Hourly), resp.Provider, len(upcoming), r.Filter)

	if r.ShowCurrent && resp.Current != nil {
		if _, err := fmt.Fprintln(w, CurrentLine(*resp.Current)); err != nil {
			return fmt.Errorf("failed to write current weather: %w", err)
		}
	}

	return r.Table.WriteTable(w, upcoming, r.OnMissing)
}

// CurrentLine formats the current-conditions snapshot
func CurrentLine(c models.CurrentWeather) string {
	return fmt.Sprintf("Now (%s): %s %s, wind %s %s, %s",
		c.Timestamp.Format("Jan 02, 15:04"),
		c.Temperature, c.Temperature.Unit,
		c.WindSpeed, c.WindSpeed.Unit,
		weathercode.Describe(c.WeatherCode))
}
