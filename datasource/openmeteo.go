package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"meteocli/models"
)

// DefaultOpenMeteoURL is the public Open-Meteo API endpoint
const DefaultOpenMeteoURL = "https://api.open-meteo.com/v1"

const (
	openMeteoTimeLayout = "2006-01-02T15:04"
	openMeteoCodeUnit   = "wmo code"
)

// OpenMeteoProvider implements ForecastSource against the Open-Meteo API
type OpenMeteoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoProvider creates a new Open-Meteo provider. An empty baseURL
// selects the public endpoint.
func NewOpenMeteoProvider(baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}
	return &OpenMeteoProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name
func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

type openMeteoResponse struct {
	Latitude         float64                    `json:"latitude"`
	Longitude        float64                    `json:"longitude"`
	Elevation        float64                    `json:"elevation"`
	UTCOffsetSeconds int                        `json:"utc_offset_seconds"`
	Timezone         string                     `json:"timezone"`
	CurrentWeather   *openMeteoCurrent          `json:"current_weather"`
	CurrentUnits     map[string]string          `json:"current_weather_units"`
	HourlyUnits      map[string]string          `json:"hourly_units"`
	Hourly           map[string]json.RawMessage `json:"hourly"`
}

type openMeteoCurrent struct {
	Time          string  `json:"time"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     float64 `json:"windspeed"`
	WindDirection float64 `json:"winddirection"`
	WeatherCode   uint    `json:"weathercode"`
}

type openMeteoError struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// FetchForecast requests an hourly forecast for opts.Location
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, opts models.ForecastOptions) (models.ForecastResponse, error) {
	endpoint := fmt.Sprintf("%s/forecast", p.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+queryParams(opts).Encode(), nil)
	if err != nil {
		return models.ForecastResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.ForecastResponse{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ForecastResponse{}, fmt.Errorf("%w: failed to read response body: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr openMeteoError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Reason != "" {
			return models.ForecastResponse{}, fmt.Errorf("%w: API error (status %d): %s", ErrProviderUnavailable, resp.StatusCode, apiErr.Reason)
		}
		return models.ForecastResponse{}, fmt.Errorf("%w: API error (status %d): %s", ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	var response openMeteoResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.ForecastResponse{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	zone := time.FixedZone(response.Timezone, response.UTCOffsetSeconds)

	forecast := models.ForecastResponse{
		Provider:  p.Name(),
		Location:  models.Location{Lat: response.Latitude, Lng: response.Longitude},
		Elevation: response.Elevation,
		Updated:   time.Now(),
	}

	if response.Hourly != nil {
		forecast.Hourly, err = decodeHourly(response.Hourly, response.HourlyUnits, zone)
		if err != nil {
			return models.ForecastResponse{}, err
		}
	}

	if response.CurrentWeather != nil {
		forecast.Current, err = decodeCurrent(response.CurrentWeather, response.CurrentUnits, opts, zone)
		if err != nil {
			return models.ForecastResponse{}, err
		}
	}

	return forecast, nil
}

func queryParams(opts models.ForecastOptions) url.Values {
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(opts.Location.Lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(opts.Location.Lng, 'f', -1, 64))
	if opts.Elevation != nil {
		params.Add("elevation", strconv.FormatFloat(*opts.Elevation, 'f', -1, 64))
	}
	if opts.CurrentWeather {
		params.Add("current_weather", "true")
	}
	if opts.TemperatureUnit != "" {
		params.Add("temperature_unit", opts.TemperatureUnit)
	}
	if opts.WindSpeedUnit != "" {
		params.Add("windspeed_unit", opts.WindSpeedUnit)
	}
	if opts.PrecipitationUnit != "" {
		params.Add("precipitation_unit", opts.PrecipitationUnit)
	}
	if opts.Timezone != "" {
		params.Add("timezone", opts.Timezone)
	}
	if opts.ForecastDays > 0 {
		params.Add("forecast_days", strconv.Itoa(opts.ForecastDays))
	}
	if len(opts.Hourly) > 0 {
		params.Add("hourly", strings.Join(opts.Hourly, ","))
	}
	return params
}

// decodeHourly turns the column-oriented hourly block into one entry per
// time stamp. Null values are left out of the entry.
func decodeHourly(hourly map[string]json.RawMessage, units map[string]string, zone *time.Location) ([]models.ForecastEntry, error) {
	rawTimes, ok := hourly["time"]
	if !ok {
		return nil, fmt.Errorf("%w: hourly block has no time column", ErrMalformedResponse)
	}
	var times []string
	if err := json.Unmarshal(rawTimes, &times); err != nil {
		return nil, fmt.Errorf("%w: hourly time: %v", ErrMalformedResponse, err)
	}

	entries := make([]models.ForecastEntry, len(times))
	for i, ts := range times {
		t, err := time.ParseInLocation(openMeteoTimeLayout, ts, zone)
		if err != nil {
			return nil, fmt.Errorf("%w: hourly time %q: %v", ErrMalformedResponse, ts, err)
		}
		entries[i] = models.ForecastEntry{
			Time:   t,
			Values: make(map[string]models.MeasuredValue, len(hourly)-1),
		}
	}

	for name, raw := range hourly {
		if name == "time" {
			continue
		}
		var column []*float64
		if err := json.Unmarshal(raw, &column); err != nil {
			return nil, fmt.Errorf("%w: hourly %s: %v", ErrMalformedResponse, name, err)
		}
		if len(column) != len(times) {
			return nil, fmt.Errorf("%w: hourly %s has %d values for %d time stamps", ErrMalformedResponse, name, len(column), len(times))
		}

		unit := units[name]
		if unit == openMeteoCodeUnit {
			unit = ""
		}
		for i, v := range column {
			if v == nil {
				continue
			}
			entries[i].Values[name] = models.MeasuredValue{Value: *v, Unit: unit}
		}
	}

	return entries, nil
}

func decodeCurrent(current *openMeteoCurrent, units map[string]string, opts models.ForecastOptions, zone *time.Location) (*models.CurrentWeather, error) {
	t, err := time.ParseInLocation(openMeteoTimeLayout, current.Time, zone)
	if err != nil {
		return nil, fmt.Errorf("%w: current weather time %q: %v", ErrMalformedResponse, current.Time, err)
	}

	// older API versions omit current_weather_units
	tempUnit, windUnit := units["temperature"], units["windspeed"]
	if tempUnit == "" {
		tempUnit = temperatureSymbol(opts.TemperatureUnit)
	}
	if windUnit == "" {
		windUnit = windSpeedSymbol(opts.WindSpeedUnit)
	}

	return &models.CurrentWeather{
		Temperature:   models.MeasuredValue{Value: current.Temperature, Unit: tempUnit},
		WindSpeed:     models.MeasuredValue{Value: current.WindSpeed, Unit: windUnit},
		WindDirection: current.WindDirection,
		WeatherCode:   current.WeatherCode,
		Timestamp:     t,
	}, nil
}

func temperatureSymbol(unit string) string {
	if unit == "fahrenheit" {
		return "°F"
	}
	return "°C"
}

func windSpeedSymbol(unit string) string {
	switch unit {
	case "ms":
		return "m/s"
	case "mph":
		return "mp/h"
	case "kn":
		return "kn"
	default:
		return "km/h"
	}
}

// Ensure OpenMeteoProvider implements ForecastSource
var _ ForecastSource = (*OpenMeteoProvider)(nil)
