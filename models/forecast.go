package models

import (
	"strconv"
	"time"
)

// Location is a latitude/longitude pair in decimal degrees
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MeasuredValue is a single quantity with its unit of measurement.
// Unit is empty for values without a physical unit, such as a weather code.
type MeasuredValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// HasUnit reports whether the provider supplied a unit for the value
func (v MeasuredValue) HasUnit() bool {
	return v.Unit != ""
}

// String returns the value in its shortest exact form (21.5, 55, 0.2)
func (v MeasuredValue) String() string {
	return strconv.FormatFloat(v.Value, 'f', -1, 64)
}

// ForecastEntry is one hourly bucket of predicted values
type ForecastEntry struct {
	Time   time.Time                `json:"time"`
	Values map[string]MeasuredValue `json:"values"`
}

// ForecastResponse is the provider answer for one request.
// Hourly is nil when the provider returned no hourly block.
type ForecastResponse struct {
	Provider  string          `json:"provider"`
	Location  Location        `json:"location"`
	Elevation float64         `json:"elevation"`
	Hourly    []ForecastEntry `json:"hourly,omitempty"`
	Current   *CurrentWeather `json:"currentWeather,omitempty"`
	Updated   time.Time       `json:"updated"`
}
