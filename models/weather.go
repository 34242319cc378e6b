package models

import (
	"time"
)

// CurrentWeather is the current-conditions snapshot returned next to the hourly forecast
type CurrentWeather struct {
	Temperature   MeasuredValue `json:"temperature"`
	WindSpeed     MeasuredValue `json:"windSpeed"`
	WindDirection float64       `json:"windDirection"` // degrees
	WeatherCode   uint          `json:"weatherCode"`
	Timestamp     time.Time     `json:"timestamp"`
}
