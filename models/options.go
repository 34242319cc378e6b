package models

// Units accepted by the forecast provider
const (
	TemperatureCelsius      = "celsius"
	WindSpeedKmh            = "kmh"
	PrecipitationMillimeter = "mm"
)

// ForecastOptions describes one forecast request
type ForecastOptions struct {
	Location          Location
	Elevation         *float64 // nil lets the provider use its terrain model
	CurrentWeather    bool
	TemperatureUnit   string
	WindSpeedUnit     string
	PrecipitationUnit string
	Timezone          string
	ForecastDays      int
	Hourly            []string
}

// DefaultForecastOptions returns the request used by the command line viewer
func DefaultForecastOptions(loc Location, elevation float64, hourly []string) ForecastOptions {
	return ForecastOptions{
		Location:          loc,
		Elevation:         &elevation,
		CurrentWeather:    true,
		TemperatureUnit:   TemperatureCelsius,
		WindSpeedUnit:     WindSpeedKmh,
		PrecipitationUnit: PrecipitationMillimeter,
		Timezone:          "auto",
		ForecastDays:      2,
		Hourly:            hourly,
	}
}
