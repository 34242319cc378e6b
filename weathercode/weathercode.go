// Package weathercode translates WMO weather interpretation codes, as
// published by Open-Meteo, into short descriptions.
package weathercode

// Unknown is returned for codes outside the published table
const Unknown = "Unknown weather code"

var descriptions = map[uint]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Drizzle: Light intensity",
	53: "Drizzle: Moderate intensity",
	55: "Drizzle: Dense intensity",
	56: "Freezing Drizzle: Light intensity",
	57: "Freezing Drizzle: Dense intensity",
	61: "Rain: Slight intensity",
	63: "Rain: Moderate intensity",
	65: "Rain: Heavy intensity",
	66: "Freezing Rain: Light intensity",
	67: "Freezing Rain: Heavy intensity",
	71: "Snow fall: Slight intensity",
	73: "Snow fall: Moderate intensity",
	75: "Snow fall: Heavy intensity",
	77: "Snow grains",
	80: "Rain showers: Slight",
	81: "Rain showers: Moderate",
	82: "Rain showers: Violent",
	85: "Snow showers: Slight",
	86: "Snow showers: Heavy",
	95: "Thunderstorm: Slight or moderate",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Describe returns the description for code, or Unknown
func Describe(code uint) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return Unknown
}

// Known reports whether code is part of the published table
func Known(code uint) bool {
	_, ok := descriptions[code]
	return ok
}

// FromValue converts a numeric weather code as decoded from JSON.
// Negative or fractional values are not valid codes and map to ok=false.
func FromValue(v float64) (code uint, ok bool) {
	if v < 0 || v != float64(uint(v)) {
		return 0, false
	}
	return uint(v), true
}
