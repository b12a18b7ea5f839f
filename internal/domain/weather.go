package domain

import "time"

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// BoundingBox is a lat/lon rectangle.
type BoundingBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// CityClimate is the baseline weather for a known city.
type CityClimate struct {
	Key        string
	Box        BoundingBox
	Temp       float64
	Conditions string
	Humidity   float64
	WindSpeed  float64
	UVIndex    int

	TempVariation     Range
	HumidityVariation Range
	WindVariation     Range
}

// CurrentWeather is the observed weather right now.
type CurrentWeather struct {
	Temp       int
	Conditions string
	Humidity   float64
	WindSpeed  float64
	UVIndex    int
}

// Forecast is the predicted weather at a requested instant.
type Forecast struct {
	Temp       int
	RainChance int
	Conditions string
	WindSpeed  float64
}

// WeatherAlert is a synthetic weather warning.
type WeatherAlert struct {
	Type        string
	Description string
	Severity    string
	StartTime   time.Time
	EndTime     time.Time
}

// WeatherSnapshot is the full weather answer for a location.
type WeatherSnapshot struct {
	Location string
	Current  CurrentWeather
	Forecast *Forecast
	Alerts   []WeatherAlert
}
