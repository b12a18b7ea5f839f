package service

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/observability"
)

// DefaultCity is used when a point falls outside every known city box.
const DefaultCity = "cape-town"

const (
	alertChance      = 0.1
	alertDuration    = 6 * time.Hour
	minHumidity      = 20.0
	maxHumidity      = 100.0
	forecastTempAmp  = 5.0
	forecastNoise    = 4.0
	forecastWindSpan = 5.0
)

// weatherConditions is the label vocabulary for current conditions.
// The label is drawn independently of the numeric readings.
var weatherConditions = []string{
	"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Rain", "Thunderstorms",
	"Clear", "Overcast", "Scattered Showers", "Windy", "Humid",
}

// cityClimates is checked in order; boxes overlap, so the first match wins.
var cityClimates = []domain.CityClimate{
	{
		Key: "cape-town", Box: domain.BoundingBox{MinLat: -34.5, MaxLat: -33.5, MinLon: 18, MaxLon: 19},
		Temp: 22, Conditions: "Partly Cloudy", Humidity: 65, WindSpeed: 15, UVIndex: 7,
		TempVariation:     domain.Range{Min: -5, Max: 8},
		HumidityVariation: domain.Range{Min: -15, Max: 15},
		WindVariation:     domain.Range{Min: -5, Max: 10},
	},
	{
		Key: "johannesburg", Box: domain.BoundingBox{MinLat: -26.5, MaxLat: -25.5, MinLon: 27.5, MaxLon: 28.5},
		Temp: 18, Conditions: "Sunny", Humidity: 45, WindSpeed: 8, UVIndex: 9,
		TempVariation:     domain.Range{Min: -8, Max: 12},
		HumidityVariation: domain.Range{Min: -20, Max: 20},
		WindVariation:     domain.Range{Min: -3, Max: 8},
	},
	{
		Key: "durban", Box: domain.BoundingBox{MinLat: -30.5, MaxLat: -29.5, MinLon: 30.5, MaxLon: 31.5},
		Temp: 26, Conditions: "Humid", Humidity: 80, WindSpeed: 12, UVIndex: 8,
		TempVariation:     domain.Range{Min: -4, Max: 6},
		HumidityVariation: domain.Range{Min: -10, Max: 10},
		WindVariation:     domain.Range{Min: -5, Max: 8},
	},
	{
		Key: "pretoria", Box: domain.BoundingBox{MinLat: -26, MaxLat: -25, MinLon: 28, MaxLon: 29},
		Temp: 19, Conditions: "Clear", Humidity: 40, WindSpeed: 6, UVIndex: 9,
		TempVariation:     domain.Range{Min: -7, Max: 11},
		HumidityVariation: domain.Range{Min: -15, Max: 25},
		WindVariation:     domain.Range{Min: -2, Max: 10},
	},
	{
		Key: "port-elizabeth", Box: domain.BoundingBox{MinLat: -34, MaxLat: -33, MinLon: 25, MaxLon: 26},
		Temp: 21, Conditions: "Windy", Humidity: 70, WindSpeed: 20, UVIndex: 6,
		TempVariation:     domain.Range{Min: -6, Max: 9},
		HumidityVariation: domain.Range{Min: -15, Max: 15},
		WindVariation:     domain.Range{Min: -8, Max: 12},
	},
}

// eventTimeLayouts are the accepted eventTime formats, tried in order.
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const dateOnlyLayout = "2006-01-02"

// ParseEventTime parses an ISO-8601 eventTime. Date-times without a zone are
// read in loc; a bare date is midnight UTC.
func ParseEventTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range eventTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, nil
	}
	return time.Time{}, &ValidationError{
		Message: ErrInvalidEventTime.Error(),
		Fields:  []string{"eventTime"},
		cause:   ErrInvalidEventTime,
	}
}

// WeatherService produces randomized weather for South African cities.
type WeatherService struct {
	rnd    Random
	clock  Clock
	logger *slog.Logger
}

// NewWeatherService creates a new WeatherService.
func NewWeatherService(rnd Random, clock Clock, logger *slog.Logger) *WeatherService {
	return &WeatherService{rnd: rnd, clock: clock, logger: logger}
}

// CityFor returns the first city whose box contains the point, or the default city.
func CityFor(lat, lon float64) domain.CityClimate {
	for _, city := range cityClimates {
		if city.Box.Contains(lat, lon) {
			return city
		}
	}
	return cityClimates[0]
}

// Weather returns current conditions, a forecast when eventTime is set, and
// occasionally an alert.
func (s *WeatherService) Weather(ctx context.Context, lat, lon float64, eventTime *time.Time) (*domain.WeatherSnapshot, error) {
	var invalid []string
	if !isFinite(lat) {
		invalid = append(invalid, "lat")
	}
	if !isFinite(lon) {
		invalid = append(invalid, "lon")
	}
	if len(invalid) > 0 {
		return nil, InvalidCoordinatesError(invalid...)
	}

	city := CityFor(lat, lon)
	now := s.clock.Now()

	snapshot := &domain.WeatherSnapshot{
		Location: city.Key,
		Current:  s.current(city),
	}

	if eventTime != nil {
		snapshot.Forecast = s.forecast(snapshot.Current, eventTime.Sub(now).Hours())
	}

	if s.rnd.Float64() < alertChance {
		snapshot.Alerts = []domain.WeatherAlert{{
			Type:        "warning",
			Description: "Strong wind warning in effect",
			Severity:    "moderate",
			StartTime:   now,
			EndTime:     now.Add(alertDuration),
		}}
		observability.WeatherAlerts.Inc()
	}

	observability.WeatherLookups.WithLabelValues(city.Key).Inc()
	s.logger.Debug("weather lookup", "city", city.Key, "forecast", eventTime != nil, "alerts", len(snapshot.Alerts))

	return snapshot, nil
}

// current perturbs the city baseline by up to half the upper variation bound.
func (s *WeatherService) current(city domain.CityClimate) domain.CurrentWeather {
	temp := int(math.Round(city.Temp + s.noise(city.TempVariation.Max)))
	conditions := weatherConditions[s.rnd.IntN(len(weatherConditions))]
	humidity := clamp(city.Humidity+s.noise(city.HumidityVariation.Max), minHumidity, maxHumidity)
	wind := math.Max(0, city.WindSpeed+s.noise(city.WindVariation.Max))

	return domain.CurrentWeather{
		Temp:       temp,
		Conditions: conditions,
		Humidity:   humidity,
		WindSpeed:  wind,
		UVIndex:    city.UVIndex,
	}
}

func (s *WeatherService) forecast(current domain.CurrentWeather, hoursAhead float64) *domain.Forecast {
	cycle := math.Sin(hoursAhead/24) * forecastTempAmp
	rainChance := clamp(20+s.rnd.Float64()*60, 0, 100)
	temp := int(math.Round(float64(current.Temp) + cycle + s.noise(forecastNoise)))
	wind := math.Max(0, current.WindSpeed+s.noise(forecastWindSpan))

	return &domain.Forecast{
		Temp:       temp,
		RainChance: int(math.Round(rainChance)),
		Conditions: forecastConditions(rainChance),
		WindSpeed:  wind,
	}
}

func forecastConditions(rainChance float64) string {
	switch {
	case rainChance > 70:
		return "Rain"
	case rainChance > 40:
		return "Cloudy"
	default:
		return "Partly Cloudy"
	}
}

// noise returns a uniform value in [-span/2, span/2).
func (s *WeatherService) noise(span float64) float64 {
	return (s.rnd.Float64() - 0.5) * span
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
