package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"mockapi/internal/service"
)

// WeatherHandler handles HTTP requests for the weather simulator.
type WeatherHandler struct {
	weatherService *service.WeatherService
	location       *time.Location
}

// NewWeatherHandler creates a new WeatherHandler. Zone-less eventTime values
// are read in location.
func NewWeatherHandler(weatherService *service.WeatherService, location *time.Location) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService, location: location}
}

// CurrentWeatherResponse is the weather right now.
type CurrentWeatherResponse struct {
	Temp       int     `json:"temp"`
	Conditions string  `json:"conditions"`
	Humidity   float64 `json:"humidity"`
	WindSpeed  float64 `json:"wind_speed"`
	UVIndex    int     `json:"uv_index"`
}

// EventForecastResponse is the predicted weather at the event time.
type EventForecastResponse struct {
	Temp       int     `json:"temp"`
	RainChance int     `json:"rain_chance"`
	Conditions string  `json:"conditions"`
	WindSpeed  float64 `json:"wind_speed"`
}

// ForecastResponse wraps the event forecast.
type ForecastResponse struct {
	EventTime EventForecastResponse `json:"event_time"`
}

// AlertResponse is a weather warning.
type AlertResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

// WeatherResponse is the full weather answer.
type WeatherResponse struct {
	Location string                 `json:"location"`
	Current  CurrentWeatherResponse `json:"current"`
	Forecast *ForecastResponse      `json:"forecast,omitempty"`
	Alerts   []AlertResponse        `json:"alerts,omitempty"`
}

// Weather handles GET /api/mocks/services/weather
func (h *WeatherHandler) Weather(c *gin.Context) {
	coords, err := parseFloatParams(c, "lat", "lon")
	if err != nil {
		respondError(c, err)
		return
	}

	var eventTime *time.Time
	if raw := c.Query("eventTime"); raw != "" {
		t, err := service.ParseEventTime(raw, h.location)
		if err != nil {
			respondError(c, err)
			return
		}
		eventTime = &t
	}

	snapshot, err := h.weatherService.Weather(c.Request.Context(), coords[0], coords[1], eventTime)
	if err != nil {
		respondError(c, err)
		return
	}

	cur := snapshot.Current
	resp := WeatherResponse{
		Location: snapshot.Location,
		Current: CurrentWeatherResponse{
			Temp:       cur.Temp,
			Conditions: cur.Conditions,
			Humidity:   cur.Humidity,
			WindSpeed:  cur.WindSpeed,
			UVIndex:    cur.UVIndex,
		},
	}
	if f := snapshot.Forecast; f != nil {
		resp.Forecast = &ForecastResponse{EventTime: EventForecastResponse{
			Temp:       f.Temp,
			RainChance: f.RainChance,
			Conditions: f.Conditions,
			WindSpeed:  f.WindSpeed,
		}}
	}
	for _, a := range snapshot.Alerts {
		resp.Alerts = append(resp.Alerts, AlertResponse{
			Type:        a.Type,
			Description: a.Description,
			Severity:    a.Severity,
			StartTime:   formatTime(a.StartTime),
			EndTime:     formatTime(a.EndTime),
		})
	}

	respondJSON(c, http.StatusOK, resp)
}
