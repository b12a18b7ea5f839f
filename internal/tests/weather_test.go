package tests

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"mockapi/internal/logging"
	"mockapi/internal/service"
)

func newWeather(rnd service.Random, now time.Time) *service.WeatherService {
	return service.NewWeatherService(rnd, NewFixedClock(now), logging.Discard())
}

func TestCityFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		lat, lon float64
		want     string
	}{
		{"cape town", -33.9249, 18.4241, "cape-town"},
		{"johannesburg", -26.2041, 28.0473, "johannesburg"},
		{"durban", -29.8587, 31.0218, "durban"},
		{"pretoria north of the johannesburg box", -25.3, 28.6, "pretoria"},
		{"overlap resolves to the first city", -25.75, 28.19, "johannesburg"},
		{"port elizabeth", -33.9608, 25.6022, "port-elizabeth"},
		{"box edge is inclusive", -34.5, 18, "cape-town"},
		{"outside every box falls back", 51.5074, -0.1278, "cape-town"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := service.CityFor(tc.lat, tc.lon).Key; got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestWeather_CurrentFromBaseline(t *testing.T) {
	t.Parallel()

	// Every float roll is 0.5, so variations cancel out.
	svc := newWeather(NewScriptedRandom(), time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	snapshot, err := svc.Weather(context.Background(), -33.9249, 18.4241, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.Location != "cape-town" {
		t.Errorf("expected cape-town, got %s", snapshot.Location)
	}
	cur := snapshot.Current
	if cur.Temp != 22 || cur.Humidity != 65 || cur.WindSpeed != 15 || cur.UVIndex != 7 {
		t.Errorf("unexpected current weather %+v", cur)
	}
	if cur.Conditions != "Sunny" {
		t.Errorf("expected first vocabulary label, got %s", cur.Conditions)
	}
	if snapshot.Forecast != nil {
		t.Error("expected no forecast without eventTime")
	}
	if snapshot.Alerts != nil {
		t.Error("expected no alerts for a high roll")
	}
}

func TestWeather_VariationUsesUpperBound(t *testing.T) {
	t.Parallel()

	// Johannesburg temp upper bound 12: roll 0.9 adds (0.4 * 12) = 4.8.
	rnd := NewScriptedRandom(0.9, 0.0, 0.0, 0.5).WithInts(3)
	svc := newWeather(rnd, time.Now())

	snapshot, err := svc.Weather(context.Background(), -26.2041, 28.0473, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cur := snapshot.Current
	if cur.Temp != 23 {
		t.Errorf("expected temp 23, got %d", cur.Temp)
	}
	if cur.Conditions != "Light Rain" {
		t.Errorf("expected Light Rain, got %s", cur.Conditions)
	}
	// 45 - 0.5*20 and 8 - 0.5*8
	if cur.Humidity != 35 || cur.WindSpeed != 4 {
		t.Errorf("unexpected humidity/wind %v/%v", cur.Humidity, cur.WindSpeed)
	}
}

func TestWeather_Forecast(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		eventTime      time.Time
		rainRoll       float64
		wantRain       int
		wantConditions string
		wantTemp       int
	}{
		{"heavy rain chance", now, 0.9, 74, "Rain", 22},
		{"moderate rain chance", now, 0.5, 50, "Cloudy", 22},
		{"low rain chance", now, 0.2, 32, "Partly Cloudy", 22},
		{"a day ahead follows the daily cycle", now.Add(24 * time.Hour), 0.2, 32, "Partly Cloudy", 26},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// current: temp, humidity, wind; forecast: rain, temp, wind; alert.
			rnd := NewScriptedRandom(0.5, 0.5, 0.5, tc.rainRoll, 0.5, 0.5, 0.5)
			svc := newWeather(rnd, now)

			eventTime := tc.eventTime
			snapshot, err := svc.Weather(context.Background(), -33.9249, 18.4241, &eventTime)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			f := snapshot.Forecast
			if f == nil {
				t.Fatal("expected a forecast")
			}
			if f.RainChance != tc.wantRain {
				t.Errorf("expected rain %d, got %d", tc.wantRain, f.RainChance)
			}
			if f.Conditions != tc.wantConditions {
				t.Errorf("expected %s, got %s", tc.wantConditions, f.Conditions)
			}
			if f.Temp != tc.wantTemp {
				t.Errorf("expected temp %d, got %d", tc.wantTemp, f.Temp)
			}
			if f.WindSpeed != 15 {
				t.Errorf("expected wind 15, got %v", f.WindSpeed)
			}
		})
	}
}

func TestWeather_Alert(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	rnd := NewScriptedRandom(0.5, 0.5, 0.5, 0.05)
	svc := newWeather(rnd, now)

	snapshot, err := svc.Weather(context.Background(), -29.8587, 31.0218, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot.Alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(snapshot.Alerts))
	}
	alert := snapshot.Alerts[0]
	if alert.Type != "warning" || alert.Severity != "moderate" || alert.Description != "Strong wind warning in effect" {
		t.Errorf("unexpected alert %+v", alert)
	}
	if !alert.StartTime.Equal(now) || !alert.EndTime.Equal(now.Add(6*time.Hour)) {
		t.Errorf("unexpected alert window %v - %v", alert.StartTime, alert.EndTime)
	}
}

func TestWeather_BoundsHoldUnderRandomRolls(t *testing.T) {
	t.Parallel()

	svc := newWeather(service.NewRandom(99), time.Now())
	eventTime := time.Now().Add(48 * time.Hour)

	for i := 0; i < 200; i++ {
		snapshot, err := svc.Weather(context.Background(), -25.3, 28.6, &eventTime)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h := snapshot.Current.Humidity; h < 20 || h > 100 {
			t.Fatalf("humidity %v out of range", h)
		}
		if snapshot.Current.WindSpeed < 0 || snapshot.Forecast.WindSpeed < 0 {
			t.Fatal("negative wind speed")
		}
		if r := snapshot.Forecast.RainChance; r < 20 || r > 80 {
			t.Fatalf("rain chance %d out of range", r)
		}
	}
}

func TestWeather_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	svc := newWeather(NewScriptedRandom(), time.Now())

	_, err := svc.Weather(context.Background(), math.NaN(), 18.4, nil)
	if !errors.Is(err, service.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}
}

func TestParseEventTime(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input   string
		want    time.Time
		wantErr bool
	}{
		{input: "2024-03-01T18:00:00Z", want: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)},
		{input: "2024-03-01T18:00:00.250Z", want: time.Date(2024, 3, 1, 18, 0, 0, 250_000_000, time.UTC)},
		{input: "2024-03-01T20:00:00+02:00", want: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)},
		{input: "2024-03-01T20:00:00", want: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)},
		{input: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{input: "next friday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			got, err := service.ParseEventTime(tc.input, sast)
			if tc.wantErr {
				if !errors.Is(err, service.ErrInvalidEventTime) || !errors.Is(err, service.ErrValidation) {
					t.Errorf("expected invalid event time error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
