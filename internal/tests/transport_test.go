package tests

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/logging"
	"mockapi/internal/service"
)

func newTransport(rnd service.Random, now time.Time) *service.TransportService {
	return service.NewTransportService(
		service.DefaultVehicleClasses(),
		service.DefaultSurgeConfig(),
		rnd,
		NewFixedClock(now),
		sast,
		logging.Discard(),
	)
}

// Wednesday midday: no rush, no weekend, no late night.
var quietMidday = time.Date(2024, 3, 6, 12, 0, 0, 0, sast)

// ──────────────────────────────────────────────
// 1. DISTANCE
// ──────────────────────────────────────────────

func TestHaversine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
	}{
		{"same point", -33.9249, 18.4241, -33.9249, 18.4241, 0},
		{"one degree of longitude on the equator", 0, 0, 0, 1, 111.195},
		{"one degree of latitude", 0, 0, 1, 0, 111.195},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := service.Haversine(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			if math.Abs(got-tc.want) > 0.01 {
				t.Errorf("expected %.3f km, got %.3f km", tc.want, got)
			}
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	t.Parallel()

	capeTown := domain.Coordinate{Lat: -33.9249, Lon: 18.4241}
	joburg := domain.Coordinate{Lat: -26.2041, Lon: 28.0473}

	ab := service.Haversine(capeTown.Lat, capeTown.Lon, joburg.Lat, joburg.Lon)
	ba := service.Haversine(joburg.Lat, joburg.Lon, capeTown.Lat, capeTown.Lon)
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("expected symmetric distance, got %f and %f", ab, ba)
	}
	if ab < 1250 || ab > 1280 {
		t.Errorf("expected roughly 1265 km, got %f", ab)
	}
}

// ──────────────────────────────────────────────
// 2. ESTIMATES
// ──────────────────────────────────────────────

func TestEstimate_IdenticalCoordinates(t *testing.T) {
	t.Parallel()

	svc := newTransport(NewScriptedRandom(), quietMidday)
	point := domain.Coordinate{Lat: -33.9249, Lon: 18.4241}

	quote, err := svc.Estimate(context.Background(), point, point)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(quote.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(quote.Options))
	}
	if quote.Surge != nil {
		t.Errorf("expected no surge info, got %+v", quote.Surge)
	}

	want := []struct {
		typ       string
		low, high int
	}{
		{"UberX", 8, 13},
		{"UberComfort", 10, 16},
		{"UberXL", 12, 18},
		{"UberBlack", 16, 25},
	}
	for i, opt := range quote.Options {
		if opt.DistanceKm != 0 {
			t.Errorf("%s: expected distance 0, got %v", opt.Type, opt.DistanceKm)
		}
		if opt.DurationMinutes != 5 {
			t.Errorf("%s: expected minimum duration 5, got %d", opt.Type, opt.DurationMinutes)
		}
		if opt.SurgeMultiplier != 1.0 {
			t.Errorf("%s: expected surge 1.0, got %v", opt.Type, opt.SurgeMultiplier)
		}
		if opt.PickupMinutes != 3 {
			t.Errorf("%s: expected pickup 3 min, got %d", opt.Type, opt.PickupMinutes)
		}
		if opt.Type != want[i].typ || opt.Price.Low != want[i].low || opt.Price.High != want[i].high {
			t.Errorf("option %d: expected %s R%d-R%d, got %s R%d-R%d",
				i, want[i].typ, want[i].low, want[i].high, opt.Type, opt.Price.Low, opt.Price.High)
		}
	}
}

func TestEstimate_DurationFromDistance(t *testing.T) {
	t.Parallel()

	// Speed roll 0.5 leaves the 30 km/h midday speed unperturbed.
	svc := newTransport(NewScriptedRandom(0.5), quietMidday)

	quote, err := svc.Estimate(context.Background(),
		domain.Coordinate{Lat: 0, Lon: 0},
		domain.Coordinate{Lat: 0, Lon: 1},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opt := quote.Options[0]
	if opt.DistanceKm != 111.2 {
		t.Errorf("expected distance 111.2, got %v", opt.DistanceKm)
	}
	if opt.DurationMinutes != 222 {
		t.Errorf("expected duration 222, got %d", opt.DurationMinutes)
	}
}

func TestEstimate_OptionsSortedByLowPrice(t *testing.T) {
	t.Parallel()

	svc := newTransport(service.NewRandom(7), quietMidday)
	for i := 0; i < 20; i++ {
		quote, err := svc.Estimate(context.Background(),
			domain.Coordinate{Lat: -33.92, Lon: 18.42},
			domain.Coordinate{Lat: -33.96, Lon: 18.60},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for j := 1; j < len(quote.Options); j++ {
			if quote.Options[j].Price.Low < quote.Options[j-1].Price.Low {
				t.Fatalf("options out of order: %+v", quote.Options)
			}
		}
		for _, opt := range quote.Options {
			if opt.Price.Low > opt.Price.High {
				t.Errorf("%s: band inverted %+v", opt.Type, opt.Price)
			}
			if opt.PickupMinutes < 2 {
				t.Errorf("%s: pickup below 2 min", opt.Type)
			}
		}
	}
}

func TestEstimate_InvalidCoordinates(t *testing.T) {
	t.Parallel()

	svc := newTransport(NewScriptedRandom(), quietMidday)

	_, err := svc.Estimate(context.Background(),
		domain.Coordinate{Lat: math.NaN(), Lon: 18.4},
		domain.Coordinate{Lat: -33.9, Lon: math.Inf(1)},
	)
	if !errors.Is(err, service.ErrInvalidCoordinates) {
		t.Fatalf("expected ErrInvalidCoordinates, got %v", err)
	}

	var verr *service.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) != 2 || verr.Fields[0] != "pickup_lat" || verr.Fields[1] != "dropoff_lon" {
		t.Errorf("unexpected fields %v", verr.Fields)
	}
}

// ──────────────────────────────────────────────
// 3. SURGE
// ──────────────────────────────────────────────

func TestEstimate_Surge(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		at         time.Time
		rolls      []float64 // speed, then surge rolls in rule order
		wantSurge  float64
		wantReason string
	}{
		{
			name:      "quiet midday",
			at:        quietMidday,
			rolls:     []float64{0.5, 0.5},
			wantSurge: 1.0,
		},
		{
			name:       "weekday rush hour",
			at:         time.Date(2024, 3, 6, 8, 0, 0, 0, sast),
			rolls:      []float64{0.5, 0.0, 0.5},
			wantSurge:  1.3,
			wantReason: "Rush hour demand",
		},
		{
			name:       "friday rush hour reports rush first",
			at:         time.Date(2024, 3, 8, 17, 30, 0, 0, sast),
			rolls:      []float64{0.5, 0.0, 0.0, 0.5},
			wantSurge:  1.3,
			wantReason: "Rush hour demand",
		},
		{
			name:       "saturday midday",
			at:         time.Date(2024, 3, 9, 12, 0, 0, 0, sast),
			rolls:      []float64{0.5, 0.0, 0.5},
			wantSurge:  1.2,
			wantReason: "Weekend demand",
		},
		{
			name:      "sunday is not a weekend surge day",
			at:        time.Date(2024, 3, 10, 12, 0, 0, 0, sast),
			rolls:     []float64{0.5, 0.5},
			wantSurge: 1.0,
		},
		{
			name:       "weekday late night",
			at:         time.Date(2024, 3, 6, 23, 0, 0, 0, sast),
			rolls:      []float64{0.5, 0.0, 0.5},
			wantSurge:  1.1,
			wantReason: "Late night demand",
		},
		{
			name:       "random demand spike",
			at:         quietMidday,
			rolls:      []float64{0.5, 0.05, 0.0},
			wantSurge:  1.5,
			wantReason: "High demand",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newTransport(NewScriptedRandom(tc.rolls...), tc.at)
			point := domain.Coordinate{Lat: -33.9249, Lon: 18.4241}

			quote, err := svc.Estimate(context.Background(), point, point)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, opt := range quote.Options {
				if opt.SurgeMultiplier != tc.wantSurge {
					t.Errorf("%s: expected surge %v, got %v", opt.Type, tc.wantSurge, opt.SurgeMultiplier)
				}
			}

			if tc.wantReason == "" {
				if quote.Surge != nil {
					t.Errorf("expected no surge info, got %+v", quote.Surge)
				}
				return
			}
			if quote.Surge == nil || !quote.Surge.Active {
				t.Fatal("expected active surge info")
			}
			if quote.Surge.Reason != tc.wantReason {
				t.Errorf("expected reason %q, got %q", tc.wantReason, quote.Surge.Reason)
			}
			if quote.Surge.Multiplier != tc.wantSurge {
				t.Errorf("expected multiplier %v, got %v", tc.wantSurge, quote.Surge.Multiplier)
			}
		})
	}
}

func TestEstimate_SurgeScalesPrice(t *testing.T) {
	t.Parallel()

	rush := time.Date(2024, 3, 6, 8, 0, 0, 0, sast)
	svc := newTransport(NewScriptedRandom(0.5, 0.0, 0.5), rush)
	point := domain.Coordinate{Lat: -33.9249, Lon: 18.4241}

	quote, err := svc.Estimate(context.Background(), point, point)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// UberX: (4.50 + 5*1.20) * 1.3 = 13.65
	opt := quote.Options[0]
	if opt.Type != "UberX" || opt.Price.Low != 11 || opt.Price.High != 16 {
		t.Errorf("expected UberX R11-16, got %s R%d-%d", opt.Type, opt.Price.Low, opt.Price.High)
	}
}
