package service

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/observability"
)

const (
	minTripMinutes   = 5
	minPickupMinutes = 2.0
	speedNoiseKmh    = 10.0 // total width of the uniform speed perturbation
	priceBandLow     = 0.8
	priceBandHigh    = 1.2
)

// DefaultVehicleClasses returns the ride products quoted by the estimator.
func DefaultVehicleClasses() []domain.VehicleClass {
	return []domain.VehicleClass{
		{Type: "UberX", DisplayName: "UberX", BaseFare: 4.50, PerKm: 8.50, PerMinute: 1.20, Capacity: 4, Description: "Affordable rides"},
		{Type: "UberXL", DisplayName: "UberXL", BaseFare: 6.00, PerKm: 12.00, PerMinute: 1.80, Capacity: 6, Description: "Larger rides"},
		{Type: "UberComfort", DisplayName: "Comfort", BaseFare: 5.50, PerKm: 11.00, PerMinute: 1.50, Capacity: 4, Description: "Newer cars with extra legroom"},
		{Type: "UberBlack", DisplayName: "Uber Black", BaseFare: 8.00, PerKm: 18.00, PerMinute: 2.50, Capacity: 4, Description: "Premium rides"},
	}
}

// TransportService quotes ride-hailing prices between two points.
type TransportService struct {
	classes  []domain.VehicleClass
	surge    SurgeConfig
	rnd      Random
	clock    Clock
	location *time.Location
	logger   *slog.Logger
}

// NewTransportService creates a new TransportService. Hour-of-day and
// day-of-week rules are evaluated in location.
func NewTransportService(
	classes []domain.VehicleClass,
	surge SurgeConfig,
	rnd Random,
	clock Clock,
	location *time.Location,
	logger *slog.Logger,
) *TransportService {
	return &TransportService{
		classes:  classes,
		surge:    surge,
		rnd:      rnd,
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

// Estimate quotes every vehicle class for the trip, cheapest first.
func (s *TransportService) Estimate(ctx context.Context, pickup, dropoff domain.Coordinate) (*domain.TransportQuote, error) {
	if err := validateTrip(pickup, dropoff); err != nil {
		return nil, err
	}

	now := s.clock.Now().In(s.location)
	distance := Haversine(pickup.Lat, pickup.Lon, dropoff.Lat, dropoff.Lon)
	duration := s.tripMinutes(distance, now.Hour())
	surge := s.surgeMultiplier(now)

	options := make([]domain.RideEstimate, 0, len(s.classes))
	for _, class := range s.classes {
		pickupMinutes := math.Max(minPickupMinutes, float64(duration)*0.1+s.rnd.Float64()*5)

		options = append(options, domain.RideEstimate{
			Type:            class.Type,
			DisplayName:     class.DisplayName,
			Price:           priceBand(class, distance, duration, surge),
			PickupMinutes:   int(math.Round(pickupMinutes)),
			SurgeMultiplier: surge,
			Capacity:        class.Capacity,
			DistanceKm:      round1(distance),
			DurationMinutes: duration,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Price.Low < options[j].Price.Low
	})

	quote := &domain.TransportQuote{Options: options}
	if surge > 1.0 {
		quote.Surge = &domain.SurgeInfo{
			Active:     true,
			Multiplier: surge,
			Reason:     surgeReason(now),
		}
	}

	observability.TransportEstimates.Inc()
	observability.SurgeMultiplier.Observe(surge)
	s.logger.Debug("ride estimate", "distance_km", round1(distance), "duration_min", duration, "surge", surge)

	return quote, nil
}

// tripMinutes converts distance into minutes using a time-of-day traffic speed.
func (s *TransportService) tripMinutes(distanceKm float64, hour int) int {
	speed := baseSpeedKmh(hour) + (s.rnd.Float64()-0.5)*speedNoiseKmh
	minutes := int(math.Round(distanceKm / speed * 60))
	return max(minTripMinutes, minutes)
}

// baseSpeedKmh returns the average city speed for the hour.
func baseSpeedKmh(hour int) float64 {
	switch {
	case isRushHour(hour):
		return 15
	case isShoulderHour(hour):
		return 22
	case isLightTraffic(hour):
		return 45
	default:
		return 30
	}
}

// priceBand returns an 80%-120% band around the surged fare.
func priceBand(class domain.VehicleClass, distanceKm float64, minutes int, surge float64) domain.PriceBand {
	fare := (class.BaseFare + distanceKm*class.PerKm + float64(minutes)*class.PerMinute) * surge
	return domain.PriceBand{
		Low:  int(math.Round(fare * priceBandLow)),
		High: int(math.Round(fare * priceBandHigh)),
	}
}

func validateTrip(pickup, dropoff domain.Coordinate) error {
	var invalid []string
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"pickup_lat", pickup.Lat},
		{"pickup_lon", pickup.Lon},
		{"dropoff_lat", dropoff.Lat},
		{"dropoff_lon", dropoff.Lon},
	} {
		if !isFinite(c.value) {
			invalid = append(invalid, c.name)
		}
	}
	if len(invalid) > 0 {
		return InvalidCoordinatesError(invalid...)
	}
	return nil
}
