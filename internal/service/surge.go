package service

import (
	"time"
)

// SurgeConfig contains time-of-day surge pricing configuration. Each
// applicable rule raises the multiplier to at least Base + roll*Spread.
type SurgeConfig struct {
	WeekendBase, WeekendSpread     float64 // Friday and Saturday
	RushBase, RushSpread           float64 // 07-09 and 17-19
	LateNightBase, LateNightSpread float64 // 22-04
	EventBase, EventSpread         float64 // random demand spike
	EventProbability               float64
}

// DefaultSurgeConfig returns the default surge configuration.
func DefaultSurgeConfig() SurgeConfig {
	return SurgeConfig{
		WeekendBase:      1.2,
		WeekendSpread:    0.3,
		RushBase:         1.3,
		RushSpread:       0.5,
		LateNightBase:    1.1,
		LateNightSpread:  0.4,
		EventBase:        1.5,
		EventSpread:      1.0,
		EventProbability: 0.1,
	}
}

// Surge reasons, reported in this priority order.
const (
	surgeReasonRushHour  = "Rush hour demand"
	surgeReasonWeekend   = "Weekend demand"
	surgeReasonLateNight = "Late night demand"
	surgeReasonDefault   = "High demand"
)

func isRushHour(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
}

func isShoulderHour(hour int) bool {
	return (hour >= 6 && hour <= 10) || (hour >= 16 && hour <= 20)
}

// isLightTraffic covers 22:00-05:59.
func isLightTraffic(hour int) bool {
	return hour >= 22 || hour <= 5
}

// isLateNightSurge covers 22:00-04:59, one hour shorter than light traffic.
func isLateNightSurge(hour int) bool {
	return hour >= 22 || hour <= 4
}

func isWeekendSurge(day time.Weekday) bool {
	return day == time.Friday || day == time.Saturday
}

// surgeMultiplier returns the maximum of all applicable surge floors,
// rounded to one decimal place. Returns 1.0 when nothing applies.
func (s *TransportService) surgeMultiplier(at time.Time) float64 {
	cfg := s.surge
	hour := at.Hour()
	surge := 1.0

	if isWeekendSurge(at.Weekday()) {
		surge = max(surge, cfg.WeekendBase+s.rnd.Float64()*cfg.WeekendSpread)
	}

	if isRushHour(hour) {
		surge = max(surge, cfg.RushBase+s.rnd.Float64()*cfg.RushSpread)
	}

	if isLateNightSurge(hour) {
		surge = max(surge, cfg.LateNightBase+s.rnd.Float64()*cfg.LateNightSpread)
	}

	if s.rnd.Float64() < cfg.EventProbability {
		surge = max(surge, cfg.EventBase+s.rnd.Float64()*cfg.EventSpread)
	}

	return round1(surge)
}

// surgeReason explains why surge is active at the given time.
func surgeReason(at time.Time) string {
	hour := at.Hour()
	switch {
	case isRushHour(hour):
		return surgeReasonRushHour
	case isWeekendSurge(at.Weekday()):
		return surgeReasonWeekend
	case isLateNightSurge(hour):
		return surgeReasonLateNight
	default:
		return surgeReasonDefault
	}
}
