package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"mockapi/internal/domain"
	"mockapi/internal/observability"
)

const (
	scheduleSource   = "EskomSePush Mock API"
	highImpactStage  = 4
	highImpactNote   = "High impact stage - prepare backup power"
	predictionChance = 0.7 // a prediction is attached when a roll exceeds this (30%)

	minStageHours    = 2.0
	stageHoursSpread = 6.0
)

// stageWeights is the draw table for a new stage, weighted toward 0-2.
var stageWeights = []int{0, 0, 0, 1, 1, 2, 2, 3, 4}

// predictableStages are the candidates for a next-stage prediction.
var predictableStages = []int{0, 1, 2, 3, 4}

// StageSource reports the current national stage.
type StageSource interface {
	Current() int
}

// StageTracker owns the simulated national stage. The redraw threshold is
// rerolled on every call, so the stage drifts every 2-8 hours.
type StageTracker struct {
	mu     sync.Mutex
	state  domain.StageState
	rnd    Random
	clock  Clock
	logger *slog.Logger
}

var _ StageSource = (*StageTracker)(nil)

// NewStageTracker starts at stage 0 with the last change set to now.
func NewStageTracker(rnd Random, clock Clock, logger *slog.Logger) *StageTracker {
	return &StageTracker{
		state:  domain.StageState{CurrentStage: 0, LastStageChange: clock.Now()},
		rnd:    rnd,
		clock:  clock,
		logger: logger,
	}
}

// Current returns the stage, redrawing it first if enough time has passed.
func (t *StageTracker) Current() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	hours := now.Sub(t.state.LastStageChange).Hours()

	if hours > minStageHours+t.rnd.Float64()*stageHoursSpread {
		previous := t.state.CurrentStage
		t.state.CurrentStage = stageWeights[t.rnd.IntN(len(stageWeights))]
		t.state.LastStageChange = now

		observability.LoadSheddingChanges.Inc()
		t.logger.Info("load-shedding stage redrawn", "from", previous, "to", t.state.CurrentStage)
	}

	observability.LoadSheddingStage.Set(float64(t.state.CurrentStage))
	return t.state.CurrentStage
}

// State returns a snapshot of the tracker.
func (t *StageTracker) State() domain.StageState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// LoadSheddingService generates outage schedules for known areas.
type LoadSheddingService struct {
	stages   StageSource
	rnd      Random
	clock    Clock
	location *time.Location
	logger   *slog.Logger
}

// NewLoadSheddingService creates a new LoadSheddingService. Slot times are
// interpreted in location.
func NewLoadSheddingService(stages StageSource, rnd Random, clock Clock, location *time.Location, logger *slog.Logger) *LoadSheddingService {
	return &LoadSheddingService{
		stages:   stages,
		rnd:      rnd,
		clock:    clock,
		location: location,
		logger:   logger,
	}
}

// Areas returns the known service areas.
func (s *LoadSheddingService) Areas() []domain.ServiceArea {
	return serviceAreas
}

// AreaKeys returns the keys of the known service areas.
func AreaKeys() []string {
	keys := make([]string, 0, len(serviceAreas))
	for _, a := range serviceAreas {
		keys = append(keys, a.Key)
	}
	return keys
}

func findArea(key string) (domain.ServiceArea, bool) {
	for _, a := range serviceAreas {
		if a.Key == key {
			return a, true
		}
	}
	return domain.ServiceArea{}, false
}

// Schedule returns today's remaining and tomorrow's outages for area at the
// current stage.
func (s *LoadSheddingService) Schedule(ctx context.Context, area string) (*domain.Schedule, error) {
	if area == "" {
		area = DefaultArea
	}

	areaData, ok := findArea(area)
	if !ok {
		valid := AreaKeys()
		return nil, &ValidationError{
			Message: fmt.Sprintf("%s. Valid areas: %s", ErrUnknownArea, strings.Join(valid, ", ")),
			Fields:  []string{"area"},
			Valid:   valid,
			cause:   ErrUnknownArea,
		}
	}

	stage := s.stages.Current()
	now := s.clock.Now().In(s.location)

	schedule := &domain.Schedule{
		Events:       s.events(areaData, stage, now),
		CurrentStage: stage,
		AreaName:     areaData.Name,
		LastUpdated:  now,
		Source:       scheduleSource,
	}

	if s.rnd.Float64() > predictionChance {
		schedule.NextStage = s.predict(stage, now)
	}

	return schedule, nil
}

// events expands the area's slot table into concrete outages.
func (s *LoadSheddingService) events(area domain.ServiceArea, stage int, now time.Time) []domain.ScheduleEvent {
	if stage <= 0 || stage > domain.MaxStage {
		return []domain.ScheduleEvent{}
	}

	note := ""
	if stage >= highImpactStage {
		note = highImpactNote
	}

	tomorrow := now.AddDate(0, 0, 1)
	events := make([]domain.ScheduleEvent, 0, 2*len(area.Schedules[stage]))

	for _, slot := range area.Schedules[stage] {
		start, end := slotOn(now, slot)
		if start.After(now) {
			events = append(events, domain.ScheduleEvent{Start: start, End: end, Stage: stage, Area: area.Name, Note: note})
		}

		start, end = slotOn(tomorrow, slot)
		events = append(events, domain.ScheduleEvent{Start: start, End: end, Stage: stage, Area: area.Name, Note: note})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
	return events
}

// predict draws a stage other than current, 2-10 hours out.
func (s *LoadSheddingService) predict(current int, now time.Time) *domain.StagePrediction {
	candidates := make([]int, 0, len(predictableStages))
	for _, st := range predictableStages {
		if st != current {
			candidates = append(candidates, st)
		}
	}

	stage := candidates[s.rnd.IntN(len(candidates))]
	hours := s.rnd.IntN(8) + 2

	return &domain.StagePrediction{
		Stage:     stage,
		StartTime: now.Add(time.Duration(hours) * time.Hour),
	}
}

// slotOn places slot on day's date. An end hour earlier than the start hour
// spans midnight.
func slotOn(day time.Time, slot domain.Slot) (time.Time, time.Time) {
	sh, sm := clockTime(slot.Start)
	eh, em := clockTime(slot.End)

	y, m, d := day.Date()
	start := time.Date(y, m, d, sh, sm, 0, 0, day.Location())
	end := time.Date(y, m, d, eh, em, 0, 0, day.Location())
	if eh < sh {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// clockTime parses "HH:MM". The slot tables are static.
func clockTime(s string) (int, int) {
	var h, m int
	_, _ = fmt.Sscanf(s, "%d:%d", &h, &m)
	return h, m
}
