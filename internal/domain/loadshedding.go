package domain

import "time"

// MaxStage is the highest load-shedding stage with a published schedule.
const MaxStage = 6

// Slot is a recurring outage window in local wall-clock time ("HH:MM").
type Slot struct {
	Start string
	End   string
}

// ServiceArea is a load-shedding block with its per-stage slot table.
type ServiceArea struct {
	Key       string
	Name      string
	Schedules map[int][]Slot
}

// ScheduleEvent is a single upcoming outage.
type ScheduleEvent struct {
	Start time.Time
	End   time.Time
	Stage int
	Area  string
	Note  string
}

// StagePrediction is a speculative upcoming stage change.
type StagePrediction struct {
	Stage     int
	StartTime time.Time
}

// Schedule is the generated outage schedule for one area.
type Schedule struct {
	Events       []ScheduleEvent
	CurrentStage int
	NextStage    *StagePrediction
	AreaName     string
	LastUpdated  time.Time
	Source       string
}

// StageState is the simulated national stage and when it last changed.
type StageState struct {
	CurrentStage    int
	LastStageChange time.Time
}
