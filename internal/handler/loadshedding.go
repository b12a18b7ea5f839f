package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mockapi/internal/service"
)

// LoadSheddingHandler handles HTTP requests for the load-shedding simulator.
type LoadSheddingHandler struct {
	loadSheddingService *service.LoadSheddingService
}

// NewLoadSheddingHandler creates a new LoadSheddingHandler.
func NewLoadSheddingHandler(loadSheddingService *service.LoadSheddingService) *LoadSheddingHandler {
	return &LoadSheddingHandler{loadSheddingService: loadSheddingService}
}

// ScheduleEventResponse is one outage window.
type ScheduleEventResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Stage int    `json:"stage"`
	Area  string `json:"area"`
	Note  string `json:"note,omitempty"`
}

// NextStageResponse is a predicted stage change.
type NextStageResponse struct {
	Stage     int    `json:"stage"`
	StartTime string `json:"start_time"`
}

// ScheduleInfo describes the schedule source.
type ScheduleInfo struct {
	Area        string `json:"area"`
	LastUpdated string `json:"last_updated"`
	Source      string `json:"source"`
}

// ScheduleResponse is the load-shedding schedule for one area.
type ScheduleResponse struct {
	Events       []ScheduleEventResponse `json:"events"`
	CurrentStage int                     `json:"current_stage"`
	NextStage    *NextStageResponse      `json:"next_stage,omitempty"`
	Info         ScheduleInfo            `json:"info"`
}

// AreaResponse is a known service area.
type AreaResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// AreasResponse lists the known areas.
type AreasResponse struct {
	Areas   []AreaResponse `json:"areas"`
	Default string         `json:"default"`
}

// Schedule handles GET /api/mocks/services/loadshedding?area=
func (h *LoadSheddingHandler) Schedule(c *gin.Context) {
	schedule, err := h.loadSheddingService.Schedule(c.Request.Context(), c.Query("area"))
	if err != nil {
		respondError(c, err)
		return
	}

	events := make([]ScheduleEventResponse, 0, len(schedule.Events))
	for _, ev := range schedule.Events {
		events = append(events, ScheduleEventResponse{
			Start: formatTime(ev.Start),
			End:   formatTime(ev.End),
			Stage: ev.Stage,
			Area:  ev.Area,
			Note:  ev.Note,
		})
	}

	resp := ScheduleResponse{
		Events:       events,
		CurrentStage: schedule.CurrentStage,
		Info: ScheduleInfo{
			Area:        schedule.AreaName,
			LastUpdated: formatTime(schedule.LastUpdated),
			Source:      schedule.Source,
		},
	}
	if schedule.NextStage != nil {
		resp.NextStage = &NextStageResponse{
			Stage:     schedule.NextStage.Stage,
			StartTime: formatTime(schedule.NextStage.StartTime),
		}
	}

	respondJSON(c, http.StatusOK, resp)
}

// Areas handles GET /api/mocks/services/loadshedding/areas
func (h *LoadSheddingHandler) Areas(c *gin.Context) {
	areas := h.loadSheddingService.Areas()
	resp := AreasResponse{
		Areas:   make([]AreaResponse, 0, len(areas)),
		Default: service.DefaultArea,
	}
	for _, a := range areas {
		resp.Areas = append(resp.Areas, AreaResponse{Key: a.Key, Name: a.Name})
	}
	respondJSON(c, http.StatusOK, resp)
}
