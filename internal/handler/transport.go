package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"mockapi/internal/domain"
	"mockapi/internal/service"
)

// TransportHandler handles HTTP requests for the ride-hailing estimator.
type TransportHandler struct {
	transportService *service.TransportService
	currencySymbol   string
}

// NewTransportHandler creates a new TransportHandler. Price bands are
// rendered with currencySymbol.
func NewTransportHandler(transportService *service.TransportService, currencySymbol string) *TransportHandler {
	return &TransportHandler{transportService: transportService, currencySymbol: currencySymbol}
}

// RideOptionResponse is one vehicle class quote.
type RideOptionResponse struct {
	Type            string  `json:"type"`
	DisplayName     string  `json:"display_name"`
	PriceEstimate   string  `json:"price_estimate"`
	TimeEstimate    string  `json:"time_estimate"`
	SurgeMultiplier float64 `json:"surge_multiplier"`
	Capacity        int     `json:"capacity"`
	Distance        float64 `json:"distance"` // km
	Duration        int     `json:"duration"` // minutes
}

// SurgeInfoResponse explains an active surge.
type SurgeInfoResponse struct {
	Active     bool    `json:"active"`
	Multiplier float64 `json:"multiplier"`
	Reason     string  `json:"reason"`
}

// EstimateResponse is the full ride estimate.
type EstimateResponse struct {
	Options   []RideOptionResponse `json:"options"`
	SurgeInfo *SurgeInfoResponse   `json:"surge_info,omitempty"`
}

// Estimate handles GET /api/mocks/services/uber
func (h *TransportHandler) Estimate(c *gin.Context) {
	coords, err := parseFloatParams(c, "pickup_lat", "pickup_lon", "dropoff_lat", "dropoff_lon")
	if err != nil {
		respondError(c, err)
		return
	}

	quote, err := h.transportService.Estimate(c.Request.Context(),
		domain.Coordinate{Lat: coords[0], Lon: coords[1]},
		domain.Coordinate{Lat: coords[2], Lon: coords[3]},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := EstimateResponse{Options: make([]RideOptionResponse, 0, len(quote.Options))}
	for _, opt := range quote.Options {
		resp.Options = append(resp.Options, RideOptionResponse{
			Type:            opt.Type,
			DisplayName:     opt.DisplayName,
			PriceEstimate:   fmt.Sprintf("%s%d-%d", h.currencySymbol, opt.Price.Low, opt.Price.High),
			TimeEstimate:    fmt.Sprintf("%d min", opt.PickupMinutes),
			SurgeMultiplier: opt.SurgeMultiplier,
			Capacity:        opt.Capacity,
			Distance:        opt.DistanceKm,
			Duration:        opt.DurationMinutes,
		})
	}
	if quote.Surge != nil {
		resp.SurgeInfo = &SurgeInfoResponse{
			Active:     quote.Surge.Active,
			Multiplier: quote.Surge.Multiplier,
			Reason:     quote.Surge.Reason,
		}
	}

	respondJSON(c, http.StatusOK, resp)
}
