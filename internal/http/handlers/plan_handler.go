// README: /plan endpoint; binds the trip request and runs the synthesizer.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"trek/internal/destinations"
	"trek/internal/planner"
)

// planTimeout bounds one whole planning request. Each day is a model call of
// up to a few minutes, so this must be generous.
const planTimeout = 30 * time.Minute

type PlanHandler struct {
	planner *planner.Service
}

func NewPlanHandler(p *planner.Service) *PlanHandler {
	return &PlanHandler{planner: p}
}

type planResponse struct {
	Success         bool               `json:"success"`
	Destination     string             `json:"destination"`
	Days            int                `json:"days"`
	Travelers       int                `json:"travelers"`
	Itinerary       planner.Itinerary  `json:"itinerary"`
	EstimatedCost   int                `json:"estimated_cost"`
	DestinationInfo destinations.Facts `json:"destination_info"`
}

// Plan handles POST /plan.
func (h *PlanHandler) Plan(c *gin.Context) {
	var req planner.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Destination) == "" {
		writeFailure(c, http.StatusBadRequest, "missing destination")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	result, err := h.planner.Plan(ctx, req)
	if err != nil {
		// The server never crashes on model garbage: every failure is caught
		// here and converted to the envelope.
		log.Printf("plan %q failed: %v", req.Destination, err)
		writeFailure(c, http.StatusOK, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, planResponse{
		Success:         true,
		Destination:     result.Destination,
		Days:            result.Days,
		Travelers:       result.Travelers,
		Itinerary:       result.Itinerary,
		EstimatedCost:   result.EstimatedCost,
		DestinationInfo: result.DestinationInfo,
	})
}
