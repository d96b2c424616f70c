// README: Suggestion endpoints for destinations and districts.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"trek/internal/suggest"
)

const suggestTimeout = 5 * time.Minute

type SuggestHandler struct {
	suggest *suggest.Service
}

func NewSuggestHandler(s *suggest.Service) *SuggestHandler {
	return &SuggestHandler{suggest: s}
}

type suggestDestinationsReq struct {
	Interest string `json:"interest"`
}

type suggestDistrictsReq struct {
	Country  string `json:"country"`
	Interest string `json:"interest"`
}

// Destinations handles POST /suggest_destinations.
func (h *SuggestHandler) Destinations(c *gin.Context) {
	var req suggestDestinationsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Interest) == "" {
		writeFailure(c, http.StatusBadRequest, "missing interest")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), suggestTimeout)
	defer cancel()

	suggestions, err := h.suggest.Destinations(ctx, req.Interest)
	if err != nil {
		log.Printf("suggest destinations %q failed: %v", req.Interest, err)
		writeFailure(c, http.StatusOK, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"success": true, "suggestions": suggestions})
}

// Districts handles POST /suggest_districts.
func (h *SuggestHandler) Districts(c *gin.Context) {
	var req suggestDistrictsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Country) == "" || strings.TrimSpace(req.Interest) == "" {
		writeFailure(c, http.StatusBadRequest, "missing country or interest")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), suggestTimeout)
	defer cancel()

	suggestions, err := h.suggest.Districts(ctx, req.Country, req.Interest)
	if err != nil {
		log.Printf("suggest districts %q/%q failed: %v", req.Country, req.Interest, err)
		writeFailure(c, http.StatusOK, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, gin.H{"success": true, "suggestions": suggestions})
}
