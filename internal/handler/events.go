package handler

import (
	"net/http"
	"strconv"

	"github.com/dagwood-games/hotdog-tycoon/internal/event"
)

// EventHistoryResponse wraps the recent event history
type EventHistoryResponse struct {
	Events []event.Event `json:"events"`
	Stats  event.Stats   `json:"stats"`
}

// HandleGetEvents returns the bounded event history and bus diagnostics
// @Summary Recent events
// @Description Returns the most recent simulation events (bounded history) plus bus counters
// @Tags events
// @Produce json
// @Param limit query int false "Maximum number of events to return, newest last"
// @Success 200 {object} EventHistoryResponse
// @Router /stand/events [get]
func HandleGetEvents(bus *event.MemoryBus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history := bus.History()

		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			limit, err := strconv.Atoi(limitParam)
			if err != nil || limit < 0 {
				respondError(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			if limit < len(history) {
				history = history[len(history)-limit:]
			}
		}

		respondJSON(w, http.StatusOK, EventHistoryResponse{
			Events: history,
			Stats:  bus.Stats(),
		})
	}
}
