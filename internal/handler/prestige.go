package handler

import (
	"net/http"

	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

// HandlePrestige resets run progress for a permanent multiplier
// @Summary Prestige
// @Description Resets queue, money, and upgrades in exchange for prestige currency and a permanent multiplier
// @Tags prestige
// @Produce json
// @Success 200 {object} stand.PrestigeResult
// @Failure 400 {object} ErrorResponse "Requirement not met"
// @Router /stand/prestige [post]
func HandlePrestige(svc stand.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		result, err := svc.PerformPrestige(r.Context())
		if err != nil {
			log.Debug(ErrMsgPrestigeFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
