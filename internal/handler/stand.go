package handler

import (
	"net/http"

	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
	"github.com/dagwood-games/hotdog-tycoon/internal/repository"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

// HandleGetState returns the current stand read model
// @Summary Get stand state
// @Description Returns queue, economy, and prestige state of the stand
// @Tags stand
// @Produce json
// @Success 200 {object} stand.State
// @Router /stand/state [get]
func HandleGetState(svc stand.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.State(r.Context()))
	}
}

// HandleEnqueue queues one hot dog of work
// @Summary Enqueue a hot dog
// @Description Adds one hot dog to the production queue
// @Tags stand
// @Produce json
// @Success 200 {object} stand.State
// @Failure 409 {object} ErrorResponse "Queue full"
// @Router /stand/enqueue [post]
func HandleEnqueue(svc stand.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if err := svc.Enqueue(r.Context()); err != nil {
			log.Debug(ErrMsgEnqueueFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, svc.State(r.Context()))
	}
}

// HandlePause stops production without losing queue contents
// @Summary Pause production
// @Tags stand
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /stand/pause [post]
func HandlePause(svc stand.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.Pause(r.Context()) {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPausedSuccess})
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAlreadyPaused})
	}
}

// HandleResume continues production where a pause left off
// @Summary Resume production
// @Tags stand
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /stand/resume [post]
func HandleResume(svc stand.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc.Resume(r.Context()) {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResumedSuccess})
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAlreadyRunning})
	}
}

// HandleSave snapshots the stand and persists it immediately
// @Summary Save stand state
// @Description Forces a snapshot save outside the autosave cadence
// @Tags stand
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 500 {object} ErrorResponse
// @Router /stand/save [post]
func HandleSave(svc stand.Service, repo repository.Snapshot) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if repo == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgPersistenceDisabled)
			return
		}

		snap := svc.Snapshot(r.Context())
		if err := repo.Save(r.Context(), snap); err != nil {
			log.Error(ErrMsgSaveFailed, "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgSaveFailed)
			return
		}

		log.Info("Stand state saved", "taken_at", snap.TakenAt)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSavedSuccess})
	}
}
