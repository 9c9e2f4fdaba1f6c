package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dagwood-games/hotdog-tycoon/internal/logger"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

// PurchaseUpgradeRequest is the body of a purchase request
type PurchaseUpgradeRequest struct {
	UpgradeID string `json:"upgrade_id" validate:"required,max=64"`
}

// HandleGetUpgrades lists all upgrades with levels and next costs
// @Summary List upgrades
// @Description Returns all upgrade definitions with current levels, costs, and affordability
// @Tags upgrades
// @Produce json
// @Success 200 {array} stand.UpgradeView
// @Router /stand/upgrades [get]
func HandleGetUpgrades(svc stand.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Upgrades(r.Context()))
	}
}

// HandlePurchaseUpgrade buys the next level of an upgrade
// @Summary Purchase upgrade
// @Description Debits the upgrade cost and applies its effect
// @Tags upgrades
// @Accept json
// @Produce json
// @Param request body PurchaseUpgradeRequest true "Upgrade to purchase"
// @Success 200 {object} stand.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Prerequisite locked"
// @Router /stand/upgrades/purchase [post]
func HandlePurchaseUpgrade(svc stand.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PurchaseUpgradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, DataResponse{
				Message: ErrMsgUpgradeIDMissing,
				Data:    FormatValidationError(err),
			})
			return
		}

		result, err := svc.Purchase(r.Context(), req.UpgradeID)
		if err != nil {
			log.Debug(ErrMsgPurchaseFailed, "upgrade_id", req.UpgradeID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
