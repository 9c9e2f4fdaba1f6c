package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dagwood-games/hotdog-tycoon/internal/domain"
	"github.com/dagwood-games/hotdog-tycoon/internal/stand"
)

func TestHandleGetUpgrades(t *testing.T) {
	svc := &MockStandService{}
	svc.On("Upgrades", mock.Anything).Return([]stand.UpgradeView{
		{ID: "faster_grill", Name: "Faster Grill", Category: "production", Level: 1, MaxLevel: 5, NextCost: 15, Affordable: true, Unlocked: true},
	})

	req := httptest.NewRequest("GET", "/api/v1/stand/upgrades", nil)
	w := httptest.NewRecorder()

	HandleGetUpgrades(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"faster_grill"`)
	assert.Contains(t, w.Body.String(), `"next_cost":15`)
	svc.AssertExpectations(t)
}

func TestHandlePurchaseUpgrade(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockStandService{}
		svc.On("Purchase", mock.Anything, "faster_grill").Return(&stand.PurchaseResult{
			UpgradeID: "faster_grill",
			Category:  "production",
			NewLevel:  2,
			Cost:      15,
			Balance:   85,
		}, nil)

		req := httptest.NewRequest("POST", "/api/v1/stand/upgrades/purchase",
			strings.NewReader(`{"upgrade_id":"faster_grill"}`))
		w := httptest.NewRecorder()

		HandlePurchaseUpgrade(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"new_level":2`)
		svc.AssertExpectations(t)
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := &MockStandService{}

		req := httptest.NewRequest("POST", "/api/v1/stand/upgrades/purchase",
			strings.NewReader(`{not json`))
		w := httptest.NewRecorder()

		HandlePurchaseUpgrade(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("Missing upgrade_id", func(t *testing.T) {
		svc := &MockStandService{}

		req := httptest.NewRequest("POST", "/api/v1/stand/upgrades/purchase",
			strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		HandlePurchaseUpgrade(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required")
	})

	t.Run("Service errors map to user messages", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantMsg    string
		}{
			{"Insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughMoneyErr},
			{"Unknown upgrade", domain.ErrUpgradeNotFound, http.StatusBadRequest, ErrMsgUpgradeNotFoundErr},
			{"Max level", domain.ErrMaxLevelReached, http.StatusBadRequest, ErrMsgMaxLevelReachedErr},
			{"Locked prerequisite", domain.ErrPrerequisiteLocked, http.StatusForbidden, ErrMsgPrereqLockedError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := &MockStandService{}
				svc.On("Purchase", mock.Anything, "faster_grill").
					Return(nil, fmt.Errorf("purchase: %w", tt.err))

				req := httptest.NewRequest("POST", "/api/v1/stand/upgrades/purchase",
					strings.NewReader(`{"upgrade_id":"faster_grill"}`))
				w := httptest.NewRecorder()

				HandlePurchaseUpgrade(svc).ServeHTTP(w, req)

				assert.Equal(t, tt.wantStatus, w.Code)
				assert.Contains(t, w.Body.String(), tt.wantMsg)
			})
		}
	})
}
