package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dagwood-games/hotdog-tycoon/internal/event"
)

func publishN(t *testing.T, bus *event.MemoryBus, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, bus.Publish(context.Background(), event.NewQueueFullEvent(10, 10)))
	}
	bus.Flush(context.Background())
}

func TestHandleGetEvents(t *testing.T) {
	t.Run("Returns full history with stats", func(t *testing.T) {
		bus := event.NewMemoryBus(event.WithQueuing())
		publishN(t, bus, 3)

		req := httptest.NewRequest("GET", "/api/v1/stand/events", nil)
		w := httptest.NewRecorder()

		HandleGetEvents(bus).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp EventHistoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Events, 3)
		assert.Equal(t, uint64(3), resp.Stats.Emitted)
	})

	t.Run("Limit keeps newest events", func(t *testing.T) {
		bus := event.NewMemoryBus(event.WithQueuing())
		publishN(t, bus, 5)

		req := httptest.NewRequest("GET", "/api/v1/stand/events?limit=2", nil)
		w := httptest.NewRecorder()

		HandleGetEvents(bus).ServeHTTP(w, req)

		var resp EventHistoryResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Events, 2)
		assert.Greater(t, resp.Events[1].Seq, resp.Events[0].Seq)
	})

	t.Run("Invalid limit rejected", func(t *testing.T) {
		bus := event.NewMemoryBus(event.WithQueuing())

		req := httptest.NewRequest("GET", "/api/v1/stand/events?limit=abc", nil)
		w := httptest.NewRecorder()

		HandleGetEvents(bus).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
