//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type StateResponse struct {
	QueueSize int     `json:"queue_size"`
	Capacity  int     `json:"capacity"`
	Balance   float64 `json:"balance"`
}

type UpgradeListItem struct {
	ID       string  `json:"id"`
	Level    int     `json:"level"`
	NextCost float64 `json:"next_cost"`
}

func TestGetState(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/stand/state", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var state StateResponse
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if state.Capacity <= 0 {
		t.Error("Expected positive queue capacity")
	}
}

func TestEnqueueIncreasesQueue(t *testing.T) {
	_, before := makeRequest(t, "GET", "/api/v1/stand/state", nil)
	var stateBefore StateResponse
	if err := json.Unmarshal(before, &stateBefore); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	resp, body := makeRequest(t, "POST", "/api/v1/stand/enqueue", nil)
	if resp.StatusCode == http.StatusConflict {
		t.Skip("Queue is full on the staging stand")
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var stateAfter StateResponse
	if err := json.Unmarshal(body, &stateAfter); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if stateAfter.QueueSize <= stateBefore.QueueSize-1 {
		t.Errorf("Expected queue to grow, before=%d after=%d", stateBefore.QueueSize, stateAfter.QueueSize)
	}
}

func TestPauseAndResume(t *testing.T) {
	resp, _ := makeRequest(t, "POST", "/api/v1/stand/pause", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Pause: expected status 200, got %d", resp.StatusCode)
	}

	resp, _ = makeRequest(t, "POST", "/api/v1/stand/resume", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Resume: expected status 200, got %d", resp.StatusCode)
	}
}

func TestListUpgrades(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/stand/upgrades/", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var upgrades []UpgradeListItem
	if err := json.Unmarshal(body, &upgrades); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(upgrades) == 0 {
		t.Error("Expected at least one upgrade definition")
	}
}

func TestEventHistory(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/stand/events?limit=10", nil)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}

	var history struct {
		Events []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(body, &history); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(history.Events) > 10 {
		t.Errorf("Expected at most 10 events, got %d", len(history.Events))
	}
}

func TestUnauthorizedWithoutKey(t *testing.T) {
	req, err := http.NewRequest("GET", stagingURL+"/api/v1/stand/state", nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", resp.StatusCode)
	}
}
