package models

// Event is one detection report from the rover. The payload has no fixed
// shape; whatever the device sends is stored verbatim and returned verbatim.
type Event struct {
	ID        int64          `json:"id"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventIngestResponse is returned by POST /api/rover/update.
type EventIngestResponse struct {
	Status  string `json:"status"`
	EventID int64  `json:"event_id"`
}
