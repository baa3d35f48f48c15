// Package realtime pushes the listing page's live state over WebSocket: each viewer
// gets its own hero carousel, and every catalog change is announced.
package realtime

import (
	"encoding/json"
	"time"
)

// Message types.
const (
	TypeHeroRotate     = "hero.rotate"
	TypeHeroSelect     = "hero.select"
	TypeCatalogChanged = "catalog.changed"
	TypeError          = "error"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"timestamp"`
}

// inbound accepts the selected index at the top level or inside payload.
type inbound struct {
	Type    string          `json:"type"`
	Index   *int            `json:"index"`
	Payload json.RawMessage `json:"payload"`
}

type selectPayload struct {
	Index *int `json:"index"`
}

func (m inbound) selectedIndex() (int, bool) {
	if m.Index != nil {
		return *m.Index, true
	}
	var p selectPayload
	if len(m.Payload) == 0 || json.Unmarshal(m.Payload, &p) != nil || p.Index == nil {
		return 0, false
	}
	return *p.Index, true
}

type changedPayload struct {
	Collection string `json:"collection"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func encode(msgType string, payload any) ([]byte, error) {
	return json.Marshal(Message{Type: msgType, Payload: payload, Timestamp: time.Now().UTC()})
}
