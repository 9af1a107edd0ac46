package stream

import (
	"encoding/json"

	"github.com/dmitrymomot/firetree/pkg/treepath"
)

// EventType is the change-event tag reported by the server.
type EventType string

// Event types the server emits. Unknown names pass through unchanged so
// callers are not cut off from new server-side event kinds.
const (
	// EventPut reports that the data at a path was replaced.
	EventPut EventType = "put"
	// EventPatch reports a shallow merge of children at a path.
	EventPatch EventType = "patch"
	// EventKeepAlive is a periodic no-op keeping the connection warm.
	EventKeepAlive EventType = "keep-alive"
	// EventCancel reports that the server revoked read permission for the
	// watched path; no further data events will follow.
	EventCancel EventType = "cancel"
	// EventAuthRevoked reports that the auth credential expired or was
	// revoked; the caller must mint a new token and reconnect.
	EventAuthRevoked EventType = "auth_revoked"
)

// Event is one parsed change notification. For put and patch events Data
// carries the server's payload with its "path" field decoded from the
// wire string into a treepath.Path. Scalar payloads (auth_revoked sends a
// plain reason string) are kept under the "data" key; for keep-alive
// events Data is nil.
type Event struct {
	Type EventType
	Data map[string]any
}

// Handler receives events on the connection's reader goroutine.
type Handler func(Event)

// parseEvent decodes one raw SSE frame into an Event.
func parseEvent(name, data string) (Event, error) {
	ev := Event{Type: EventType(name)}
	if data == "" {
		return ev, nil
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		// null and scalar payloads are legal frame bodies
		var probe any
		if json.Unmarshal([]byte(data), &probe) != nil {
			return ev, err
		}
		if probe != nil {
			ev.Data = map[string]any{"data": probe}
		}
		return ev, nil
	}

	if raw, ok := payload["path"].(string); ok {
		payload["path"] = treepath.Decode(raw)
	}
	ev.Data = payload
	return ev, nil
}
