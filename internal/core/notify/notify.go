// Package notify talks to the notification endpoint of the backend and
// models what it returns.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultPath is the endpoint that lists pending notifications for the
// current session.
const DefaultPath = "/api/notifications"

// List is the ordered set of pending notifications returned by the endpoint.
// Records are kept opaque; callers that only need a count never decode them.
type List []json.RawMessage

// Len returns the number of pending notifications.
func (l List) Len() int {
	return len(l)
}

// Notification is a typed view of a single record. Fields the backend does
// not send are left at their zero value.
type Notification struct {
	ID                string `json:"id"`
	Message           string `json:"message"`
	RecipientRole     string `json:"recipient_role,omitempty"`
	RecipientUsername string `json:"recipient_username,omitempty"`
	ReqID             string `json:"req_id,omitempty"`
	IsRead            bool   `json:"is_read"`
	Timestamp         string `json:"timestamp,omitempty"`
}

// Notifications decodes every record in the list. A record that is not a
// JSON object fails the whole call.
func (l List) Notifications() ([]Notification, error) {
	out := make([]Notification, 0, len(l))
	for i, raw := range l {
		var n Notification
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, fmt.Errorf("decode notification %d: %w", i, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Source fetches the current notification list.
type Source interface {
	Fetch(ctx context.Context) (List, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(ctx context.Context) (List, error)

// Fetch calls f.
func (f SourceFunc) Fetch(ctx context.Context) (List, error) {
	return f(ctx)
}
