package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Aadithya-J/time_management/internal/models"
)

const (
	TypeEntryCreated = "entry.created"
	TypeEntryDeleted = "entry.deleted"
)

// Event announces a change to the entry table.
type Event struct {
	Type       string            `json:"type"`
	EntryID    string            `json:"entry_id"`
	Entry      *models.TimeEntry `json:"entry,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
