package event

import (
	"context"
	"strings"
	"studybot/internal/core/domain/bot"
	"time"
)

const (
	MAX_NAME_LENGTH     = 100
	DEFAULT_DURATION    = time.Hour
	DEFAULT_DESCRIPTION = "Scheduled by bot."
)

type ID string

// Event is owned by the external scheduling service; Calendar scopes events
// to the chat they were created from.
type Event struct {
	ID          ID
	Calendar    bot.ChatID
	Name        string
	Description string
	StartAt     time.Time
	EndAt       time.Time
}

type CreateInput struct {
	Calendar    bot.ChatID
	Name        string
	Description string
	StartAt     time.Time
	EndAt       time.Time
}

type Service interface {
	Create(ctx context.Context, input CreateInput) (Event, error)
	List(ctx context.Context, calendar bot.ChatID) ([]Event, error)
	Delete(ctx context.Context, calendar bot.ChatID, id ID) error
}

// Find resolves identifier by exact ID first and by case-insensitive name
// second.
func Find(events []Event, identifier string) (Event, bool) {
	identifier = strings.TrimSpace(identifier)
	for _, ev := range events {
		if string(ev.ID) == identifier {
			return ev, true
		}
	}
	for _, ev := range events {
		if strings.EqualFold(ev.Name, identifier) {
			return ev, true
		}
	}
	return Event{}, false
}
