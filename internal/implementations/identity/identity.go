package identity

import (
	"studybot/internal/core/domain/reminder"

	"github.com/google/uuid"
)

// TimeOrdered issues UUIDv7 reminder ids, so ids of reminders created later
// sort after earlier ones in logs and on the event stream.
type TimeOrdered struct{}

func NewTimeOrdered() *TimeOrdered {
	return &TimeOrdered{}
}

func (g *TimeOrdered) GenerateID() reminder.ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Only fails when the system random source does.
		return reminder.ID(uuid.NewString())
	}
	return reminder.ID(id.String())
}
