package reminder

import (
	"strings"
	"studybot/internal/core/domain/bot"
	"time"
)

const (
	MIN_NAME_LENGTH = 1
	MAX_NAME_LENGTH = 100
)

type ID string

type Reminder struct {
	ID        ID
	Name      string
	At        time.Time
	Owner     bot.UserID
	CreatedAt time.Time
}

func (r Reminder) IsDue(now time.Time) bool {
	return !r.At.After(now)
}

func (r Reminder) Matches(owner bot.UserID, name string) bool {
	return r.Owner == owner && strings.EqualFold(r.Name, name)
}

type IDGenerator interface {
	GenerateID() ID
}
