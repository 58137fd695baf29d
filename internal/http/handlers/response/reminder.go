package response

import (
	"studybot/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     int64     `json:"owner"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = string(dr.ID)
	r.Name = dr.Name
	r.Owner = int64(dr.Owner)
	r.At = dr.At.UTC()
	r.CreatedAt = dr.CreatedAt.UTC()
}
