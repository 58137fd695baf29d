package remindersender

import (
	"context"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/domain/reminder"
)

// Sender delivers a reminder through the primary sender and mirrors it to
// observers. Only the primary outcome decides whether the reminder counts as
// delivered.
type Sender struct {
	log       logging.Logger
	primary   reminder.Sender
	observers []reminder.Sender
}

func New(log logging.Logger, primary reminder.Sender, observers ...reminder.Sender) *Sender {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if primary == nil {
		panic(e.NewNilArgumentError("primary"))
	}
	return &Sender{log: log, primary: primary, observers: observers}
}

func (s *Sender) SendReminder(ctx context.Context, rem reminder.Reminder) error {
	err := s.primary.SendReminder(ctx, rem)
	for _, observer := range s.observers {
		if err := observer.SendReminder(ctx, rem); err != nil {
			s.log.Warning(
				ctx,
				"Could not mirror reminder.",
				logging.Entry("reminderID", rem.ID),
				logging.Entry("err", err),
			)
		}
	}
	return err
}
