package deletereminder

import (
	"context"
	"errors"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/domain/reminder"
	"studybot/internal/core/services"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Input struct {
	Owner bot.UserID
	Name  string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Owner, validation.Required),
		validation.Field(&i.Name, validation.Required),
	)
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log   logging.Logger
	queue *reminder.Queue
}

func New(log logging.Logger, queue *reminder.Queue) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if queue == nil {
		panic(e.NewNilArgumentError("queue"))
	}
	return &service{log: log, queue: queue}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	rem, err := s.queue.Cancel(input.Owner, input.Name)
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		s.log.Info(ctx, "Reminder to delete not found.", logging.Entry("input", input))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Reminder deleted.", logging.Entry("reminderID", rem.ID), logging.Entry("owner", rem.Owner))
	result.Reminder = rem
	return result, nil
}
