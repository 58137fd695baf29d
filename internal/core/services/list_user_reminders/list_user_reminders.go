package listuserreminders

import (
	"context"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/domain/reminder"
	"studybot/internal/core/services"
)

type Input struct {
	Owner bot.UserID
}

type Result struct {
	Reminders []reminder.Reminder
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
	result.Reminders = s.queue.ListByOwner(input.Owner)
	s.log.Debug(
		ctx,
		"User reminders listed.",
		logging.Entry("owner", input.Owner),
		logging.Entry("count", len(result.Reminders)),
	)
	return result, nil
}
