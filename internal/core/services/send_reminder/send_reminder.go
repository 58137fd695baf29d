package sendreminder

import (
	"context"
	c "studybot/internal/core/domain/common"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/domain/reminder"
	"studybot/internal/core/services"
	"time"
)

type Input struct{}

type Result struct {
	Reminder  c.Optional[reminder.Reminder]
	Delivered bool
}

type service struct {
	log    logging.Logger
	queue  *reminder.Queue
	sender reminder.Sender
	now    func() time.Time
}

func New(
	log logging.Logger,
	queue *reminder.Queue,
	sender reminder.Sender,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if queue == nil {
		panic(e.NewNilArgumentError("queue"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:    log,
		queue:  queue,
		sender: sender,
		now:    now,
	}
}

// Run fires at most one due reminder. The reminder leaves the queue before
// delivery is attempted, so a failed delivery is never retried.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem, ok := s.queue.PopDue(s.now())
	if !ok {
		return result, nil
	}
	result.Reminder = c.Some(rem)

	if err := s.sender.SendReminder(ctx, rem); err != nil {
		s.log.Warning(
			ctx,
			"Could not deliver reminder, dropping it.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("owner", rem.Owner),
			logging.Entry("err", err),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Reminder sent.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("owner", rem.Owner),
		logging.Entry("delay", s.now().Sub(rem.At)),
	)
	result.Delivered = true
	return result, nil
}
