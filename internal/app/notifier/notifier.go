package notifier

import (
	"context"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"
	sendreminder "studybot/internal/core/services/send_reminder"
	"time"
)

// Loop fires due reminders on every tick of a fixed interval.
type Loop struct {
	log          logging.Logger
	sendReminder services.Service[sendreminder.Input, sendreminder.Result]
	interval     time.Duration
}

func New(
	log logging.Logger,
	sendReminder services.Service[sendreminder.Input, sendreminder.Result],
	interval time.Duration,
) *Loop {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sendReminder == nil {
		panic(e.NewNilArgumentError("sendReminder"))
	}
	if interval <= 0 {
		panic(e.NewInvalidArgumentError("interval", "must be positive"))
	}
	return &Loop{log: log, sendReminder: sendReminder, interval: interval}
}

// Run blocks until ctx is cancelled and returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	l.log.Info(ctx, "Starting reminder notification loop.", logging.Entry("interval", l.interval))
	for {
		select {
		case <-ctx.Done():
			l.log.Info(context.Background(), "Stopping reminder notification loop.")
			return ctx.Err()
		case <-ticker.C:
			l.drain(ctx)
		}
	}
}

// drain fires every reminder that is already due.
func (l *Loop) drain(ctx context.Context) {
	for ctx.Err() == nil {
		result, err := l.sendReminder.Run(ctx, sendreminder.Input{})
		if err != nil {
			l.log.Error(ctx, "Reminder service returned an error.", logging.Entry("err", err))
			return
		}
		if !result.Reminder.IsPresent {
			return
		}
	}
}
