package createreminder

import (
	"context"
	"errors"
	"fmt"
	"studybot/internal/core/domain/bot"
	c "studybot/internal/core/domain/common"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/domain/reminder"
	"studybot/internal/core/services"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Input struct {
	Owner bot.UserID
	Name  string
	Date  string
	Time  string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Owner, validation.Required),
		validation.Field(
			&i.Name,
			validation.Required,
			validation.RuneLength(reminder.MIN_NAME_LENGTH, reminder.MAX_NAME_LENGTH),
		),
	)
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("createReminder::%d", i.Owner)
}

type Result struct {
	Reminder reminder.Reminder
}

type service struct {
	log         logging.Logger
	queue       *reminder.Queue
	idGenerator reminder.IDGenerator
	loc         *time.Location
}

func New(
	log logging.Logger,
	queue *reminder.Queue,
	idGenerator reminder.IDGenerator,
	loc *time.Location,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if queue == nil {
		panic(e.NewNilArgumentError("queue"))
	}
	if idGenerator == nil {
		panic(e.NewNilArgumentError("idGenerator"))
	}
	if loc == nil {
		panic(e.NewNilArgumentError("loc"))
	}
	return &service{
		log:         log,
		queue:       queue,
		idGenerator: idGenerator,
		loc:         loc,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}
	at, err := c.ParseDateTime(input.Date, input.Time, s.loc)
	if err != nil {
		return result, err
	}

	rem, err := s.queue.Schedule(reminder.ScheduleInput{
		ID:    s.idGenerator.GenerateID(),
		Owner: input.Owner,
		Name:  input.Name,
		At:    at,
	})
	if errors.Is(err, reminder.ErrReminderPastDue) || errors.Is(err, reminder.ErrReminderDuplicateName) {
		s.log.Info(ctx, "Reminder rejected.", logging.Entry("input", input), logging.Entry("reason", err))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder successfully created.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("owner", rem.Owner),
		logging.Entry("at", rem.At),
	)
	result.Reminder = rem
	return result, nil
}
