package createevent

import (
	"context"
	"fmt"
	"strings"
	"studybot/internal/core/domain/bot"
	c "studybot/internal/core/domain/common"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/event"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Input struct {
	Calendar bot.ChatID
	Author   bot.UserID
	Name     string
	Date     string
	Time     string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Calendar, validation.Required),
		validation.Field(&i.Name, validation.Required, validation.RuneLength(1, event.MAX_NAME_LENGTH)),
	)
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("createEvent::%d", i.Author)
}

type Result struct {
	Event event.Event
}

type service struct {
	log    logging.Logger
	events event.Service
	now    func() time.Time
	loc    *time.Location
}

func New(
	log logging.Logger,
	events event.Service,
	now func() time.Time,
	loc *time.Location,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	if loc == nil {
		panic(e.NewNilArgumentError("loc"))
	}
	return &service{log: log, events: events, now: now, loc: loc}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}
	startAt, err := c.ParseDateTime(input.Date, input.Time, s.loc)
	if err != nil {
		return result, err
	}
	if !startAt.After(s.now()) {
		return result, event.ErrEventPastDue
	}

	ev, err := s.events.Create(ctx, event.CreateInput{
		Calendar:    input.Calendar,
		Name:        strings.TrimSpace(input.Name),
		Description: event.DEFAULT_DESCRIPTION,
		StartAt:     startAt,
		EndAt:       startAt.Add(event.DEFAULT_DURATION),
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(
		ctx,
		"Event created.",
		logging.Entry("eventID", ev.ID),
		logging.Entry("calendar", ev.Calendar),
		logging.Entry("startAt", ev.StartAt),
	)
	result.Event = ev
	return result, nil
}
