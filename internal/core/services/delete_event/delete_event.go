package deleteevent

import (
	"context"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/event"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Input struct {
	Calendar   bot.ChatID
	Identifier string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Identifier, validation.Required),
	)
}

type Result struct {
	Event event.Event
}

type service struct {
	log    logging.Logger
	events event.Service
}

func New(log logging.Logger, events event.Service) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if events == nil {
		panic(e.NewNilArgumentError("events"))
	}
	return &service{log: log, events: events}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}

	events, err := s.events.List(ctx, input.Calendar)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	ev, ok := event.Find(events, input.Identifier)
	if !ok {
		s.log.Info(ctx, "Event to delete not found.", logging.Entry("input", input))
		return result, event.ErrEventDoesNotExist
	}

	if err := s.events.Delete(ctx, input.Calendar, ev.ID); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("eventID", ev.ID))
		return result, err
	}

	s.log.Info(ctx, "Event deleted.", logging.Entry("eventID", ev.ID), logging.Entry("calendar", input.Calendar))
	result.Event = ev
	return result, nil
}
