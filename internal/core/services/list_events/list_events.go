package listevents

import (
	"context"
	"slices"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/event"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"
)

type Input struct {
	Calendar bot.ChatID
}

type Result struct {
	Events []event.Event
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
	events, err := s.events.List(ctx, input.Calendar)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}
	slices.SortStableFunc(events, func(a, b event.Event) int {
		return a.StartAt.Compare(b.StartAt)
	})
	result.Events = events
	return result, nil
}
