package listflashcards

import (
	"context"
	c "studybot/internal/core/domain/common"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"
)

type Input struct {
	Topic c.Optional[string]
}

type Result struct {
	Flashcards []flashcard.Flashcard
}

type service struct {
	log   logging.Logger
	store *flashcard.Store
}

func New(log logging.Logger, store *flashcard.Store) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	return &service{log: log, store: store}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if topic, ok := input.Topic.Get(); ok {
		result.Flashcards = s.store.ListByTopic(topic)
	} else {
		result.Flashcards = s.store.List()
	}
	s.log.Debug(
		ctx,
		"Flashcards listed.",
		logging.Entry("topic", input.Topic),
		logging.Entry("count", len(result.Flashcards)),
	)
	return result, nil
}
