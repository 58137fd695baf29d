package deleteflashcard

import (
	"context"
	"errors"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Input struct {
	Topic    string
	Question string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Topic, validation.Required),
		validation.Field(&i.Question, validation.Required),
	)
}

type Result struct {
	Flashcard flashcard.Flashcard
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
	if err := input.Validate(); err != nil {
		return result, err
	}

	card, err := s.store.Delete(input.Topic, input.Question)
	if errors.Is(err, flashcard.ErrFlashcardDoesNotExist) {
		s.log.Info(ctx, "Flashcard to delete not found.", logging.Entry("input", input))
		return result, err
	}
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("input", input))
		return result, err
	}

	s.log.Info(ctx, "Flashcard deleted.", logging.Entry("topic", card.Topic))
	result.Flashcard = card
	return result, nil
}
