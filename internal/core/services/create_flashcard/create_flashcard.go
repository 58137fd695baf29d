package createflashcard

import (
	"context"
	"fmt"
	"strings"
	"studybot/internal/core/domain/bot"
	c "studybot/internal/core/domain/common"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Input struct {
	Author   bot.UserID
	Topic    string
	Question string
	Answer   string
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(
			&i.Topic,
			validation.Required,
			validation.RuneLength(1, flashcard.MAX_TOPIC_LENGTH),
			validation.By(hasKey),
		),
		validation.Field(&i.Question, validation.Required, validation.RuneLength(1, flashcard.MAX_QUESTION_LENGTH)),
		validation.Field(&i.Answer, validation.Required, validation.RuneLength(1, flashcard.MAX_ANSWER_LENGTH)),
	)
}

func hasKey(value interface{}) error {
	topic, _ := value.(string)
	if c.NormalizeKey(topic) == "" {
		return e.NewInvalidArgumentError("topic", "must contain letters or digits")
	}
	return nil
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("createFlashcard::%d", i.Author)
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

	card := flashcard.Flashcard{
		Topic:    strings.TrimSpace(input.Topic),
		Question: strings.TrimSpace(input.Question),
		Answer:   strings.TrimSpace(input.Answer),
	}
	s.store.Insert(card)

	s.log.Info(
		ctx,
		"Flashcard created.",
		logging.Entry("topic", card.Topic),
		logging.Entry("author", input.Author),
	)
	result.Flashcard = card
	return result, nil
}
