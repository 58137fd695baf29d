package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var ErrQuizInterrupted = errors.New("quiz interrupted, message could not be sent")

type Input struct {
	User       bot.UserID
	Topic      string
	AnnounceTo bot.ChatID
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.User, validation.Required),
		validation.Field(&i.Topic, validation.Required),
	)
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("quiz::%d", i.User)
}

type Result struct {
	Correct int
	Total   int
}

type service struct {
	log           logging.Logger
	store         *flashcard.Store
	conversations bot.Conversations
	sender        bot.MessageSender
	answerTimeout time.Duration
}

func New(
	log logging.Logger,
	store *flashcard.Store,
	conversations bot.Conversations,
	sender bot.MessageSender,
	answerTimeout time.Duration,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if store == nil {
		panic(e.NewNilArgumentError("store"))
	}
	if conversations == nil {
		panic(e.NewNilArgumentError("conversations"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if answerTimeout <= 0 {
		panic(e.NewInvalidArgumentError("answerTimeout", "must be positive"))
	}
	return &service{
		log:           log,
		store:         store,
		conversations: conversations,
		sender:        sender,
		answerTimeout: answerTimeout,
	}
}

// Run blocks until every card of the topic was asked. It stops early when ctx
// is done or a message could not be sent.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := input.Validate(); err != nil {
		return result, err
	}
	topic := strings.TrimSpace(input.Topic)

	cards := s.store.ListByTopic(topic)
	if len(cards) == 0 {
		return result, flashcard.ErrFlashcardDoesNotExist
	}

	conversation, err := s.conversations.Open(input.User)
	if err != nil {
		return result, err
	}
	defer conversation.Close()

	dm := input.User.PrivateChat()
	if input.AnnounceTo != dm {
		if err := s.send(ctx, input.AnnounceTo, fmt.Sprintf("📨 Check your DMs — starting quiz on %s!", topic)); err != nil {
			return result, err
		}
	}

	s.log.Info(ctx, "Quiz started.", logging.Entry("user", input.User), logging.Entry("topic", topic))
	result.Total = len(cards)
	for ix, card := range cards {
		if err := s.send(ctx, dm, fmt.Sprintf("❓ Q%d: %s", ix+1, card.Question)); err != nil {
			return result, err
		}

		reply, err := conversation.Await(ctx, s.answerTimeout)
		if err != nil {
			return result, err
		}

		var feedback string
		switch {
		case reply.TimedOut:
			feedback = "⏰ Time's up! Moving to next question."
		case card.IsCorrectAnswer(reply.Text):
			result.Correct++
			feedback = "✅ Correct!"
		default:
			feedback = fmt.Sprintf("❌ Wrong. Correct answer: %s", card.Answer)
		}
		if err := s.send(ctx, dm, feedback); err != nil {
			return result, err
		}
	}

	if err := s.send(ctx, dm, fmt.Sprintf("🏁 Quiz finished! Your score: %d/%d", result.Correct, result.Total)); err != nil {
		return result, err
	}
	s.log.Info(
		ctx,
		"Quiz finished.",
		logging.Entry("user", input.User),
		logging.Entry("correct", result.Correct),
		logging.Entry("total", result.Total),
	)
	return result, nil
}

func (s *service) send(ctx context.Context, chatID bot.ChatID, text string) error {
	err := s.sender.SendMessage(ctx, bot.Message{ChatID: chatID, Text: text})
	if err != nil {
		s.log.Warning(ctx, "Quiz message not sent, ending quiz.", logging.Entry("chatID", chatID), logging.Entry("err", err))
		return fmt.Errorf("%w: %w", ErrQuizInterrupted, err)
	}
	return nil
}
