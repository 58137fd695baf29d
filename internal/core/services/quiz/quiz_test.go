package quiz

import (
	"context"
	"errors"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	USER    = bot.UserID(7)
	CHANNEL = bot.ChatID(-100)
)

type testSuite struct {
	suite.Suite
	store         *flashcard.Store
	conversations *bot.FakeConversations
	sender        *bot.FakeMessageSender
	service       services.Service[Input, Result]
}

func (s *testSuite) SetupTest() {
	s.store = flashcard.NewStore()
	s.store.Insert(flashcard.Flashcard{Topic: "Math", Question: "2+2?", Answer: "4"})
	s.store.Insert(flashcard.Flashcard{Topic: "math", Question: "Capital of nothing?", Answer: "Zero"})
	s.store.Insert(flashcard.Flashcard{Topic: "Math", Question: "3*3?", Answer: "9"})
	s.store.Insert(flashcard.Flashcard{Topic: "art", Question: "Mona Lisa?", Answer: "Da Vinci"})
	s.conversations = bot.NewFakeConversations()
	s.sender = bot.NewFakeMessageSender()
	s.service = New(logging.NewFakeLogger(), s.store, s.conversations, s.sender, time.Second)
}

func TestQuizService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestFullQuiz() {
	s.conversations.Script(USER, " four", "zero!")

	result, err := s.service.Run(context.Background(), Input{User: USER, Topic: "MATH", AnnounceTo: CHANNEL})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(Result{Correct: 1, Total: 3}, result)
	assert.Equal([]string{"📨 Check your DMs — starting quiz on MATH!"}, s.sender.SentTo(CHANNEL))
	assert.Equal(
		[]string{
			"❓ Q1: 2+2?",
			"❌ Wrong. Correct answer: 4",
			"❓ Q2: Capital of nothing?",
			"✅ Correct!",
			"❓ Q3: 3*3?",
			"⏰ Time's up! Moving to next question.",
			"🏁 Quiz finished! Your score: 1/3",
		},
		s.sender.SentTo(USER.PrivateChat()),
	)
	assert.False(s.conversations.IsOpen(USER))
}

func (s *testSuite) TestNoAnnouncementInPrivateChat() {
	s.conversations.Script(USER, "Da Vinci")

	result, err := s.service.Run(context.Background(), Input{User: USER, Topic: "art", AnnounceTo: USER.PrivateChat()})

	s.Require().Nil(err)
	s.Require().Equal(Result{Correct: 1, Total: 1}, result)
	s.Require().Equal("❓ Q1: Mona Lisa?", s.sender.SentTo(USER.PrivateChat())[0])
}

func (s *testSuite) TestUnknownTopic() {
	_, err := s.service.Run(context.Background(), Input{User: USER, Topic: "history", AnnounceTo: CHANNEL})

	s.Require().ErrorIs(err, flashcard.ErrFlashcardDoesNotExist)
	s.Require().Empty(s.sender.Sent())
	s.Require().Equal(0, s.conversations.Opened())
}

func (s *testSuite) TestConcurrentQuizIsRefused() {
	conversation, err := s.conversations.Open(USER)
	s.Require().Nil(err)
	defer conversation.Close()

	_, err = s.service.Run(context.Background(), Input{User: USER, Topic: "math", AnnounceTo: CHANNEL})

	s.Require().ErrorIs(err, bot.ErrConversationInProgress)
	s.Require().Empty(s.sender.Sent())
}

func (s *testSuite) TestSendFailureEndsQuiz() {
	s.sender.Fail(USER.PrivateChat(), errors.New("bot was blocked by the user"))

	result, err := s.service.Run(context.Background(), Input{User: USER, Topic: "math", AnnounceTo: CHANNEL})

	s.Require().ErrorIs(err, ErrQuizInterrupted)
	s.Require().Equal(0, result.Correct)
	s.Require().Len(s.sender.SentTo(CHANNEL), 1)
	s.Require().False(s.conversations.IsOpen(USER))
}

func (s *testSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.service.Run(ctx, Input{User: USER, Topic: "art", AnnounceTo: CHANNEL})

	s.Require().ErrorIs(err, context.Canceled)
	s.Require().False(s.conversations.IsOpen(USER))
}
