package sendreminder

import (
	"context"
	"errors"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/domain/reminder"
	"studybot/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	now     time.Time
	logger  *logging.FakeLogger
	queue   *reminder.Queue
	sender  *reminder.TestReminderSender
	service services.Service[Input, Result]
}

func (s *testSuite) SetupTest() {
	s.now = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return s.now }
	s.logger = logging.NewFakeLogger()
	s.queue = reminder.NewQueue(clock)
	s.sender = reminder.NewTestReminderSender()
	s.service = New(s.logger, s.queue, s.sender, clock)
}

func TestSendReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) schedule(owner bot.UserID, name string, after time.Duration) {
	_, err := s.queue.Schedule(reminder.ScheduleInput{
		ID:    reminder.ID(name),
		Owner: owner,
		Name:  name,
		At:    s.now.Add(after),
	})
	s.Require().Nil(err)
}

func (s *testSuite) TestEmptyQueue() {
	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.False(result.Reminder.IsPresent)
	assert.False(result.Delivered)
	assert.Empty(s.sender.Attempts())
}

func (s *testSuite) TestNothingDue() {
	s.schedule(bot.UserID(1), "later", time.Minute)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.False(result.Reminder.IsPresent)
	assert.Equal(1, s.queue.Len())
}

func (s *testSuite) TestDueReminderIsDelivered() {
	s.schedule(bot.UserID(1), "first", time.Minute)
	s.schedule(bot.UserID(1), "second", 2*time.Minute)
	s.now = s.now.Add(90 * time.Second)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Reminder.IsPresent)
	assert.True(result.Delivered)
	assert.Equal("first", result.Reminder.Value.Name)
	assert.Len(s.sender.Sent(), 1)
	assert.Equal(1, s.queue.Len())
}

func (s *testSuite) TestReminderDueExactlyNow() {
	s.schedule(bot.UserID(1), "edge", time.Minute)
	s.now = s.now.Add(time.Minute)

	result, err := s.service.Run(context.Background(), Input{})

	s.Require().Nil(err)
	s.Require().True(result.Delivered)
	s.Require().Equal(0, s.queue.Len())
}

func (s *testSuite) TestFailedDeliveryIsDropped() {
	s.schedule(bot.UserID(1), "blocked", time.Minute)
	s.schedule(bot.UserID(2), "fine", time.Minute)
	s.sender.Fail("blocked", errors.New("user blocked the bot"))
	s.now = s.now.Add(time.Hour)

	result, err := s.service.Run(context.Background(), Input{})

	assert := s.Require()
	assert.Nil(err)
	assert.True(result.Reminder.IsPresent)
	assert.False(result.Delivered)
	assert.Equal(1, s.queue.Len())
	assert.Equal(1, s.logger.CountLevel(logging.WARNING))

	result, err = s.service.Run(context.Background(), Input{})
	assert.Nil(err)
	assert.True(result.Delivered)
	assert.Equal("fine", result.Reminder.Value.Name)
	assert.Len(s.sender.Attempts(), 2)
	assert.Equal(0, s.queue.Len())
}
