package listuserreminders

import (
	"context"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/domain/reminder"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListUserReminders(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	queue := reminder.NewQueue(func() time.Time { return now })
	service := New(logging.NewFakeLogger(), queue)
	assert := require.New(t)

	for _, input := range []reminder.ScheduleInput{
		{ID: "1", Owner: bot.UserID(1), Name: "late", At: now.Add(3 * time.Hour)},
		{ID: "2", Owner: bot.UserID(2), Name: "other", At: now.Add(2 * time.Hour)},
		{ID: "3", Owner: bot.UserID(1), Name: "early", At: now.Add(time.Hour)},
	} {
		_, err := queue.Schedule(input)
		assert.Nil(err)
	}

	result, err := service.Run(context.Background(), Input{Owner: bot.UserID(1)})
	assert.Nil(err)
	assert.Len(result.Reminders, 2)
	assert.Equal("early", result.Reminders[0].Name)
	assert.Equal("late", result.Reminders[1].Name)

	result, err = service.Run(context.Background(), Input{Owner: bot.UserID(3)})
	assert.Nil(err)
	assert.Empty(result.Reminders)
}
