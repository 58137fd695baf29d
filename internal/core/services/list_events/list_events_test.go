package listevents

import (
	"context"
	"errors"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/event"
	"studybot/internal/core/domain/logging"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListEvents(t *testing.T) {
	events := event.NewFakeService()
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()
	assert := require.New(t)
	for _, input := range []event.CreateInput{
		{Calendar: bot.ChatID(1), Name: "late", StartAt: start.Add(2 * time.Hour)},
		{Calendar: bot.ChatID(2), Name: "elsewhere", StartAt: start},
		{Calendar: bot.ChatID(1), Name: "early", StartAt: start},
	} {
		_, err := events.Create(ctx, input)
		assert.Nil(err)
	}

	result, err := New(logging.NewFakeLogger(), events).Run(ctx, Input{Calendar: bot.ChatID(1)})

	assert.Nil(err)
	assert.Len(result.Events, 2)
	assert.Equal("early", result.Events[0].Name)
	assert.Equal("late", result.Events[1].Name)
}

func TestListEventsFailure(t *testing.T) {
	events := event.NewFakeService()
	events.ListError = event.ErrEventServiceDisabled

	_, err := New(logging.NewFakeLogger(), events).Run(context.Background(), Input{Calendar: bot.ChatID(1)})

	require.True(t, errors.Is(err, event.ErrEventServiceDisabled))
}
