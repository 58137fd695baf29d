package deleteevent

import (
	"context"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/event"
	"studybot/internal/core/domain/logging"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDeleteEvent(t *testing.T) {
	events := event.NewFakeService()
	ctx := context.Background()
	assert := require.New(t)
	start := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	for _, input := range []event.CreateInput{
		{Calendar: bot.ChatID(1), Name: "Exam", StartAt: start},
		{Calendar: bot.ChatID(1), Name: "1001", StartAt: start},
		{Calendar: bot.ChatID(2), Name: "Exam", StartAt: start},
	} {
		_, err := events.Create(ctx, input)
		assert.Nil(err)
	}
	service := New(logging.NewFakeLogger(), events)

	result, err := service.Run(ctx, Input{Calendar: bot.ChatID(1), Identifier: "1001"})
	assert.Nil(err)
	assert.Equal("Exam", result.Event.Name)

	result, err = service.Run(ctx, Input{Calendar: bot.ChatID(1), Identifier: "1001"})
	assert.Nil(err)
	assert.Equal(event.ID("1002"), result.Event.ID)

	_, err = service.Run(ctx, Input{Calendar: bot.ChatID(1), Identifier: "exam"})
	assert.ErrorIs(err, event.ErrEventDoesNotExist)

	result, err = service.Run(ctx, Input{Calendar: bot.ChatID(2), Identifier: "EXAM"})
	assert.Nil(err)
	assert.Equal(event.ID("1003"), result.Event.ID)
	assert.Empty(events.Events())
}
