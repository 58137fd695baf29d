package listflashcards

import (
	"context"
	c "studybot/internal/core/domain/common"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListFlashcards(t *testing.T) {
	store := flashcard.NewStore()
	store.Insert(flashcard.Flashcard{Topic: "math", Question: "1+1", Answer: "2"})
	store.Insert(flashcard.Flashcard{Topic: "Art", Question: "color?", Answer: "red"})
	store.Insert(flashcard.Flashcard{Topic: "Math!", Question: "2+2", Answer: "4"})
	service := New(logging.NewFakeLogger(), store)
	assert := require.New(t)

	result, err := service.Run(context.Background(), Input{Topic: c.None[string]()})
	assert.Nil(err)
	assert.Len(result.Flashcards, 3)
	assert.Equal("Art", result.Flashcards[0].Topic)

	result, err = service.Run(context.Background(), Input{Topic: c.NewOptional("MATH", true)})
	assert.Nil(err)
	assert.Len(result.Flashcards, 2)
	assert.Equal("1+1", result.Flashcards[0].Question)
	assert.Equal("2+2", result.Flashcards[1].Question)

	result, err = service.Run(context.Background(), Input{Topic: c.NewOptional("history", true)})
	assert.Nil(err)
	assert.Empty(result.Flashcards)
}
