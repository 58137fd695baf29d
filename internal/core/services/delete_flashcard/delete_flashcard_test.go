package deleteflashcard

import (
	"context"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeleteFlashcard(t *testing.T) {
	store := flashcard.NewStore()
	store.Insert(flashcard.Flashcard{Topic: "Math", Question: "What is 2+2?", Answer: "4"})
	store.Insert(flashcard.Flashcard{Topic: "Math", Question: "What is 3+3?", Answer: "6"})
	service := New(logging.NewFakeLogger(), store)
	assert := require.New(t)

	result, err := service.Run(context.Background(), Input{Topic: "math!", Question: "what is 2+2?"})
	assert.Nil(err)
	assert.Equal("What is 2+2?", result.Flashcard.Question)
	assert.Equal(1, store.Len())

	_, err = service.Run(context.Background(), Input{Topic: "math", Question: "what is 2+2?"})
	assert.ErrorIs(err, flashcard.ErrFlashcardDoesNotExist)

	_, err = service.Run(context.Background(), Input{Topic: "art", Question: "What is 3+3?"})
	assert.ErrorIs(err, flashcard.ErrFlashcardDoesNotExist)
	assert.Equal(1, store.Len())
}
