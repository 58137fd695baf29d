package flashcard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func questions(cards []Flashcard) []string {
	result := make([]string, 0, len(cards))
	for _, card := range cards {
		result = append(result, card.Question)
	}
	return result
}

func TestStoreGroupsByNormalizedTopic(t *testing.T) {
	store := NewStore()
	store.Insert(Flashcard{Topic: "Math!", Question: "1+1", Answer: "2"})
	store.Insert(Flashcard{Topic: "biology", Question: "cell", Answer: "unit of life"})
	store.Insert(Flashcard{Topic: "MÁTH", Question: "2*3", Answer: "6"})
	store.Insert(Flashcard{Topic: "Zoology", Question: "zebra", Answer: "stripes"})
	store.Insert(Flashcard{Topic: "math", Question: "3-1", Answer: "2"})

	assert := require.New(t)
	assert.Equal(5, store.Len())
	assert.Equal([]string{"cell", "1+1", "2*3", "3-1", "zebra"}, questions(store.List()))
}

func TestStoreListByTopic(t *testing.T) {
	store := NewStore()
	store.Insert(Flashcard{Topic: "history", Question: "h1", Answer: "a"})
	store.Insert(Flashcard{Topic: "Math", Question: "m1", Answer: "a"})
	store.Insert(Flashcard{Topic: "art", Question: "a1", Answer: "a"})
	store.Insert(Flashcard{Topic: "math!", Question: "m2", Answer: "a"})
	store.Insert(Flashcard{Topic: "maths", Question: "s1", Answer: "a"})
	store.Insert(Flashcard{Topic: "MATH", Question: "m3", Answer: "a"})

	assert := require.New(t)
	cards := store.ListByTopic("  Máth ")
	assert.Equal([]string{"m1", "m2", "m3"}, questions(cards))
	for _, card := range cards {
		assert.Equal("math", card.TopicKey())
	}
	assert.Equal([]string{"s1"}, questions(store.ListByTopic("MATHS")))
	assert.Empty(store.ListByTopic("chemistry"))
	assert.Empty(store.ListByTopic("zzz"))
}

func TestStoreListByTopicOnEmptyStore(t *testing.T) {
	require.Empty(t, NewStore().ListByTopic("math"))
	require.Empty(t, NewStore().List())
}

func TestStoreAllowsDuplicateQuestions(t *testing.T) {
	store := NewStore()
	store.Insert(Flashcard{Topic: "math", Question: "same", Answer: "1"})
	store.Insert(Flashcard{Topic: "math", Question: "same", Answer: "2"})
	store.Insert(Flashcard{Topic: "art", Question: "same", Answer: "3"})

	require.Equal(t, 3, store.Len())
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()
	store.Insert(Flashcard{Topic: "Math", Question: "What is Pi?", Answer: "3.14"})
	store.Insert(Flashcard{Topic: "math", Question: "what is pi?", Answer: "duplicate"})
	store.Insert(Flashcard{Topic: "art", Question: "What is Pi?", Answer: "a movie"})

	deleted, err := store.Delete("MATH!", "WHAT IS PI?")

	assert := require.New(t)
	assert.Nil(err)
	assert.Equal("3.14", deleted.Answer)
	assert.Equal(2, store.Len())
	remaining := store.ListByTopic("math")
	assert.Len(remaining, 1)
	assert.Equal("duplicate", remaining[0].Answer)
}

func TestStoreDeleteNotFound(t *testing.T) {
	store := NewStore()
	store.Insert(Flashcard{Topic: "math", Question: "q", Answer: "a"})

	_, err := store.Delete("art", "q")
	require.ErrorIs(t, err, ErrFlashcardDoesNotExist)

	_, err = store.Delete("math", "other")
	require.ErrorIs(t, err, ErrFlashcardDoesNotExist)

	require.Equal(t, 1, store.Len())
}

func TestFlashcardIsCorrectAnswer(t *testing.T) {
	card := Flashcard{Topic: "french", Question: "coffee", Answer: "Café"}

	assert := require.New(t)
	assert.True(card.IsCorrectAnswer("cafe"))
	assert.True(card.IsCorrectAnswer("  CAFÉ!  "))
	assert.False(card.IsCorrectAnswer("the"))
	assert.False(card.IsCorrectAnswer(""))
}
