package flashcard

import (
	"strings"
	c "studybot/internal/core/domain/common"
)

const (
	MAX_TOPIC_LENGTH    = 100
	MAX_QUESTION_LENGTH = 500
	MAX_ANSWER_LENGTH   = 500
)

type Flashcard struct {
	Topic    string
	Question string
	Answer   string
}

func (f Flashcard) TopicKey() string {
	return c.NormalizeKey(f.Topic)
}

func (f Flashcard) Matches(topic string, question string) bool {
	return f.TopicKey() == c.NormalizeKey(topic) && strings.EqualFold(f.Question, question)
}

// IsCorrectAnswer compares answers by their normalized keys, so case,
// accents and punctuation are ignored.
func (f Flashcard) IsCorrectAnswer(answer string) bool {
	return c.NormalizeKey(strings.TrimSpace(answer)) == c.NormalizeKey(strings.TrimSpace(f.Answer))
}
