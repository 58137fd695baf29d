package flashcard

import (
	"slices"
	c "studybot/internal/core/domain/common"
	"sync"
)

// Store keeps flashcards grouped by normalized topic. Cards of one topic are
// contiguous and keep their insertion order relative to each other.
type Store struct {
	lock  sync.RWMutex
	cards []Flashcard
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Insert(card Flashcard) {
	s.lock.Lock()
	defer s.lock.Unlock()

	key := card.TopicKey()
	ix := len(s.cards)
	for i, f := range s.cards {
		if f.TopicKey() > key {
			ix = i
			break
		}
	}
	s.cards = slices.Insert(s.cards, ix, card)
}

func (s *Store) List() []Flashcard {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return slices.Clone(s.cards)
}

func (s *Store) ListByTopic(topic string) []Flashcard {
	s.lock.RLock()
	defer s.lock.RUnlock()

	key := c.NormalizeKey(topic)
	cards := make([]Flashcard, 0)
	for ix := s.firstIndexFrom(key); ix < len(s.cards); ix++ {
		if s.cards[ix].TopicKey() != key {
			break
		}
		cards = append(cards, s.cards[ix])
	}
	return cards
}

func (s *Store) Delete(topic string, question string) (card Flashcard, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	for ix, f := range s.cards {
		if f.Matches(topic, question) {
			s.cards = slices.Delete(s.cards, ix, ix+1)
			return f, nil
		}
	}
	return card, ErrFlashcardDoesNotExist
}

func (s *Store) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return len(s.cards)
}

// firstIndexFrom returns the index of the first card whose topic key is not
// less than key.
func (s *Store) firstIndexFrom(key string) int {
	for ix, f := range s.cards {
		if f.TopicKey() >= key {
			return ix
		}
	}
	return len(s.cards)
}
