package event

import (
	"context"
	"fmt"
	"slices"
	"studybot/internal/core/domain/bot"
	"sync"
)

type FakeService struct {
	CreateError error
	ListError   error
	DeleteError error
	events      []Event
	counter     int
	lock        sync.Mutex
}

func NewFakeService() *FakeService {
	return &FakeService{}
}

func (s *FakeService) Create(ctx context.Context, input CreateInput) (ev Event, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.CreateError != nil {
		return ev, s.CreateError
	}
	s.counter++
	ev = Event{
		ID:          ID(fmt.Sprintf("%d", 1000+s.counter)),
		Calendar:    input.Calendar,
		Name:        input.Name,
		Description: input.Description,
		StartAt:     input.StartAt,
		EndAt:       input.EndAt,
	}
	s.events = append(s.events, ev)
	return ev, nil
}

func (s *FakeService) List(ctx context.Context, calendar bot.ChatID) ([]Event, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.ListError != nil {
		return nil, s.ListError
	}
	events := make([]Event, 0)
	for _, ev := range s.events {
		if ev.Calendar == calendar {
			events = append(events, ev)
		}
	}
	return events, nil
}

func (s *FakeService) Delete(ctx context.Context, calendar bot.ChatID, id ID) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.DeleteError != nil {
		return s.DeleteError
	}
	for ix, ev := range s.events {
		if ev.Calendar == calendar && ev.ID == id {
			s.events = slices.Delete(s.events, ix, ix+1)
			return nil
		}
	}
	return ErrEventDoesNotExist
}

func (s *FakeService) Events() []Event {
	s.lock.Lock()
	defer s.lock.Unlock()
	return slices.Clone(s.events)
}
