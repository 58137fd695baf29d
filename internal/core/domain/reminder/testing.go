package reminder

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

type TestReminderSender struct {
	ErrorByName map[string]error
	sent        []Reminder
	attempts    []Reminder
	lock        sync.Mutex
}

func NewTestReminderSender() *TestReminderSender {
	return &TestReminderSender{ErrorByName: make(map[string]error)}
}

func (s *TestReminderSender) SendReminder(ctx context.Context, rem Reminder) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.attempts = append(s.attempts, rem)
	if err, ok := s.ErrorByName[rem.Name]; ok {
		return err
	}
	s.sent = append(s.sent, rem)
	return nil
}

func (s *TestReminderSender) Fail(name string, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ErrorByName[name] = err
}

func (s *TestReminderSender) Sent() []Reminder {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Reminder(nil), s.sent...)
}

func (s *TestReminderSender) Attempts() []Reminder {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Reminder(nil), s.attempts...)
}

type TestIDGenerator struct {
	counter atomic.Int64
}

func NewTestIDGenerator() *TestIDGenerator {
	return &TestIDGenerator{}
}

func (g *TestIDGenerator) GenerateID() ID {
	return ID(fmt.Sprintf("reminder-%d", g.counter.Add(1)))
}
