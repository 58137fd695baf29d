package conversation

import (
	"context"
	"studybot/internal/core/domain/bot"
	"sync"
	"time"
)

// Registry correlates a user's private messages with the single session
// waiting for them. Messages that arrive while no session is awaiting a
// reply are not consumed.
type Registry struct {
	lock     sync.Mutex
	sessions map[bot.UserID]*session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[bot.UserID]*session)}
}

func (r *Registry) Open(user bot.UserID) (bot.Conversation, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if _, ok := r.sessions[user]; ok {
		return nil, bot.ErrConversationInProgress
	}
	s := &session{registry: r, user: user, replies: make(chan string, 1)}
	r.sessions[user] = s
	return s, nil
}

func (r *Registry) Deliver(user bot.UserID, text string) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	s, ok := r.sessions[user]
	if !ok || !s.awaiting {
		return false
	}
	select {
	case s.replies <- text:
		s.awaiting = false
		return true
	default:
		return false
	}
}

func (r *Registry) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.sessions)
}

// Awaiting reports whether user's session is currently waiting for a reply.
func (r *Registry) Awaiting(user bot.UserID) bool {
	r.lock.Lock()
	defer r.lock.Unlock()
	s, ok := r.sessions[user]
	return ok && s.awaiting
}

func (r *Registry) startAwaiting(s *session) {
	r.lock.Lock()
	defer r.lock.Unlock()
	s.awaiting = true
}

// stopAwaiting drops a reply that raced with the end of the wait, so it is
// not taken as the answer to the next one.
func (r *Registry) stopAwaiting(s *session) {
	r.lock.Lock()
	defer r.lock.Unlock()
	s.awaiting = false
	select {
	case <-s.replies:
	default:
	}
}

func (r *Registry) close(s *session) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.sessions[s.user] == s {
		delete(r.sessions, s.user)
	}
}

type session struct {
	registry *Registry
	user     bot.UserID
	replies  chan string
	awaiting bool
}

func (s *session) Await(ctx context.Context, timeout time.Duration) (bot.Reply, error) {
	s.registry.startAwaiting(s)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case text := <-s.replies:
		return bot.Reply{Text: text}, nil
	case <-timer.C:
		s.registry.stopAwaiting(s)
		return bot.Reply{TimedOut: true}, nil
	case <-ctx.Done():
		s.registry.stopAwaiting(s)
		return bot.Reply{}, ctx.Err()
	}
}

func (s *session) Close() {
	s.registry.close(s)
}
