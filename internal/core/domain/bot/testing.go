package bot

import (
	"context"
	"sync"
	"time"
)

type FakeMessageSender struct {
	ErrorByChat map[ChatID]error
	sent        []Message
	lock        sync.Mutex
}

func NewFakeMessageSender() *FakeMessageSender {
	return &FakeMessageSender{ErrorByChat: make(map[ChatID]error)}
}

func (s *FakeMessageSender) SendMessage(ctx context.Context, m Message) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if err, ok := s.ErrorByChat[m.ChatID]; ok {
		return err
	}
	s.sent = append(s.sent, m)
	return nil
}

func (s *FakeMessageSender) Fail(chatID ChatID, err error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.ErrorByChat[chatID] = err
}

func (s *FakeMessageSender) Sent() []Message {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Message(nil), s.sent...)
}

func (s *FakeMessageSender) SentTo(chatID ChatID) []string {
	texts := make([]string, 0)
	for _, m := range s.Sent() {
		if m.ChatID == chatID {
			texts = append(texts, m.Text)
		}
	}
	return texts
}

// FakeConversations replays scripted replies. A user with no scripted reply
// left times out.
type FakeConversations struct {
	replies map[UserID][]Reply
	open    map[UserID]bool
	opened  int
	lock    sync.Mutex
}

func NewFakeConversations() *FakeConversations {
	return &FakeConversations{
		replies: make(map[UserID][]Reply),
		open:    make(map[UserID]bool),
	}
}

func (c *FakeConversations) Script(user UserID, answers ...string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	for _, answer := range answers {
		c.replies[user] = append(c.replies[user], Reply{Text: answer})
	}
}

func (c *FakeConversations) Open(user UserID) (Conversation, error) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.open[user] {
		return nil, ErrConversationInProgress
	}
	c.open[user] = true
	c.opened++
	return &fakeConversation{owner: c, user: user}, nil
}

func (c *FakeConversations) Deliver(user UserID, text string) bool {
	return false
}

func (c *FakeConversations) IsOpen(user UserID) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.open[user]
}

func (c *FakeConversations) Opened() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.opened
}

type fakeConversation struct {
	owner *FakeConversations
	user  UserID
}

func (c *fakeConversation) Await(ctx context.Context, timeout time.Duration) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}
	c.owner.lock.Lock()
	defer c.owner.lock.Unlock()
	replies := c.owner.replies[c.user]
	if len(replies) == 0 {
		return Reply{TimedOut: true}, nil
	}
	c.owner.replies[c.user] = replies[1:]
	return replies[0], nil
}

func (c *fakeConversation) Close() {
	c.owner.lock.Lock()
	defer c.owner.lock.Unlock()
	delete(c.owner.open, c.user)
}
