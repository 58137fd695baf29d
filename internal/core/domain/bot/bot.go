package bot

import (
	"context"
	"errors"
	"time"
)

var (
	ErrConversationInProgress = errors.New("conversation is already in progress")
	// ErrChatUnreachable is matched by send errors for chats the bot may not
	// write to, e.g. a user who never opened a private chat with it.
	ErrChatUnreachable = errors.New("chat is unreachable")
)

// UserID identifies a chat platform user. For private chats it is also the
// chat to write to.
type UserID int64

type ChatID int64

func (u UserID) PrivateChat() ChatID {
	return ChatID(u)
}

type Message struct {
	ChatID ChatID
	Text   string
}

type MessageSender interface {
	SendMessage(ctx context.Context, m Message) error
}

// Reply is the outcome of waiting for a user's next private message.
type Reply struct {
	Text     string
	TimedOut bool
}

type Conversation interface {
	Await(ctx context.Context, timeout time.Duration) (Reply, error)
	Close()
}

type Conversations interface {
	Open(user UserID) (Conversation, error)
	Deliver(user UserID, text string) bool
}
