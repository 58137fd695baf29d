package reminder

import "context"

// Sender delivers a due reminder to its owner. A returned error means the
// owner was not notified; callers decide whether that matters.
type Sender interface {
	SendReminder(ctx context.Context, rem Reminder) error
}
