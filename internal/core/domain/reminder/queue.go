package reminder

import (
	"slices"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"sync"
	"time"
)

type ScheduleInput struct {
	ID    ID
	Owner bot.UserID
	Name  string
	At    time.Time
}

// Queue holds pending reminders ordered by At. Reminders with equal At keep
// the order in which they were scheduled. All methods are safe for
// concurrent use.
type Queue struct {
	lock      sync.Mutex
	reminders []Reminder
	now       func() time.Time
}

func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Queue{now: now}
}

func (q *Queue) Schedule(input ScheduleInput) (rem Reminder, err error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	now := q.now()
	if !input.At.After(now) {
		return rem, ErrReminderPastDue
	}
	if q.indexOf(input.Owner, input.Name) >= 0 {
		return rem, ErrReminderDuplicateName
	}

	rem = Reminder{
		ID:        input.ID,
		Name:      input.Name,
		At:        input.At,
		Owner:     input.Owner,
		CreatedAt: now,
	}
	ix := len(q.reminders)
	for i, r := range q.reminders {
		if r.At.After(rem.At) {
			ix = i
			break
		}
	}
	q.reminders = slices.Insert(q.reminders, ix, rem)
	return rem, nil
}

func (q *Queue) Cancel(owner bot.UserID, name string) (rem Reminder, err error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	ix := q.indexOf(owner, name)
	if ix < 0 {
		return rem, ErrReminderDoesNotExist
	}
	rem = q.reminders[ix]
	q.reminders = slices.Delete(q.reminders, ix, ix+1)
	return rem, nil
}

// PeekDue returns the earliest reminder if it is due at now.
func (q *Queue) PeekDue(now time.Time) (rem Reminder, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.reminders) == 0 || !q.reminders[0].IsDue(now) {
		return rem, false
	}
	return q.reminders[0], true
}

func (q *Queue) PopFront() (rem Reminder, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	return q.popFront()
}

// PopDue removes and returns the earliest reminder if it is due at now.
func (q *Queue) PopDue(now time.Time) (rem Reminder, ok bool) {
	q.lock.Lock()
	defer q.lock.Unlock()

	if len(q.reminders) == 0 || !q.reminders[0].IsDue(now) {
		return rem, false
	}
	return q.popFront()
}

func (q *Queue) ListByOwner(owner bot.UserID) []Reminder {
	q.lock.Lock()
	defer q.lock.Unlock()

	reminders := make([]Reminder, 0)
	for _, r := range q.reminders {
		if r.Owner == owner {
			reminders = append(reminders, r)
		}
	}
	return reminders
}

func (q *Queue) All() []Reminder {
	q.lock.Lock()
	defer q.lock.Unlock()

	return slices.Clone(q.reminders)
}

func (q *Queue) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()

	return len(q.reminders)
}

func (q *Queue) popFront() (rem Reminder, ok bool) {
	if len(q.reminders) == 0 {
		return rem, false
	}
	rem = q.reminders[0]
	q.reminders[0] = Reminder{}
	q.reminders = q.reminders[1:]
	return rem, true
}

func (q *Queue) indexOf(owner bot.UserID, name string) int {
	for ix, r := range q.reminders {
		if r.Matches(owner, name) {
			return ix
		}
	}
	return -1
}
