package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"studybot/internal/core/domain/bot"
	c "studybot/internal/core/domain/common"
	"studybot/internal/core/domain/event"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/logging"
	ratelimiter "studybot/internal/core/domain/rate_limiter"
	"studybot/internal/core/domain/reminder"
	createevent "studybot/internal/core/services/create_event"
	createflashcard "studybot/internal/core/services/create_flashcard"
	createreminder "studybot/internal/core/services/create_reminder"
	deleteevent "studybot/internal/core/services/delete_event"
	deleteflashcard "studybot/internal/core/services/delete_flashcard"
	deletereminder "studybot/internal/core/services/delete_reminder"
	listevents "studybot/internal/core/services/list_events"
	listflashcards "studybot/internal/core/services/list_flashcards"
	listuserreminders "studybot/internal/core/services/list_user_reminders"
	"studybot/internal/core/services/quiz"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	RATE_LIMITED_REPLY   = "⏳ You are sending commands too fast. Try again in a minute."
	RETRY_AFTER_REPLY    = "⏳ You are sending commands too fast. Try again in %d seconds."
	INTERNAL_ERROR_REPLY = "⚠️ Something went wrong. Please try again later."
	EVENTS_OFF_REPLY     = "📴 Events are not configured for this bot."
)

func one(text string, outcome string) ([]string, string) {
	return []string{text}, outcome
}

// failure maps errors every command shares. Services log their own
// failures, so unexpected errors are only noted here.
func (d *Dispatcher) failure(ctx context.Context, cmd string, err error) ([]string, string) {
	var validationErrors validation.Errors
	var exceeded *ratelimiter.ExceededError
	switch {
	case errors.As(err, &exceeded) && exceeded.RetryAfter > 0:
		seconds := int(math.Ceil(exceeded.RetryAfter.Seconds()))
		return one(fmt.Sprintf(RETRY_AFTER_REPLY, seconds), OUTCOME_REJECTED)
	case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
		return one(RATE_LIMITED_REPLY, OUTCOME_REJECTED)
	case errors.As(err, &validationErrors):
		return one(d.usage(cmd), OUTCOME_REJECTED)
	case errors.Is(err, event.ErrEventServiceDisabled):
		return one(EVENTS_OFF_REPLY, OUTCOME_REJECTED)
	default:
		d.log.Warning(ctx, "Command failed.", logging.Entry("command", cmd), logging.Entry("err", err))
		return one(INTERNAL_ERROR_REPLY, OUTCOME_FAILED)
	}
}

// joined reads the whole argument string as one value.
func joined(args string) string {
	return strings.TrimSpace(strings.Join(Split(args), " "))
}

func (d *Dispatcher) formatLocal(t time.Time) string {
	return t.In(d.loc).Format(c.DateTimeOutputLayout + " MST")
}

// batch splits a listing into messages that fit the message limit.
func (d *Dispatcher) batch(header string, entries []string) []string {
	if header != "" {
		entries = append([]string{header + "\n"}, entries...)
	}
	batches := bot.Batch(entries, d.messageLimit)
	for ix := range batches {
		batches[ix] = strings.TrimRight(batches[ix], "\n")
	}
	return batches
}

func (d *Dispatcher) help(ctx context.Context, in Incoming, args string) ([]string, string) {
	var text strings.Builder
	text.WriteString("📜 Bot commands:\n\n")
	for _, cmd := range d.commands {
		text.WriteString("• " + d.prefix + cmd.name)
		if cmd.args != "" {
			text.WriteString(" " + cmd.args)
		}
		text.WriteString(" — " + cmd.summary + "\n")
	}
	text.WriteString("\nWrap arguments containing spaces in quotes, e.g. ")
	text.WriteString(d.prefix + `createFlashcard Math "What is 2+2?" 4`)
	return d.batch("", []string{text.String()}), OUTCOME_OK
}

func (d *Dispatcher) createFlashcard(ctx context.Context, in Incoming, args string) ([]string, string) {
	words := Split(args)
	if len(words) < 3 {
		return one(d.usage("createFlashcard"), OUTCOME_REJECTED)
	}
	result, err := d.services.CreateFlashcard.Run(ctx, createflashcard.Input{
		Author:   in.User,
		Topic:    words[0],
		Question: words[1],
		Answer:   words[2],
	})
	if err != nil {
		return d.failure(ctx, "createFlashcard", err)
	}
	return one(fmt.Sprintf("✅ Flashcard created for %s!", result.Flashcard.Topic), OUTCOME_OK)
}

func (d *Dispatcher) listFlashcards(ctx context.Context, in Incoming, args string) ([]string, string) {
	topic := joined(args)
	input := listflashcards.Input{Topic: c.NewOptional(topic, topic != "")}
	result, err := d.services.ListFlashcards.Run(ctx, input)
	if err != nil {
		return d.failure(ctx, "listFlashcards", err)
	}
	if len(result.Flashcards) == 0 {
		if input.Topic.IsPresent {
			return one(fmt.Sprintf("No flashcards found for topic '%s'.", topic), OUTCOME_OK)
		}
		return one("No flashcards yet.", OUTCOME_OK)
	}

	entries := make([]string, 0, len(result.Flashcards))
	for _, card := range result.Flashcards {
		entries = append(entries, fmt.Sprintf("• %s: %s — %s\n", card.Topic, card.Question, card.Answer))
	}
	return d.batch("", entries), OUTCOME_OK
}

func (d *Dispatcher) deleteFlashcard(ctx context.Context, in Incoming, args string) ([]string, string) {
	words := Split(args)
	if len(words) < 2 {
		return one(d.usage("deleteFlashcard"), OUTCOME_REJECTED)
	}
	result, err := d.services.DeleteFlashcard.Run(ctx, deleteflashcard.Input{Topic: words[0], Question: words[1]})
	if errors.Is(err, flashcard.ErrFlashcardDoesNotExist) {
		return one(
			fmt.Sprintf("❌ No flashcard found with topic '%s' and question '%s'.", words[0], words[1]),
			OUTCOME_REJECTED,
		)
	}
	if err != nil {
		return d.failure(ctx, "deleteFlashcard", err)
	}
	return one(
		fmt.Sprintf("🗑️ Flashcard on %s with question '%s' deleted.", result.Flashcard.Topic, result.Flashcard.Question),
		OUTCOME_OK,
	)
}

// quiz answers immediately; the quiz itself runs in the background because
// the answers arrive as later updates.
func (d *Dispatcher) quiz(ctx context.Context, in Incoming, args string) ([]string, string) {
	topic := joined(args)
	if topic == "" {
		return one(d.usage("quiz"), OUTCOME_REJECTED)
	}
	d.inBackground(ctx, func(ctx context.Context) {
		input := quiz.Input{User: in.User, Topic: topic, AnnounceTo: in.ChatID}
		_, err := d.services.Quiz.Run(ctx, input)
		var reply string
		switch {
		case err == nil, errors.Is(err, context.Canceled):
			return
		case errors.Is(err, flashcard.ErrFlashcardDoesNotExist):
			reply = fmt.Sprintf("❌ No flashcards found for topic '%s'.", topic)
		case errors.Is(err, bot.ErrConversationInProgress):
			reply = "❌ You already have a quiz in progress. Finish it first."
		case errors.Is(err, quiz.ErrQuizInterrupted) && errors.Is(err, bot.ErrChatUnreachable):
			reply = "❌ Quiz stopped: I could not message you privately. Open a private chat with me, send " +
				d.prefix + "start and try again."
		case errors.Is(err, quiz.ErrQuizInterrupted):
			reply = "❌ Quiz stopped: I could not send you the next question. Please try again later."
		default:
			replies, _ := d.failure(ctx, "quiz", err)
			reply = replies[0]
		}
		d.reply(ctx, in.ChatID, reply)
	})
	return nil, OUTCOME_OK
}

func (d *Dispatcher) createReminder(ctx context.Context, in Incoming, args string) ([]string, string) {
	words := Split(args)
	if len(words) < 3 {
		return one("❌ Use format: "+d.prefix+"createReminder name MM/DD/YYYY HH:MM", OUTCOME_REJECTED)
	}
	name := words[0]
	result, err := d.services.CreateReminder.Run(ctx, createreminder.Input{
		Owner: in.User,
		Name:  name,
		Date:  words[1],
		Time:  words[2],
	})
	switch {
	case errors.Is(err, c.ErrInvalidDateTime):
		return one("❌ Invalid date/time format. Use MM/DD/YYYY HH:MM", OUTCOME_REJECTED)
	case errors.Is(err, reminder.ErrReminderPastDue):
		return one("❌ You can't set a reminder in the past.", OUTCOME_REJECTED)
	case errors.Is(err, reminder.ErrReminderDuplicateName):
		return one(fmt.Sprintf("❌ You already have a reminder named %s.", name), OUTCOME_REJECTED)
	case err != nil:
		return d.failure(ctx, "createReminder", err)
	}
	return one(
		fmt.Sprintf("✅ Reminder %s set for %s.", result.Reminder.Name, d.formatLocal(result.Reminder.At)),
		OUTCOME_OK,
	)
}

func (d *Dispatcher) listReminders(ctx context.Context, in Incoming, args string) ([]string, string) {
	result, err := d.services.ListReminders.Run(ctx, listuserreminders.Input{Owner: in.User})
	if err != nil {
		return d.failure(ctx, "listReminders", err)
	}
	if len(result.Reminders) == 0 {
		return one("📭 You have no reminders.", OUTCOME_OK)
	}
	entries := make([]string, 0, len(result.Reminders))
	for _, rem := range result.Reminders {
		entries = append(entries, fmt.Sprintf("%s — %s\n", rem.Name, d.formatLocal(rem.At)))
	}
	return d.batch("📅 Your Reminders:", entries), OUTCOME_OK
}

func (d *Dispatcher) deleteReminder(ctx context.Context, in Incoming, args string) ([]string, string) {
	name := joined(args)
	if name == "" {
		return one(d.usage("deleteReminder"), OUTCOME_REJECTED)
	}
	result, err := d.services.DeleteReminder.Run(ctx, deletereminder.Input{Owner: in.User, Name: name})
	if errors.Is(err, reminder.ErrReminderDoesNotExist) {
		return one(fmt.Sprintf("❌ No reminder named %s found.", name), OUTCOME_REJECTED)
	}
	if err != nil {
		return d.failure(ctx, "deleteReminder", err)
	}
	return one(fmt.Sprintf("🗑️ Reminder %s deleted.", result.Reminder.Name), OUTCOME_OK)
}

func (d *Dispatcher) createEvent(ctx context.Context, in Incoming, args string) ([]string, string) {
	format := "❌ Use format: " + d.prefix + `createEvent "Event Name" MM/DD/YYYY HH:MM`
	words := Split(args)
	if len(words) < 3 {
		return one(format, OUTCOME_REJECTED)
	}
	result, err := d.services.CreateEvent.Run(ctx, createevent.Input{
		Calendar: in.ChatID,
		Author:   in.User,
		Name:     words[0],
		Date:     words[1],
		Time:     words[2],
	})
	switch {
	case errors.Is(err, c.ErrInvalidDateTime):
		return one(format, OUTCOME_REJECTED)
	case errors.Is(err, event.ErrEventPastDue):
		return one("❌ You can't schedule an event in the past.", OUTCOME_REJECTED)
	case err != nil:
		return d.failure(ctx, "createEvent", err)
	}
	return one(
		fmt.Sprintf("✅ Event %s created for %s.", result.Event.Name, d.formatLocal(result.Event.StartAt)),
		OUTCOME_OK,
	)
}

func (d *Dispatcher) listEvents(ctx context.Context, in Incoming, args string) ([]string, string) {
	result, err := d.services.ListEvents.Run(ctx, listevents.Input{Calendar: in.ChatID})
	if err != nil {
		return d.failure(ctx, "listEvents", err)
	}
	if len(result.Events) == 0 {
		return one("📭 No scheduled events found.", OUTCOME_OK)
	}
	entries := make([]string, 0, len(result.Events))
	for _, ev := range result.Events {
		entries = append(entries, fmt.Sprintf(
			"🗓️ %s — %s UTC (ID: %s)\n",
			ev.Name,
			c.FormatDateTime(ev.StartAt, time.UTC),
			ev.ID,
		))
	}
	return d.batch("📅 Upcoming Events:", entries), OUTCOME_OK
}

func (d *Dispatcher) deleteEvent(ctx context.Context, in Incoming, args string) ([]string, string) {
	identifier := joined(args)
	if identifier == "" {
		return one(d.usage("deleteEvent"), OUTCOME_REJECTED)
	}
	result, err := d.services.DeleteEvent.Run(ctx, deleteevent.Input{Calendar: in.ChatID, Identifier: identifier})
	if errors.Is(err, event.ErrEventDoesNotExist) {
		return one(fmt.Sprintf("❌ No event found matching '%s'.", identifier), OUTCOME_REJECTED)
	}
	if err != nil {
		return d.failure(ctx, "deleteEvent", err)
	}
	return one(fmt.Sprintf("🗑️ Event %s deleted.", result.Event.Name), OUTCOME_OK)
}
