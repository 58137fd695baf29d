package commands

import (
	"context"
	"strings"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/core/services"
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
	"sync"
	"time"
)

const (
	OUTCOME_OK       = "ok"
	OUTCOME_REJECTED = "rejected"
	OUTCOME_FAILED   = "failed"

	UNKNOWN_COMMAND = "unknown"
)

// Incoming is a text message received in a chat.
type Incoming struct {
	ChatID bot.ChatID
	User   bot.UserID
	Text   string
}

type Services struct {
	CreateFlashcard services.Service[createflashcard.Input, createflashcard.Result]
	ListFlashcards  services.Service[listflashcards.Input, listflashcards.Result]
	DeleteFlashcard services.Service[deleteflashcard.Input, deleteflashcard.Result]
	Quiz            services.Service[quiz.Input, quiz.Result]
	CreateReminder  services.Service[createreminder.Input, createreminder.Result]
	ListReminders   services.Service[listuserreminders.Input, listuserreminders.Result]
	DeleteReminder  services.Service[deletereminder.Input, deletereminder.Result]
	CreateEvent     services.Service[createevent.Input, createevent.Result]
	ListEvents      services.Service[listevents.Input, listevents.Result]
	DeleteEvent     services.Service[deleteevent.Input, deleteevent.Result]
}

type Observer interface {
	ObserveCommand(command string, outcome string)
}

type handler func(ctx context.Context, in Incoming, args string) (replies []string, outcome string)

type command struct {
	name    string
	args    string
	summary string
	handle  handler
}

type Dispatcher struct {
	log          logging.Logger
	sender       bot.MessageSender
	services     Services
	observer     Observer
	prefix       string
	loc          *time.Location
	messageLimit int
	commands     []*command
	byName       map[string]*command
	background   sync.WaitGroup
	ctx          context.Context
	cancel       context.CancelFunc
}

func New(
	log logging.Logger,
	sender bot.MessageSender,
	services Services,
	observer Observer,
	prefix string,
	loc *time.Location,
	messageLimit int,
) *Dispatcher {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if observer == nil {
		panic(e.NewNilArgumentError("observer"))
	}
	if loc == nil {
		panic(e.NewNilArgumentError("loc"))
	}
	if prefix == "" {
		panic(e.NewInvalidArgumentError("prefix", "must not be empty"))
	}
	if messageLimit <= 0 {
		panic(e.NewInvalidArgumentError("messageLimit", "must be positive"))
	}
	d := &Dispatcher{
		log:          log,
		sender:       sender,
		services:     services,
		observer:     observer,
		prefix:       prefix,
		loc:          loc,
		messageLimit: messageLimit,
		byName:       make(map[string]*command),
	}
	d.ctx, d.cancel = context.WithCancel(context.Background())
	d.register([]string{"help", "commandHelp", "start"}, "", "Shows this message.", d.help)
	d.register(
		[]string{"createFlashcard"},
		"topic question answer",
		"Creates a new flashcard under the given topic.",
		d.createFlashcard,
	)
	d.register(
		[]string{"listFlashcards", "viewFlashcards"},
		"[topic]",
		"Lists all flashcards, or only the ones of a topic.",
		d.listFlashcards,
	)
	d.register(
		[]string{"deleteFlashcard"},
		"topic question",
		"Deletes the flashcard with the given topic and question.",
		d.deleteFlashcard,
	)
	d.register(
		[]string{"quizme", "quiz"},
		"topic",
		"Quizzes you in a private chat on the flashcards of a topic.",
		d.quiz,
	)
	d.register(
		[]string{"createReminder"},
		"name MM/DD/YYYY HH:MM",
		"Sends you a private message when the reminder is due.",
		d.createReminder,
	)
	d.register([]string{"listReminders"}, "", "Lists your active reminders.", d.listReminders)
	d.register([]string{"deleteReminder"}, "name", "Deletes one of your reminders.", d.deleteReminder)
	d.register(
		[]string{"createEvent"},
		"name MM/DD/YYYY HH:MM",
		"Schedules a one hour event for this chat.",
		d.createEvent,
	)
	d.register([]string{"listEvents"}, "", "Lists the events scheduled for this chat.", d.listEvents)
	d.register([]string{"deleteEvent"}, "name or ID", "Deletes an event of this chat.", d.deleteEvent)
	return d
}

func (d *Dispatcher) register(names []string, args string, summary string, handle handler) {
	cmd := &command{name: names[0], args: args, summary: summary, handle: handle}
	d.commands = append(d.commands, cmd)
	for _, name := range names {
		d.byName[strings.ToLower(name)] = cmd
	}
}

// Dispatch runs the command in in.Text and replies to in.ChatID. It returns
// false when the text is not a command.
func (d *Dispatcher) Dispatch(ctx context.Context, in Incoming) bool {
	name, args, ok := Parse(in.Text, d.prefix)
	if !ok {
		return false
	}
	ctx = logging.WithEntries(ctx, logging.Entry("chatID", in.ChatID), logging.Entry("user", in.User))

	var replies []string
	var outcome string
	commandName := UNKNOWN_COMMAND
	if cmd, ok := d.byName[strings.ToLower(name)]; ok {
		commandName = cmd.name
		replies, outcome = cmd.handle(ctx, in, args)
	} else {
		replies = []string{"🤔 Unknown command " + d.prefix + name + ". Send " + d.prefix + "help to see what I can do."}
		outcome = OUTCOME_REJECTED
	}

	d.observer.ObserveCommand(commandName, outcome)
	d.log.Info(
		ctx,
		"Command handled.",
		logging.Entry("command", commandName),
		logging.Entry("outcome", outcome),
	)
	d.reply(ctx, in.ChatID, replies...)
	return true
}

// Wait blocks until commands running in the background, such as quizzes,
// have finished.
func (d *Dispatcher) Wait() {
	d.background.Wait()
}

// Close stops background commands and waits for them to return.
func (d *Dispatcher) Close() {
	d.cancel()
	d.background.Wait()
}

// inBackground runs f outside the request; f's context keeps the log
// entries of ctx but is cancelled only by Close.
func (d *Dispatcher) inBackground(ctx context.Context, f func(ctx context.Context)) {
	background := logging.WithEntries(d.ctx, logging.EntriesFrom(ctx)...)
	d.background.Add(1)
	go func() {
		defer d.background.Done()
		f(background)
	}()
}

func (d *Dispatcher) reply(ctx context.Context, chatID bot.ChatID, replies ...string) {
	for _, text := range replies {
		if err := d.sender.SendMessage(ctx, bot.Message{ChatID: chatID, Text: text}); err != nil {
			d.log.Warning(ctx, "Could not send reply.", logging.Entry("replyTo", chatID), logging.Entry("err", err))
			return
		}
	}
}

func (d *Dispatcher) usage(cmd string) string {
	c := d.byName[strings.ToLower(cmd)]
	text := "❌ Usage: " + d.prefix + c.name
	if c.args != "" {
		text += " " + c.args
	}
	return text
}
