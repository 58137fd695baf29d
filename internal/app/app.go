package app

import (
	"fmt"
	"net/http"
	"studybot/internal/app/deps"
	"studybot/internal/app/notifier"
	"studybot/internal/app/services"
	"studybot/internal/commands"
	"studybot/internal/http/handlers/health"
	listuserreminders "studybot/internal/http/handlers/reminders/list_user_reminders"
	reminderevents "studybot/internal/http/handlers/reminders/reminder_events"
	telegram "studybot/internal/http/handlers/telegram"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitDispatcher(deps *deps.Deps, s *services.Services) *commands.Dispatcher {
	return commands.New(
		deps.Logger,
		deps.MessageSender,
		commands.Services{
			CreateFlashcard: s.CreateFlashcard,
			ListFlashcards:  s.ListFlashcards,
			DeleteFlashcard: s.DeleteFlashcard,
			Quiz:            s.Quiz,
			CreateReminder:  s.CreateReminder,
			ListReminders:   s.ListUserReminders,
			DeleteReminder:  s.DeleteReminder,
			CreateEvent:     s.CreateEvent,
			ListEvents:      s.ListEvents,
			DeleteEvent:     s.DeleteEvent,
		},
		deps.Metrics,
		deps.Config.CommandPrefix,
		deps.Config.Location,
		deps.Config.MessageLimit,
	)
}

func InitNotifier(deps *deps.Deps, s *services.Services) *notifier.Loop {
	return notifier.New(deps.Logger, s.SendReminder, deps.Config.ReminderPollInterval)
}

func InitHttpServer(deps *deps.Deps, s *services.Services, dispatcher *commands.Dispatcher) *http.Server {
	telegramRouter := chi.NewRouter()
	telegramRouter.Method(
		http.MethodPost,
		fmt.Sprintf("/updates/%s", deps.Config.TelegramURLSecret),
		telegram.New(deps.Logger, dispatcher, deps.Conversations),
	)

	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodGet, "/events", reminderevents.New(deps.Logger, deps.SseServer))
	reminderRouter.Method(http.MethodGet, "/{owner:[0-9]+}", listuserreminders.New(s.ListUserReminders))

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/telegram", telegramRouter)
	router.Mount("/reminders", reminderRouter)
	router.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	router.Method(http.MethodGet, "/healthz", health.New(deps.Reminders, deps.Flashcards))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
