package services

import (
	"studybot/internal/app/deps"
	drl "studybot/internal/core/domain/rate_limiter"
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
	ratelimiting "studybot/internal/core/services/rate_limiting"
	sendreminder "studybot/internal/core/services/send_reminder"
)

type Services struct {
	CreateFlashcard services.Service[createflashcard.Input, createflashcard.Result]
	ListFlashcards  services.Service[listflashcards.Input, listflashcards.Result]
	DeleteFlashcard services.Service[deleteflashcard.Input, deleteflashcard.Result]
	Quiz            services.Service[quiz.Input, quiz.Result]

	CreateReminder    services.Service[createreminder.Input, createreminder.Result]
	ListUserReminders services.Service[listuserreminders.Input, listuserreminders.Result]
	DeleteReminder    services.Service[deletereminder.Input, deletereminder.Result]
	SendReminder      services.Service[sendreminder.Input, sendreminder.Result]

	CreateEvent services.Service[createevent.Input, createevent.Result]
	ListEvents  services.Service[listevents.Input, listevents.Result]
	DeleteEvent services.Service[deleteevent.Input, deleteevent.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}
	limit := drl.Limit{Interval: drl.Minute, Value: deps.Config.CommandRateLimit}

	s.CreateFlashcard = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		limit,
		createflashcard.New(deps.Logger, deps.Flashcards),
	)
	s.ListFlashcards = listflashcards.New(deps.Logger, deps.Flashcards)
	s.DeleteFlashcard = deleteflashcard.New(deps.Logger, deps.Flashcards)
	s.Quiz = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		limit,
		quiz.New(
			deps.Logger,
			deps.Flashcards,
			deps.Conversations,
			deps.MessageSender,
			deps.Config.QuizAnswerTimeout,
		),
	)

	s.CreateReminder = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		limit,
		createreminder.New(deps.Logger, deps.Reminders, deps.ReminderIDGenerator, deps.Config.Location),
	)
	s.ListUserReminders = listuserreminders.New(deps.Logger, deps.Reminders)
	s.DeleteReminder = deletereminder.New(deps.Logger, deps.Reminders)
	s.SendReminder = sendreminder.New(deps.Logger, deps.Reminders, deps.ReminderSender, deps.Now)

	s.CreateEvent = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		limit,
		createevent.New(deps.Logger, deps.EventService, deps.Now, deps.Config.Location),
	)
	s.ListEvents = listevents.New(deps.Logger, deps.EventService)
	s.DeleteEvent = deleteevent.New(deps.Logger, deps.EventService)

	return s
}
