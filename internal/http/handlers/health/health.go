package health

import (
	"net/http"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/http/handlers/response"
)

type Counter interface {
	Len() int
}

type Handler struct {
	reminders  Counter
	flashcards Counter
}

func New(reminders Counter, flashcards Counter) *Handler {
	if reminders == nil {
		panic(e.NewNilArgumentError("reminders"))
	}
	if flashcards == nil {
		panic(e.NewNilArgumentError("flashcards"))
	}
	return &Handler{reminders: reminders, flashcards: flashcards}
}

type status struct {
	Status           string `json:"status"`
	PendingReminders int    `json:"pendingReminders"`
	Flashcards       int    `json:"flashcards"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, status{
		Status:           "ok",
		PendingReminders: h.reminders.Len(),
		Flashcards:       h.flashcards.Len(),
	}, http.StatusOK)
}
