package health

import (
	"net/http"
	"net/http/httptest"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/flashcard"
	"studybot/internal/core/domain/reminder"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	assert := require.New(t)
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	queue := reminder.NewQueue(func() time.Time { return now })
	_, err := queue.Schedule(reminder.ScheduleInput{ID: "1", Owner: bot.UserID(1), Name: "exam", At: now.Add(time.Hour)})
	assert.Nil(err)
	store := flashcard.NewStore()
	store.Insert(flashcard.Flashcard{Topic: "Math", Question: "2+2?", Answer: "4"})
	store.Insert(flashcard.Flashcard{Topic: "Math", Question: "3*3?", Answer: "9"})

	rw := httptest.NewRecorder()
	New(queue, store).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(http.StatusOK, rw.Code)
	assert.Equal("application/json", rw.Header().Get("Content-Type"))
	assert.JSONEq(`{"status": "ok", "pendingReminders": 1, "flashcards": 2}`, rw.Body.String())
}
