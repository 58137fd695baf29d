package listuserreminders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/reminder"
	service "studybot/internal/core/services/list_user_reminders"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

var Reminders []reminder.Reminder = []reminder.Reminder{
	{
		ID:        reminder.ID("r-1"),
		Name:      "Exam",
		Owner:     bot.UserID(42),
		At:        time.Date(2030, 1, 2, 1, 1, 1, 0, time.UTC),
		CreatedAt: time.Date(2030, 1, 1, 1, 1, 1, 0, time.UTC),
	},
	{
		ID:        reminder.ID("r-2"),
		Name:      "Read notes",
		Owner:     bot.UserID(42),
		At:        time.Date(2030, 1, 3, 1, 1, 1, 0, time.UTC),
		CreatedAt: time.Date(2030, 1, 1, 1, 1, 1, 0, time.UTC),
	},
}

type stubService struct {
	reminders []reminder.Reminder
	err       error
	input     *service.Input
}

func newStubService() *stubService {
	return &stubService{reminders: Reminders}
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	result.Reminders = s.reminders
	return result, nil
}

func serve(h http.Handler, url string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodGet, "/reminders/{owner}", h)
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodGet, url, nil))
	return rw
}

func TestListUserRemindersHandler(t *testing.T) {
	cases := []struct {
		url            string
		expectedStatus int
		expectedInput  *service.Input
		expectedCount  int
	}{
		{
			url:            "/reminders/42",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Owner: bot.UserID(42)},
			expectedCount:  2,
		},
		{
			url:            "/reminders/42?limit=1",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Owner: bot.UserID(42)},
			expectedCount:  1,
		},
		{
			url:            "/reminders/42?limit=0",
			expectedStatus: http.StatusOK,
			expectedInput:  &service.Input{Owner: bot.UserID(42)},
			expectedCount:  0,
		},
		{
			url:            "/reminders/42?limit=101",
			expectedStatus: http.StatusBadRequest,
		},
		{
			url:            "/reminders/42?limit=aaa",
			expectedStatus: http.StatusBadRequest,
		},
		{
			url:            "/reminders/me",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.url, func(t *testing.T) {
			stub := newStubService()
			rw := serve(New(stub), testcase.url)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.Equal(t, testcase.expectedInput, stub.input)
			if testcase.expectedStatus == http.StatusOK {
				assert.Contains(t, rw.Body.String(), `"total_count":2`)
				assert.Equal(t, testcase.expectedCount, strings.Count(rw.Body.String(), `"owner":42`))
			}
		})
	}
}

func TestListUserRemindersHandlerBody(t *testing.T) {
	rw := serve(New(newStubService()), "/reminders/42?limit=1")

	assert.Equal(t, http.StatusOK, rw.Code)
	assert.JSONEq(t, `{
		"reminders": [{
			"id": "r-1",
			"name": "Exam",
			"owner": 42,
			"at": "2030-01-02T01:01:01Z",
			"created_at": "2030-01-01T01:01:01Z"
		}],
		"total_count": 2
	}`, rw.Body.String())
}

func TestListUserRemindersHandlerServiceError(t *testing.T) {
	stub := newStubService()
	stub.err = errors.New("boom")

	rw := serve(New(stub), "/reminders/42")

	assert.Equal(t, http.StatusInternalServerError, rw.Code)
}

