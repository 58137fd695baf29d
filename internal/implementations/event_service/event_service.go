package eventservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"studybot/internal/core/domain/bot"
	"studybot/internal/core/domain/event"
	"time"
)

type eventPayload struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
}

func (p eventPayload) toEvent(calendar bot.ChatID) event.Event {
	return event.Event{
		ID:          event.ID(p.ID),
		Calendar:    calendar,
		Name:        p.Name,
		Description: p.Description,
		StartAt:     p.StartAt,
		EndAt:       p.EndAt,
	}
}

// HTTP talks to the scheduling service that owns calendar events. Each chat
// is a calendar at /calendars/{chatID}/events.
type HTTP struct {
	httpClient http.Client
	baseURL    url.URL
	token      string
}

func NewHTTP(baseURL url.URL, token string, timeout time.Duration) *HTTP {
	return &HTTP{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.Client{Timeout: timeout},
	}
}

func (s *HTTP) Create(ctx context.Context, input event.CreateInput) (ev event.Event, err error) {
	var body bytes.Buffer
	err = json.NewEncoder(&body).Encode(eventPayload{
		Name:        input.Name,
		Description: input.Description,
		StartAt:     input.StartAt.UTC(),
		EndAt:       input.EndAt.UTC(),
	})
	if err != nil {
		return ev, err
	}

	var created eventPayload
	if err := s.do(ctx, http.MethodPost, s.eventsURL(input.Calendar), &body, &created); err != nil {
		return ev, err
	}
	return created.toEvent(input.Calendar), nil
}

func (s *HTTP) List(ctx context.Context, calendar bot.ChatID) ([]event.Event, error) {
	var listed []eventPayload
	if err := s.do(ctx, http.MethodGet, s.eventsURL(calendar), nil, &listed); err != nil {
		return nil, err
	}
	events := make([]event.Event, 0, len(listed))
	for _, p := range listed {
		events = append(events, p.toEvent(calendar))
	}
	return events, nil
}

func (s *HTTP) Delete(ctx context.Context, calendar bot.ChatID, id event.ID) error {
	return s.do(ctx, http.MethodDelete, s.eventsURL(calendar).JoinPath(string(id)), nil, nil)
}

func (s *HTTP) eventsURL(calendar bot.ChatID) *url.URL {
	return s.baseURL.JoinPath("calendars", strconv.FormatInt(int64(calendar), 10), "events")
}

func (s *HTTP) do(ctx context.Context, method string, url *url.URL, body io.Reader, result interface{}) error {
	request, err := http.NewRequestWithContext(ctx, method, url.String(), body)
	if err != nil {
		return err
	}
	request.Header.Add("accept", "application/json")
	if body != nil {
		request.Header.Add("content-type", "application/json")
	}
	if s.token != "" {
		request.Header.Add("authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && method == http.MethodDelete {
		return event.ErrEventDoesNotExist
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("got unsuccessful response from event service (status %d): %s", resp.StatusCode, string(content))
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("could not decode event service response: %w", err)
	}
	return nil
}

// Disabled is used when no event service is configured.
type Disabled struct{}

func NewDisabled() *Disabled {
	return &Disabled{}
}

func (Disabled) Create(ctx context.Context, input event.CreateInput) (event.Event, error) {
	return event.Event{}, event.ErrEventServiceDisabled
}

func (Disabled) List(ctx context.Context, calendar bot.ChatID) ([]event.Event, error) {
	return nil, event.ErrEventServiceDisabled
}

func (Disabled) Delete(ctx context.Context, calendar bot.ChatID, id event.ID) error {
	return event.ErrEventServiceDisabled
}
