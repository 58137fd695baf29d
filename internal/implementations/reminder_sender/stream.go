package remindersender

import (
	"context"
	"encoding/json"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/reminder"
	"time"

	"github.com/r3labs/sse/v2"
)

const STREAM_ID = "reminders"

type streamEvent struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Owner int64     `json:"owner"`
	At    time.Time `json:"at"`
}

// StreamSender publishes fired reminders to the SSE stream STREAM_ID.
type StreamSender struct {
	sseServer *sse.Server
}

func NewStream(sseServer *sse.Server) *StreamSender {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	if !sseServer.StreamExists(STREAM_ID) {
		sseServer.CreateStream(STREAM_ID)
	}
	return &StreamSender{sseServer: sseServer}
}

func (s *StreamSender) SendReminder(ctx context.Context, rem reminder.Reminder) error {
	data, err := json.Marshal(streamEvent{
		ID:    string(rem.ID),
		Name:  rem.Name,
		Owner: int64(rem.Owner),
		At:    rem.At.UTC(),
	})
	if err != nil {
		return err
	}
	s.sseServer.Publish(STREAM_ID, &sse.Event{
		ID:    []byte(rem.ID),
		Event: []byte("reminder"),
		Data:  data,
	})
	return nil
}
