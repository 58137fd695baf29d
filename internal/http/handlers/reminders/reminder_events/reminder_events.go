package reminderevents

import (
	"net/http"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	remindersender "studybot/internal/implementations/reminder_sender"

	"github.com/r3labs/sse/v2"
)

// Handler streams fired reminders as server-sent events.
type Handler struct {
	log       logging.Logger
	sseServer *sse.Server
}

func New(log logging.Logger, sseServer *sse.Server) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &Handler{log: log, sseServer: sseServer}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	query.Set("stream", remindersender.STREAM_ID)
	r = r.Clone(r.Context())
	r.URL.RawQuery = query.Encode()

	go func() {
		// Received browser disconnection
		<-r.Context().Done()
		h.log.Info(r.Context(), "Unsubscribed from reminder events.", logging.Entry("remote", r.RemoteAddr))
	}()

	h.log.Info(r.Context(), "Subscribed to reminder events.", logging.Entry("remote", r.RemoteAddr))
	h.sseServer.ServeHTTP(rw, r)
}
