package listuserreminders

import (
	"fmt"
	"net/http"
	"strconv"
	"studybot/internal/core/domain/bot"
	c "studybot/internal/core/domain/common"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/services"
	service "studybot/internal/core/services/list_user_reminders"
	"studybot/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
)

const MAX_LIMIT = 100

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	Reminders  []response.Reminder `json:"reminders"`
	TotalCount uint                `json:"total_count"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	owner, err := strconv.ParseInt(chi.URLParam(r, "owner"), 10, 64)
	if err != nil {
		response.RenderBadRequest(rw, "invalid owner")
		return
	}

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		response.RenderBadRequest(rw, "invalid limit query parameter")
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Owner: bot.UserID(owner)})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	reminders := result.Reminders
	if n, ok := limit.Get(); ok && uint(len(reminders)) > n {
		reminders = reminders[:n]
	}
	respReminders := make([]response.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		respReminder := response.Reminder{}
		respReminder.FromDomainType(reminder)
		respReminders = append(respReminders, respReminder)
	}
	response.Render(
		rw,
		Result{Reminders: respReminders, TotalCount: uint(len(result.Reminders))},
		http.StatusOK,
	)
}

func parseLimit(raw string) (limit c.Optional[uint], err error) {
	if raw == "" {
		return limit, nil
	}
	l, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return limit, err
	}
	if l > MAX_LIMIT {
		return limit, fmt.Errorf("limit must be less than or equal to %v", MAX_LIMIT)
	}
	return c.Some(uint(l)), nil
}
