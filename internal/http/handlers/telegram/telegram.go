package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"studybot/internal/commands"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/logging"
	"studybot/internal/http/handlers/response"
)

const PRIVATE_CHAT = "private"

type Dispatcher interface {
	Dispatch(ctx context.Context, in commands.Incoming) bool
}

type Handler struct {
	log           logging.Logger
	dispatcher    Dispatcher
	conversations bot.Conversations
}

func New(log logging.Logger, dispatcher Dispatcher, conversations bot.Conversations) *Handler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	if conversations == nil {
		panic(e.NewNilArgumentError("conversations"))
	}
	return &Handler{log: log, dispatcher: dispatcher, conversations: conversations}
}

type user struct {
	ID    int64 `json:"id"`
	IsBot bool  `json:"is_bot"`
}

type chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type message struct {
	ID   int64  `json:"message_id"`
	From *user  `json:"from"`
	Chat chat   `json:"chat"`
	Date int64  `json:"date"`
	Text string `json:"text"`
}

type update struct {
	ID      int64    `json:"update_id"`
	Message *message `json:"message"`
}

func (u *update) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(u)
}

// ServeHTTP always answers 200 so that Telegram does not redeliver updates
// the bot cannot handle.
func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	defer response.Render(rw, struct{}{}, http.StatusOK)

	update := update{}
	if err := update.FromJSON(r.Body); err != nil {
		h.log.Error(
			r.Context(),
			"Could not decode Telegram update.",
			logging.Entry("err", err),
		)
		return
	}
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		h.log.Debug(
			r.Context(),
			"Skip Telegram update.",
			logging.Entry("updateID", update.ID),
		)
		return
	}
	if update.Message.From.IsBot {
		return
	}

	msg := update.Message
	in := commands.Incoming{
		ChatID: bot.ChatID(msg.Chat.ID),
		User:   bot.UserID(msg.From.ID),
		Text:   msg.Text,
	}
	h.log.Debug(
		r.Context(),
		"Got Telegram update.",
		logging.Entry("updateID", update.ID),
		logging.Entry("chatID", in.ChatID),
		logging.Entry("chatType", msg.Chat.Type),
		logging.Entry("user", in.User),
	)

	if h.dispatcher.Dispatch(r.Context(), in) {
		return
	}
	if msg.Chat.Type == PRIVATE_CHAT && h.conversations.Deliver(in.User, in.Text) {
		h.log.Debug(r.Context(), "Reply delivered to conversation.", logging.Entry("user", in.User))
	}
}
