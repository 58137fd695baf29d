package remindersender

import (
	"context"
	"fmt"
	"studybot/internal/core/domain/bot"
	e "studybot/internal/core/domain/errors"
	"studybot/internal/core/domain/reminder"
)

type TelegramSender struct {
	botMessageSender bot.MessageSender
}

func NewTelegram(botMessageSender bot.MessageSender) *TelegramSender {
	if botMessageSender == nil {
		panic(e.NewNilArgumentError("botMessageSender"))
	}
	return &TelegramSender{botMessageSender: botMessageSender}
}

func (s *TelegramSender) SendReminder(ctx context.Context, rem reminder.Reminder) error {
	return s.botMessageSender.SendMessage(
		ctx,
		bot.Message{
			ChatID: rem.Owner.PrivateChat(),
			Text:   fmt.Sprintf("🔔 Reminder: %s is due now!", rem.Name),
		},
	)
}
