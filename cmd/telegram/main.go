package main

import (
	"context"
	"fmt"
	"os"
	"studybot/internal/config"
	telegrambotmessagesender "studybot/internal/implementations/telegram_bot_message_sender"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if cfg.BaseURL.Host == "" {
		fmt.Fprintln(os.Stderr, "error: BASE_URL must be set to register the webhook")
		os.Exit(1)
	}

	sender := telegrambotmessagesender.New(cfg.TelegramBaseURL, cfg.TelegramBotToken, cfg.TelegramRequestTimeout)
	url := cfg.TelegramWebhookURL()
	if err := sender.SetWebhook(context.Background(), url); err != nil {
		fmt.Fprintf(os.Stderr, "could not register telegram webhook, error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Webhook %s successfully registered\n", url)
}
