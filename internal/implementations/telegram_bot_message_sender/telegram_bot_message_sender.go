package telegrambotmessagesender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"studybot/internal/core/domain/bot"
	"time"
)

type telegramMessage struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type webhook struct {
	URL string `json:"url"`
}

type apiResponse struct {
	Ok          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Parameters  struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

// APIError is a request Telegram answered with "ok": false.
type APIError struct {
	Method      string
	Code        int
	Description string
	RetryAfter  time.Duration
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("telegram %s failed with code %d: %s", e.Method, e.Code, e.Description)
	if e.RetryAfter > 0 {
		msg += fmt.Sprintf(" (retry after %s)", e.RetryAfter)
	}
	return msg
}

// Is reports 403 answers, sent when the user blocked the bot or never
// started a private chat with it, as bot.ErrChatUnreachable.
func (e *APIError) Is(target error) bool {
	return target == bot.ErrChatUnreachable && e.Code == http.StatusForbidden
}

type TelegramBotMessageSender struct {
	httpClient http.Client
	baseURL    url.URL
	token      string
}

func New(baseURL url.URL, token string, timeout time.Duration) *TelegramBotMessageSender {
	return &TelegramBotMessageSender{
		baseURL:    baseURL,
		token:      token,
		httpClient: http.Client{Timeout: timeout},
	}
}

func (s *TelegramBotMessageSender) SendMessage(ctx context.Context, m bot.Message) error {
	return s.call(ctx, "sendMessage", telegramMessage{ChatID: int64(m.ChatID), Text: m.Text})
}

// SetWebhook tells Telegram to deliver bot updates to webhookURL.
func (s *TelegramBotMessageSender) SetWebhook(ctx context.Context, webhookURL *url.URL) error {
	return s.call(ctx, "setWebhook", webhook{URL: webhookURL.String()})
}

func (s *TelegramBotMessageSender) call(ctx context.Context, method string, payload interface{}) error {
	endpoint := s.baseURL.JoinPath("bot"+s.token, method)
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		return err
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return err
	}
	request.Header.Add("content-type", "application/json")
	resp, err := s.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&result); err != nil {
		return fmt.Errorf("telegram %s: could not decode response (status %d): %w", method, resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !result.Ok {
		return &APIError{
			Method:      method,
			Code:        result.ErrorCode,
			Description: result.Description,
			RetryAfter:  time.Duration(result.Parameters.RetryAfter) * time.Second,
		}
	}
	return nil
}
