package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const defaultAPIBaseURL = "https://api.telegram.org"

type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

type ClientOption func(*Client)

func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.http.Timeout = timeout
	}
}

func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		token:   token,
		baseURL: defaultAPIBaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer res.Body.Close()

	var apiRes apiResponse
	if err := json.NewDecoder(res.Body).Decode(&apiRes); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !apiRes.OK {
		return fmt.Errorf("telegram api error: %s", apiRes.Description)
	}
	return nil
}

// Delivery результат отправки одному получателю.
type Delivery struct {
	ChatID int64
	Err    error
}

// Broadcast последовательно рассылает сообщение всем получателям.
// Ошибки отдельных отправок не прерывают рассылку.
func (c *Client) Broadcast(ctx context.Context, chatIDs []int64, text string) []Delivery {
	deliveries := make([]Delivery, 0, len(chatIDs))
	for _, chatID := range chatIDs {
		deliveries = append(deliveries, Delivery{
			ChatID: chatID,
			Err:    c.SendMessage(ctx, chatID, text),
		})
	}
	return deliveries
}

// LogFailures пишет в лог неудачные отправки из результата Broadcast.
func LogFailures(logger *slog.Logger, deliveries []Delivery) {
	for _, d := range deliveries {
		if d.Err != nil {
			logger.Error("failed to notify admin",
				slog.Int64("chat_id", d.ChatID),
				slog.Any("error", d.Err),
			)
		}
	}
}
