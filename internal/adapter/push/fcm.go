// Package push sends topic notifications through the FCM legacy HTTP API.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/headmetal/headware-backend/internal/config"
)

// Client sends topic-addressed push messages.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from PushConfig.
func NewClient(cfg config.PushConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "fcm"),
	}
}

type sendRequest struct {
	To           string       `json:"to"`
	Notification notification `json:"notification"`
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sendResponse struct {
	MessageID *int64 `json:"message_id"`
	Error     string `json:"error,omitempty"`
}

// NotifyTopic delivers a notification to every device subscribed to the topic.
// The caller decides whether a failure is fatal; accident intake treats it as
// log-and-continue.
func (c *Client) NotifyTopic(ctx context.Context, topic, title, body string) error {
	payload, err := json.Marshal(sendRequest{
		To:           "/topics/" + topic,
		Notification: notification{Title: title, Body: body},
	})
	if err != nil {
		return fmt.Errorf("fcm: encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("fcm: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fcm: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("fcm: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fcm: unexpected status %d", resp.StatusCode)
	}

	var result sendResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("fcm: decode response: %w", err)
	}
	if result.Error != "" {
		return fmt.Errorf("fcm: send rejected: %s", result.Error)
	}

	c.log.DebugContext(ctx, "topic notification sent",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}
