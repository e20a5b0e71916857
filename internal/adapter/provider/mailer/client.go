// Package mailer sends transactional email through a JSON HTTP API.
//
// The API accepts POST {base}/emails with a bearer key and a body of
// {"from", "to", "subject", "text"}; any 2xx status is success.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const retryDelay = 500 * time.Millisecond

// Message is one outgoing email.
type Message struct {
	To      string
	Subject string
	Text    string
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Client talks to the mail API.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client. timeout bounds each HTTP attempt.
func New(baseURL, apiKey, from string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "mailer"),
	}
}

// Send delivers msg. It retries once on a network error or 5xx status.
func (c *Client) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("mailer: encode request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, payload)
	if err != nil {
		return fmt.Errorf("mailer: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailer: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.log.DebugContext(ctx, "mail sent", slog.String("subject", msg.Subject), slog.Int("status", resp.StatusCode))
	return nil
}

func (c *Client) newRequest(ctx context.Context, payload []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	return req, nil
}

func (c *Client) doWithRetry(ctx context.Context, payload []byte) (*http.Response, error) {
	req, err := c.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "mailer retry", slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	req, err = c.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}
	return c.httpClient.Do(req)
}
