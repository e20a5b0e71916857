// Package summarizer produces short journal entry summaries with the
// Anthropic Messages API.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/growth-journal-backend/internal/domain"
)

const systemPrompt = `You summarize personal journal entries for the person who wrote them.
Write two or three plain sentences in the second person ("You ...").
Keep their own words where possible. Do not give advice, diagnose, or add facts.
Reply with the summary text only.`

// Config configures a Client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int64
	Timeout   time.Duration
	// BaseURL overrides the API endpoint (for testing).
	BaseURL string
}

// Client summarizes entries through Claude.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client. Requests are retried once by the SDK.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(1),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "summarizer"),
	}
}

// Summarize returns a short summary of one entry. Provider failures wrap
// domain.ErrUnavailable.
func (c *Client) Summarize(ctx context.Context, title, body string) (string, error) {
	start := time.Now()

	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(title, body))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarizer: messages api: %w: %w", domain.ErrUnavailable, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", fmt.Errorf("summarizer: empty response: %w", domain.ErrUnavailable)
	}

	c.log.DebugContext(ctx, "summary generated",
		slog.String("model", string(msg.Model)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("took", time.Since(start)),
	)

	return summary, nil
}

func buildPrompt(title, body string) string {
	return fmt.Sprintf("Title: %s\n\n%s", title, body)
}
