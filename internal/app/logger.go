package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/growth-journal-backend/internal/config"
)

const redacted = "[REDACTED]"

// sensitiveKeys never reach the log output in clear text, whatever the
// nesting group.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"access_token":  {},
	"refresh_token": {},
	"authorization": {},
	"api_key":       {},
}

// NewLogger builds the process logger from cfg, writes to os.Stderr and
// installs it with slog.SetDefault.
//
// Format "json" is for production; "text" adds source locations for local
// development. Level is one of debug, info, warn, error (case-insensitive)
// and defaults to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg)).With(slog.String("app", applicationName))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: redactSensitive,
	}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func redactSensitive(_ []string, a slog.Attr) slog.Attr {
	if _, ok := sensitiveKeys[strings.ToLower(a.Key)]; ok {
		return slog.String(a.Key, redacted)
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
