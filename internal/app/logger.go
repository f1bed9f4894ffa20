package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/quitsmoke-backend/internal/config"
)

const redacted = "[REDACTED]"

// secretKeys are attribute keys whose values never reach the log.
var secretKeys = map[string]bool{
	"password":      true,
	"password_hash": true,
	"access_token":  true,
	"refresh_token": true,
	"authorization": true,
	"jwt_secret":    true,
	"dsn":           true,
}

// NewLogger builds the process logger and installs it as slog's default.
// "json" selects the JSON handler; anything else selects the text handler
// with source locations.
func NewLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	text := !strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: redactSecrets,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if text {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler).With(slog.String("app", "quitsmoke"))
	slog.SetDefault(logger)
	return logger
}

func redactSecrets(_ []string, a slog.Attr) slog.Attr {
	if secretKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, redacted)
	}
	return a
}

// parseLevel accepts slog level names in any case; unknown input is info.
func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
