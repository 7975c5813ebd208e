package utils

import (
	"log/slog"
	"strings"
)

// LogEvent emits a standardized module/action line with request_id.
// Keep message summarized; never pass raw payloads or credentials.
func LogEvent(requestID, module, action, message string, attrs ...any) {
	args := []any{
		"module", strings.ToLower(module),
		"action", action,
		"request_id", strings.TrimSpace(requestID),
	}
	slog.Info(message, append(args, attrs...)...)
}
