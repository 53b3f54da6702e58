// SPDX-License-Identifier: Apache-2.0

// Package logger wraps zerolog with the constructors and context helpers the
// quietpage binaries share. Logger embeds zerolog.Logger, so the full zerolog
// API is available on it; request-scoped instances come from FromContext and
// FromRequest.
package logger

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so helpers can be added without shadowing the
// upstream API.
type Logger struct {
	zerolog.Logger
}

func configureZerolog() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	// record the calling function instead of file:line
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger builds the server-side JSON logger writing to stdout. role tags
// every entry (e.g. "quietpage-server") so mixed log streams stay filterable.
func NewLogger(role string) *Logger {
	configureZerolog()

	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger builds the client runtime's logger. The client has no
// terminal of its own, so entries go to a "logs" file next to the executable;
// stdout is the fallback when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	configureZerolog()

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), "logs")
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logFile = os.Stdout
	}

	logger := zerolog.New(logFile).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop returns a logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy inheriting the receiver's fields; enriching
// the child leaves the parent untouched.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the request-scoped logger that withTraceID attached to
// the request context.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger carried by ctx. zerolog falls back to its
// global logger when ctx carries none, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
