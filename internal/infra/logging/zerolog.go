// Package logging adapts zerolog to the service Logger contract.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// ZerologLogger implements the slog-style Logger interface used by the
// service layer on top of a zerolog.Logger.
type ZerologLogger struct {
	log zerolog.Logger
}

// NewZerolog constructs a logger writing JSON lines to w (stderr when nil).
func NewZerolog(w io.Writer) *ZerologLogger {
	if w == nil {
		w = os.Stderr
	}
	return &ZerologLogger{log: zerolog.New(w).With().Timestamp().Logger()}
}

// Wrap adapts an existing zerolog.Logger.
func Wrap(log zerolog.Logger) *ZerologLogger { return &ZerologLogger{log: log} }

// Debug logs at debug level with alternating key/value args.
func (l *ZerologLogger) Debug(msg string, args ...any) { emit(l.log.Debug(), msg, args) }

// Info logs at info level with alternating key/value args.
func (l *ZerologLogger) Info(msg string, args ...any) { emit(l.log.Info(), msg, args) }

// Warn logs at warn level with alternating key/value args.
func (l *ZerologLogger) Warn(msg string, args ...any) { emit(l.log.Warn(), msg, args) }

// Error logs at error level with alternating key/value args.
func (l *ZerologLogger) Error(msg string, args ...any) { emit(l.log.Error(), msg, args) }

func emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		ev = ev.Interface(key, args[i+1])
	}
	if len(args)%2 != 0 {
		ev = ev.Interface("arg", args[len(args)-1])
	}
	ev.Msg(msg)
}
