// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package logger

import (
	"log/slog"
	"os"
)

// SlogAdapter bridges the Logger interface onto log/slog.
type SlogAdapter struct {
	logger *slog.Logger
}

var _ Logger = (*SlogAdapter)(nil)

// NewSlogAdapter wraps an slog logger. A nil logger gets a text
// handler on stderr at the given level.
func NewSlogAdapter(l *slog.Logger, level Level) *SlogAdapter {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(level),
		}))
	}
	return &SlogAdapter{logger: l}
}

func slogLevel(level Level) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel, FatalLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func attrs(fields []Field) []any {
	out := make([]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, slog.Any(f.Key, f.Value))
	}
	return out
}

func (a *SlogAdapter) Debug(msg string, fields ...Field) {
	a.logger.Debug(msg, attrs(fields)...)
}

func (a *SlogAdapter) Info(msg string, fields ...Field) {
	a.logger.Info(msg, attrs(fields)...)
}

func (a *SlogAdapter) Warn(msg string, fields ...Field) {
	a.logger.Warn(msg, attrs(fields)...)
}

func (a *SlogAdapter) Error(msg string, fields ...Field) {
	a.logger.Error(msg, attrs(fields)...)
}

func (a *SlogAdapter) Fatal(msg string, fields ...Field) {
	a.logger.Error(msg, attrs(fields)...)
	os.Exit(1)
}

func (a *SlogAdapter) With(fields ...Field) Logger {
	return &SlogAdapter{logger: a.logger.With(attrs(fields)...)}
}
