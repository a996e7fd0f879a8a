// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package audit records key lifecycle and cryptographic operations for
// later review. Events never contain key material or plaintext.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the audited operation.
type EventType string

const (
	EventKeyGenerate EventType = "key.generate"
	EventKeyGet      EventType = "key.get"
	EventKeyRotate   EventType = "key.rotate"
	EventKeyDelete   EventType = "key.delete"
	EventKeyList     EventType = "key.list"
	EventKeyUpdate   EventType = "key.update"
	EventEncrypt     EventType = "crypto.encrypt"
	EventDecrypt     EventType = "crypto.decrypt"
)

// Severity classifies how sensitive an event is. Basic audit level
// records only SeverityNotice and above; full records everything.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityNotice
	SeverityWarning
)

// Outcome records whether the audited operation succeeded.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Event is a single audit record.
type Event struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Severity  Severity          `json:"severity"`
	Outcome   Outcome           `json:"outcome"`
	DeviceID  string            `json:"device_id,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	Detail    map[string]string `json:"detail,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// NewEvent creates a timestamped event with a fresh identifier.
func NewEvent(eventType EventType, severity Severity, outcome Outcome, deviceID string) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Severity:  severity,
		Outcome:   outcome,
		DeviceID:  deviceID,
		Timestamp: time.Now().UTC(),
	}
}

// Logger receives audit events.
type Logger interface {
	Log(event Event)
}

// Level controls which events a filtering logger records.
type Level string

const (
	LevelNone  Level = "none"
	LevelBasic Level = "basic"
	LevelFull  Level = "full"
)

// Valid reports whether the level is one of none, basic, or full.
func (l Level) Valid() bool {
	switch l {
	case LevelNone, LevelBasic, LevelFull:
		return true
	}
	return false
}

// ShouldLog reports whether an event of the given severity is recorded
// at this level.
func (l Level) ShouldLog(severity Severity) bool {
	switch l {
	case LevelFull:
		return true
	case LevelBasic:
		return severity >= SeverityNotice
	default:
		return false
	}
}

// Filtered wraps a logger so that only events permitted by the level
// are forwarded.
func Filtered(next Logger, level Level) Logger {
	return &filtered{next: next, level: level}
}

type filtered struct {
	next  Logger
	level Level
}

func (f *filtered) Log(event Event) {
	if f.level.ShouldLog(event.Severity) {
		f.next.Log(event)
	}
}
