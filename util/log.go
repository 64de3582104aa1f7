// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LogContext is the contextual information attached to every log message
type LogContext interface {
	AppName() string
	SessionID() string
	LogRootDir() string
}

// BasicLogContext is a minimal LogContext for callers without their own
type BasicLogContext struct {
	sessionID string
}

// AppName returns an empty string
func (c *BasicLogContext) AppName() string {
	return ""
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID = NewSessionID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *BasicLogContext) LogRootDir() string {
	return ""
}

// NewSessionID creates a random session identifier for log correlation
func NewSessionID() string {
	return uuid.New().String()
}

// Severity is the audit log severity level
type Severity int

// Severity levels, in increasing order of importance
const (
	INFO Severity = iota
	NOTICE
	WARN
	ERROR
	FATAL
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

func eventFor(ctx LogContext, level zerolog.Level) *zerolog.Event {
	event := logger.WithLevel(level)
	if ctx != nil {
		if app := ctx.AppName(); app != "" {
			event = event.Str("app", app)
		}
		event = event.Str("session", ctx.SessionID())
	}
	return event
}

// LogInfo logs an informational message
func LogInfo(ctx LogContext, message string) {
	eventFor(ctx, zerolog.InfoLevel).Msg(message)
}

// LogAlert logs a message that requires operator attention
func LogAlert(ctx LogContext, message string) {
	eventFor(ctx, zerolog.WarnLevel).Msg(message)
}

// LogSimpleErr logs a message and its underlying error, and returns a
// single error wrapping both for the caller to propagate
func LogSimpleErr(ctx LogContext, message string, err error) error {
	eventFor(ctx, zerolog.ErrorLevel).Err(err).Msg(message)
	return fmt.Errorf("%s %v", message, err)
}

// LogAuditInput is the set of fields for an audit log entry
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

var auditLevels = map[Severity]zerolog.Level{
	INFO:   zerolog.InfoLevel,
	NOTICE: zerolog.InfoLevel,
	WARN:   zerolog.WarnLevel,
	ERROR:  zerolog.ErrorLevel,
	FATAL:  zerolog.FatalLevel,
}

// LogAudit logs a structured audit entry recording who did what to whom
func LogAudit(ctx LogContext, input LogAuditInput) {
	level, ok := auditLevels[input.Severity]
	if !ok {
		level = zerolog.InfoLevel
	}
	eventFor(ctx, level).
		Str("actor", input.Actor).
		Str("action", input.Action).
		Str("actee", input.Actee).
		Msg(input.Message)
}
