// Copyright 2026 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package beanz

import "log/slog"

// EventType represents the severity of an internal event.
type EventType int

const (
	// EventError indicates an error event.
	EventError EventType = iota
	// EventWarning indicates a warning event (e.g., a property was dropped).
	EventWarning
	// EventInfo indicates an informational event.
	EventInfo
	// EventDebug indicates a debug event (e.g., a descriptor was built).
	EventDebug
)

// String returns the string representation of the event type.
func (t EventType) String() string {
	switch t {
	case EventError:
		return "error"
	case EventWarning:
		return "warning"
	case EventInfo:
		return "info"
	case EventDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Event is an internal event raised while describing types.
type Event struct {
	Type    EventType
	Message string
	Args    []any // slog-style key-value pairs
}

// EventHandler processes internal events. The package is silent unless a
// handler is configured.
//
// Example:
//
//	beanz.WithEventHandler(func(e beanz.Event) {
//	    if e.Type == beanz.EventWarning {
//	        metrics.Inc("dropped_properties")
//	    }
//	})
type EventHandler func(Event)

// DefaultEventHandler returns an EventHandler that logs events to the
// provided slog.Logger. If logger is nil, events are discarded.
func DefaultEventHandler(logger *slog.Logger) EventHandler {
	if logger == nil {
		return func(Event) {}
	}

	return func(e Event) {
		switch e.Type {
		case EventError:
			logger.Error(e.Message, e.Args...)
		case EventWarning:
			logger.Warn(e.Message, e.Args...)
		case EventInfo:
			logger.Info(e.Message, e.Args...)
		case EventDebug:
			logger.Debug(e.Message, e.Args...)
		}
	}
}

func (c *config) emit(t EventType, msg string, args ...any) {
	if c.eventHandler != nil {
		c.eventHandler(Event{Type: t, Message: msg, Args: args})
	}
}
