package monitoring

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Component string                 `json:"component"`
	EventType string                 `json:"event_type"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type Logger interface {
	Log(ctx context.Context, level LogLevel, eventType string, message string, details map[string]interface{})
}

type logger struct {
	component string
	minLevel  LogLevel
	now       func() time.Time
	mu        sync.Mutex
	enc       *json.Encoder
}

// NewLogger returns a Logger writing one JSON object per line to stdout.
func NewLogger(component string) Logger {
	return NewWriterLogger(component, os.Stdout, INFO)
}

// NewWriterLogger returns a Logger writing entries at or above minLevel to w.
func NewWriterLogger(component string, w io.Writer, minLevel LogLevel) Logger {
	return &logger{
		component: component,
		minLevel:  minLevel,
		now:       time.Now,
		enc:       json.NewEncoder(w),
	}
}

func (l *logger) Log(_ context.Context, level LogLevel, eventType string, message string, details map[string]interface{}) {
	if level < l.minLevel {
		return
	}

	entry := LogEntry{
		Timestamp: l.now(),
		Level:     level.String(),
		Message:   message,
		Component: l.component,
		EventType: eventType,
		Details:   details,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(entry)
}

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

type nop struct{}

func (nop) Log(context.Context, LogLevel, string, string, map[string]interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return nop{}
}
