package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// ParseLevel maps "debug" | "info" | "error" onto a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes one JSON object per line.
type Logger struct {
	service   string
	requestID string
	min       Level
	out       io.Writer
	mu        *sync.Mutex
}

func New(service string) *Logger { return NewWithWriter(service, os.Stdout, LevelDebug) }

func NewWithWriter(service string, w io.Writer, min Level) *Logger {
	return &Logger{service: service, min: min, out: w, mu: &sync.Mutex{}}
}

// Named returns a copy that reports under another service name and shares the writer.
func (l *Logger) Named(service string) *Logger {
	c := *l
	c.service = service
	return &c
}

func (l *Logger) WithRequestID(id string) *Logger {
	c := *l
	c.requestID = id
	return &c
}

func (l *Logger) log(level Level, action, msg string, fields map[string]any, err error) {
	if level < l.min {
		return
	}
	entry := map[string]any{
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		"level":      level.String(),
		"service":    l.service,
		"action":     action,
		"message":    msg,
		"hostname":   hostname,
		"request_id": l.requestID,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "stack": fmt.Sprintf("%T", err)}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(action string, fields map[string]any)             { l.log(LevelInfo, action, action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any)            { l.log(LevelDebug, action, action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) { l.log(LevelError, action, action, fields, err) }

var hostname = func() string { h, _ := os.Hostname(); return h }()

type ctxKey struct{}

func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request-scoped logger, or fallback when none was attached.
func FromContext(ctx context.Context, fallback *Logger) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return fallback
}
