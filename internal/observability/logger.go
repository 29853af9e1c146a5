package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypeStage      EventType = "stage"
	EventTypeLLM        EventType = "llm"
	EventTypeParse      EventType = "parse"
	EventTypeValidation EventType = "validation"
	EventTypeProgress   EventType = "progress"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	Topic     string    `json:"topic,omitempty"`
	Stage     string    `json:"stage,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger handles structured logging. LLM prompt/reply pairs are also
// appended to a rotated jsonl file so a bad generation can be replayed
// against the parsers later.
type Logger struct {
	llmLogPath string
	maxSize    int64
}

func NewLogger() *Logger {
	return NewFileLogger(filepath.Join("logs", "llm.jsonl"))
}

// NewFileLogger routes the llm jsonl log to an explicit path.
func NewFileLogger(path string) *Logger {
	return &Logger{
		llmLogPath: path,
		maxSize:    10 * 1024 * 1024, // 10MB
	}
}

// Log emits a structured JSON event to stdout.
func (l *Logger) Log(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		fmt.Printf("{\"error\": \"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Println(string(data))

	if evt.Type == EventTypeLLM {
		l.writeToFile(data)
	}
}

func (l *Logger) writeToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	// Check size before writing
	info, err := os.Stat(l.llmLogPath)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.llmLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.llmLogPath, oldPath)
}

// Helper methods for common events

func (l *Logger) LogStage(topic, stage, status string) {
	l.Log(Event{
		Type:  EventTypeStage,
		Topic: topic,
		Stage: stage,
		Data:  map[string]string{"status": status},
	})
}

func (l *Logger) LogLLM(topic, stage, systemPrompt, userPrompt, response string) {
	l.Log(Event{
		Type:  EventTypeLLM,
		Topic: topic,
		Stage: stage,
		Data: map[string]string{
			"system_prompt": systemPrompt,
			"user_prompt":   userPrompt,
			"response":      response,
		},
	})
}

func (l *Logger) LogParse(topic, parser string, records int, skipped []string) {
	l.Log(Event{
		Type:  EventTypeParse,
		Topic: topic,
		Data: map[string]any{
			"parser":        parser,
			"records":       records,
			"skipped_lines": len(skipped),
		},
	})
}

func (l *Logger) LogValidation(topic string, ok bool, reason string) {
	l.Log(Event{
		Type:  EventTypeValidation,
		Topic: topic,
		Data: map[string]any{
			"ok":     ok,
			"reason": reason,
		},
	})
}

func (l *Logger) LogProgress(topic, status string, percent int) {
	l.Log(Event{
		Type:  EventTypeProgress,
		Topic: topic,
		Data: map[string]any{
			"status":  status,
			"percent": percent,
		},
	})
}
