package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/df07/weekend-raytracer/pkg/core"
)

// consoleHistory is how many messages the server keeps for /api/console
const consoleHistory = 200

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "debug", "info", "warning"
}

// Console keeps the most recent messages from every render
type Console struct {
	mu       sync.Mutex
	messages []ConsoleMessage
	limit    int
}

// NewConsole creates a console that remembers up to limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: limit}
}

// Add records a message, dropping the oldest when full
func (c *Console) Add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}
}

// Messages returns a copy of the recorded messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]ConsoleMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// WebLogger implements core.Logger by writing to the server log and the console
type WebLogger struct {
	renderID string
	console  *Console
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, console *Console) core.Logger {
	return &WebLogger{renderID: renderID, console: console}
}

func (wl *WebLogger) Debugf(format string, args ...interface{}) {
	logger.Debugf("[%s] "+format, append([]interface{}{wl.renderID}, args...)...)
	wl.record("debug", format, args)
}

func (wl *WebLogger) Infof(format string, args ...interface{}) {
	logger.Infof("[%s] "+format, append([]interface{}{wl.renderID}, args...)...)
	wl.record("info", format, args)
}

func (wl *WebLogger) Warningf(format string, args ...interface{}) {
	logger.Warningf("[%s] "+format, append([]interface{}{wl.renderID}, args...)...)
	wl.record("warning", format, args)
}

func (wl *WebLogger) record(level, format string, args []interface{}) {
	if wl.console == nil {
		return
	}
	wl.console.Add(ConsoleMessage{
		RenderID:  wl.renderID,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
		Level:     level,
	})
}
