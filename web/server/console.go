package server

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/df07/go-spectral-raytracer/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Console keeps the most recent render log messages for /api/console
type Console struct {
	mu       sync.Mutex
	limit    int
	messages []ConsoleMessage
}

// NewConsole creates a console holding at most limit messages
func NewConsole(limit int) *Console {
	return &Console{limit: limit}
}

// Logger returns a core.Logger that tags messages with renderID
func (c *Console) Logger(renderID string) core.Logger {
	return &consoleLogger{console: c, renderID: renderID}
}

// Messages returns a copy of the stored messages, oldest first
func (c *Console) Messages() []ConsoleMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]ConsoleMessage(nil), c.messages...)
}

func (c *Console) add(msg ConsoleMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
	if over := len(c.messages) - c.limit; over > 0 {
		c.messages = append(c.messages[:0], c.messages[over:]...)
	}
}

type consoleLogger struct {
	console  *Console
	renderID string
}

// Printf records the message and echoes it to stdout for the server log
func (l *consoleLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Printf("[%s] %s", l.renderID, message)
	l.console.add(ConsoleMessage{
		RenderID:  l.renderID,
		Message:   strings.TrimRight(message, "\n"),
		Timestamp: time.Now(),
	})
}
