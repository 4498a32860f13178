package server

import (
	"fmt"
	"testing"
	"time"
)

func TestConsole_BasicLogging(t *testing.T) {
	console := NewConsole(10)
	logger := console.Logger("test-render-123")

	logger.Printf("Loading %s with %d wavelengths...\n", "tables", 401)

	messages := console.Messages()
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	msg := messages[0]
	if msg.Message != "Loading tables with 401 wavelengths..." {
		t.Errorf("Unexpected message %q", msg.Message)
	}
	if msg.RenderID != "test-render-123" {
		t.Errorf("Expected render ID 'test-render-123', got %q", msg.RenderID)
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
	}
}

func TestConsole_KeepsMostRecent(t *testing.T) {
	console := NewConsole(3)
	logger := console.Logger("render")
	for i := 1; i <= 5; i++ {
		logger.Printf("Message %d\n", i)
	}

	messages := console.Messages()
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	for i, msg := range messages {
		if want := fmt.Sprintf("Message %d", i+3); msg.Message != want {
			t.Errorf("Message %d: expected %q, got %q", i, want, msg.Message)
		}
	}
}

func TestConsole_MessagesIsACopy(t *testing.T) {
	console := NewConsole(10)
	console.Logger("render").Printf("original\n")

	messages := console.Messages()
	messages[0].Message = "changed"
	if got := console.Messages()[0].Message; got != "original" {
		t.Errorf("Console was modified through Messages(): %q", got)
	}
}
