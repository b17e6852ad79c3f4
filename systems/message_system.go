package systems

import (
	"log"
)

// MessageLog stores game messages
type MessageLog struct {
	Messages    []ColoredMessage
	MaxMessages int
	prefix      string
	mirror      bool
}

// Global log instances (singletons)
var (
	globalMessageLog *MessageLog
	globalDebugLog   *MessageLog
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog("game")
	}
	return globalMessageLog
}

// GetDebugLog returns the global debug log shown by the F1 overlay
func GetDebugLog() *MessageLog {
	if globalDebugLog == nil {
		globalDebugLog = NewMessageLog("debug")
	}
	return globalDebugLog
}

// NewMessageLog creates a new message log. Every message is also written to
// the standard logger under the given prefix.
func NewMessageLog(prefix string) *MessageLog {
	return &MessageLog{
		Messages:    []ColoredMessage{},
		MaxMessages: 100, // Store the last 100 messages
		prefix:      prefix,
		mirror:      true,
	}
}

// SetMirror enables or disables writing to the standard logger
func (ml *MessageLog) SetMirror(enabled bool) {
	ml.mirror = enabled
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddColored(message, MessageTypeNormal)
}

// AddColored adds a message of the given type to the log
func (ml *MessageLog) AddColored(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, ColoredMessage{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}

	if ml.mirror {
		log.Printf("[%s/%s] %s", ml.prefix, msgType, message)
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []ColoredMessage {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]ColoredMessage, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []ColoredMessage{}
}
