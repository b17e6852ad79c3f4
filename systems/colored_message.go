package systems

import (
	"image/color"
)

// MessageType defines different types of messages that can appear in the log
type MessageType int

const (
	MessageTypeNormal MessageType = iota
	MessageTypeScore   // food eaten, scores recorded
	MessageTypeDanger  // collisions and failed writes
	MessageTypeStorage // score file and database activity
	MessageTypeAlert   // degraded features, e.g. missing sounds
	MessageTypeSystem  // phase transitions and startup
)

// String returns the tag used when the message is mirrored to the process log
func (t MessageType) String() string {
	switch t {
	case MessageTypeScore:
		return "score"
	case MessageTypeDanger:
		return "danger"
	case MessageTypeStorage:
		return "storage"
	case MessageTypeAlert:
		return "alert"
	case MessageTypeSystem:
		return "system"
	default:
		return "info"
	}
}

// systemColor is the board's grid tone, brightened to stay readable
var systemColor = color.RGBA{GridColor.R * 3, GridColor.G * 3, GridColor.B * 3, 255}

// ColoredMessage is one log line tagged with its type
type ColoredMessage struct {
	Text string
	Type MessageType
}

// GetColor picks the line colour from the board palette so log lines match
// what they describe: food in the snake's green, collisions in the food red
func (cm ColoredMessage) GetColor() color.RGBA {
	switch cm.Type {
	case MessageTypeScore:
		return HighlightColor
	case MessageTypeDanger:
		return foodColors[1]
	case MessageTypeStorage:
		return foodColors[4]
	case MessageTypeAlert:
		return HintColor
	case MessageTypeSystem:
		return systemColor
	default:
		return TextColor
	}
}
