package ws

import "github.com/Girishnag18/crownx-arena-sub000/internal/model"

type EventType string

const (
	Info       EventType = "info"
	Error      EventType = "error"
	MatchFound EventType = "matchFound"
	Removed    EventType = "removed"
)

type MessageType string

const (
	JoinQueue  MessageType = "joinQueue"
	LeaveQueue MessageType = "leaveQueue"
)

type UserMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

type JoinQueuePayload struct {
	Region string `json:"region,omitempty"`
}

type MatchFoundResponse struct {
	MatchId string             `json:"matchId"`
	Game    *model.MatchRecord `json:"game"`
}

func GetMessage(eventType EventType, message string) map[string]interface{} {
	return map[string]interface{}{
		"eventType": eventType,
		"message":   message,
	}
}
