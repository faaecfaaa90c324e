package ws

import (
	"log"

	"github.com/gorilla/websocket"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
)

// SendMatchFoundToPlayers pushes the paired match to both sides, sparing
// connected clients a poll cycle. Players without a live connection learn
// about the match from the status endpoint instead. The queue session ends
// with the pairing, so both connections are closed after the push.
func SendMatchFoundToPlayers(match *model.MatchRecord) {
	mess := MatchFoundResponse{MatchId: match.ID, Game: match}

	SendJSONToUser(match.WhiteID, MatchFound, mess)
	SendJSONToUser(match.BlackID, MatchFound, mess)

	DisconnectUser(match.WhiteID)
	DisconnectUser(match.BlackID)
}

func SendMessageToUser(id string, event EventType, message string) {
	userConnectionsMutex.Lock()
	defer userConnectionsMutex.Unlock()

	conn, ok := userConnections[id]
	if !ok {
		return
	}

	if err := conn.WriteJSON(GetMessage(event, message)); err != nil {
		log.Println(err)
	}
}

func SendJSONToUser(id string, event EventType, message interface{}) {
	userConnectionsMutex.Lock()
	defer userConnectionsMutex.Unlock()

	conn, ok := userConnections[id]
	if !ok {
		return
	}

	SendJSON(conn, event, message)
}

func DisconnectUser(id string) {
	userConnectionsMutex.Lock()
	defer userConnectionsMutex.Unlock()

	conn, ok := userConnections[id]
	if !ok {
		return
	}

	if err := conn.Close(); err != nil {
		log.Println("Error closing connection:", err)
	}

	delete(userConnections, id)
}

func SendJSON(conn *websocket.Conn, eventType EventType, message interface{}) {
	if err := conn.WriteJSON(map[string]interface{}{
		"eventType": eventType,
		"message":   message,
	}); err != nil {
		log.Println(err)
	}
}
