package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/mitchellh/mapstructure"

	"github.com/Girishnag18/crownx-arena-sub000/internal/model"
	"github.com/Girishnag18/crownx-arena-sub000/internal/wires"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Map for user connection
var userConnections = make(map[string]*websocket.Conn)
var userConnectionsMutex sync.Mutex

// StartQueueWebSocket runs one player's matchmaking session. The connection
// doubles as the queue lifetime: dropping it removes the player's entry.
func StartQueueWebSocket(queue string, id string, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	userConnectionsMutex.Lock()
	userConnections[id] = conn
	userConnectionsMutex.Unlock()

	queued := false
	defer func() {
		userConnectionsMutex.Lock()
		delete(userConnections, id)
		userConnectionsMutex.Unlock()

		if queued {
			if err := wires.Instance.MatchmakingService.CancelSearch(queue, id); err != nil {
				log.Println("Error removing queue entry on disconnect:", err)
			}
		}
	}()

	SendJSON(conn, Info, "Hello, "+id)

	for {
		_, mess, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var userMessage UserMessage
		if err = json.Unmarshal(mess, &userMessage); err != nil {
			conn.WriteJSON(GetMessage(Error, "Error parsing message"))
			continue
		}

		switch userMessage.Type {
		case JoinQueue:
			var payload JoinQueuePayload
			if userMessage.Payload != nil {
				if err := mapstructure.Decode(userMessage.Payload, &payload); err != nil {
					conn.WriteJSON(GetMessage(Error, "Error parsing payload"))
					continue
				}
			}

			result, err := wires.Instance.MatchmakingService.SubmitSearch(model.SearchRequest{
				PlayerID: id,
				GameMode: queue,
				Region:   payload.Region,
			})
			if err != nil {
				conn.WriteJSON(GetMessage(Error, "Error submitting search"))
				log.Println("Error submitting search:", err)
				continue
			}

			if result.Matched {
				queued = false
				SendMatchFoundToPlayers(result.Match)
				continue
			}

			queued = true
			conn.WriteJSON(GetMessage(Info, "Joined queue"))
		case LeaveQueue:
			if err := wires.Instance.MatchmakingService.CancelSearch(queue, id); err != nil {
				conn.WriteJSON(GetMessage(Error, "Error leaving queue"))
				log.Println("Error leaving queue:", err)
				continue
			}

			queued = false
			conn.WriteJSON(GetMessage(Info, "Left queue"))
		default:
			conn.WriteJSON(GetMessage(Error, "Invalid message type"))
		}
	}
}
