package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"collapsi/internal/game"
)

// Hub relays room events to connected clients. The engine never waits on
// it: broadcasts happen after a mutation has fully committed.
type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*websocket.Conn]struct{}
	roomManager RoomManager
}

func NewHub(roomManager RoomManager) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*websocket.Conn]struct{}),
		roomManager: roomManager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*websocket.Conn]struct{})
	}
	h.rooms[roomCode][conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.rooms[roomCode], conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	for {
		var msg struct {
			Action string          `json:"action"`
			Data   json.RawMessage `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("Error reading WebSocket message: %v", err)
			break
		}

		switch msg.Action {
		case "propose_move":
			h.handleProposeMove(conn, roomCode, msg.Data)
		default:
			log.Printf("Unknown action: %s", msg.Action)
		}
	}
}

func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.rooms[roomCode]
	if !ok {
		return
	}

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for conn := range clients {
		if err := conn.WriteJSON(message); err != nil {
			log.Printf("Failed to send message: %v", err)
			conn.Close()
			delete(clients, conn)
		}
	}
}

// handleProposeMove routes an inbound move to the room manager. The
// committed move is broadcast by the manager; a rejection goes back to the
// proposing connection only.
func (h *Hub) handleProposeMove(conn *websocket.Conn, roomCode string, data json.RawMessage) {
	var move struct {
		PlayerID string          `json:"player_id"`
		Start    game.Position   `json:"start"`
		Path     []game.Position `json:"path"`
		Card     game.CardType   `json:"card"`
	}
	if err := json.Unmarshal(data, &move); err != nil {
		log.Printf("Invalid move data: %v", err)
		return
	}

	rx, ok := h.roomManager.Get(roomCode)
	if !ok {
		log.Printf("Room not found: %s", roomCode)
		return
	}

	res, err := h.roomManager.ProposeMove(rx, move.PlayerID, move.Start, move.Path, move.Card)
	if err != nil {
		log.Printf("Move execution fault in room %s: %v", roomCode, err)
		return
	}
	if !res.OK {
		if werr := conn.WriteJSON(map[string]interface{}{
			"action": "move-rejected",
			"data":   gin.H{"reason": res.Reason},
		}); werr != nil {
			log.Printf("Failed to send rejection: %v", werr)
		}
	}
}
