package http

import (
	"github.com/gin-gonic/gin"

	"collapsi/internal/api/ws"
	"collapsi/internal/room"
)

func NewRouter(rm *room.Manager, hub *ws.Hub) *gin.Engine {
	r := gin.Default()

	// WebSocket for FE live updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/create-room", CreateRoomHandler(rm))
	r.POST("/join-room", JoinRoomHandler(rm))
	r.GET("/state", StateHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/move", MoveHandler(rm))
	r.GET("/legal-moves", LegalMovesHandler(rm))

	// --- WILD MOVEMENT ENDPOINTS ---
	r.POST("/wild/start", WildStartHandler(rm))
	r.POST("/wild/step", WildStepHandler(rm))
	r.POST("/wild/complete", WildCompleteHandler(rm))
	r.POST("/wild/cancel", WildCancelHandler(rm))

	// --- SNAPSHOT ENDPOINTS ---
	r.GET("/snapshot", SnapshotHandler(rm))
	r.POST("/restore", RestoreHandler(rm))

	return r
}
