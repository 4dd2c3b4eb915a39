package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collapsi/internal/room"
)

// @Summary Create new room
// @Description Create a new room with a single seated player
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /create-room [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx := rm.CreateRoom(req.PlayerName)
		c.JSON(http.StatusOK, gin.H{"roomCode": rx.Code, "seat": rx.Seats[0], "room": rx.View()})
	}
}

// @Summary Join a room
// @Description Take the second seat; the deck is dealt and the game starts
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.JoinRoomRequest true "Room and player info"
// @Success 200 {object} map[string]interface{}
// @Router /join-room [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.RoomCode == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomCode required"})
			return
		}
		rx, seat, err := rm.JoinRoom(req.RoomCode, req.PlayerName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seat": seat, "room": rx.View()})
	}
}

// @Summary Get room state
// @Description Current room view including the game snapshot
// @Tags Room
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /state [get]
func StateHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": rx.View()})
	}
}

// @Summary Propose a move
// @Description Submit a fully declared move (start, path, card) for legality check and execution
// @Tags Game
// @Accept json
// @Produce json
// @Param request body MoveRequest true "Move data"
// @Success 200 {object} map[string]interface{}
// @Router /move [post]
func MoveHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MoveRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		res, err := rm.ProposeMove(rx, req.PlayerID, req.Start, req.Path, req.Card)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": res})
	}
}

// @Summary Get legal moves for a player
// @Description Returns every legal destination with distance and one witnessing path, for highlighting
// @Tags Game
// @Produce json
// @Param roomCode query string true "Room Code"
// @Param playerId query string true "Player ID"
// @Success 200 {object} map[string]interface{}
// @Router /legal-moves [get]
func LegalMovesHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		moves, rej, err := rm.LegalMoves(rx, c.Query("playerId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if rej != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": rej.Message, "reason": rej})
			return
		}
		c.JSON(http.StatusOK, gin.H{"moves": moves})
	}
}

// @Summary Start a wild move
// @Description Activate step-by-step movement for a player standing on a joker
// @Tags Wild
// @Accept json
// @Produce json
// @Param request body WildStartRequest true "Room and player"
// @Success 200 {object} map[string]interface{}
// @Router /wild/start [post]
func WildStartHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WildStartRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		w, rej, err := rm.StartWildMove(rx, req.PlayerID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if rej != nil {
			c.JSON(http.StatusOK, gin.H{"ok": false, "reason": rej})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "wild": w})
	}
}

// @Summary Step a wild move
// @Description Propose the next cell; may force completion on budget exhaustion or dead end
// @Tags Wild
// @Accept json
// @Produce json
// @Param request body WildStepRequest true "Target cell"
// @Success 200 {object} map[string]interface{}
// @Router /wild/step [post]
func WildStepHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WildStepRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		res, err := rm.StepWildMove(rx, req.Target)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": res})
	}
}

// @Summary Complete a wild move
// @Description Commit the accumulated path as a move; remaining budget is discarded
// @Tags Wild
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /wild/complete [post]
func WildCompleteHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		res, err := rm.CompleteWildMove(rx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"result": res})
	}
}

// @Summary Cancel a wild move
// @Description Discard the accumulated path and budget with no board effect
// @Tags Wild
// @Accept json
// @Produce json
// @Param request body RoomRequest true "Room info"
// @Success 200 {object} map[string]interface{}
// @Router /wild/cancel [post]
func WildCancelHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RoomRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		rej, err := rm.CancelWildMove(rx)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if rej != nil {
			c.JSON(http.StatusOK, gin.H{"ok": false, "reason": rej})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}

// @Summary Get a game snapshot
// @Description Full GameState copy for persistence or replay collaborators
// @Tags Snapshot
// @Produce json
// @Param roomCode query string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /snapshot [get]
func SnapshotHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Query("roomCode"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		snap, err := rm.Snapshot(rx)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"snapshot": snap})
	}
}

// @Summary Restore a game snapshot
// @Description Re-validate and install a snapshot as the room's authoritative state
// @Tags Snapshot
// @Accept json
// @Produce json
// @Param request body RestoreRequest true "Snapshot data"
// @Success 200 {object} map[string]interface{}
// @Router /restore [post]
func RestoreHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RestoreRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		rx, ok := rm.Get(req.RoomCode)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		if err := rm.Restore(rx, req.Snapshot); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "room": rx.View()})
	}
}
