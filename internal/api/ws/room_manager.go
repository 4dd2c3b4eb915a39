package ws

import (
	"collapsi/internal/game"
	"collapsi/internal/room"
)

type RoomManager interface {
	Get(roomCode string) (*room.Room, bool)
	ProposeMove(r *room.Room, playerID string, start game.Position, path []game.Position, card game.CardType) (game.MoveResult, error)
}
