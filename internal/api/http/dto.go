package http

import "collapsi/internal/game"

// CreateRoomRequest represents the payload for /create-room.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

// JoinRoomRequest represents the payload for /join-room.
type JoinRoomRequest struct {
	RoomCode   string `json:"roomCode"`
	PlayerName string `json:"playerName"`
}

// MoveRequest represents a fully declared move.
type MoveRequest struct {
	RoomCode string          `json:"roomCode"`
	PlayerID string          `json:"playerId"`
	Start    game.Position   `json:"start"`
	Path     []game.Position `json:"path"`
	Card     game.CardType   `json:"card"`
}

// WildStartRequest activates interactive joker movement.
type WildStartRequest struct {
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

// WildStepRequest proposes the next cell of an active joker move.
type WildStepRequest struct {
	RoomCode string        `json:"roomCode"`
	Target   game.Position `json:"target"`
}

// RoomRequest addresses a room with no further arguments.
type RoomRequest struct {
	RoomCode string `json:"roomCode"`
}

// RestoreRequest installs a snapshot as the room's authoritative state.
type RestoreRequest struct {
	RoomCode string         `json:"roomCode"`
	Snapshot game.GameState `json:"snapshot"`
}
