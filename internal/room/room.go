package room

import (
	"sync"
	"time"

	"collapsi/internal/game"
)

// Seat is one of the two chairs at a table. Seat 0 belongs to the room
// creator and starts on the red joker.
type Seat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room is a two-player table. Engine is nil until the second seat fills;
// the mutex serializes all engine access, one caller at a time.
type Room struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Seats     []Seat    `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`

	mu     sync.Mutex
	engine *game.Engine
}

// View is the JSON shape handlers and the hub send to clients.
type View struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Seats     []Seat             `json:"seats"`
	CreatedAt time.Time          `json:"createdAt"`
	Game      *game.GameState    `json:"game,omitempty"`
	Wild      *game.WildMovement `json:"wild,omitempty"`
}

func (r *Room) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := View{
		ID:        r.ID,
		Code:      r.Code,
		Seats:     append([]Seat(nil), r.Seats...),
		CreatedAt: r.CreatedAt,
	}
	if r.engine != nil {
		snap := r.engine.Snapshot()
		v.Game = &snap
		v.Wild = r.engine.WildState()
	}
	return v
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}
