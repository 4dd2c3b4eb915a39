package room

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"collapsi/internal/config"
	"collapsi/internal/game"
)

// Manager owns room lifecycle and is the single doorway to each room's
// engine. Handlers and the websocket hub never touch an Engine directly.
type Manager struct {
	store Store
	cfg   config.Config
	bc    Broadcaster
}

func NewManager(s Store, cfg config.Config) *Manager {
	return &Manager{store: s, cfg: cfg}
}

// SetBroadcaster wires the hub in after construction; the hub needs the
// manager first.
func (m *Manager) SetBroadcaster(b Broadcaster) {
	m.bc = b
}

func (m *Manager) CreateRoom(creatorName string) *Room {
	if creatorName == "" {
		creatorName = "Player"
	}
	r := &Room{
		ID:        uuid.NewString(),
		Code:      randCode(6),
		CreatedAt: time.Now(),
		Seats:     []Seat{{ID: uuid.NewString(), Name: creatorName}},
	}
	m.store.SaveRoom(r)
	return r
}

// JoinRoom fills the second seat and starts the game: deal the deck onto
// the board, stand each player on their joker, hand the finished state to
// the engine.
func (m *Manager) JoinRoom(code, name string) (*Room, Seat, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, Seat{}, errors.New("room not found")
	}
	if name == "" {
		name = "Player"
	}

	r.mu.Lock()
	if len(r.Seats) >= 2 {
		r.mu.Unlock()
		return nil, Seat{}, errors.New("room is full")
	}
	seat := Seat{ID: uuid.NewString(), Name: name}
	r.Seats = append(r.Seats, seat)

	seed := m.cfg.DealSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, jokers := Deal(seed)
	players := [2]game.Player{
		{ID: r.Seats[0].ID, Position: &jokers[0], StartingCard: game.CardRedJoker},
		{ID: r.Seats[1].ID, Position: &jokers[1], StartingCard: game.CardBlackJoker},
	}
	board.At(jokers[0]).Occupant = players[0].ID
	board.At(jokers[1]).Occupant = players[1].ID

	eng, err := game.New(game.GameState{
		Board:   board,
		Players: players,
		Turn:    0,
		Status:  game.StatusSetup,
	})
	if err != nil {
		r.Seats = r.Seats[:1]
		r.mu.Unlock()
		return nil, Seat{}, err
	}
	r.engine = eng
	r.mu.Unlock()

	m.store.SaveRoom(r)
	m.broadcast(r.Code, "game-started", map[string]interface{}{"room": r.View()})
	return r, seat, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

// ProposeMove runs a declared move through the room's engine and fans the
// outcome out to watchers. The error return is the executor's fatal path.
func (m *Manager) ProposeMove(r *Room, playerID string, start game.Position, path []game.Position, card game.CardType) (game.MoveResult, error) {
	res, err := m.withEngine(r, func(e *game.Engine) (game.MoveResult, error) {
		return e.ProposeMove(start, path, card, playerID)
	})
	if err != nil {
		return res, err
	}
	m.afterMove(r, res)
	return res, nil
}

func (m *Manager) StartWildMove(r *Room, playerID string) (*game.WildMovement, *game.Rejection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.engine == nil {
		return nil, nil, errors.New("game has not started")
	}
	w, rej := r.engine.StartWildMove(playerID)
	return w, rej, nil
}

func (m *Manager) StepWildMove(r *Room, target game.Position) (game.WildStepResult, error) {
	r.mu.Lock()
	var res game.WildStepResult
	var err error
	if r.engine == nil {
		err = errors.New("game has not started")
	} else {
		res, err = r.engine.StepWildMove(target)
	}
	r.mu.Unlock()
	if err != nil {
		return res, err
	}
	if res.Forced && res.Move != nil {
		m.afterMove(r, *res.Move)
	}
	return res, nil
}

func (m *Manager) CompleteWildMove(r *Room) (game.MoveResult, error) {
	res, err := m.withEngine(r, func(e *game.Engine) (game.MoveResult, error) {
		return e.CompleteWildMove()
	})
	if err != nil {
		return res, err
	}
	m.afterMove(r, res)
	return res, nil
}

func (m *Manager) CancelWildMove(r *Room) (*game.Rejection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.engine == nil {
		return nil, errors.New("game has not started")
	}
	return r.engine.CancelWildMove(), nil
}

func (m *Manager) LegalMoves(r *Room, playerID string) ([]game.LegalMove, *game.Rejection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.engine == nil {
		return nil, nil, errors.New("game has not started")
	}
	moves, rej := r.engine.LegalMoves(playerID)
	return moves, rej, nil
}

func (m *Manager) Snapshot(r *Room) (game.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.engine == nil {
		return game.GameState{}, errors.New("game has not started")
	}
	return r.engine.Snapshot(), nil
}

// Restore installs a snapshot as the room's authoritative state, for
// rollback and replay tooling. The engine re-validates before accepting.
func (m *Manager) Restore(r *Room, st game.GameState) error {
	r.mu.Lock()
	if r.engine == nil {
		r.mu.Unlock()
		return errors.New("game has not started")
	}
	err := r.engine.Restore(st)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	m.store.SaveRoom(r)
	m.broadcast(r.Code, "state-updated", map[string]interface{}{"room": r.View()})
	return nil
}

func (m *Manager) withEngine(r *Room, fn func(*game.Engine) (game.MoveResult, error)) (game.MoveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.engine == nil {
		return game.MoveResult{}, errors.New("game has not started")
	}
	return fn(r.engine)
}

// afterMove persists and broadcasts a committed move; rejections are the
// caller's problem to relay and change nothing worth announcing.
func (m *Manager) afterMove(r *Room, res game.MoveResult) {
	if !res.OK {
		return
	}
	m.store.SaveRoom(r)
	m.broadcast(r.Code, "move-applied", map[string]interface{}{
		"move": res.Move,
		"room": r.View(),
	})
	if res.Snapshot != nil && res.Snapshot.Status == game.StatusEnded {
		m.broadcast(r.Code, "game-over", map[string]interface{}{
			"winner": res.Snapshot.Winner,
			"room":   r.View(),
		})
	}
}

func (m *Manager) broadcast(code, action string, data interface{}) {
	if m.bc == nil {
		return
	}
	m.bc.Broadcast(code, action, data)
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}
