package game

import "time"

// BoardSize is fixed: collapsi is played on a 4x4 wrapping grid.
const BoardSize = 4

type CardType int

const (
	CardRedJoker CardType = iota
	CardBlackJoker
	CardAce
	CardTwo
	CardThree
	CardFour
)

func (t CardType) String() string {
	switch t {
	case CardRedJoker:
		return "red-joker"
	case CardBlackJoker:
		return "black-joker"
	case CardAce:
		return "ace"
	case CardTwo:
		return "two"
	case CardThree:
		return "three"
	case CardFour:
		return "four"
	}
	return "unknown"
}

// IsJoker reports whether the card's travel distance is chosen by the mover.
func (t CardType) IsJoker() bool {
	return t == CardRedJoker || t == CardBlackJoker
}

// deckCounts is the fixed deck composition: one of each joker, four aces,
// four twos, four threes, two fours. 16 cards, one per cell.
var deckCounts = map[CardType]int{
	CardRedJoker:   1,
	CardBlackJoker: 1,
	CardAce:        4,
	CardTwo:        4,
	CardThree:      4,
	CardFour:       2,
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) inBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

type Card struct {
	Type      CardType `json:"type"`
	Collapsed bool     `json:"collapsed"`
	Occupant  string   `json:"occupant,omitempty"` // player ID, "" if empty
}

type Board struct {
	Cells [BoardSize][BoardSize]Card `json:"cells"`
}

// At returns the card at p, or nil if p is out of range.
func (b *Board) At(p Position) *Card {
	if !p.inBounds() {
		return nil
	}
	return &b.Cells[p.Row][p.Col]
}

type Player struct {
	ID           string    `json:"id"`
	Position     *Position `json:"position,omitempty"` // nil until placed
	StartingCard CardType  `json:"startingCard"`
}

// Move is a fully specified move proposal. Path includes the starting
// position as its first element, so len(Path) == Distance+1.
type Move struct {
	Start    Position   `json:"start"`
	Path     []Position `json:"path"`
	Distance int        `json:"distance"`
	Card     CardType   `json:"card"`
	PlayerID string     `json:"playerId"`
}

// CompletedMove is a Move that was executed, with its landing cell and
// commit time recorded for the history log.
type CompletedMove struct {
	Move
	Destination Position  `json:"destination"`
	PlayedAt    time.Time `json:"playedAt"`
}

type Status string

const (
	StatusSetup   Status = "setup"
	StatusPlaying Status = "playing"
	StatusEnded   Status = "ended"
)

// GameState is the single authoritative aggregate. All mutation goes
// through the Engine; everything else reads snapshots.
type GameState struct {
	Board   Board           `json:"board"`
	Players [2]Player       `json:"players"`
	Turn    int             `json:"turn"` // index of the player to act
	Status  Status          `json:"status"`
	Winner  *string         `json:"winner,omitempty"` // player ID
	History []CompletedMove `json:"history"`
}

func (st *GameState) playerIndex(playerID string) int {
	for i := range st.Players {
		if st.Players[i].ID == playerID {
			return i
		}
	}
	return -1
}
