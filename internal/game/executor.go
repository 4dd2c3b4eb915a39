package game

import (
	"time"

	"github.com/pkg/errors"
)

// applyMove executes an already-validated move as one transaction: either
// every step lands or the visible state is exactly what it was before the
// call.
//
// A stale starting position is detected before anything mutates and comes
// back as a clean rejection. Anything that fails after mutation has begun
// is a defect, not a gameplay outcome: the partial work is rolled back and
// the fault is returned as a wrapped error so the caller can scream about it.
func applyMove(st *GameState, mv Move) (*CompletedMove, *Rejection, error) {
	idx := st.playerIndex(mv.PlayerID)
	if idx < 0 {
		return nil, rejectState(ReasonPlayerNotFound, "player %s is not in this game", mv.PlayerID), nil
	}
	mover := &st.Players[idx]

	// (a) The move was validated against some position; make sure the world
	// has not shifted underneath it.
	if mover.Position == nil || *mover.Position != mv.Start {
		return nil, rejectState(ReasonStaleStart, "player %s is not standing on (%d,%d)", mv.PlayerID, mv.Start.Row, mv.Start.Col), nil
	}

	startCard := st.Board.At(mv.Start)
	if startCard == nil {
		return nil, rejectState(ReasonStaleStart, "starting cell (%d,%d) does not exist", mv.Start.Row, mv.Start.Col), nil
	}

	// (b) Vacate the starting cell.
	prevOccupant := startCard.Occupant
	startCard.Occupant = ""

	// (c) Occupy the destination. Unreachable given prior validation, but if
	// the destination card cannot be found, compensate (b) and fail loudly.
	dest := mv.Path[len(mv.Path)-1]
	destCard := st.Board.At(dest)
	if destCard == nil {
		startCard.Occupant = prevOccupant
		return nil, nil, errors.Errorf("%s: destination (%d,%d) has no card", ReasonDestinationMissing, dest.Row, dest.Col)
	}
	destCard.Occupant = mv.PlayerID

	// (d)-(f) cannot fail on an in-bounds board; any panic past this point
	// would be a programming error, not a recoverable condition.
	startCard.Collapsed = true
	mover.Position = &Position{Row: dest.Row, Col: dest.Col}

	done := CompletedMove{
		Move:        mv,
		Destination: dest,
		PlayedAt:    time.Now().UTC(),
	}
	st.History = append(st.History, done)
	return &done, nil, nil
}
