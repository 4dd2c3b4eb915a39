package game

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Audit scans a state for contradictions and returns every finding at once,
// or nil when the state is coherent. It is a diagnostic, not a gate: after
// a mutation the engine logs its findings and play continues. The same scan
// does gate RestoreSnapshot, where installing a contradictory state would
// poison everything downstream.
func Audit(st *GameState) error {
	var errs *multierror.Error

	switch st.Status {
	case StatusSetup, StatusPlaying, StatusEnded:
	default:
		errs = multierror.Append(errs, fmt.Errorf("unknown status %q", st.Status))
	}
	if st.Turn < 0 || st.Turn >= len(st.Players) {
		errs = multierror.Append(errs, fmt.Errorf("turn index %d out of range", st.Turn))
	}

	// Deck composition survives collapses: collapsing flips a card face
	// down but never removes its type from the board.
	counts := map[CardType]int{}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			counts[st.Board.Cells[r][c].Type]++
		}
	}
	for t, want := range deckCounts {
		if counts[t] != want {
			errs = multierror.Append(errs, fmt.Errorf("board holds %d %s cards, deck has %d", counts[t], t, want))
		}
	}
	for t := range counts {
		if _, known := deckCounts[t]; !known {
			errs = multierror.Append(errs, fmt.Errorf("board holds unknown card type %d", int(t)))
		}
	}

	if st.Players[0].ID == "" || st.Players[1].ID == "" {
		errs = multierror.Append(errs, fmt.Errorf("both players need non-empty IDs"))
	}
	if st.Players[0].ID == st.Players[1].ID {
		errs = multierror.Append(errs, fmt.Errorf("players share the ID %q", st.Players[0].ID))
	}

	// Player positions against the board's occupant flags, both directions.
	placed := map[Position]string{}
	for i := range st.Players {
		p := st.Players[i]
		if p.Position == nil {
			if st.Status != StatusSetup {
				errs = multierror.Append(errs, fmt.Errorf("player %s has no position in status %s", p.ID, st.Status))
			}
			continue
		}
		pos := *p.Position
		if !pos.inBounds() {
			errs = multierror.Append(errs, fmt.Errorf("player %s position (%d,%d) is off the board", p.ID, pos.Row, pos.Col))
			continue
		}
		if prev, dup := placed[pos]; dup {
			errs = multierror.Append(errs, fmt.Errorf("players %s and %s share cell (%d,%d)", prev, p.ID, pos.Row, pos.Col))
		}
		placed[pos] = p.ID
		cell := st.Board.At(pos)
		if cell.Collapsed {
			errs = multierror.Append(errs, fmt.Errorf("player %s stands on collapsed cell (%d,%d)", p.ID, pos.Row, pos.Col))
		}
		if cell.Occupant != p.ID {
			errs = multierror.Append(errs, fmt.Errorf("cell (%d,%d) records occupant %q, player list says %s", pos.Row, pos.Col, cell.Occupant, p.ID))
		}
	}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			cell := st.Board.Cells[r][c]
			if cell.Occupant == "" {
				continue
			}
			pos := Position{Row: r, Col: c}
			if cell.Collapsed {
				errs = multierror.Append(errs, fmt.Errorf("collapsed cell (%d,%d) has occupant %s", r, c, cell.Occupant))
			}
			if placed[pos] != cell.Occupant {
				errs = multierror.Append(errs, fmt.Errorf("cell (%d,%d) claims occupant %s but no player stands there", r, c, cell.Occupant))
			}
		}
	}

	// Winner bookkeeping.
	if st.Status == StatusEnded {
		if st.Winner == nil {
			errs = multierror.Append(errs, fmt.Errorf("ended game has no winner"))
		} else {
			if st.playerIndex(*st.Winner) < 0 {
				errs = multierror.Append(errs, fmt.Errorf("winner %s is not a player", *st.Winner))
			}
			if n := len(st.History); n > 0 && st.History[n-1].PlayerID != *st.Winner {
				errs = multierror.Append(errs, fmt.Errorf("winner %s did not make the last move", *st.Winner))
			}
		}
	} else if st.Winner != nil {
		errs = multierror.Append(errs, fmt.Errorf("winner %s set while status is %s", *st.Winner, st.Status))
	}

	return errs.ErrorOrNil()
}
