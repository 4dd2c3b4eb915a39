package game

import "github.com/pkg/errors"

// cloneState deep-copies a GameState so snapshots can leave the engine
// without aliasing the authoritative value. The board is an array and
// copies by value; only positions and the history need fresh backing.
func cloneState(st *GameState) GameState {
	cp := *st
	for i := range cp.Players {
		if st.Players[i].Position != nil {
			pos := *st.Players[i].Position
			cp.Players[i].Position = &pos
		}
	}
	if st.Winner != nil {
		w := *st.Winner
		cp.Winner = &w
	}
	cp.History = make([]CompletedMove, len(st.History))
	for i, h := range st.History {
		h.Path = append([]Position(nil), h.Path...)
		cp.History[i] = h
	}
	return cp
}

// validateState gates installing a snapshot as authoritative: the same
// structural scan the auditor runs, but here a finding is a refusal.
func validateState(st *GameState) error {
	if err := Audit(st); err != nil {
		return errors.Wrap(err, "snapshot failed structural validation")
	}
	return nil
}
