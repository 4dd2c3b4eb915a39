package game

import "log"

// Engine owns the one authoritative GameState. Every mutation funnels
// through it; everything outside this package sees only snapshots and
// structured results.
type Engine struct {
	state GameState
	wild  *WildMovement
}

// New installs a pre-built, already-dealt state as authoritative. The
// engine does not shuffle or place pawns itself; it only refuses states
// that violate the structural invariants. A setup state with both pawns
// placed transitions straight to playing.
func New(st GameState) (*Engine, error) {
	if err := validateState(&st); err != nil {
		return nil, err
	}
	e := &Engine{state: cloneState(&st)}
	if e.state.Status == StatusSetup && e.state.Players[0].Position != nil && e.state.Players[1].Position != nil {
		e.state.Status = StatusPlaying
	}
	return e, nil
}

// ProposeMove validates and, if legal, commits a fully specified move.
// The returned error is reserved for defects inside the atomic executor;
// every gameplay outcome, good or bad, lands in the MoveResult.
func (e *Engine) ProposeMove(start Position, path []Position, card CardType, playerID string) (MoveResult, error) {
	if rej := e.turnGuard(playerID); rej != nil {
		return rejected(rej), nil
	}
	mv := Move{
		Start:    start,
		Path:     path,
		Distance: len(path) - 1,
		Card:     card,
		PlayerID: playerID,
	}
	if rej := CheckMove(&e.state, mv); rej != nil {
		return rejected(rej), nil
	}
	return e.commit(mv)
}

// commit runs the executor and then the turn switch. Shared by ProposeMove
// and wild-move completion.
func (e *Engine) commit(mv Move) (MoveResult, error) {
	done, rej, err := applyMove(&e.state, mv)
	if err != nil {
		return MoveResult{}, err
	}
	if rej != nil {
		return rejected(rej), nil
	}

	// Turn switch: the other player is up, any wild move in flight dies with
	// the turn, and an empty legal-move set ends the game in the mover's
	// favor. This liveness check is the sole termination rule.
	e.wild = nil
	next := 1 - e.state.playerIndex(mv.PlayerID)
	e.state.Turn = next
	if !hasAnyLegalMove(&e.state, next) {
		winner := mv.PlayerID
		e.state.Status = StatusEnded
		e.state.Winner = &winner
	}

	if warn := Audit(&e.state); warn != nil {
		log.Printf("consistency audit after move by %s: %v", mv.PlayerID, warn)
	}

	snap := cloneState(&e.state)
	return MoveResult{OK: true, Move: done, Snapshot: &snap}, nil
}

// LegalMoves enumerates every legal destination for a player, one
// witnessing path per destination. The turn manager runs the same search.
func (e *Engine) LegalMoves(playerID string) ([]LegalMove, *Rejection) {
	idx := e.state.playerIndex(playerID)
	if idx < 0 {
		return nil, rejectState(ReasonPlayerNotFound, "player %s is not in this game", playerID)
	}
	return enumerateMoves(&e.state, idx, false), nil
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() GameState {
	return cloneState(&e.state)
}

// Restore replaces the authoritative state with a snapshot, for rollback
// and replay tooling. The snapshot is re-validated before it is installed;
// any wild move in flight is discarded.
func (e *Engine) Restore(st GameState) error {
	if err := validateState(&st); err != nil {
		return err
	}
	e.state = cloneState(&st)
	e.wild = nil
	return nil
}

func (e *Engine) turnGuard(playerID string) *Rejection {
	if e.state.Status != StatusPlaying {
		return rejectRule(ReasonGameNotRunning, "game status is %s", e.state.Status)
	}
	idx := e.state.playerIndex(playerID)
	if idx < 0 {
		return rejectState(ReasonPlayerNotFound, "player %s is not in this game", playerID)
	}
	if idx != e.state.Turn {
		return rejectRule(ReasonNotYourTurn, "it is not %s's turn", playerID)
	}
	return nil
}
