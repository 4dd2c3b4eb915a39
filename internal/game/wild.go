package game

// wildBudget is how many steps a joker grants before completion is forced.
const wildBudget = 4

// WildMovement tracks a joker move being chosen step by step. It exists
// only between activation and commit/cancel/turn switch, and it never
// touches the board: all mutation waits for the commit.
type WildMovement struct {
	PlayerID string     `json:"playerId"`
	Path     []Position `json:"path"`
	Budget   int        `json:"budget"`
	Active   bool       `json:"active"`
}

// WildStepResult reports one accepted or refused step. When the step
// exhausts the budget or leaves no further legal step, the engine forces
// completion and the committed move rides along.
type WildStepResult struct {
	OK     bool          `json:"ok"`
	Reason *Rejection    `json:"reason,omitempty"`
	State  *WildMovement `json:"state,omitempty"`
	Forced bool          `json:"forced,omitempty"`
	Move   *MoveResult   `json:"move,omitempty"`
}

// StartWildMove activates interactive movement for a player standing on a
// joker. Activation fails outright if not even one step is legal; the turn
// manager will already have ended the game in that situation, so a caller
// seeing NoLegalWildStep on a live game has found a defect worth logging.
func (e *Engine) StartWildMove(playerID string) (*WildMovement, *Rejection) {
	if rej := e.turnGuard(playerID); rej != nil {
		return nil, rej
	}
	if e.wild != nil && e.wild.Active {
		return nil, rejectRule(ReasonWildAlreadyActive, "a wild move is already underway for %s", e.wild.PlayerID)
	}
	idx := e.state.playerIndex(playerID)
	mover := e.state.Players[idx]
	card := e.state.Board.At(*mover.Position)
	if !card.Type.IsJoker() {
		return nil, rejectRule(ReasonCardNotWild, "player %s stands on %s, not a joker", playerID, card.Type)
	}

	w := &WildMovement{
		PlayerID: playerID,
		Path:     []Position{*mover.Position},
		Budget:   wildBudget,
		Active:   true,
	}
	if len(e.wildStepOptions(w)) == 0 {
		return nil, rejectRule(ReasonNoLegalWildStep, "no legal first step from (%d,%d)", mover.Position.Row, mover.Position.Col)
	}
	e.wild = w
	cp := w.copyState()
	return &cp, nil
}

// StepWildMove accepts one candidate cell. The cell must be an orthogonal
// wraparound neighbor of the path's last element, unvisited, face up, and
// unoccupied, the same cell checks a declared path faces. Acceptance
// appends and decrements; hitting budget zero or a dead end forces the
// commit.
func (e *Engine) StepWildMove(target Position) (WildStepResult, error) {
	w := e.wild
	if w == nil || !w.Active {
		return WildStepResult{Reason: rejectRule(ReasonWildNotActive, "no wild move is underway")}, nil
	}
	if !target.inBounds() {
		return WildStepResult{Reason: rejectInput(ReasonMalformedPosition, "position (%d,%d) is off the board", target.Row, target.Col)}, nil
	}
	last := w.Path[len(w.Path)-1]
	if !Adjacent(last, target) {
		return WildStepResult{Reason: rejectRule(ReasonStepNotOrthogonal, "(%d,%d) is not adjacent to (%d,%d)", target.Row, target.Col, last.Row, last.Col)}, nil
	}
	if onPath(w.Path, target) {
		return WildStepResult{Reason: rejectRule(ReasonCellRevisited, "(%d,%d) is already on the path", target.Row, target.Col)}, nil
	}
	cell := e.state.Board.At(target)
	if cell.Collapsed {
		return WildStepResult{Reason: rejectRule(ReasonCellCollapsed, "cell (%d,%d) has collapsed", target.Row, target.Col)}, nil
	}
	if occupiedBy(e.state.Players[:], target) != "" {
		return WildStepResult{Reason: rejectRule(ReasonEndsOnOccupied, "cell (%d,%d) is occupied", target.Row, target.Col)}, nil
	}

	w.Path = append(w.Path, target)
	w.Budget--

	if w.Budget == 0 || len(e.wildStepOptions(w)) == 0 {
		res, err := e.CompleteWildMove()
		if err != nil {
			return WildStepResult{}, err
		}
		return WildStepResult{OK: true, Forced: true, Move: &res}, nil
	}
	cp := w.copyState()
	return WildStepResult{OK: true, State: &cp}, nil
}

// CompleteWildMove commits the accumulated path as a regular move. At
// least one step must have been taken; remaining budget is discarded.
func (e *Engine) CompleteWildMove() (MoveResult, error) {
	w := e.wild
	if w == nil || !w.Active {
		return rejected(rejectRule(ReasonWildNotActive, "no wild move is underway")), nil
	}
	if len(w.Path) < 2 {
		return rejected(rejectRule(ReasonWildNoProgress, "a wild move must advance at least one cell")), nil
	}
	mv := Move{
		Start:    w.Path[0],
		Path:     w.Path,
		Distance: len(w.Path) - 1,
		Card:     e.state.Board.At(w.Path[0]).Type,
		PlayerID: w.PlayerID,
	}
	if rej := CheckMove(&e.state, mv); rej != nil {
		return rejected(rej), nil
	}
	return e.commit(mv)
}

// CancelWildMove discards the accumulated path and budget. The board was
// never touched, so there is nothing to undo.
func (e *Engine) CancelWildMove() *Rejection {
	if e.wild == nil || !e.wild.Active {
		return rejectRule(ReasonWildNotActive, "no wild move is underway")
	}
	e.wild = nil
	return nil
}

// WildState returns a copy of the wild move in flight, or nil.
func (e *Engine) WildState() *WildMovement {
	if e.wild == nil {
		return nil
	}
	cp := e.wild.copyState()
	return &cp
}

// wildStepOptions lists the cells a wild move could step to next.
func (e *Engine) wildStepOptions(w *WildMovement) []Position {
	var out []Position
	last := w.Path[len(w.Path)-1]
	for _, n := range Neighbors(last) {
		if e.state.Board.At(n).Collapsed {
			continue
		}
		if onPath(w.Path, n) {
			continue
		}
		if occupiedBy(e.state.Players[:], n) != "" {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (w *WildMovement) copyState() WildMovement {
	cp := *w
	cp.Path = append([]Position(nil), w.Path...)
	return cp
}

// occupiedBy returns the ID of the player standing on p, or "".
func occupiedBy(players []Player, p Position) string {
	for i := range players {
		if players[i].Position != nil && *players[i].Position == p {
			return players[i].ID
		}
	}
	return ""
}
