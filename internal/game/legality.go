package game

// CheckMove runs the full legality pipeline for a proposed move, cheapest
// checks first, stopping at the first failure. It never mutates state.
//
// Order: input shape, distance vs card, distance vs path length, declared
// card vs the board, ending constraints, path geometry, and finally the
// collapse scan over every cell the pawn passes through or lands on.
func CheckMove(st *GameState, mv Move) *Rejection {
	if len(mv.Path) == 0 {
		return rejectInput(ReasonEmptyPath, "move path is empty")
	}
	if !mv.Start.inBounds() {
		return rejectInput(ReasonMalformedPosition, "starting position (%d,%d) is off the board", mv.Start.Row, mv.Start.Col)
	}
	if mv.Path[0] != mv.Start {
		return rejectInput(ReasonPathStartMismatch, "path must begin at the starting position")
	}

	ok, rej := distanceAllowed(mv.Card, mv.Distance)
	if rej != nil {
		return rej
	}
	if !ok {
		return rejectRule(ReasonDistanceNotAllowed, "card %s does not allow distance %d", mv.Card, mv.Distance)
	}
	if mv.Distance != len(mv.Path)-1 {
		return rejectRule(ReasonPathLengthMismatch, "declared distance %d but path has %d steps", mv.Distance, len(mv.Path)-1)
	}

	startCard := st.Board.At(mv.Start)
	if startCard == nil {
		return rejectInput(ReasonMalformedPosition, "starting position (%d,%d) is off the board", mv.Start.Row, mv.Start.Col)
	}
	if startCard.Type != mv.Card {
		return rejectRule(ReasonCardMismatch, "cell (%d,%d) holds %s, not %s", mv.Start.Row, mv.Start.Col, startCard.Type, mv.Card)
	}

	end := mv.Path[len(mv.Path)-1]
	if rej := ValidateEnding(mv.Start, end, st.Players[:]); rej != nil {
		return rej
	}

	if rep := ValidatePath(mv.Path); !rep.OK {
		switch rep.Code {
		case ReasonMalformedPosition:
			return rejectInput(ReasonMalformedPosition, "path position %d is off the board", rep.Step)
		case ReasonStepNotOrthogonal:
			return rejectRuleAt(rep.Step, ReasonStepNotOrthogonal, "step %d is not an orthogonal wraparound step", rep.Step)
		default:
			return rejectRuleAt(rep.Step, ReasonCellRevisited, "step %d revisits a cell already on the path", rep.Step)
		}
	}

	// Every cell after the start, landing cell included, must still be face up.
	for i := 1; i < len(mv.Path); i++ {
		if st.Board.At(mv.Path[i]).Collapsed {
			return rejectRuleAt(i, ReasonCellCollapsed, "cell (%d,%d) has collapsed", mv.Path[i].Row, mv.Path[i].Col)
		}
	}
	return nil
}
