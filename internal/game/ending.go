package game

// ValidateEnding checks the terminal constraints of a move: it must change
// position, and it must not land on any pawn. Occupancy is read from the
// player list, which is authoritative; the card's occupant flag is only
// audited, never trusted here.
func ValidateEnding(start, end Position, players []Player) *Rejection {
	if end == start {
		return rejectRule(ReasonEndsOnStart, "move must end away from its starting cell (%d,%d)", start.Row, start.Col)
	}
	for i := range players {
		if players[i].Position != nil && *players[i].Position == end {
			return rejectRule(ReasonEndsOnOccupied, "cell (%d,%d) is occupied by player %s", end.Row, end.Col, players[i].ID)
		}
	}
	return nil
}
