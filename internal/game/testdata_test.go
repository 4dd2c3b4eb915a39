package game

// Fixed deal used across the tests:
//
//	(0,0) RJ   (0,1) A    (0,2) 2    (0,3) 3
//	(1,0) A    (1,1) 2    (1,2) 3    (1,3) 4
//	(2,0) 2    (2,1) 3    (2,2) 4    (2,3) A
//	(3,0) 3    (3,1) A    (3,2) 2    (3,3) BJ
//
// p1 starts on the red joker at (0,0), p2 on the black joker at (3,3).
func newTestState() GameState {
	layout := [BoardSize][BoardSize]CardType{
		{CardRedJoker, CardAce, CardTwo, CardThree},
		{CardAce, CardTwo, CardThree, CardFour},
		{CardTwo, CardThree, CardFour, CardAce},
		{CardThree, CardAce, CardTwo, CardBlackJoker},
	}
	var st GameState
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			st.Board.Cells[r][c] = Card{Type: layout[r][c]}
		}
	}
	p1 := Position{Row: 0, Col: 0}
	p2 := Position{Row: 3, Col: 3}
	st.Players = [2]Player{
		{ID: "p1", Position: &p1, StartingCard: CardRedJoker},
		{ID: "p2", Position: &p2, StartingCard: CardBlackJoker},
	}
	st.Board.Cells[0][0].Occupant = "p1"
	st.Board.Cells[3][3].Occupant = "p2"
	st.Status = StatusPlaying
	st.Turn = 0
	return st
}

func mustEngine(st GameState) *Engine {
	e, err := New(st)
	if err != nil {
		panic(err)
	}
	return e
}

func pos(r, c int) Position { return Position{Row: r, Col: c} }
