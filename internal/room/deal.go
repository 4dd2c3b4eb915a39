package room

import (
	"math/rand"

	"collapsi/internal/game"
)

// deck is the full 16-card collapsi deck: a standard-deck cut of one red
// and one black joker, four aces, four twos, four threes and two fours.
func deck() []game.CardType {
	out := make([]game.CardType, 0, game.BoardSize*game.BoardSize)
	add := func(t game.CardType, n int) {
		for i := 0; i < n; i++ {
			out = append(out, t)
		}
	}
	add(game.CardRedJoker, 1)
	add(game.CardBlackJoker, 1)
	add(game.CardAce, 4)
	add(game.CardTwo, 4)
	add(game.CardThree, 4)
	add(game.CardFour, 2)
	return out
}

// Deal shuffles the deck onto the 4x4 grid and reports where the jokers
// landed. The engine never shuffles; it receives this board ready-made.
func Deal(seed int64) (game.Board, [2]game.Position) {
	cards := deck()
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	var b game.Board
	var jokers [2]game.Position
	for i, t := range cards {
		p := game.Position{Row: i / game.BoardSize, Col: i % game.BoardSize}
		b.Cells[p.Row][p.Col] = game.Card{Type: t}
		switch t {
		case game.CardRedJoker:
			jokers[0] = p
		case game.CardBlackJoker:
			jokers[1] = p
		}
	}
	return b, jokers
}
