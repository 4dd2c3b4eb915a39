package game

import "sort"

// LegalMove is a candidate destination together with one witnessing path.
// Consumers use these both for highlighting and for the liveness check that
// ends the game.
type LegalMove struct {
	Destination Position   `json:"destination"`
	Distance    int        `json:"distance"`
	Path        []Position `json:"path"`
	Card        CardType   `json:"card"`
}

// enumerateMoves walks every path of each candidate distance from the
// player's standing cell: an iterative depth-first search over adjacent,
// non-collapsed, non-revisited cells. Depth is at most 4 and branching at
// most 3 once backtracking is excluded, so the walk is bounded by design.
// With firstOnly set it returns as soon as any legal move is found.
func enumerateMoves(st *GameState, idx int, firstOnly bool) []LegalMove {
	mover := st.Players[idx]
	if mover.Position == nil {
		return nil
	}
	origin := *mover.Position
	card := st.Board.At(origin)
	if card == nil {
		return nil
	}
	dists, rej := Distances(card.Type)
	if rej != nil {
		return nil
	}

	var out []LegalMove
	for _, d := range dists {
		seen := map[Position]struct{}{}
		stack := [][]Position{{origin}}
		for len(stack) > 0 {
			path := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if len(path)-1 == d {
				end := path[len(path)-1]
				if _, dup := seen[end]; dup {
					continue
				}
				mv := Move{
					Start:    origin,
					Path:     path,
					Distance: d,
					Card:     card.Type,
					PlayerID: mover.ID,
				}
				if CheckMove(st, mv) != nil {
					continue
				}
				seen[end] = struct{}{}
				out = append(out, LegalMove{Destination: end, Distance: d, Path: path, Card: card.Type})
				if firstOnly {
					return out
				}
				continue
			}

			last := path[len(path)-1]
			for _, n := range Neighbors(last) {
				if st.Board.At(n).Collapsed {
					continue
				}
				if onPath(path, n) {
					continue
				}
				next := make([]Position, len(path), len(path)+1)
				copy(next, path)
				stack = append(stack, append(next, n))
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Destination.Row != out[j].Destination.Row {
			return out[i].Destination.Row < out[j].Destination.Row
		}
		return out[i].Destination.Col < out[j].Destination.Col
	})
	return out
}

func hasAnyLegalMove(st *GameState, idx int) bool {
	return len(enumerateMoves(st, idx, true)) > 0
}

func onPath(path []Position, p Position) bool {
	for _, q := range path {
		if q == p {
			return true
		}
	}
	return false
}
