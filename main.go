package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"collapsi/internal/game"
	"collapsi/internal/room"
)

// Hot-seat collapsi in the terminal: two players, one keyboard, the same
// engine the server uses.
func main() {
	board, jokers := room.Deal(time.Now().UnixNano())
	players := [2]game.Player{
		{ID: "red", Position: &jokers[0], StartingCard: game.CardRedJoker},
		{ID: "black", Position: &jokers[1], StartingCard: game.CardBlackJoker},
	}
	board.At(jokers[0]).Occupant = players[0].ID
	board.At(jokers[1]).Occupant = players[1].ID

	g, err := game.New(game.GameState{
		Board:   board,
		Players: players,
		Status:  game.StatusSetup,
	})
	if err != nil {
		fmt.Println("bad deal:", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		snap := g.Snapshot()
		if snap.Status == game.StatusEnded {
			break
		}
		current := snap.Players[snap.Turn]
		fmt.Printf("\nTurn: %s\n", current.ID)
		printBoard(&snap)

		moves, rej := g.LegalMoves(current.ID)
		if rej != nil {
			fmt.Println("engine refused enumeration:", rej)
			os.Exit(1)
		}
		for i, m := range moves {
			fmt.Printf("  %2d: to (%d,%d) distance %d via %s\n", i, m.Destination.Row, m.Destination.Col, m.Distance, fmtPath(m.Path))
		}

		fmt.Print("move number > ")
		line, _ := reader.ReadString('\n')
		idx, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || idx < 0 || idx >= len(moves) {
			fmt.Println("Pick one of the listed numbers.")
			continue
		}
		chosen := moves[idx]
		res, err := g.ProposeMove(chosen.Path[0], chosen.Path, chosen.Card, current.ID)
		if err != nil {
			fmt.Println("engine fault:", err)
			os.Exit(1)
		}
		if !res.OK {
			fmt.Println("Move rejected:", res.Reason)
		}
	}

	final := g.Snapshot()
	fmt.Printf("\nGame over! Winner: %s\n", *final.Winner)
	js, _ := json.MarshalIndent(final.History, "", "  ")
	fmt.Println(string(js))
}

func printBoard(st *game.GameState) {
	short := map[game.CardType]string{
		game.CardRedJoker:   "RJ",
		game.CardBlackJoker: "BJ",
		game.CardAce:        " A",
		game.CardTwo:        " 2",
		game.CardThree:      " 3",
		game.CardFour:       " 4",
	}
	for r := 0; r < game.BoardSize; r++ {
		for c := 0; c < game.BoardSize; c++ {
			cell := st.Board.Cells[r][c]
			switch {
			case cell.Occupant != "":
				fmt.Printf("[%c*]", cell.Occupant[0])
			case cell.Collapsed:
				fmt.Print("[--]")
			default:
				fmt.Printf("[%s]", short[cell.Type])
			}
		}
		fmt.Println()
	}
}

func fmtPath(path []game.Position) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return strings.Join(parts, "->")
}
