package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromotesSetupToPlaying(t *testing.T) {
	st := newTestState()
	st.Status = StatusSetup

	e, err := New(st)
	require.NoError(t, err)
	assert.Equal(t, StatusPlaying, e.Snapshot().Status)
}

func TestNewRejectsBrokenState(t *testing.T) {
	st := newTestState()
	st.Players[1].ID = "p1" // duplicate

	_, err := New(st)
	require.Error(t, err)
}

func TestProposeMoveHappyPath(t *testing.T) {
	e := mustEngine(newTestState())

	res, err := e.ProposeMove(pos(0, 0), []Position{pos(0, 0), pos(0, 1)}, CardRedJoker, "p1")
	require.NoError(t, err)
	require.True(t, res.OK, "rejection: %v", res.Reason)
	require.NotNil(t, res.Move)
	assert.Equal(t, pos(0, 1), res.Move.Destination)
	assert.Equal(t, 1, res.Move.Distance)

	require.NotNil(t, res.Snapshot)
	snap := *res.Snapshot
	assert.True(t, snap.Board.Cells[0][0].Collapsed)
	assert.Equal(t, "p1", snap.Board.Cells[0][1].Occupant)
	assert.Equal(t, 1, snap.Turn, "turn must pass to the other player")
	assert.Equal(t, StatusPlaying, snap.Status)
	require.Len(t, snap.History, 1)
}

func TestProposeMoveTurnGuards(t *testing.T) {
	e := mustEngine(newTestState())

	res, err := e.ProposeMove(pos(3, 3), []Position{pos(3, 3), pos(3, 2)}, CardBlackJoker, "p2")
	require.NoError(t, err)
	require.False(t, res.OK)
	assert.Equal(t, ReasonNotYourTurn, res.Reason.Code)

	res, err = e.ProposeMove(pos(0, 0), []Position{pos(0, 0), pos(0, 1)}, CardRedJoker, "ghost")
	require.NoError(t, err)
	require.False(t, res.OK)
	assert.Equal(t, ReasonPlayerNotFound, res.Reason.Code)
}

func TestRejectedMoveLeavesStateUntouched(t *testing.T) {
	e := mustEngine(newTestState())
	before := e.Snapshot()

	res, err := e.ProposeMove(pos(0, 0), []Position{pos(0, 0), pos(1, 1)}, CardRedJoker, "p1")
	require.NoError(t, err)
	require.False(t, res.OK)

	after := e.Snapshot()
	assert.Equal(t, before.Board, after.Board)
	assert.Equal(t, before.Turn, after.Turn)
	assert.Len(t, after.History, 0)
}

// After a move commits, the vacated cell is collapsed and must no longer
// appear anywhere in the mover's own next-turn options.
func TestCollapsedStartBecomesImpassable(t *testing.T) {
	e := mustEngine(newTestState())

	res, err := e.ProposeMove(pos(0, 0), []Position{pos(0, 0), pos(0, 1)}, CardRedJoker, "p1")
	require.NoError(t, err)
	require.True(t, res.OK)

	moves, rej := e.LegalMoves("p1")
	require.Nil(t, rej)
	for _, m := range moves {
		assert.NotEqual(t, pos(0, 0), m.Destination)
		for _, p := range m.Path[1:] {
			assert.NotEqual(t, pos(0, 0), p, "no path may pass through the collapsed cell")
		}
	}
}

func TestLegalMovesAreActuallyLegal(t *testing.T) {
	e := mustEngine(newTestState())
	st := e.Snapshot()

	moves, rej := e.LegalMoves("p1")
	require.Nil(t, rej)
	require.NotEmpty(t, moves)

	for _, m := range moves {
		mv := Move{Start: m.Path[0], Path: m.Path, Distance: m.Distance, Card: m.Card, PlayerID: "p1"}
		assert.Nil(t, CheckMove(&st, mv), "enumerated move %v must pass the pipeline", m)
		assert.Equal(t, m.Distance, len(m.Path)-1)
		assert.Equal(t, m.Destination, m.Path[len(m.Path)-1])
	}
}

func TestGameEndsWhenIncomingPlayerHasNoMove(t *testing.T) {
	st := newTestState()
	// Wall p2 in: every orthogonal neighbor of (3,3) is face down.
	for _, p := range []Position{pos(2, 3), pos(0, 3), pos(3, 2), pos(3, 0)} {
		st.Board.At(p).Collapsed = true
	}
	e := mustEngine(st)

	res, err := e.ProposeMove(pos(0, 0), []Position{pos(0, 0), pos(1, 0)}, CardRedJoker, "p1")
	require.NoError(t, err)
	require.True(t, res.OK, "rejection: %v", res.Reason)

	snap := e.Snapshot()
	assert.Equal(t, StatusEnded, snap.Status)
	require.NotNil(t, snap.Winner)
	assert.Equal(t, "p1", *snap.Winner, "winner is the player who made the last move")

	moves, rej := e.LegalMoves("p2")
	require.Nil(t, rej)
	assert.Empty(t, moves)

	res, err = e.ProposeMove(pos(3, 3), []Position{pos(3, 3), pos(2, 3)}, CardBlackJoker, "p2")
	require.NoError(t, err)
	require.False(t, res.OK)
	assert.Equal(t, ReasonGameNotRunning, res.Reason.Code)
}

func TestSnapshotIsADeepCopy(t *testing.T) {
	e := mustEngine(newTestState())

	snap := e.Snapshot()
	snap.Board.Cells[0][0].Collapsed = true
	*snap.Players[0].Position = pos(2, 2)

	fresh := e.Snapshot()
	assert.False(t, fresh.Board.Cells[0][0].Collapsed)
	assert.Equal(t, pos(0, 0), *fresh.Players[0].Position)
}

func TestRestoreRewindsToSnapshot(t *testing.T) {
	e := mustEngine(newTestState())
	before := e.Snapshot()

	res, err := e.ProposeMove(pos(0, 0), []Position{pos(0, 0), pos(0, 1)}, CardRedJoker, "p1")
	require.NoError(t, err)
	require.True(t, res.OK)

	require.NoError(t, e.Restore(before))
	snap := e.Snapshot()
	assert.False(t, snap.Board.Cells[0][0].Collapsed)
	assert.Equal(t, 0, snap.Turn)
	assert.Empty(t, snap.History)
}

func TestRestoreRejectsContradictorySnapshot(t *testing.T) {
	e := mustEngine(newTestState())

	bad := e.Snapshot()
	bad.Board.Cells[2][2].Occupant = "p1" // nobody stands there

	err := e.Restore(bad)
	require.Error(t, err)

	// The authoritative state must be untouched by the refused restore.
	assert.Empty(t, e.Snapshot().Board.Cells[2][2].Occupant)
}
