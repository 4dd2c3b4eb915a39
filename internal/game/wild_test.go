package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWildMove(t *testing.T) {
	e := mustEngine(newTestState())

	w, rej := e.StartWildMove("p1")
	require.Nil(t, rej)
	assert.Equal(t, wildBudget, w.Budget)
	assert.Equal(t, []Position{pos(0, 0)}, w.Path)
	assert.True(t, w.Active)

	_, rej = e.StartWildMove("p1")
	require.NotNil(t, rej)
	assert.Equal(t, ReasonWildAlreadyActive, rej.Code)
}

func TestStartWildMoveGuards(t *testing.T) {
	e := mustEngine(newTestState())

	_, rej := e.StartWildMove("p2")
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNotYourTurn, rej.Code)

	// Park p1 on a numbered card: wild movement needs a joker.
	st := newTestState()
	st.Board.Cells[0][0].Occupant = ""
	st.Players[0].Position = &Position{Row: 1, Col: 0}
	st.Board.Cells[1][0].Occupant = "p1"
	e = mustEngine(st)

	_, rej = e.StartWildMove("p1")
	require.NotNil(t, rej)
	assert.Equal(t, ReasonCardNotWild, rej.Code)
}

func TestStartWildMoveWithNoLegalStep(t *testing.T) {
	st := newTestState()
	for _, p := range []Position{pos(3, 0), pos(1, 0), pos(0, 3), pos(0, 1)} {
		st.Board.At(p).Collapsed = true
	}
	e := mustEngine(st)

	_, rej := e.StartWildMove("p1")
	require.NotNil(t, rej)
	assert.Equal(t, ReasonNoLegalWildStep, rej.Code)
}

func TestStepWildMove(t *testing.T) {
	e := mustEngine(newTestState())
	_, rej := e.StartWildMove("p1")
	require.Nil(t, rej)

	res, err := e.StepWildMove(pos(0, 1))
	require.NoError(t, err)
	require.True(t, res.OK, "rejection: %v", res.Reason)
	assert.False(t, res.Forced)
	assert.Equal(t, 3, res.State.Budget)
	assert.Equal(t, []Position{pos(0, 0), pos(0, 1)}, res.State.Path)
}

func TestStepWildMoveRejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*GameState)
		target  Position
		code    ReasonCode
	}{
		{"non-adjacent target", nil, pos(2, 2), ReasonStepNotOrthogonal},
		{"collapsed target", func(st *GameState) { st.Board.Cells[0][1].Collapsed = true }, pos(0, 1), ReasonCellCollapsed},
		{"occupied target", func(st *GameState) {
			st.Board.Cells[3][3].Occupant = ""
			st.Players[1].Position = &Position{Row: 0, Col: 1}
			st.Board.Cells[0][1].Occupant = "p2"
		}, pos(0, 1), ReasonEndsOnOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestState()
			if tt.prepare != nil {
				tt.prepare(&st)
			}
			e := mustEngine(st)
			_, rej := e.StartWildMove("p1")
			require.Nil(t, rej)

			res, err := e.StepWildMove(tt.target)
			require.NoError(t, err)
			require.False(t, res.OK)
			assert.Equal(t, tt.code, res.Reason.Code)
		})
	}
}

func TestStepWildMoveRejectsRevisit(t *testing.T) {
	e := mustEngine(newTestState())
	_, rej := e.StartWildMove("p1")
	require.Nil(t, rej)

	res, err := e.StepWildMove(pos(0, 1))
	require.NoError(t, err)
	require.True(t, res.OK)

	res, err = e.StepWildMove(pos(0, 0))
	require.NoError(t, err)
	require.False(t, res.OK)
	assert.Equal(t, ReasonCellRevisited, res.Reason.Code)
}

func TestCompleteWildMoveCommitsAccumulatedPath(t *testing.T) {
	e := mustEngine(newTestState())
	_, rej := e.StartWildMove("p1")
	require.Nil(t, rej)

	for _, step := range []Position{pos(0, 1), pos(0, 2)} {
		res, err := e.StepWildMove(step)
		require.NoError(t, err)
		require.True(t, res.OK)
	}

	res, err := e.CompleteWildMove()
	require.NoError(t, err)
	require.True(t, res.OK, "rejection: %v", res.Reason)
	assert.Equal(t, 2, res.Move.Distance, "early stop commits the path so far")
	assert.Equal(t, pos(0, 2), res.Move.Destination)

	// Leftover budget dies with the move; nothing carries to the next turn.
	assert.Nil(t, e.WildState())
	assert.Equal(t, 1, e.Snapshot().Turn)
}

func TestCompleteWildMoveNeedsProgress(t *testing.T) {
	e := mustEngine(newTestState())
	_, rej := e.StartWildMove("p1")
	require.Nil(t, rej)

	res, err := e.CompleteWildMove()
	require.NoError(t, err)
	require.False(t, res.OK)
	assert.Equal(t, ReasonWildNoProgress, res.Reason.Code)
}

func TestWildMoveForcedByExhaustedBudget(t *testing.T) {
	e := mustEngine(newTestState())
	_, rej := e.StartWildMove("p1")
	require.Nil(t, rej)

	steps := []Position{pos(0, 1), pos(0, 2), pos(0, 3)}
	for _, step := range steps {
		res, err := e.StepWildMove(step)
		require.NoError(t, err)
		require.True(t, res.OK)
		require.False(t, res.Forced)
	}

	res, err := e.StepWildMove(pos(1, 3))
	require.NoError(t, err)
	require.True(t, res.OK)
	require.True(t, res.Forced, "budget zero must force completion")
	require.NotNil(t, res.Move)
	require.True(t, res.Move.OK)
	assert.Equal(t, 4, res.Move.Move.Distance)
	assert.Equal(t, pos(1, 3), res.Move.Move.Destination)
	assert.Nil(t, e.WildState())
}

func TestWildMoveForcedByDeadEnd(t *testing.T) {
	st := newTestState()
	// After one step to (0,1) every onward cell is gone: forced completion,
	// not an error, and the one-step path commits.
	for _, p := range []Position{pos(3, 1), pos(1, 1), pos(0, 2)} {
		st.Board.At(p).Collapsed = true
	}
	e := mustEngine(st)
	_, rej := e.StartWildMove("p1")
	require.Nil(t, rej)

	res, err := e.StepWildMove(pos(0, 1))
	require.NoError(t, err)
	require.True(t, res.OK)
	require.True(t, res.Forced)
	require.NotNil(t, res.Move)
	require.True(t, res.Move.OK)
	assert.Equal(t, 1, res.Move.Move.Distance)
}

func TestCancelWildMove(t *testing.T) {
	e := mustEngine(newTestState())
	before := e.Snapshot()

	_, rej := e.StartWildMove("p1")
	require.Nil(t, rej)
	res, err := e.StepWildMove(pos(0, 1))
	require.NoError(t, err)
	require.True(t, res.OK)

	require.Nil(t, e.CancelWildMove())
	assert.Nil(t, e.WildState())
	assert.Equal(t, before.Board, e.Snapshot().Board, "cancel has no board effect")

	rej = e.CancelWildMove()
	require.NotNil(t, rej)
	assert.Equal(t, ReasonWildNotActive, rej.Code)
}

func TestStepWildMoveWithoutActivation(t *testing.T) {
	e := mustEngine(newTestState())

	res, err := e.StepWildMove(pos(0, 1))
	require.NoError(t, err)
	require.False(t, res.OK)
	assert.Equal(t, ReasonWildNotActive, res.Reason.Code)
}
