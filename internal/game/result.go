package game

import "fmt"

// ErrorKind groups rejection reasons by severity. InputError and
// RuleViolation are normal gameplay outcomes; StateInconsistency means the
// caller and the engine disagree about the world.
type ErrorKind string

const (
	KindInput         ErrorKind = "input_error"
	KindRule          ErrorKind = "rule_violation"
	KindInconsistency ErrorKind = "state_inconsistency"
)

type ReasonCode string

const (
	ReasonUnknownCardType    ReasonCode = "unknown_card_type"
	ReasonMalformedPosition  ReasonCode = "malformed_position"
	ReasonEmptyPath          ReasonCode = "empty_path"
	ReasonPathStartMismatch  ReasonCode = "path_start_mismatch"
	ReasonDistanceNotAllowed ReasonCode = "distance_not_allowed"
	ReasonPathLengthMismatch ReasonCode = "path_length_mismatch"
	ReasonStepNotOrthogonal  ReasonCode = "step_not_orthogonal"
	ReasonCellRevisited      ReasonCode = "cell_revisited"
	ReasonEndsOnStart        ReasonCode = "ends_on_start"
	ReasonEndsOnOccupied     ReasonCode = "ends_on_occupied"
	ReasonCellCollapsed      ReasonCode = "cell_collapsed"
	ReasonCardMismatch       ReasonCode = "card_mismatch"
	ReasonNotYourTurn        ReasonCode = "not_your_turn"
	ReasonGameNotRunning     ReasonCode = "game_not_running"
	ReasonPlayerNotFound     ReasonCode = "player_not_found"
	ReasonStaleStart         ReasonCode = "stale_starting_position"
	ReasonDestinationMissing ReasonCode = "destination_missing"
	ReasonCardNotWild        ReasonCode = "card_not_wild"
	ReasonNoLegalWildStep    ReasonCode = "no_legal_wild_step"
	ReasonWildNotActive      ReasonCode = "wild_move_not_active"
	ReasonWildAlreadyActive  ReasonCode = "wild_move_already_active"
	ReasonWildNoProgress     ReasonCode = "wild_move_no_progress"
)

// Rejection is the structured outcome of a failed legality check. Step is
// the index of the first offending path position, or -1 when the failure is
// not tied to a particular step.
type Rejection struct {
	Kind    ErrorKind  `json:"kind"`
	Code    ReasonCode `json:"code"`
	Message string     `json:"message"`
	Step    int        `json:"step"`
}

func (r *Rejection) String() string {
	if r == nil {
		return "ok"
	}
	if r.Step >= 0 {
		return fmt.Sprintf("%s/%s at step %d: %s", r.Kind, r.Code, r.Step, r.Message)
	}
	return fmt.Sprintf("%s/%s: %s", r.Kind, r.Code, r.Message)
}

func rejectInput(code ReasonCode, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: KindInput, Code: code, Message: fmt.Sprintf(format, args...), Step: -1}
}

func rejectRule(code ReasonCode, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: KindRule, Code: code, Message: fmt.Sprintf(format, args...), Step: -1}
}

func rejectRuleAt(step int, code ReasonCode, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: KindRule, Code: code, Message: fmt.Sprintf(format, args...), Step: step}
}

func rejectState(code ReasonCode, format string, args ...interface{}) *Rejection {
	return &Rejection{Kind: KindInconsistency, Code: code, Message: fmt.Sprintf(format, args...), Step: -1}
}

// MoveResult is what callers get back from ProposeMove and from a wild-move
// completion: either a committed move plus the post-move snapshot, or a
// rejection with the board untouched.
type MoveResult struct {
	OK       bool           `json:"ok"`
	Reason   *Rejection     `json:"reason,omitempty"`
	Move     *CompletedMove `json:"move,omitempty"`
	Snapshot *GameState     `json:"snapshot,omitempty"`
}

func rejected(r *Rejection) MoveResult {
	return MoveResult{OK: false, Reason: r}
}
