package models

// PositionScore holds the aggregate scores for one position on a roster.
type PositionScore struct {
	StarterScore int `json:"starterScore"`
	DepthScore   int `json:"depthScore"`
	Count        int `json:"count"`
}

// RosterEvaluation is the derived snapshot of one roster. It is created
// fresh per evaluation call and never mutated afterwards.
type RosterEvaluation struct {
	Players    []ValuedPlayer             `json:"players"`
	TotalValue int                        `json:"totalValue"`
	Scores     map[Position]PositionScore `json:"scores"`
	Strengths  []Position                 `json:"strengths"`
	Weaknesses []Position                 `json:"weaknesses"`
}

// Verdict is the three-way outcome of a trade analysis, from the
// perspective of the team initiating it.
type Verdict string

const (
	VerdictFair           Verdict = "Fair"
	VerdictUserGainsValue Verdict = "UserGainsValue"
	VerdictUserLosesValue Verdict = "UserLosesValue"
)

// TeamSnapshot pairs a team's roster evaluations before and after a trade.
type TeamSnapshot struct {
	TeamID   string            `json:"teamId"`
	TeamName string            `json:"teamName"`
	Before   *RosterEvaluation `json:"before"`
	After    *RosterEvaluation `json:"after"`
}

// TradeResult is the full outcome of one trade analysis.
type TradeResult struct {
	OfferFromValue int            `json:"offerFromValue"`
	OfferToValue   int            `json:"offerToValue"`
	ValueDelta     int            `json:"valueDelta"`
	Verdict        Verdict        `json:"verdict"`
	Rationale      []string       `json:"rationale"`
	FromTeam       TeamSnapshot   `json:"fromTeam"`
	ToTeam         TeamSnapshot   `json:"toTeam"`
	OfferFrom      []ValuedPlayer `json:"offerFrom"`
	OfferTo        []ValuedPlayer `json:"offerTo"`
}
