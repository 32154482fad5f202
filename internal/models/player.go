package models

// Position is a fantasy roster slot type.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionDST Position = "DST"
	PositionK   Position = "K"
)

// PositionOrder is the canonical iteration order for positional output.
// Score maps, strength/weakness lists and diff notes all follow it.
var PositionOrder = []Position{
	PositionQB,
	PositionRB,
	PositionWR,
	PositionTE,
	PositionDST,
	PositionK,
}

// ValueSourceKind records where a player's value came from.
type ValueSourceKind string

const (
	SourceExternal ValueSourceKind = "external"
	SourceFallback ValueSourceKind = "fallback"
)

// Player is a league player. Value is always derived, never stored here.
type Player struct {
	ID       string   `json:"playerId"`
	Name     string   `json:"name"`
	Position Position `json:"position"`
}

// ValuedPlayer is a Player plus its resolved value for one evaluation pass.
type ValuedPlayer struct {
	Player
	Value  int             `json:"value"`
	Source ValueSourceKind `json:"source"`
}

// Team is a fantasy team with an ordered roster.
type Team struct {
	ID     string   `json:"teamId"`
	Name   string   `json:"name"`
	Roster []Player `json:"roster"`
}

// League is the full set of teams. It is read-only input: trade analysis
// only produces new derived roster views, never edits in place.
type League struct {
	Teams []Team `json:"teams"`
}

// Team returns the team with the given id.
func (l *League) Team(id string) (Team, bool) {
	for _, t := range l.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// FindPlayer searches every roster in the league for a player id.
func (l *League) FindPlayer(id string) (Player, bool) {
	for _, t := range l.Teams {
		for _, p := range t.Roster {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Player{}, false
}
