package logic

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fantasygrid/trade-api/internal/models"
)

// ValuationTables is the data driving the heuristic valuator: base values
// per position and the curated name lists. It is configuration, not logic,
// and can be swapped out via YAML without touching the evaluator.
type ValuationTables struct {
	PositionBase map[models.Position]int `yaml:"position_base"`
	DefaultBase  int                     `yaml:"default_base"`
	Elite        []string                `yaml:"elite"`
	Breakout     []string                `yaml:"breakout"`
	Risk         []string                `yaml:"risk"`

	elite    map[string]struct{}
	breakout map[string]struct{}
	risk     map[string]struct{}
}

// DefaultTables returns the built-in valuation tables used when no YAML
// file is configured.
func DefaultTables() *ValuationTables {
	t := &ValuationTables{
		PositionBase: map[models.Position]int{
			models.PositionQB:  40,
			models.PositionRB:  80,
			models.PositionWR:  75,
			models.PositionTE:  40,
			models.PositionDST: 10,
			models.PositionK:   10,
		},
		DefaultBase: 40,
		Elite: []string{
			"Patrick Mahomes",
			"Josh Allen",
			"Christian McCaffrey",
			"Bijan Robinson",
			"Justin Jefferson",
			"Ja'Marr Chase",
			"CeeDee Lamb",
			"Travis Kelce",
		},
		Breakout: []string{
			"Puka Nacua",
			"Jahmyr Gibbs",
			"De'Von Achane",
			"Sam LaPorta",
			"Jordan Addison",
			"Jayden Reed",
		},
		Risk: []string{
			"Christian McCaffrey",
			"Travis Kelce",
			"Cooper Kupp",
			"Nick Chubb",
		},
	}
	t.buildIndex()
	return t
}

// LoadTables reads valuation tables from a YAML file. Missing position
// bases fall back to the defaults so a partial file stays usable.
func LoadTables(path string) (*ValuationTables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read valuation tables %q: %w", path, err)
	}

	t := &ValuationTables{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse valuation tables %q: %w", path, err)
	}

	defaults := DefaultTables()
	if t.PositionBase == nil {
		t.PositionBase = defaults.PositionBase
	} else {
		for pos, base := range defaults.PositionBase {
			if _, ok := t.PositionBase[pos]; !ok {
				t.PositionBase[pos] = base
			}
		}
	}
	if t.DefaultBase == 0 {
		t.DefaultBase = defaults.DefaultBase
	}

	t.buildIndex()
	return t, nil
}

func (t *ValuationTables) buildIndex() {
	t.elite = toSet(t.Elite)
	t.breakout = toSet(t.Breakout)
	t.risk = toSet(t.Risk)
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
