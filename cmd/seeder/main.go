// Seeder generates a randomized league JSON file for local runs:
//
//	go run ./cmd/seeder -teams 8 -out league.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/google/uuid"

	"github.com/fantasygrid/trade-api/internal/models"
)

var teamNames = []string{
	"Gridiron Giants", "End Zone Elite", "Blitz Brigade", "Pocket Passers",
	"Red Zone Raiders", "Hail Mary Heroes", "Fourth Down Fanatics", "Pylon Pirates",
	"Shotgun Scholars", "Goal Line Gurus", "Flea Flicker Five", "Audible Army",
}

var firstNames = []string{
	"Jalen", "Marcus", "DeAndre", "Trevor", "Malik", "Jordan", "Tyler",
	"Cameron", "Devin", "Isaiah", "Brandon", "Kenny", "Rashad", "Zach",
}

var lastNames = []string{
	"Washington", "Brooks", "Carter", "Henderson", "Mitchell", "Coleman",
	"Sanders", "Patterson", "Bryant", "Dawson", "Ellis", "Franklin",
}

// rosterShape is how many players each generated roster carries per position.
var rosterShape = []struct {
	pos   models.Position
	count int
}{
	{models.PositionQB, 2},
	{models.PositionRB, 4},
	{models.PositionWR, 5},
	{models.PositionTE, 2},
	{models.PositionDST, 1},
	{models.PositionK, 1},
}

func main() {
	teams := flag.Int("teams", 8, "number of teams to generate")
	out := flag.String("out", "league.json", "output file path")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	if *teams > len(teamNames) {
		log.Fatalf("At most %d teams supported", len(teamNames))
	}

	l := models.League{Teams: make([]models.Team, 0, *teams)}
	for i := 0; i < *teams; i++ {
		team := models.Team{
			ID:   uuid.NewString(),
			Name: teamNames[i],
		}
		for _, shape := range rosterShape {
			for j := 0; j < shape.count; j++ {
				team.Roster = append(team.Roster, models.Player{
					ID:       uuid.NewString(),
					Name:     randomName(rng, shape.pos, team.Name),
					Position: shape.pos,
				})
			}
		}
		l.Teams = append(l.Teams, team)
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal league: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	fmt.Printf("Wrote %d teams (%d players) to %s\n", *teams, *teams*playersPerTeam(), *out)
}

func randomName(rng *rand.Rand, pos models.Position, teamName string) string {
	if pos == models.PositionDST {
		return teamName + " D/ST"
	}
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

func playersPerTeam() int {
	total := 0
	for _, shape := range rosterShape {
		total += shape.count
	}
	return total
}
