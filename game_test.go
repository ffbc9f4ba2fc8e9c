package carnage

import "testing"

func TestPlaces(t *testing.T) {
	game := &Game{Players: []Player{
		{Name: "A", Score: 10, Kills: 10, Deaths: 2},
		{Name: "B", Score: 10, Kills: 10, Deaths: 5},
		{Name: "C", Score: 10, Kills: 9, Deaths: 1},
		{Name: "D", Score: -2},
	}}
	places := game.Places()
	expected := []int{1, 2, 3, 4}
	for i, place := range expected {
		if places[i] != place {
			t.Fatalf("places == %v, expected %v", places, expected)
		}
	}
}

// Fully tied players count as beating each other, so both land on the
// demoted place.
func TestPlacesFullTie(t *testing.T) {
	game := &Game{Players: []Player{
		{Name: "A", Score: 5, Kills: 5, Assists: 1, Deaths: 1},
		{Name: "B", Score: 5, Kills: 5, Assists: 1, Deaths: 1},
		{Name: "C", Score: 3},
	}}
	places := game.Places()
	if places[0] != 2 || places[1] != 2 {
		t.Fatalf("tied players got places %d and %d, expected 2 and 2", places[0], places[1])
	}
	if places[2] != 3 {
		t.Fatalf("third player got place %d, expected 3", places[2])
	}
}

// A place depends only on the stats, never on the row order.
func TestPlacesOrderIndependent(t *testing.T) {
	players := []Player{
		{Name: "A", Score: 10, Kills: 8, Deaths: 3},
		{Name: "B", Score: 10, Kills: 8, Deaths: 3, Assists: 2},
		{Name: "C", Score: 4, Kills: 4, Deaths: 9},
		{Name: "D", Score: 12, Kills: 12, Deaths: 0},
	}
	forward := (&Game{Players: players}).Places()

	reversed := make([]Player, len(players))
	for i, player := range players {
		reversed[len(players)-1-i] = player
	}
	backward := (&Game{Players: reversed}).Places()

	for i := range players {
		if forward[i] != backward[len(players)-1-i] {
			t.Fatalf("places changed with row order: %v vs %v", forward, backward)
		}
	}
}

func TestTeamTotals(t *testing.T) {
	game := &Game{Players: []Player{
		{IsRed: true, Score: 5, Kills: 5, Assists: 1, Deaths: 0},
		{IsRed: false, Score: 5, Kills: 5, Assists: 9, Deaths: 1},
		{IsRed: true, Score: -1, Kills: 0, Assists: 3, Deaths: 4},
	}}
	red, blue := game.TeamTotals()
	if red != (TeamTotals{Score: 4, Kills: 5, Assists: 4, Deaths: 4}) {
		t.Fatalf("red totals == %+v", red)
	}
	if blue != (TeamTotals{Score: 5, Kills: 5, Assists: 9, Deaths: 1}) {
		t.Fatalf("blue totals == %+v", blue)
	}
}
