package carnage

import "image"
import "strings"
import "testing"

// The reference synthetic match: a team game with a score-and-kills tie
// broken by deaths, and a negative score on the last row.
func testTeamRows() []testRow {
	return []testRow{
		{name: "Doug", tint: testRed, score: "5", kills: "5", assists: "1", deaths: "0"},
		{name: "Spork", tint: testBlue, score: "5", kills: "5", assists: "9", deaths: "1"},
		{name: "Bob", tint: testRed, score: "-1", kills: "0", assists: "3", deaths: "4"},
	}
}

func TestRunTeamGame(t *testing.T) {
	font := testFont()
	screenshot := testScreenshot(font, testTeamRows())
	game, err := New(font, screenshot, DefaultOptions(), nil).Run(nil)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	expected := []Player{
		{IsRed: true, Name: "Doug", Score: 5, Kills: 5, Assists: 1, Deaths: 0},
		{IsRed: false, Name: "Spork", Score: 5, Kills: 5, Assists: 9, Deaths: 1},
		{IsRed: true, Name: "Bob", Score: -1, Kills: 0, Assists: 3, Deaths: 4},
	}
	if len(game.Players) != len(expected) {
		t.Fatalf("decoded %d players, expected %d: %+v", len(game.Players), len(expected), game.Players)
	}
	for i, player := range expected {
		if game.Players[i] != player {
			t.Fatalf("player %d == %+v, expected %+v", i, game.Players[i], player)
		}
	}
	if game.FFA {
		t.Fatal("a game with red rows must not be free-for-all")
	}

	places := game.Places()
	if places[0] != 1 || places[1] != 2 || places[2] != 3 {
		t.Fatalf("places == %v, expected [1 2 3]", places)
	}

	red, blue := game.TeamTotals()
	if red != (TeamTotals{Score: 4, Kills: 5, Assists: 4, Deaths: 4}) {
		t.Fatalf("red totals == %+v", red)
	}
	if blue != (TeamTotals{Score: 5, Kills: 5, Assists: 9, Deaths: 1}) {
		t.Fatalf("blue totals == %+v", blue)
	}
}

func TestRunWithNameLibrary(t *testing.T) {
	font := testFont()
	screenshot := testScreenshot(font, testTeamRows())

	names := NewNameLibrary(font)
	names.AddName("Spork")
	names.AddName("Doug")
	names.AddName("Bob")

	game, err := New(font, screenshot, DefaultOptions(), nil).Run(names)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	decoded := []string{}
	for _, player := range game.Players {
		decoded = append(decoded, player.Name)
	}
	if got := strings.Join(decoded, ","); got != "Doug,Spork,Bob" {
		t.Fatalf("decoded names %q, expected Doug,Spork,Bob", got)
	}
	if names.Size() != 0 {
		t.Fatalf("%d templates left in the library, all must be consumed", names.Size())
	}
}

func TestRunFreeForAll(t *testing.T) {
	font := testFont()
	rows := []testRow{
		{name: "Doug", tint: testWhite, score: "7", kills: "7", assists: "0", deaths: "2"},
		{name: "Bob", tint: testWhite, score: "3", kills: "3", assists: "0", deaths: "6"},
	}
	game, err := New(font, testScreenshot(font, rows), DefaultOptions(), nil).Run(nil)
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	if !game.FFA {
		t.Fatal("a game with no red rows must be free-for-all")
	}
	if len(game.Players) != 2 || game.Players[0].Name != "Doug" || game.Players[1].Name != "Bob" {
		t.Fatalf("bad players: %+v", game.Players)
	}
}

func TestRunRejectsBlankScreenshot(t *testing.T) {
	font := testFont()
	blank, err := FromImage(image.NewRGBA(image.Rect(0, 0, 640, ScreenHeight)))
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	_, err = New(font, blank, DefaultOptions(), nil).Run(nil)
	if err == nil {
		t.Fatal("expected calibration to fail on a blank screenshot")
	}
	if !strings.Contains(err.Error(), `failed to find "Name"`) {
		t.Fatalf("unexpected error text: %s", err)
	}
}

// A rendered string must match its own template perfectly in place.
func TestTemplateRoundTrip(t *testing.T) {
	font := testFont()
	screenshot := testScreenshot(font, nil)
	if score := screenshot.Mono.Match(font.DrawTemplate("Name"), testNameX, testHeaderY); score != 1.0 {
		t.Fatalf("self-match == %f, expected 1", score)
	}
	if score := screenshot.Mono.Match(font.DrawTemplate("Name"), testNameX+1, testHeaderY); score >= 1.0 {
		t.Fatalf("shifted match == %f, expected below 1", score)
	}
}
