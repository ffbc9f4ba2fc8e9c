package report

import "io"
import "fmt"
import "strings"

import "github.com/SnowyMouse/carnage-reporter"

// Writes the game as a comma-separated table, one row per player in
// screen order, with ordinal places. In team games two summary rows
// report each team's aggregate stats and whether it placed 1st or 2nd by
// total score (a tied game demotes both teams to 2nd, preserved from the
// original report format).
func WriteCSV(w io.Writer, game *carnage.Game) error {
	var builder strings.Builder
	builder.WriteString("name,place,team,score,kills,assists,deaths\n")

	places := game.Places()
	for i := range game.Players {
		player := &game.Players[i]
		fmt.Fprintf(
			&builder, "%s,%s,%s,%d,%d,%d,%d\n",
			player.Name, Ordinal(places[i]), teamName(game, player),
			player.Score, player.Kills, player.Assists, player.Deaths,
		)
	}

	if !game.FFA {
		red, blue := game.TeamTotals()
		redPlace, bluePlace := "2nd", "2nd"
		if red.Score > blue.Score { redPlace = "1st" }
		if blue.Score > red.Score { bluePlace = "1st" }
		fmt.Fprintf(
			&builder, "red_team_total,%s,red,%d,%d,%d,%d\n",
			redPlace, red.Score, red.Kills, red.Assists, red.Deaths,
		)
		fmt.Fprintf(
			&builder, "blue_team_total,%s,blue,%d,%d,%d,%d\n",
			bluePlace, blue.Score, blue.Kills, blue.Assists, blue.Deaths,
		)
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

func teamName(game *carnage.Game, player *carnage.Player) string {
	if game.FFA { return "ffa" }
	if player.IsRed { return "red" }
	return "blue"
}
