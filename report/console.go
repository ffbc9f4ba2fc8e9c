package report

import "io"
import "fmt"
import "strings"

import "github.com/SnowyMouse/carnage-reporter"

// Writes the game as a human-readable fixed-width table. Team games get
// a final score line naming the winning team; free-for-all games only
// get the table.
func WriteConsole(w io.Writer, game *carnage.Game) error {
	var builder strings.Builder
	builder.WriteString("\n")
	builder.WriteString("Name                 | Team | Score | Kills | Assists | Deaths\n")
	builder.WriteString("---------------------|------|-------|-------|---------|--------\n")

	for i := range game.Players {
		player := &game.Players[i]
		team := "Blue"
		if player.IsRed { team = "Red" }
		fmt.Fprintf(
			&builder, "%-20s | %-4s | %5d | %5d | %7d | %6d\n",
			player.Name, team, player.Score, player.Kills, player.Assists, player.Deaths,
		)
	}
	builder.WriteString("\n")

	if !game.FFA {
		red, blue := game.TeamTotals()
		switch {
		case red.Score > blue.Score:
			fmt.Fprintf(&builder, "Final score: Red team wins %d - %d.\n\n", red.Score, blue.Score)
		case blue.Score > red.Score:
			fmt.Fprintf(&builder, "Final score: Blue team wins %d - %d.\n\n", blue.Score, red.Score)
		default:
			fmt.Fprintf(&builder, "Final score: Teams are tied %d - %d.\n\n", blue.Score, red.Score)
		}
	}

	_, err := io.WriteString(w, builder.String())
	return err
}
