package report

import "os"

import "github.com/pkg/errors"
import "github.com/tidwall/gjson"
import "github.com/tidwall/sjson"

import "github.com/SnowyMouse/carnage-reporter"

// One player entry inside the match log.
type statsPlayer struct {
	Name    string `json:"name"`
	Place   string `json:"place"`
	Team    string `json:"team"`
	Score   int    `json:"score"`
	Kills   int    `json:"kills"`
	Assists int    `json:"assists"`
	Deaths  int    `json:"deaths"`
}

// One decoded game inside the match log.
type statsGame struct {
	FFA       bool          `json:"ffa"`
	Winner    string        `json:"winner,omitempty"` // red, blue or tie; absent for FFA
	RedScore  int           `json:"redScore"`
	BlueScore int           `json:"blueScore"`
	Players   []statsPlayer `json:"players"`
}

// Appends the game to a cumulative JSON match log at the given path,
// creating it when missing. The log keeps a running match count and
// per-team win tallies alongside the per-game breakdown, so repeated
// runs over a session's screenshots accumulate into one file.
func AppendStats(path string, game *carnage.Game) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		data = []byte("{}")
	} else if err != nil {
		return errors.Wrapf(err, "could not read match log %s", path)
	}

	record := statsGame{FFA: game.FFA}
	red, blue := game.TeamTotals()
	record.RedScore = red.Score
	record.BlueScore = blue.Score
	if !game.FFA {
		switch {
		case red.Score > blue.Score:
			record.Winner = "red"
		case blue.Score > red.Score:
			record.Winner = "blue"
		default:
			record.Winner = "tie"
		}
	}
	places := game.Places()
	for i := range game.Players {
		player := &game.Players[i]
		team := "ffa"
		if !game.FFA {
			team = "blue"
			if player.IsRed { team = "red" }
		}
		record.Players = append(record.Players, statsPlayer{
			Name:    player.Name,
			Place:   Ordinal(places[i]),
			Team:    team,
			Score:   int(player.Score),
			Kills:   int(player.Kills),
			Assists: int(player.Assists),
			Deaths:  int(player.Deaths),
		})
	}

	matches := gjson.GetBytes(data, "matches").Int()
	data, _ = sjson.SetBytes(data, "matches", matches+1)
	if record.Winner != "" {
		winKey := "wins." + record.Winner
		wins := gjson.GetBytes(data, winKey).Int()
		data, _ = sjson.SetBytes(data, winKey, wins+1)
	}
	data, err = sjson.SetBytes(data, "games.-1", record)
	if err != nil {
		return errors.Wrap(err, "could not append game to match log")
	}

	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return errors.Wrapf(err, "could not write match log %s", path)
	}
	return nil
}
