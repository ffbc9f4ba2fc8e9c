package carnage

// One decoded scoreboard row, in top-to-bottom screen order. Stats are
// signed 8-bit like the game's own counters.
type Player struct {
	IsRed   bool
	Name    string
	Score   int8
	Kills   int8
	Assists int8
	Deaths  int8
}

// A fully decoded scoreboard. FFA is set when no row was ever tagged
// red, which is how free-for-all matches present.
type Game struct {
	Players []Player
	FFA     bool
}

// Aggregate stats for one team.
type TeamTotals struct {
	Score   int
	Kills   int
	Assists int
	Deaths  int
}

// Sums each team's stats. Meaningless for free-for-all games, where every
// row lands on the blue side.
func (self *Game) TeamTotals() (red, blue TeamTotals) {
	for i := range self.Players {
		player := &self.Players[i]
		totals := &blue
		if player.IsRed { totals = &red }
		totals.Score += int(player.Score)
		totals.Kills += int(player.Kills)
		totals.Assists += int(player.Assists)
		totals.Deaths += int(player.Deaths)
	}
	return red, blue
}

// Computes tie-broken placements, index-aligned with Players. A player's
// place is one more than the number of players that beat them, so the
// result does not depend on row order.
func (self *Game) Places() []int {
	places := make([]int, len(self.Players))
	for i := range self.Players {
		beaten := 0
		for j := range self.Players {
			if i == j { continue }
			if beats(&self.Players[j], &self.Players[i]) { beaten += 1 }
		}
		places[i] = beaten + 1
	}
	return places
}

// Whether a places ahead of b: better on the first differing stat of
// (score desc, kills desc, deaths asc, assists desc). Fully tied players
// count as beating each other, so ties share a (demoted) place with no
// explicit tie indication; this quirk is longstanding output behavior
// and is preserved.
func beats(a, b *Player) bool {
	if a.Score != b.Score { return a.Score > b.Score }
	if a.Kills != b.Kills { return a.Kills > b.Kills }
	if a.Deaths != b.Deaths { return a.Deaths < b.Deaths }
	if a.Assists != b.Assists { return a.Assists > b.Assists }
	return true
}
