package analysis

import (
	"math"
	"sort"
)

//ResolvePossession decides which player owns the ball for one frame: the player whose
//box center is closest to the ball center, as long as that distance does not exceed
//the threshold. It returns false when the ball is absent, no player box is usable or
//the closest player is still out of reach.
//Equidistant players resolve to the lowest player ID so repeated runs agree
func ResolvePossession(players map[string]*Box, ball *Box, threshold float64) (string, bool) {
	if !ball.Valid() || len(players) == 0 {
		return "", false
	}

	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bestID := ""
	bestDist := math.Inf(1)
	for _, id := range ids {
		d, ok := CenterDistance(players[id], ball)
		if !ok {
			continue
		}
		if d < bestDist {
			bestDist = d
			bestID = id
		}
	}

	if bestID == "" || bestDist > threshold {
		return "", false
	}

	return bestID, true
}
