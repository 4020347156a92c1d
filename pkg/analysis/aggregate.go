package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

//BallSpeed returns the mean per-step speed, in pixels per second, over a gap-filled
//ball trajectory. Fewer than two positions yield 0
func BallSpeed(positions []Point, fps float64) float64 {
	if len(positions) < 2 {
		return 0
	}

	speeds := make([]float64, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		dx := positions[i].X - positions[i-1].X
		dy := positions[i].Y - positions[i-1].Y
		speeds = append(speeds, math.Hypot(dx, dy)*fps)
	}

	return stat.Mean(speeds, nil)
}

//BallAngle returns the signed arithmetic mean of per-step atan2(dy, dx) directions, in
//radians, over a gap-filled ball trajectory. Zero-length steps contribute atan2(0,0) = 0
func BallAngle(positions []Point) float64 {
	if len(positions) < 2 {
		return 0
	}

	angles := make([]float64, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		dx := positions[i].X - positions[i-1].X
		dy := positions[i].Y - positions[i-1].Y
		angles = append(angles, math.Atan2(dy, dx))
	}

	return stat.Mean(angles, nil)
}

//DistanceCovered sums the euclidean step distances between consecutive player positions,
//skipping any step where either endpoint is unknown. Player movement is never
//interpolated, unlike the ball
func DistanceCovered(positions []*Point) float64 {
	total := 0.0
	for i := 1; i < len(positions); i++ {
		if positions[i] == nil || positions[i-1] == nil {
			continue
		}
		total += math.Hypot(positions[i].X-positions[i-1].X, positions[i].Y-positions[i-1].Y)
	}

	return total
}

//AverageSpeed returns distance covered divided by the observed frame count, scaled to
//pixels per second. Fewer than two positions yield 0
func AverageSpeed(positions []*Point, fps float64) float64 {
	if len(positions) < 2 {
		return 0
	}

	return DistanceCovered(positions) / float64(len(positions)) * fps
}

//ZoneCoverage splits the frame height in three court-depth bands and returns the
//percentage of known-position frames spent in each: y > 0.7*H is "back", y < 0.3*H is
//"net", the middle band is "mid". With no known positions all three are 0
func ZoneCoverage(positions []*Point, frameHeight float64) map[string]float64 {
	zones := map[string]float64{"back": 0, "mid": 0, "net": 0}

	known := 0
	for _, pos := range positions {
		if pos == nil {
			continue
		}
		known++

		switch {
		case pos.Y > frameHeight*0.7:
			zones["back"]++
		case pos.Y < frameHeight*0.3:
			zones["net"]++
		default:
			zones["mid"]++
		}
	}

	if known == 0 {
		return zones
	}

	for zone, count := range zones {
		zones[zone] = count / float64(known) * 100
	}

	return zones
}

//ServeAccuracy is the fraction of serve-labeled frames where the ball was within the
//possession threshold at that frame. 0 when the player never served.
//"Successful" is defined purely by proximity, not by rally outcome
func ServeAccuracy(records []FrameRecord, threshold float64) float64 {
	serves, successful := 0, 0
	for _, rec := range records {
		if rec.Action != utils.ActionServe {
			continue
		}
		serves++
		if rec.DistanceToBall != nil && *rec.DistanceToBall < threshold {
			successful++
		}
	}

	if serves == 0 {
		return 0
	}

	return float64(successful) / float64(serves)
}

//HitDistribution maps every non-"No Action" label to its fraction of the player's total
//shot frames. Empty when the player produced zero shots
func HitDistribution(counts map[string]int) map[string]float64 {
	distribution := make(map[string]float64)

	total := TotalShots(counts)
	if total == 0 {
		return distribution
	}

	for action, count := range counts {
		if action != utils.ActionNone {
			distribution[action] = float64(count) / float64(total)
		}
	}

	return distribution
}

//UnforcedErrors counts the frames where the player was within possession range of the
//ball yet produced no recognized action
func UnforcedErrors(records []FrameRecord, threshold float64) int {
	errors := 0
	for _, rec := range records {
		if rec.DistanceToBall != nil && *rec.DistanceToBall < threshold && rec.Action == utils.ActionNone {
			errors++
		}
	}

	return errors
}

//TotalShots counts the frames whose label is not "No Action". A swing spanning several
//frames counts once per frame it spans, not once per event
func TotalShots(counts map[string]int) int {
	total := 0
	for action, count := range counts {
		if action != utils.ActionNone {
			total += count
		}
	}

	return total
}

//ShotCounts returns the action counts with the "No Action" bucket removed
func ShotCounts(counts map[string]int) map[string]int {
	shots := make(map[string]int)
	for action, count := range counts {
		if action != utils.ActionNone {
			shots[action] = count
		}
	}

	return shots
}

//ActiveFrames counts the frames where the player's own distance to the ball was within
//the possession threshold, independent of whether another player was closer
func ActiveFrames(records []FrameRecord) int {
	active := 0
	for _, rec := range records {
		if rec.IsActive {
			active++
		}
	}

	return active
}

//PlayerWithMostActions compares the two primary players' shot frame counts and returns
//"p1", "p2" or "equal" on a tie
func PlayerWithMostActions(counts1, counts2 map[string]int) string {
	c1 := TotalShots(counts1)
	c2 := TotalShots(counts2)

	switch {
	case c1 > c2:
		return "p1"
	case c2 > c1:
		return "p2"
	default:
		return "equal"
	}
}

//MostCommonAction returns the non-"No Action" label with the highest combined frequency
//across given counters, or "None" when no shots exist. Frequency ties resolve to the
//lexicographically first label
func MostCommonAction(counters ...map[string]int) string {
	combined := make(map[string]int)
	for _, counts := range counters {
		for action, count := range counts {
			if action != utils.ActionNone {
				combined[action] += count
			}
		}
	}

	labels := make([]string, 0, len(combined))
	for action := range combined {
		labels = append(labels, action)
	}
	sort.Strings(labels)

	best := "None"
	bestCount := 0
	for _, action := range labels {
		if combined[action] > bestCount {
			best = action
			bestCount = combined[action]
		}
	}

	return best
}
