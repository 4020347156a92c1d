package analysis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

//Config carries the capture parameters the analytics depend on. They must match the
//footage that produced the detections
type Config struct {
	DistanceThreshold float64
	FPS               float64
	FrameHeight       float64
	//PrimaryPlayers are the tracker IDs included in the two-player report, conventionally "1" and "2"
	PrimaryPlayers []string
}

//DefaultConfig returns the conventional capture parameters
func DefaultConfig() Config {
	return Config{
		DistanceThreshold: utils.DefaultDistanceThreshold,
		FPS:               utils.DefaultFPS,
		FrameHeight:       utils.DefaultFrameHeight,
		PrimaryPlayers:    utils.DefaultPrimaryPlayers,
	}
}

//BallStats holds the ball kinematics over the interpolated trajectory
type BallStats struct {
	AverageSpeed float64 `json:"average_speed"`
	AverageAngle float64 `json:"average_angle"`
}

//MatchStats holds the match-level summary
type MatchStats struct {
	TotalFramesProcessed  int     `json:"total_frames_processed"`
	DistanceThresholdUsed float64 `json:"distance_threshold_used"`
	PlayerWithMostActions string  `json:"player_with_most_actions"`
	MostCommonAction      string  `json:"most_common_action"`
}

//MatchSummary groups the ball kinematics and the match-level summary
type MatchSummary struct {
	Ball  BallStats  `json:"ball"`
	Match MatchStats `json:"match"`
}

//DetailedStats holds the per-player frame accounting
type DetailedStats struct {
	TotalFrames  int `json:"total_frames"`
	ActiveFrames int `json:"active_frames"`
}

//PlayerReport holds one primary player's derived statistics. Every field has a defined
//zero/ empty value so sparse input never produces nulls
type PlayerReport struct {
	DistanceCovered float64            `json:"distance_covered"`
	AverageSpeed    float64            `json:"average_speed"`
	ZoneCoverage    map[string]float64 `json:"zone_coverage"`
	ServeAccuracy   float64            `json:"serve_accuracy"`
	HitDistribution map[string]float64 `json:"hit_distribution"`
	UnforcedErrors  int                `json:"unforced_errors"`
	TotalShots      int                `json:"total_shots"`
	ActionCounts    map[string]int     `json:"action_counts"`
	TotalActions    int                `json:"total_actions"`
	DetailedStats   DetailedStats      `json:"detailed_stats"`
}

//Report is the final immutable match report
type Report struct {
	MatchSummary MatchSummary            `json:"match_summary"`
	Players      map[string]PlayerReport `json:"players"`
}

//Assemble merges the accumulated per-player logs, the player position tracks and the
//interpolated ball trajectory into the final report. It is a pure transformer: it never
//fails, and a player with zero detections yields all-zero/ empty-mapping metrics
func Assemble(acc *Accumulator, positions map[string][]*Point, ballTrack []Point, totalFrames int, cfg Config) *Report {
	players := make(map[string]PlayerReport, len(cfg.PrimaryPlayers))
	primaryCounts := make([]map[string]int, len(cfg.PrimaryPlayers))

	for i, id := range cfg.PrimaryPlayers {
		records := acc.Records(id)
		counts := acc.ActionCounts(id)
		primaryCounts[i] = counts
		pos := positions[id]

		shots := TotalShots(counts)
		players[fmt.Sprintf("p%d", i+1)] = PlayerReport{
			DistanceCovered: DistanceCovered(pos),
			AverageSpeed:    AverageSpeed(pos, cfg.FPS),
			ZoneCoverage:    ZoneCoverage(pos, cfg.FrameHeight),
			ServeAccuracy:   ServeAccuracy(records, cfg.DistanceThreshold),
			HitDistribution: HitDistribution(counts),
			UnforcedErrors:  UnforcedErrors(records, cfg.DistanceThreshold),
			TotalShots:      shots,
			ActionCounts:    ShotCounts(counts),
			TotalActions:    shots,
			DetailedStats: DetailedStats{
				TotalFrames:  len(records),
				ActiveFrames: ActiveFrames(records),
			},
		}
	}

	mostActions := "equal"
	if len(primaryCounts) >= 2 {
		mostActions = PlayerWithMostActions(primaryCounts[0], primaryCounts[1])
	}

	return &Report{
		MatchSummary: MatchSummary{
			Ball: BallStats{
				AverageSpeed: BallSpeed(ballTrack, cfg.FPS),
				AverageAngle: BallAngle(ballTrack),
			},
			Match: MatchStats{
				TotalFramesProcessed:  totalFrames,
				DistanceThresholdUsed: cfg.DistanceThreshold,
				PlayerWithMostActions: mostActions,
				MostCommonAction:      MostCommonAction(primaryCounts...),
			},
		},
		Players: players,
	}
}

//Save writes the report as an indented JSON document
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("Save: Error, got '%v'", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("Save: Error, got '%v'", err)
	}

	return nil
}
