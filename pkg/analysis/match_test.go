package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

func TestMatchNoPlayersForTenFrames(t *testing.T) {
	m := NewMatch(DefaultConfig())

	for frame := 0; frame < 10; frame++ {
		m.AddFrame(frame, nil, nil)
	}

	require.Len(t, m.Accumulator().Records(utils.NoPlayerID), 10)
	assert.Empty(t, m.Accumulator().Records("1"))
	assert.Empty(t, m.Accumulator().Records("2"))

	report := m.Report()
	assert.Equal(t, 10, report.MatchSummary.Match.TotalFramesProcessed)
	assert.Equal(t, "equal", report.MatchSummary.Match.PlayerWithMostActions)
	assert.Equal(t, "None", report.MatchSummary.Match.MostCommonAction)

	for _, player := range report.Players {
		assert.Zero(t, player.DistanceCovered)
		assert.Zero(t, player.TotalShots)
		assert.Empty(t, player.HitDistribution)
		assert.Equal(t, map[string]float64{"back": 0, "mid": 0, "net": 0}, player.ZoneCoverage)
	}
}

func TestMatchReportScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FPS = 10
	m := NewMatch(cfg)

	ball := boxAt(40, 600)
	far := boxAt(900, 100) //player "2" stays out of possession range
	actions := []string{utils.ActionForehand, utils.ActionForehand, utils.ActionServe}

	for frame, action := range actions {
		m.AddFrame(frame, map[string]Observation{
			"1": {Box: boxAt(0, 600), Action: action},
			"2": {Box: far, Action: utils.ActionNone},
		}, ball)
	}

	report := m.Report()
	p1 := report.Players["p1"]
	p2 := report.Players["p2"]

	assert.InDelta(t, 1.0, p1.ServeAccuracy, 1e-9)
	assert.Equal(t, 3, p1.TotalShots)
	assert.Equal(t, 3, p1.TotalActions)
	assert.InDelta(t, 2.0/3.0, p1.HitDistribution[utils.ActionForehand], 1e-9)
	assert.InDelta(t, 1.0/3.0, p1.HitDistribution[utils.ActionServe], 1e-9)
	assert.Equal(t, 0, p1.UnforcedErrors)
	assert.Equal(t, 3, p1.DetailedStats.TotalFrames)
	assert.Equal(t, 3, p1.DetailedStats.ActiveFrames, "player 1 is within reach every frame")
	assert.InDelta(t, 100.0, p1.ZoneCoverage["back"], 1e-9)

	assert.Equal(t, 0, p2.TotalShots)
	assert.Equal(t, 0, p2.DetailedStats.ActiveFrames)
	assert.Empty(t, p2.HitDistribution)

	assert.Equal(t, "p1", report.MatchSummary.Match.PlayerWithMostActions)
	assert.Equal(t, utils.ActionForehand, report.MatchSummary.Match.MostCommonAction)
	assert.Equal(t, 3, report.MatchSummary.Match.TotalFramesProcessed)
	assert.InDelta(t, utils.DefaultDistanceThreshold, report.MatchSummary.Match.DistanceThresholdUsed, 1e-9)

	assert.Equal(t, map[string]int{"1": 3}, m.PossessionCounts())
}

func TestMatchActiveIsPerPlayerNotArgMin(t *testing.T) {
	m := NewMatch(DefaultConfig())

	//both players are within the threshold but "1" is strictly closer
	m.AddFrame(0, map[string]Observation{
		"1": {Box: boxAt(10, 0), Action: utils.ActionNone},
		"2": {Box: boxAt(80, 0), Action: utils.ActionNone},
	}, boxAt(0, 0))

	require.Len(t, m.Accumulator().Records("2"), 1)
	assert.True(t, m.Accumulator().Records("2")[0].IsActive, "active is a per-player predicate, not possession")
	assert.Equal(t, map[string]int{"1": 1}, m.PossessionCounts(), "possession is the single arg-min")
}

func TestMatchExcludesNonPrimaryPlayersFromReport(t *testing.T) {
	m := NewMatch(DefaultConfig())

	m.AddFrame(0, map[string]Observation{
		"1": {Box: boxAt(0, 0), Action: utils.ActionServe},
		"7": {Box: boxAt(50, 0), Action: utils.ActionVolley},
	}, boxAt(10, 0))

	assert.Len(t, m.Accumulator().Records("7"), 1, "extra IDs are still accumulated")

	report := m.Report()
	require.Len(t, report.Players, 2)
	assert.Equal(t, utils.ActionServe, report.MatchSummary.Match.MostCommonAction,
		"non-primary shots do not leak into the match summary")
}

func TestMatchReportIsRecomputedNotPatched(t *testing.T) {
	m := NewMatch(DefaultConfig())
	m.AddFrame(0, map[string]Observation{"1": {Box: boxAt(0, 0), Action: utils.ActionServe}}, boxAt(10, 0))

	first := m.Report()
	second := m.Report()
	assert.Equal(t, first, second)

	m.AddFrame(1, map[string]Observation{"1": {Box: boxAt(5, 0), Action: utils.ActionNone}}, boxAt(10, 0))
	third := m.Report()
	assert.NotEqual(t, first, third)
	assert.Equal(t, 2, third.MatchSummary.Match.TotalFramesProcessed)
}

func TestMatchBallTrajectoryGapFill(t *testing.T) {
	m := NewMatch(DefaultConfig())

	m.AddFrame(0, nil, nil)
	m.AddFrame(1, nil, boxAt(0, 0))
	m.AddFrame(2, nil, boxAt(3, 4))
	m.AddFrame(3, nil, nil)

	assert.Equal(t, []Point{{0, 0}, {0, 0}, {3, 4}, {3, 4}}, m.BallTrajectory())
}
