package analysis

import (
	"encoding/json"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

func TestAssembleSparseInputNeverFails(t *testing.T) {
	report := Assemble(NewAccumulator(100), nil, nil, 0, DefaultConfig())

	require.Len(t, report.Players, 2)
	for _, player := range report.Players {
		assert.Zero(t, player.DistanceCovered)
		assert.Zero(t, player.AverageSpeed)
		assert.Zero(t, player.ServeAccuracy)
		assert.Zero(t, player.UnforcedErrors)
		assert.NotNil(t, player.HitDistribution, "empty mapping, never null")
		assert.NotNil(t, player.ActionCounts)
		assert.Equal(t, map[string]float64{"back": 0, "mid": 0, "net": 0}, player.ZoneCoverage)
	}

	assert.Zero(t, report.MatchSummary.Ball.AverageSpeed)
	assert.Equal(t, "equal", report.MatchSummary.Match.PlayerWithMostActions)
	assert.Equal(t, "None", report.MatchSummary.Match.MostCommonAction)
}

func TestAssembleSinglePrimaryPlayer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrimaryPlayers = []string{"1"}

	report := Assemble(NewAccumulator(100), nil, nil, 0, cfg)
	require.Len(t, report.Players, 1)
	assert.Equal(t, "equal", report.MatchSummary.Match.PlayerWithMostActions)
}

func TestReportRoundTrip(t *testing.T) {
	m := NewMatch(DefaultConfig())

	actions := []string{utils.ActionServe, utils.ActionForehand, utils.ActionForehand, utils.ActionNone}
	for frame, action := range actions {
		m.AddFrame(frame, map[string]Observation{
			"1": {Box: boxAt(float64(frame*10), 600), Action: action},
			"2": {Box: boxAt(300, 100), Action: utils.ActionVolley},
		}, boxAt(float64(frame*10+20), 590))
	}

	report := m.Report()

	reportPath := path.Join(t.TempDir(), "report.json")
	require.NoError(t, report.Save(reportPath))

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)

	parsed := Report{}
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, *report, parsed, "serializing and re-parsing yields field-for-field equal values")
}

func TestReportJSONFieldNames(t *testing.T) {
	report := Assemble(NewAccumulator(100), nil, nil, 5, DefaultConfig())

	data, err := json.Marshal(report)
	require.NoError(t, err)

	doc := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &doc))

	summary, ok := doc["match_summary"].(map[string]interface{})
	require.True(t, ok)
	ball, ok := summary["ball"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, ball, "average_speed")
	assert.Contains(t, ball, "average_angle")

	match, ok := summary["match"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 5, match["total_frames_processed"])
	assert.Contains(t, match, "distance_threshold_used")
	assert.Contains(t, match, "player_with_most_actions")
	assert.Contains(t, match, "most_common_action")

	players, ok := doc["players"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, players, "p1")
	require.Contains(t, players, "p2")

	p1, ok := players["p1"].(map[string]interface{})
	require.True(t, ok)
	for _, field := range []string{
		"distance_covered", "average_speed", "zone_coverage", "serve_accuracy",
		"hit_distribution", "unforced_errors", "total_shots", "action_counts",
		"total_actions", "detailed_stats",
	} {
		assert.Contains(t, p1, field)
	}

	detailed, ok := p1["detailed_stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, detailed, "total_frames")
	assert.Contains(t, detailed, "active_frames")
}
