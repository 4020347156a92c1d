package video

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AymanAbodala/tennis-analysis/pkg/analysis"
)

//ballKey is the fixed key the tracking stage uses for the singleton ball entity
const ballKey = "1"

//detectionDocument mirrors the tracking stage's JSON output: two aligned sequences with
//one entry per frame, player boxes keyed by stable track ID and the ball keyed "1"
type detectionDocument struct {
	PlayerDetections []map[string][]float64 `json:"player_detections"`
	BallDetections   []map[string][]float64 `json:"ball_detections"`
}

//actionDocument is the sidecar the action stage produces when video is not available:
//per player, one label per frame, aligned with the detections
type actionDocument map[string][]string

//LoadDetections parses a tracking JSON document into aligned per-frame sequences of
//player boxes and ball boxes. Entries with wrong arity or degenerate coordinates are
//treated as absent detections, never as an error
func LoadDetections(path string) ([]map[string]*analysis.Box, []*analysis.Box, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("LoadDetections: Error, got '%v'", err)
	}

	doc := detectionDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("LoadDetections: Error, got '%v'", err)
	}

	playerFrames := make([]map[string]*analysis.Box, len(doc.PlayerDetections))
	for i, frame := range doc.PlayerDetections {
		playerFrames[i] = make(map[string]*analysis.Box)
		for id, coords := range frame {
			if box := boxFromSlice(coords); box != nil {
				playerFrames[i][id] = box
			}
		}
	}

	ballFrames := make([]*analysis.Box, len(doc.BallDetections))
	for i, frame := range doc.BallDetections {
		ballFrames[i] = boxFromSlice(frame[ballKey])
	}

	return playerFrames, ballFrames, nil
}

//loadActions parses an action sidecar document
func loadActions(path string) (actionDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadActions: Error, got '%v'", err)
	}

	doc := actionDocument{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loadActions: Error, got '%v'", err)
	}

	return doc, nil
}

func boxFromSlice(coords []float64) *analysis.Box {
	if len(coords) != 4 { //wrong arity - treated as an absent detection
		return nil
	}

	return boxOf(coords[0], coords[1], coords[2], coords[3])
}
