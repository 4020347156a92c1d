package analysis

import (
	"sort"

	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

//FrameRecord is one player's observation for a single frame. Immutable once appended.
//DistanceToBall is nil when the ball was not detected that frame
type FrameRecord struct {
	Frame          int
	Action         string
	DistanceToBall *float64
	PlayerBox      *Box
	BallBox        *Box
	IsActive       bool
}

//Accumulator owns the ordered per-frame logs, one per tracked player. It also keeps a
//running (player, action) counter so aggregation does not rescan the full log - the
//counter is a cache of the log and must always equal a rescan, never the source of truth
type Accumulator struct {
	threshold float64
	records   map[string][]FrameRecord
	counts    map[string]map[string]int
}

//NewAccumulator returns an empty accumulator using given possession distance threshold
func NewAccumulator(threshold float64) *Accumulator {
	return &Accumulator{
		threshold: threshold,
		records:   make(map[string][]FrameRecord),
		counts:    make(map[string]map[string]int),
	}
}

//Record appends one immutable per-frame record for given player. Callers must call it
//at most once per (player, frame) pair and in increasing frame order.
//Absent or malformed boxes degrade to "no data": the distance stays nil and the record
//is still appended so frame-count based statistics stay intact
func (a *Accumulator) Record(playerID string, frame int, box *Box, action string, ballBox *Box) {
	var dist *float64
	if d, ok := CenterDistance(box, ballBox); ok {
		dist = &d
	}

	if !box.Valid() {
		box = nil
	}
	if !ballBox.Valid() {
		ballBox = nil
	}

	a.records[playerID] = append(a.records[playerID], FrameRecord{
		Frame:          frame,
		Action:         action,
		DistanceToBall: dist,
		PlayerBox:      box,
		BallBox:        ballBox,
		IsActive:       dist != nil && *dist <= a.threshold,
	})

	a.count(playerID, action)
}

//RecordNoPlayers records the sentinel entry for a frame where the tracker found no
//players at all, preserving total-frame accounting without touching any player's log
func (a *Accumulator) RecordNoPlayers(frame int, ballBox *Box) {
	if !ballBox.Valid() {
		ballBox = nil
	}

	a.records[utils.NoPlayerID] = append(a.records[utils.NoPlayerID], FrameRecord{
		Frame:   frame,
		Action:  utils.ActionNone,
		BallBox: ballBox,
	})

	a.count(utils.NoPlayerID, utils.ActionNone)
}

//Records returns the ordered per-frame log for given player. The returned slice is the
//accumulator's own - callers must not mutate it
func (a *Accumulator) Records(playerID string) []FrameRecord {
	return a.records[playerID]
}

//ActionCounts returns a copy of the running (action -> frequency) counter for given player
func (a *Accumulator) ActionCounts(playerID string) map[string]int {
	counts := make(map[string]int, len(a.counts[playerID]))
	for action, c := range a.counts[playerID] {
		counts[action] = c
	}

	return counts
}

//PlayerIDs returns every tracked ID with at least one record, sorted, including the
//reserved no-player bucket if it was ever used
func (a *Accumulator) PlayerIDs() []string {
	ids := make([]string, 0, len(a.records))
	for id := range a.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (a *Accumulator) count(playerID, action string) {
	if _, ok := a.counts[playerID]; !ok {
		a.counts[playerID] = make(map[string]int)
	}
	a.counts[playerID][action]++
}
