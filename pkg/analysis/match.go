package analysis

import "sort"

//Observation is one player's detection and classified action for a single frame
type Observation struct {
	Box    *Box
	Action string
}

//Match walks a complete, pre-computed detection/ action sequence one frame at a time
//and owns all accumulated state. Processing is single threaded: frames must be fed in
//increasing frame-index order, once each
type Match struct {
	cfg        Config
	acc        *Accumulator
	ballBoxes  []*Box
	positions  map[string][]*Point
	possession map[string]int
	frames     int
}

//NewMatch returns an empty match using given capture parameters. Zero-valued parameters
//fall back to the conventional defaults
func NewMatch(cfg Config) *Match {
	def := DefaultConfig()
	if cfg.DistanceThreshold == 0 {
		cfg.DistanceThreshold = def.DistanceThreshold
	}
	if cfg.FPS == 0 {
		cfg.FPS = def.FPS
	}
	if cfg.FrameHeight == 0 {
		cfg.FrameHeight = def.FrameHeight
	}
	if len(cfg.PrimaryPlayers) == 0 {
		cfg.PrimaryPlayers = def.PrimaryPlayers
	}

	m := &Match{
		cfg:        cfg,
		acc:        NewAccumulator(cfg.DistanceThreshold),
		positions:  make(map[string][]*Point, len(cfg.PrimaryPlayers)),
		possession: make(map[string]int),
	}
	for _, id := range cfg.PrimaryPlayers {
		m.positions[id] = make([]*Point, 0)
	}

	return m
}

//AddFrame consumes one frame's detections and classified actions. Every detected player
//gets a record; a frame with zero detected players gets the no-player sentinel instead.
//Players are visited in sorted ID order so the walk is deterministic
func (m *Match) AddFrame(frame int, players map[string]Observation, ball *Box) {
	m.ballBoxes = append(m.ballBoxes, ball)

	for _, id := range m.cfg.PrimaryPlayers {
		var center *Point
		if obs, ok := players[id]; ok {
			center = obs.Box.Center()
		}
		m.positions[id] = append(m.positions[id], center)
	}

	if len(players) == 0 {
		m.acc.RecordNoPlayers(frame, ball)
	} else {
		ids := make([]string, 0, len(players))
		boxes := make(map[string]*Box, len(players))
		for id := range players {
			ids = append(ids, id)
			boxes[id] = players[id].Box
		}
		sort.Strings(ids)

		for _, id := range ids {
			m.acc.Record(id, frame, players[id].Box, players[id].Action, ball)
		}

		if id, ok := ResolvePossession(boxes, ball, m.cfg.DistanceThreshold); ok {
			m.possession[id]++
		}
	}

	m.frames++
}

//Frames returns the number of frames processed so far
func (m *Match) Frames() int {
	return m.frames
}

//Accumulator exposes the per-frame logs, e.g. for sequence segmentation
func (m *Match) Accumulator() *Accumulator {
	return m.acc
}

//PossessionCounts returns, per player, how many frames that player was the single
//closest to the ball within the possession threshold
func (m *Match) PossessionCounts() map[string]int {
	counts := make(map[string]int, len(m.possession))
	for id, c := range m.possession {
		counts[id] = c
	}

	return counts
}

//BallTrajectory returns the gap-filled ball center track. With zero ball detections in
//the whole match this is all zero positions - callers should treat that as "no ball"
func (m *Match) BallTrajectory() []Point {
	return Centers(InterpolateBoxes(m.ballBoxes))
}

//Report derives the final report. It recomputes everything from the accumulated logs,
//so repeated calls on an unchanged match yield identical reports
func (m *Match) Report() *Report {
	return Assemble(m.acc, m.positions, m.BallTrajectory(), m.frames, m.cfg)
}
