package analysis

//ActionEvent is a maximal run of consecutive frames sharing one action label for one
//player. EndFrame is inclusive. DistanceToBall is the distance at the event's first frame
type ActionEvent struct {
	Action         string
	StartFrame     int
	EndFrame       int
	DistanceToBall *float64
}

//SegmentActions collapses a per-frame log into contiguous action events. A new event
//starts whenever the label differs from the previous record's label, so repeated
//non-adjacent occurrences of the same label produce separate events.
//Pure over its input: re-running it on an unchanged log yields an identical event list
func SegmentActions(records []FrameRecord) []ActionEvent {
	events := make([]ActionEvent, 0)
	for _, rec := range records {
		if n := len(events); n > 0 && events[n-1].Action == rec.Action {
			events[n-1].EndFrame = rec.Frame
			continue
		}

		events = append(events, ActionEvent{
			Action:         rec.Action,
			StartFrame:     rec.Frame,
			EndFrame:       rec.Frame,
			DistanceToBall: rec.DistanceToBall,
		})
	}

	return events
}
