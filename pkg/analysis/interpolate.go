package analysis

//InterpolateBoxes fills the gaps in a single entity's per-frame box sequence.
//Interior gaps are filled linearly between the nearest known samples, a leading gap is
//backward-filled with the first known sample and a trailing gap holds the last known one.
//A sequence with zero known samples yields zero-valued boxes for every frame - callers
//must treat an all-unknown input as "no ball present" upstream.
//Inputs of length 0 or 1 are returned unchanged.
func InterpolateBoxes(boxes []*Box) []Box {
	out := make([]Box, len(boxes))
	if len(boxes) <= 1 {
		for i, b := range boxes {
			if b.Valid() {
				out[i] = *b
			}
		}
		return out
	}

	prev := -1 //index of the last known sample seen so far
	for i := 0; i < len(boxes); i++ {
		if !boxes[i].Valid() {
			continue
		}

		if prev == -1 {
			for j := 0; j < i; j++ {
				out[j] = *boxes[i]
			}
		} else if i-prev > 1 {
			for j := prev + 1; j < i; j++ {
				t := float64(j-prev) / float64(i-prev)
				out[j] = lerpBox(*boxes[prev], *boxes[i], t)
			}
		}

		out[i] = *boxes[i]
		prev = i
	}

	if prev == -1 { //no known samples at all
		return out
	}

	for j := prev + 1; j < len(boxes); j++ {
		out[j] = *boxes[prev]
	}

	return out
}

//Centers maps a gap-filled box sequence to its center point trajectory
func Centers(boxes []Box) []Point {
	pts := make([]Point, len(boxes))
	for i := range boxes {
		pts[i] = Point{X: (boxes[i].X1 + boxes[i].X2) / 2, Y: (boxes[i].Y1 + boxes[i].Y2) / 2}
	}

	return pts
}

func lerpBox(a, b Box, t float64) Box {
	return Box{
		X1: a.X1 + (b.X1-a.X1)*t,
		Y1: a.Y1 + (b.Y1-a.Y1)*t,
		X2: a.X2 + (b.X2-a.X2)*t,
		Y2: a.Y2 + (b.Y2-a.Y2)*t,
	}
}
