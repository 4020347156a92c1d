package analysis

import "math"

//Box is an axis-aligned bounding box in detector pixel coordinates.
//A nil *Box means no detection for that frame - absence is a first class value, not a zero box.
type Box struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

//Point is a 2D position in pixel coordinates
type Point struct {
	X float64
	Y float64
}

//Valid reports whether the box is present, has finite coordinates and a positive extent.
//Malformed detector output is treated exactly like an absent detection
func (b *Box) Valid() bool {
	if b == nil {
		return false
	}

	for _, v := range [4]float64{b.X1, b.Y1, b.X2, b.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return b.X2 > b.X1 && b.Y2 > b.Y1
}

//Center returns the center point of the box, or nil for an absent/ malformed box
func (b *Box) Center() *Point {
	if !b.Valid() {
		return nil
	}

	return &Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

//CenterDistance returns the euclidean distance between the centers of two boxes.
//The boolean is false when either box is absent or malformed
func CenterDistance(b1, b2 *Box) (float64, bool) {
	c1 := b1.Center()
	c2 := b2.Center()
	if c1 == nil || c2 == nil {
		return 0, false
	}

	return math.Hypot(c2.X-c1.X, c2.Y-c1.Y), true
}
