package video

import (
	"github.com/AymanAbodala/tennis-analysis/pkg/analysis"
	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

type playerBoundingBox struct {
	ID   int
	Xmin float64
	Ymin float64
	Xmax float64
	Ymax float64
}

type objectBoundingBox struct {
	Class      int
	Confidence float32
	Xmin       float64
	Ymin       float64
	Xmax       float64
	Ymax       float64
}

type frameObjects struct {
	frameNumber         int
	playerBoundingBoxes map[int]*playerBoundingBox
	objectBoundingBoxes []*objectBoundingBox
}

func newFrameObjects(frameNum int) *frameObjects {
	x := frameObjects{}
	x.frameNumber = frameNum
	x.playerBoundingBoxes = make(map[int]*playerBoundingBox)
	x.objectBoundingBoxes = make([]*objectBoundingBox, 0)
	return &x
}

//ballBox returns the first ball-class detection of this frame, or nil when the tracker
//reported none
func (f *frameObjects) ballBox() *analysis.Box {
	for _, obj := range f.objectBoundingBoxes {
		if obj.Class == utils.BallClass {
			return boxOf(obj.Xmin, obj.Ymin, obj.Xmax, obj.Ymax)
		}
	}

	return nil
}

//boxOf builds an analysis box, returning nil for degenerate coordinates so malformed
//tracker output is treated as an absent detection
func boxOf(x1, y1, x2, y2 float64) *analysis.Box {
	b := &analysis.Box{X1: x1, Y1: y1, X2: x2, Y2: y2}
	if !b.Valid() {
		return nil
	}

	return b
}
