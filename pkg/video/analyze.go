package video

import (
	"image"
	"log"
	"path"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gocv.io/x/gocv"

	"github.com/AymanAbodala/tennis-analysis/pkg/analysis"
	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

//Analyze runs the full pipeline for a previously uploaded video: track players and ball,
//interpolate the ball's gaps, classify every player's action frame by frame and derive
//the match report. The report (JSON) will be saved in the 'reports' directory from the
//configuration file. srcVideoName should include file's extension ('.mp4', etc.)
func Analyze(srcVideoName string) {
	srcVideoPath := path.Join(viper.GetString("directory.source"), srcVideoName)
	reportPath := path.Join(viper.GetString("directory.reports"), strings.Split(srcVideoName, ".")[0]+".json")

	framesStatsC := make(chan []*frameObjects)
	go RunTracker(srcVideoPath, framesStatsC)

	frames := make([]*frameObjects, 0)
	for chunk := range framesStatsC {
		frames = append(frames, chunk...)
	}

	if len(frames) == 0 {
		log.Printf("Analyze: Error, tracker produced no detections for '%s'", srcVideoName)
		return
	}

	cap, err := gocv.VideoCaptureFile(srcVideoPath)
	if err != nil {
		log.Printf("Analyze: Error, got '%v'", err)
		return
	}
	defer cap.Close()

	cfg := matchConfig()
	if cfg.FPS == 0 {
		cfg.FPS = cap.Get(gocv.VideoCaptureFPS)
	}
	if cfg.FrameHeight == 0 {
		cfg.FrameHeight = cap.Get(gocv.VideoCaptureFrameHeight)
	}

	classifier, err := NewClassifier()
	if err != nil {
		log.Printf("Analyze: Error, got '%v'", err)
		return
	}
	defer classifier.Close()

	//the tracker's ball detections are sparse - fill the gaps before the per-frame pass
	rawBall := make([]*analysis.Box, len(frames))
	for i, frameStats := range frames {
		rawBall[i] = frameStats.ballBox()
	}
	ballBoxes := analysis.InterpolateBoxes(rawBall)

	m := analysis.NewMatch(cfg)

	frameMat := gocv.NewMat()
	defer frameMat.Close()

	for i, frameStats := range frames {
		if !cap.Read(&frameMat) { //video ended before the detections did
			break
		}

		width, height := frameMat.Cols(), frameMat.Rows()

		players := make(map[string]analysis.Observation, len(frameStats.playerBoundingBoxes))
		for id, bbox := range frameStats.playerBoundingBoxes {
			fixBbox(bbox, height, width)
			box := boxOf(bbox.Xmin, bbox.Ymin, bbox.Xmax, bbox.Ymax)

			action := utils.ActionUnknown
			if roi, ok := cropRegion(&frameMat, box); ok {
				action = classifier.Classify(strconv.Itoa(id), i, roi)
				roi.Close()
			}

			players[strconv.Itoa(id)] = analysis.Observation{Box: box, Action: action}
		}

		ball := ballBoxes[i]
		m.AddFrame(i, players, &ball)

		if i > 0 && i%100 == 0 {
			log.Printf("Analyze: Processed frame %v/%v of '%s'", i, len(frames), srcVideoName)
		}
	}

	if err := m.Report().Save(reportPath); err != nil {
		log.Printf("Analyze: Error, got '%v'", err)
		return
	}

	log.Printf("Analyze: Report for '%s' saved to '%s'", srcVideoName, reportPath)
}

//AnalyzeDetections derives a match report from previously computed tracking and action
//documents in the 'detections' directory, skipping the video and model stages entirely.
//Players missing an action label for a frame are recorded with "No Action"
func AnalyzeDetections(detectionsName, actionsName string) error {
	detectionsPath := path.Join(viper.GetString("directory.detections"), detectionsName)
	actionsPath := path.Join(viper.GetString("directory.detections"), actionsName)
	reportPath := path.Join(viper.GetString("directory.reports"), strings.Split(detectionsName, ".")[0]+".json")

	playerFrames, ballFrames, err := LoadDetections(detectionsPath)
	if err != nil {
		return err
	}

	actions, err := loadActions(actionsPath)
	if err != nil {
		return err
	}

	ballBoxes := analysis.InterpolateBoxes(ballFrames)

	m := analysis.NewMatch(matchConfig())

	for i, frame := range playerFrames {
		players := make(map[string]analysis.Observation, len(frame))
		for id, box := range frame {
			action := utils.ActionNone
			if labels, ok := actions[id]; ok && i < len(labels) {
				action = labels[i]
			}
			players[id] = analysis.Observation{Box: box, Action: action}
		}

		var ball *analysis.Box
		if i < len(ballBoxes) {
			ball = &ballBoxes[i]
		}

		m.AddFrame(i, players, ball)
	}

	if err := m.Report().Save(reportPath); err != nil {
		return err
	}

	log.Printf("AnalyzeDetections: Report for '%s' saved to '%s'", detectionsName, reportPath)
	return nil
}

//matchConfig reads the capture parameters from the configuration file
func matchConfig() analysis.Config {
	cfg := analysis.Config{
		DistanceThreshold: viper.GetFloat64("analysis.distance_threshold"),
		FPS:               viper.GetFloat64("analysis.fps"),
		FrameHeight:       viper.GetFloat64("analysis.frame_height"),
		PrimaryPlayers:    viper.GetStringSlice("analysis.primary_players"),
	}

	return cfg
}

//cropRegion extracts the player's region from the frame. Degenerate or fully out of
//bounds boxes report failure so the caller records the frame as "Unknown" instead of
//skipping it
func cropRegion(frame *gocv.Mat, box *analysis.Box) (gocv.Mat, bool) {
	if box == nil {
		return gocv.Mat{}, false
	}

	rect := image.Rect(int(box.X1), int(box.Y1), int(box.X2), int(box.Y2))
	rect = rect.Intersect(image.Rect(0, 0, frame.Cols(), frame.Rows()))
	if rect.Empty() {
		return gocv.Mat{}, false
	}

	return frame.Region(rect), true
}

//fixBbox fixes bounding boxes values in case they are out of frame's range
func fixBbox(bbox *playerBoundingBox, frameHeight, frameWidth int) {
	if bbox.Xmin < 0 {
		bbox.Xmin = 0
	} else if bbox.Xmin > float64(frameWidth) {
		bbox.Xmin = float64(frameWidth)
	}

	if bbox.Ymin < 0 {
		bbox.Ymin = 0
	} else if bbox.Ymin > float64(frameHeight) {
		bbox.Ymin = float64(frameHeight)
	}

	if bbox.Xmax < 0 {
		bbox.Xmax = 0
	} else if bbox.Xmax > float64(frameWidth) {
		bbox.Xmax = float64(frameWidth)
	}

	if bbox.Ymax < 0 {
		bbox.Ymax = 0
	} else if bbox.Ymax > float64(frameHeight) {
		bbox.Ymax = float64(frameHeight)
	}
}
