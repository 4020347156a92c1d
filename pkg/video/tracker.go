package video

import (
	"bufio"
	"encoding/json"
	"log"
	"os/exec"
	"strings"

	"github.com/spf13/viper"
)

//trackerChunkSize is how many frames the tracker reader batches before handing them on
const trackerChunkSize = 64

//RunTracker executes python code that uses YOLO based models in order to detect the two
//players and the ball in each frame and track the players between frames. This function
//listens to python's standard output, saves it in a data structure and every
//trackerChunkSize frames sends the data through a chan to another function to handle it.
//Because this function is the only one who writes to given chan, it will close it before
//it's finishing.
func RunTracker(videoPath string, framesStatsC chan<- []*frameObjects) {
	cmd := exec.Command("python3", viper.GetString("tracker.script"), "--video", videoPath)

	defer func(framesStatsC chan<- []*frameObjects) {
		close(framesStatsC)
	}(framesStatsC)

	framesObjectSlice := make([]*frameObjects, 0)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		log.Printf("RunTracker: Error, got '%v'", err)
		return
	}
	defer stdout.Close()

	if err := cmd.Start(); err != nil {
		log.Printf("RunTracker: Error, got '%v'", err)
		return
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	framesCounter := 0

	for scanner.Scan() {
		if strings.Contains(scanner.Text(), "Frame #:") {
			framesCounter++

			if framesCounter == trackerChunkSize+1 { //scanned a full chunk, pass it on
				framesStatsC <- framesObjectSlice

				//allocate a new slice in order to not touch the chunk sent above
				framesObjectSlice = make([]*frameObjects, 1)
				framesObjectSlice[0] = newFrameObjects(1)
				framesCounter = 1
			} else {
				framesObjectSlice = append(framesObjectSlice, newFrameObjects(framesCounter))
			}

			continue
		}

		if scanner.Text() == "EOF" { //finished to read all frames - send left data and stop
			framesStatsC <- framesObjectSlice
			return
		}

		if strings.Contains(scanner.Text(), "FPS: ") { //this is a log print, skip it
			continue
		}

		if strings.Contains(scanner.Text(), "{\"ID\":") { //it's printing a detected player's data
			p := playerBoundingBox{}
			if err := json.Unmarshal(scanner.Bytes(), &p); err == nil {
				framesObjectSlice[framesCounter-1].playerBoundingBoxes[p.ID] = &p
			} else {
				log.Printf("RunTracker: Error, got '%v'", err)
			}
			continue
		}

		if strings.Contains(scanner.Text(), "{\"Class\":") { //it's printing the ball's data
			obj := objectBoundingBox{}
			if err := json.Unmarshal(scanner.Bytes(), &obj); err == nil {
				framesObjectSlice[framesCounter-1].objectBoundingBoxes = append(framesObjectSlice[framesCounter-1].objectBoundingBoxes, &obj)
			} else {
				log.Printf("RunTracker: Error, got '%v'", err)
			}
			continue
		}
	}

	if err := cmd.Wait(); err != nil {
		log.Printf("RunTracker: Error waiting python's process, got '%v'", err)
		return
	}
}
