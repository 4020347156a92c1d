package video

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gocv.io/x/gocv"

	"github.com/AymanAbodala/tennis-analysis/pkg/utils"
)

//Classifier labels a cropped player region with a tennis action. Implementations must
//return "Unknown" on internal failure rather than raising to the caller
type Classifier interface {
	Classify(playerID string, frame int, crop gocv.Mat) string
	Close() error
}

//pythonClassifier drives the action recognition model process over a line protocol:
//one request line "playerID;frame;base64 JPEG" on stdin, one "playerID;frame;label"
//line back on stdout
type pythonClassifier struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	scanner *bufio.Scanner
}

//NewClassifier starts the python action recognition process configured under
//'classifier' in the config file
func NewClassifier() (Classifier, error) {
	cmd := exec.Command("python3", viper.GetString("classifier.script"), "--model", viper.GetString("classifier.model"))

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("NewClassifier: Error, got '%v'", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("NewClassifier: Error, got '%v'", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("NewClassifier: Error executing python's code, got '%v'", err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &pythonClassifier{cmd: cmd, stdin: stdin, scanner: scanner}, nil
}

//Classify returns the model's label for given crop. Any failure - an empty crop, a
//broken pipe, a reply outside the label set - yields "Unknown" so the caller can still
//record the frame
func (c *pythonClassifier) Classify(playerID string, frame int, crop gocv.Mat) string {
	if crop.Empty() {
		return utils.ActionUnknown
	}

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, crop)
	if err != nil {
		log.Printf("Classify: Error encoding crop, got '%v'", err)
		return utils.ActionUnknown
	}
	defer buf.Close()

	line := playerID + ";" + strconv.Itoa(frame) + ";" + base64.StdEncoding.EncodeToString(buf.GetBytes()) + "\n"
	if _, err := io.WriteString(c.stdin, line); err != nil {
		log.Printf("Classify: Error writing to model's process, got '%v'", err)
		return utils.ActionUnknown
	}

	if !c.scanner.Scan() {
		log.Printf("Classify: Error, model's process closed its output")
		return utils.ActionUnknown
	}

	splittedLine := strings.Split(c.scanner.Text(), ";")
	if len(splittedLine) != 3 {
		log.Printf("Classify: Error, unexpected reply '%v'", c.scanner.Text())
		return utils.ActionUnknown
	}

	label := splittedLine[2]
	if !utils.InSlice(label, utils.ActionLabels) {
		return utils.ActionUnknown
	}

	return label
}

func (c *pythonClassifier) Close() error {
	c.stdin.Close()
	return c.cmd.Wait()
}
