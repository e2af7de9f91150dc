package track

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
	"github.com/spf13/viper"
)

type playerLine struct {
	ID   int
	Xmin float64
	Ymin float64
	Xmax float64
	Ymax float64
}

type objectLine struct {
	Class      int
	Confidence float32
	Xmin       float64
	Ymin       float64
	Xmax       float64
	Ymax       float64
}

type keypointsLine struct {
	Keypoints [][2]float64
}

type possessionLine struct {
	Possessor int
}

type teamsLine struct {
	Teams map[string]int
}

//RunDetector executes the external python detector/tracker for given video and
//collects its standard output into one Clip. The detector prints one "Frame #: n"
//marker per frame followed by JSON lines: person bounding boxes with stable track
//IDs, object bounding boxes (ball, hoop), the 18 court keypoints, the possessing
//player ID and the player to team mapping. Identifiers are assumed stable across
//frames; only the highest confidence ball detection of each frame is kept.
func RunDetector(videoPath string) (*Clip, error) {
	cmd := exec.Command("python3", viper.GetString("directory.detector"), "--video", videoPath)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("RunDetector: Error, got '%v'", err)
	}
	defer stdout.Close()

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("RunDetector: Error, got '%v'", err)
	}

	clip := &Clip{}
	ballConfidence := float32(0)

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "Frame #:") { //new frame, open a slot in every stream
			clip.Players = append(clip.Players, PlayerBoxes{})
			clip.Ball = append(clip.Ball, nil)
			clip.Keypoints = append(clip.Keypoints, emptyKeypoints())
			clip.Teams = append(clip.Teams, TeamAssignment{})
			clip.Possession = append(clip.Possession, utils.NoPlayer)
			ballConfidence = 0
			continue
		}

		if line == "EOF" {
			break
		}

		if strings.Contains(line, "FPS: ") { //this is a log print, skip it
			continue
		}

		if clip.Len() == 0 { //no frame marker seen yet, ignore stray output
			continue
		}
		frame := clip.Len() - 1

		if strings.Contains(line, "{\"ID\":") {
			p := playerLine{}
			if err := json.Unmarshal(scanner.Bytes(), &p); err == nil {
				clip.Players[frame][p.ID] = BoundingBox{X1: p.Xmin, Y1: p.Ymin, X2: p.Xmax, Y2: p.Ymax}
			} else {
				log.Printf("RunDetector: Error, got '%v'", err)
			}
			continue
		}

		if strings.Contains(line, "{\"Class\":") {
			obj := objectLine{}
			if err := json.Unmarshal(scanner.Bytes(), &obj); err == nil {
				if obj.Class == utils.BallClass && obj.Confidence > ballConfidence {
					clip.Ball[frame] = &BoundingBox{X1: obj.Xmin, Y1: obj.Ymin, X2: obj.Xmax, Y2: obj.Ymax}
					ballConfidence = obj.Confidence
				}
			} else {
				log.Printf("RunDetector: Error, got '%v'", err)
			}
			continue
		}

		if strings.Contains(line, "{\"Keypoints\":") {
			kps := keypointsLine{}
			if err := json.Unmarshal(scanner.Bytes(), &kps); err == nil {
				for i, kp := range kps.Keypoints {
					if i >= utils.CourtKeypointsNum {
						break
					}
					clip.Keypoints[frame][i] = Point{X: kp[0], Y: kp[1]}
				}
			} else {
				log.Printf("RunDetector: Error, got '%v'", err)
			}
			continue
		}

		if strings.Contains(line, "{\"Possessor\":") {
			pos := possessionLine{Possessor: utils.NoPlayer}
			if err := json.Unmarshal(scanner.Bytes(), &pos); err == nil {
				clip.Possession[frame] = pos.Possessor
			} else {
				log.Printf("RunDetector: Error, got '%v'", err)
			}
			continue
		}

		if strings.Contains(line, "{\"Teams\":") {
			t := teamsLine{}
			if err := json.Unmarshal(scanner.Bytes(), &t); err == nil {
				for id, team := range t.Teams {
					if idInt, err := strconv.Atoi(id); err == nil {
						clip.Teams[frame][idInt] = team
					}
				}
			} else {
				log.Printf("RunDetector: Error, got '%v'", err)
			}
			continue
		}
	}

	if err := cmd.Wait(); err != nil {
		return nil, fmt.Errorf("RunDetector: Error waiting python's process, got '%v'", err)
	}

	return clip, nil
}

func emptyKeypoints() Keypoints {
	return make(Keypoints, utils.CourtKeypointsNum)
}
