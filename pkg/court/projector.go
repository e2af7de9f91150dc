package court

import (
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
)

//minCorrespondences is the minimum number of matched keypoints for a reliable
//per-frame homography
const minCorrespondences = 4

//Projector places tracked players onto the tactical view, one homography per
//frame, computed from the validated court keypoints of that frame.
type Projector struct {
	canonical []track.Point
}

//NewProjector returns a Projector against the canonical tactical keypoints
func NewProjector() *Projector {
	return &Projector{canonical: TacticalKeypoints()}
}

//PlayersToTactical projects every player's foot position into tactical view
//coordinates, frame by frame. Frames with fewer than 4 detected keypoints, or
//whose homography cannot be computed, produce an empty position map and never
//interrupt the remaining frames. Projected positions landing outside the
//tactical canvas indicate a projection failure for that player and are dropped.
func (p *Projector) PlayersToTactical(keypoints []track.Keypoints, players []track.PlayerBoxes) []map[int]track.Point {
	out := make([]map[int]track.Point, len(players))
	for frame := range players {
		out[frame] = map[int]track.Point{}
		if frame >= len(keypoints) {
			continue
		}
		p.projectFrame(keypoints[frame], players[frame], out[frame])
	}
	return out
}

func (p *Projector) projectFrame(kps track.Keypoints, boxes track.PlayerBoxes, positions map[int]track.Point) {
	source := make([]track.Point, 0, len(kps))
	target := make([]track.Point, 0, len(kps))
	for i, kp := range kps {
		if kp.Detected() {
			source = append(source, kp)
			target = append(target, p.canonical[i])
		}
	}

	if len(source) < minCorrespondences || len(boxes) == 0 {
		return
	}

	h, err := NewHomography(source, target)
	if err != nil { //degenerate keypoint configuration, leave the frame empty
		return
	}
	defer h.Close()

	ids := make([]int, 0, len(boxes))
	feet := make([]track.Point, 0, len(boxes))
	for id, box := range boxes {
		ids = append(ids, id)
		feet = append(feet, box.FootPosition())
	}

	for i, pos := range h.Project(feet) {
		if pos.X >= 0 && pos.X <= TacticalWidth && pos.Y >= 0 && pos.Y <= TacticalHeight {
			positions[ids[i]] = pos
		}
	}
}
