//Package trajectory turns the raw per-frame ball detections into one dense,
//physically plausible trajectory: detections that jumped further than the camera
//geometry allows are dropped, and the remaining gaps are filled by interpolation.
package trajectory

import (
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
)

//Cleaner removes implausible ball detections and fills the resulting gaps.
//DriftPerFrame is the allowed top-left corner displacement in pixels for every
//frame of gap since the last accepted detection.
type Cleaner struct {
	DriftPerFrame float64
}

//NewCleaner returns a Cleaner with the default drift threshold
func NewCleaner() *Cleaner {
	return &Cleaner{DriftPerFrame: utils.DefaultBallDriftPerFrame}
}

//Clean rejects outlier detections and interpolates the gaps. The returned stream
//has the same length as the input and no nil entries, unless the input holds no
//valid detection at all, in which case it is returned as-is and callers must
//handle the fully empty stream themselves. The input is never modified.
func (c *Cleaner) Clean(ball track.BallStream) track.BallStream {
	return interpolate(c.removeWrongDetections(ball))
}

//removeWrongDetections drops any detection whose displacement from the last
//accepted one exceeds DriftPerFrame times the frame gap. The last accepted
//index only advances on accepted detections, so a longer gap legitimately
//allows more motion.
func (c *Cleaner) removeWrongDetections(ball track.BallStream) track.BallStream {
	out := make(track.BallStream, len(ball))
	copy(out, ball)

	lastGood := -1
	for i, box := range out {
		if box == nil {
			continue
		}

		if lastGood == -1 {
			lastGood = i
			continue
		}

		allowed := c.DriftPerFrame * float64(i-lastGood)
		if track.Distance(out[lastGood].TopLeft(), box.TopLeft()) > allowed {
			out[i] = nil
		} else {
			lastGood = i
		}
	}

	return out
}

//interpolate fills every empty frame: interior gaps linearly between the flanking
//detections (each of the 4 box coordinates treated as an independent series),
//the leading gap by copying the first detection backward and the trailing gap by
//carrying the last detection forward.
func interpolate(ball track.BallStream) track.BallStream {
	out := make(track.BallStream, len(ball))

	firstValid, lastValid := -1, -1
	for i, box := range ball {
		if box == nil {
			continue
		}

		b := *box
		out[i] = &b

		if firstValid == -1 {
			firstValid = i
		}

		if lastValid != -1 && i-lastValid > 1 {
			fillGap(out, lastValid, i)
		}
		lastValid = i
	}

	if firstValid == -1 { //no valid detection anywhere, nothing to anchor on
		return out
	}

	for i := 0; i < firstValid; i++ {
		b := *ball[firstValid]
		out[i] = &b
	}

	for i := lastValid + 1; i < len(out); i++ {
		b := *ball[lastValid]
		out[i] = &b
	}

	return out
}

func fillGap(out track.BallStream, from, to int) {
	a, b := out[from], out[to]
	span := float64(to - from)

	for i := from + 1; i < to; i++ {
		t := float64(i-from) / span
		out[i] = &track.BoundingBox{
			X1: a.X1 + (b.X1-a.X1)*t,
			Y1: a.Y1 + (b.Y1-a.Y1)*t,
			X2: a.X2 + (b.X2-a.X2)*t,
			Y2: a.Y2 + (b.Y2-a.Y2)*t,
		}
	}
}
