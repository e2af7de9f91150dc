package court

import (
	"errors"
	"fmt"

	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"gocv.io/x/gocv"
)

//ErrGeometry is returned when a homography cannot be built from the given point
//correspondences: mismatched counts, too few points or a degenerate configuration
var ErrGeometry = errors.New("invalid homography geometry")

//Homography is a planar projective transform valid for exactly one frame. The
//camera moves between frames, so a Homography is never reused across frames.
//Callers must Close it once the frame is processed.
type Homography struct {
	m gocv.Mat
}

//NewHomography computes the transform mapping source points onto target points.
//At least 4 correspondences are required for a well-posed homography.
func NewHomography(source, target []track.Point) (*Homography, error) {
	if len(source) != len(target) {
		return nil, fmt.Errorf("%w: %d source points vs %d target points", ErrGeometry, len(source), len(target))
	}
	if len(source) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 point pairs, got %d", ErrGeometry, len(source))
	}

	src := pointsToMat(source)
	defer src.Close()
	dst := pointsToMat(target)
	defer dst.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	m := gocv.FindHomography(src, &dst, gocv.HomograpyMethodAllPoints, 3, &mask, 2000, 0.995)
	if m.Empty() {
		m.Close()
		return nil, fmt.Errorf("%w: homography matrix could not be calculated", ErrGeometry)
	}

	return &Homography{m: m}, nil
}

//Project applies the transform to the given points. An empty input yields an
//empty output.
func (h *Homography) Project(points []track.Point) []track.Point {
	if len(points) == 0 {
		return nil
	}

	src := pointsToMat(points)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	gocv.PerspectiveTransform(src, &dst, h.m)

	out := make([]track.Point, len(points))
	for i := range out {
		out[i] = track.Point{X: dst.GetDoubleAt(i, 0), Y: dst.GetDoubleAt(i, 1)}
	}
	return out
}

//Close releases the underlying matrix
func (h *Homography) Close() {
	h.m.Close()
}

func pointsToMat(points []track.Point) gocv.Mat {
	m := gocv.NewMatWithSize(len(points), 1, gocv.MatTypeCV64FC2)
	for i, p := range points {
		m.SetDoubleAt(i, 0, p.X)
		m.SetDoubleAt(i, 1, p.Y)
	}
	return m
}
