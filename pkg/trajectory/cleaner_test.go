package trajectory

import (
	"testing"

	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
)

//boxAt builds a small ball box whose top-left corner is at (x, y)
func boxAt(x, y float64) *track.BoundingBox {
	return &track.BoundingBox{X1: x, Y1: y, X2: x + 10, Y2: y + 10}
}

func TestRemoveWrongDetectionsDiscardsJump(t *testing.T) {
	//a 1000 px jump in one frame, surrounded by consistent small motion
	ball := track.BallStream{
		boxAt(0, 0),
		boxAt(1000, 1000),
		boxAt(10, 10),
		boxAt(20, 20),
	}

	out := NewCleaner().removeWrongDetections(ball)

	if out[1] != nil {
		t.Errorf("jump frame not discarded, got %+v", out[1])
	}
	if out[0] == nil || out[2] == nil || out[3] == nil {
		t.Errorf("consistent frames must survive: %+v", out)
	}
	if ball[1] == nil {
		t.Error("input stream was mutated")
	}
}

func TestRemoveWrongDetectionsGapScalesThreshold(t *testing.T) {
	//45 px of motion over a 2 frame gap is within 25 px/frame
	ball := track.BallStream{
		boxAt(0, 0),
		nil,
		boxAt(45, 0),
	}

	out := NewCleaner().removeWrongDetections(ball)

	if out[2] == nil {
		t.Error("detection within the gap-scaled threshold was discarded")
	}
}

func TestCleanInterpolatesInteriorGap(t *testing.T) {
	ball := track.BallStream{
		boxAt(0, 0),
		nil,
		nil,
		boxAt(30, 60),
	}

	out := NewCleaner().Clean(ball)

	if len(out) != len(ball) {
		t.Fatalf("length changed: got %d, want %d", len(out), len(ball))
	}
	for i, b := range out {
		if b == nil {
			t.Fatalf("frame %d still empty after interpolation", i)
		}
	}

	if out[1].X1 != 10 || out[1].Y1 != 20 || out[2].X1 != 20 || out[2].Y1 != 40 {
		t.Errorf("interpolated corners = (%v,%v), (%v,%v), want (10,20), (20,40)",
			out[1].X1, out[1].Y1, out[2].X1, out[2].Y1)
	}

	//every interpolated coordinate lies between its flanking valid samples
	for i := 1; i < 3; i++ {
		if out[i].X1 < out[0].X1 || out[i].X1 > out[3].X1 || out[i].Y2 < out[0].Y2 || out[i].Y2 > out[3].Y2 {
			t.Errorf("frame %d interpolated outside flanking samples: %+v", i, out[i])
		}
	}
}

func TestCleanBackfillsLeadingGap(t *testing.T) {
	ball := track.BallStream{nil, nil, boxAt(50, 50), boxAt(55, 55)}

	out := NewCleaner().Clean(ball)

	for i := 0; i < 2; i++ {
		if out[i] == nil || out[i].X1 != 50 || out[i].Y1 != 50 {
			t.Errorf("frame %d not backfilled from first detection: %+v", i, out[i])
		}
	}
}

func TestCleanCarriesTrailingGapForward(t *testing.T) {
	ball := track.BallStream{boxAt(50, 50), boxAt(55, 55), nil, nil}

	out := NewCleaner().Clean(ball)

	for i := 2; i < 4; i++ {
		if out[i] == nil || out[i].X1 != 55 {
			t.Errorf("frame %d not filled from last detection: %+v", i, out[i])
		}
	}
}

func TestCleanAllEmptyStreamUnchanged(t *testing.T) {
	ball := track.BallStream{nil, nil, nil}

	out := NewCleaner().Clean(ball)

	if len(out) != 3 {
		t.Fatalf("length changed: got %d", len(out))
	}
	for i, b := range out {
		if b != nil {
			t.Errorf("frame %d should stay empty in a stream with no detections, got %+v", i, b)
		}
	}
}

func TestCleanDoesNotAliasInput(t *testing.T) {
	ball := track.BallStream{boxAt(0, 0), boxAt(5, 5)}

	out := NewCleaner().Clean(ball)

	out[0].X1 = 999
	if ball[0].X1 == 999 {
		t.Error("cleaned stream aliases the input boxes")
	}
}
