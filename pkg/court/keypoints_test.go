package court

import (
	"testing"

	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
)

func TestTacticalKeypointsValues(t *testing.T) {
	want := []track.Point{
		{X: 0, Y: 0}, {X: 0, Y: 9}, {X: 0, Y: 55}, {X: 0, Y: 107}, {X: 0, Y: 151}, {X: 0, Y: 161},
		{X: 150, Y: 161}, {X: 150, Y: 0},
		{X: 62, Y: 55}, {X: 62, Y: 107},
		{X: 300, Y: 161}, {X: 300, Y: 151}, {X: 300, Y: 107}, {X: 300, Y: 55}, {X: 300, Y: 9}, {X: 300, Y: 0},
		{X: 237, Y: 55}, {X: 237, Y: 107},
	}

	got := TacticalKeypoints()
	if len(got) != len(want) {
		t.Fatalf("got %d keypoints, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keypoint %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTacticalKeypointsReturnsCopy(t *testing.T) {
	first := TacticalKeypoints()
	first[0] = track.Point{X: 999, Y: 999}

	second := TacticalKeypoints()
	if second[0].X == 999 {
		t.Error("TacticalKeypoints exposes shared state")
	}
}
