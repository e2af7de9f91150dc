package events

import (
	"testing"

	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
)

const frameHeight = 1000

//ballAtY builds a ball stream whose center y follows the given sequence
func ballAtY(ys ...float64) track.BallStream {
	ball := make(track.BallStream, len(ys))
	for i, y := range ys {
		ball[i] = &track.BoundingBox{X1: 100, Y1: y - 10, X2: 120, Y2: y + 10}
	}
	return ball
}

//flatThen returns n copies of y followed by the given tail
func flatThen(y float64, n int, tail ...float64) []float64 {
	ys := make([]float64, 0, n+len(tail))
	for i := 0; i < n; i++ {
		ys = append(ys, y)
	}
	return append(ys, tail...)
}

//possessionFixture gives player 3 (team 1) the ball at frame 5 and nobody afterwards
func possessionFixture(frames int) ([]int, []track.TeamAssignment) {
	possession := make([]int, frames)
	teams := make([]track.TeamAssignment, frames)
	for i := range possession {
		possession[i] = utils.NoPlayer
		teams[i] = track.TeamAssignment{3: utils.TeamOneID}
	}
	possession[5] = 3
	return possession, teams
}

func TestDetectTriggersOnUpwardSpike(t *testing.T) {
	//y drops from 300 to 250 between frames 0 and 8: an upward movement of
	//50 px over the 8 frame lookback, above the 40 px threshold
	ball := ballAtY(flatThen(300, 8, 250)...)
	possession, teams := possessionFixture(len(ball))

	shots := NewShotDetector().Detect(ball, possession, teams, frameHeight)

	if len(shots) != 1 {
		t.Fatalf("got %d shots, want 1", len(shots))
	}
	if shots[0].Frame != 8 {
		t.Errorf("shot frame = %d, want 8", shots[0].Frame)
	}
	if shots[0].Team != utils.TeamOneID {
		t.Errorf("shot team = %d, want %d", shots[0].Team, utils.TeamOneID)
	}
	if shots[0].Outcome != OutcomeMissed {
		t.Errorf("shot outcome = %v, want missed (ball never entered the scoring zone)", shots[0].Outcome)
	}
}

func TestDetectBelowThresholdIgnored(t *testing.T) {
	ball := ballAtY(flatThen(300, 8, 261)...) //39 px, just under the threshold
	possession, teams := possessionFixture(len(ball))

	shots := NewShotDetector().Detect(ball, possession, teams, frameHeight)

	if len(shots) != 0 {
		t.Errorf("got %d shots, want 0", len(shots))
	}
}

func TestDetectResolvesMadeShot(t *testing.T) {
	//after the frame 8 trigger the ball crosses into the top quarter
	//(y < 0.25 * 1000 = 250) within the resolution window
	ys := flatThen(300, 8, 250, 240, 200, 100)
	ball := ballAtY(ys...)
	possession, teams := possessionFixture(len(ball))

	shots := NewShotDetector().Detect(ball, possession, teams, frameHeight)

	if len(shots) != 1 {
		t.Fatalf("got %d shots, want 1", len(shots))
	}
	if shots[0].Outcome != OutcomeMade {
		t.Errorf("shot outcome = %v, want made", shots[0].Outcome)
	}
}

func TestDetectCooldownSuppressesSecondSpike(t *testing.T) {
	//identical spikes at frames 8 and 20; the second falls inside the 30 frame cooldown
	ys := flatThen(300, 8, 250)               //spike at frame 8
	ys = append(ys, 300, 300, 300)            //frames 9-11
	ys = append(ys, flatThen(300, 8, 250)...) //frames 12-19 flat, spike at frame 20
	ball := ballAtY(ys...)
	possession, teams := possessionFixture(len(ball))

	shots := NewShotDetector().Detect(ball, possession, teams, frameHeight)

	if len(shots) != 1 {
		t.Fatalf("got %d shots, want 1 (second spike inside cooldown)", len(shots))
	}
	if shots[0].Frame != 8 {
		t.Errorf("shot frame = %d, want 8", shots[0].Frame)
	}
}

func TestDetectUnattributableShotSkipped(t *testing.T) {
	ball := ballAtY(flatThen(300, 8, 250)...)

	//nobody held the ball within the possession lookback
	possession := make([]int, len(ball))
	teams := make([]track.TeamAssignment, len(ball))
	for i := range possession {
		possession[i] = utils.NoPlayer
		teams[i] = track.TeamAssignment{}
	}

	shots := NewShotDetector().Detect(ball, possession, teams, frameHeight)

	if len(shots) != 0 {
		t.Errorf("got %d shots, want 0 (no team to attribute)", len(shots))
	}
}

func TestDetectMissingBallSamplesSuppress(t *testing.T) {
	ball := ballAtY(flatThen(300, 8, 250)...)
	ball[0] = nil //lookback sample missing at the trigger frame
	possession, teams := possessionFixture(len(ball))

	shots := NewShotDetector().Detect(ball, possession, teams, frameHeight)

	if len(shots) != 0 {
		t.Errorf("got %d shots, want 0 (lookback sample missing)", len(shots))
	}
}

func TestFindRecentPossessorSkipsTeamlessHolder(t *testing.T) {
	d := NewShotDetector()

	possession := []int{utils.NoPlayer, 4, utils.NoPlayer, 9, utils.NoPlayer}
	teams := []track.TeamAssignment{
		{}, {4: utils.TeamTwoID}, {}, {}, {}, //player 9 has no team assignment
	}

	pid, team := d.findRecentPossessor(possession, teams, 4)
	if pid != 4 || team != utils.TeamTwoID {
		t.Errorf("possessor = (%d, %d), want (4, %d): scan must continue past the teamless holder", pid, team, utils.TeamTwoID)
	}
}
