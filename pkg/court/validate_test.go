package court

import (
	"testing"

	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
)

//shiftedKeypoints returns the canonical keypoints translated by (dx, dy) so every
//coordinate is strictly positive. Translation keeps all pairwise distance ratios,
//so a validator must accept the whole set.
func shiftedKeypoints(dx, dy float64) track.Keypoints {
	kps := TacticalKeypoints()
	out := make(track.Keypoints, len(kps))
	for i, kp := range kps {
		out[i] = track.Point{X: kp.X + dx, Y: kp.Y + dy}
	}
	return out
}

func TestValidateAcceptsConsistentKeypoints(t *testing.T) {
	frames := []track.Keypoints{shiftedKeypoints(10, 10)}

	out := NewValidator().Validate(frames)

	for i, kp := range out[0] {
		if !kp.Detected() {
			t.Errorf("consistent keypoint %d was invalidated: %+v", i, kp)
		}
	}
}

func TestValidateRejectsMisplacedKeypoint(t *testing.T) {
	kps := shiftedKeypoints(10, 10)
	//keypoint 8 sits in the lane, not on top of the corner keypoints; placing it
	//there breaks its distance ratios against keypoints 0 and 1
	kps[8] = track.Point{X: 10, Y: 20}
	frames := []track.Keypoints{kps}

	out := NewValidator().Validate(frames)

	if out[0][8].Detected() {
		t.Errorf("misplaced keypoint 8 survived validation: %+v", out[0][8])
	}
	for i, kp := range out[0] {
		if i != 8 && !kp.Detected() {
			t.Errorf("consistent keypoint %d was invalidated", i)
		}
	}
	if !frames[0][8].Detected() {
		t.Error("input keypoints were mutated")
	}
}

func TestValidateSkipsFramesWithTooFewKeypoints(t *testing.T) {
	kps := make(track.Keypoints, 18)
	kps[0] = track.Point{X: 500, Y: 500} //wildly inconsistent pair, but uncheckable
	kps[1] = track.Point{X: 1, Y: 1}
	frames := []track.Keypoints{kps}

	out := NewValidator().Validate(frames)

	for i := range kps {
		if out[0][i] != kps[i] {
			t.Errorf("keypoint %d changed in an unvalidatable frame", i)
		}
	}
}

func TestValidateIdempotent(t *testing.T) {
	kps := shiftedKeypoints(10, 10)
	kps[8] = track.Point{X: 10, Y: 20}

	v := NewValidator()
	once := v.Validate([]track.Keypoints{kps})
	twice := v.Validate(once)

	for i := range once[0] {
		if once[0][i] != twice[0][i] {
			t.Errorf("keypoint %d changed on revalidation: %+v vs %+v", i, once[0][i], twice[0][i])
		}
	}
}
