package court

import (
	"math"

	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
)

//Validator rejects detected court keypoints whose pairwise distance ratios do not
//match the canonical court layout. A single badly placed keypoint would otherwise
//corrupt the homography of its frame; ratio checks catch gross mislocalizations
//without needing any absolute calibration, since they are scale and rotation
//invariant. ErrorMargin is the relative ratio error above which a keypoint is
//invalidated.
type Validator struct {
	ErrorMargin float64

	canonical []track.Point
}

//NewValidator returns a Validator against the canonical tactical keypoints
func NewValidator() *Validator {
	return &Validator{
		ErrorMargin: utils.DefaultProportionErrorMargin,
		canonical:   TacticalKeypoints(),
	}
}

//Validate checks every frame independently and returns fresh keypoint slices with
//invalidated entries zeroed out. Frames with fewer than 3 detected keypoints carry
//too little information to cross-check and are passed through unchanged. The
//input is never modified.
func (v *Validator) Validate(frames []track.Keypoints) []track.Keypoints {
	out := make([]track.Keypoints, len(frames))
	for i, kps := range frames {
		out[i] = v.validateFrame(kps)
	}
	return out
}

func (v *Validator) validateFrame(kps track.Keypoints) track.Keypoints {
	out := make(track.Keypoints, len(kps))
	copy(out, kps)

	detected := make([]int, 0, len(kps))
	for i, kp := range kps {
		if kp.Detected() {
			detected = append(detected, i)
		}
	}

	if len(detected) < 3 {
		return out
	}

	invalid := make(map[int]bool)

	for _, i := range detected {
		//pick the first two detected keypoints, other than i, not invalidated so far
		others := make([]int, 0, 2)
		for _, idx := range detected {
			if idx != i && !invalid[idx] {
				others = append(others, idx)
				if len(others) == 2 {
					break
				}
			}
		}
		if len(others) < 2 {
			continue
		}
		j, k := others[0], others[1]

		//ratios are computed from the original detections, invalidation only
		//removes a keypoint from being cross-checked against
		dij := track.Distance(kps[i], kps[j])
		dik := track.Distance(kps[i], kps[k])
		tij := track.Distance(v.canonical[i], v.canonical[j])
		tik := track.Distance(v.canonical[i], v.canonical[k])

		if tij <= 0 || tik <= 0 {
			continue
		}

		propDetected := math.Inf(1)
		if dik > 0 {
			propDetected = dij / dik
		}
		propTactical := tij / tik

		if math.Abs((propDetected-propTactical)/propTactical) > v.ErrorMargin {
			out[i] = track.Point{}
			invalid[i] = true
		}
	}

	return out
}
