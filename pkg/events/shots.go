//Package events derives discrete game events from the per-frame possession and
//ball trajectory streams: shot attempts with made/missed outcomes, passes and
//interceptions.
package events

import (
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
)

//Outcome is the resolution of a shot attempt
type Outcome int

const (
	OutcomeUnresolved Outcome = iota
	OutcomeMade
	OutcomeMissed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMade:
		return "made"
	case OutcomeMissed:
		return "missed"
	default:
		return "unresolved"
	}
}

//ShotEvent is one detected shot attempt. Frame is the trigger frame, Team the
//shooter's team. Outcome is set once during the resolution window and never
//revisited afterwards.
type ShotEvent struct {
	Frame   int
	Team    int
	Outcome Outcome
}

//ShotDetector flags upward ball trajectory spikes as shot attempts. A cooldown
//keeps one continuous upward movement from being counted as several events, and
//the bounded lookback/resolution windows make the detector robust to momentary
//detection gaps without any trajectory modelling.
type ShotDetector struct {
	//UpwardThreshold is the minimum decrease of the ball center's y coordinate
	//over LookbackFrames that counts as a shot (image y grows downward)
	UpwardThreshold float64
	//CooldownFrames is the minimum gap between two shot events
	CooldownFrames int
	//ScoringZoneRatio is the fraction of the frame height, from the top, whose
	//crossing by the ball resolves an attempt as made
	ScoringZoneRatio float64
	//LookbackFrames is how far back the trigger compares the ball's height
	LookbackFrames int
	//ResolutionWindow is how many frames after the trigger the detector watches
	//for a scoring zone crossing before calling the attempt missed
	ResolutionWindow int
	//PossessionLookback is how many recent frames are scanned to attribute the
	//shot to the last possessing player's team
	PossessionLookback int
}

//NewShotDetector returns a ShotDetector with the default thresholds
func NewShotDetector() *ShotDetector {
	return &ShotDetector{
		UpwardThreshold:    utils.DefaultUpwardThreshold,
		CooldownFrames:     utils.DefaultShotCooldownFrames,
		ScoringZoneRatio:   utils.DefaultScoringZoneRatio,
		LookbackFrames:     utils.DefaultLookbackFrames,
		ResolutionWindow:   utils.DefaultResolutionWindow,
		PossessionLookback: utils.DefaultPossessionLookback,
	}
}

//Detect runs a single forward pass over the frames and returns the shot events
//in frame order. Missing ball detections, missing possession data or a missing
//team assignment at the relevant frames suppress the decision for that frame,
//they are never errors.
func (d *ShotDetector) Detect(ball track.BallStream, possession []int, teams []track.TeamAssignment, frameHeight int) []ShotEvent {
	events := make([]ShotEvent, 0)

	scoringZoneY := float64(int(float64(frameHeight) * d.ScoringZoneRatio))
	lastShotFrame := -d.CooldownFrames //permits a shot at frame 0

	for frame := d.LookbackFrames; frame < len(ball); frame++ {
		if frame-lastShotFrame < d.CooldownFrames {
			continue
		}

		currentY, ok := ballCenterY(ball, frame)
		if !ok {
			continue
		}
		pastY, ok := ballCenterY(ball, frame-d.LookbackFrames)
		if !ok {
			continue
		}

		if pastY-currentY < d.UpwardThreshold { //positive means the ball moved up
			continue
		}

		_, team := d.findRecentPossessor(possession, teams, frame)
		if team == utils.NoTeam {
			continue //nobody to attribute the attempt to
		}

		event := ShotEvent{Frame: frame, Team: team, Outcome: OutcomeMissed}
		lastShotFrame = frame

		resolveEnd := frame + d.ResolutionWindow
		if resolveEnd > len(ball) {
			resolveEnd = len(ball)
		}
		for rf := frame + 1; rf < resolveEnd; rf++ {
			if y, ok := ballCenterY(ball, rf); ok && y < scoringZoneY {
				event.Outcome = OutcomeMade
				break
			}
		}

		events = append(events, event)
	}

	return events
}

//findRecentPossessor scans backward for the most recent frame with a known
//possessor whose team is known. Possessors without a team assignment are
//skipped and the scan continues to earlier frames.
func (d *ShotDetector) findRecentPossessor(possession []int, teams []track.TeamAssignment, frame int) (int, int) {
	start := frame - d.PossessionLookback
	if start < 0 {
		start = 0
	}

	for f := frame; f >= start; f-- {
		if f >= len(possession) {
			continue
		}
		pid := possession[f]
		if pid == utils.NoPlayer {
			continue
		}
		if f < len(teams) {
			if team, ok := teams[f][pid]; ok && team != utils.NoTeam {
				return pid, team
			}
		}
	}

	return utils.NoPlayer, utils.NoTeam
}

func ballCenterY(ball track.BallStream, frame int) (float64, bool) {
	if frame < 0 || frame >= len(ball) || ball[frame] == nil {
		return 0, false
	}
	return ball[frame].Center().Y, true
}
