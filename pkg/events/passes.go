package events

import (
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
)

//PassEvent is a completed pass: possession moved between two players of Team
type PassEvent struct {
	Frame int
	Team  int
}

//InterceptionEvent is a turnover: possession moved from the other team to Team
type InterceptionEvent struct {
	Frame int
	Team  int
}

//PassDetector derives passes and interceptions from possession handovers. A
//handover between two different players of the same team is a pass; a handover
//across teams is an interception credited to the gaining team. Handovers where
//either player's team is unknown are skipped.
type PassDetector struct{}

//NewPassDetector returns a PassDetector
func NewPassDetector() *PassDetector {
	return &PassDetector{}
}

//DetectPasses returns every same-team possession handover in frame order
func (d *PassDetector) DetectPasses(possession []int, teams []track.TeamAssignment) []PassEvent {
	events := make([]PassEvent, 0)

	d.scanHandovers(possession, teams, func(frame, prevTeam, currTeam int) {
		if prevTeam == currTeam {
			events = append(events, PassEvent{Frame: frame, Team: currTeam})
		}
	})

	return events
}

//DetectInterceptions returns every cross-team possession handover in frame order
func (d *PassDetector) DetectInterceptions(possession []int, teams []track.TeamAssignment) []InterceptionEvent {
	events := make([]InterceptionEvent, 0)

	d.scanHandovers(possession, teams, func(frame, prevTeam, currTeam int) {
		if prevTeam != currTeam {
			events = append(events, InterceptionEvent{Frame: frame, Team: currTeam})
		}
	})

	return events
}

//scanHandovers walks the possession stream and calls emit for every frame where
//the ball changed hands between two players with known teams. The previous
//holder is carried across possession gaps, so a handover is still detected when
//the ball was briefly loose in between.
func (d *PassDetector) scanHandovers(possession []int, teams []track.TeamAssignment, emit func(frame, prevTeam, currTeam int)) {
	prevHolder, prevFrame := utils.NoPlayer, -1

	for frame := 1; frame < len(possession); frame++ {
		if possession[frame-1] != utils.NoPlayer {
			prevHolder = possession[frame-1]
			prevFrame = frame - 1
		}

		current := possession[frame]
		if prevHolder == utils.NoPlayer || current == utils.NoPlayer || current == prevHolder {
			continue
		}

		prevTeam := teamOf(teams, prevFrame, prevHolder)
		currTeam := teamOf(teams, frame, current)
		if prevTeam == utils.NoTeam || currTeam == utils.NoTeam {
			continue
		}

		emit(frame, prevTeam, currTeam)
	}
}

func teamOf(teams []track.TeamAssignment, frame, player int) int {
	if frame < 0 || frame >= len(teams) {
		return utils.NoTeam
	}
	if team, ok := teams[frame][player]; ok {
		return team
	}
	return utils.NoTeam
}
