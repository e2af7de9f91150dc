package events

import (
	"testing"

	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
)

//teamsFor repeats the given player to team assignment for every frame
func teamsFor(frames int, assignment track.TeamAssignment) []track.TeamAssignment {
	teams := make([]track.TeamAssignment, frames)
	for i := range teams {
		teams[i] = assignment
	}
	return teams
}

func TestDetectPassesSameTeamHandover(t *testing.T) {
	possession := []int{4, 4, 7, 7}
	teams := teamsFor(len(possession), track.TeamAssignment{4: utils.TeamOneID, 7: utils.TeamOneID})

	passes := NewPassDetector().DetectPasses(possession, teams)

	if len(passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(passes))
	}
	if passes[0].Frame != 2 || passes[0].Team != utils.TeamOneID {
		t.Errorf("pass = %+v, want frame 2, team %d", passes[0], utils.TeamOneID)
	}
}

func TestDetectPassesAcrossPossessionGap(t *testing.T) {
	//ball in flight between the two holders
	possession := []int{4, utils.NoPlayer, utils.NoPlayer, 7}
	teams := teamsFor(len(possession), track.TeamAssignment{4: utils.TeamOneID, 7: utils.TeamOneID})

	passes := NewPassDetector().DetectPasses(possession, teams)

	if len(passes) != 1 {
		t.Fatalf("got %d passes, want 1", len(passes))
	}
	if passes[0].Frame != 3 {
		t.Errorf("pass frame = %d, want 3", passes[0].Frame)
	}
}

func TestDetectPassesIgnoresCrossTeamHandover(t *testing.T) {
	possession := []int{4, 9}
	teams := teamsFor(len(possession), track.TeamAssignment{4: utils.TeamOneID, 9: utils.TeamTwoID})

	if passes := NewPassDetector().DetectPasses(possession, teams); len(passes) != 0 {
		t.Errorf("got %d passes, want 0 for a cross-team handover", len(passes))
	}
}

func TestDetectInterceptionsCreditsGainingTeam(t *testing.T) {
	possession := []int{4, 4, 9, 9}
	teams := teamsFor(len(possession), track.TeamAssignment{4: utils.TeamOneID, 9: utils.TeamTwoID})

	interceptions := NewPassDetector().DetectInterceptions(possession, teams)

	if len(interceptions) != 1 {
		t.Fatalf("got %d interceptions, want 1", len(interceptions))
	}
	if interceptions[0].Frame != 2 || interceptions[0].Team != utils.TeamTwoID {
		t.Errorf("interception = %+v, want frame 2, team %d", interceptions[0], utils.TeamTwoID)
	}
}

func TestDetectInterceptionsIgnoresSameTeamHandover(t *testing.T) {
	possession := []int{4, 7}
	teams := teamsFor(len(possession), track.TeamAssignment{4: utils.TeamOneID, 7: utils.TeamOneID})

	if got := NewPassDetector().DetectInterceptions(possession, teams); len(got) != 0 {
		t.Errorf("got %d interceptions, want 0 for a same-team handover", len(got))
	}
}

func TestHandoverWithUnknownTeamSkipped(t *testing.T) {
	possession := []int{4, 7}
	teams := teamsFor(len(possession), track.TeamAssignment{4: utils.TeamOneID}) //7 unassigned

	d := NewPassDetector()
	if got := d.DetectPasses(possession, teams); len(got) != 0 {
		t.Errorf("got %d passes, want 0 when the receiver's team is unknown", len(got))
	}
	if got := d.DetectInterceptions(possession, teams); len(got) != 0 {
		t.Errorf("got %d interceptions, want 0 when the receiver's team is unknown", len(got))
	}
}

func TestSameHolderProducesNoEvents(t *testing.T) {
	possession := []int{4, 4, utils.NoPlayer, 4}
	teams := teamsFor(len(possession), track.TeamAssignment{4: utils.TeamOneID})

	d := NewPassDetector()
	if got := d.DetectPasses(possession, teams); len(got) != 0 {
		t.Errorf("got %d passes, want 0 when possession never changes hands", len(got))
	}
	if got := d.DetectInterceptions(possession, teams); len(got) != 0 {
		t.Errorf("got %d interceptions, want 0 when possession never changes hands", len(got))
	}
}
