//Package court maps detected court keypoints onto a canonical top-down tactical
//view of the court and projects player positions into it. The tactical view is a
//fixed 300x161 pixel canvas representing the real 28m x 15m court, with 18
//reference keypoints derived once from the real-world line measurements.
package court

import (
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
)

//Tactical view canvas size in pixels and the real court dimensions it represents
const (
	TacticalWidth  = 300
	TacticalHeight = 161

	CourtWidthMeters  = 28.0
	CourtHeightMeters = 15.0
)

//Distances in meters of the court line intersections along each edge, taken from
//the official court layout: sideline corners, lane line crossings (0.91m and
//14.1m), three point line crossings (5.18m and 10m) and the free-throw line at
//5.79m from the baseline.
const (
	laneLowMeters   = 0.91
	threeLowMeters  = 5.18
	threeHighMeters = 10.0
	laneHighMeters  = 14.1
	freeThrowMeters = 5.79
)

var tacticalKeypoints = buildTacticalKeypoints()

//TacticalKeypoints returns the 18 canonical keypoints on the tactical view canvas.
//A fresh copy is returned so callers can never corrupt the shared reference.
func TacticalKeypoints() []track.Point {
	out := make([]track.Point, len(tacticalKeypoints))
	copy(out, tacticalKeypoints)
	return out
}

//buildTacticalKeypoints derives the canonical keypoints from the court
//measurements. Coordinates are truncated to whole pixels so the list is
//reproducible bit-for-bit from the constants above.
func buildTacticalKeypoints() []track.Point {
	scaleY := func(meters float64) float64 {
		return float64(int(meters / CourtHeightMeters * TacticalHeight))
	}
	scaleX := func(meters float64) float64 {
		return float64(int(meters / CourtWidthMeters * TacticalWidth))
	}

	return []track.Point{
		//left edge, top to bottom
		{X: 0, Y: 0},
		{X: 0, Y: scaleY(laneLowMeters)},
		{X: 0, Y: scaleY(threeLowMeters)},
		{X: 0, Y: scaleY(threeHighMeters)},
		{X: 0, Y: scaleY(laneHighMeters)},
		{X: 0, Y: TacticalHeight},
		//center line endpoints
		{X: TacticalWidth / 2, Y: TacticalHeight},
		{X: TacticalWidth / 2, Y: 0},
		//left free-throw line crossings
		{X: scaleX(freeThrowMeters), Y: scaleY(threeLowMeters)},
		{X: scaleX(freeThrowMeters), Y: scaleY(threeHighMeters)},
		//right edge, bottom to top
		{X: TacticalWidth, Y: TacticalHeight},
		{X: TacticalWidth, Y: scaleY(laneHighMeters)},
		{X: TacticalWidth, Y: scaleY(threeHighMeters)},
		{X: TacticalWidth, Y: scaleY(threeLowMeters)},
		{X: TacticalWidth, Y: scaleY(laneLowMeters)},
		{X: TacticalWidth, Y: 0},
		//right free-throw line crossings
		{X: scaleX(CourtWidthMeters - freeThrowMeters), Y: scaleY(threeLowMeters)},
		{X: scaleX(CourtWidthMeters - freeThrowMeters), Y: scaleY(threeHighMeters)},
	}
}
