//Package kinematics converts tactical view positions into real-world distance
//and rolling-window speed per player.
package kinematics

import (
	"github.com/jtfarrington/basketball-event-tracking/pkg/court"
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
)

//Calculator converts tactical view pixel displacements into metric distances and
//km/h speeds. CorrectionFactor compensates for systematic projection distortion
//and usually needs recalibration per camera setup. WindowSize is the number of
//recorded per-step distances required before a speed is reported.
type Calculator struct {
	WidthPixels  float64
	HeightPixels float64
	WidthMeters  float64
	HeightMeters float64

	CorrectionFactor float64
	WindowSize       int
}

//NewCalculator returns a Calculator for the canonical tactical view geometry
func NewCalculator() *Calculator {
	return &Calculator{
		WidthPixels:      court.TacticalWidth,
		HeightPixels:     court.TacticalHeight,
		WidthMeters:      court.CourtWidthMeters,
		HeightMeters:     court.CourtHeightMeters,
		CorrectionFactor: utils.DefaultDistanceCorrection,
		WindowSize:       utils.DefaultSpeedWindowSize,
	}
}

//Distances computes, per frame, the metric distance each player moved since the
//frame it was last seen in. Players without a prior position get no entry.
func (c *Calculator) Distances(positions []map[int]track.Point) []map[int]float64 {
	previous := make(map[int]track.Point)
	out := make([]map[int]float64, len(positions))

	for frame, framePositions := range positions {
		out[frame] = map[int]float64{}

		for id, pos := range framePositions {
			if prev, ok := previous[id]; ok {
				out[frame][id] = c.meterDistance(prev, pos)
			}
			previous[id] = pos
		}
	}

	return out
}

//meterDistance converts both positions to meters axis by axis (the two axes have
//different pixel scales) before taking the Euclidean norm, then applies the
//empirical correction factor.
func (c *Calculator) meterDistance(prev, curr track.Point) float64 {
	prevM := track.Point{X: prev.X * c.WidthMeters / c.WidthPixels, Y: prev.Y * c.HeightMeters / c.HeightPixels}
	currM := track.Point{X: curr.X * c.WidthMeters / c.WidthPixels, Y: curr.Y * c.HeightMeters / c.HeightPixels}

	return track.Distance(prevM, currM) * c.CorrectionFactor
}

//Speeds computes each player's km/h speed per frame from the recorded distances,
//looking back over a window of WindowSize*3 frames. Only distances between
//consecutive observed frames are summed; the step count, not the window length,
//decides whether there is enough history. Players with fewer than WindowSize
//recorded steps in the window report speed 0, which is a defined fallback and
//not an error.
func (c *Calculator) Speeds(distances []map[int]float64, fps float64) []map[int]float64 {
	out := make([]map[int]float64, len(distances))

	for frame := range distances {
		out[frame] = map[int]float64{}
		start := frame - c.WindowSize*3 + 1
		if start < 0 {
			start = 0
		}

		for id := range distances[frame] {
			var totalDistance float64
			steps := 0
			seen := false

			for i := start; i <= frame; i++ {
				d, ok := distances[i][id]
				if !ok {
					continue
				}
				if seen {
					totalDistance += d
					steps++
				}
				seen = true
			}

			if steps < c.WindowSize {
				out[frame][id] = 0
				continue
			}

			timeHours := float64(steps) / fps / 3600
			if timeHours > 0 {
				out[frame][id] = totalDistance / 1000 / timeHours
			} else {
				out[frame][id] = 0
			}
		}
	}

	return out
}
