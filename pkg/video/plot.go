package video

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/jtfarrington/basketball-event-tracking/pkg/court"
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
	"gocv.io/x/gocv"
)

var teamOneColor = color.RGBA{255, 0, 0, 0}
var teamTwoColor = color.RGBA{0, 255, 0, 0}
var unknownTeamColor = color.RGBA{255, 255, 255, 0}
var ballColor = color.RGBA{255, 128, 0, 0}
var whiteRGB = color.RGBA{255, 255, 255, 0}
var blackRGB = color.RGBA{0, 0, 0, 0}

//minimap placement and sizing on the output frame
const (
	minimapMarginX = 20
	minimapMarginY = 40
	minimapBorder  = 10
)

func teamColor(teamID int) color.RGBA {
	switch teamID {
	case utils.TeamOneID:
		return teamOneColor
	case utils.TeamTwoID:
		return teamTwoColor
	default:
		return unknownTeamColor
	}
}

//plotPlayerOnFrame plots given player bounding box in its team color and writes
//the track ID and, when known, the current speed above it. The possessing player
//gets a filled marker under the box.
func plotPlayerOnFrame(frame *gocv.Mat, id int, box track.BoundingBox, teamID int, speedKmh float64, hasSpeed bool, possessing bool) {
	rect := image.Rect(int(box.X1), int(box.Y1), int(box.X2), int(box.Y2))
	plotColor := teamColor(teamID)

	gocv.Rectangle(frame, rect, plotColor, 2)

	label := fmt.Sprintf("ID: %d", id)
	if hasSpeed {
		label = fmt.Sprintf("ID: %d %.1fkm/h", id, speedKmh)
	}

	labelPoint := image.Pt(rect.Min.X, rect.Min.Y-5)
	labelBackground := image.Rect(rect.Min.X, labelPoint.Y-15, rect.Min.X+11*len(label), labelPoint.Y+5)
	gocv.Rectangle(frame, labelBackground, plotColor, -1) //thickness -1 == filled rectangle
	gocv.PutText(frame, label, labelPoint, gocv.FontHersheyPlain, 1, whiteRGB, 2)

	if possessing {
		foot := box.FootPosition()
		gocv.Circle(frame, image.Pt(int(foot.X), int(foot.Y)+8), 6, ballColor, -1)
	}
}

//plotBallOnFrame plots the (possibly interpolated) ball bounding box
func plotBallOnFrame(frame *gocv.Mat, box *track.BoundingBox) {
	if box == nil {
		return
	}

	rect := image.Rect(int(box.X1), int(box.Y1), int(box.X2), int(box.Y2))
	gocv.Rectangle(frame, rect, ballColor, 2)
}

//plotTacticalView draws the top-down court minimap in the frame's top-left
//corner with every projected player as a dot in its team color
func plotTacticalView(frame *gocv.Mat, positions map[int]track.Point, teams track.TeamAssignment) {
	origin := image.Pt(minimapMarginX, minimapMarginY)

	background := image.Rect(
		origin.X-minimapBorder, origin.Y-minimapBorder,
		origin.X+court.TacticalWidth+minimapBorder, origin.Y+court.TacticalHeight+minimapBorder,
	)
	gocv.Rectangle(frame, background, blackRGB, -1)
	gocv.Rectangle(frame, image.Rect(origin.X, origin.Y, origin.X+court.TacticalWidth, origin.Y+court.TacticalHeight), whiteRGB, 1)

	//center line
	gocv.Line(frame,
		image.Pt(origin.X+court.TacticalWidth/2, origin.Y),
		image.Pt(origin.X+court.TacticalWidth/2, origin.Y+court.TacticalHeight),
		whiteRGB, 1)

	//stable draw order so overlapping dots flicker less between frames
	ids := make([]int, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		pos := positions[id]
		teamID := utils.NoTeam
		if teams != nil {
			if t, ok := teams[id]; ok {
				teamID = t
			}
		}
		gocv.Circle(frame, image.Pt(origin.X+int(pos.X), origin.Y+int(pos.Y)), 4, teamColor(teamID), -1)
	}
}

//plotEventBanner writes the running event totals in the frame's bottom-left corner
func plotEventBanner(frame *gocv.Mat, lines []string) {
	height := frame.Rows()
	bannerTop := height - 20*len(lines) - 15

	background := image.Rect(10, bannerTop-10, 420, height-10)
	gocv.Rectangle(frame, background, blackRGB, -1)

	for i, line := range lines {
		gocv.PutText(frame, line, image.Pt(20, bannerTop+10+20*i), gocv.FontHersheyPlain, 1.2, whiteRGB, 2)
	}
}

//plotFrameNumber writes the 0-based frame index in the frame's top-right corner
func plotFrameNumber(frame *gocv.Mat, frameNum int) {
	width := frame.Cols()
	gocv.PutText(frame, fmt.Sprintf("Frame: %d", frameNum), image.Pt(width-160, 30), gocv.FontHersheyPlain, 1.2, whiteRGB, 2)
}
