package track

//BoundingBox is an axis aligned box in image pixels. (X1, Y1) is the top-left corner,
//(X2, Y2) the bottom-right one, y grows downward.
type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

//Point is a 2D point, in image pixels or tactical view pixels depending on context
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

//PlayerBoxes maps a stable track ID to that player's bounding box in one frame.
//A missing key means the player was not detected in that frame.
type PlayerBoxes map[int]BoundingBox

//BallStream holds one entry per frame. A nil entry means no ball detection for that frame.
type BallStream []*BoundingBox

//Keypoints holds the court keypoints of one frame, indexed 0..17. A keypoint whose
//coordinates are both <= 0 was not detected.
type Keypoints []Point

//TeamAssignment maps a player track ID to its team ID in one frame
type TeamAssignment map[int]int

//Clip bundles every per-frame stream produced for one video. All slices are indexed
//by the same 0-based frame axis and always have equal length.
type Clip struct {
	Players    []PlayerBoxes    `json:"players"`
	Ball       BallStream       `json:"ball"`
	Keypoints  []Keypoints      `json:"keypoints"`
	Teams      []TeamAssignment `json:"teams"`
	Possession []int            `json:"possession"`
}

//Len returns the number of frames in the clip
func (c *Clip) Len() int {
	return len(c.Players)
}
