package track

import "math"

//Center returns the middle point of the bounding box
func (b BoundingBox) Center() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: (b.Y1 + b.Y2) / 2}
}

//Width returns the bounding box width in pixels
func (b BoundingBox) Width() float64 {
	return b.X2 - b.X1
}

//FootPosition returns the bottom-center point of the bounding box, used as a
//ground contact proxy when projecting players onto the court plane
func (b BoundingBox) FootPosition() Point {
	return Point{X: (b.X1 + b.X2) / 2, Y: b.Y2}
}

//TopLeft returns the top-left corner of the bounding box
func (b BoundingBox) TopLeft() Point {
	return Point{X: b.X1, Y: b.Y1}
}

//Distance returns the Euclidean distance between two points
func Distance(p1, p2 Point) float64 {
	return math.Sqrt((p1.X-p2.X)*(p1.X-p2.X) + (p1.Y-p2.Y)*(p1.Y-p2.Y))
}

//Detected reports whether a court keypoint was actually located by the detector.
//The detector emits non positive coordinates for keypoints it could not find.
func (p Point) Detected() bool {
	return p.X > 0 && p.Y > 0
}
