package hexa

import "github.com/chewxy/math32"

/*
	Pointy-top orientation throughout.

	The horizontal distance between adjacent hexagon centers is:
	horiz = sqrt(3) * side == 2 * cos(30°) * side.
	The vertical distance between adjacent rows is vert = 3/2 * side.
	Odd rows shift right by half the horizontal interval (brick stagger).
*/

// Point is a position in screen space.
type Point struct {
	X float32
	Y float32
}

// CornerCount is the number of corners of a hexagon.
const CornerCount = 6

// PolarToCartesian resolves the point at the given distance and angle
// (radians, counter-clockwise from +X) from center.
func PolarToCartesian(center Point, radius, angleRad float32) Point {
	return Point{
		X: center.X + radius*math32.Cos(angleRad),
		Y: center.Y + radius*math32.Sin(angleRad),
	}
}

// Vertices returns the six corners of the hexagon centered at center with
// the given side length. Corner k sits at 30° + k*60°. The 30° starting
// angle fixes the pointy-top orientation; rows interlock without gaps only
// because every cell uses the same offset.
func Vertices(center Point, side float32) [CornerCount]Point {
	var corners [CornerCount]Point

	for k := range corners {
		angleDeg := 30.0 + 60.0*float32(k)
		angleRad := math32.Pi / 180.0 * angleDeg
		corners[k] = PolarToCartesian(center, side, angleRad)
	}

	return corners
}

// CellCenter transcribes grid cell (i, j) to the center of its hexagon in
// screen space. Odd rows are shifted right by half a column, so rows j and
// j+2 line up exactly and row j+1 sits in between.
func CellCenter(i, j int, intervalX, intervalY float32) Point {
	return Point{
		X: intervalX * (float32(i) + 0.5*float32(j&1)),
		Y: intervalY * float32(j),
	}
}
