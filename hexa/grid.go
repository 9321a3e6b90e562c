package hexa

import "github.com/chewxy/math32"

// Side lengths below MinSide degenerate into sub-pixel cells, so resizes
// clamp there.
const (
	MinSide  float32 = 5
	SideStep float32 = 5
)

// Params carries the hexagon side length and the center-to-center spacing
// derived from it. Values are immutable; Resize returns a fresh Params, so
// the intervals can never go stale relative to Side.
type Params struct {
	Side      float32
	IntervalX float32
	IntervalY float32
}

// NewParams derives the grid spacing for a side length. Sides below the
// floor are raised to it.
func NewParams(side float32) Params {
	if side < MinSide {
		side = MinSide
	}
	return Params{
		Side:      side,
		IntervalX: 2 * math32.Cos(math32.Pi/6) * side,
		IntervalY: 1.5 * side,
	}
}

// Resize grows or shrinks the side by one step. Growing is unbounded above;
// shrinking below the floor is a no-op.
func (p Params) Resize(direction int) Params {
	switch {
	case direction > 0:
		return NewParams(p.Side + SideStep)
	case direction < 0 && p.Side-SideStep >= MinSide:
		return NewParams(p.Side - SideStep)
	default:
		return p
	}
}

// GridSize reports how many whole intervals fit across the viewport. Callers
// walk one extra cell in each direction to cover the remainder.
func (p Params) GridSize(viewportW, viewportH float32) (cols, rows int) {
	cols = int(math32.Ceil(viewportW / p.IntervalX))
	rows = int(math32.Ceil(viewportH / p.IntervalY))
	return cols, rows
}
