package display

import "github.com/automoto/platformer/gamemath"

// Viewport is the visible window over content of size ContentW x ContentH.
type Viewport struct {
	Left, Top          float64
	Width, Height      float64
	ContentW, ContentH float64
}

// Right is the right edge of the visible window.
func (v Viewport) Right() float64 { return v.Left + v.Width }

// Bottom is the bottom edge of the visible window.
func (v Viewport) Bottom() float64 { return v.Top + v.Height }

// Margin is the distance kept between the followed point and the view
// edges, per axis.
type Margin struct {
	X, Y float64
}

// DefaultMargin is one third of the viewport on each axis.
func DefaultMargin(v Viewport) Margin {
	return Margin{X: v.Width / 3, Y: v.Height / 3}
}

// MarginFor resolves a configured margin against v. Zero selects
// DefaultMargin; otherwise m is used on both axes but never more than a
// third of that axis, so the band inside the margins stays open.
func MarginFor(v Viewport, m float64) Margin {
	if m <= 0 {
		return DefaultMargin(v)
	}
	return Margin{X: min(m, v.Width/3), Y: min(m, v.Height/3)}
}

// ScrollIntoView moves the viewport so center lies within margin of its
// edges. The viewport only moves when center leaves the band; the result
// is clamped to the scrollable range.
func ScrollIntoView(v Viewport, center gamemath.Vector, margin Margin) Viewport {
	if center.X < v.Left+margin.X {
		v.Left = center.X - margin.X
	} else if center.X > v.Right()-margin.X {
		v.Left = center.X + margin.X - v.Width
	}
	if center.Y < v.Top+margin.Y {
		v.Top = center.Y - margin.Y
	} else if center.Y > v.Bottom()-margin.Y {
		v.Top = center.Y + margin.Y - v.Height
	}
	v.Left = clampScroll(v.Left, v.ContentW-v.Width)
	v.Top = clampScroll(v.Top, v.ContentH-v.Height)
	return v
}

func clampScroll(offset, max float64) float64 {
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
