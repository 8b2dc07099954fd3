package harmonica

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Color interpolates between two endpoint colors in CIE-Lab space.
type Color struct {
	from     colorful.Color
	to       colorful.Color
	progress Float
}

// NewColor creates a Color resting on from.
func NewColor(from, to colorful.Color, opts ...Option) Color {
	return Color{from: from, to: to, progress: NewFloat(0, opts...)}
}

// SetActive animates towards to when active, towards from otherwise.
func (c *Color) SetActive(active bool) {
	if active {
		c.progress.SetTarget(1)
		return
	}
	c.progress.SetTarget(0)
}

// Active reports which endpoint the color is heading towards.
func (c Color) Active() bool { return c.progress.Target() == 1 }

// Step advances one frame. See Float.Step.
func (c *Color) Step() bool { return c.progress.Step() }

// Settled reports whether the color rests on an endpoint.
func (c Color) Settled() bool { return c.progress.Settled() }

// Interval returns the time between frames.
func (c Color) Interval() time.Duration { return c.progress.Interval() }

// Value returns the current color. Endpoints are returned exactly.
func (c Color) Value() colorful.Color {
	p := c.progress.Value()
	switch {
	case p <= 0:
		return c.from
	case p >= 1:
		return c.to
	}
	return c.from.BlendLab(c.to, p).Clamped()
}

// Hex returns the current color as #rrggbb.
func (c Color) Hex() string { return c.Value().Hex() }
