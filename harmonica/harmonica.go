// Package harmonica provides spring-animated properties for the TUI: a
// scalar Float and a two-endpoint Color. Values advance one frame per Step
// and always settle on their target within a bounded number of frames.
package harmonica

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultFPS is the frame rate used to advance animations.
	DefaultFPS = 60
	// DefaultFrequency is the spring's angular frequency. Together with
	// critical damping it settles in roughly a fifth of a second.
	DefaultFrequency = 38.7
	// DefaultDamping is critical damping: no overshoot.
	DefaultDamping = 1.0
	// DefaultMaxDuration bounds every transition.
	DefaultMaxDuration = time.Second

	epsilon = 1e-3
)

type config struct {
	fps         int
	frequency   float64
	damping     float64
	maxDuration time.Duration
}

// Option configures an animated property.
type Option func(*config)

// WithFPS sets the frame rate.
func WithFPS(fps int) Option {
	return func(c *config) {
		if fps > 0 {
			c.fps = fps
		}
	}
}

// WithFrequency sets the spring's angular frequency.
func WithFrequency(f float64) Option {
	return func(c *config) { c.frequency = f }
}

// WithDamping sets the spring's damping ratio.
func WithDamping(d float64) Option {
	return func(c *config) { c.damping = d }
}

// WithMaxDuration bounds how long a single transition may run. The value
// snaps to its target on the last frame.
func WithMaxDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.maxDuration = d
		}
	}
}

// Float is a spring-animated scalar. The zero value is not usable; create
// one with NewFloat.
type Float struct {
	spring    harmonica.Spring
	interval  time.Duration
	maxFrames int

	pos    float64
	vel    float64
	target float64
	frames int
}

// NewFloat creates a settled Float at initial.
func NewFloat(initial float64, opts ...Option) Float {
	cfg := config{
		fps:         DefaultFPS,
		frequency:   DefaultFrequency,
		damping:     DefaultDamping,
		maxDuration: DefaultMaxDuration,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	maxFrames := int(cfg.maxDuration.Seconds() * float64(cfg.fps))
	if maxFrames < 1 {
		maxFrames = 1
	}
	return Float{
		spring:    harmonica.NewSpring(harmonica.FPS(cfg.fps), cfg.frequency, cfg.damping),
		interval:  time.Second / time.Duration(cfg.fps),
		maxFrames: maxFrames,
		pos:       initial,
		target:    initial,
	}
}

// Value returns the current value.
func (f Float) Value() float64 { return f.pos }

// Target returns the value the animation is heading towards.
func (f Float) Target() float64 { return f.target }

// Interval returns the time between frames.
func (f Float) Interval() time.Duration { return f.interval }

// Settled reports whether the value rests on its target.
func (f Float) Settled() bool { return f.pos == f.target && f.vel == 0 }

// SetTarget retargets the animation. Current position and velocity are
// kept, so an in-flight transition turns around smoothly. The frame budget
// restarts.
func (f *Float) SetTarget(target float64) {
	if target == f.target {
		return
	}
	f.target = target
	f.frames = 0
}

// Snap jumps to value without animating.
func (f *Float) Snap(value float64) {
	f.pos, f.vel, f.target, f.frames = value, 0, value, 0
}

// Step advances the animation by one frame. It returns true while the
// value still needs frames and false once it rests on the target.
func (f *Float) Step() bool {
	if f.Settled() {
		return false
	}
	f.frames++
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, f.target)
	if f.frames >= f.maxFrames || (math.Abs(f.pos-f.target) < epsilon && math.Abs(f.vel) < epsilon) {
		f.pos, f.vel = f.target, 0
		return false
	}
	return true
}
