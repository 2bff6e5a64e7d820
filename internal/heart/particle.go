package heart

import (
	"math"

	"github.com/iburimskiy/heart-dots/internal/config"
)

// Rand is the randomness the simulation draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// Particle is one dot. It holds still until it is older than the dissolve
// time, then shrinks, fades toward white and drifts toward its target until
// fully transparent.
type Particle struct {
	X, Y             float64
	TargetX, TargetY float64

	Base         RGB
	Size         float64
	MinSize      float64
	ShrinkRate   float64
	Transparency float64
	Born         float64

	Recycled bool
	Hidden   bool

	color RGB
}

// NewParticle creates a dot at (x, y) born at now, with size, shrink rate and
// base color drawn from p.
func NewParticle(x, y float64, p Params, now float64, rng Rand) *Particle {
	base := White
	if len(p.Palette) > 0 {
		base = p.Palette[rng.IntN(len(p.Palette))]
	}
	return &Particle{
		X:            x,
		Y:            y,
		TargetX:      p.TargetX,
		TargetY:      p.TargetY,
		Base:         base,
		Size:         uniform(rng, p.SizeMin, p.SizeMax),
		MinSize:      p.MinSize,
		ShrinkRate:   uniform(rng, p.ShrinkMin, p.ShrinkMax),
		Transparency: 1,
		Born:         now,
		color:        base,
	}
}

// Color is the displayed color: the base color faded by the current
// transparency.
func (d *Particle) Color() RGB {
	return d.color
}

// Update advances the dot by one frame at simulation time now. It reports true
// exactly once, on the frame the dot becomes fully transparent; the dot is then
// hidden and marked Recycled and ignores updates until Reset.
func (d *Particle) Update(now, dissolve float64) bool {
	if d.Hidden || now-d.Born <= dissolve {
		return false
	}

	d.Size = math.Max(d.Size-d.ShrinkRate, d.MinSize)
	d.Transparency -= config.FadeStep
	d.moveTowardTarget(config.MoveStep)

	if d.Transparency <= 0 {
		d.Transparency = 0
		d.Hidden = true
		d.Recycled = true
		return true
	}
	d.color = d.Base.Fade(d.Transparency)
	return false
}

func (d *Particle) moveTowardTarget(step float64) {
	dx := d.TargetX - d.X
	dy := d.TargetY - d.Y
	dist := math.Hypot(dx, dy)
	if dist > step {
		d.X += dx / dist * step
		d.Y += dy / dist * step
		return
	}
	d.X, d.Y = d.TargetX, d.TargetY
}

// Reset brings a terminal dot back as a fresh spawn at (x, y).
func (d *Particle) Reset(x, y, size, now float64) {
	d.X, d.Y = x, y
	d.Size = size
	d.Transparency = 1
	d.Born = now
	d.Hidden = false
	d.Recycled = false
	d.color = d.Base
}
