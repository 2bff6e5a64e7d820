package heart

import (
	"math"

	"github.com/iburimskiy/heart-dots/internal/config"
)

// Params tunes a Simulation.
type Params struct {
	Path      Path
	AngleStep float64 // degrees per step

	SpawnDelay          float64
	FastSpawnDelay      float64
	FastAfterTraversals int
	DissolveTime        float64
	MaxParticles        int // 0 means no limit

	SizeMin, SizeMax     float64
	MinSize              float64
	ShrinkMin, ShrinkMax float64
	Palette              []RGB
	TargetX, TargetY     float64
}

func DefaultParams() Params {
	return Params{
		Path:                Path{Radius: config.Radius, CenterX: config.CenterX, CenterY: config.CenterY},
		AngleStep:           config.AngleStep,
		SpawnDelay:          config.SpawnDelay,
		FastSpawnDelay:      config.FastSpawnDelay,
		FastAfterTraversals: config.FastAfterTraversals,
		DissolveTime:        config.DissolveTime,
		MaxParticles:        config.MaxParticles,
		SizeMin:             config.DotSizeMin,
		SizeMax:             config.DotSizeMax,
		MinSize:             config.MinDotSize,
		ShrinkMin:           config.ShrinkRateMin,
		ShrinkMax:           config.ShrinkRateMax,
		Palette:             MustParsePalette(config.DotColours),
	}
}

// Stats counts particle lifecycle events since the simulation started.
type Stats struct {
	Spawned  int
	Recycled int
	Removed  int
}

// Simulation owns the lead marker, the path cursor and the particle pool.
// It is driven by Step and is not safe for concurrent use.
type Simulation struct {
	params Params
	rng    Rand

	particles []*Particle

	clock        float64
	angle        float64
	traversals   int
	leadX, leadY float64
	sinceSpawn   float64
	delay        float64
	dissolve     float64

	stats Stats
}

func NewSimulation(p Params, rng Rand) *Simulation {
	s := &Simulation{
		params:     p,
		rng:        rng,
		sinceSpawn: math.Inf(1), // the first step always spawns
		delay:      p.SpawnDelay,
		dissolve:   p.DissolveTime,
	}
	s.leadX, s.leadY = p.Path.At(0)
	return s
}

// Step advances the animation by dt seconds: it moves the lead marker, advances
// the path cursor, spawns a dot when the spawn delay has elapsed and updates,
// recycles or removes every dot. Drawing and pacing are left to the caller.
func (s *Simulation) Step(dt float64) {
	s.clock += dt

	s.leadX, s.leadY = s.params.Path.At(Radians(s.angle))

	s.angle += s.params.AngleStep
	if s.angle >= 360 {
		s.angle = 0
		s.traversals++
	}

	s.delay = s.params.SpawnDelay
	if s.traversals >= s.params.FastAfterTraversals {
		s.delay = s.params.FastSpawnDelay
	}
	// Both cadences dissolve at the same age.
	s.dissolve = s.params.DissolveTime

	s.sinceSpawn += dt
	if s.sinceSpawn > s.delay {
		s.sinceSpawn = 0
		if !s.full() {
			s.particles = append(s.particles, NewParticle(s.leadX, s.leadY, s.params, s.clock, s.rng))
			s.stats.Spawned++
		}
	}

	s.updateParticles()
}

func (s *Simulation) updateParticles() {
	size := len(s.particles)
	live := s.particles[:0]
	for _, d := range s.particles {
		if !d.Update(s.clock, s.dissolve) {
			live = append(live, d)
			continue
		}
		// A pool over its limit gives up terminal dots instead of reusing them.
		if s.params.MaxParticles > 0 && size > s.params.MaxParticles {
			d.Recycled = false
		}
		if d.Recycled {
			x, y := s.params.Path.At(Radians(s.angle))
			d.Reset(x, y, uniform(s.rng, s.params.SizeMin, s.params.SizeMax), s.clock)
			live = append(live, d)
			s.stats.Recycled++
			continue
		}
		size--
		s.stats.Removed++
	}
	clear(s.particles[len(live):])
	s.particles = live
}

func (s *Simulation) full() bool {
	return s.params.MaxParticles > 0 && len(s.particles) >= s.params.MaxParticles
}

// Particles returns the live pool. Callers must not keep it across steps.
func (s *Simulation) Particles() []*Particle {
	return s.particles
}

// Lead returns the world position of the lead marker.
func (s *Simulation) Lead() (x, y float64) {
	return s.leadX, s.leadY
}

// Angle is the path cursor in degrees, in [0, 360).
func (s *Simulation) Angle() float64 { return s.angle }

// Traversals counts completed trips around the heart.
func (s *Simulation) Traversals() int { return s.traversals }

// Clock is the simulation time in seconds.
func (s *Simulation) Clock() float64 { return s.clock }

func (s *Simulation) Delay() float64 { return s.delay }

func (s *Simulation) DissolveTime() float64 { return s.dissolve }

func (s *Simulation) Stats() Stats { return s.stats }
