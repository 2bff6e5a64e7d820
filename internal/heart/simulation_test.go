package heart

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestStepSpawnsOnFirstStep(t *testing.T) {
	s := NewSimulation(DefaultParams(), rand.New(rand.NewPCG(1, 1)))
	s.Step(1.0 / 120)

	if len(s.Particles()) != 1 {
		t.Fatalf("Expected 1 particle after first step, got %d", len(s.Particles()))
	}
	d := s.Particles()[0]
	lx, ly := s.Lead()
	if d.X != lx || d.Y != ly {
		t.Errorf("Expected spawn at lead (%v, %v), got (%v, %v)", lx, ly, d.X, d.Y)
	}
	if math.Abs(lx-200) > 1e-9 || math.Abs(ly-200) > 1e-9 {
		t.Errorf("Expected lead at (200, 200), got (%v, %v)", lx, ly)
	}
}

func TestStepSpawnCadence(t *testing.T) {
	s := NewSimulation(DefaultParams(), rand.New(rand.NewPCG(1, 1)))
	// At 20ms per step the 50ms delay is exceeded every third step.
	for i := 0; i < 30; i++ {
		s.Step(0.02)
	}
	if got := s.Stats().Spawned; got != 10 {
		t.Errorf("Expected 10 spawns, got %d", got)
	}
}

func TestStepTraversals(t *testing.T) {
	s := NewSimulation(DefaultParams(), rand.New(rand.NewPCG(1, 1)))

	// 360 / 0.534 wraps on step 675.
	for i := 0; i < 674; i++ {
		s.Step(1.0 / 120)
	}
	if s.Traversals() != 0 {
		t.Fatalf("Expected 0 traversals after 674 steps, got %d", s.Traversals())
	}
	s.Step(1.0 / 120)
	if s.Traversals() != 1 || s.Angle() != 0 {
		t.Fatalf("Expected wrap on step 675, got traversals %d angle %v", s.Traversals(), s.Angle())
	}

	for i := 0; i < 674; i++ {
		s.Step(1.0 / 120)
	}
	if s.Delay() != 0.05 {
		t.Errorf("Expected delay 0.05 before the second traversal, got %v", s.Delay())
	}
	s.Step(1.0 / 120)
	if s.Traversals() != 2 {
		t.Fatalf("Expected 2 traversals, got %d", s.Traversals())
	}
	if s.Delay() != 0.005 {
		t.Errorf("Expected delay 0.005 after the second traversal, got %v", s.Delay())
	}
	if s.DissolveTime() != 10 {
		t.Errorf("Expected dissolve time to stay 10, got %v", s.DissolveTime())
	}
}

func TestStepMovesLeadAlongPath(t *testing.T) {
	p := DefaultParams()
	s := NewSimulation(p, rand.New(rand.NewPCG(1, 1)))
	for i := 0; i < 100; i++ {
		angle := s.Angle()
		s.Step(1.0 / 120)
		wx, wy := p.Path.At(Radians(angle))
		lx, ly := s.Lead()
		if lx != wx || ly != wy {
			t.Fatalf("Expected lead at (%v, %v), got (%v, %v)", wx, wy, lx, ly)
		}
	}
}

func TestStepRecyclesTerminalParticles(t *testing.T) {
	p := DefaultParams()
	p.SpawnDelay = 1000
	p.DissolveTime = 0.1
	p.MaxParticles = 0
	s := NewSimulation(p, rand.New(rand.NewPCG(3, 4)))

	for i := 0; i < 200; i++ {
		s.Step(0.02)
	}

	st := s.Stats()
	if st.Spawned != 1 {
		t.Fatalf("Expected 1 spawn, got %d", st.Spawned)
	}
	if st.Recycled == 0 {
		t.Fatal("Expected the dot to be recycled at least once")
	}
	if st.Removed != 0 {
		t.Errorf("Expected no removals, got %d", st.Removed)
	}
	if len(s.Particles()) != 1 {
		t.Fatalf("Expected pool of 1, got %d", len(s.Particles()))
	}
	d := s.Particles()[0]
	if d.Hidden || d.Recycled {
		t.Errorf("Expected recycled dot to be live, got hidden=%v recycled=%v", d.Hidden, d.Recycled)
	}
	if d.Size < d.MinSize {
		t.Errorf("Expected dot size >= %v, got %v", d.MinSize, d.Size)
	}
}

func TestStepDefaultNeverRemoves(t *testing.T) {
	s := NewSimulation(DefaultParams(), rand.New(rand.NewPCG(1, 1)))

	for i := 0; i < 4800; i++ {
		s.Step(1.0 / 120)
	}

	st := s.Stats()
	if st.Recycled == 0 {
		t.Fatal("Expected dots to be recycled within 40 seconds")
	}
	if st.Removed != 0 {
		t.Errorf("Expected no removals with default params, got %d", st.Removed)
	}
	if len(s.Particles()) != st.Spawned {
		t.Errorf("Expected pool of %d, got %d", st.Spawned, len(s.Particles()))
	}
}

func TestStepRespectsMaxParticles(t *testing.T) {
	p := DefaultParams()
	p.SpawnDelay = 0.001
	p.DissolveTime = 0.1
	p.MaxParticles = 5
	s := NewSimulation(p, rand.New(rand.NewPCG(5, 6)))

	for i := 0; i < 300; i++ {
		s.Step(0.02)
		if n := len(s.Particles()); n > p.MaxParticles {
			t.Fatalf("Expected at most %d dots, got %d on step %d", p.MaxParticles, n, i+1)
		}
	}

	st := s.Stats()
	if st.Spawned != p.MaxParticles {
		t.Errorf("Expected %d spawns, got %d", p.MaxParticles, st.Spawned)
	}
	if st.Recycled == 0 {
		t.Error("Expected a full pool to keep recycling")
	}
	if st.Removed != 0 {
		t.Errorf("Expected no removals, got %d", st.Removed)
	}
	for _, d := range s.Particles() {
		if d.Hidden {
			t.Fatal("Expected no hidden dots left in the pool")
		}
	}
}

func TestStepTrimsOverfullPool(t *testing.T) {
	p := DefaultParams()
	p.MaxParticles = 2
	s := NewSimulation(p, rand.New(rand.NewPCG(5, 6)))
	for i := 0; i < 4; i++ {
		d := NewParticle(0, 0, p, -100, fixedRand{})
		d.Transparency = 0.01
		s.particles = append(s.particles, d)
	}

	s.Step(0.02)

	st := s.Stats()
	if len(s.Particles()) != 2 {
		t.Fatalf("Expected pool trimmed to 2, got %d", len(s.Particles()))
	}
	if st.Spawned != 0 || st.Removed != 2 || st.Recycled != 2 {
		t.Errorf("Expected 0 spawned, 2 removed, 2 recycled, got %+v", st)
	}
}

func TestClockAdvances(t *testing.T) {
	s := NewSimulation(DefaultParams(), rand.New(rand.NewPCG(1, 1)))
	for i := 0; i < 10; i++ {
		s.Step(0.5)
	}
	if math.Abs(s.Clock()-5) > 1e-9 {
		t.Errorf("Expected clock 5, got %v", s.Clock())
	}
}

func TestViewportProject(t *testing.T) {
	v := Viewport{Width: 800, Height: 800}
	tests := []struct {
		name   string
		x, y   float64
		sx, sy float64
	}{
		{"Origin", 0, 0, 400, 400},
		{"Up right", 200, 200, 600, 200},
		{"Down left", -100, -300, 300, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := v.Project(tt.x, tt.y)
			if sx != tt.sx || sy != tt.sy {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.sx, tt.sy, sx, sy)
			}
		})
	}
}
