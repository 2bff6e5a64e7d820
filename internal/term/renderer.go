// Package term draws the heart simulation into a terminal with tcell.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/heart-dots/internal/config"
	"github.com/iburimskiy/heart-dots/internal/heart"
)

const (
	dotRune  = '•'
	bigRune  = '●'
	leadRune = '♥'
)

// Renderer maps the window-sized world onto the terminal grid.
type Renderer struct {
	screen   tcell.Screen
	viewport heart.Viewport
	bg       tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:   screen,
		viewport: heart.Viewport{Width: config.WindowWidth, Height: config.WindowHeight},
		bg:       tcell.StyleDefault.Background(tcell.GetColor(config.BackgroundHex)),
	}
}

// cell returns the terminal cell for a world position and whether it is on
// screen.
func (r *Renderer) cell(x, y float64) (int, int, bool) {
	w, h := r.screen.Size()
	px, py := r.viewport.Project(x, y)
	cx := int(px * float64(w) / r.viewport.Width)
	cy := int(py * float64(h) / r.viewport.Height)
	return cx, cy, px >= 0 && py >= 0 && cx < w && cy < h
}

func (r *Renderer) Draw(sim *heart.Simulation, paused bool) {
	r.screen.Fill(' ', r.bg)

	for _, d := range sim.Particles() {
		if d.Hidden {
			continue
		}
		cx, cy, ok := r.cell(d.X, d.Y)
		if !ok {
			continue
		}
		c := d.Color()
		ch := dotRune
		if d.Size >= (config.DotSizeMin+config.DotSizeMax)/2 {
			ch = bigRune
		}
		style := r.bg.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		r.screen.SetContent(cx, cy, ch, nil, style)
	}

	if cx, cy, ok := r.cell(sim.Lead()); ok {
		r.screen.SetContent(cx, cy, leadRune, nil, r.bg.Foreground(tcell.ColorWhite))
	}

	status := fmt.Sprintf("dots %d  loops %d", len(sim.Particles()), sim.Traversals())
	if paused {
		status += "  [paused]"
	}
	r.drawText(0, 0, status, r.bg.Foreground(tcell.ColorWhite))

	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Run drives sim at FrameRate until the user quits. Each frame steps the
// simulation by the measured wall-clock delta, capped at MaxDeltaTime, then
// redraws.
func Run(screen tcell.Screen, sim *heart.Simulation) error {
	r := NewRenderer(screen)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	ticker := time.NewTicker(time.Second / config.FrameRate)
	defer ticker.Stop()

	paused := false
	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					paused = !paused
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			if !paused {
				sim.Step(dt)
			}
			r.Draw(sim, paused)
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
