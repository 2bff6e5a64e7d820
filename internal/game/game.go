// Package game hosts the heart simulation in an ebiten window.
package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/heart-dots/internal/audio"
	"github.com/iburimskiy/heart-dots/internal/config"
	"github.com/iburimskiy/heart-dots/internal/heart"
)

// Player is the soundtrack the lead marker pulses to.
type Player interface {
	OpenDialog() error
	SetPaused(paused bool)
	Update()
	Level() float64
	Playing() bool
	Progress() (pos, length time.Duration)
}

var _ Player = (*audio.Player)(nil)

type Game struct {
	sim      *heart.Simulation
	player   Player
	viewport heart.Viewport
	face     font.Face

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	paused  bool
	showHUD bool
	lastErr error
}

func New(sim *heart.Simulation, player Player) *Game {
	return &Game{
		sim:      sim,
		player:   player,
		viewport: heart.Viewport{Width: config.WindowWidth, Height: config.WindowHeight},
		face:     basicfont.Face7x13,
		prevKey:  map[ebiten.Key]bool{},
		showHUD:  true,
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = g.showHUD && inRect(mouseX, mouseY, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.player.OpenDialog(); err != nil {
				log.Printf("music: %v", err)
				g.lastErr = err
			} else {
				g.lastErr = nil
			}
		}
		g.buttonPressed = false
	}

	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.tick()
	return nil
}

// tick advances the simulation by one frame at the configured rate. ebiten
// calls Update FrameRate times per second, which paces the animation.
func (g *Game) tick() {
	if !g.paused {
		g.sim.Step(1.0 / config.FrameRate)
	}
	g.player.Update()
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	g.player.SetPaused(g.paused)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	for _, d := range g.sim.Particles() {
		if d.Hidden {
			continue
		}
		g.drawDot(screen, d.X, d.Y, d.Size, d.Color().RGBA())
	}

	x, y := g.sim.Lead()
	g.drawDot(screen, x, y, g.leadSize(), config.LeadColor)

	if g.showHUD {
		g.drawButton(screen)
		g.drawStatus(screen)
	}
}

func (g *Game) drawDot(screen *ebiten.Image, x, y, size float64, clr color.Color) {
	sx, sy := g.viewport.Project(x, y)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(size*config.PixelsPerSize), clr, true)
}

// leadSize grows the lead marker with the music level.
func (g *Game) leadSize() float64 {
	return config.LeadMarkerSize * (1 + config.LeadPulseMaxGain*g.player.Level())
}

func (g *Game) drawButton(screen *ebiten.Image) {
	bg := config.ButtonColor
	if g.buttonPressed {
		bg = config.ButtonPressed
	} else if g.buttonHovered {
		bg = config.ButtonHover
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bg, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, config.ButtonBorder, false)

	label := "Music"
	w := text.BoundString(g.face, label).Dx()
	text.Draw(screen, label, g.face, config.ButtonX+(config.ButtonWidth-w)/2, config.ButtonY+config.ButtonHeight/2+4, config.TextColor)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	text.Draw(screen, g.status(), g.face, 12, 18, config.TextColor)
}

func (g *Game) status() string {
	st := g.sim.Stats()
	s := fmt.Sprintf("dots %d  loops %d  recycled %d", len(g.sim.Particles()), g.sim.Traversals(), st.Recycled)
	if pos, length := g.player.Progress(); length > 0 {
		s += fmt.Sprintf("  music %s / %s", formatDuration(pos), formatDuration(length))
		if !g.player.Playing() {
			s += " (paused)"
		}
	}
	if g.paused {
		s += "  [paused]"
	}
	if g.lastErr != nil {
		s += " | Error: " + g.lastErr.Error()
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
