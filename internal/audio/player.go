// Package audio plays an optional soundtrack and reports how loud it is, so
// the heart can pulse along with the music.
package audio

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heart-dots/internal/config"
)

var ErrUnsupported = errors.New("unsupported file type")

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}
}

// Player owns the speaker and at most one playing file.
type Player struct {
	mu       sync.Mutex
	file     io.Closer
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap

	initDone bool
	paused   bool
	level    float64
}

func NewPlayer() *Player {
	return &Player{}
}

// OpenDialog asks for an audio file and plays it. Cancelling the dialog is not
// an error.
func (p *Player) OpenDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select file: %w", err)
	}
	return p.Play(filename)
}

// Play stops whatever is playing and starts path.
func (p *Player) Play(path string) error {
	decode, err := decoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if err := p.initSpeaker(format); err != nil {
		_ = streamer.Close()
		_ = f.Close()
		return fmt.Errorf("init speaker: %w", err)
	}

	// streamer -> tap -> ctrl
	t := newLevelTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t}

	p.mu.Lock()
	p.closeLocked()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.paused = false
	p.mu.Unlock()

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		// Runs under the speaker lock; release resources off that goroutine.
		go func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			if p.streamer == streamer {
				p.closeLocked()
			}
		}()
	})))

	log.Printf("playing %s (%d Hz)", path, format.SampleRate)
	return nil
}

func (p *Player) initSpeaker(format beep.Format) error {
	bufferSize := format.SampleRate.N(time.Second / 20)

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return err
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return err
		}
	default:
		speaker.Clear()
	}
	return nil
}

// closeLocked releases the current file. p.mu must be held.
func (p *Player) closeLocked() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
}

// SetPaused pauses or resumes playback. It is a no-op with nothing loaded.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = paused
	p.ctrl.Paused = paused
	speaker.Unlock()
}

func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctrl != nil && !p.paused
}

// Update refreshes the smoothed level from the most recent samples. Call it
// once per frame.
func (p *Player) Update() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tap == nil || p.paused {
		p.level *= config.SmoothingFactor
		return
	}
	mag := math.Pow(p.tap.rms(config.LevelWindow), 0.3)
	p.level = clamp01(config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag)
}

// Level is the smoothed loudness in [0, 1].
func (p *Player) Level() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Progress reports the playback position and length of the current file.
func (p *Player) Progress() (pos, length time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0, 0
	}
	speaker.Lock()
	cur, total := p.streamer.Position(), p.streamer.Len()
	speaker.Unlock()
	return p.format.SampleRate.D(cur), p.format.SampleRate.D(total)
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initDone {
		speaker.Clear()
	}
	p.closeLocked()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
