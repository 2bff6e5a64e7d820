package config

import "image/color"

const (
	WindowWidth  = 800
	WindowHeight = 800

	FrameRate    = 120
	MaxDeltaTime = 0.06

	// Heart path
	Radius    = 100.0
	CenterX   = 0.0
	CenterY   = 200.0
	AngleStep = 0.534 // degrees per frame

	// Spawning
	SpawnDelay          = 0.05
	FastSpawnDelay      = 0.005
	FastAfterTraversals = 2
	DissolveTime        = 10.0
	MaxParticles        = 0 // no limit

	// Dots
	DotSizeMin       = 0.2
	DotSizeMax       = 0.5
	MinDotSize       = 0.1
	ShrinkRateMin    = 0.004
	ShrinkRateMax    = 0.009
	FadeStep         = 0.1 / 5
	MoveStep         = 2.0
	PixelsPerSize    = 10.0 // radius in pixels of a size 1 dot
	LeadMarkerSize   = 1.0
	LeadPulseMaxGain = 0.8

	// Music button
	ButtonWidth  = 100
	ButtonHeight = 28
	ButtonX      = 12
	ButtonY      = 30

	// Audio
	VisualRingSize  = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6

	BackgroundHex = "#1a6b72"
)

// DotColours is the palette new dots draw their base color from.
var DotColours = []string{
	"#fdb33b", "#6d227a", "#fff3e6",
	"#a3c9f1", "#d1e2dc", "#f5b5d6",
	"#c8e0d6", "#f0c9c0", "#f7d8c1",
	"#b7e4c7", "#f4e1d2", "#f9c2c4",
	"#fce0cb", "#d0b2d8", "#d9f8d7",
	"#f2a7d9", "#ff99cc", "#ff66b2", "#ff3399",
}

var (
	BackgroundColor = color.RGBA{0x1a, 0x6b, 0x72, 255}
	LeadColor       = color.RGBA{255, 255, 255, 255}
	TextColor       = color.RGBA{240, 240, 240, 255}
	ButtonColor     = color.RGBA{100, 120, 160, 255}
	ButtonHover     = color.RGBA{80, 100, 140, 255}
	ButtonPressed   = color.RGBA{60, 80, 120, 255}
	ButtonBorder    = color.RGBA{150, 170, 200, 255}
)
