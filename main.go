package main

import (
	"errors"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heart-dots/internal/audio"
	"github.com/iburimskiy/heart-dots/internal/config"
	"github.com/iburimskiy/heart-dots/internal/game"
	"github.com/iburimskiy/heart-dots/internal/heart"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Heart - Space: Pause, H: Hide HUD, Esc/Q: Quit")
	ebiten.SetTPS(config.FrameRate)

	player := audio.NewPlayer()
	defer player.Close()

	sim := heart.NewSimulation(heart.DefaultParams(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	g := game.New(sim, player)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
