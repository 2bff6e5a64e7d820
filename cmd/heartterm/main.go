package main

import (
	"log"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/heart-dots/internal/heart"
	"github.com/iburimskiy/heart-dots/internal/term"
)

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	sim := heart.NewSimulation(heart.DefaultParams(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	err = term.Run(screen, sim)
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
