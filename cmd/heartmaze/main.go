//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"heartmaze/internal/app"
	"heartmaze/internal/audio"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, th, err := app.BuildSim(cfg, nil)
	if err != nil {
		log.Fatalf("heartmaze: %v", err)
	}

	var sound *audio.Player
	if !cfg.Mute {
		sound = audio.NewPlayer(cfg.Volume)
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	game := app.New(sim, cfg, th, sound)
	size := sim.Size()

	ebiten.SetWindowTitle("heartmaze - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
