package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"heartmaze/internal/app"
	"heartmaze/internal/audio"
	"heartmaze/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append session logs to this file (default: discard)")
	flag.Parse()

	// The screen owns stdout, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer f.Close()
		logger = log.New(f, "heartmaze ", log.LstdFlags)
	}
	log.SetOutput(logger.Writer())

	sim, th, err := app.BuildSim(cfg, nil)
	if err != nil {
		log.New(os.Stderr, "", 0).Fatalf("heartmaze: %v", err)
	}

	opts := term.Options{
		Theme:   th,
		Seed:    cfg.Seed,
		Logger:  logger,
		Mute:    cfg.Mute,
		Summary: app.Summary,
	}
	if !cfg.Mute {
		sound := audio.NewPlayer(cfg.Volume)
		if err := sound.Initialize(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
		opts.Sound = sound
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.New(os.Stderr, "", 0).Fatalf("terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.New(os.Stderr, "", 0).Fatalf("terminal: %v", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.New(screen, sim, opts).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Printf("run: %v", err)
	}
}
