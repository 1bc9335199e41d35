//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"antwalk/internal/app"
	"antwalk/internal/config"
	"antwalk/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional HCL config file")
	scale := flag.Int("scale", 1, "pixel scale multiplier")
	tps := flag.Int("tps", 240, "walker steps per second")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *configPath != "" {
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := cfg.ApplyFile(*configPath, set); err != nil {
			log.Error("load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	factory, ok := sim.Sims()["ant"]
	if !ok {
		log.Error("ant simulation not registered")
		os.Exit(1)
	}
	s, err := factory(cfg.Map())
	if err != nil {
		log.Error("cannot place walker", "err", err)
		os.Exit(1)
	}

	game := app.New(s, *scale)
	size := s.Size()

	ebiten.SetWindowTitle("antwalk — " + s.Name())
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(size.W*(*scale), size.H*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run", "err", err)
		os.Exit(1)
	}
}
