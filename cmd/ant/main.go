package main

import (
	"context"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"

	"antwalk/internal/config"
	"antwalk/internal/ctxlog"
	"antwalk/internal/render"
	"antwalk/internal/server"
	"antwalk/internal/sim"
)

// publishRate is how often the run monitor sees progress, per second.
const publishRate = 30

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional HCL config file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(log)

	if *configPath != "" {
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if err := cfg.ApplyFile(*configPath, set); err != nil {
			log.Error("load config", "path", *configPath, "err", err)
			return 1
		}
	}

	sc, err := cfg.Sim()
	if err != nil {
		log.Error("invalid configuration", "err", err)
		return 1
	}
	ant, err := sim.NewAnt(sc)
	if err != nil {
		log.Error("cannot place walker", "err", err)
		return 1
	}

	var monitor *server.Monitor
	if cfg.Listen != "" {
		monitor = server.NewMonitor()
		mux := http.NewServeMux()
		mux.Handle("/watch", monitor)
		srv := &http.Server{
			Addr:    cfg.Listen,
			Handler: mux,
			BaseContext: func(net.Listener) context.Context {
				return ctxlog.WithLogger(context.Background(), log)
			},
		}
		go func() {
			log.Info("monitor listening", "addr", cfg.Listen, "path", "/watch")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error("monitor server", "err", err)
			}
		}()
	}

	pace := sim.NewFixedStep(publishRate)
	for ant.Step() {
		if monitor != nil && pace.ShouldStep() {
			monitor.Publish(progress(ant))
		}
	}
	if monitor != nil {
		monitor.Publish(progress(ant))
	}

	w := ant.Walker()
	log.Info("walker left the grid",
		"pos", w.Pos().String(),
		"heading", w.Heading().String(),
		"steps", w.Steps(),
		"marked", ant.Grid().CountMarked(),
	)

	snapshot := ant.Grid().Snapshot()
	size := ant.Size()
	switch cfg.Depth {
	case 1:
		err = render.WritePBM(cfg.Output, size.W, size.H, snapshot)
	default:
		err = render.WritePNG(cfg.Output, size.W, size.H, snapshot)
	}
	if err != nil {
		log.Error("write image", "path", cfg.Output, "err", err)
		return 1
	}
	log.Info("image written", "path", cfg.Output, "depth", cfg.Depth)
	return 0
}

func progress(a *sim.Ant) server.Update {
	w := a.Walker()
	p := w.Pos()
	return server.Update{
		Step:    w.Steps(),
		X:       p.X,
		Y:       p.Y,
		Heading: w.Heading().String(),
		Marked:  a.Grid().CountMarked(),
		Halted:  w.Halted(),
	}
}
