package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/milk9111/grapplerig/prefabs"
	"github.com/milk9111/grapplerig/sim"
)

type config struct {
	rig      string
	dir      string
	inputs   string
	duration float64
	frameHz  float64
	report   float64
	watch    bool
	realtime bool
	level    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.rig, "rig", prefabs.RigFile, "rig prefab name")
	flag.StringVar(&cfg.dir, "prefabs", "prefabs", "directory checked for prefab overrides before the embedded copies")
	flag.StringVar(&cfg.inputs, "inputs", "", "input timeline yaml (default: built-in demo)")
	flag.Float64Var(&cfg.duration, "duration", 15, "simulated seconds to run")
	flag.Float64Var(&cfg.frameHz, "frame-hz", 60, "frame rate of the driver loop")
	flag.Float64Var(&cfg.report, "report", 0.5, "seconds between state reports")
	flag.BoolVar(&cfg.watch, "watch", false, "rebuild the rig when prefab files change; runs until interrupted")
	flag.BoolVar(&cfg.realtime, "realtime", false, "pace frames to wall time")
	flag.StringVar(&cfg.level, "log-level", "info", "debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.level)); err != nil {
		fmt.Fprintf(os.Stderr, "grapplesim: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config) error {
	if cfg.frameHz <= 0 {
		return fmt.Errorf("frame-hz must be positive")
	}
	loader := prefabs.Loader{Dir: cfg.dir}

	data := demoTimeline
	if cfg.inputs != "" {
		b, err := os.ReadFile(cfg.inputs)
		if err != nil {
			return fmt.Errorf("reading inputs: %w", err)
		}
		data = b
	}
	tl, err := parseTimeline(data)
	if err != nil {
		return err
	}

	s, err := build(loader, cfg.rig)
	if err != nil {
		return err
	}
	defer func() { s.Close() }()

	g, gctx := errgroup.WithContext(ctx)
	loopCtx, stop := context.WithCancel(gctx)
	changes := make(chan string, 8)

	if cfg.watch {
		dirs := []string{cfg.dir, filepath.Join(cfg.dir, "scripts")}
		w, err := prefabs.NewWatcher(slog.Default(), existing(dirs)...)
		if err != nil {
			stop()
			return fmt.Errorf("watching prefabs: %w", err)
		}
		g.Go(func() error {
			if err := w.Run(loopCtx, changes); err != nil && loopCtx.Err() == nil {
				return fmt.Errorf("prefab watcher: %w", err)
			}
			return nil
		})
		slog.Info("watching prefabs", "dir", cfg.dir)
	}

	g.Go(func() error {
		defer stop()
		return drive(loopCtx, cfg, loader, tl, &s, changes)
	})

	return g.Wait()
}

// drive steps the sim frame by frame, feeding it the timeline and swapping
// in a rebuilt sim whenever a prefab changes.
func drive(ctx context.Context, cfg config, loader prefabs.Loader, tl *timeline, s **sim.Sim, changes <-chan string) error {
	dt := 1 / cfg.frameHz
	var ticker *time.Ticker
	if cfg.realtime || cfg.watch {
		ticker = time.NewTicker(time.Duration(dt * float64(time.Second)))
		defer ticker.Stop()
	}

	gate := newReloadGate(loader)
	nextReport := 0.0
	last := (*s).Snapshot()
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changes:
			if !gate.Changed(path) {
				slog.Debug("prefab unchanged, skipping rebuild", "path", path)
				continue
			}
			next, err := build(loader, cfg.rig)
			if err != nil {
				slog.Warn("rebuild failed, keeping current rig", "path", path, "err", err)
				continue
			}
			(*s).Close()
			*s = next
			tl.Rewind()
			nextReport = 0
			last = next.Snapshot()
			slog.Info("rig rebuilt", "path", path)
			continue
		default:
		}

		cur := *s
		if cur.Elapsed() >= cfg.duration {
			if !cfg.watch {
				report(cur.Snapshot())
				return nil
			}
		} else {
			cur.SetInput(tl.At(cur.Elapsed()))
			cur.Frame(dt)

			snap := cur.Snapshot()
			logTransitions(last, snap)
			last = snap
			if snap.Time >= nextReport {
				report(snap)
				nextReport += cfg.report
			}
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	}
}

func build(loader prefabs.Loader, name string) (*sim.Sim, error) {
	rig, err := loader.LoadRig(name)
	if err != nil {
		return nil, err
	}
	return sim.New(rig, sim.WithLoader(loader), sim.WithLogger(slog.Default()))
}

func report(s sim.Snapshot) {
	slog.Info("rig",
		"t", fmt.Sprintf("%.2f", s.Time),
		"pos", fmt.Sprintf("%.2f,%.2f,%.2f", s.Position.X, s.Position.Y, s.Position.Z),
		"skill", s.Equipped,
		"grapple", s.GrappleState,
		"speed", fmt.Sprintf("%.2f", s.SpeedFactor),
		"jump", fmt.Sprintf("%.2f", s.JumpFactor),
		"scale", fmt.Sprintf("%.2f", s.Scale.X),
	)
}

func logTransitions(prev, next sim.Snapshot) {
	if prev.Equipped != next.Equipped {
		slog.Info("equipped", "t", fmt.Sprintf("%.2f", next.Time), "from", prev.Equipped, "to", next.Equipped)
	}
	if prev.GrappleState != next.GrappleState {
		slog.Debug("grapple", "t", fmt.Sprintf("%.2f", next.Time), "state", next.GrappleState, "selected", next.Selected)
	}
	if strings.Join(prev.Highlighted, ",") != strings.Join(next.Highlighted, ",") {
		slog.Debug("highlight", "points", next.Highlighted)
	}
}

func existing(dirs []string) []string {
	out := dirs[:0]
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}
