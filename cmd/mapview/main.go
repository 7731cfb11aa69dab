//go:build ebiten

// Command mapview opens an interactive window over a generated world
// map. Number keys switch between the debug views, R regenerates and S
// reseeds. Run with -h for the flag list.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"terramap/internal/app"
	"terramap/internal/worldmap"
)

type kvList []string

func (l *kvList) String() string { return strings.Join(*l, ",") }

func (l *kvList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var overrides kvList
	seed := flag.Int64("seed", 0, "world seed (0 uses the config default)")
	scale := flag.Int("scale", 1, "integer pixel scale for the window")
	flag.Var(&overrides, "set", "parameter override key=value (repeatable)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	kv := map[string]string{}
	for _, pair := range overrides {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "bad -set value %q, want key=value\n", pair)
			os.Exit(2)
		}
		kv[key] = value
	}
	cfg := worldmap.FromMap(kv)
	if *seed != 0 {
		cfg.Seed = *seed
	}

	game := app.New(cfg, cfg.Seed, *scale, logger)

	side, _ := game.Layout(0, 0)
	ebiten.SetWindowTitle("terramap")
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Error("viewer exited", "err", err)
		os.Exit(1)
	}
}
