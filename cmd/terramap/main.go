package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"terramap/internal/worldmap"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	seed := flag.Int64("seed", 0, "world seed (0 uses the configured seed)")
	loadPath := flag.String("load", "", "read a persisted grid blob from this file")
	savePath := flag.String("save", "", "write the grid blob to this file when dirty")
	viewsDir := flag.String("views", "", "emit debug view PNGs into this directory")
	viewScale := flag.Int("view-scale", 2, "integer upscale for emitted views")
	showMetrics := flag.Bool("metrics", false, "print the map metrics summary")
	printParams := flag.Bool("print-params", false, "print the effective parameters")
	var overrides kvList
	flag.Var(&overrides, "set", "configuration override in key=value form (repeatable)")
	flag.Parse()

	cfgMap := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		cfgMap[parts[0]] = parts[1]
	}
	cfg := worldmap.FromMap(cfgMap)
	if *seed != 0 {
		cfg.Seed = *seed
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	m := worldmap.New(cfg, logger)

	var blob io.Reader
	if *loadPath != "" {
		f, err := os.Open(*loadPath)
		if err != nil {
			logger.Info("could not open persisted map, regenerating", "path", *loadPath, "err", err)
		} else {
			defer f.Close()
			blob = f
		}
	}

	dirty := m.Initialize(blob, cfg.Seed)

	if dirty && *savePath != "" {
		if err := saveBlob(m, *savePath); err != nil {
			logger.Error("save failed", "path", *savePath, "err", err)
			os.Exit(1)
		}
		logger.Info("grid blob written", "path", *savePath)
	}

	if *printParams {
		printSnapshot(cfg)
	}

	if *showMetrics {
		printMetrics(m.Metrics())
	}

	if *viewsDir != "" {
		if err := m.EmitViews(*viewsDir, *viewScale); err != nil {
			logger.Error("emit views failed", "dir", *viewsDir, "err", err)
			os.Exit(1)
		}
		logger.Info("views emitted", "dir", *viewsDir)
	}
}

// saveBlob writes the grid to a temp file first and renames it into place,
// so a crash never leaves a truncated blob behind.
func saveBlob(m *worldmap.Map, path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := m.Store(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func printSnapshot(cfg worldmap.Config) {
	for _, group := range cfg.Snapshot().Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, p := range group.Params {
			fmt.Printf("  %s=%s\n", p.Key, p.Value)
		}
	}
}

func printMetrics(metrics worldmap.Metrics) {
	fmt.Printf("cells=%d land=%d (%.1f%%) continents=%d pieces=%d\n",
		metrics.Cells, metrics.LandCells, metrics.LandFraction*100, metrics.Continents, metrics.Pieces)
	fmt.Printf("boundaries: transform=%d convergent=%d divergent=%d\n",
		metrics.TransformBoundaries, metrics.ConvergentBoundaries, metrics.DivergentBoundaries)
	fmt.Printf("conditions: vulcanism=%d seismic=%d rift=%d\n",
		metrics.VulcanismCells, metrics.SeismicCells, metrics.RiftCells)
	fmt.Printf("height: min=%.3f max=%.3f mean=%.3f\n",
		metrics.MinHeight, metrics.MaxHeight, metrics.MeanHeight)
	fmt.Printf("climate: mean temperature=%.3f mean humidity=%.3f\n",
		metrics.MeanTemperature, metrics.MeanHumidity)
}
