package main

import (
	"flag"
	"fmt"
	"runtime"
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
	target := flag.Float64("target", 0.3, "target land fraction")
	passes := flag.Int("passes", 3, "coordinate-descent passes to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel candidate evaluations")
	extent := flag.Int("extent", 512, "world extent for tuning runs")
	seeds := flag.Int("seeds", 3, "number of evaluation seeds per candidate")
	baseSeed := flag.Int64("seed", 1337, "first evaluation seed")
	manualOnly := flag.Bool("manual", false, "skip sweeping and only evaluate provided overrides")
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
	cfg.WorldExtent = *extent
	cfg.Seed = *baseSeed
	// The moisture field does not move the land-fraction objective, so the
	// tuner skips the climate pass entirely.
	cfg.Params.ClimateSteps = 0

	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = *baseSeed + int64(i)
	}

	baseline := worldmap.EvaluateMerge(cfg, seedList, *target)
	fmt.Printf("Baseline: land fraction %.3f (target %.3f, score %.4f), continents %.1f\n",
		baseline.LandFraction, *target, baseline.Score, baseline.Continents)

	if *manualOnly {
		fmt.Println("Manual evaluation requested; skipping sweep.")
		printParams(cfg.Params)
		return
	}

	params, result, trace := worldmap.MergeParameterSweep(cfg, seedList, *target, *passes, *workers)

	fmt.Printf("\nBest found: land fraction %.3f (score %.4f), continents %.1f\n",
		result.LandFraction, result.Score, result.Continents)
	printParams(params)

	if len(trace) > 1 {
		fmt.Println("\nImprovements:")
		for _, rec := range trace[1:] {
			fmt.Printf("  pass %d: %s=%s -> land fraction %.3f (score %.4f)\n",
				rec.Pass, rec.Parameter, rec.Value, rec.Result.LandFraction, rec.Result.Score)
		}
	}
}

func printParams(params worldmap.Params) {
	fmt.Println("Parameters:")
	fmt.Printf("  budget_k=%.3f\n", params.BudgetK)
	fmt.Printf("  budget_c=%.3f\n", params.BudgetC)
	fmt.Printf("  land_threshold=%.3f\n", params.LandThreshold)
	fmt.Printf("  land_floor=%.3f\n", params.LandFloor)
	fmt.Printf("  water_offset=%.3f\n", params.WaterOffset)
}
