package worldmap

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"sync"

	"terramap/pkg/core"
)

// MergeResult captures the objective telemetry of one merge-tuning
// evaluation: how far the produced maps land from the target land fraction.
type MergeResult struct {
	// LandFraction is the mean land fraction across the evaluation seeds.
	LandFraction float64
	// Continents is the mean continent count across the evaluation seeds.
	Continents float64
	// Score is the absolute deviation from the target land fraction;
	// lower is better.
	Score float64
}

// TuneRecord documents a single improvement encountered while exploring the
// merge parameter space.
type TuneRecord struct {
	Pass      int
	Parameter string
	Value     string
	Result    MergeResult
	Params    Params
}

// EvaluateMerge generates one map per seed with the given configuration and
// measures the land fraction objective against target. The evaluation is
// deterministic for fixed inputs.
func EvaluateMerge(cfg Config, seeds []int64, target float64) MergeResult {
	if len(seeds) == 0 {
		seeds = []int64{cfg.Seed}
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	var landSum, contSum float64
	for _, seed := range seeds {
		m := New(cfg, quiet)
		m.Initialize(nil, seed)
		metrics := m.Metrics()
		landSum += metrics.LandFraction
		contSum += float64(metrics.Continents)
	}
	n := float64(len(seeds))
	r := MergeResult{
		LandFraction: landSum / n,
		Continents:   contSum / n,
	}
	r.Score = math.Abs(r.LandFraction - target)
	return r
}

type mergeFloatSpec struct {
	name   string
	values []float64
	getter func(Params) float64
	setter func(*Params, float64)
}

// MergeParameterSweep searches the merge constants (budget curve and land
// threshold) toward a target land fraction: a randomized warm-up phase
// followed by coordinate descent, with candidates evaluated in parallel.
// It returns the best parameters found, their telemetry, and an improvement
// trace whose first record is the baseline.
func MergeParameterSweep(base Config, seeds []int64, target float64, passes, workers int) (Params, MergeResult, []TuneRecord) {
	if passes <= 0 {
		passes = 1
	}
	if workers <= 0 {
		workers = 1
	}

	currentParams := base.Params
	currentResult := EvaluateMerge(applyParams(base, currentParams), seeds, target)

	records := []TuneRecord{{
		Pass:      0,
		Parameter: "baseline",
		Result:    currentResult,
		Params:    currentParams,
	}}

	randomSamples := passes * 4
	if randomSamples < 8 {
		randomSamples = 8
	}
	rng := core.NewStream(base.Seed, 0x70e5)
	for i := 0; i < randomSamples; i++ {
		candidate := randomizeMergeParams(rng, base.Params)
		res := EvaluateMerge(applyParams(base, candidate), seeds, target)
		if res.Score < currentResult.Score {
			currentParams = candidate
			currentResult = res
			records = append(records, TuneRecord{
				Pass:      0,
				Parameter: fmt.Sprintf("random#%d", i+1),
				Result:    res,
				Params:    candidate,
			})
		}
	}

	specs := []mergeFloatSpec{
		{
			name:   "budget_k",
			values: []float64{0.12, 0.15, 0.18, 0.22, 0.26, 0.3},
			getter: func(p Params) float64 { return p.BudgetK },
			setter: func(p *Params, v float64) { p.BudgetK = v },
		},
		{
			name:   "budget_c",
			values: []float64{0, 0.5, 1, 1.5, 2},
			getter: func(p Params) float64 { return p.BudgetC },
			setter: func(p *Params, v float64) { p.BudgetC = v },
		},
		{
			name:   "land_threshold",
			values: []float64{0.45, 0.5, 0.55, 0.6, 0.65, 0.7, 0.75},
			getter: func(p Params) float64 { return p.LandThreshold },
			setter: func(p *Params, v float64) { p.LandThreshold = v },
		},
	}

	for pass := 1; pass <= passes; pass++ {
		improved := false
		for _, spec := range specs {
			bestParams, bestResult, changed, recs := evaluateMergeSpec(base, currentParams, currentResult, spec, seeds, target, workers, pass)
			if changed {
				currentParams = bestParams
				currentResult = bestResult
				records = append(records, recs...)
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	return currentParams, currentResult, records
}

func evaluateMergeSpec(base Config, params Params, baseline MergeResult, spec mergeFloatSpec, seeds []int64, target float64, workers, pass int) (Params, MergeResult, bool, []TuneRecord) {
	bestParams := params
	bestResult := baseline
	changed := false
	records := make([]TuneRecord, 0)

	type candidate struct {
		value  float64
		result MergeResult
		valid  bool
	}

	candidates := make([]candidate, len(spec.values))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, value := range spec.values {
		if mergeAlmostEqual(value, spec.getter(params)) {
			continue
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, v float64) {
			defer wg.Done()
			candidateParams := params
			spec.setter(&candidateParams, v)
			res := EvaluateMerge(applyParams(base, candidateParams), seeds, target)
			candidates[i] = candidate{value: v, result: res, valid: true}
			<-sem
		}(idx, value)
	}

	wg.Wait()

	for idx, value := range spec.values {
		cand := candidates[idx]
		if !cand.valid {
			continue
		}
		if cand.result.Score < bestResult.Score {
			candidateParams := params
			spec.setter(&candidateParams, value)
			bestParams = candidateParams
			bestResult = cand.result
			changed = true
			records = append(records, TuneRecord{
				Pass:      pass,
				Parameter: spec.name,
				Value:     strconv.FormatFloat(value, 'f', -1, 64),
				Result:    cand.result,
				Params:    candidateParams,
			})
		}
	}

	return bestParams, bestResult, changed, records
}

func mergeAlmostEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) <= eps
}

func applyParams(base Config, params Params) Config {
	cfg := base
	cfg.Params = params
	return cfg
}

func randomizeMergeParams(rng *core.RNG, base Params) Params {
	params := base
	params.BudgetK = rng.Range(0.1, 0.32)
	params.BudgetC = rng.Range(0, 2)
	params.LandThreshold = rng.Range(0.4, 0.8)
	return params
}
