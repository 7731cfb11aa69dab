package worldmap

import "testing"

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"extent":         "512",
		"cell_size":      "8",
		"seed":           "-99",
		"budget_k":       "0.25",
		"land_threshold": "0.5",
		"climate_steps":  "10",
		"wind_bias":      "0.6",
	})
	if cfg.WorldExtent != 512 {
		t.Fatalf("extent = %d, want 512", cfg.WorldExtent)
	}
	if cfg.CellSize != 8 {
		t.Fatalf("cell size = %v, want 8", cfg.CellSize)
	}
	if cfg.Seed != -99 {
		t.Fatalf("seed = %d, want -99", cfg.Seed)
	}
	if cfg.Params.BudgetK != 0.25 {
		t.Fatalf("budget k = %v, want 0.25", cfg.Params.BudgetK)
	}
	if cfg.Params.LandThreshold != 0.5 {
		t.Fatalf("land threshold = %v, want 0.5", cfg.Params.LandThreshold)
	}
	if cfg.Params.ClimateSteps != 10 {
		t.Fatalf("climate steps = %d, want 10", cfg.Params.ClimateSteps)
	}
	if cfg.Params.WindBias != 0.6 {
		t.Fatalf("wind bias = %v, want 0.6", cfg.Params.WindBias)
	}
}

func TestFromMapRejectsInvalid(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"extent":       "not-a-number",
		"cell_size":    "-4",
		"budget_k":     "0",
		"wind_bias":    "0.99",
		"water_offset": "0.3",
		"bogus_key":    "1",
	})
	if cfg.WorldExtent != def.WorldExtent {
		t.Fatalf("unparsable extent changed the config: %d", cfg.WorldExtent)
	}
	if cfg.CellSize != def.CellSize {
		t.Fatalf("negative cell size accepted: %v", cfg.CellSize)
	}
	if cfg.Params.BudgetK != def.Params.BudgetK {
		t.Fatalf("zero budget k accepted: %v", cfg.Params.BudgetK)
	}
	if cfg.Params.WindBias != def.Params.WindBias {
		t.Fatalf("runaway wind bias accepted: %v", cfg.Params.WindBias)
	}
	if cfg.Params.WaterOffset != def.Params.WaterOffset {
		t.Fatalf("positive water offset accepted: %v", cfg.Params.WaterOffset)
	}
}

func TestFromMapNil(t *testing.T) {
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield the default config")
	}
}

func TestSnapshotCoversAllKeys(t *testing.T) {
	snap := DefaultConfig().Snapshot()
	if len(snap.Groups) == 0 {
		t.Fatal("snapshot has no parameter groups")
	}
	seen := map[string]bool{}
	total := 0
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			t.Fatalf("group %q is empty", g.Name)
		}
		for _, p := range g.Params {
			if p.Value == "" {
				t.Fatalf("parameter %q has no value", p.Key)
			}
			if seen[p.Key] {
				t.Fatalf("parameter %q appears twice", p.Key)
			}
			seen[p.Key] = true
			total++
		}
	}
	for _, key := range []string{"extent", "cell_size", "seed", "budget_k", "land_threshold", "wind_bias", "cliff_threshold"} {
		if !seen[key] {
			t.Fatalf("snapshot is missing %q", key)
		}
	}
}
