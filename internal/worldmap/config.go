package worldmap

import "strconv"

// Params holds the tunable constants of the generation pipeline and the
// sampler.
type Params struct {
	// Partition
	PieceFrequency  float64
	ReliefAmplitude float64
	ReliefFrequency float64

	// Merge
	BudgetK       float64
	BudgetC       float64
	LandThreshold float64
	LandFloor     float64
	WaterOffset   float64

	// Tectonics
	TransformThreshold float64
	DivergentScale     float64
	ConvergentScale    float64
	RayLength          float64

	// Temperature
	TemperatureFrequency float64
	TemperatureDetail    float64
	AltitudeCooling      float64

	// Climate
	ClimateSteps      int
	EvaporationRate   float64
	CloudEmission     float64
	PrecipitationRate float64
	DispersalRate     float64
	RunoffRate        float64
	WindBias          float64

	// Sampler
	EdgeNoiseAmplitude float64
	EdgeNoiseFrequency float64
	MountainSlopeGain  float64
	MountainFloor      float64
	CoastDepthScale    float64
	CoastDistanceScale float64
	ShoreFlatten       float64
	CliffThreshold     float64
}

// Config controls the world map dimensions and seeding.
type Config struct {
	// WorldExtent is the maximum absolute world coordinate the map must
	// answer queries for, in world units.
	WorldExtent int
	// CellSize is the edge length of one grid cell in world units.
	CellSize float64

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		WorldExtent: 2048,
		CellSize:    16,
		Seed:        1337,
		Params: Params{
			PieceFrequency:  0.12,
			ReliefAmplitude: 0.2,
			ReliefFrequency: 0.045,

			BudgetK:       0.18,
			BudgetC:       1,
			LandThreshold: 0.6,
			LandFloor:     0.05,
			WaterOffset:   -0.25,

			TransformThreshold: 0.35,
			DivergentScale:     0.18,
			ConvergentScale:    0.35,
			RayLength:          9,

			TemperatureFrequency: 0.02,
			TemperatureDetail:    0.15,
			AltitudeCooling:      0.35,

			ClimateSteps:      100,
			EvaporationRate:   0.12,
			CloudEmission:     0.06,
			PrecipitationRate: 0.2,
			DispersalRate:     0.35,
			RunoffRate:        0.08,
			WindBias:          0.45,

			EdgeNoiseAmplitude: 0.18,
			EdgeNoiseFrequency: 0.35,
			MountainSlopeGain:  4,
			MountainFloor:      0.25,
			CoastDepthScale:    0.18,
			CoastDistanceScale: 0.75,
			ShoreFlatten:       0.6,
			CliffThreshold:     0.5,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["extent"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.WorldExtent = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["piece_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.PieceFrequency = parsed
		}
	}
	if v, ok := cfg["relief_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ReliefAmplitude = parsed
		}
	}
	if v, ok := cfg["relief_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.ReliefFrequency = parsed
		}
	}
	if v, ok := cfg["budget_k"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.BudgetK = parsed
		}
	}
	if v, ok := cfg["budget_c"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.BudgetC = parsed
		}
	}
	if v, ok := cfg["land_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.LandThreshold = parsed
		}
	}
	if v, ok := cfg["land_floor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.LandFloor = parsed
		}
	}
	if v, ok := cfg["water_offset"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed < 0 {
			c.Params.WaterOffset = parsed
		}
	}
	if v, ok := cfg["transform_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.TransformThreshold = parsed
		}
	}
	if v, ok := cfg["divergent_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DivergentScale = parsed
		}
	}
	if v, ok := cfg["convergent_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ConvergentScale = parsed
		}
	}
	if v, ok := cfg["ray_length"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RayLength = parsed
		}
	}
	if v, ok := cfg["temperature_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TemperatureFrequency = parsed
		}
	}
	if v, ok := cfg["temperature_detail"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.TemperatureDetail = parsed
		}
	}
	if v, ok := cfg["altitude_cooling"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.AltitudeCooling = parsed
		}
	}
	if v, ok := cfg["climate_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.ClimateSteps = parsed
		}
	}
	if v, ok := cfg["evaporation_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.EvaporationRate = parsed
		}
	}
	if v, ok := cfg["cloud_emission"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CloudEmission = parsed
		}
	}
	if v, ok := cfg["precipitation_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.PrecipitationRate = parsed
		}
	}
	if v, ok := cfg["dispersal_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.DispersalRate = parsed
		}
	}
	if v, ok := cfg["runoff_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RunoffRate = parsed
		}
	}
	if v, ok := cfg["wind_bias"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed < 0.95 {
			c.Params.WindBias = parsed
		}
	}
	if v, ok := cfg["edge_noise_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.EdgeNoiseAmplitude = parsed
		}
	}
	if v, ok := cfg["edge_noise_frequency"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.EdgeNoiseFrequency = parsed
		}
	}
	if v, ok := cfg["mountain_slope_gain"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.MountainSlopeGain = parsed
		}
	}
	if v, ok := cfg["mountain_floor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.MountainFloor = parsed
		}
	}
	if v, ok := cfg["coast_depth_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.CoastDepthScale = parsed
		}
	}
	if v, ok := cfg["coast_distance_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.CoastDistanceScale = parsed
		}
	}
	if v, ok := cfg["shore_flatten"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ShoreFlatten = parsed
		}
	}
	if v, ok := cfg["cliff_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CliffThreshold = parsed
		}
	}
	return c
}
