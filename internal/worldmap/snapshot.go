package worldmap

import (
	"strconv"

	"terramap/internal/core"
)

// Snapshot groups the configuration for presentation: the CLI's
// -print-params output and the viewer HUD.
func (c Config) Snapshot() core.ParameterSnapshot {
	p := c.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("extent", "World extent", c.WorldExtent),
				floatParam("cell_size", "Cell size", c.CellSize),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Partition",
			Params: []core.Parameter{
				floatParam("piece_frequency", "Piece frequency", p.PieceFrequency),
				floatParam("relief_amplitude", "Relief amplitude", p.ReliefAmplitude),
				floatParam("relief_frequency", "Relief frequency", p.ReliefFrequency),
			},
		},
		{
			Name: "Merge",
			Params: []core.Parameter{
				floatParam("budget_k", "Budget k", p.BudgetK),
				floatParam("budget_c", "Budget c", p.BudgetC),
				floatParam("land_threshold", "Land threshold", p.LandThreshold),
				floatParam("land_floor", "Land floor", p.LandFloor),
				floatParam("water_offset", "Water offset", p.WaterOffset),
			},
		},
		{
			Name: "Tectonics",
			Params: []core.Parameter{
				floatParam("transform_threshold", "Transform threshold", p.TransformThreshold),
				floatParam("divergent_scale", "Divergent scale", p.DivergentScale),
				floatParam("convergent_scale", "Convergent scale", p.ConvergentScale),
				floatParam("ray_length", "Ray length", p.RayLength),
			},
		},
		{
			Name: "Temperature",
			Params: []core.Parameter{
				floatParam("temperature_frequency", "Temperature frequency", p.TemperatureFrequency),
				floatParam("temperature_detail", "Temperature detail", p.TemperatureDetail),
				floatParam("altitude_cooling", "Altitude cooling", p.AltitudeCooling),
			},
		},
		{
			Name: "Climate",
			Params: []core.Parameter{
				intParam("climate_steps", "Climate steps", p.ClimateSteps),
				floatParam("evaporation_rate", "Evaporation rate", p.EvaporationRate),
				floatParam("cloud_emission", "Cloud emission", p.CloudEmission),
				floatParam("precipitation_rate", "Precipitation rate", p.PrecipitationRate),
				floatParam("dispersal_rate", "Dispersal rate", p.DispersalRate),
				floatParam("runoff_rate", "Runoff rate", p.RunoffRate),
				floatParam("wind_bias", "Wind bias", p.WindBias),
			},
		},
		{
			Name: "Sampler",
			Params: []core.Parameter{
				floatParam("edge_noise_amplitude", "Edge noise amplitude", p.EdgeNoiseAmplitude),
				floatParam("edge_noise_frequency", "Edge noise frequency", p.EdgeNoiseFrequency),
				floatParam("mountain_slope_gain", "Mountain slope gain", p.MountainSlopeGain),
				floatParam("mountain_floor", "Mountain floor", p.MountainFloor),
				floatParam("coast_depth_scale", "Coast depth scale", p.CoastDepthScale),
				floatParam("coast_distance_scale", "Coast distance scale", p.CoastDistanceScale),
				floatParam("shore_flatten", "Shore flatten", p.ShoreFlatten),
				floatParam("cliff_threshold", "Cliff threshold", p.CliffThreshold),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
