package config

import (
	_ "embed"
)

//go:embed defaults/crossy.yaml
var defaultCrossyYAML []byte

// DefaultCrossyConfig returns the default Crossy configuration.
// The numeric values mirror the embedded defaults/crossy.yaml.
func DefaultCrossyConfig() CrossyConfig {
	return CrossyConfig{
		Field: FieldConfig{
			Cols:          9,
			SafeStartRows: 6,
			LanesBehind:   10,
			LanesAhead:    30,
		},
		Terrain: TerrainConfig{
			TreeChance:       0.18,
			RoadPeriod:       5,
			RoadJitter:       2,
			RoadSegmentMin:   1,
			RoadSegmentMax:   3,
			PathWiggleChance: 0.6,
		},
		Cars: CarConfig{
			SpeedMin:    1.25,
			SpeedMax:    2.9,
			LenMin:      1,
			LenMax:      2,
			GapMinTiles: 1.2,
			GapMaxTiles: 3.0,
		},
		Player: PlayerConfig{
			HopTime:        0.14,
			TimeoutSeconds: 10.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			MaxAtRow:     60,
		},
	}
}
