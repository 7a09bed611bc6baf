// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// CrossyConfig contains all configuration for the Crossy game.
type CrossyConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Cars       CarConfig        `yaml:"cars"`
	Player     PlayerConfig     `yaml:"player"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield dimensions and generation window.
type FieldConfig struct {
	Cols          int `yaml:"cols"`            // Columns per lane (shared by all lanes)
	SafeStartRows int `yaml:"safe_start_rows"` // Rows 0..n-1 are always grass
	LanesBehind   int `yaml:"lanes_behind"`    // Window margin behind the player
	LanesAhead    int `yaml:"lanes_ahead"`     // Window margin ahead of the player
}

// TerrainConfig defines grass obstacles and the road-run scheduler.
type TerrainConfig struct {
	TreeChance       float64 `yaml:"tree_chance"`        // Per-column tree probability on grass
	RoadPeriod       int     `yaml:"road_period"`        // Approximate rows between road runs
	RoadJitter       int     `yaml:"road_jitter"`        // +/- jitter on the period
	RoadSegmentMin   int     `yaml:"road_segment_min"`   // Shortest road run, in lanes
	RoadSegmentMax   int     `yaml:"road_segment_max"`   // Longest road run, in lanes
	PathWiggleChance float64 `yaml:"path_wiggle_chance"` // Chance the guaranteed path steps sideways
}

// CarConfig defines car speed, size, and spacing, all in tile units.
type CarConfig struct {
	SpeedMin    float64 `yaml:"speed_min"`     // Tiles per second at zero difficulty
	SpeedMax    float64 `yaml:"speed_max"`     // Tiles per second at full difficulty
	LenMin      int     `yaml:"len_min"`       // Shortest car, in tiles
	LenMax      int     `yaml:"len_max"`       // Longest car, in tiles
	GapMinTiles float64 `yaml:"gap_min_tiles"` // Smallest gap between cars
	GapMaxTiles float64 `yaml:"gap_max_tiles"` // Largest gap between cars
}

// PlayerConfig defines hop animation and the stall timeout.
type PlayerConfig struct {
	HopTime        float64 `yaml:"hop_time"`        // Seconds per hop animation
	TimeoutSeconds float64 `yaml:"timeout_seconds"` // Stalling this long in one row is fatal
}

// DifficultyConfig defines depth-based difficulty progression.
// Car speed scales linearly with how far the player has traveled.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	InitialLevel float64 `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	MaxAtRow     int     `yaml:"max_at_row"`    // Row at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
