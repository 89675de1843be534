// Package config provides YAML-based game configuration loading, level set
// loading and difficulty management for the arkanoid game.
package config

// ArkanoidConfig contains all configuration for the game.
type ArkanoidConfig struct {
	Court      CourtConfig      `yaml:"court"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CourtConfig defines the playing field in world units.
type CourtConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	BoundThickness int `yaml:"bound_thickness"` // Width of the side and top bound blocks
	HUDHeight      int `yaml:"hud_height"`      // Space above the top bound
}

// BallConfig defines ball size and where new balls appear.
type BallConfig struct {
	Radius int `yaml:"radius"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// PaddleConfig defines paddle placement. Width and speed come from the level.
type PaddleConfig struct {
	Height  int `yaml:"height"`
	BottomY int `yaml:"bottom_y"`
}

// GameplayConfig defines turn flow and scoring.
type GameplayConfig struct {
	Lives          int `yaml:"lives"`
	CountdownTicks int `yaml:"countdown_ticks"` // Ticks before balls are released
	ClearBonus     int `yaml:"clear_bonus"`     // Awarded when every block is removed
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to ball speed at max difficulty
	PaddleShrink    int     `yaml:"paddle_shrink"`    // Paddle width removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

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
