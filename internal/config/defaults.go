package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the hardcoded default configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Court: CourtConfig{
			Width:          800,
			Height:         600,
			BoundThickness: 25,
			HUDHeight:      20,
		},
		Ball: BallConfig{
			Radius: 5,
			SpawnX: 400,
			SpawnY: 480,
		},
		Paddle: PaddleConfig{
			Height:  10,
			BottomY: 590,
		},
		Gameplay: GameplayConfig{
			Lives:          7,
			CountdownTicks: 120, // 2 seconds at 60fps
			ClearBonus:     100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				PaddleShrink:    20,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
