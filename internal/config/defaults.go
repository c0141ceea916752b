package config

import (
	_ "embed"
)

//go:embed defaults/pursuit.yaml
var defaultPursuitYAML []byte

// DefaultPursuitConfig returns the default pursuit configuration.
// Mirrors defaults/pursuit.yaml; used as the last-resort fallback.
func DefaultPursuitConfig() PursuitConfig {
	return PursuitConfig{
		World: WorldSection{
			Width:     56,
			Height:    20,
			Obstacles: 28,
		},
		Enemies: EnemiesSection{
			InitialCount:      4,
			BaseSpeed:         1.0,
			BaseMultiplier:    1.0,
			WanderInterval:    3,
			WanderChance:      0.4,
			MinPlayerDistance: 10.0,
			MaxPlaceAttempts:  200,
		},
		Vision: VisionSection{
			Range:       9.0,
			AlertRadius: 6.0,
		},
		Tokens: TokensSection{
			Count: 8,
			ToWin: 5,
		},
		Waves: WavesSection{
			MovesPerWave:  15,
			SpeedIncrease: 0.03,
		},
	}
}
