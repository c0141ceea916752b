// Package config provides YAML-based game configuration loading and
// difficulty presets for the pursuit platform.
package config

// PursuitConfig contains all configuration for the pursuit game.
type PursuitConfig struct {
	World   WorldSection   `yaml:"world"`
	Enemies EnemiesSection `yaml:"enemies"`
	Vision  VisionSection  `yaml:"vision"`
	Tokens  TokensSection  `yaml:"tokens"`
	Waves   WavesSection   `yaml:"waves"`
}

// WorldSection defines the grid and its static contents.
type WorldSection struct {
	Width     int `yaml:"width"`  // grid width including border frame
	Height    int `yaml:"height"` // grid height including border frame
	Obstacles int `yaml:"obstacles"`
}

// EnemiesSection defines the initial enemy population and its behavior.
type EnemiesSection struct {
	InitialCount      int     `yaml:"initial_count"`
	BaseSpeed         float64 `yaml:"base_speed"`      // cells per tick at multiplier 1.0
	BaseMultiplier    float64 `yaml:"base_multiplier"` // starting speed multiplier
	WanderInterval    int     `yaml:"wander_interval"` // idle ticks between wander attempts
	WanderChance      float64 `yaml:"wander_chance"`   // probability of a wander step
	MinPlayerDistance float64 `yaml:"min_player_distance"`
	MaxPlaceAttempts  int     `yaml:"max_place_attempts"`
}

// VisionSection defines perception parameters.
type VisionSection struct {
	Range       float64 `yaml:"range"`
	AlertRadius float64 `yaml:"alert_radius"`
}

// TokensSection defines the collectibles and the win condition.
type TokensSection struct {
	Count int `yaml:"count"`
	ToWin int `yaml:"to_win"`
}

// WavesSection defines the escalation schedule.
type WavesSection struct {
	MovesPerWave  int     `yaml:"moves_per_wave"`
	SpeedIncrease float64 `yaml:"speed_increase"` // fractional bump per wave
}

// DifficultyPreset represents a named difficulty tier.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether the string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// ApplyPursuitPreset rewrites the tunables that distinguish the difficulty
// tiers. Normal leaves the loaded config untouched.
func ApplyPursuitPreset(cfg *PursuitConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Enemies.InitialCount = 3
		cfg.Vision.Range = 7.0
		cfg.Vision.AlertRadius = 5.0
		cfg.Tokens.ToWin = 4
		cfg.Waves.MovesPerWave = 20
		cfg.Waves.SpeedIncrease = 0.02
	case DifficultyHard:
		cfg.Enemies.InitialCount = 6
		cfg.Enemies.MinPlayerDistance = 8.0
		cfg.Vision.Range = 11.0
		cfg.Vision.AlertRadius = 8.0
		cfg.Tokens.ToWin = 6
		cfg.Waves.MovesPerWave = 10
		cfg.Waves.SpeedIncrease = 0.05
	}
}
