package pursuit

import (
	"math/rand"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/registry"
)

// Game adapts the engine to the platform. It is the engine's input
// collaborator: it maps actions to directions, validates each move against
// the interior bounds and obstacles, and only submits accepted moves.
// The game is strictly turn-based; the platform's tick loop only re-renders
// between key presses.
type Game struct {
	rng    *rand.Rand
	engine *Engine
	world  WorldConfig

	score      int
	waveFlash  int // render ticks left to highlight a new wave
	latestWave int

	// Screen layout
	screenW    int
	screenH    int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty, set by the CLI before
// game creation (same pattern as the other platform flags).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path for the next game.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for the next game.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// DifficultyPreset returns the currently selected preset ("" = normal).
func DifficultyPreset() string {
	return difficultyPreset
}

// New creates a new pursuit game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pursuit", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pursuit"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Grid Pursuit"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.score = 0
	g.paused = false
	g.waveFlash = 0
	g.latestWave = 1
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2

	pc, err := config.LoadPursuit(configPath)
	if err != nil {
		pc = config.DefaultPursuitConfig()
	}
	if config.ValidPreset(difficultyPreset) {
		config.ApplyPursuitPreset(&pc, config.DifficultyPreset(difficultyPreset))
	}
	g.world = worldFromConfig(pc)

	requiredW := g.world.Width
	requiredH := g.world.Height + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (g.screenW - g.world.Width) / 2
	g.mapOffsetY = g.hudHeight

	g.engine = NewEngine(g.world, g.rng)
}

// worldFromConfig resolves the YAML schema into the engine's tuning.
func worldFromConfig(pc config.PursuitConfig) WorldConfig {
	return WorldConfig{
		Width:            pc.World.Width,
		Height:           pc.World.Height,
		InitialEnemies:   pc.Enemies.InitialCount,
		EnemyBaseSpeed:   pc.Enemies.BaseSpeed,
		BaseSpeedMult:    pc.Enemies.BaseMultiplier,
		PerWaveIncrease:  pc.Waves.SpeedIncrease,
		MovesPerWave:     pc.Waves.MovesPerWave,
		VisionRange:      pc.Vision.Range,
		AlertRadius:      pc.Vision.AlertRadius,
		ObstacleCount:    pc.World.Obstacles,
		TokenCount:       pc.Tokens.Count,
		TokensToWin:      pc.Tokens.ToWin,
		WanderInterval:   pc.Enemies.WanderInterval,
		WanderChance:     pc.Enemies.WanderChance,
		MinEnemyDistance: pc.Enemies.MinPlayerDistance,
		MaxPlaceAttempts: pc.Enemies.MaxPlaceAttempts,
	}
}

// Step advances the game by one platform tick. The engine only ticks when
// the frame carries an accepted move; everything else is presentation.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.engineOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.tooSmall || g.paused || g.engineOver() {
		return core.StepResult{State: g.State()}
	}

	if g.waveFlash > 0 {
		g.waveFlash--
	}

	dir, ok := moveFromInput(input)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	// Input collaborator contract: only validated moves reach the engine.
	if !g.engine.ValidMove(dir) {
		return core.StepResult{State: g.State()}
	}

	result, err := g.engine.Tick(dir)
	if err != nil {
		return core.StepResult{State: g.State()}
	}

	for _, ev := range result.Events {
		if ev.Kind == EventWaveAdvanced {
			g.latestWave = ev.Wave
			g.waveFlash = 90 // ~1.5 seconds at 60 FPS
		}
	}

	g.updateScore()
	return core.StepResult{State: g.State()}
}

// moveFromInput picks the move for this frame. One direction per tick;
// ActionWait passes the turn in place.
func moveFromInput(input core.InputFrame) (Direction, bool) {
	switch {
	case input.Has(core.ActionUp):
		return DirUp, true
	case input.Has(core.ActionDown):
		return DirDown, true
	case input.Has(core.ActionLeft):
		return DirLeft, true
	case input.Has(core.ActionRight):
		return DirRight, true
	case input.Has(core.ActionWait):
		return DirNone, true
	}
	return DirNone, false
}

// updateScore recomputes the survival score: one point per move survived,
// 25 per token, doubled on a win.
func (g *Game) updateScore() {
	snap := g.engine.GameSnapshot()
	g.score = snap.Moves + snap.Tokens*25
	if g.engine.State() == StateWon {
		g.score *= 2
	}
}

func (g *Game) engineOver() bool {
	return g.engine == nil || g.engine.State() != StateRunning
}

// Engine exposes the underlying engine for tests and the scoreboard.
func (g *Game) Engine() *Engine {
	return g.engine
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.engineOver() && !g.tooSmall,
		Paused:   g.paused,
	}
}
