package pursuit

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

// State is the engine lifecycle. Won and Lost are terminal.
type State int

const (
	StateRunning State = iota
	StateWon
	StateLost
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventTokenCollected EventKind = iota
	EventWaveAdvanced
	EventCaught
)

// Event is a single tick occurrence reported to the host.
type Event struct {
	Kind    EventKind
	Pos     Position // token cell for EventTokenCollected
	Wave    int      // new wave number for EventWaveAdvanced
	Spawned int      // enemies added for EventWaveAdvanced
}

// TickResult is returned by Tick: the post-tick state plus any events.
type TickResult struct {
	State  State
	Events []Event
}

// Errors returned by Tick. The host validates moves before submitting them;
// these exist as a defensive backstop, not as a control-flow mechanism.
var (
	ErrInvalidMove = errors.New("pursuit: invalid move")
	ErrFinished    = errors.New("pursuit: game already finished")
)

// Engine owns the world and advances it one tick per accepted player move.
// It never ticks autonomously and is safe to abandon between ticks.
type Engine struct {
	cfg      WorldConfig
	rng      *rand.Rand
	bounds   core.Rect // full grid including the border frame
	interior core.Rect // playable region, border excluded

	player    *Player
	pop       *EnemyPopulation
	obstacles map[Position]bool
	tokens    []*Token

	state State
}

// NewEngine builds a ready-to-tick world: player at the interior center,
// then obstacles, tokens and the initial enemy wave placed by rejection
// sampling. Entity counts are best-effort; a crowded grid simply gets
// fewer obstacles or enemies than configured.
func NewEngine(cfg WorldConfig, rng *rand.Rand) *Engine {
	bounds := core.NewRect(0, 0, cfg.Width, cfg.Height)
	e := &Engine{
		cfg:       cfg,
		rng:       rng,
		bounds:    bounds,
		interior:  bounds.Inset(1),
		obstacles: make(map[Position]bool),
		state:     StateRunning,
	}

	cx, cy := e.interior.Center()
	e.player = &Player{
		Pos:         Position{X: cx, Y: cy},
		Alive:       true,
		TokensToWin: cfg.TokensToWin,
	}

	// Static entities never share a cell at creation time.
	occupied := map[Position]bool{e.player.Pos: true}

	for i := 0; i < cfg.ObstacleCount; i++ {
		pos, ok := samplePosition(rng, e.interior, occupied, e.player.Pos, 2.0, cfg.MaxPlaceAttempts)
		if !ok {
			break
		}
		occupied[pos] = true
		e.obstacles[pos] = true
	}

	for i := 0; i < cfg.TokenCount; i++ {
		pos, ok := samplePosition(rng, e.interior, occupied, e.player.Pos, 1.5, cfg.MaxPlaceAttempts)
		if !ok {
			break
		}
		occupied[pos] = true
		e.tokens = append(e.tokens, &Token{Pos: pos})
	}

	e.pop = &EnemyPopulation{Wave: 1, SpeedMult: cfg.BaseSpeedMult}
	for i := 0; i < cfg.InitialEnemies; i++ {
		pos, ok := samplePosition(rng, e.interior, occupied, e.player.Pos, cfg.MinEnemyDistance, cfg.MaxPlaceAttempts)
		if !ok {
			break
		}
		occupied[pos] = true
		e.pop.Enemies = append(e.pop.Enemies, e.newEnemy(pos))
	}

	return e
}

// Config returns the engine's immutable tuning.
func (e *Engine) Config() WorldConfig {
	return e.cfg
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// ValidMove reports whether the move is acceptable from the current player
// position: DirNone (pass) is always valid, otherwise the destination must
// be inside the interior and free of obstacles. This is the contract the
// input collaborator checks before calling Tick.
func (e *Engine) ValidMove(dir Direction) bool {
	if dir == DirNone {
		return true
	}
	dx, dy := dir.Delta()
	dest := Position{X: e.player.Pos.X + dx, Y: e.player.Pos.Y + dy}
	return e.interior.Contains(dest.X, dest.Y) && !e.obstacles[dest]
}

// Tick advances the world by one discrete step in fixed order: apply the
// move, token pickup, win check, vision and alert propagation, catch check,
// enemy movement, catch check again, wave escalation. A terminal transition
// short-circuits the remaining phases.
func (e *Engine) Tick(dir Direction) (TickResult, error) {
	if e.state != StateRunning {
		return TickResult{State: e.state}, ErrFinished
	}
	if !e.ValidMove(dir) {
		return TickResult{State: e.state}, ErrInvalidMove
	}

	var events []Event

	dx, dy := dir.Delta()
	e.player.Pos = Position{X: e.player.Pos.X + dx, Y: e.player.Pos.Y + dy}
	e.player.Moves++

	if t := e.tokenAt(e.player.Pos); t != nil {
		t.Collected = true
		e.player.Tokens++
		events = append(events, Event{Kind: EventTokenCollected, Pos: t.Pos})
	}

	if e.player.Won() {
		e.state = StateWon
		return TickResult{State: e.state, Events: events}, nil
	}

	propagateAlerts(e.pop.Enemies, e.player.Pos, e.obstacles, e.cfg.AlertRadius)

	if e.enemyAt(e.player.Pos) {
		return e.lose(events), nil
	}

	for _, en := range e.pop.Enemies {
		stepEnemy(e.rng, en, e.player.Pos, e.obstacles, e.interior, e.cfg.WanderInterval, e.cfg.WanderChance)
	}

	if e.enemyAt(e.player.Pos) {
		return e.lose(events), nil
	}

	if advanced, wave, spawned := e.maybeEscalate(); advanced {
		events = append(events, Event{Kind: EventWaveAdvanced, Wave: wave, Spawned: spawned})
	}

	return TickResult{State: e.state, Events: events}, nil
}

// lose transitions to the terminal Lost state. Alive flips exactly once.
func (e *Engine) lose(events []Event) TickResult {
	e.state = StateLost
	e.player.Alive = false
	events = append(events, Event{Kind: EventCaught, Pos: e.player.Pos})
	return TickResult{State: e.state, Events: events}
}

// tokenAt returns the token occupying the cell, or nil. Collected tokens
// still reserve their cell but are skipped here, so a token can never be
// collected twice.
func (e *Engine) tokenAt(p Position) *Token {
	for _, t := range e.tokens {
		if t.Pos == p && !t.Collected {
			return t
		}
	}
	return nil
}
