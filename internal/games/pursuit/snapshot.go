package pursuit

// EnemyView is the read-only enemy state exposed to renderers.
type EnemyView struct {
	Pos     Position
	Speed   float64
	Alerted bool
}

// TokenView is the read-only token state exposed to renderers.
type TokenView struct {
	Pos       Position
	Collected bool
}

// WorldSnapshot is a queryable copy of the world emitted after every tick.
// Renderers consume it without touching engine internals.
type WorldSnapshot struct {
	Player    Player
	Enemies   []EnemyView
	Obstacles []Position
	Tokens    []TokenView
	Wave      int
	SpeedMult float64
	State     State
}

// Snapshot returns a read-only copy of the current world state.
func (e *Engine) Snapshot() WorldSnapshot {
	snap := WorldSnapshot{
		Player:    *e.player,
		Wave:      e.pop.Wave,
		SpeedMult: e.pop.SpeedMult,
		State:     e.state,
	}

	snap.Enemies = make([]EnemyView, len(e.pop.Enemies))
	for i, en := range e.pop.Enemies {
		snap.Enemies[i] = EnemyView{Pos: en.Pos, Speed: en.Speed, Alerted: en.SeesPlayer}
	}

	snap.Obstacles = make([]Position, 0, len(e.obstacles))
	for pos := range e.obstacles {
		snap.Obstacles = append(snap.Obstacles, pos)
	}

	snap.Tokens = make([]TokenView, len(e.tokens))
	for i, t := range e.tokens {
		snap.Tokens[i] = TokenView{Pos: t.Pos, Collected: t.Collected}
	}

	return snap
}

// Snapshot captures the full game state in primitive form for determinism
// testing and replay verification.
type Snapshot struct {
	Moves      int
	Tokens     int
	Wave       int
	PlayerX    int
	PlayerY    int
	EnemyCount int
	State      string

	// Each enemy is 4 ints: X, Y, truncated speed step, alerted flag.
	EnemyData []int
}

// GameSnapshot returns the current state as a Snapshot.
func (e *Engine) GameSnapshot() Snapshot {
	snap := Snapshot{
		Moves:      e.player.Moves,
		Tokens:     e.player.Tokens,
		Wave:       e.pop.Wave,
		PlayerX:    e.player.Pos.X,
		PlayerY:    e.player.Pos.Y,
		EnemyCount: len(e.pop.Enemies),
		State:      e.state.String(),
	}

	snap.EnemyData = make([]int, 0, len(e.pop.Enemies)*4)
	for _, en := range e.pop.Enemies {
		alerted := 0
		if en.SeesPlayer {
			alerted = 1
		}
		snap.EnemyData = append(snap.EnemyData, en.Pos.X, en.Pos.Y, int(en.Speed), alerted)
	}

	return snap
}

// Hash folds the snapshot into a single comparable value.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Moves)
	h = h*31 + uint64(snap.Tokens)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	return h
}
