package pursuit

// maybeEscalate advances the wave when the cumulative player move count
// crosses the next movesPerWave boundary. Advancing a wave:
//
//   - recomputes the population multiplier as base × (1 + (wave-1) × inc),
//   - spawns 1 + wave/7 reinforcements at the border, stamped with the
//     freshly recomputed multiplier,
//   - bumps every existing enemy's speed by (1 + inc) once.
//
// Existing and newly spawned enemies therefore drift apart slightly as
// waves compound. That desync matches the original game and is kept as-is.
func (e *Engine) maybeEscalate() (advanced bool, wave, spawned int) {
	expected := 1 + e.player.Moves/e.cfg.MovesPerWave
	if expected <= e.pop.Wave {
		return false, 0, 0
	}

	e.pop.Wave = expected
	e.pop.SpeedMult = e.cfg.BaseSpeedMult * (1 + float64(e.pop.Wave-1)*e.cfg.PerWaveIncrease)

	for _, en := range e.pop.Enemies {
		en.Speed *= 1 + e.cfg.PerWaveIncrease
	}

	want := 1 + e.pop.Wave/7
	for i := 0; i < want; i++ {
		pos, ok := sampleBorder(e.rng, e.bounds, e.enemyAt, e.cfg.MaxPlaceAttempts)
		if !ok {
			continue
		}
		e.pop.Enemies = append(e.pop.Enemies, e.newEnemy(pos))
		spawned++
	}

	return true, e.pop.Wave, spawned
}

// newEnemy builds an enemy at the population's current multiplier.
func (e *Engine) newEnemy(pos Position) *Enemy {
	return &Enemy{
		Pos:         pos,
		Speed:       e.cfg.EnemyBaseSpeed * e.pop.SpeedMult,
		VisionRange: e.cfg.VisionRange,
	}
}

// enemyAt reports whether any enemy currently occupies the cell.
func (e *Engine) enemyAt(p Position) bool {
	for _, en := range e.pop.Enemies {
		if en.Pos == p {
			return true
		}
	}
	return false
}
