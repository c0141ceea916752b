package pursuit

// propagateAlerts recomputes every enemy's SeesPlayer flag from scratch.
// Pass one is an independent line-of-sight test per enemy. Pass two relays
// the alert a single hop: a non-seeing enemy within alertRadius of any
// directly-seeing enemy becomes alerted too. Relayed enemies do not relay
// further within the same tick, so an alert chain travels at most one
// alert-radius per tick.
func propagateAlerts(enemies []*Enemy, player Position, obstacles map[Position]bool, alertRadius float64) {
	seers := make([]*Enemy, 0, len(enemies))
	for _, e := range enemies {
		e.SeesPlayer = canSee(e.Pos, player, obstacles, e.VisionRange)
		if e.SeesPlayer {
			seers = append(seers, e)
		}
	}

	for _, e := range enemies {
		if e.SeesPlayer {
			continue
		}
		for _, s := range seers {
			if e.Pos.Dist(s.Pos) <= alertRadius {
				e.SeesPlayer = true
				break
			}
		}
	}
}
