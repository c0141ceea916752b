package pursuit

import "testing"

func TestAlertDirectSight(t *testing.T) {
	player := Position{X: 5, Y: 5}
	near := &Enemy{Pos: Position{X: 8, Y: 5}, VisionRange: 5}
	far := &Enemy{Pos: Position{X: 20, Y: 5}, VisionRange: 5}

	propagateAlerts([]*Enemy{near, far}, player, nil, 0)

	if !near.SeesPlayer {
		t.Error("Enemy within vision range should see the player")
	}
	if far.SeesPlayer {
		t.Error("Enemy beyond vision range should not see the player")
	}
}

func TestAlertSingleHopRelay(t *testing.T) {
	player := Position{X: 0, Y: 0}

	// seer sees the player directly; relay is out of vision but within the
	// alert radius of the seer; distant is only within the alert radius of
	// relay, never of a direct seer.
	seer := &Enemy{Pos: Position{X: 3, Y: 0}, VisionRange: 5}
	relay := &Enemy{Pos: Position{X: 7, Y: 0}, VisionRange: 2}
	distant := &Enemy{Pos: Position{X: 11, Y: 0}, VisionRange: 2}

	propagateAlerts([]*Enemy{seer, relay, distant}, player, nil, 4)

	if !seer.SeesPlayer {
		t.Fatal("Direct seer should be alerted")
	}
	if !relay.SeesPlayer {
		t.Error("Enemy within alert radius of a seer should be relayed the alert")
	}
	if distant.SeesPlayer {
		t.Error("Alert must travel at most one hop per tick")
	}
}

func TestAlertBlockedSightStillRelays(t *testing.T) {
	player := Position{X: 0, Y: 0}
	obstacles := map[Position]bool{{X: 2, Y: 0}: true}

	seer := &Enemy{Pos: Position{X: 0, Y: 3}, VisionRange: 5}
	blocked := &Enemy{Pos: Position{X: 4, Y: 0}, VisionRange: 5}

	propagateAlerts([]*Enemy{seer, blocked}, player, obstacles, 6)

	if !seer.SeesPlayer {
		t.Fatal("Unobstructed enemy should see the player")
	}
	// Wall blocks blocked's own sight, but the relay ignores walls
	if !blocked.SeesPlayer {
		t.Error("Relay within alert radius should work through walls")
	}
}

func TestAlertRecomputedEveryTick(t *testing.T) {
	player := Position{X: 50, Y: 50}
	e := &Enemy{Pos: Position{X: 0, Y: 0}, VisionRange: 5, SeesPlayer: true}

	propagateAlerts([]*Enemy{e}, player, nil, 3)

	if e.SeesPlayer {
		t.Error("Alert state must be recomputed from scratch, not remembered")
	}
}
