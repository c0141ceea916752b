package pursuit

import (
	"math/rand"
	"testing"
)

// bareConfig returns a world with no randomly placed entities, so tests can
// arrange the grid by hand.
func bareConfig() WorldConfig {
	return WorldConfig{
		Width:            20,
		Height:           12,
		InitialEnemies:   0,
		EnemyBaseSpeed:   1.0,
		BaseSpeedMult:    1.0,
		PerWaveIncrease:  0.03,
		MovesPerWave:     15,
		VisionRange:      9,
		AlertRadius:      6,
		ObstacleCount:    0,
		TokenCount:       0,
		TokensToWin:      3,
		WanderInterval:   3,
		WanderChance:     0.4,
		MinEnemyDistance: 5,
		MaxPlaceAttempts: 200,
	}
}

func bareEngine(seed int64) *Engine {
	return NewEngine(bareConfig(), rand.New(rand.NewSource(seed)))
}

func TestValidMove(t *testing.T) {
	e := bareEngine(1)
	e.player.Pos = Position{X: 1, Y: 1} // interior top-left corner

	if !e.ValidMove(DirNone) {
		t.Error("DirNone (wait) should always be valid")
	}
	if e.ValidMove(DirUp) {
		t.Error("Moving into the top border should be invalid")
	}
	if e.ValidMove(DirLeft) {
		t.Error("Moving into the left border should be invalid")
	}
	if !e.ValidMove(DirDown) {
		t.Error("Moving down into open interior should be valid")
	}

	e.obstacles[Position{X: 2, Y: 1}] = true
	if e.ValidMove(DirRight) {
		t.Error("Moving onto an obstacle should be invalid")
	}
}

func TestTickRejectsInvalidMove(t *testing.T) {
	e := bareEngine(1)
	e.player.Pos = Position{X: 1, Y: 1}

	_, err := e.Tick(DirUp)
	if err != ErrInvalidMove {
		t.Fatalf("Tick(DirUp) into border: got err %v, expected ErrInvalidMove", err)
	}
	if e.player.Moves != 0 {
		t.Errorf("Rejected move should not count: Moves = %d", e.player.Moves)
	}
	if e.player.Pos != (Position{X: 1, Y: 1}) {
		t.Errorf("Rejected move should not displace the player: %v", e.player.Pos)
	}
}

func TestTickAfterFinish(t *testing.T) {
	e := bareEngine(1)
	e.state = StateWon

	result, err := e.Tick(DirDown)
	if err != ErrFinished {
		t.Fatalf("Tick on finished game: got err %v, expected ErrFinished", err)
	}
	if result.State != StateWon {
		t.Errorf("Result state = %v, expected Won", result.State)
	}
}

func TestWaitIsATurn(t *testing.T) {
	e := bareEngine(1)
	start := e.player.Pos

	if _, err := e.Tick(DirNone); err != nil {
		t.Fatalf("Tick(DirNone) failed: %v", err)
	}

	if e.player.Pos != start {
		t.Errorf("Waiting should not move the player: %v -> %v", start, e.player.Pos)
	}
	if e.player.Moves != 1 {
		t.Errorf("Waiting should still count as a move: Moves = %d", e.player.Moves)
	}
}

func TestTokenCollection(t *testing.T) {
	e := bareEngine(1)
	e.player.Pos = Position{X: 5, Y: 6}
	e.tokens = []*Token{{Pos: Position{X: 6, Y: 6}}}

	result, err := e.Tick(DirRight)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if e.player.Tokens != 1 {
		t.Errorf("Tokens = %d, expected 1", e.player.Tokens)
	}
	if !e.tokens[0].Collected {
		t.Error("Token should be flagged collected")
	}

	found := false
	for _, ev := range result.Events {
		if ev.Kind == EventTokenCollected && ev.Pos == (Position{X: 6, Y: 6}) {
			found = true
		}
	}
	if !found {
		t.Error("Expected a TokenCollected event")
	}
}

func TestNoDoubleCollection(t *testing.T) {
	e := bareEngine(1)
	e.player.Pos = Position{X: 5, Y: 6}
	e.tokens = []*Token{{Pos: Position{X: 6, Y: 6}}}

	e.Tick(DirRight) // collect
	e.Tick(DirLeft)  // step off
	e.Tick(DirRight) // step back onto the collected cell

	if e.player.Tokens != 1 {
		t.Errorf("Revisiting a collected cell must not count again: Tokens = %d", e.player.Tokens)
	}
}

func TestWinIsExact(t *testing.T) {
	// TokensToWin = 3: the third pickup must end the game immediately,
	// before vision, catches or enemy movement run.
	e := bareEngine(1)
	e.player.Pos = Position{X: 5, Y: 6}
	e.player.TokensToWin = 3
	e.tokens = []*Token{
		{Pos: Position{X: 6, Y: 6}},
		{Pos: Position{X: 7, Y: 6}},
		{Pos: Position{X: 8, Y: 6}},
	}
	// A blind enemy parked on the final token cell: the win check precedes
	// the catch check, so stepping onto it with the last token still wins.
	// Zero vision keeps it stationary for the approach.
	e.pop.Enemies = []*Enemy{{Pos: Position{X: 8, Y: 6}, Speed: 1.0, VisionRange: 0}}

	e.Tick(DirRight)
	e.Tick(DirRight)
	if e.state != StateRunning {
		t.Fatalf("Game ended early at %d tokens", e.player.Tokens)
	}

	result, err := e.Tick(DirRight)
	if err != nil {
		t.Fatalf("Final tick failed: %v", err)
	}
	if result.State != StateWon {
		t.Errorf("State = %v, expected Won (win check runs before catch check)", result.State)
	}
}

func TestCatchOnPlayerMove(t *testing.T) {
	// Walking into an enemy's cell loses before any enemy moves.
	e := bareEngine(1)
	e.player.Pos = Position{X: 5, Y: 6}
	enemy := &Enemy{Pos: Position{X: 6, Y: 6}, Speed: 1.0, VisionRange: 9}
	e.pop.Enemies = []*Enemy{enemy}

	result, err := e.Tick(DirRight)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}

	if result.State != StateLost {
		t.Fatalf("State = %v, expected Lost", result.State)
	}
	if enemy.Pos != (Position{X: 6, Y: 6}) {
		t.Errorf("Enemy must not have moved on the losing tick: %v", enemy.Pos)
	}
	if e.player.Alive {
		t.Error("Player should be dead after a catch")
	}

	found := false
	for _, ev := range result.Events {
		if ev.Kind == EventCaught {
			found = true
		}
	}
	if !found {
		t.Error("Expected a Caught event")
	}
}

func TestCatchAfterEnemyMove(t *testing.T) {
	// Enemy adjacent after the player's move; it pursues and lands on the
	// player, triggering the second catch check.
	e := bareEngine(1)
	e.player.Pos = Position{X: 5, Y: 6}
	e.pop.Enemies = []*Enemy{{Pos: Position{X: 5, Y: 6 + 1}, Speed: 1.0, VisionRange: 9}}

	result, err := e.Tick(DirNone)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if result.State != StateLost {
		t.Errorf("State = %v, expected Lost after enemy stepped onto the player", result.State)
	}
}

func TestNewEngineLayout(t *testing.T) {
	cfg := bareConfig()
	cfg.ObstacleCount = 10
	cfg.TokenCount = 5
	cfg.InitialEnemies = 3
	cfg.MinEnemyDistance = 4

	e := NewEngine(cfg, rand.New(rand.NewSource(7)))
	snap := e.Snapshot()

	// Player at the interior center
	cx, cy := e.interior.Center()
	if snap.Player.Pos != (Position{X: cx, Y: cy}) {
		t.Errorf("Player at %v, expected interior center (%d, %d)", snap.Player.Pos, cx, cy)
	}

	// Nothing placed outside the interior or on the player
	for _, pos := range snap.Obstacles {
		if !e.interior.Contains(pos.X, pos.Y) {
			t.Errorf("Obstacle outside interior: %v", pos)
		}
		if pos == snap.Player.Pos {
			t.Errorf("Obstacle on the player cell")
		}
	}
	for _, tok := range snap.Tokens {
		if !e.interior.Contains(tok.Pos.X, tok.Pos.Y) {
			t.Errorf("Token outside interior: %v", tok.Pos)
		}
	}

	// Enemy spawn separation from the player
	for _, en := range snap.Enemies {
		if d := en.Pos.Dist(snap.Player.Pos); d < cfg.MinEnemyDistance {
			t.Errorf("Enemy at %v too close to player: %.2f < %.2f", en.Pos, d, cfg.MinEnemyDistance)
		}
	}

	// No two static entities share a cell
	seen := map[Position]bool{snap.Player.Pos: true}
	check := func(p Position) {
		if seen[p] {
			t.Errorf("Cell %v occupied twice", p)
		}
		seen[p] = true
	}
	for _, pos := range snap.Obstacles {
		check(pos)
	}
	for _, tok := range snap.Tokens {
		check(tok.Pos)
	}
	for _, en := range snap.Enemies {
		check(en.Pos)
	}
}

func TestEngineDeterminism(t *testing.T) {
	cfg := bareConfig()
	cfg.ObstacleCount = 15
	cfg.TokenCount = 6
	cfg.InitialEnemies = 4
	cfg.MinEnemyDistance = 3

	run := func(seed int64) []uint64 {
		e := NewEngine(cfg, rand.New(rand.NewSource(seed)))
		moves := []Direction{DirRight, DirRight, DirUp, DirNone, DirLeft, DirDown, DirDown, DirNone, DirRight, DirUp}

		var hashes []uint64
		for i := 0; i < 60 && e.State() == StateRunning; i++ {
			dir := moves[i%len(moves)]
			if !e.ValidMove(dir) {
				dir = DirNone
			}
			if _, err := e.Tick(dir); err != nil {
				t.Fatalf("Tick %d failed: %v", i, err)
			}
			snap := e.GameSnapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	h1 := run(12345)
	h2 := run(12345)

	if len(h1) != len(h2) {
		t.Fatalf("Run lengths differ: %d vs %d", len(h1), len(h2))
	}
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("Snapshot hash diverged at tick %d: %d vs %d", i, h1[i], h2[i])
		}
	}

	// And a different seed should (overwhelmingly) differ
	h3 := run(54321)
	same := len(h1) == len(h3)
	if same {
		for i := range h1 {
			if h1[i] != h3[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("Different seeds produced identical runs")
	}
}
