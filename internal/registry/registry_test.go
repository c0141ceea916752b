package registry

import (
	"testing"

	"github.com/vovakirdan/tui-pursuit/internal/core"
)

type fakeGame struct{ id, title string }

func (f *fakeGame) ID() string                           { return f.id }
func (f *fakeGame) Title() string                        { return f.title }
func (f *fakeGame) Reset(core.RuntimeConfig)             {}
func (f *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (f *fakeGame) Render(*core.Screen)                  {}
func (f *fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-a", func() Game { return &fakeGame{id: "test-a", title: "Test A"} })

	if !Exists("test-a") {
		t.Error("Registered game should exist")
	}

	g, err := Create("test-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test-a" {
		t.Errorf("Created game ID = %q", g.ID())
	}

	// Each Create returns a fresh instance
	g2, _ := Create("test-a")
	if g == g2 {
		t.Error("Create() should return distinct instances")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Creating an unregistered game should fail")
	}
	if Exists("no-such-game") {
		t.Error("Exists() should be false for unregistered IDs")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-z", func() Game { return &fakeGame{id: "test-z", title: "Test Z"} })
	Register("test-b", func() Game { return &fakeGame{id: "test-b", title: "Test B"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("List not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	found := false
	for _, g := range games {
		if g.ID == "test-b" && g.Title == "Test B" {
			found = true
		}
	}
	if !found {
		t.Error("Registered game missing from List()")
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Duplicate registration should panic")
		}
	}()

	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })
	Register("test-dup", func() Game { return &fakeGame{id: "test-dup"} })
}
