package registry

import (
	"testing"

	"github.com/vovakirdan/tui-breaker/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string                         { return g.id }
func (g fakeGame) Title() string                      { return "Fake " + g.id }
func (fakeGame) Reset(core.RuntimeConfig)             {}
func (fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (fakeGame) Render(*core.Screen)                  {}
func (fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register(GameInfo{ID: "test_b", Title: "Fake test_b"}, func() Game { return fakeGame{id: "test_b"} })
	Register(GameInfo{ID: "test_a", Description: "first"}, func() Game { return fakeGame{id: "test_a"} })

	if !Exists("test_a") || Exists("test_missing") {
		t.Fatal("Exists did not report registrations")
	}

	g, err := Create("test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_b" {
		t.Errorf("Create returned %q", g.ID())
	}
	if _, err := Create("test_missing"); err == nil {
		t.Error("Create of an unknown game should fail")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "test_a" && (info.Title != "test_a" || info.Description != "first") {
			t.Errorf("untitled entry = %+v, want the ID as title", info)
		}
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Fatalf("List not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "test_dup"}, func() Game { return fakeGame{id: "test_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "test_dup"}, func() Game { return fakeGame{id: "test_dup"} })
}

func TestRegisterRejectsEmptyID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("empty ID should panic")
		}
	}()
	Register(GameInfo{}, func() Game { return fakeGame{} })
}
