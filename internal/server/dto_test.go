package server

import (
	"encoding/json"
	"strings"
	"testing"

	"Nightfall/internal/game"
)

func testHub() *game.Hub {
	return game.NewHub(game.SeedScenes(), game.NewCatalog())
}

// TestBuildStateMsg tests the projection of a fresh session into a frame
func TestBuildStateMsg(t *testing.T) {
	h := testHub()
	s := h.GetSession("")
	if s.ID == "" {
		t.Fatal("session id not assigned")
	}

	s.Mu.Lock()
	msg := buildStateMsg(s)
	s.Mu.Unlock()

	if msg.Type != "state" {
		t.Errorf("type wrong: %q", msg.Type)
	}
	if msg.Session != s.ID {
		t.Errorf("session id wrong: %q", msg.Session)
	}
	if msg.Done {
		t.Error("fresh session should not be done")
	}
	if msg.Scene.ID == "" {
		t.Error("scene id missing")
	}
	if msg.Mode == "" {
		t.Error("mode missing")
	}
}

// TestBuildStateMsgChoice tests that option rows carry lock state
func TestBuildStateMsgChoice(t *testing.T) {
	h := testHub()
	s := h.GetSession("t1")

	// Walk forward until the first choice shows.
	for i := 0; i < 200 && s.Seq.Render().State != game.StateAwaitingChoice; i++ {
		s.Mu.Lock()
		s.Seq.Click(nil)
		s.Seq.Tick(game.Dt)
		s.Mu.Unlock()
	}

	s.Mu.Lock()
	msg := buildStateMsg(s)
	s.Mu.Unlock()
	if msg.Mode != string(game.StateAwaitingChoice) {
		t.Fatalf("expected a choice frame, got mode %q", msg.Mode)
	}
	if len(msg.Options) == 0 {
		t.Fatal("choice frame has no options")
	}
	for _, o := range msg.Options {
		if o.Text == "" {
			t.Error("option row missing text")
		}
	}
}

// TestStateMsgTimerAlwaysSerialized tests that timer presence reaches
// the wire even on the frame where the countdown hits zero remaining
func TestStateMsgTimerAlwaysSerialized(t *testing.T) {
	msg := stateMsg{Type: "state", Mode: string(game.StateAwaitingChoice), HasTimer: true, Timer: 0}
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"has_timer":true`) {
		t.Errorf("has_timer missing from frame: %s", data)
	}
	if !strings.Contains(string(data), `"timer":0`) {
		t.Errorf("timer missing from frame: %s", data)
	}
}

// TestReorderScenes tests the start-scene rotation helper
func TestReorderScenes(t *testing.T) {
	scenes := []*game.Scene{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := reorderScenes(scenes, "b")
	if got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
		t.Errorf("rotation wrong: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}

	got = reorderScenes(scenes, "missing")
	if got[0].ID != "a" {
		t.Errorf("unknown start scene should keep order, got %s first", got[0].ID)
	}

	got = reorderScenes(scenes, "")
	if got[0].ID != "a" {
		t.Errorf("empty start scene should keep order, got %s first", got[0].ID)
	}
}
