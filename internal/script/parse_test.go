package script

import (
	"testing"
)

// TestParseEntriesSchema tests decoding of every authored entry kind
func TestParseEntriesSchema(t *testing.T) {
	data := []byte(`[
		{"type": "line", "speaker": "Partner", "emotion": "angry", "line": "You came.", "voice": "partner_01"},
		{"type": "narration", "line": "Rain hammers the window."},
		{"type": "choice", "timer": 5, "choices": [
			{"text": "Stay", "points": 5, "target": "sceneB"},
			{"text": "Leave", "points": -5, "lock_condition": "< 0"}
		]},
		{"command": "hide", "target": "Partner"},
		{"type": "image_screen", "image": "cg/ending1.png"}
	]`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	line := entries[0]
	if line.Kind != KindLine || line.Speaker != "Partner" || line.Emotion != "angry" ||
		line.Text != "You came." || line.Voice != "partner_01" {
		t.Errorf("line entry decoded incorrectly: %+v", line)
	}

	if entries[1].Kind != KindNarration || entries[1].Text != "Rain hammers the window." {
		t.Errorf("narration entry decoded incorrectly: %+v", entries[1])
	}

	choice := entries[2]
	if choice.Kind != KindChoice || choice.TimerS != 5 {
		t.Fatalf("choice entry decoded incorrectly: %+v", choice)
	}
	if len(choice.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(choice.Options))
	}
	if choice.Options[0].Points != 5 || choice.Options[0].Target != "sceneB" {
		t.Errorf("first option decoded incorrectly: %+v", choice.Options[0])
	}
	if choice.Options[1].Lock == nil {
		t.Error("second option should carry a parsed lock condition")
	}

	cmd := entries[3]
	if cmd.Kind != KindCommand || cmd.Action != ActionHide || cmd.Target != "Partner" {
		t.Errorf("implicit command entry decoded incorrectly: %+v", cmd)
	}

	if entries[4].Kind != KindImage || entries[4].Image != "cg/ending1.png" {
		t.Errorf("image entry decoded incorrectly: %+v", entries[4])
	}
}

// TestParseEntriesUnknownType tests that unrecognized types become inert
// pass-through entries instead of errors
func TestParseEntriesUnknownType(t *testing.T) {
	entries, err := ParseEntries([]byte(`[
		{"type": "future_feature", "payload": 42},
		{"speaker": "nobody"},
		{"type": "line", "line": "still here"}
	]`))
	if err != nil {
		t.Fatalf("unknown types must not error: %v", err)
	}
	if entries[0].Kind != KindUnknown {
		t.Errorf("expected unknown kind, got %s", entries[0].Kind)
	}
	if entries[1].Kind != KindUnknown {
		t.Errorf("typeless non-command row should be unknown, got %s", entries[1].Kind)
	}
	if entries[2].Kind != KindLine {
		t.Errorf("valid entry after unknown rows should decode, got %s", entries[2].Kind)
	}
}

// TestParseEntriesBadCommand tests that a command with an unsupported verb
// degrades to an inert entry
func TestParseEntriesBadCommand(t *testing.T) {
	entries, err := ParseEntries([]byte(`[{"command": "explode", "target": "Partner"}]`))
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if entries[0].Kind != KindUnknown {
		t.Errorf("unsupported command verb should be inert, got %s", entries[0].Kind)
	}
}

// TestParseEntriesBranch tests nested branch decoding inside options
func TestParseEntriesBranch(t *testing.T) {
	entries, err := ParseEntries([]byte(`[
		{"type": "choice", "choices": [
			{"text": "Ask", "branch": [
				{"type": "line", "speaker": "Partner", "line": "Fine. The truth."},
				{"type": "narration", "line": "A long silence."}
			]}
		]}
	]`))
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	branch := entries[0].Options[0].Branch
	if len(branch) != 2 {
		t.Fatalf("expected 2 branch entries, got %d", len(branch))
	}
	if branch[0].Kind != KindLine || branch[1].Kind != KindNarration {
		t.Errorf("branch entries decoded incorrectly: %+v", branch)
	}
	if entries[0].Options[0].Outcome() != OutcomeBranch {
		t.Error("option with branch should resolve to branch outcome")
	}
}

// TestParseEntriesMalformedDocument tests that only a broken top-level
// document errors
func TestParseEntriesMalformedDocument(t *testing.T) {
	if _, err := ParseEntries([]byte(`{"not": "an array"}`)); err == nil {
		t.Error("expected error for non-array document")
	}
	if _, err := ParseEntries([]byte(`[`)); err == nil {
		t.Error("expected error for truncated document")
	}
}
