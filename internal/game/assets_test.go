package game

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadCatalogScan tests extension-based discovery and the two keying
// schemes: audio by base name, images by relative path
func TestLoadCatalogScan(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "voice", "partner_late.ogg"))
	mustWrite(t, filepath.Join(root, "music", "nightfall_theme.wav"))
	mustWrite(t, filepath.Join(root, "cg", "blackout_map.png"))
	mustWrite(t, filepath.Join(root, "notes.txt"))

	cat := LoadCatalog(root)

	if _, ok := cat.ResolveAudio("partner_late"); !ok {
		t.Error("voice clip not discovered by base name")
	}
	if _, ok := cat.ResolveAudio("nightfall_theme"); !ok {
		t.Error("music track not discovered")
	}
	if h, ok := cat.ResolveImage("cg/blackout_map.png"); !ok || h != "cg/blackout_map.png" {
		t.Errorf("image not discovered by relative path, got %q ok=%v", h, ok)
	}
	if _, ok := cat.ResolveAudio("notes"); ok {
		t.Error("non-asset extension should be ignored")
	}
	if cat.AudioCount() != 2 {
		t.Errorf("expected 2 audio assets, got %d", cat.AudioCount())
	}
}

// TestLoadCatalogMissingDir tests graceful degradation to an empty
// catalog
func TestLoadCatalogMissingDir(t *testing.T) {
	cat := LoadCatalog("/nonexistent/assets")
	if cat == nil {
		t.Fatal("missing dir must still yield a catalog")
	}
	if _, ok := cat.ResolveAudio("anything"); ok {
		t.Error("empty catalog should miss")
	}
}

// TestVoiceChannel tests play/stop/done bookkeeping and missing-clip
// degradation
func TestVoiceChannel(t *testing.T) {
	cat := NewCatalog()
	cat.AddAudio("v01", "voice/v01.ogg")
	vc := NewVoiceChannel(cat)

	if vc.Play("missing") {
		t.Error("unknown clip must degrade to a no-op")
	}
	if vc.VoiceBusy() {
		t.Error("failed play must not mark the channel busy")
	}

	if !vc.Play("v01") {
		t.Fatal("known clip should play")
	}
	if !vc.VoiceBusy() || vc.CurrentVoice() != "v01" {
		t.Error("channel should report the playing clip")
	}

	vc.Stop("other")
	if !vc.VoiceBusy() {
		t.Error("stopping a different clip must not clear the channel")
	}
	vc.Stop("v01")
	if vc.VoiceBusy() {
		t.Error("stop should clear the channel")
	}

	vc.Play("v01")
	vc.VoiceDone()
	if vc.VoiceBusy() {
		t.Error("VoiceDone should clear the channel")
	}
}

// TestVoiceChannelMusic tests track switching and the repeat no-op
func TestVoiceChannelMusic(t *testing.T) {
	cat := NewCatalog()
	cat.AddAudio("theme", "music/theme.ogg")
	vc := NewVoiceChannel(cat)

	vc.SwitchMusic("theme")
	if vc.CurrentMusic() != "theme" {
		t.Errorf("expected theme, got %q", vc.CurrentMusic())
	}
	vc.SwitchMusic("theme") // repeat: no-op by contract
	if vc.CurrentMusic() != "theme" {
		t.Error("repeat switch should keep the track")
	}
	vc.SwitchMusic("unknown_track")
	if vc.CurrentMusic() != "theme" {
		t.Error("unknown track should not replace the playing one")
	}
}

func mustWrite(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}
