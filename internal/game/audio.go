package game

import "log"

// Audio is the playback collaborator the engine drives. The engine only
// ever requests playback by name and polls the voice channel; decoding
// and output are the presentation layer's problem.
type Audio interface {
	// Play requests playback of a named clip. Returns false when the
	// clip is unknown; the caller treats that as a silent no-op.
	Play(name string) bool
	// Stop halts the named clip if it is the one playing.
	Stop(name string)
	// VoiceBusy reports whether a voice clip is still playing. The
	// engine auto-advances lines once the channel goes idle.
	VoiceBusy() bool
	// SwitchMusic changes the background track. Requesting the track
	// that is already playing is a no-op so scene changes that share
	// music do not restart it.
	SwitchMusic(track string)
}

// VoiceChannel implements Audio for the server-authoritative setup: the
// server does not play audio itself, it tracks what the client was told
// to play. The client reports completion through VoiceDone. Lookups go
// through the catalog so missing clips degrade to logged no-ops.
type VoiceChannel struct {
	assets  *Catalog
	current string
	music   string
}

// NewVoiceChannel creates a channel over the given catalog. A nil
// catalog disables lookup and every Play misses.
func NewVoiceChannel(assets *Catalog) *VoiceChannel {
	return &VoiceChannel{assets: assets}
}

// Play implements Audio.
func (v *VoiceChannel) Play(name string) bool {
	if name == "" {
		return false
	}
	if v.assets == nil {
		log.Printf("audio: no catalog, dropping clip %q", name)
		return false
	}
	if _, ok := v.assets.ResolveAudio(name); !ok {
		log.Printf("audio: clip %q not found", name)
		return false
	}
	v.current = name
	return true
}

// Stop implements Audio.
func (v *VoiceChannel) Stop(name string) {
	if name != "" && v.current == name {
		v.current = ""
	}
}

// VoiceBusy implements Audio.
func (v *VoiceChannel) VoiceBusy() bool {
	return v.current != ""
}

// VoiceDone clears the channel. Called when the presentation layer
// reports the clip finished.
func (v *VoiceChannel) VoiceDone() {
	v.current = ""
}

// CurrentVoice returns the clip the client should be playing, empty when
// idle.
func (v *VoiceChannel) CurrentVoice() string {
	return v.current
}

// SwitchMusic implements Audio.
func (v *VoiceChannel) SwitchMusic(track string) {
	if track == "" || track == v.music {
		return
	}
	if v.assets != nil {
		if _, ok := v.assets.ResolveAudio(track); !ok {
			log.Printf("audio: music track %q not found", track)
			return
		}
	}
	v.music = track
}

// CurrentMusic returns the active background track.
func (v *VoiceChannel) CurrentMusic() string {
	return v.music
}

// VoicePath returns the catalog path of the playing clip, for clients
// that fetch audio over HTTP. Falls back to the bare name.
func (v *VoiceChannel) VoicePath() string {
	return v.resolvePath(v.current)
}

// MusicPath returns the catalog path of the active track.
func (v *VoiceChannel) MusicPath() string {
	return v.resolvePath(v.music)
}

func (v *VoiceChannel) resolvePath(name string) string {
	if name == "" {
		return ""
	}
	if v.assets != nil {
		if path, ok := v.assets.ResolveAudio(name); ok {
			return path
		}
	}
	return name
}
