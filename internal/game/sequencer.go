package game

import (
	"log"

	"Nightfall/internal/script"
)

// Sequencer owns the ordered scene list, the relationship score, the
// audio channel, and the engine of the currently playing scene. Scenes
// play in list order unless an engine publishes a scene jump, in which
// case the named scene loads instead of the next one. When the list runs
// out the sequencer goes inactive; picking an ending from the final
// score is the outer layer's policy.
type Sequencer struct {
	scenes []*Scene
	byID   map[string]*Scene
	index  int

	rel    *Relationship
	audio  Audio
	assets *Catalog
	cast   *Cast

	scene  *Scene
	engine *Engine
	active bool
}

// NewSequencer builds a sequencer over the given scene list and loads
// the first scene. An empty list yields an inactive sequencer.
func NewSequencer(scenes []*Scene, rel *Relationship, audio Audio, assets *Catalog) *Sequencer {
	seq := &Sequencer{
		scenes: scenes,
		byID:   make(map[string]*Scene, len(scenes)),
		rel:    rel,
		audio:  audio,
		assets: assets,
		cast:   NewCast(),
	}
	for _, s := range scenes {
		seq.byID[s.ID] = s
	}
	if len(scenes) == 0 {
		return seq
	}
	seq.active = true
	seq.loadScene(0)
	return seq
}

// Active reports whether a scene is still playing.
func (q *Sequencer) Active() bool {
	return q.active
}

// Scene returns the scene currently playing, nil when inactive.
func (q *Sequencer) Scene() *Scene {
	if !q.active {
		return nil
	}
	return q.scene
}

// Engine returns the engine of the current scene, nil when inactive.
func (q *Sequencer) Engine() *Engine {
	if !q.active {
		return nil
	}
	return q.engine
}

// Score returns the playthrough's relationship score.
func (q *Sequencer) Score() int {
	if q.rel == nil {
		return 0
	}
	return q.rel.Value()
}

// Tick drives the current engine one frame and follows any scene
// transition it produced.
func (q *Sequencer) Tick(dt float64) {
	if !q.active {
		return
	}
	q.engine.Tick(dt)
	q.followTransitions()
}

// Click forwards a click event to the current engine.
func (q *Sequencer) Click(pos *Point) {
	if !q.active {
		return
	}
	q.engine.Click(pos)
	q.followTransitions()
}

// SelectChoice forwards an explicit option selection.
func (q *Sequencer) SelectChoice(index int) bool {
	if !q.active {
		return false
	}
	ok := q.engine.SelectChoice(index)
	q.followTransitions()
	return ok
}

// VoiceDone lets the presentation layer report voice completion when the
// audio channel supports it.
func (q *Sequencer) VoiceDone() {
	if vc, ok := q.audio.(*VoiceChannel); ok {
		vc.VoiceDone()
	}
}

// Channel returns the voice channel when one is attached, nil otherwise.
func (q *Sequencer) Channel() *VoiceChannel {
	vc, _ := q.audio.(*VoiceChannel)
	return vc
}

// followTransitions consumes pending scene jumps and scene exhaustion,
// looping because a freshly loaded scene can itself be empty or open on
// a jump entry. The hop budget breaks authored jump cycles between
// otherwise-empty scenes.
func (q *Sequencer) followTransitions() {
	for hops := 0; q.active && hops <= len(q.scenes)+1; hops++ {
		if target, ok := q.engine.TakeSceneJump(); ok {
			q.jumpTo(target)
			continue
		}
		if q.engine.State() == StateIdle && q.engine.Exhausted() {
			q.next()
			continue
		}
		return
	}
}

// next advances linearly; past the end the session goes inactive.
func (q *Sequencer) next() {
	if q.index+1 >= len(q.scenes) {
		q.active = false
		return
	}
	q.loadScene(q.index + 1)
}

// jumpTo loads the named scene. An unknown target is logged and degrades
// to linear progression; a bad jump must not stall playback.
func (q *Sequencer) jumpTo(id string) {
	for i, s := range q.scenes {
		if s.ID == id {
			q.loadScene(i)
			return
		}
	}
	log.Printf("sequencer: jump to unknown scene %q, continuing linearly", id)
	q.next()
}

// loadScene builds a fresh document and engine for the scene at list
// position i and switches music if the scene names a different track.
func (q *Sequencer) loadScene(i int) {
	q.index = i
	q.scene = q.scenes[i]
	q.cast.ResetVisibility()
	doc := script.NewDocument(q.scene.Entries)
	q.engine = NewEngine(doc, EngineDeps{
		Audio:  q.audio,
		Rel:    q.rel,
		Cast:   q.cast,
		Assets: q.assets,
		Roster: q.scene.Roster(),
	})
	if q.audio != nil && q.scene.Music != "" {
		q.audio.SwitchMusic(q.scene.Music)
	}
}

// Render snapshots the current scene for the presentation layer.
func (q *Sequencer) Render() RenderState {
	if !q.active {
		return RenderState{State: StateIdle, Exhausted: true}
	}
	return q.engine.Render()
}
