package game

import (
	"log"

	"Nightfall/internal/script"
)

// EngineState enumerates the dialogue state machine states.
type EngineState string

const (
	// StateIdle means no current entry: the script is exhausted or a
	// scene jump is pending.
	StateIdle EngineState = "idle"
	// StateAwaitingAdvance shows a line or narration and waits for the
	// voice clip to finish or an explicit click.
	StateAwaitingAdvance EngineState = "awaiting_advance"
	// StateAwaitingChoice shows a choice and waits for a selection or
	// for the countdown to expire.
	StateAwaitingChoice EngineState = "awaiting_choice"
	// StateAwaitingDismiss shows a full-screen image until clicked.
	StateAwaitingDismiss EngineState = "awaiting_dismiss"
)

// Point is a click position in the client's layout coordinates.
type Point struct {
	X float64
	Y float64
}

// EngineDeps are the collaborators injected at construction. All are
// optional: without Audio, lines never wait on voice; without Rel, point
// deltas are computed and discarded; without Cast, the engine owns a
// private one; without Assets, image and voice lookups always miss.
type EngineDeps struct {
	Audio  Audio
	Rel    *Relationship
	Cast   *Cast
	Assets *Catalog
	// Roster lists the scene's character ids in layout order.
	Roster []string
}

// Engine walks one scene's script document. It owns the document and the
// per-choice countdown exclusively; the sequencer owns the engine. All
// methods are frame-driven and non-blocking.
type Engine struct {
	doc    *script.Document
	audio  Audio
	rel    *Relationship
	cast   *Cast
	assets *Catalog
	roster []string

	state        EngineState
	timer        *Timer
	selected     int
	currentVoice string
	image        string
	pendingScene string
	hasJump      bool
}

// NewEngine binds an engine to a document and resolves the first entry.
func NewEngine(doc *script.Document, deps EngineDeps) *Engine {
	cast := deps.Cast
	if cast == nil {
		cast = NewCast()
	}
	e := &Engine{
		doc:      doc,
		audio:    deps.Audio,
		rel:      deps.Rel,
		cast:     cast,
		assets:   deps.Assets,
		roster:   deps.Roster,
		selected: -1,
	}
	e.enter()
	return e
}

// State returns the current state machine state.
func (e *Engine) State() EngineState {
	return e.state
}

// Cast returns the character presentation state the engine mutates.
func (e *Engine) Cast() *Cast {
	return e.cast
}

// Document returns the script document the engine walks.
func (e *Engine) Document() *script.Document {
	return e.doc
}

// Exhausted reports whether the script has run out of entries.
func (e *Engine) Exhausted() bool {
	return e.doc.Exhausted()
}

// TakeSceneJump returns the pending jump target once and clears it.
func (e *Engine) TakeSceneJump() (string, bool) {
	if !e.hasJump {
		return "", false
	}
	e.hasJump = false
	target := e.pendingScene
	e.pendingScene = ""
	return target, true
}

// Timer exposes the active choice countdown, nil when the current choice
// is untimed or no choice is showing.
func (e *Engine) Timer() *Timer {
	return e.timer
}

func (e *Engine) score() int {
	if e.rel == nil {
		return 0
	}
	return e.rel.Value()
}

// enter dispatches on the entry under the cursor. Commands and unknown
// entries resolve synchronously without yielding a frame, so enter loops
// until it lands on a renderable entry or the end of the script.
func (e *Engine) enter() {
	e.timer = nil
	e.selected = -1
	for {
		entry, ok := e.doc.Current()
		if !ok {
			e.state = StateIdle
			return
		}
		switch entry.Kind {
		case script.KindLine:
			e.cast.ApplyReveal(entry.Speaker, entry.Text)
			e.startVoice(entry.Voice)
			e.state = StateAwaitingAdvance
			return
		case script.KindNarration:
			e.startVoice(entry.Voice)
			e.state = StateAwaitingAdvance
			return
		case script.KindChoice:
			if entry.TimerS > 0 {
				e.timer = NewTimer(entry.TimerS)
				e.timer.Start()
			}
			e.state = StateAwaitingChoice
			return
		case script.KindCommand:
			e.applyCommand(entry)
			e.doc.Advance()
		case script.KindImage:
			e.image = e.resolveImage(entry.Image)
			e.state = StateAwaitingDismiss
			return
		case script.KindSceneJump:
			e.pendingScene = entry.Scene
			e.hasJump = true
			e.state = StateIdle
			return
		default:
			// Unrecognized entry: inert pass-through.
			e.doc.Advance()
		}
	}
}

func (e *Engine) startVoice(name string) {
	e.currentVoice = ""
	if name == "" || e.audio == nil {
		return
	}
	if e.audio.Play(name) {
		e.currentVoice = name
	}
}

func (e *Engine) applyCommand(entry *script.Entry) {
	switch entry.Action {
	case script.ActionShow:
		e.cast.Show(entry.Target)
	case script.ActionHide:
		e.cast.Hide(entry.Target)
	}
}

func (e *Engine) resolveImage(ref string) string {
	if ref == "" {
		return ""
	}
	if e.assets != nil {
		if handle, ok := e.assets.ResolveImage(ref); ok {
			return handle
		}
		log.Printf("engine: image %q not found", ref)
	}
	// Hand the raw reference to the client; it decides how to degrade.
	return ref
}

// Tick advances the frame-driven waits: voice completion for lines and
// the countdown for timed choices. Other states ignore ticks.
func (e *Engine) Tick(dt float64) {
	switch e.state {
	case StateAwaitingAdvance:
		if e.audio == nil || !e.audio.VoiceBusy() {
			e.doc.Advance()
			e.enter()
		}
	case StateAwaitingChoice:
		if e.timer != nil && e.timer.Tick(dt) {
			// Expired with nothing picked: option 0 is the default.
			if e.selected < 0 {
				e.selected = 0
				e.applyOption(0)
			}
			e.doc.Advance()
			e.enter()
		}
	}
}

// SelectChoice applies the option at the given index. It reports false
// when no choice is showing, the index is out of range, or the option is
// lock-gated closed; none of those are faults, just no-ops.
func (e *Engine) SelectChoice(index int) bool {
	if e.state != StateAwaitingChoice {
		return false
	}
	entry, ok := e.doc.Current()
	if !ok || entry.Kind != script.KindChoice {
		return false
	}
	if index < 0 || index >= len(entry.Options) {
		return false
	}
	if entry.Options[index].Locked(e.score()) {
		return false
	}
	e.selected = index
	e.applyOption(index)
	if e.timer != nil {
		e.timer.Reset()
	}
	e.doc.Advance()
	e.enter()
	return true
}

// applyOption applies the consequences of the option at index on the
// current choice entry: the score delta first, then exactly one outcome.
// Direct targets and conditional targets splice a synthetic scene jump
// as the sole successor; branches splice their entries inline.
func (e *Engine) applyOption(index int) {
	entry, ok := e.doc.Current()
	if !ok || index < 0 || index >= len(entry.Options) {
		return
	}
	opt := &entry.Options[index]
	if e.rel != nil {
		e.rel.Add(opt.Points)
	}
	switch opt.Outcome() {
	case script.OutcomeTarget:
		e.doc.InsertAfterCursor([]script.Entry{script.JumpEntry(opt.Target)})
	case script.OutcomeConditional:
		// Zero counts as non-negative: positive branch.
		target := opt.TargetNegative
		if e.score() >= 0 {
			target = opt.TargetPositive
		}
		e.doc.InsertAfterCursor([]script.Entry{script.JumpEntry(target)})
	case script.OutcomeBranch:
		e.doc.InsertAfterCursor(opt.Branch)
	}
}

// Click handles a discrete input event. With an image showing it
// dismisses; over a choice it resolves the clicked option row; over a
// line it force-advances, skipping the voice wait.
func (e *Engine) Click(pos *Point) {
	switch e.state {
	case StateAwaitingDismiss:
		e.image = ""
		e.doc.Advance()
		e.enter()
	case StateAwaitingChoice:
		if pos == nil {
			return
		}
		if i := e.OptionAt(*pos); i >= 0 {
			e.SelectChoice(i)
		}
	case StateAwaitingAdvance:
		if e.audio != nil && e.currentVoice != "" {
			e.audio.Stop(e.currentVoice)
			e.currentVoice = ""
		}
		e.doc.Advance()
		e.enter()
	}
}

// OptionAt maps a click position to the option row it falls within, or
// -1 when it misses every row.
func (e *Engine) OptionAt(pos Point) int {
	entry, ok := e.doc.Current()
	if !ok || entry.Kind != script.KindChoice {
		return -1
	}
	if pos.Y < ChoiceOriginY {
		return -1
	}
	i := int((pos.Y - ChoiceOriginY) / ChoiceRowH)
	if i >= len(entry.Options) {
		return -1
	}
	return i
}
