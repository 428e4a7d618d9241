// Package script implements the data layer of the dialogue interpreter:
// the tagged entry variants that make up a scene script, the mutable
// document walked by the engine, and the safe lock-condition expressions
// attached to choices.
//
// Scripts are authored as JSON (one object per scene, see parse.go) and
// validated leniently at load time: a malformed or unrecognized entry is
// kept as an inert pass-through rather than rejected, so one bad row never
// stops playback.
package script

// EntryKind discriminates the entry variants.
type EntryKind string

const (
	// KindLine is spoken dialogue attributed to a character.
	KindLine EntryKind = "line"
	// KindNarration is unattributed descriptive text.
	KindNarration EntryKind = "narration"
	// KindChoice presents options to the player, optionally timed.
	KindChoice EntryKind = "choice"
	// KindCommand mutates character presentation state (show/hide).
	KindCommand EntryKind = "command"
	// KindImage displays a full-screen image until dismissed.
	KindImage EntryKind = "image_screen"
	// KindSceneJump directs the sequencer to load a named scene. Jump
	// entries are synthesized by the engine as choice consequences and
	// never authored directly.
	KindSceneJump EntryKind = "scene_jump"
	// KindUnknown marks an entry whose type was not recognized. Unknown
	// entries advance without side effects.
	KindUnknown EntryKind = "unknown"
)

// CommandAction enumerates the supported command verbs.
type CommandAction string

const (
	ActionShow CommandAction = "show"
	ActionHide CommandAction = "hide"
)

// Entry is one atomic unit of script content. Kind selects which fields
// are meaningful; unused fields stay zero.
type Entry struct {
	Kind EntryKind

	// Line / narration.
	Speaker string
	Emotion string
	Text    string
	Voice   string

	// Choice.
	Options []Option
	TimerS  float64 // seconds; 0 = untimed

	// Command.
	Action CommandAction
	Target string

	// Image screen.
	Image string

	// Scene jump.
	Scene string
}

// OutcomeKind identifies which consequence a choice option carries.
type OutcomeKind int

const (
	// OutcomeNone applies only the point delta.
	OutcomeNone OutcomeKind = iota
	// OutcomeTarget jumps directly to a named scene.
	OutcomeTarget
	// OutcomeConditional jumps to one of two scenes by score sign.
	OutcomeConditional
	// OutcomeBranch splices inline entries after the cursor.
	OutcomeBranch
)

// Option is a single selectable answer inside a choice entry.
type Option struct {
	Text   string
	Points int

	// Lock renders the option unselectable while it evaluates true
	// against the relationship score. Nil means never locked.
	Lock *Condition

	Target         string
	TargetPositive string
	TargetNegative string
	Branch         []Entry
}

// Outcome reports the consequence kind for the option. Resolution order
// matches playback: direct target, then conditional target, then branch.
func (o *Option) Outcome() OutcomeKind {
	switch {
	case o.Target != "":
		return OutcomeTarget
	case o.TargetPositive != "" || o.TargetNegative != "":
		return OutcomeConditional
	case len(o.Branch) > 0:
		return OutcomeBranch
	default:
		return OutcomeNone
	}
}

// Locked reports whether the option is currently gated closed for the
// given relationship score. Options without a lock condition are open.
func (o *Option) Locked(score int) bool {
	if o.Lock == nil {
		return false
	}
	return o.Lock.Eval(score)
}

// JumpEntry builds the synthetic scene-jump entry the engine splices in
// when a choice targets another scene.
func JumpEntry(scene string) Entry {
	return Entry{Kind: KindSceneJump, Scene: scene}
}
