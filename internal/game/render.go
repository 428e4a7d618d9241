package game

import "Nightfall/internal/script"

// OptionView is the render-ready projection of one choice option.
type OptionView struct {
	Text     string
	Locked   bool
	Selected bool
}

// CharacterView is the render-ready projection of one cast member, in
// roster (layout) order. Active marks the speaker of the current line;
// the renderer dims the others.
type CharacterView struct {
	ID      string
	Name    string
	Visible bool
	Active  bool
}

// RenderState is everything the presentation layer needs to draw one
// frame. The engine supplies data only; it never draws.
type RenderState struct {
	State     EngineState
	Kind      script.EntryKind
	Speaker   string // display name after reveals
	SpeakerID string
	Emotion   string
	Text      string

	Options        []OptionView
	TimerRemaining float64
	HasTimer       bool

	Image string

	Characters []CharacterView
	Exhausted  bool
}

// Render snapshots the engine's current visual state.
func (e *Engine) Render() RenderState {
	rs := RenderState{
		State:     e.state,
		Exhausted: e.doc.Exhausted(),
	}

	entry, ok := e.doc.Current()
	if ok {
		rs.Kind = entry.Kind
		switch entry.Kind {
		case script.KindLine:
			rs.SpeakerID = entry.Speaker
			rs.Speaker = e.cast.DisplayName(entry.Speaker)
			rs.Emotion = entry.Emotion
			if rs.Emotion == "" {
				rs.Emotion = DefaultEmotion
			}
			rs.Text = entry.Text
		case script.KindNarration:
			rs.Text = entry.Text
		case script.KindChoice:
			score := e.score()
			for i, opt := range entry.Options {
				rs.Options = append(rs.Options, OptionView{
					Text:     opt.Text,
					Locked:   opt.Locked(score),
					Selected: i == e.selected,
				})
			}
			if e.timer != nil {
				rs.HasTimer = true
				rs.TimerRemaining = e.timer.Remaining()
			}
		case script.KindImage:
			rs.Image = e.image
		}
	}

	for _, id := range e.roster {
		rs.Characters = append(rs.Characters, CharacterView{
			ID:      id,
			Name:    e.cast.DisplayName(id),
			Visible: e.cast.Visible(id),
			Active:  id == rs.SpeakerID,
		})
	}
	return rs
}
