package script

import (
	"encoding/json"
	"fmt"
)

// rawEntry mirrors the authored JSON schema for one script row. The text
// of lines, narration and choices lives under the "line" key.
type rawEntry struct {
	Type    string      `json:"type"`
	Speaker string      `json:"speaker"`
	Emotion string      `json:"emotion"`
	Line    string      `json:"line"`
	Voice   string      `json:"voice"`
	Timer   float64     `json:"timer"`
	Choices []rawChoice `json:"choices"`
	Command string      `json:"command"`
	Target  string      `json:"target"`
	Image   string      `json:"image"`
}

type rawChoice struct {
	Text           string            `json:"text"`
	Points         int               `json:"points"`
	LockCondition  string            `json:"lock_condition"`
	Target         string            `json:"target"`
	TargetPositive string            `json:"target_positive"`
	TargetNegative string            `json:"target_negative"`
	Branch         []json.RawMessage `json:"branch"`
}

// ParseEntries decodes a JSON array of script rows into entries. Rows with
// unrecognized or missing types decode to inert KindUnknown entries; only
// a syntactically broken document errors.
func ParseEntries(data []byte) ([]Entry, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("script: parse entries: %w", err)
	}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, parseEntry(row))
	}
	return entries, nil
}

func parseEntry(row json.RawMessage) Entry {
	var raw rawEntry
	if err := json.Unmarshal(row, &raw); err != nil {
		return Entry{Kind: KindUnknown}
	}
	return raw.toEntry()
}

func (raw *rawEntry) toEntry() Entry {
	// A "command" field implies a command entry even without a type tag.
	if raw.Type == "" && raw.Command != "" {
		raw.Type = string(KindCommand)
	}

	switch EntryKind(raw.Type) {
	case KindLine:
		return Entry{
			Kind:    KindLine,
			Speaker: raw.Speaker,
			Emotion: raw.Emotion,
			Text:    raw.Line,
			Voice:   raw.Voice,
		}
	case KindNarration:
		return Entry{Kind: KindNarration, Text: raw.Line, Voice: raw.Voice}
	case KindChoice:
		e := Entry{Kind: KindChoice, TimerS: raw.Timer}
		for _, c := range raw.Choices {
			e.Options = append(e.Options, c.toOption())
		}
		return e
	case KindCommand:
		action := CommandAction(raw.Command)
		if action != ActionShow && action != ActionHide {
			return Entry{Kind: KindUnknown}
		}
		return Entry{Kind: KindCommand, Action: action, Target: raw.Target}
	case KindImage:
		return Entry{Kind: KindImage, Image: raw.Image}
	case KindSceneJump:
		// Tolerated if present in data, though jumps are normally
		// synthesized at playback time.
		return JumpEntry(raw.Target)
	default:
		return Entry{Kind: KindUnknown}
	}
}

func (c *rawChoice) toOption() Option {
	opt := Option{
		Text:           c.Text,
		Points:         c.Points,
		Lock:           ParseCondition(c.LockCondition),
		Target:         c.Target,
		TargetPositive: c.TargetPositive,
		TargetNegative: c.TargetNegative,
	}
	for _, row := range c.Branch {
		opt.Branch = append(opt.Branch, parseEntry(row))
	}
	return opt
}
