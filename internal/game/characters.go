package game

import "strings"

// Character is per-playthrough presentation state for one cast member.
type Character struct {
	Visible     bool
	DisplayName string
}

// Cast maps character ids to their visibility and display-name state.
// Members initialize lazily to visible with the canonical id as display
// name on first query. Visibility resets per scene; display names persist
// for the playthrough so a reveal sticks across scene changes.
type Cast struct {
	members map[string]*Character
}

// NewCast creates an empty cast.
func NewCast() *Cast {
	return &Cast{members: make(map[string]*Character)}
}

func (c *Cast) member(id string) *Character {
	m, ok := c.members[id]
	if !ok {
		m = &Character{Visible: true, DisplayName: id}
		c.members[id] = m
	}
	return m
}

// Show makes a character visible.
func (c *Cast) Show(id string) {
	c.member(id).Visible = true
}

// Hide makes a character invisible.
func (c *Cast) Hide(id string) {
	c.member(id).Visible = false
}

// Visible reports whether the character is currently shown.
func (c *Cast) Visible(id string) bool {
	return c.member(id).Visible
}

// DisplayName returns the name the renderer should show for the
// character, which may differ from the id after a reveal.
func (c *Cast) DisplayName(id string) string {
	return c.member(id).DisplayName
}

// Reveal permanently replaces the character's display name.
func (c *Cast) Reveal(id, name string) {
	if name == "" {
		return
	}
	c.member(id).DisplayName = name
}

// ResetVisibility returns every known member to visible at a scene
// boundary. Display names are left alone.
func (c *Cast) ResetVisibility() {
	for _, m := range c.members {
		m.Visible = true
	}
}

// revealRule triggers a permanent display-name change when a specific
// speaker delivers a line containing the substring. This is scripted
// trivia with a fixed table, not a general mechanism.
type revealRule struct {
	speaker   string
	substring string
	name      string
}

var revealRules = []revealRule{
	{speaker: "???", substring: "My name is Mira", name: "Mira"},
	{speaker: "???", substring: "call me Mira", name: "Mira"},
	{speaker: "Stranger", substring: "Dorian. That's my name", name: "Dorian"},
}

// ApplyReveal checks the reveal table against a delivered line and
// updates the speaker's display name on a match.
func (c *Cast) ApplyReveal(speaker, text string) {
	for _, rule := range revealRules {
		if rule.speaker == speaker && strings.Contains(text, rule.substring) {
			c.Reveal(speaker, rule.name)
		}
	}
}
