package script

// Document is the ordered, mutable entry sequence for one scene plus the
// cursor the engine walks. A document is created when its scene loads,
// owned exclusively by that scene's engine, and discarded with it.
//
// The cursor is always within [0, len]; cursor == len means the script is
// exhausted. Exhaustion is an expected terminal condition, not a fault, so
// out-of-range reads report it instead of erroring.
type Document struct {
	entries []Entry
	cursor  int
}

// NewDocument builds a document over the given entries with the cursor at
// the first entry. The slice is copied; callers keep ownership of theirs.
func NewDocument(entries []Entry) *Document {
	return &Document{entries: append([]Entry(nil), entries...)}
}

// Current returns the entry at the cursor, or ok=false once the document
// is exhausted.
func (d *Document) Current() (*Entry, bool) {
	if d.cursor >= len(d.entries) {
		return nil, false
	}
	return &d.entries[d.cursor], true
}

// Advance moves the cursor forward one entry. Advancing an exhausted
// document is a no-op.
func (d *Document) Advance() {
	if d.cursor < len(d.entries) {
		d.cursor++
	}
}

// Exhausted reports whether the cursor has walked off the end.
func (d *Document) Exhausted() bool {
	return d.cursor >= len(d.entries)
}

// Cursor returns the current cursor index.
func (d *Document) Cursor() int {
	return d.cursor
}

// Len returns the current entry count, including spliced insertions.
func (d *Document) Len() int {
	return len(d.entries)
}

// At returns the entry at index i, or ok=false when out of range.
func (d *Document) At(i int) (*Entry, bool) {
	if i < 0 || i >= len(d.entries) {
		return nil, false
	}
	return &d.entries[i], true
}

// InsertAfterCursor splices entries immediately after the cursor position,
// preserving their relative order. Prior indices never shift and the
// cursor stays on its current entry, so an insertion can never invalidate
// the entry being shown. Used for branch expansion and for injecting the
// synthetic scene-jump successor of a choice.
func (d *Document) InsertAfterCursor(entries []Entry) {
	if len(entries) == 0 {
		return
	}
	at := d.cursor + 1
	if at > len(d.entries) {
		at = len(d.entries)
	}
	tail := append([]Entry(nil), d.entries[at:]...)
	d.entries = append(d.entries[:at], entries...)
	d.entries = append(d.entries, tail...)
}
