package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"Nightfall/internal/script"
)

// Scene is one scene's worth of content: presentation references plus
// the parsed dialogue entries the engine will walk.
type Scene struct {
	ID         string
	Background string
	Music      string
	// Characters maps character id to emotion to sprite path.
	Characters map[string]map[string]string
	Entries    []script.Entry
}

// Roster returns the scene's character ids in stable layout order.
func (s *Scene) Roster() []string {
	ids := make([]string, 0, len(s.Characters))
	for id := range s.Characters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type sceneFile struct {
	ID         string                       `json:"id"`
	Background string                       `json:"background"`
	Music      string                       `json:"music"`
	Characters map[string]map[string]string `json:"characters"`
	Dialogue   json.RawMessage              `json:"dialogue"`
}

// ParseScene decodes one scene file. The id defaults to the provided
// fallback (normally the filename stem) when the file names none.
func ParseScene(data []byte, fallbackID string) (*Scene, error) {
	var raw sceneFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	id := raw.ID
	if id == "" {
		id = fallbackID
	}
	s := &Scene{
		ID:         id,
		Background: raw.Background,
		Music:      raw.Music,
		Characters: raw.Characters,
	}
	if len(raw.Dialogue) > 0 {
		entries, err := script.ParseEntries(raw.Dialogue)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", id, err)
		}
		s.Entries = entries
	}
	return s, nil
}

// LoadScenes reads every *.json scene file in dir, ordered by filename.
// Filename order is the linear playthrough order; jumps address scenes
// by id. An unreadable or unparsable file fails the whole load: scripts
// are authored content and a silently missing scene would corrupt the
// story order.
func LoadScenes(dir string) ([]*Scene, error) {
	names, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("scenes: glob %q: %w", dir, err)
	}
	sort.Strings(names)

	scenes := make([]*Scene, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("scenes: read %q: %w", name, err)
		}
		stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		s, err := ParseScene(data, stem)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, s)
	}
	return scenes, nil
}
