package server

import "Nightfall/internal/game"

/* -------------------------------- DTOs ------------------------------- */

type stateMsg struct {
	Type       string         `json:"type"` // "state"
	Session    string         `json:"session"`
	Now        float64        `json:"now"`
	Scene      sceneDTO       `json:"scene"`
	Mode       string         `json:"mode"`
	Kind       string         `json:"kind,omitempty"`
	Speaker    string         `json:"speaker,omitempty"`
	Emotion    string         `json:"emotion,omitempty"`
	Text       string         `json:"text,omitempty"`
	Options    []optionDTO    `json:"options,omitempty"`
	Timer      float64        `json:"timer"`
	HasTimer   bool           `json:"has_timer"`
	Image      string         `json:"image,omitempty"`
	Characters []characterDTO `json:"characters,omitempty"`
	Voice      string         `json:"voice,omitempty"`
	Music      string         `json:"music,omitempty"`
	Score      int            `json:"score"`
	Done       bool           `json:"done"`
}

type sceneDTO struct {
	ID         string `json:"id,omitempty"`
	Background string `json:"background,omitempty"`
}

type optionDTO struct {
	Text     string `json:"text"`
	Locked   bool   `json:"locked"`
	Selected bool   `json:"selected"`
}

type characterDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Sprite  string `json:"sprite,omitempty"`
	Visible bool   `json:"visible"`
	Active  bool   `json:"active"`
}

// buildStateMsg projects one session into the wire frame. Caller holds
// the session lock.
func buildStateMsg(s *game.Session) stateMsg {
	rs := s.Seq.Render()
	msg := stateMsg{
		Type:     "state",
		Session:  s.ID,
		Now:      s.Now,
		Mode:     string(rs.State),
		Kind:     string(rs.Kind),
		Speaker:  rs.Speaker,
		Emotion:  rs.Emotion,
		Text:     rs.Text,
		Timer:    rs.TimerRemaining,
		HasTimer: rs.HasTimer,
		Image:    rs.Image,
		Score:    s.Seq.Score(),
		Done:     !s.Seq.Active(),
	}
	for _, o := range rs.Options {
		msg.Options = append(msg.Options, optionDTO{Text: o.Text, Locked: o.Locked, Selected: o.Selected})
	}

	scene := s.Seq.Scene()
	if scene != nil {
		msg.Scene = sceneDTO{ID: scene.ID, Background: scene.Background}
	}
	for _, c := range rs.Characters {
		dto := characterDTO{ID: c.ID, Name: c.Name, Visible: c.Visible, Active: c.Active}
		if scene != nil {
			emotion := rs.Emotion
			if !c.Active || emotion == "" {
				emotion = game.DefaultEmotion
			}
			if sprites, ok := scene.Characters[c.ID]; ok {
				if path, ok := sprites[emotion]; ok {
					dto.Sprite = path
				} else {
					dto.Sprite = sprites[game.DefaultEmotion]
				}
			}
		}
		msg.Characters = append(msg.Characters, dto)
	}

	if vc := s.Seq.Channel(); vc != nil {
		msg.Voice = vc.VoicePath()
		msg.Music = vc.MusicPath()
	}
	return msg
}
