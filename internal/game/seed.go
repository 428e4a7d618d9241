package game

import "Nightfall/internal/script"

// SeedScenes returns the built-in demo story used when no script
// directory is configured. It exercises every entry kind the engine
// supports: voiced lines, narration, show/hide commands, timed and
// untimed choices, inline branches, direct and conditional scene
// targets, a name reveal, and a dismissable image screen.
func SeedScenes() []*Scene {
	return []*Scene{
		{
			ID:         "scene1",
			Background: "backgrounds/apartment_night.png",
			Music:      "nightfall_theme",
			Characters: map[string]map[string]string{
				"Partner": {
					"neutral": "partner/neutral.png",
					"angry":   "partner/angry.png",
				},
				"???": {
					"neutral": "stranger/neutral.png",
				},
			},
			Entries: []script.Entry{
				{Kind: script.KindNarration, Text: "Rain hammers the window. The lamp flickers twice, then steadies."},
				{Kind: script.KindCommand, Action: script.ActionHide, Target: "???"},
				{Kind: script.KindLine, Speaker: "Partner", Emotion: "neutral", Text: "You're late. Again.", Voice: "partner_late"},
				{
					Kind:   script.KindChoice,
					TimerS: 5,
					Options: []script.Option{
						{
							Text:   "I'm sorry. Work ran long.",
							Points: 2,
							Branch: []script.Entry{
								{Kind: script.KindLine, Speaker: "Partner", Emotion: "neutral", Text: "...Fine. Sit down, it's getting cold."},
							},
						},
						{
							Text:   "I don't owe you a schedule.",
							Points: -3,
							Branch: []script.Entry{
								{Kind: script.KindLine, Speaker: "Partner", Emotion: "angry", Text: "No. I suppose you don't."},
							},
						},
					},
				},
				{Kind: script.KindCommand, Action: script.ActionShow, Target: "???"},
				{Kind: script.KindLine, Speaker: "???", Emotion: "neutral", Text: "Forgive the intrusion. My name is Mira. We need to talk about the blackout."},
				{
					Kind: script.KindChoice,
					Options: []script.Option{
						{Text: "Hear her out.", Points: 1, Target: "scene2"},
						{
							Text:           "Throw her out.",
							Points:         -2,
							Lock:           script.ParseCondition("< 0"),
							TargetPositive: "scene2",
							TargetNegative: "scene2_cold",
						},
					},
				},
			},
		},
		{
			ID:         "scene2",
			Background: "backgrounds/rooftop.png",
			Music:      "nightfall_theme",
			Characters: map[string]map[string]string{
				"Partner": {"neutral": "partner/neutral.png"},
				"???":     {"neutral": "stranger/neutral.png"},
			},
			Entries: []script.Entry{
				{Kind: script.KindNarration, Text: "The city below has gone dark, block by block, like something is feeding."},
				{Kind: script.KindLine, Speaker: "???", Emotion: "neutral", Text: "It starts at nightfall. It always starts at nightfall.", Voice: "mira_nightfall"},
				{Kind: script.KindImage, Image: "cg/blackout_map.png"},
				{Kind: script.KindLine, Speaker: "Partner", Emotion: "neutral", Text: "Then we have until dawn."},
			},
		},
		{
			ID:         "scene2_cold",
			Background: "backgrounds/apartment_night.png",
			Music:      "rain_ambience",
			Characters: map[string]map[string]string{
				"Partner": {"neutral": "partner/neutral.png"},
			},
			Entries: []script.Entry{
				{Kind: script.KindNarration, Text: "The door closes. Whatever she came to say leaves with her."},
				{Kind: script.KindLine, Speaker: "Partner", Emotion: "neutral", Text: "I hope you were right to do that."},
			},
		},
	}
}
