package render

import "github.com/yungbote/eerste-dingen/internal/modules/course/content"

// SpeakerPalette is the fixed cycle of speaker label colors.
var SpeakerPalette = [...]string{"rose", "sky", "amber", "emerald", "violet", "teal"}

// AssignSpeakerColors gives every named speaker a palette color by order of
// first appearance, cycling after six. Unlabeled lines get no entry.
func AssignSpeakerColors(lines []content.DialogueLine) map[string]string {
	colors := map[string]string{}
	for _, l := range lines {
		if l.Speaker == "" {
			continue
		}
		if _, ok := colors[l.Speaker]; ok {
			continue
		}
		colors[l.Speaker] = SpeakerPalette[len(colors)%len(SpeakerPalette)]
	}
	return colors
}
