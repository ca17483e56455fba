package audio

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

const ControlLabel = "Escuchar pronunciación"

// Controls renders the speak button lesson pages attach to Dutch text. The
// browser speech script reads the data attributes and drives the platform.
type Controls struct {
	Lang string
	Rate float64
}

func NewControls(lang string, rate float64) Controls {
	if lang == "" {
		lang = DefaultLanguage
	}
	if rate <= 0 {
		rate = DefaultRate
	}
	return Controls{Lang: lang, Rate: rate}
}

func (c Controls) Control(text string) template.HTML {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	esc := template.HTMLEscapeString
	return template.HTML(fmt.Sprintf(
		`<button type="button" class="speak" data-speak="%s" data-lang="%s" data-rate="%s" title="%s" aria-label="%s">🔊</button>`,
		esc(text), esc(c.Lang), strconv.FormatFloat(c.Rate, 'f', -1, 64), ControlLabel, ControlLabel,
	))
}
