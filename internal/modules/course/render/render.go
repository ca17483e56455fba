// Package render turns lessons into HTML. Each section shape has its own
// template; dispatch goes through content.Visitor so every shape must be
// handled.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/yungbote/eerste-dingen/internal/modules/course/content"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var ErrUnknownSection = errors.New("unknown section")

// AudioControls produces the playback control placed next to Dutch text.
type AudioControls interface {
	Control(text string) template.HTML
}

type Renderer struct {
	tmpl *template.Template
}

func New(audio AudioControls) (*Renderer, error) {
	if audio == nil {
		return nil, errors.New("render: audio controls required")
	}
	tmpl, err := template.New("sections").Funcs(template.FuncMap{
		"speak": audio.Control,
		"num": func(n *int) string {
			if n == nil {
				return ""
			}
			return fmt.Sprintf("%d.", *n)
		},
		"first": func(vals ...string) string {
			for _, v := range vals {
				if v != "" {
					return v
				}
			}
			return ""
		},
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse section templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Lesson renders the lesson header followed by every section in order.
func (r *Renderer) Lesson(l *content.Lesson) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "lessonHeader", l); err != nil {
		return "", fmt.Errorf("render lesson %d header: %w", l.ID, err)
	}
	v := &sectionVisitor{r: r, buf: &buf}
	for i, s := range l.Sections {
		if s == nil {
			return "", fmt.Errorf("lesson %d section %d: %w", l.ID, i, ErrUnknownSection)
		}
		if err := s.Accept(v); err != nil {
			return "", fmt.Errorf("lesson %d section %d (%s): %w", l.ID, i, s.Kind(), err)
		}
	}
	return template.HTML(buf.String()), nil
}

// Section renders a single section.
func (r *Renderer) Section(s content.Section) (template.HTML, error) {
	if s == nil {
		return "", ErrUnknownSection
	}
	var buf bytes.Buffer
	if err := s.Accept(&sectionVisitor{r: r, buf: &buf}); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// Pronunciation renders the course pronunciation guide panel.
func (r *Renderer) Pronunciation(g content.PronunciationGuide) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "pronunciation", g); err != nil {
		return "", fmt.Errorf("render pronunciation guide: %w", err)
	}
	return template.HTML(buf.String()), nil
}

type dialogueLine struct {
	content.DialogueLine
	Color string
}

type dialogueView struct {
	*content.Dialogue
	Lines []dialogueLine
}

type sectionVisitor struct {
	r   *Renderer
	buf *bytes.Buffer
}

func (v *sectionVisitor) exec(name string, data any) error {
	return v.r.tmpl.ExecuteTemplate(v.buf, name, data)
}

func (v *sectionVisitor) Dialogue(s *content.Dialogue) error {
	colors := AssignSpeakerColors(s.Lines)
	view := dialogueView{Dialogue: s, Lines: make([]dialogueLine, len(s.Lines))}
	for i, l := range s.Lines {
		view.Lines[i] = dialogueLine{DialogueLine: l, Color: colors[l.Speaker]}
	}
	return v.exec("dialogue", view)
}

func (v *sectionVisitor) Reading(s *content.Reading) error { return v.exec("reading", s) }

func (v *sectionVisitor) Vocabulary(s *content.Vocabulary) error { return v.exec("vocabulary", s) }

func (v *sectionVisitor) VocabularyGroup(s *content.VocabularyGroup) error {
	return v.exec("vocabularyGroup", s)
}

func (v *sectionVisitor) VocabularyTable(s *content.VocabularyTable) error {
	return v.exec("vocabularyTable", s)
}

func (v *sectionVisitor) Practice(s *content.Practice) error { return v.exec("practice", s) }

func (v *sectionVisitor) GrammarTable(s *content.GrammarTable) error {
	return v.exec("grammarTable", s)
}

func (v *sectionVisitor) PatternDrill(s *content.PatternDrill) error {
	return v.exec("patternDrill", s)
}

func (v *sectionVisitor) Exercise(s *content.Exercise) error { return v.exec("exercise", s) }
