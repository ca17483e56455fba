package content

import "strings"

// SpokenTexts lists, in page order, every text of the lesson that carries a
// speak control when rendered.
func SpokenTexts(l *Lesson) []string {
	c := &spokenCollector{}
	for _, s := range l.Sections {
		if s == nil {
			continue
		}
		_ = s.Accept(c)
	}
	return c.texts
}

type spokenCollector struct {
	texts []string
}

func (c *spokenCollector) add(s string) {
	if s = strings.TrimSpace(s); s != "" {
		c.texts = append(c.texts, s)
	}
}

func (c *spokenCollector) Dialogue(s *Dialogue) error {
	for _, l := range s.Lines {
		c.add(l.Text)
	}
	return nil
}

func (c *spokenCollector) Reading(s *Reading) error {
	for _, p := range s.Paragraphs {
		c.add(p.Text)
	}
	return nil
}

func (c *spokenCollector) Vocabulary(s *Vocabulary) error {
	for _, it := range s.Items {
		c.add(it.Dutch)
	}
	return nil
}

func (c *spokenCollector) VocabularyGroup(s *VocabularyGroup) error {
	for _, g := range s.Groups {
		for _, it := range g.Items {
			c.add(it.Dutch)
		}
	}
	return nil
}

func (c *spokenCollector) VocabularyTable(s *VocabularyTable) error {
	for _, row := range s.Rows {
		for _, it := range row.Items {
			c.add(it.Dutch)
		}
	}
	return nil
}

func (c *spokenCollector) Practice(s *Practice) error {
	for _, it := range s.Items {
		c.add(it.DisplayText())
	}
	return nil
}

func (c *spokenCollector) GrammarTable(*GrammarTable) error { return nil }

func (c *spokenCollector) PatternDrill(s *PatternDrill) error {
	c.add(s.Pattern)
	for _, it := range s.Items {
		c.add(it.DisplayText())
	}
	return nil
}

func (c *spokenCollector) Exercise(s *Exercise) error {
	for _, it := range s.Items {
		c.add(it.Answer)
	}
	return nil
}
