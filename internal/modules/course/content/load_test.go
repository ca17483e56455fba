package content

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

const courseJSON = `{
	"courseTitle": "Eerste Dingen Eerst",
	"courseSubtitle": "Holandés para hispanohablantes",
	"pronunciation": {
		"title": "Uitspraak",
		"subtitle": "Guía de pronunciación",
		"tips": [{"letter": "g", "description": "gutural", "examples": ["goed"], "spanish": "j"}]
	}
}`

func lessonJSON(id, title string) string {
	return `{"id": ` + id + `, "title": "` + title + `", "sections": [
		{"type": "dialogue", "lines": [{"text": "Hallo!", "speaker": "Piet"}]}
	]}`
}

func doc(name, data string) Document { return Document{Name: name, Data: []byte(data)} }

func TestLoadSortsByID(t *testing.T) {
	c, err := Load([]Document{
		doc("lesson_003.json", lessonJSON("3", "Drie")),
		doc("lesson_001.json", lessonJSON("1", "Een")),
		doc("lesson_002.json", lessonJSON("2", "Twee")),
	}, doc(CourseFile, courseJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ids := c.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Fatalf("ids: want=[1 2 3] got=%v", ids)
	}
	if c.First().Title != "Een" {
		t.Fatalf("first: want=%q got=%q", "Een", c.First().Title)
	}
	if c.Title != "Eerste Dingen Eerst" {
		t.Fatalf("course title: want=%q got=%q", "Eerste Dingen Eerst", c.Title)
	}
	if len(c.Pronunciation.Tips) != 1 || c.Pronunciation.Tips[0].Letter != "g" {
		t.Fatalf("pronunciation tips: got=%+v", c.Pronunciation.Tips)
	}
	if i, ok := c.Index(3); !ok || i != 2 {
		t.Fatalf("Index(3): want=2,true got=%d,%v", i, ok)
	}
	if _, ok := c.Index(9); ok {
		t.Fatalf("Index(9): want missing")
	}
	d, ok := c.First().Sections[0].(*Dialogue)
	if !ok {
		t.Fatalf("section type: got=%T", c.First().Sections[0])
	}
	if d.Images == nil || len(d.Images) != 0 {
		t.Fatalf("dialogue images default: got=%v", d.Images)
	}
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(nil, doc(CourseFile, courseJSON))
	if !errors.Is(err, ErrNoLessons) {
		t.Fatalf("want ErrNoLessons, got=%v", err)
	}
}

func TestLoadAggregatesFailures(t *testing.T) {
	_, err := Load([]Document{
		doc("lesson_001.json", lessonJSON("1", "Een")),
		doc("lesson_002.json", `{"id": 2, "title": "Twee", "sections": [{"type": "quiz"}]}`),
		doc("lesson_003.json", `{"id": 3, "title": "Drie", "sections": [
			{"type": "grammarTable", "columns": ["ik", "jij"], "rows": [["ben"], ["ben", "bent"]]}
		]}`),
		doc("lesson_004.json", lessonJSON("1", "Dubbel")),
	}, doc(CourseFile, `{"courseTitle": "x"}`))

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("want *LoadError, got=%T %v", err, err)
	}
	docs := map[string]Issues{}
	for _, f := range le.Failures {
		docs[f.Document] = f.Issues
	}
	for _, name := range []string{CourseFile, "lesson_002.json", "lesson_003.json", "lesson_004.json"} {
		if len(docs[name]) == 0 {
			t.Fatalf("expected failure for %s, got=%v", name, le.Lines())
		}
	}
	if _, ok := docs["lesson_001.json"]; ok {
		t.Fatalf("valid lesson reported as failure")
	}
	if got := docs["lesson_003.json"][0].Path; got != "sections.0.rows.0" {
		t.Fatalf("grammar row issue path: want=%q got=%q", "sections.0.rows.0", got)
	}
	if got := docs["lesson_004.json"][0].Message; !strings.Contains(got, "duplicate lesson id 1") {
		t.Fatalf("duplicate issue: got=%q", got)
	}
	if !strings.Contains(err.Error(), "lesson_002.json: sections.0.type: unknown section type") {
		t.Fatalf("error text missing unknown type line:\n%s", err.Error())
	}
}

func TestLoadDecodesEverySection(t *testing.T) {
	c, err := Load([]Document{doc("lesson_001.json", `{
		"id": 1, "title": "Alles", "subtitle": "Todo",
		"sections": [
			{"type": "dialogue", "title": "D", "lines": [{"text": "Dag!"}], "images": [{"src": "/a.png", "alt": "a"}]},
			{"type": "reading", "headerImage": {"src": "/r.png", "alt": "r"}, "paragraphs": [{"text": "Het is koud.", "translation": "Hace frío."}]},
			{"type": "vocabulary", "items": [{"number": 4, "dutch": "de fiets", "spanish": "la bicicleta"}]},
			{"type": "vocabularyGroup", "groups": [{"prompt": "Kleuren", "items": [{"dutch": "rood"}]}]},
			{"type": "vocabularyTable", "rows": [{"category": "Dagen", "items": [{"label": "1", "dutch": "maandag"}]}]},
			{"type": "practice", "items": [{"question": "Wie is dat?"}]},
			{"type": "grammarTable", "columns": ["ik", "jij"], "rows": [["ben", "bent"]]},
			{"type": "patternDrill", "pattern": "Is dit ...?", "items": [{"input": "fiets", "output": "Is dit een fiets?"}]},
			{"type": "exercise", "exerciseType": "fillIn", "instruction": "Vul in.", "items": [{"text": "Ik ___ Piet.", "answer": "ben"}]}
		]
	}`)}, doc(CourseFile, courseJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	l := c.First()
	if l.Subtitle != "Todo" {
		t.Fatalf("subtitle: want=%q got=%q", "Todo", l.Subtitle)
	}
	want := []SectionKind{
		KindDialogue, KindReading, KindVocabulary, KindVocabularyGroup, KindVocabularyTable,
		KindPractice, KindGrammarTable, KindPatternDrill, KindExercise,
	}
	if len(l.Sections) != len(want) {
		t.Fatalf("sections: want=%d got=%d", len(want), len(l.Sections))
	}
	for i, k := range want {
		if l.Sections[i].Kind() != k {
			t.Fatalf("section %d: want=%s got=%s", i, k, l.Sections[i].Kind())
		}
	}
	voc := l.Sections[2].(*Vocabulary)
	if voc.Items[0].Number == nil || *voc.Items[0].Number != 4 {
		t.Fatalf("vocabulary number not preserved: %+v", voc.Items[0])
	}
	if got := l.Sections[5].(*Practice).Items[0].DisplayText(); got != "Wie is dat?" {
		t.Fatalf("practice display text: got=%q", got)
	}
	if got := l.Sections[7].(*PatternDrill).Items[0].DisplayText(); got != "Is dit een fiets?" {
		t.Fatalf("pattern drill display text: got=%q", got)
	}
	ex := l.Sections[8].(*Exercise)
	if ex.ExerciseType != ExerciseFillIn || ex.Items[0].Answer != "ben" {
		t.Fatalf("exercise decode: %+v", ex)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"course.json":               {Data: []byte(courseJSON)},
		"lessons/lesson_002.json":   {Data: []byte(lessonJSON("2", "Twee"))},
		"lessons/lesson_001.json":   {Data: []byte(lessonJSON("1", "Een"))},
		"lessons/notes.txt":         {Data: []byte("ignored")},
		"lessons/draft_lesson.json": {Data: []byte("{")},
	}
	c, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("lessons: want=2 got=%d", c.Len())
	}

	_, err = LoadFS(fstest.MapFS{"course.json": {Data: []byte(courseJSON)}})
	if !errors.Is(err, ErrNoLessons) {
		t.Fatalf("no lessons: want ErrNoLessons got=%v", err)
	}

	_, err = LoadFS(fstest.MapFS{"lessons/lesson_001.json": {Data: []byte(lessonJSON("1", "Een"))}})
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing course: want fs.ErrNotExist got=%v", err)
	}
}

func TestCourseLessonsIsCopy(t *testing.T) {
	c, err := Load([]Document{doc("lesson_001.json", lessonJSON("1", "Een"))}, doc(CourseFile, courseJSON))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	ls := c.Lessons()
	ls[0] = nil
	if c.First() == nil {
		t.Fatalf("Lessons must not expose internal slice")
	}
}
