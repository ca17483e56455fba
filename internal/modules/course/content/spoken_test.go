package content

import (
	"reflect"
	"testing"
)

func TestSpokenTexts(t *testing.T) {
	l := &Lesson{ID: 1, Title: "Les", Sections: []Section{
		&Dialogue{Type: KindDialogue, Lines: []DialogueLine{{Text: "Hallo"}, {Text: "  "}, {Text: "Dag", Speaker: "Piet"}}},
		&GrammarTable{Type: KindGrammarTable, Columns: []string{"a"}, Rows: [][]string{{"ik ben"}}},
		&Practice{Type: KindPractice, Items: []PracticeItem{{Question: "Wie?", Answer: "Ik"}, {Dutch: "Ja"}}},
		&PatternDrill{Type: KindPatternDrill, Pattern: "ik → jij", Items: []PatternDrillItem{{Input: "ik ben", Output: "jij bent"}}},
		&Exercise{Type: KindExercise, Items: []ExerciseItem{{Text: "___", Answer: "tas"}, {Text: "geen antwoord"}}},
	}}
	want := []string{"Hallo", "Dag", "Wie?", "Ja", "ik → jij", "jij bent", "tas"}
	if got := SpokenTexts(l); !reflect.DeepEqual(got, want) {
		t.Fatalf("spoken texts: want=%q got=%q", want, got)
	}
}
