package content

// SectionKind is the "type" tag of a section document.
type SectionKind string

const (
	KindDialogue        SectionKind = "dialogue"
	KindReading         SectionKind = "reading"
	KindVocabulary      SectionKind = "vocabulary"
	KindVocabularyGroup SectionKind = "vocabularyGroup"
	KindVocabularyTable SectionKind = "vocabularyTable"
	KindPractice        SectionKind = "practice"
	KindGrammarTable    SectionKind = "grammarTable"
	KindPatternDrill    SectionKind = "patternDrill"
	KindExercise        SectionKind = "exercise"
)

// Section is one of the nine section shapes. The set is closed: only types in
// this package implement it, and Accept routes each to its Visitor method.
type Section interface {
	Kind() SectionKind
	Accept(v Visitor) error
	sealed()
}

// Visitor has one method per section shape. Adding a shape adds a method,
// which every implementation must then provide.
type Visitor interface {
	Dialogue(*Dialogue) error
	Reading(*Reading) error
	Vocabulary(*Vocabulary) error
	VocabularyGroup(*VocabularyGroup) error
	VocabularyTable(*VocabularyTable) error
	Practice(*Practice) error
	GrammarTable(*GrammarTable) error
	PatternDrill(*PatternDrill) error
	Exercise(*Exercise) error
}

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type DialogueLine struct {
	Text        string `json:"text"`
	Speaker     string `json:"speaker,omitempty"`
	Translation string `json:"translation,omitempty"`
}

type Dialogue struct {
	Type   SectionKind    `json:"type"`
	Title  string         `json:"title,omitempty"`
	Lines  []DialogueLine `json:"lines"`
	Images []Image        `json:"images"`
}

type Paragraph struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
}

type Reading struct {
	Type        SectionKind `json:"type"`
	Title       string      `json:"title,omitempty"`
	HeaderImage *Image      `json:"headerImage,omitempty"`
	Paragraphs  []Paragraph `json:"paragraphs"`
}

type VocabularyItem struct {
	Number       *int   `json:"number,omitempty"`
	Dutch        string `json:"dutch"`
	English      string `json:"english,omitempty"`
	Spanish      string `json:"spanish,omitempty"`
	Description  string `json:"description,omitempty"`
	Illustration string `json:"illustration,omitempty"`
}

type Vocabulary struct {
	Type   SectionKind      `json:"type"`
	Title  string           `json:"title,omitempty"`
	Prompt string           `json:"prompt,omitempty"`
	Items  []VocabularyItem `json:"items"`
}

type VocabularyGroupItem struct {
	Number       *int   `json:"number,omitempty"`
	Dutch        string `json:"dutch"`
	English      string `json:"english,omitempty"`
	Spanish      string `json:"spanish,omitempty"`
	Illustration string `json:"illustration,omitempty"`
}

type WordGroup struct {
	Prompt string                `json:"prompt"`
	Items  []VocabularyGroupItem `json:"items"`
}

type VocabularyGroup struct {
	Type   SectionKind `json:"type"`
	Title  string      `json:"title,omitempty"`
	Groups []WordGroup `json:"groups"`
}

type VocabularyTableItem struct {
	Number       *int   `json:"number,omitempty"`
	Label        string `json:"label"`
	Dutch        string `json:"dutch,omitempty"`
	English      string `json:"english,omitempty"`
	Spanish      string `json:"spanish,omitempty"`
	Illustration string `json:"illustration,omitempty"`
}

type VocabularyTableRow struct {
	Category string                `json:"category,omitempty"`
	Items    []VocabularyTableItem `json:"items"`
}

type VocabularyTable struct {
	Type  SectionKind          `json:"type"`
	Title string               `json:"title,omitempty"`
	Rows  []VocabularyTableRow `json:"rows"`
}

type PracticeItem struct {
	Number       *int   `json:"number,omitempty"`
	Label        string `json:"label,omitempty"`
	Question     string `json:"question,omitempty"`
	Answer       string `json:"answer,omitempty"`
	Dutch        string `json:"dutch,omitempty"`
	English      string `json:"english,omitempty"`
	Spanish      string `json:"spanish,omitempty"`
	Illustration string `json:"illustration,omitempty"`
}

// DisplayText is the Dutch text shown (and spoken) for the item.
func (p PracticeItem) DisplayText() string {
	return firstNonEmpty(p.Dutch, p.Question, p.Answer)
}

type Practice struct {
	Type   SectionKind    `json:"type"`
	Title  string         `json:"title,omitempty"`
	Prompt string         `json:"prompt,omitempty"`
	Items  []PracticeItem `json:"items"`
}

type GrammarTable struct {
	Type    SectionKind `json:"type"`
	Title   string      `json:"title,omitempty"`
	Columns []string    `json:"columns"`
	Rows    [][]string  `json:"rows"`
}

type PatternDrillItem struct {
	Number       *int   `json:"number,omitempty"`
	Input        string `json:"input,omitempty"`
	Output       string `json:"output,omitempty"`
	Dutch        string `json:"dutch,omitempty"`
	English      string `json:"english,omitempty"`
	Spanish      string `json:"spanish,omitempty"`
	Illustration string `json:"illustration,omitempty"`
}

// DisplayText is the drilled form: the expected output when given.
func (p PatternDrillItem) DisplayText() string {
	return firstNonEmpty(p.Output, p.Dutch, p.Input)
}

type PatternDrill struct {
	Type        SectionKind        `json:"type"`
	Title       string             `json:"title,omitempty"`
	Pattern     string             `json:"pattern,omitempty"`
	InputPrompt string             `json:"inputPrompt,omitempty"`
	Items       []PatternDrillItem `json:"items"`
}

type ExerciseType string

const (
	ExerciseCopy          ExerciseType = "copy"
	ExerciseFillIn        ExerciseType = "fillIn"
	ExerciseTransform     ExerciseType = "transform"
	ExerciseRewrite       ExerciseType = "rewrite"
	ExerciseComprehension ExerciseType = "comprehension"
	ExerciseGeneral       ExerciseType = "general"
)

type ExerciseExample struct {
	Input       string `json:"input,omitempty"`
	Output      string `json:"output,omitempty"`
	Dutch       string `json:"dutch,omitempty"`
	Spanish     string `json:"spanish,omitempty"`
	Handwritten bool   `json:"handwritten,omitempty"`
}

// Answer is the worked answer of the example.
func (e ExerciseExample) Answer() string {
	return firstNonEmpty(e.Output, e.Dutch)
}

type ExerciseItem struct {
	Text    string `json:"text"`
	Answer  string `json:"answer,omitempty"`
	Spanish string `json:"spanish,omitempty"`
}

type Exercise struct {
	Type         SectionKind       `json:"type"`
	Title        string            `json:"title,omitempty"`
	ExerciseType ExerciseType      `json:"exerciseType"`
	Instruction  string            `json:"instruction"`
	Instruction2 string            `json:"instruction2,omitempty"`
	WordsToUse   []string          `json:"wordsToUse,omitempty"`
	Example      []ExerciseExample `json:"example,omitempty"`
	Items        []ExerciseItem    `json:"items,omitempty"`
}

func (*Dialogue) Kind() SectionKind        { return KindDialogue }
func (*Reading) Kind() SectionKind         { return KindReading }
func (*Vocabulary) Kind() SectionKind      { return KindVocabulary }
func (*VocabularyGroup) Kind() SectionKind { return KindVocabularyGroup }
func (*VocabularyTable) Kind() SectionKind { return KindVocabularyTable }
func (*Practice) Kind() SectionKind        { return KindPractice }
func (*GrammarTable) Kind() SectionKind    { return KindGrammarTable }
func (*PatternDrill) Kind() SectionKind    { return KindPatternDrill }
func (*Exercise) Kind() SectionKind        { return KindExercise }

func (s *Dialogue) Accept(v Visitor) error        { return v.Dialogue(s) }
func (s *Reading) Accept(v Visitor) error         { return v.Reading(s) }
func (s *Vocabulary) Accept(v Visitor) error      { return v.Vocabulary(s) }
func (s *VocabularyGroup) Accept(v Visitor) error { return v.VocabularyGroup(s) }
func (s *VocabularyTable) Accept(v Visitor) error { return v.VocabularyTable(s) }
func (s *Practice) Accept(v Visitor) error        { return v.Practice(s) }
func (s *GrammarTable) Accept(v Visitor) error    { return v.GrammarTable(s) }
func (s *PatternDrill) Accept(v Visitor) error    { return v.PatternDrill(s) }
func (s *Exercise) Accept(v Visitor) error        { return v.Exercise(s) }

func (*Dialogue) sealed()        {}
func (*Reading) sealed()         {}
func (*Vocabulary) sealed()      {}
func (*VocabularyGroup) sealed() {}
func (*VocabularyTable) sealed() {}
func (*Practice) sealed()        {}
func (*GrammarTable) sealed()    {}
func (*PatternDrill) sealed()    {}
func (*Exercise) sealed()        {}

// newSection returns an empty value of the shape tagged kind.
func newSection(kind SectionKind) (Section, bool) {
	switch kind {
	case KindDialogue:
		return &Dialogue{}, true
	case KindReading:
		return &Reading{}, true
	case KindVocabulary:
		return &Vocabulary{}, true
	case KindVocabularyGroup:
		return &VocabularyGroup{}, true
	case KindVocabularyTable:
		return &VocabularyTable{}, true
	case KindPractice:
		return &Practice{}, true
	case KindGrammarTable:
		return &GrammarTable{}, true
	case KindPatternDrill:
		return &PatternDrill{}, true
	case KindExercise:
		return &Exercise{}, true
	}
	return nil, false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
