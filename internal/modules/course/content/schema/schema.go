// Package schema validates raw course and lesson documents against the
// embedded CUE definitions and returns normalized JSON with defaults applied.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed course.cue
var courseCUE string

// Issue is a single validation failure located by a dotted path into the
// document ("sections.2.items.0.dutch"). The empty path is the document root.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	p := i.Path
	if p == "" {
		p = "(root)"
	}
	return p + ": " + i.Message
}

// SectionDoc is one validated section: its tag and the normalized JSON.
type SectionDoc struct {
	Kind string
	Data json.RawMessage
}

// LessonDoc is a validated lesson. Header holds the lesson fields without
// sections; Sections are in document order.
type LessonDoc struct {
	Header   json.RawMessage
	Sections []SectionDoc
}

// Schema is the compiled content schema. A cue.Context is not safe for
// concurrent use, so every evaluation holds mu.
type Schema struct {
	mu       sync.Mutex
	ctx      *cue.Context
	course   cue.Value
	lesson   cue.Value
	sections map[string]cue.Value
	kinds    []string
}

var (
	defaultOnce   sync.Once
	defaultSchema *Schema
	defaultErr    error
)

// Default returns the process-wide compiled schema.
func Default() (*Schema, error) {
	defaultOnce.Do(func() {
		defaultSchema, defaultErr = Compile()
	})
	return defaultSchema, defaultErr
}

// Compile builds a fresh schema from the embedded CUE source.
func Compile() (*Schema, error) {
	ctx := cuecontext.New()
	root := ctx.CompileString(courseCUE, cue.Filename("course.cue"))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("compile course schema: %w", err)
	}
	s := &Schema{
		ctx:      ctx,
		course:   root.LookupPath(cue.MakePath(cue.Def("#Course"))),
		lesson:   root.LookupPath(cue.MakePath(cue.Def("#Lesson"))),
		sections: map[string]cue.Value{},
	}
	if !s.course.Exists() || !s.lesson.Exists() {
		return nil, fmt.Errorf("course schema: missing #Course or #Lesson")
	}
	defs := root.LookupPath(cue.MakePath(cue.Def("#Sections")))
	iter, err := defs.Fields(cue.Definitions(false))
	if err != nil {
		return nil, fmt.Errorf("course schema sections: %w", err)
	}
	for iter.Next() {
		kind := iter.Selector().Unquoted()
		s.sections[kind] = iter.Value()
		s.kinds = append(s.kinds, kind)
	}
	if len(s.kinds) == 0 {
		return nil, fmt.Errorf("course schema: no section definitions")
	}
	sort.Strings(s.kinds)
	return s, nil
}

// Kinds lists every section tag the schema knows, sorted.
func (s *Schema) Kinds() []string {
	return append([]string(nil), s.kinds...)
}

// Course validates a course document and returns it normalized.
func (s *Schema) Course(name string, data []byte) (json.RawMessage, []Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, issues := s.build(name, data)
	if issues != nil {
		return nil, issues
	}
	return s.check(v, s.course)
}

// Lesson validates a lesson document. The lesson envelope is checked against
// #Lesson, then every section independently against the definition its
// "type" selects. All issues are collected before returning.
func (s *Schema) Lesson(name string, data []byte) (*LessonDoc, []Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, issues := s.build(name, data)
	if issues != nil {
		return nil, issues
	}

	// Lessons typed as a whole ("type": "dialogue" with lines at the top
	// level) predate per-section tags and are not accepted.
	if v.LookupPath(cue.ParsePath("type")).Exists() {
		issues = append(issues, Issue{
			Path:    "type",
			Message: `lesson-level "type" is not supported; declare each section with its own "type"`,
		})
	}

	header, hIssues := s.check(v, s.lesson)
	issues = append(issues, hIssues...)

	doc := &LessonDoc{}
	secs := v.LookupPath(cue.ParsePath("sections"))
	if secs.Exists() && secs.Kind() == cue.ListKind {
		iter, err := secs.List()
		if err != nil {
			issues = append(issues, Issue{Path: "sections", Message: err.Error()})
		}
		n := 0
		for err == nil && iter.Next() {
			sec, secIssues := s.section(n, iter.Value())
			issues = append(issues, secIssues...)
			if sec != nil {
				doc.Sections = append(doc.Sections, *sec)
			}
			n++
		}
		if err == nil && n == 0 {
			issues = append(issues, Issue{Path: "sections", Message: "must contain at least one section"})
		}
	}
	if len(issues) > 0 {
		return nil, issues
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(header, &fields); err != nil {
		return nil, []Issue{{Message: err.Error()}}
	}
	delete(fields, "sections")
	delete(fields, "type")
	doc.Header, _ = json.Marshal(fields)
	return doc, nil
}

func (s *Schema) section(i int, v cue.Value) (*SectionDoc, []Issue) {
	tag := v.LookupPath(cue.ParsePath("type"))
	kind, err := tag.String()
	if err != nil {
		// Missing or non-string tags are reported by the #Lesson check.
		return nil, nil
	}
	def, ok := s.sections[kind]
	if !ok {
		return nil, []Issue{{
			Path:    fmt.Sprintf("sections.%d.type", i),
			Message: fmt.Sprintf("unknown section type %q", kind),
		}}
	}
	data, issues := s.check(v, def)
	if issues != nil {
		return nil, issues
	}
	return &SectionDoc{Kind: kind, Data: data}, nil
}

func (s *Schema) build(name string, data []byte) (cue.Value, []Issue) {
	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return cue.Value{}, []Issue{{Message: "invalid JSON: " + firstLine(err.Error())}}
	}
	v := s.ctx.BuildExpr(expr)
	if err := v.Err(); err != nil {
		return cue.Value{}, toIssues(err)
	}
	if v.Kind() != cue.StructKind {
		return cue.Value{}, []Issue{{Message: "document must be a JSON object"}}
	}
	return v, nil
}

// check unifies data with def. Data goes first so that issue paths are
// relative to the data value rather than the definition.
func (s *Schema) check(data, def cue.Value) (json.RawMessage, []Issue) {
	u := data.Unify(def)
	if err := u.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return nil, toIssues(err)
	}
	out, err := u.MarshalJSON()
	if err != nil {
		return nil, toIssues(err)
	}
	return out, nil
}

func toIssues(err error) []Issue {
	var out []Issue
	seen := map[Issue]bool{}
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		is := Issue{
			Path:    strings.Join(trimDefinitions(e.Path()), "."),
			Message: humanize(fmt.Sprintf(format, args...)),
		}
		if !seen[is] {
			seen[is] = true
			out = append(out, is)
		}
	}
	if len(out) == 0 {
		out = append(out, Issue{Message: firstLine(err.Error())})
	}
	return out
}

// trimDefinitions drops a leading definition selector (and the section tag
// under #Sections) from paths reported against a definition.
func trimDefinitions(path []string) []string {
	if len(path) == 0 || !strings.HasPrefix(path[0], "#") {
		return path
	}
	if path[0] == "#Sections" && len(path) > 1 {
		return path[2:]
	}
	return path[1:]
}

func humanize(msg string) string {
	switch {
	case msg == "field is required but not present":
		return "required"
	case strings.HasPrefix(msg, "incomplete value"):
		return "required"
	}
	return msg
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
