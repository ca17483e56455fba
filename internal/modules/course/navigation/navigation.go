// Package navigation resolves a requested lesson id against the ordered
// lesson list and computes the previous/next links.
package navigation

import (
	"net/url"
	"strconv"
)

// Position is where a lesson sits in the course.
type Position struct {
	ID      int  `json:"id"`
	Index   int  `json:"index"`
	Total   int  `json:"total"`
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
	PrevID  int  `json:"prevId,omitempty"`
	NextID  int  `json:"nextId,omitempty"`
	// Corrected is set when the requested id was missing or unknown and the
	// first lesson was used instead.
	Corrected bool `json:"corrected,omitempty"`
}

// Number is the one-based position shown to learners.
func (p Position) Number() int { return p.Index + 1 }

// Resolve finds requested in ids (ascending, non-empty). When ok is false or
// the id is not present, the first lesson is selected and Corrected is set.
func Resolve(ids []int, requested int, ok bool) Position {
	if len(ids) == 0 {
		return Position{}
	}
	idx := -1
	if ok {
		for i, id := range ids {
			if id == requested {
				idx = i
				break
			}
		}
	}
	p := Position{Total: len(ids)}
	if idx < 0 {
		idx = 0
		p.Corrected = true
	}
	p.Index = idx
	p.ID = ids[idx]
	if idx > 0 {
		p.HasPrev = true
		p.PrevID = ids[idx-1]
	}
	if idx < len(ids)-1 {
		p.HasNext = true
		p.NextID = ids[idx+1]
	}
	return p
}

// ParseID reads a lesson id path segment. Non-numeric and non-positive
// values are reported as absent.
func ParseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// LessonPath is the canonical page path for a lesson. The pronunciation
// panel state travels in the query string only.
func LessonPath(id int, pronunciation bool) string {
	p := "/lesson/" + strconv.Itoa(id)
	if pronunciation {
		q := url.Values{}
		q.Set("pronunciation", "true")
		p += "?" + q.Encode()
	}
	return p
}
