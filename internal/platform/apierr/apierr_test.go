package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestFrom(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"plain", errors.New("boom"), http.StatusInternalServerError, "internal"},
		{"direct", NotFound("lesson_not_found", errors.New("x")), http.StatusNotFound, "lesson_not_found"},
		{"wrapped", fmt.Errorf("svc: %w", BadRequest("invalid_lesson_id", nil)), http.StatusBadRequest, "invalid_lesson_id"},
		{"zero status", &Error{Code: "odd"}, http.StatusInternalServerError, "odd"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, code := From(tc.err)
			if status != tc.status || code != tc.code {
				t.Fatalf("want=%d/%q got=%d/%q", tc.status, tc.code, status, code)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	if got := New(http.StatusTeapot, "", nil).Error(); got != "api error (418)" {
		t.Fatalf("message: want=%q got=%q", "api error (418)", got)
	}
	if got := New(0, "code_only", nil).Error(); got != "code_only" {
		t.Fatalf("message: want=%q got=%q", "code_only", got)
	}
}
