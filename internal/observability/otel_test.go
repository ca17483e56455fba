package observability

import (
	"context"
	"reflect"
	"testing"
)

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1}
	for in, want := range cases {
		if got := clampRatio(in); got != want {
			t.Fatalf("clampRatio(%v): want=%v got=%v", in, want, got)
		}
	}
}

func TestParseHeaders(t *testing.T) {
	got := parseHeaders(" api-key = abc , broken, =x, team=nl ")
	want := map[string]string{"api-key": "abc", "team": "nl"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("headers: want=%v got=%v", want, got)
	}
	if parseHeaders("") != nil {
		t.Fatalf("empty headers must be nil")
	}
}

func TestInitOTelDisabledIsNoop(t *testing.T) {
	shutdown := InitOTel(context.Background(), nil, OtelConfig{})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
