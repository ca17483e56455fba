package audio

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

// fakePlatform records calls and keeps the callbacks of every utterance so
// tests can fire them in any order.
type fakePlatform struct {
	mu      sync.Mutex
	spoken  []Utterance
	cbs     []Callbacks
	cancels int
}

func (f *fakePlatform) Speak(u Utterance, cb Callbacks) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, u)
	f.cbs = append(f.cbs, cb)
}

func (f *fakePlatform) CancelAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancels++
}

func (f *fakePlatform) cb(i int) Callbacks {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cbs[i]
}

func TestSpeakCancelsThenSubmits(t *testing.T) {
	p := &fakePlatform{}
	a := New(p)
	a.Speak("Goedemorgen")

	if p.cancels != 1 {
		t.Fatalf("cancels: want=1 got=%d", p.cancels)
	}
	if len(p.spoken) != 1 {
		t.Fatalf("spoken: want=1 got=%d", len(p.spoken))
	}
	u := p.spoken[0]
	if u.Text != "Goedemorgen" || u.Lang != "nl-NL" || u.Rate != 0.85 {
		t.Fatalf("utterance: got=%+v", u)
	}
	if a.Playing() {
		t.Fatalf("playing before start callback")
	}
	p.cb(0).OnStart()
	if !a.Playing() {
		t.Fatalf("playing: want=true after start")
	}
	p.cb(0).OnEnd()
	if a.Playing() {
		t.Fatalf("playing: want=false after end")
	}
}

func TestSpeakErrorStopsPlaying(t *testing.T) {
	p := &fakePlatform{}
	a := New(p)
	a.Speak("Dag")
	p.cb(0).OnStart()
	p.cb(0).OnError(errors.New("audio device busy"))
	if a.Playing() {
		t.Fatalf("playing: want=false after error")
	}
}

func TestStaleCallbacksIgnored(t *testing.T) {
	p := &fakePlatform{}
	var transitions []bool
	a := New(p, WithStateListener(func(playing bool) { transitions = append(transitions, playing) }))

	a.Speak("A")
	p.cb(0).OnStart()
	a.Speak("B")
	if p.cancels != 2 {
		t.Fatalf("cancels: want=2 got=%d", p.cancels)
	}
	if a.Playing() {
		t.Fatalf("playing must drop when A is cancelled")
	}
	// A's interrupted end arrives after B was submitted.
	p.cb(0).OnEnd()
	p.cb(1).OnStart()
	p.cb(0).OnError(errors.New("interrupted"))
	if !a.Playing() {
		t.Fatalf("B should still be playing")
	}
	p.cb(1).OnEnd()
	if a.Playing() {
		t.Fatalf("playing: want=false after B ends")
	}

	want := []bool{true, false, true, false}
	if len(transitions) != len(want) {
		t.Fatalf("transitions: want=%v got=%v", want, transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transitions: want=%v got=%v", want, transitions)
		}
	}
}

func TestNoPlatformNotifiesOnce(t *testing.T) {
	var msgs []string
	a := New(nil, WithNotifier(NotifierFunc(func(m string) { msgs = append(msgs, m) })))
	a.Speak("Hallo")
	if len(msgs) != 1 || msgs[0] != UnsupportedMessage {
		t.Fatalf("notifications: got=%v", msgs)
	}
	if a.Playing() {
		t.Fatalf("playing must not change without a platform")
	}
	if err := a.SpeakWait(nil, "Hallo"); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("SpeakWait: want ErrUnsupported got=%v", err)
	}
}

func TestSpeakWait(t *testing.T) {
	p := &fakePlatform{}
	a := New(p, WithLanguage("nl-BE"), WithRate(1))
	errc := make(chan error, 1)
	go func() { errc <- a.SpeakWait(nil, "Tot ziens") }()

	// Wait for the utterance to be submitted.
	for {
		p.mu.Lock()
		n := len(p.cbs)
		p.mu.Unlock()
		if n == 1 {
			break
		}
	}
	p.cb(0).OnStart()
	p.cb(0).OnEnd()
	if err := <-errc; err != nil {
		t.Fatalf("SpeakWait: %v", err)
	}
	if p.spoken[0].Lang != "nl-BE" || p.spoken[0].Rate != 1 {
		t.Fatalf("options not applied: %+v", p.spoken[0])
	}
}

func TestControls(t *testing.T) {
	c := NewControls("", 0)
	got := string(c.Control(`Hoe gaat "het"?`))
	for _, frag := range []string{
		`data-speak="Hoe gaat &#34;het&#34;?"`,
		`data-lang="nl-NL"`,
		`data-rate="0.85"`,
		`aria-label="Escuchar pronunciación"`,
	} {
		if !strings.Contains(got, frag) {
			t.Fatalf("control missing %q: %s", frag, got)
		}
	}
	if c.Control("   ") != "" {
		t.Fatalf("blank text should render no control")
	}
}

func TestExecArgs(t *testing.T) {
	p := &ExecPlatform{bin: "espeak-ng"}
	got := strings.Join(p.args(Utterance{Text: "Dank je", Lang: "nl-NL", Rate: 0.85}), " ")
	if got != "-v nl -s 149 Dank je" {
		t.Fatalf("espeak args: got=%q", got)
	}
	p = &ExecPlatform{bin: "say"}
	got = strings.Join(p.args(Utterance{Text: "Dank je", Lang: "nl-NL", Rate: 1}), " ")
	if got != "-r 175 Dank je" {
		t.Fatalf("say args: got=%q", got)
	}
}
