// Package audio adapts a speech platform to the playback contract used by
// lesson pages: every request cancels what is playing, then speaks.
package audio

import (
	"errors"
	"sync"
)

const (
	DefaultLanguage = "nl-NL"
	DefaultRate     = 0.85

	UnsupportedMessage = "Text-to-speech is not supported in your browser."
)

var ErrUnsupported = errors.New("speech synthesis unavailable")

type Utterance struct {
	Text string
	Lang string
	Rate float64
}

// Callbacks are invoked by a Platform, possibly from another goroutine.
// OnError may arrive without a preceding OnStart.
type Callbacks struct {
	OnStart func()
	OnEnd   func()
	OnError func(error)
}

type Platform interface {
	Speak(u Utterance, cb Callbacks)
	CancelAll()
}

type Notifier interface {
	Notify(msg string)
}

type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

type Option func(*Adapter)

func WithNotifier(n Notifier) Option  { return func(a *Adapter) { a.notifier = n } }
func WithLanguage(lang string) Option { return func(a *Adapter) { a.lang = lang } }
func WithRate(rate float64) Option    { return func(a *Adapter) { a.rate = rate } }

// WithStateListener registers fn to be called on every Playing transition.
func WithStateListener(fn func(playing bool)) Option {
	return func(a *Adapter) { a.onState = fn }
}

type Adapter struct {
	platform Platform
	notifier Notifier
	lang     string
	rate     float64
	onState  func(bool)

	mu      sync.Mutex
	playing bool
	gen     uint64
}

// New wraps p. A nil p is valid: every Speak then notifies the user once
// and changes nothing.
func New(p Platform, opts ...Option) *Adapter {
	a := &Adapter{
		platform: p,
		lang:     DefaultLanguage,
		rate:     DefaultRate,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adapter) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

// Speak cancels any utterance in flight and speaks text.
func (a *Adapter) Speak(text string) {
	a.speak(text)
}

// SpeakWait is Speak that blocks until this utterance ends, fails, or done
// is closed.
func (a *Adapter) SpeakWait(done <-chan struct{}, text string) error {
	select {
	case err := <-a.speak(text):
		return err
	case <-done:
		return errors.New("speech wait cancelled")
	}
}

func (a *Adapter) speak(text string) <-chan error {
	result := make(chan error, 1)
	if a.platform == nil {
		if a.notifier != nil {
			a.notifier.Notify(UnsupportedMessage)
		}
		result <- ErrUnsupported
		return result
	}

	a.mu.Lock()
	a.gen++
	gen := a.gen
	wasPlaying := a.playing
	a.playing = false
	a.mu.Unlock()

	a.platform.CancelAll()
	if wasPlaying {
		a.emit(false)
	}

	var once sync.Once
	finish := func(err error) {
		once.Do(func() { result <- err })
	}
	a.platform.Speak(Utterance{Text: text, Lang: a.lang, Rate: a.rate}, Callbacks{
		OnStart: func() { a.transition(gen, true) },
		OnEnd: func() {
			a.transition(gen, false)
			finish(nil)
		},
		OnError: func(err error) {
			a.transition(gen, false)
			finish(err)
		},
	})
	return result
}

// transition applies a platform event unless a newer Speak has superseded
// the utterance it belongs to.
func (a *Adapter) transition(gen uint64, playing bool) {
	a.mu.Lock()
	if gen != a.gen || a.playing == playing {
		a.mu.Unlock()
		return
	}
	a.playing = playing
	a.mu.Unlock()
	a.emit(playing)
}

func (a *Adapter) emit(playing bool) {
	if a.onState != nil {
		a.onState(playing)
	}
}
