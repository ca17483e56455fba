package audio

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"sync"

	"golang.org/x/text/language"
)

// Words per minute the supported binaries use at rate 1.0.
const baseWPM = 175

// ExecPlatform speaks through a local speech binary (espeak-ng, espeak or
// macOS say). Each utterance is one process; CancelAll kills them.
type ExecPlatform struct {
	bin  string
	path string

	mu      sync.Mutex
	next    int
	cancels map[int]context.CancelFunc
}

var candidates = []string{"espeak-ng", "espeak", "say"}

// DetectPlatform returns an ExecPlatform for the first speech binary on PATH,
// or a nil Platform when there is none.
func DetectPlatform() Platform {
	for _, bin := range candidates {
		if p, err := NewExecPlatform(bin); err == nil {
			return p
		}
	}
	return nil
}

func NewExecPlatform(bin string) (*ExecPlatform, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("speech binary %q: %w", bin, err)
	}
	return &ExecPlatform{bin: bin, path: path, cancels: map[int]context.CancelFunc{}}, nil
}

func (p *ExecPlatform) Name() string { return p.bin }

func (p *ExecPlatform) Speak(u Utterance, cb Callbacks) {
	ctx, cancel := context.WithCancel(context.Background())
	p.mu.Lock()
	id := p.next
	p.next++
	p.cancels[id] = cancel
	p.mu.Unlock()

	cmd := exec.CommandContext(ctx, p.path, p.args(u)...)
	if err := cmd.Start(); err != nil {
		p.forget(id)
		if cb.OnError != nil {
			cb.OnError(err)
		}
		return
	}
	if cb.OnStart != nil {
		cb.OnStart()
	}
	go func() {
		err := cmd.Wait()
		p.forget(id)
		if err != nil {
			if cb.OnError != nil {
				cb.OnError(err)
			}
			return
		}
		if cb.OnEnd != nil {
			cb.OnEnd()
		}
	}()
}

func (p *ExecPlatform) CancelAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, cancel := range p.cancels {
		cancel()
		delete(p.cancels, id)
	}
}

func (p *ExecPlatform) forget(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cancel, ok := p.cancels[id]; ok {
		cancel()
		delete(p.cancels, id)
	}
}

func (p *ExecPlatform) args(u Utterance) []string {
	wpm := strconv.Itoa(int(math.Round(baseWPM * u.Rate)))
	if p.bin == "say" {
		return []string{"-r", wpm, u.Text}
	}
	return []string{"-v", voice(u.Lang), "-s", wpm, u.Text}
}

// voice maps a BCP 47 tag to the espeak voice name, which is the base
// language ("nl-NL" -> "nl").
func voice(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return "nl"
	}
	base, _ := tag.Base()
	return base.String()
}
