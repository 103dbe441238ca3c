package testutil

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"
)

// ScriptReader returns a reader delivering the given lines as the secondary
// typed channel would: one line per read, in order, then EOF.
func ScriptReader(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n"))
}

// CaptureSpeaker records everything spoken, in order.
type CaptureSpeaker struct {
	mu    sync.Mutex
	lines []string
}

// Say appends text to the capture log.
func (s *CaptureSpeaker) Say(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, text)
}

// Lines returns a copy of everything spoken so far.
func (s *CaptureSpeaker) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Said reports whether any spoken line contains the substring.
func (s *CaptureSpeaker) Said(substr string) bool {
	for _, l := range s.Lines() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// StubListener returns canned audio or a canned error on every Listen call.
type StubListener struct {
	Audio []byte
	Err   error
}

// Listen implements core.Listener.
func (l *StubListener) Listen(_ context.Context, _ time.Duration) ([]byte, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	return l.Audio, nil
}

// StubTranscriber returns scripted transcriptions (or errors) in sequence,
// repeating the last entry once the script is exhausted.
type StubTranscriber struct {
	Texts []string
	Errs  []error

	i int
}

// Transcribe implements core.Transcriber.
func (t *StubTranscriber) Transcribe(_ context.Context, _ []byte) (string, error) {
	i := t.i
	if t.i < len(t.Texts)-1 || t.i < len(t.Errs)-1 {
		t.i++
	}

	var err error
	if i < len(t.Errs) {
		err = t.Errs[i]
	}
	if err != nil {
		return "", err
	}
	if i < len(t.Texts) {
		return t.Texts[i], nil
	}
	return "", nil
}
