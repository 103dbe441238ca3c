package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates a unique identifier for turns.
func NewID() string { return uuid.NewString() }

// Sentinel errors for the primary input channel. The input resolver maps each
// of them to a channel-specific prompt before falling back to typed input.
var (
	// ErrNoSpeech indicates no speech was detected within the listen timeout.
	ErrNoSpeech = errors.New("no speech detected")
	// ErrNotUnderstood indicates speech was captured but not transcribable.
	ErrNotUnderstood = errors.New("speech not understood")
	// ErrInputClosed indicates the secondary channel reached EOF and no
	// further input can ever arrive.
	ErrInputClosed = errors.New("input channel closed")
)

// Speaker delivers assistant output to the user (spoken, printed or both).
// Implementations must not fail past this boundary; output is fire-and-forget.
type Speaker interface {
	Say(text string)
}

// Listener captures one phrase of audio from the primary input channel.
// Implementations return ErrNoSpeech when nothing is heard before the
// context deadline. maxPhrase bounds the duration of a single phrase.
type Listener interface {
	Listen(ctx context.Context, maxPhrase time.Duration) ([]byte, error)
}

// Transcriber converts captured audio to text. ErrNotUnderstood signals
// unintelligible audio; any other error is a transcription service failure.
// Both funnel to the same typed fallback in the input resolver.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// NoteStore persists the single free-text note. Save overwrites wholesale
// (last writer wins); Load reports ok=false when nothing has been saved yet.
type NoteStore interface {
	Save(note string) error
	Load() (note string, ok bool, err error)
}

// SlotSet maps slot names to resolved string values. A slot is unresolved
// until a non-empty value is assigned.
type SlotSet map[string]string

// Get returns the value for the named slot ("" when unresolved).
func (s SlotSet) Get(name string) string { return s[name] }

// Resolved reports whether the named slot carries a non-empty value.
func (s SlotSet) Resolved(name string) bool { return s[name] != "" }

// Outcome is the uniform result every capability handler returns: success or
// failure plus a human-readable message for reporting. Handlers never let
// faults escape; anything internal is converted to a failure Outcome.
type Outcome struct {
	OK      bool
	Message string
}

// Okf builds a successful Outcome with a formatted message.
func Okf(format string, args ...any) Outcome {
	return Outcome{OK: true, Message: fmt.Sprintf(format, args...)}
}

// Failf builds a failure Outcome with a formatted message.
func Failf(format string, args ...any) Outcome {
	return Outcome{OK: false, Message: fmt.Sprintf(format, args...)}
}

// Handler is a capability invoked with a fully resolved SlotSet. The slot
// resolver guarantees every required slot is non-empty before Handle runs.
type Handler interface {
	// Name returns the unique snake_case identifier used in logs.
	Name() string
	// Handle performs the capability's side effect and reports the result.
	Handle(tc *TurnContext, slots SlotSet) Outcome
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc struct {
	name string
	fn   func(tc *TurnContext, slots SlotSet) Outcome
}

// NewHandlerFunc wraps fn as a named Handler.
func NewHandlerFunc(name string, fn func(tc *TurnContext, slots SlotSet) Outcome) *HandlerFunc {
	return &HandlerFunc{name: name, fn: fn}
}

// Name returns the handler's identifier.
func (h *HandlerFunc) Name() string { return h.name }

// Handle invokes the wrapped function.
func (h *HandlerFunc) Handle(tc *TurnContext, slots SlotSet) Outcome { return h.fn(tc, slots) }
