package handler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/internal/testutil"
	"github.com/voxlab/alpha/logging"
	"github.com/voxlab/alpha/memory"
)

func newTurnContext(utterance string) *core.TurnContext {
	return core.NewTurnContext(context.Background(), utterance, &testutil.CaptureSpeaker{}, memory.NewInMemoryStore(), logging.NoOpLogger{})
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry(logging.NoOpLogger{})
	r.Register(core.IntentJoke, core.NewHandlerFunc("joke", func(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
		return core.Okf("ha")
	}))

	out := r.Dispatch(newTurnContext("tell me a joke"), core.IntentJoke, core.SlotSet{})
	assert.True(t, out.OK)
	assert.Equal(t, "ha", out.Message)
}

func TestRegistry_DispatchUnbound(t *testing.T) {
	r := NewRegistry(logging.NoOpLogger{})

	out := r.Dispatch(newTurnContext("x"), core.IntentJoke, core.SlotSet{})
	assert.False(t, out.OK)
	assert.Contains(t, out.Message, "don't know how")
}

// A panicking handler becomes a failure Outcome; the fault never escapes the
// dispatch boundary.
func TestRegistry_DispatchRecoversPanic(t *testing.T) {
	r := NewRegistry(logging.NoOpLogger{})
	r.Register(core.IntentJoke, core.NewHandlerFunc("boom", func(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
		panic("kaboom")
	}))

	var out core.Outcome
	assert.NotPanics(t, func() {
		out = r.Dispatch(newTurnContext("x"), core.IntentJoke, core.SlotSet{})
	})
	assert.False(t, out.OK)
	assert.NotEmpty(t, out.Message)
}

func TestRegistry_ReplaceBinding(t *testing.T) {
	r := NewRegistry(logging.NoOpLogger{})
	r.Register(core.IntentJoke, core.NewHandlerFunc("a", func(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
		return core.Okf("first")
	}))
	r.Register(core.IntentJoke, core.NewHandlerFunc("b", func(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
		return core.Okf("second")
	}))

	out := r.Dispatch(newTurnContext("x"), core.IntentJoke, core.SlotSet{})
	assert.Equal(t, "second", out.Message)
}

func TestHandlerErrorFormatting(t *testing.T) {
	err := NewHandlerError("demo", "something failed", CodeNetwork)
	assert.Contains(t, err.Error(), "NETWORK_ERROR")
	assert.Contains(t, err.Error(), "demo")

	bare := NewHandlerError("demo", "plain", "")
	assert.Equal(t, "handler error in demo: plain", bare.Error())
}
