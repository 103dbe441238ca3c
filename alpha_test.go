package alpha

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/internal/testutil"
	"github.com/voxlab/alpha/memory"
)

// End-to-end over the façade: default wiring, scripted typed input.
func TestAssistant_ExitFlow(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	a := New(func(o *Options) {
		o.Speaker = speaker
		o.Reader = testutil.ScriptReader("quit")
		o.Notes = memory.NewInMemoryStore()
		o.Greeting = false
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, core.StateTerminated, a.State())
	assert.True(t, speaker.Said("Goodbye"))
}

func TestAssistant_RememberRecallFlow(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	a := New(func(o *Options) {
		o.Speaker = speaker
		o.Reader = testutil.ScriptReader(
			"remember that the meeting is at noon",
			"what did i tell you",
			"exit",
		)
		o.Notes = memory.NewInMemoryStore()
		o.Greeting = false
	})

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, speaker.Said("I will remember that."))
	assert.True(t, speaker.Said("the meeting is at noon"))
}

func TestAssistant_GreetsOnStartup(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	a := New(func(o *Options) {
		o.Speaker = speaker
		o.Reader = testutil.ScriptReader("bye")
		o.Notes = memory.NewInMemoryStore()
	})

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, speaker.Said("at your service"))
}

func TestAssistant_TimeAndDate(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	a := New(func(o *Options) {
		o.Speaker = speaker
		o.Reader = testutil.ScriptReader("what time is it", "what is the date", "quit")
		o.Notes = memory.NewInMemoryStore()
		o.Greeting = false
	})

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, speaker.Said("The current time is"))
	assert.True(t, speaker.Said("Today is"))
}
