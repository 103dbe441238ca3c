package input

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/internal/testutil"
)

func TestResolve_TextOnly(t *testing.T) {
	r := New(func(o *Options) {
		o.Reader = testutil.ScriptReader("  What TIME is it  ", "quit")
	})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "what time is it", got)

	got, err = r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "quit", got)
}

func TestResolve_TextOnly_EmptyLine(t *testing.T) {
	r := New(func(o *Options) {
		o.Reader = testutil.ScriptReader("", "hello")
	})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestResolve_InputClosed(t *testing.T) {
	r := New(func(o *Options) {
		o.Reader = testutil.ScriptReader()
	})

	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, core.ErrInputClosed)
}

func TestResolve_PrimarySuccess(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	r := New(func(o *Options) {
		o.Listener = &testutil.StubListener{Audio: []byte("pcm")}
		o.Transcriber = &testutil.StubTranscriber{Texts: []string{"  Play Imagine "}}
		o.Reader = testutil.ScriptReader("typed fallback")
		o.Speaker = speaker
	})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "play imagine", got)
	// No fallback prompt on the happy path.
	assert.Empty(t, speaker.Lines())
}

func TestResolve_FallbackOnTimeout(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	r := New(func(o *Options) {
		o.Listener = &testutil.StubListener{Err: context.DeadlineExceeded}
		o.Transcriber = &testutil.StubTranscriber{}
		o.Reader = testutil.ScriptReader("Typed Command")
		o.Speaker = speaker
	})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "typed command", got)
	assert.True(t, speaker.Said("No speech detected"))
}

func TestResolve_FallbackOnNotUnderstood(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	r := New(func(o *Options) {
		o.Listener = &testutil.StubListener{Audio: []byte("pcm")}
		o.Transcriber = &testutil.StubTranscriber{Errs: []error{core.ErrNotUnderstood}}
		o.Reader = testutil.ScriptReader("typed instead")
		o.Speaker = speaker
	})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "typed instead", got)
	assert.True(t, speaker.Said("did not understand"))
}

func TestResolve_FallbackOnServiceError(t *testing.T) {
	speaker := &testutil.CaptureSpeaker{}
	r := New(func(o *Options) {
		o.Listener = &testutil.StubListener{Audio: []byte("pcm")}
		o.Transcriber = &testutil.StubTranscriber{Errs: []error{errors.New("upstream 503")}}
		o.Reader = testutil.ScriptReader("typed instead")
		o.Speaker = speaker
	})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "typed instead", got)
	assert.True(t, speaker.Said("service failed"))
}

func TestResolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := New(func(o *Options) {
		o.Reader = testutil.ScriptReader("never read")
	})

	_, err := r.Resolve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("  Hello World \n"))
	assert.Equal(t, "", Normalize("   "))
}

func TestResolve_ListenTimeoutApplies(t *testing.T) {
	// A listener that honors its context returns once the listen timeout
	// elapses; the resolver must convert that into the typed fallback.
	speaker := &testutil.CaptureSpeaker{}
	r := New(func(o *Options) {
		o.Listener = blockingListener{}
		o.Transcriber = &testutil.StubTranscriber{}
		o.Reader = testutil.ScriptReader("fallback")
		o.Speaker = speaker
		o.ListenTimeout = 10 * time.Millisecond
	})

	got, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
	assert.True(t, speaker.Said("No speech detected"))
}

type blockingListener struct{}

func (blockingListener) Listen(ctx context.Context, _ time.Duration) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
