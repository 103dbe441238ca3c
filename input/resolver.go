// Package input implements the input resolution layer: one normalized
// utterance per call, acquired from the primary voice channel when one is
// configured and falling back to the secondary typed channel whenever the
// primary fails. The typed channel has no failure mode of its own short of
// EOF, so forward progress is guaranteed every turn.
package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/logging"
)

// Fallback prompts, one per primary-channel failure mode.
const (
	promptTimeout       = "No speech detected within the timeout. Please type your command."
	promptNotUnderstood = "Sorry, I did not understand. Please type your command."
	promptService       = "Speech recognition service failed. Please type your command."
)

// Options holds dependency and configuration overrides passed to New.
type Options struct {
	// Listener captures audio on the primary channel. Nil disables the
	// primary channel entirely (text-only mode).
	Listener core.Listener
	// Transcriber converts captured audio to text. Required when Listener
	// is set.
	Transcriber core.Transcriber
	// Reader supplies the secondary typed channel. Defaults to os.Stdin.
	Reader io.Reader
	// Speaker emits the fallback prompts. Nil silences them.
	Speaker core.Speaker
	// ListenTimeout bounds how long the primary channel waits for speech to
	// begin.
	ListenTimeout time.Duration
	// MaxPhrase bounds the duration of a single captured phrase.
	MaxPhrase time.Duration
	// Logger records channel failures. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Resolver acquires one utterance per Resolve call. It is not safe for
// concurrent use; turns are strictly sequential by design.
type Resolver struct {
	listener      core.Listener
	transcriber   core.Transcriber
	speaker       core.Speaker
	listenTimeout time.Duration
	maxPhrase     time.Duration
	logger        logging.Logger

	scanner *bufio.Scanner
}

// New constructs a Resolver with optional overrides.
func New(optFns ...func(o *Options)) *Resolver {
	opts := Options{
		Reader:        os.Stdin,
		ListenTimeout: 5 * time.Second,
		MaxPhrase:     8 * time.Second,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Resolver{
		listener:      opts.Listener,
		transcriber:   opts.Transcriber,
		speaker:       opts.Speaker,
		listenTimeout: opts.ListenTimeout,
		maxPhrase:     opts.MaxPhrase,
		logger:        opts.Logger,
		scanner:       bufio.NewScanner(opts.Reader),
	}
}

// Resolve returns the next normalized utterance. It only fails on context
// cancellation or when the typed channel is exhausted (core.ErrInputClosed);
// every primary-channel failure is recovered locally by prompting and
// blocking on typed input.
func (r *Resolver) Resolve(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if r.listener == nil || r.transcriber == nil {
		return r.typed(ctx)
	}

	text, err := r.listen(ctx)
	if err == nil {
		return Normalize(text), nil
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	switch {
	case errors.Is(err, core.ErrNoSpeech):
		r.logger.Debug("input.primary.timeout")
		r.say(promptTimeout)
	case errors.Is(err, core.ErrNotUnderstood):
		r.logger.Debug("input.primary.not_understood")
		r.say(promptNotUnderstood)
	default:
		r.logger.Warn("input.primary.service_error", "error", err.Error())
		r.say(promptService)
	}

	return r.typed(ctx)
}

// listen runs the primary channel once: capture a phrase, then transcribe it.
func (r *Resolver) listen(ctx context.Context) (string, error) {
	listenCtx, cancel := context.WithTimeout(ctx, r.listenTimeout)
	defer cancel()

	audio, err := r.listener.Listen(listenCtx, r.maxPhrase)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", core.ErrNoSpeech
		}
		return "", err
	}

	return r.transcriber.Transcribe(ctx, audio)
}

// typed blocks on the secondary channel until the user supplies a line. There
// is deliberately no timeout on this path.
func (r *Resolver) typed(ctx context.Context) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", core.ErrInputClosed
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return Normalize(r.scanner.Text()), nil
}

func (r *Resolver) say(text string) {
	if r.speaker != nil {
		r.speaker.Say(text)
	}
}

// Normalize lower-cases and trims an utterance. Applied exactly once per
// resolution; utterances are immutable afterwards.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
