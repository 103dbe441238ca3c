// Package runner drives the session loop: resolve input, match the intent,
// resolve slots, dispatch the handler, report the outcome, repeat. The loop
// is a two-state machine (running, terminated) that terminates only on the
// exit intent, on cancellation, or when a fault escapes a turn to the loop's
// outermost boundary.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/handler"
	"github.com/voxlab/alpha/input"
	"github.com/voxlab/alpha/logging"
	"github.com/voxlab/alpha/match"
	"github.com/voxlab/alpha/slot"
)

// Spoken lifecycle messages.
const (
	msgFarewell  = "Goodbye. Have a nice day."
	msgShutdown  = "Shutting down. Goodbye."
	msgNeverMind = "I did not catch an answer. Never mind."
	msgFatal     = "An error occurred. Exiting."
)

// Options holds dependency and configuration overrides passed to New.
type Options struct {
	// Notes is the persistence collaborator for the single remembered note.
	Notes core.NoteStore
	// Logger records turn progress. Defaults to NoOpLogger.
	Logger logging.Logger
	// Greeting enables the hour-of-day greeting on startup.
	Greeting bool
	// Name is the assistant name used in the greeting.
	Name string
	// Now supplies the current time for the greeting. Defaults to time.Now.
	Now func() time.Time
}

// Runner owns one session: the loop state plus the engine components it
// orchestrates. It is single-threaded by design — turns are strictly
// sequential and Run must not be called concurrently.
type Runner struct {
	input    *input.Resolver
	matcher  *match.Matcher
	slots    *slot.Resolver
	registry *handler.Registry
	speaker  core.Speaker

	notes    core.NoteStore
	logger   logging.Logger
	greeting bool
	name     string
	now      func() time.Time

	state core.State
}

// New constructs a Runner over the assembled engine components.
func New(in *input.Resolver, m *match.Matcher, slots *slot.Resolver, registry *handler.Registry, speaker core.Speaker, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Name:   "Alpha",
		Now:    time.Now,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		input:    in,
		matcher:  m,
		slots:    slots,
		registry: registry,
		speaker:  speaker,
		notes:    opts.Notes,
		logger:   opts.Logger,
		greeting: opts.Greeting,
		name:     opts.Name,
		now:      opts.Now,
		state:    core.StateRunning,
	}
}

// State returns the session's lifecycle state.
func (r *Runner) State() core.State { return r.state }

// Run executes the session loop until termination. A context cancellation
// (e.g. an interrupt signal) terminates the session at the loop boundary,
// bypassing the rest of the current turn. Any fault escaping a turn is
// recovered here, spoken as a final message, and returned.
func (r *Runner) Run(ctx context.Context) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("session.fatal", "panic", fmt.Sprint(rec))
			r.say(msgFatal)
			err = fmt.Errorf("unrecoverable session failure: %v", rec)
		}
		r.state = core.StateTerminated
	}()

	if r.greeting {
		r.greet()
	}

	for r.state == core.StateRunning {
		if ctx.Err() != nil {
			r.say(msgShutdown)
			return nil
		}

		done, err := r.turn(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				r.say(msgShutdown)
				return nil
			}
			if errors.Is(err, core.ErrInputClosed) {
				r.logger.Info("session.input_closed")
				return nil
			}
			return err
		}
		if done {
			return nil
		}
	}

	return nil
}

// turn executes one full cycle. done=true means the exit intent terminated
// the session.
func (r *Runner) turn(ctx context.Context) (done bool, err error) {
	utterance, err := r.input.Resolve(ctx)
	if err != nil {
		return false, err
	}

	// Empty utterance: no-op turn, no handler, no report.
	if utterance == "" {
		r.logger.Debug("session.turn.idle")
		return false, nil
	}

	res := r.matcher.Match(utterance)
	r.logger.Info("session.turn.matched", "intent", res.Intent.String(), "utterance", utterance)

	if res.Intent == core.IntentExit {
		r.say(msgFarewell)
		r.state = core.StateTerminated
		return true, nil
	}

	slots, err := r.slots.Resolve(ctx, res, utterance)
	if err != nil {
		if errors.Is(err, slot.ErrNoAnswer) {
			// Clarification budget exhausted: abandon the intent, back to idle.
			r.say(msgNeverMind)
			return false, nil
		}
		return false, err
	}

	tc := core.NewTurnContext(ctx, utterance, r.speaker, r.notes, r.logger)
	outcome := r.registry.Dispatch(tc, res.Intent, slots)

	if outcome.Message != "" {
		r.say(outcome.Message)
	}

	return false, nil
}

// greet speaks the hour-of-day greeting followed by the current time and date.
func (r *Runner) greet() {
	now := r.now()

	switch hour := now.Hour(); {
	case hour >= 6 && hour < 12:
		r.say("Good morning.")
	case hour >= 12 && hour < 18:
		r.say("Good afternoon.")
	case hour >= 18:
		r.say("Good evening.")
	default:
		r.say("Good night.")
	}

	r.say(fmt.Sprintf("Welcome back. %s is at your service.", r.name))
	r.say(fmt.Sprintf("The current time is %s", handler.FormatClock(now)))
	r.say(fmt.Sprintf("Today is %s", handler.FormatDate(now)))
}

func (r *Runner) say(text string) {
	if r.speaker != nil && text != "" {
		r.speaker.Say(text)
	}
}
