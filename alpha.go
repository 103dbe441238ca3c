// Package alpha provides a high-level façade over the dialogue engine
// (input resolution, intent matching, slot resolution, session loop) and the
// built-in capability handlers. Most applications interact with this package
// by:
//  1. Creating an Assistant via New() (optionally overriding channels,
//     stores and handlers)
//  2. Calling Run(ctx), which drives the session loop until the user exits
//     or the context is cancelled
//
// All defaults are safe for local use: console output, typed input from
// stdin, a file-backed note store under the user's home directory. Voice
// input is enabled by supplying a Listener and Transcriber.
package alpha

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/handler"
	"github.com/voxlab/alpha/input"
	"github.com/voxlab/alpha/logging"
	"github.com/voxlab/alpha/match"
	"github.com/voxlab/alpha/memory"
	"github.com/voxlab/alpha/runner"
	"github.com/voxlab/alpha/slot"
	"github.com/voxlab/alpha/speech"
)

// fallbackPreface is spoken before a fallback web search, admitting the
// utterance matched no intent.
const fallbackPreface = "I did not understand exactly. I will search the web for you."

// Options configures the Assistant.
type Options struct {
	// Name is the assistant's spoken name.
	Name string

	// Speaker delivers output. Defaults to a console speaker on stdout.
	Speaker core.Speaker
	// Reader supplies the secondary typed channel. Defaults to os.Stdin.
	Reader io.Reader
	// Listener and Transcriber enable the primary voice channel. Leaving
	// either nil runs the assistant in text-only mode.
	Listener    core.Listener
	Transcriber core.Transcriber

	// Notes persists the single remembered note. Defaults to a file store
	// under the user's home directory.
	Notes core.NoteStore

	// ScreenshotDir receives captured screenshots. Empty selects the
	// handler's default.
	ScreenshotDir string

	// ListenTimeout bounds how long the voice channel waits for speech.
	ListenTimeout time.Duration
	// MaxPhrase bounds the duration of one captured phrase.
	MaxPhrase time.Duration
	// MaxClarifications bounds re-prompt rounds per slot.
	MaxClarifications int

	// Greeting enables the hour-of-day greeting on startup.
	Greeting bool

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Assistant is the assembled dialogue engine plus its handlers.
type Assistant struct {
	runner *runner.Runner
}

// New creates an Assistant with optional overrides. Any unset service is
// initialized with its default implementation.
func New(optFns ...func(o *Options)) *Assistant {
	opts := Options{
		Name:              "Alpha",
		Reader:            os.Stdin,
		ListenTimeout:     5 * time.Second,
		MaxPhrase:         8 * time.Second,
		MaxClarifications: slot.DefaultMaxAttempts,
		Greeting:          true,
		Logger:            logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Speaker == nil {
		opts.Speaker = speech.NewConsoleSpeaker(func(o *speech.ConsoleOptions) {
			o.Name = opts.Name
			o.Logger = opts.Logger
		})
	}

	if opts.Notes == nil {
		opts.Notes = memory.NewFileStore(defaultNotePath())
	}

	in := input.New(func(o *input.Options) {
		o.Listener = opts.Listener
		o.Transcriber = opts.Transcriber
		o.Reader = opts.Reader
		o.Speaker = opts.Speaker
		o.ListenTimeout = opts.ListenTimeout
		o.MaxPhrase = opts.MaxPhrase
		o.Logger = opts.Logger
	})

	slots := slot.New(in, opts.Speaker, func(o *slot.Options) {
		o.MaxAttempts = opts.MaxClarifications
		o.Logger = opts.Logger
	})

	registry := defaultRegistry(&opts)

	r := runner.New(in, match.New(), slots, registry, opts.Speaker, func(o *runner.Options) {
		o.Notes = opts.Notes
		o.Logger = opts.Logger
		o.Greeting = opts.Greeting
		o.Name = opts.Name
	})

	return &Assistant{runner: r}
}

// Run drives the session loop until the user exits, input is exhausted, or
// the context is cancelled.
func (a *Assistant) Run(ctx context.Context) error { return a.runner.Run(ctx) }

// State returns the session's lifecycle state.
func (a *Assistant) State() core.State { return a.runner.State() }

// defaultRegistry binds every built-in handler to its intent.
func defaultRegistry(opts *Options) *handler.Registry {
	registry := handler.NewRegistry(opts.Logger)

	registry.Register(core.IntentTellTime, handler.NewTimeHandler())
	registry.Register(core.IntentTellDate, handler.NewDateHandler())
	registry.Register(core.IntentIdentify, handler.NewIdentifyHandler(opts.Name))
	registry.Register(core.IntentHelp, handler.NewHelpHandler())
	registry.Register(core.IntentWikiLookup, handler.NewWikiHandler())
	registry.Register(core.IntentWebSearch, handler.NewSearchHandler())
	registry.Register(core.IntentSendEmail, handler.NewEmailHandler())
	registry.Register(core.IntentScreenshot, handler.NewScreenshotHandler(func(o *handler.ScreenshotOptions) {
		o.Dir = opts.ScreenshotDir
	}))
	registry.Register(core.IntentSystemStatus, handler.NewStatusHandler())
	registry.Register(core.IntentRemember, handler.NewRememberHandler())
	registry.Register(core.IntentRecallMemory, handler.NewRecallHandler())
	registry.Register(core.IntentPlaySong, handler.NewPlayHandler())
	registry.Register(core.IntentJoke, handler.NewJokeHandler())
	registry.Register(core.IntentFallbackSearch, handler.NewSearchHandler(func(o *handler.SearchOptions) {
		o.Preface = fallbackPreface
	}))

	return registry
}

func defaultNotePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data.txt"
	}
	return filepath.Join(home, ".alpha", "data.txt")
}
