// Package speech provides Speaker implementations for delivering assistant
// output. Audio synthesis lives behind the Synthesizer interface; the console
// speaker always prints and additionally voices the text when a synthesizer
// is attached, dropping synthesis faults so output never fails a turn.
package speech

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/voxlab/alpha/logging"
)

// Synthesizer turns text into audible speech. Implementations wrap a TTS
// engine or service; errors are logged and swallowed by the speaker.
type Synthesizer interface {
	Speak(text string) error
}

// ConsoleOptions configures a ConsoleSpeaker.
type ConsoleOptions struct {
	// Output receives the printed lines. Defaults to os.Stdout.
	Output io.Writer
	// Name is the printed prefix. Defaults to "Alpha".
	Name string
	// Synthesizer optionally voices every line.
	Synthesizer Synthesizer
	// Logger records synthesis failures. Defaults to NoOpLogger.
	Logger logging.Logger
}

// ConsoleSpeaker prints every line as "Name: text" and optionally voices it.
type ConsoleSpeaker struct {
	out    io.Writer
	prefix string
	synth  Synthesizer
	logger logging.Logger
	paint  *color.Color
}

// NewConsoleSpeaker constructs a console speaker with optional overrides.
func NewConsoleSpeaker(optFns ...func(o *ConsoleOptions)) *ConsoleSpeaker {
	opts := ConsoleOptions{
		Output: os.Stdout,
		Name:   "Alpha",
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &ConsoleSpeaker{
		out:    opts.Output,
		prefix: opts.Name,
		synth:  opts.Synthesizer,
		logger: opts.Logger,
		paint:  color.New(color.FgCyan, color.Bold),
	}
}

// Say prints the text and, when a synthesizer is attached, voices it. Empty
// text is a no-op. Synthesis failure degrades to print-only.
func (s *ConsoleSpeaker) Say(text string) {
	if text == "" {
		return
	}

	s.paint.Fprintf(s.out, "%s:", s.prefix)
	fmt.Fprintf(s.out, " %s\n", text)

	if s.synth != nil {
		if err := s.synth.Speak(text); err != nil {
			s.logger.Warn("speech.synthesis_failed", "error", err.Error())
		}
	}
}

// NullSpeaker discards all output. Useful for tests.
type NullSpeaker struct{}

// Say drops the text.
func (NullSpeaker) Say(string) {}
