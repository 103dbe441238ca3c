// Package slot implements slot resolution: given a matched intent, fill every
// required slot either by extraction from the utterance or through bounded
// clarification rounds on the input layer. A handler is never invoked with an
// unresolved required slot.
package slot

import (
	"context"
	"errors"
	"strings"

	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/input"
	"github.com/voxlab/alpha/logging"
	"github.com/voxlab/alpha/match"
)

// ErrNoAnswer is returned when the clarification budget for a slot is
// exhausted without a non-empty answer. The current intent is abandoned and
// the session returns to idle; no handler runs.
var ErrNoAnswer = errors.New("no answer for required slot")

// DefaultMaxAttempts bounds clarification rounds per slot. The re-prompt loop
// is deliberately bounded rather than open-ended so an unresponsive user
// cannot pin a turn forever.
const DefaultMaxAttempts = 3

// Clarification prompts per slot name.
var prompts = map[string]string{
	core.SlotTerm:      "What would you like me to search on Wikipedia?",
	core.SlotQuery:     "What should I search for?",
	core.SlotSubject:   "What should be the subject?",
	core.SlotBody:      "What should I say in the email?",
	core.SlotRecipient: "Who should I send it to? Please give the email address.",
	core.SlotSong:      "Which song should I play?",
	core.SlotNote:      "What should I remember?",
}

// Options holds dependency and configuration overrides passed to New.
type Options struct {
	// MaxAttempts bounds clarification rounds per slot.
	MaxAttempts int
	// Logger records resolution progress. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Resolver fills the required slots of a matched intent.
type Resolver struct {
	input       *input.Resolver
	speaker     core.Speaker
	maxAttempts int
	logger      logging.Logger
}

// New constructs a Resolver bound to the input layer and output speaker.
func New(in *input.Resolver, speaker core.Speaker, optFns ...func(o *Options)) *Resolver {
	opts := Options{
		MaxAttempts: DefaultMaxAttempts,
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Resolver{
		input:       in,
		speaker:     speaker,
		maxAttempts: opts.MaxAttempts,
		logger:      opts.Logger,
	}
}

// Resolve fills every required slot of the matched intent, in declared order.
// The first slot may be satisfied by extraction (utterance minus trigger
// phrases); every later slot, and any slot whose extraction is empty, is
// acquired through clarification prompts. Returns ErrNoAnswer when a slot
// stays empty after the attempt budget, or the context error on cancellation.
func (r *Resolver) Resolve(ctx context.Context, res match.Result, utterance string) (core.SlotSet, error) {
	slots := core.SlotSet{}

	if res.Intent == core.IntentFallbackSearch {
		// The fallback carries the raw utterance as its query.
		slots[core.SlotQuery] = utterance
		return slots, nil
	}

	for i, name := range res.Intent.RequiredSlots() {
		if slots.Resolved(name) {
			// Filled by a cross-slot override on an earlier slot.
			continue
		}

		value := ""
		if i == 0 {
			value = res.Strip(utterance)
		}

		for attempt := 0; value == "" && attempt < r.maxAttempts; attempt++ {
			r.say(prompts[name])

			answer, err := r.input.Resolve(ctx)
			if err != nil {
				return nil, err
			}

			value = strings.TrimSpace(answer)
		}

		if value == "" {
			r.logger.Info("slot.resolve.no_answer", "intent", res.Intent.String(), "slot", name)
			return nil, ErrNoAnswer
		}

		slots[name] = value
		r.logger.Debug("slot.resolve.filled", "intent", res.Intent.String(), "slot", name)

		if res.Intent == core.IntentSendEmail && name == core.SlotSubject {
			applyRecipientOverride(slots)
		}
	}

	return slots, nil
}

// applyRecipientOverride reinterprets a subject that looks like an email
// address as the recipient, defaulting the subject to a placeholder. A
// one-off heuristic for a common user error, not address validation.
func applyRecipientOverride(slots core.SlotSet) {
	subject := slots.Get(core.SlotSubject)
	if strings.Contains(subject, "@") && strings.Contains(subject, ".") && !strings.ContainsAny(subject, " \t") {
		slots[core.SlotRecipient] = subject
		slots[core.SlotSubject] = "No subject"
	}
}

func (r *Resolver) say(text string) {
	if r.speaker != nil && text != "" {
		r.speaker.Say(text)
	}
}
