package core

import (
	"context"

	"github.com/voxlab/alpha/logging"
)

// TurnContext provides a constrained surface for capability handlers invoked
// during one turn: the turn's identity and utterance, the output channel, the
// note store and a logger. Handlers receive everything through it; they hold
// no ambient state of their own between turns.
type TurnContext struct {
	ctx       context.Context
	turnID    string
	utterance string
	speaker   Speaker
	notes     NoteStore
	logger    logging.Logger
}

// NewTurnContext constructs a turn context for one dispatch cycle.
func NewTurnContext(ctx context.Context, utterance string, speaker Speaker, notes NoteStore, logger logging.Logger) *TurnContext {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &TurnContext{
		ctx:       ctx,
		turnID:    NewID(),
		utterance: utterance,
		speaker:   speaker,
		notes:     notes,
		logger:    logger,
	}
}

// Context returns the context governing the turn.
func (tc *TurnContext) Context() context.Context { return tc.ctx }

// TurnID returns the unique identifier of this turn.
func (tc *TurnContext) TurnID() string { return tc.turnID }

// Utterance returns the normalized utterance that started the turn.
func (tc *TurnContext) Utterance() string { return tc.utterance }

// Say emits intermediate output through the turn's speaker. Safe to call with
// an unset speaker (output is dropped).
func (tc *TurnContext) Say(text string) {
	if tc.speaker != nil && text != "" {
		tc.speaker.Say(text)
	}
}

// Notes returns the note store, or nil when persistence is not configured.
func (tc *TurnContext) Notes() NoteStore { return tc.notes }

// Logger returns the logger associated with the turn.
func (tc *TurnContext) Logger() logging.Logger { return tc.logger }
