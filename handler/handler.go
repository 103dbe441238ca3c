// Package handler implements the capability handlers the dialogue engine
// dispatches to, plus the Registry binding intents to handlers. Handlers obey
// one contract: they receive a fully resolved SlotSet, perform exactly one
// attempt of their side effect, and report an Outcome. No fault escapes a
// handler boundary — the dispatch wrapper converts panics and internal errors
// to failure Outcomes and the session loop continues either way.
package handler

import (
	"fmt"
	"time"

	"github.com/voxlab/alpha/core"
	"github.com/voxlab/alpha/logging"
)

// Error codes used by HandlerError.
const (
	CodeConfig    = "CONFIG_ERROR"
	CodeNetwork   = "NETWORK_ERROR"
	CodeIO        = "IO_ERROR"
	CodeExecution = "EXECUTION_ERROR"
)

// HandlerError categorizes a handler-internal fault for logging. It never
// reaches the user; the user hears the handler's failure Outcome message.
type HandlerError struct {
	Handler string `json:"handler"` // Name of the handler that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
}

func (e *HandlerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("handler error [%s] in %s: %s", e.Code, e.Handler, e.Message)
	}
	return fmt.Sprintf("handler error in %s: %s", e.Handler, e.Message)
}

// NewHandlerError creates a HandlerError with the specified details.
func NewHandlerError(handler, message, code string) *HandlerError {
	return &HandlerError{Handler: handler, Message: message, Code: code}
}

// Registry maps intents to their handlers. The mapping is fixed after
// construction; turns are sequential so no locking is needed.
type Registry struct {
	handlers map[core.Intent]core.Handler
	logger   logging.Logger
}

// NewRegistry constructs an empty registry.
func NewRegistry(logger logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Registry{handlers: make(map[core.Intent]core.Handler), logger: logger}
}

// Register binds a handler to an intent, replacing any previous binding.
func (r *Registry) Register(intent core.Intent, h core.Handler) {
	r.handlers[intent] = h
}

// Lookup returns the handler bound to the intent.
func (r *Registry) Lookup(intent core.Intent) (core.Handler, bool) {
	h, ok := r.handlers[intent]
	return h, ok
}

// Dispatch invokes the handler bound to the intent with panic recovery and
// duration logging. An unbound intent and a panicking handler both yield a
// failure Outcome; neither terminates the session.
func (r *Registry) Dispatch(tc *core.TurnContext, intent core.Intent, slots core.SlotSet) (outcome core.Outcome) {
	h, ok := r.handlers[intent]
	if !ok {
		r.logger.Warn("handler.dispatch.unbound", "intent", intent.String())
		return core.Failf("I don't know how to do that yet.")
	}

	start := time.Now()
	r.logger.Debug("handler.dispatch.start", "handler", h.Name(), "turn_id", tc.TurnID())

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("handler.dispatch.panic", "handler", h.Name(), "panic", fmt.Sprint(rec))
			outcome = core.Failf("Something went wrong while handling that.")
		}

		r.logger.Info("handler.dispatch.done",
			"handler", h.Name(),
			"success", outcome.OK,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}()

	outcome = h.Handle(tc, slots)

	return outcome
}
