// Package core defines the shared vocabulary of the assistant: intents and
// their required slots, slot sets, handler outcomes, the per-turn context
// handed to capability handlers, and the service interfaces (Speaker,
// Listener, Transcriber, NoteStore) the dialogue engine is wired with.
//
// All other packages depend on core; core depends only on logging.
package core
