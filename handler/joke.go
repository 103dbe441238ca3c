package handler

import (
	"math/rand"

	"github.com/voxlab/alpha/core"
)

// jokes is the built-in rotation. No network dependency; a joke must never
// fail.
var jokes = []string{
	"Why do programmers prefer dark mode? Because light attracts bugs.",
	"There are only 10 kinds of people in this world: those who know binary and those who don't.",
	"A SQL query walks into a bar, goes up to two tables and asks, can I join you?",
	"Why did the developer go broke? Because they used up all their cache.",
	"I would tell you a UDP joke, but you might not get it.",
	"A programmer's partner says: go to the store and get a litre of milk, and if they have eggs, get a dozen. The programmer returns with twelve litres of milk.",
	"Why do Java developers wear glasses? Because they cannot C sharp.",
	"How many programmers does it take to change a light bulb? None, that is a hardware problem.",
	"Debugging: being the detective in a crime movie where you are also the murderer.",
	"It works on my machine.",
}

// JokeOptions configures the JokeHandler.
type JokeOptions struct {
	// Pick selects an index in [0, n). Defaults to rand.Intn.
	Pick func(n int) int
}

// JokeHandler tells a random joke from the built-in list. Always succeeds.
type JokeHandler struct {
	pick func(int) int
}

// NewJokeHandler constructs a JokeHandler with optional overrides.
func NewJokeHandler(optFns ...func(o *JokeOptions)) *JokeHandler {
	opts := JokeOptions{Pick: rand.Intn}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &JokeHandler{pick: opts.Pick}
}

// Name returns the handler identifier.
func (h *JokeHandler) Name() string { return "joke" }

// Handle reports a joke.
func (h *JokeHandler) Handle(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
	return core.Okf("%s", jokes[h.pick(len(jokes))])
}
