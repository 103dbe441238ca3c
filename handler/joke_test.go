package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJokeHandler_Deterministic(t *testing.T) {
	h := NewJokeHandler(func(o *JokeOptions) { o.Pick = func(int) int { return 0 } })

	out := h.Handle(newTurnContext("joke"), nil)
	assert.True(t, out.OK)
	assert.Equal(t, jokes[0], out.Message)
}

func TestJokeHandler_AlwaysSucceeds(t *testing.T) {
	h := NewJokeHandler()

	for i := 0; i < 20; i++ {
		out := h.Handle(newTurnContext("joke"), nil)
		assert.True(t, out.OK)
		assert.NotEmpty(t, out.Message)
	}
}
