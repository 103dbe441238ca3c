package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxlab/alpha/core"
)

func wikiServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestWikiHandler_Summary(t *testing.T) {
	srv := wikiServer(t, http.StatusOK, `{"type":"standard","extract":"Alan Turing was an English mathematician. He is widely considered to be the father of computer science. He worked at Bletchley Park."}`)
	h := NewWikiHandler(func(o *WikiOptions) {
		o.BaseURL = srv.URL
		o.Client = srv.Client()
	})

	out := h.Handle(newTurnContext("wikipedia alan turing"), core.SlotSet{core.SlotTerm: "alan turing"})
	assert.True(t, out.OK)
	// Capped at two sentences.
	assert.Equal(t, "Alan Turing was an English mathematician. He is widely considered to be the father of computer science.", out.Message)
}

func TestWikiHandler_Disambiguation(t *testing.T) {
	srv := wikiServer(t, http.StatusOK, `{"type":"disambiguation","extract":"Mercury may refer to:"}`)
	h := NewWikiHandler(func(o *WikiOptions) {
		o.BaseURL = srv.URL
		o.Client = srv.Client()
	})

	out := h.Handle(newTurnContext("wikipedia mercury"), core.SlotSet{core.SlotTerm: "mercury"})
	assert.True(t, out.OK)
	assert.Contains(t, out.Message, "ambiguous")
}

func TestWikiHandler_NotFound(t *testing.T) {
	srv := wikiServer(t, http.StatusNotFound, `{"title":"Not found."}`)
	h := NewWikiHandler(func(o *WikiOptions) {
		o.BaseURL = srv.URL
		o.Client = srv.Client()
	})

	out := h.Handle(newTurnContext("wikipedia zzzz"), core.SlotSet{core.SlotTerm: "zzzz"})
	assert.True(t, out.OK)
	assert.Contains(t, out.Message, "No Wikipedia page found")
}

func TestWikiHandler_ServerError(t *testing.T) {
	srv := wikiServer(t, http.StatusInternalServerError, ``)
	h := NewWikiHandler(func(o *WikiOptions) {
		o.BaseURL = srv.URL
		o.Client = srv.Client()
	})

	out := h.Handle(newTurnContext("wikipedia x"), core.SlotSet{core.SlotTerm: "x"})
	assert.False(t, out.OK)
	assert.Contains(t, out.Message, "error occurred")
}

func TestWikiHandler_NetworkFault(t *testing.T) {
	srv := wikiServer(t, http.StatusOK, `{}`)
	srv.Close()
	h := NewWikiHandler(func(o *WikiOptions) { o.BaseURL = srv.URL })

	out := h.Handle(newTurnContext("wikipedia x"), core.SlotSet{core.SlotTerm: "x"})
	assert.False(t, out.OK)
}

func TestFirstSentences(t *testing.T) {
	text := "One. Two! Three? Four."
	assert.Equal(t, "One.", firstSentences(text, 1))
	assert.Equal(t, "One. Two!", firstSentences(text, 2))
	assert.Equal(t, text, firstSentences(text, 10))
	// Dots inside abbreviations followed by non-space are not boundaries.
	assert.Equal(t, "Version 1.5 shipped.", firstSentences("Version 1.5 shipped. Then more.", 1))
}
