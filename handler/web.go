package handler

import (
	"fmt"
	"net/url"

	"github.com/pkg/browser"
	"github.com/voxlab/alpha/core"
)

const (
	defaultSearchTemplate = "https://www.google.com/search?q=%s"
	playbackTemplate      = "https://www.youtube.com/results?search_query=%s"
)

// SearchOptions configures the SearchHandler.
type SearchOptions struct {
	// Template is the search URL template with one %s verb for the escaped
	// query.
	Template string
	// Preface is spoken before the search message. The fallback-search
	// binding uses it to admit the utterance was not understood.
	Preface string
	// Open launches the URL in the user's default browser. Defaults to
	// browser.OpenURL.
	Open func(rawURL string) error
}

// SearchHandler opens a browser tab on the search results page for the
// "query" slot.
type SearchHandler struct {
	template string
	preface  string
	open     func(string) error
}

// NewSearchHandler constructs a SearchHandler with optional overrides.
func NewSearchHandler(optFns ...func(o *SearchOptions)) *SearchHandler {
	opts := SearchOptions{
		Template: defaultSearchTemplate,
		Open:     browser.OpenURL,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &SearchHandler{template: opts.Template, preface: opts.Preface, open: opts.Open}
}

// Name returns the handler identifier.
func (h *SearchHandler) Name() string { return "web_search" }

// Handle opens the browser on the search URL for the query.
func (h *SearchHandler) Handle(tc *core.TurnContext, slots core.SlotSet) core.Outcome {
	query := slots.Get(core.SlotQuery)

	if h.preface != "" {
		tc.Say(h.preface)
	}

	target := fmt.Sprintf(h.template, url.QueryEscape(query))
	if err := h.open(target); err != nil {
		tc.Logger().Error("web_search.open_failed", "error", NewHandlerError(h.Name(), err.Error(), CodeExecution).Error())
		return core.Failf("Unable to open the web browser.")
	}

	return core.Okf("Searching for %s", query)
}

// PlayOptions configures the PlayHandler.
type PlayOptions struct {
	// Open launches the URL in the user's default browser. Defaults to
	// browser.OpenURL.
	Open func(rawURL string) error
}

// PlayHandler opens media playback for the "song" slot on YouTube.
type PlayHandler struct {
	open func(string) error
}

// NewPlayHandler constructs a PlayHandler with optional overrides.
func NewPlayHandler(optFns ...func(o *PlayOptions)) *PlayHandler {
	opts := PlayOptions{Open: browser.OpenURL}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &PlayHandler{open: opts.Open}
}

// Name returns the handler identifier.
func (h *PlayHandler) Name() string { return "play_song" }

// Handle opens the browser on the playback page for the song.
func (h *PlayHandler) Handle(tc *core.TurnContext, slots core.SlotSet) core.Outcome {
	song := slots.Get(core.SlotSong)

	target := fmt.Sprintf(playbackTemplate, url.QueryEscape(song))
	if err := h.open(target); err != nil {
		tc.Logger().Error("play_song.open_failed", "error", NewHandlerError(h.Name(), err.Error(), CodeExecution).Error())
		return core.Failf("Unable to play the song.")
	}

	return core.Okf("Playing %s on YouTube.", song)
}
