package handler

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/voxlab/alpha/core"
)

const defaultWikiBaseURL = "https://en.wikipedia.org"

// WikiOptions configures the WikiHandler.
type WikiOptions struct {
	// BaseURL of the Wikipedia instance (no trailing slash).
	BaseURL string
	// Client used for the summary request. Defaults to a 10s-timeout client.
	Client *http.Client
	// Sentences caps the reported summary length. Defaults to 2.
	Sentences int
}

// WikiHandler fetches a short encyclopedia summary for the "term" slot via
// the Wikipedia REST summary endpoint. Ambiguous terms and missing pages are
// reported as results, not failures; only transport faults fail the turn.
type WikiHandler struct {
	baseURL   string
	client    *http.Client
	sentences int
}

// NewWikiHandler constructs a WikiHandler with optional overrides.
func NewWikiHandler(optFns ...func(o *WikiOptions)) *WikiHandler {
	opts := WikiOptions{
		BaseURL:   defaultWikiBaseURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
		Sentences: 2,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &WikiHandler{baseURL: opts.BaseURL, client: opts.Client, sentences: opts.Sentences}
}

// Name returns the handler identifier.
func (h *WikiHandler) Name() string { return "wiki_lookup" }

// Handle queries the summary endpoint for the resolved term.
func (h *WikiHandler) Handle(tc *core.TurnContext, slots core.SlotSet) core.Outcome {
	term := slots.Get(core.SlotTerm)

	endpoint := fmt.Sprintf("%s/api/rest_v1/page/summary/%s", h.baseURL, url.PathEscape(term))

	req, err := http.NewRequestWithContext(tc.Context(), http.MethodGet, endpoint, nil)
	if err != nil {
		tc.Logger().Error("wiki.request_build_failed", "error", err.Error())
		return core.Failf("An error occurred while searching Wikipedia.")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		tc.Logger().Error("wiki.request_failed", "error", NewHandlerError(h.Name(), err.Error(), CodeNetwork).Error())
		return core.Failf("An error occurred while searching Wikipedia.")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return core.Okf("No Wikipedia page found for %s.", term)
	}
	if resp.StatusCode != http.StatusOK {
		tc.Logger().Error("wiki.unexpected_status", "status", resp.StatusCode)
		return core.Failf("An error occurred while searching Wikipedia.")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		tc.Logger().Error("wiki.read_failed", "error", err.Error())
		return core.Failf("An error occurred while searching Wikipedia.")
	}

	doc := gjson.ParseBytes(body)
	if doc.Get("type").String() == "disambiguation" {
		return core.Okf("The term %s is ambiguous. Please be more specific.", term)
	}

	extract := doc.Get("extract").String()
	if extract == "" {
		return core.Okf("No Wikipedia page found for %s.", term)
	}

	return core.Okf("%s", firstSentences(extract, h.sentences))
}

// firstSentences truncates text to at most n sentences.
func firstSentences(text string, n int) string {
	if n <= 0 {
		return text
	}

	count := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '.' && text[i] != '!' && text[i] != '?' {
			continue
		}
		// Sentence ends at a terminator followed by a space or end of text.
		if i+1 == len(text) || text[i+1] == ' ' {
			count++
			if count == n {
				return strings.TrimSpace(text[:i+1])
			}
		}
	}

	return text
}
