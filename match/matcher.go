// Package match implements the intent matcher: a fixed, priority-ordered list
// of keyword rules evaluated in sequence against a normalized utterance. The
// matcher is pure, deterministic and total — when no rule applies the
// utterance resolves to a web search fallback.
//
// Matching is substring containment, not whole-word matching. Rules overlap
// deliberately (an utterance can contain several triggers), so evaluation
// order is behavior, not an implementation detail: the exit rule always runs
// first so no other intent can block termination.
package match

import (
	"strings"

	"github.com/voxlab/alpha/core"
)

// Result is the outcome of matching one utterance: the selected intent plus
// the rule's strip phrases, which the slot resolver uses to extract a slot
// value from the remainder of the utterance.
type Result struct {
	Intent core.Intent

	strip []string
}

// Strip removes the matched rule's trigger phrases from the utterance and
// trims the remainder. Stripping is idempotent: applying it to an already
// stripped utterance yields the same value.
func (r Result) Strip(utterance string) string {
	for _, phrase := range r.strip {
		utterance = strings.ReplaceAll(utterance, phrase, " ")
	}
	return strings.Join(strings.Fields(utterance), " ")
}

// rule pairs a set of trigger substrings with the intent they select. Strip
// phrases default to the triggers; rules with multi-word variants list the
// longer phrase first so it is removed before its substring.
type rule struct {
	intent   core.Intent
	triggers []string
	strip    []string
}

func (r rule) matches(utterance string) bool {
	for _, t := range r.triggers {
		if strings.Contains(utterance, t) {
			return true
		}
	}
	return false
}

// rules is the fixed priority order. First match wins.
var rules = []rule{
	{intent: core.IntentExit, triggers: []string{"exit", "quit", "bye", "goodbye"}},
	{intent: core.IntentTellTime, triggers: []string{"time"}},
	{intent: core.IntentTellDate, triggers: []string{"date"}},
	{intent: core.IntentIdentify, triggers: []string{"your name"}},
	{intent: core.IntentHelp, triggers: []string{"how can you help"}},
	{intent: core.IntentWikiLookup, triggers: []string{"wikipedia"}, strip: []string{"wikipedia"}},
	{intent: core.IntentWebSearch, triggers: []string{"search", "google"}, strip: []string{"search in chrome", "search", "google"}},
	{intent: core.IntentSendEmail, triggers: []string{"email"}, strip: []string{"send email", "email"}},
	{intent: core.IntentScreenshot, triggers: []string{"screenshot", "screen shot"}},
	{intent: core.IntentSystemStatus, triggers: []string{"cpu", "battery"}},
	{intent: core.IntentRemember, triggers: []string{"remember"}, strip: []string{"remember that", "remember"}},
	{intent: core.IntentRecallMemory, triggers: []string{"do you know anything", "what did i tell you"}},
	{intent: core.IntentPlaySong, triggers: []string{"play"}, strip: []string{"play song", "play"}},
	{intent: core.IntentJoke, triggers: []string{"joke"}},
}

// Matcher maps a normalized utterance to exactly one intent.
type Matcher struct{}

// New constructs a Matcher over the fixed rule order.
func New() *Matcher { return &Matcher{} }

// Match evaluates the rules in priority order and returns the first hit, or
// the fallback-search result when nothing matches. It is total: every
// utterance, including the empty one, yields a Result.
func (m *Matcher) Match(utterance string) Result {
	for _, r := range rules {
		if r.matches(utterance) {
			return Result{Intent: r.intent, strip: r.strip}
		}
	}
	return Result{Intent: core.IntentFallbackSearch}
}
