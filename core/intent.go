package core

// Intent is the discrete action class selected for a turn. The set is fixed;
// the matcher is total and falls back to IntentFallbackSearch when no rule
// applies, so every utterance resolves to exactly one Intent.
type Intent int

const (
	// IntentExit terminates the session. It is the only intent that can.
	IntentExit Intent = iota
	// IntentTellTime reports the current wall-clock time.
	IntentTellTime
	// IntentTellDate reports today's date.
	IntentTellDate
	// IntentIdentify answers "what is your name" style questions.
	IntentIdentify
	// IntentHelp summarizes what the assistant can do.
	IntentHelp
	// IntentWikiLookup fetches a short encyclopedia summary for a term.
	IntentWikiLookup
	// IntentWebSearch opens a browser tab on a search results page.
	IntentWebSearch
	// IntentSendEmail sends an email over SMTP.
	IntentSendEmail
	// IntentScreenshot captures the screen to a timestamped file.
	IntentScreenshot
	// IntentSystemStatus reports CPU utilization and battery charge.
	IntentSystemStatus
	// IntentRemember overwrites the single persisted note.
	IntentRemember
	// IntentRecallMemory reads the persisted note back.
	IntentRecallMemory
	// IntentPlaySong opens media playback for a named song.
	IntentPlaySong
	// IntentJoke tells a joke.
	IntentJoke
	// IntentFallbackSearch is the total-match fallback: the whole utterance
	// becomes a web search query.
	IntentFallbackSearch
)

// Slot names shared between the matcher, the slot resolver and the handlers.
const (
	SlotTerm      = "term"
	SlotQuery     = "query"
	SlotRecipient = "recipient"
	SlotSubject   = "subject"
	SlotBody      = "body"
	SlotSong      = "song"
	SlotNote      = "note"
)

// requiredSlots declares, per intent, the ordered slot names a handler needs
// before it may run. Order matters: the slot resolver fills them in sequence
// and only the first one is eligible for extraction from the utterance.
var requiredSlots = map[Intent][]string{
	IntentWikiLookup:     {SlotTerm},
	IntentWebSearch:      {SlotQuery},
	IntentSendEmail:      {SlotSubject, SlotBody, SlotRecipient},
	IntentRemember:       {SlotNote},
	IntentPlaySong:       {SlotSong},
	IntentFallbackSearch: {SlotQuery},
}

// RequiredSlots returns the ordered slot names this intent needs, or nil when
// its handler takes no parameters.
func (i Intent) RequiredSlots() []string { return requiredSlots[i] }

// String returns the snake_case identifier used in logs and handler names.
func (i Intent) String() string {
	switch i {
	case IntentExit:
		return "exit"
	case IntentTellTime:
		return "tell_time"
	case IntentTellDate:
		return "tell_date"
	case IntentIdentify:
		return "identify"
	case IntentHelp:
		return "help"
	case IntentWikiLookup:
		return "wiki_lookup"
	case IntentWebSearch:
		return "web_search"
	case IntentSendEmail:
		return "send_email"
	case IntentScreenshot:
		return "screenshot"
	case IntentSystemStatus:
		return "system_status"
	case IntentRemember:
		return "remember"
	case IntentRecallMemory:
		return "recall_memory"
	case IntentPlaySong:
		return "play_song"
	case IntentJoke:
		return "joke"
	case IntentFallbackSearch:
		return "fallback_search"
	default:
		return "unknown"
	}
}
