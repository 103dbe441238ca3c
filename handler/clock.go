package handler

import (
	"time"

	"github.com/voxlab/alpha/core"
)

// FormatClock renders a time as the spoken clock format, e.g. "03:04:05 PM".
func FormatClock(t time.Time) string { return t.Format("03:04:05 PM") }

// FormatDate renders a time as the spoken date format, e.g.
// "Monday, 02 January 2006".
func FormatDate(t time.Time) string { return t.Format("Monday, 02 January 2006") }

// ClockOptions configures the time and date handlers.
type ClockOptions struct {
	// Now supplies the current time. Defaults to time.Now.
	Now func() time.Time
}

func clockNow(optFns []func(o *ClockOptions)) func() time.Time {
	opts := ClockOptions{Now: time.Now}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts.Now
}

// TimeHandler reports the current wall-clock time. It takes no slots and
// always succeeds.
type TimeHandler struct {
	now func() time.Time
}

// NewTimeHandler constructs a TimeHandler with optional overrides.
func NewTimeHandler(optFns ...func(o *ClockOptions)) *TimeHandler {
	return &TimeHandler{now: clockNow(optFns)}
}

// Name returns the handler identifier.
func (h *TimeHandler) Name() string { return "tell_time" }

// Handle reports the current time.
func (h *TimeHandler) Handle(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
	return core.Okf("The current time is %s", FormatClock(h.now()))
}

// DateHandler reports today's date. It takes no slots and always succeeds.
type DateHandler struct {
	now func() time.Time
}

// NewDateHandler constructs a DateHandler with optional overrides.
func NewDateHandler(optFns ...func(o *ClockOptions)) *DateHandler {
	return &DateHandler{now: clockNow(optFns)}
}

// Name returns the handler identifier.
func (h *DateHandler) Name() string { return "tell_date" }

// Handle reports today's date.
func (h *DateHandler) Handle(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
	return core.Okf("Today is %s", FormatDate(h.now()))
}
