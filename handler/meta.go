package handler

import "github.com/voxlab/alpha/core"

// NewIdentifyHandler answers questions about the assistant's name.
func NewIdentifyHandler(name string) core.Handler {
	if name == "" {
		name = "Alpha"
	}
	return core.NewHandlerFunc("identify", func(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
		return core.Okf("My name is %s.", name)
	})
}

// NewHelpHandler summarizes what the assistant can do.
func NewHelpHandler() core.Handler {
	return core.NewHandlerFunc("help", func(_ *core.TurnContext, _ core.SlotSet) core.Outcome {
		return core.Okf("I can tell the time and date, look things up on Wikipedia, search the web, play songs, send email, take screenshots, report system status, tell jokes, and remember a note for you.")
	})
}
