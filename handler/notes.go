package handler

import "github.com/voxlab/alpha/core"

// NewRememberHandler persists the "note" slot, overwriting any previous note.
func NewRememberHandler() core.Handler {
	return core.NewHandlerFunc("remember", func(tc *core.TurnContext, slots core.SlotSet) core.Outcome {
		store := tc.Notes()
		if store == nil {
			tc.Logger().Error("remember.no_store",
				"error", NewHandlerError("remember", "note store not configured", CodeConfig).Error())
			return core.Failf("Unable to save the note.")
		}

		if err := store.Save(slots.Get(core.SlotNote)); err != nil {
			tc.Logger().Error("remember.save_failed",
				"error", NewHandlerError("remember", err.Error(), CodeIO).Error())
			return core.Failf("Unable to save the note.")
		}

		return core.Okf("I will remember that.")
	})
}

// NewRecallHandler reads the persisted note back.
func NewRecallHandler() core.Handler {
	return core.NewHandlerFunc("recall_memory", func(tc *core.TurnContext, _ core.SlotSet) core.Outcome {
		store := tc.Notes()
		if store == nil {
			return core.Okf("I have nothing saved yet.")
		}

		note, ok, err := store.Load()
		if err != nil {
			tc.Logger().Error("recall_memory.load_failed",
				"error", NewHandlerError("recall_memory", err.Error(), CodeIO).Error())
			return core.Failf("Unable to read the saved note.")
		}
		if !ok {
			return core.Okf("I have nothing saved yet.")
		}

		return core.Okf("You asked me to remember the following: %s", note)
	})
}
