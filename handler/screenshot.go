package handler

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/kbinani/screenshot"
	"github.com/voxlab/alpha/core"
)

// ScreenshotOptions configures the ScreenshotHandler.
type ScreenshotOptions struct {
	// Dir receives the captured images. Defaults to Pictures/Screenshots
	// under the user's home directory.
	Dir string
	// Now supplies the timestamp embedded in the filename.
	Now func() time.Time
	// Capture grabs the full primary display. Overridable for tests.
	Capture func() (image.Image, error)
}

// ScreenshotHandler captures the full screen and writes it to a timestamped
// PNG under the configured directory.
type ScreenshotHandler struct {
	dir     string
	now     func() time.Time
	capture func() (image.Image, error)
}

// NewScreenshotHandler constructs a ScreenshotHandler with optional overrides.
func NewScreenshotHandler(optFns ...func(o *ScreenshotOptions)) *ScreenshotHandler {
	opts := ScreenshotOptions{
		Now:     time.Now,
		Capture: capturePrimaryDisplay,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Dir == "" {
		opts.Dir = defaultScreenshotDir()
	}

	return &ScreenshotHandler{dir: opts.Dir, now: opts.Now, capture: opts.Capture}
}

// Name returns the handler identifier.
func (h *ScreenshotHandler) Name() string { return "screenshot" }

// Handle captures the screen and reports the saved path.
func (h *ScreenshotHandler) Handle(tc *core.TurnContext, _ core.SlotSet) core.Outcome {
	img, err := h.capture()
	if err != nil {
		tc.Logger().Error("screenshot.capture_failed",
			"error", NewHandlerError(h.Name(), err.Error(), CodeExecution).Error())
		return core.Failf("Unable to take a screenshot.")
	}

	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		tc.Logger().Error("screenshot.mkdir_failed", "error", err.Error())
		return core.Failf("Unable to save the screenshot.")
	}

	name := "screenshot_" + h.now().Format("20060102_150405") + ".png"
	path := filepath.Join(h.dir, name)

	f, err := os.Create(path)
	if err != nil {
		tc.Logger().Error("screenshot.create_failed",
			"error", NewHandlerError(h.Name(), err.Error(), CodeIO).Error())
		return core.Failf("Unable to save the screenshot.")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		tc.Logger().Error("screenshot.encode_failed", "error", err.Error())
		return core.Failf("Unable to save the screenshot.")
	}

	return core.Okf("Screenshot saved to %s", path)
}

func capturePrimaryDisplay() (image.Image, error) {
	if screenshot.NumActiveDisplays() == 0 {
		return nil, NewHandlerError("screenshot", "no active display", CodeExecution)
	}
	return screenshot.CaptureDisplay(0)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, "Pictures", "Screenshots")
}
