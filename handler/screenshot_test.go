package handler

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeCapture() (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
}

func TestScreenshotHandler_WritesTimestampedPNG(t *testing.T) {
	dir := t.TempDir()
	h := NewScreenshotHandler(func(o *ScreenshotOptions) {
		o.Dir = dir
		o.Capture = fakeCapture
		o.Now = func() time.Time { return time.Date(2026, 3, 9, 14, 5, 9, 0, time.UTC) }
	})

	out := h.Handle(newTurnContext("screenshot"), nil)
	require.True(t, out.OK, out.Message)

	want := filepath.Join(dir, "screenshot_20260309_140509.png")
	assert.Contains(t, out.Message, want)

	info, err := os.Stat(want)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestScreenshotHandler_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "shots")
	h := NewScreenshotHandler(func(o *ScreenshotOptions) {
		o.Dir = dir
		o.Capture = fakeCapture
	})

	out := h.Handle(newTurnContext("screenshot"), nil)
	require.True(t, out.OK, out.Message)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScreenshotHandler_CaptureFailure(t *testing.T) {
	h := NewScreenshotHandler(func(o *ScreenshotOptions) {
		o.Dir = t.TempDir()
		o.Capture = func() (image.Image, error) { return nil, errors.New("no display") }
	})

	out := h.Handle(newTurnContext("screenshot"), nil)
	assert.False(t, out.OK)
	assert.Contains(t, out.Message, "Unable to take a screenshot")
}
