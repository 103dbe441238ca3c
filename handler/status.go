package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/distatus/battery"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/voxlab/alpha/core"
)

// cpuSampleWindow is the interval over which CPU utilization is averaged.
const cpuSampleWindow = time.Second

// StatusOptions configures the StatusHandler.
type StatusOptions struct {
	// CPUPercent samples aggregate CPU utilization over the interval.
	// Defaults to gopsutil. Overridable for tests.
	CPUPercent func(interval time.Duration) (float64, error)
	// Batteries enumerates the system batteries. Defaults to distatus/battery.
	Batteries func() ([]*battery.Battery, error)
}

// StatusHandler reports CPU utilization over a one-second window plus battery
// charge when a battery is present.
type StatusHandler struct {
	cpuPercent func(time.Duration) (float64, error)
	batteries  func() ([]*battery.Battery, error)
}

// NewStatusHandler constructs a StatusHandler with optional overrides.
func NewStatusHandler(optFns ...func(o *StatusOptions)) *StatusHandler {
	opts := StatusOptions{
		CPUPercent: sampleCPU,
		Batteries:  battery.GetAll,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &StatusHandler{cpuPercent: opts.CPUPercent, batteries: opts.Batteries}
}

// Name returns the handler identifier.
func (h *StatusHandler) Name() string { return "system_status" }

// Handle samples CPU and battery and reports a combined status line.
func (h *StatusHandler) Handle(tc *core.TurnContext, _ core.SlotSet) core.Outcome {
	usage, err := h.cpuPercent(cpuSampleWindow)
	if err != nil {
		tc.Logger().Error("system_status.cpu_failed",
			"error", NewHandlerError(h.Name(), err.Error(), CodeExecution).Error())
		return core.Failf("Unable to retrieve CPU or battery status.")
	}

	parts := []string{fmt.Sprintf("CPU usage is at %.0f percent.", usage)}

	batteries, err := h.batteries()
	if err != nil || len(batteries) == 0 {
		if err != nil {
			tc.Logger().Debug("system_status.battery_failed", "error", err.Error())
		}
		parts = append(parts, "Battery information is not available on this system.")
	} else {
		b := batteries[0]
		percent := 0.0
		if b.Full > 0 {
			percent = b.Current / b.Full * 100
		}
		parts = append(parts, fmt.Sprintf("Battery is at %.0f percent.", percent))
	}

	return core.Okf("%s", strings.Join(parts, " "))
}

// sampleCPU averages utilization across all logical CPUs over the interval.
func sampleCPU(interval time.Duration) (float64, error) {
	percents, err := cpu.Percent(interval, false)
	if err != nil {
		return 0, err
	}
	if len(percents) == 0 {
		return 0, fmt.Errorf("no cpu samples")
	}
	return percents[0], nil
}
