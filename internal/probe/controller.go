// Package probe runs the fridge probe control loop: timed temperature
// sampling, non-blocking door debounce, status classification, indicator
// output and periodic telemetry.
//
// The Controller never blocks and never reads a clock. The caller passes a
// wrapping uint32 millisecond timestamp to Tick as often as it likes; work is
// done only when the relevant interval has elapsed.
package probe

import (
	"fmt"
	"log"

	"github.com/sweeney/fridge-probe/internal/config"
	"github.com/sweeney/fridge-probe/internal/logic"
	"github.com/sweeney/fridge-probe/internal/telemetry"
)

// Thermometer supplies temperature samples.
type Thermometer interface {
	ReadTemperature() (float64, error)
	IsReadingValid(c float64) bool
}

// DoorSensor supplies raw, undebounced door observations (true = open).
type DoorSensor interface {
	ReadRawDoor() (bool, error)
}

// Indicator is the binary status output.
type Indicator interface {
	Set(on bool) error
}

// Sink receives formatted telemetry lines.
type Sink interface {
	Emit(line string) error
}

// Snapshot is a point-in-time copy of the controller's observable state.
type Snapshot struct {
	TempC      float64
	AvgC       float64
	Valid      bool
	DoorOpen   bool
	Status     logic.Status
	Samples    int // temperature samples taken
	HistoryLen int
	LEDOn      bool
	Started    bool
}

// Controller owns the history, debouncer, schedule and last status.
// Not safe for concurrent use; drive it from a single loop.
type Controller struct {
	cfg config.Config

	therm Thermometer
	door  DoorSensor
	led   Indicator
	sink  Sink

	history  *logic.History
	debounce *logic.Debouncer
	pattern  *logic.Pattern

	started       bool
	lastSample    uint32
	lastTelemetry uint32
	lastDebounce  uint32

	latest   float64
	valid    bool
	doorOpen bool // debounced door at the last sample
	status   logic.Status
	samples  int

	ledWritten bool
	ledOn      bool
}

// New returns a controller wired to its collaborators. cfg must pass Validate.
func New(cfg config.Config, therm Thermometer, door DoorSensor, led Indicator, sink Sink) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if therm == nil || door == nil || led == nil || sink == nil {
		return nil, fmt.Errorf("new controller: nil collaborator")
	}
	return &Controller{
		cfg:      cfg,
		therm:    therm,
		door:     door,
		led:      led,
		sink:     sink,
		history:  logic.NewHistory(cfg.HistoryCapacity),
		debounce: logic.NewDebouncer(cfg.DebounceSamples),
		pattern:  logic.NewPattern(cfg.PatternTiming()),
	}, nil
}

// Tick advances the loop to now. now must not go backwards except by
// wrapping past the top of the counter.
func (c *Controller) Tick(now uint32) {
	if !c.started {
		c.started = true
		c.observeDoor()
		c.lastDebounce = now
		c.sample()
		c.emit()
		c.lastSample = now
		c.lastTelemetry = now
		c.drive(now)
		return
	}

	if logic.Elapsed(now, c.lastDebounce) >= c.cfg.DebounceIntervalMs {
		c.observeDoor()
		c.lastDebounce = now
	}
	if logic.Elapsed(now, c.lastSample) >= c.cfg.SampleIntervalMs {
		c.sample()
		c.lastSample = now
	}
	if logic.Elapsed(now, c.lastTelemetry) >= c.cfg.TelemetryIntervalMs {
		c.emit()
		c.lastTelemetry = now
	}
	c.drive(now)
}

func (c *Controller) observeDoor() {
	raw, err := c.door.ReadRawDoor()
	if err != nil {
		log.Printf("probe: door read error: %v", err)
		return
	}
	if c.debounce.Observe(raw) {
		log.Printf("probe: door %s", doorString(c.debounce.Confirmed()))
	}
}

func (c *Controller) sample() {
	t, err := c.therm.ReadTemperature()
	if err != nil {
		log.Printf("probe: temperature read error: %v", err)
		c.valid = false
	} else {
		c.latest = t
		c.valid = c.therm.IsReadingValid(t)
		c.history.Push(t)
	}
	c.samples++
	c.doorOpen = c.debounce.Confirmed()

	status := logic.Classify(logic.Input{
		Latest:   c.latest,
		Average:  c.history.Average(),
		Valid:    c.valid,
		DoorOpen: c.doorOpen,
	}, c.cfg.WarmThresholdC)

	if status != c.status {
		log.Printf("probe: status %s -> %s", c.status, status)
	}
	c.status = status
	c.pattern.Set(status)
}

func (c *Controller) emit() {
	line := telemetry.FormatLine(telemetry.Line{
		TempC:    c.latest,
		AvgC:     c.history.Average(),
		DoorOpen: c.doorOpen,
		Status:   c.status,
	})
	if err := c.sink.Emit(line); err != nil {
		log.Printf("probe: telemetry error: %v", err)
		// Don't crash on telemetry failure
	}
}

// drive writes the indicator only when its level changes.
func (c *Controller) drive(now uint32) {
	on := c.pattern.Update(now)
	if c.ledWritten && on == c.ledOn {
		return
	}
	if err := c.led.Set(on); err != nil {
		log.Printf("probe: indicator error: %v", err)
		return
	}
	c.ledWritten = true
	c.ledOn = on
}

// CurrentTemp returns the latest temperature reading.
func (c *Controller) CurrentTemp() float64 {
	return c.latest
}

// AverageTemp returns the rolling average over the history.
func (c *Controller) AverageTemp() float64 {
	return c.history.Average()
}

// DoorOpen returns the debounced door state. It may be newer than the value
// used for the last status.
func (c *Controller) DoorOpen() bool {
	return c.debounce.Confirmed()
}

// Status returns the status from the last sample.
func (c *Controller) Status() logic.Status {
	return c.status
}

// SampleCount returns how many temperature samples have been taken.
func (c *Controller) SampleCount() int {
	return c.samples
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		TempC:      c.latest,
		AvgC:       c.history.Average(),
		Valid:      c.valid,
		DoorOpen:   c.debounce.Confirmed(),
		Status:     c.status,
		Samples:    c.samples,
		HistoryLen: c.history.Len(),
		LEDOn:      c.ledOn,
		Started:    c.started,
	}
}

func doorString(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
