package logic

// errorPhases is the length of the ERROR cycle: on,off,on,off,on,pause.
const errorPhases = 6

// PatternTiming holds the indicator durations in milliseconds.
type PatternTiming struct {
	SlowBlinkMs  uint32 // DOOR_OPEN half-period
	FastBlinkMs  uint32 // TOO_WARM half-period
	ErrorFlashMs uint32 // ERROR phases 0-4
	ErrorPauseMs uint32 // ERROR phase 5
}

// Pattern renders a Status as a time-varying on/off level.
// The active status and its phase state travel together; Set resets both.
type Pattern struct {
	timing PatternTiming

	status     Status
	on         bool
	entered    bool   // false until the first Update after Set
	lastChange uint32 // timestamp of the last toggle or phase advance
	phase      int    // ERROR only, 0..5
}

// NewPattern returns a pattern showing StatusOK. The first Update drives the
// output to its initial level.
func NewPattern(timing PatternTiming) *Pattern {
	return &Pattern{timing: timing, status: StatusOK}
}

// Set makes s the active status. Setting the status already shown is a no-op,
// so a running blink is not restarted by repeated samples.
func (p *Pattern) Set(s Status) {
	if s == p.status {
		return
	}
	p.status = s
	p.entered = false
	p.phase = 0
	p.lastChange = 0
}

// Update advances the pattern to now and returns the output level.
func (p *Pattern) Update(now uint32) bool {
	if !p.entered {
		// Force the initial level instead of waiting a full interval.
		p.entered = true
		p.on = true
		p.phase = 0
		p.lastChange = now
		return p.on
	}

	switch p.status {
	case StatusOK:
		p.on = true
	case StatusDoorOpen:
		p.blink(now, p.timing.SlowBlinkMs)
	case StatusTooWarm:
		p.blink(now, p.timing.FastBlinkMs)
	case StatusError:
		p.flash(now)
	}
	return p.on
}

func (p *Pattern) blink(now, halfPeriod uint32) {
	if Elapsed(now, p.lastChange) >= halfPeriod {
		p.on = !p.on
		p.lastChange = now
	}
}

func (p *Pattern) flash(now uint32) {
	d := p.timing.ErrorFlashMs
	if p.phase == errorPhases-1 {
		d = p.timing.ErrorPauseMs
	}
	if Elapsed(now, p.lastChange) < d {
		return
	}
	p.phase = (p.phase + 1) % errorPhases
	p.lastChange = now
	// Even phases are lit, odd phases dark.
	p.on = p.phase%2 == 0
}

// Status returns the active status.
func (p *Pattern) Status() Status {
	return p.status
}

// On returns the current output level.
func (p *Pattern) On() bool {
	return p.on
}

// Phase returns the ERROR sub-phase (always 0 for other statuses).
func (p *Pattern) Phase() int {
	return p.phase
}
