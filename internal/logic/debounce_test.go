package logic

import "testing"

func TestDebouncerInitialState(t *testing.T) {
	d := NewDebouncer(5)
	if d.Confirmed() {
		t.Error("new debouncer should report closed (false)")
	}
	if _, ok := d.Raw(); ok {
		t.Error("Raw should report no observation yet")
	}
}

func TestDebouncerCommitsOnKthSample(t *testing.T) {
	d := NewDebouncer(5)

	for i := 1; i <= 4; i++ {
		if d.Observe(true) {
			t.Errorf("observation %d: unexpected change", i)
		}
		if d.Confirmed() {
			t.Fatalf("observation %d: confirmed open before 5 samples", i)
		}
	}

	if !d.Observe(true) {
		t.Error("observation 5: expected change")
	}
	if !d.Confirmed() {
		t.Error("expected confirmed open after 5th sample")
	}
}

func TestDebouncerShortGlitchIgnored(t *testing.T) {
	d := NewDebouncer(5)

	// Establish closed, then a 4-sample glitch open, then closed again
	seq := []bool{false, false, false, false, false, true, true, true, true, false, false}
	for i, raw := range seq {
		if d.Observe(raw) {
			t.Errorf("observation %d: unexpected change", i)
		}
	}
	if d.Confirmed() {
		t.Error("glitch shorter than K should not change confirmed state")
	}
}

func TestDebouncerSteadySignalChangesOnce(t *testing.T) {
	d := NewDebouncer(3)

	changes := 0
	for i := 0; i < 20; i++ {
		if d.Observe(true) {
			changes++
		}
	}
	if changes != 1 {
		t.Errorf("changes: got %d, want 1", changes)
	}
	if !d.Confirmed() {
		t.Error("expected confirmed open")
	}
}

func TestDebouncerBrokenRunRestarts(t *testing.T) {
	d := NewDebouncer(3)

	d.Observe(true)
	d.Observe(true)
	d.Observe(false) // breaks the run
	d.Observe(true)
	d.Observe(true)
	if d.Confirmed() {
		t.Fatal("run restarted at 1, should need a third true")
	}
	if !d.Observe(true) {
		t.Error("expected change on third consecutive true")
	}
}

func TestDebouncerOpenThenClosed(t *testing.T) {
	d := NewDebouncer(2)

	d.Observe(true)
	d.Observe(true)
	if !d.Confirmed() {
		t.Fatal("expected open")
	}

	d.Observe(false)
	if !d.Confirmed() {
		t.Error("single closed sample should not change state")
	}
	if !d.Observe(false) {
		t.Error("expected change back to closed")
	}
	if d.Confirmed() {
		t.Error("expected closed")
	}
}

func TestDebouncerRawInspectable(t *testing.T) {
	d := NewDebouncer(5)
	d.Observe(true)

	raw, ok := d.Raw()
	if !ok || !raw {
		t.Errorf("Raw: got (%v, %v), want (true, true)", raw, ok)
	}
	if d.Confirmed() {
		t.Error("confirmed should lag the raw value")
	}
}

func TestDebouncerRequiredOne(t *testing.T) {
	d := NewDebouncer(1)
	if !d.Observe(true) {
		t.Error("K=1 should commit immediately")
	}
	if !d.Observe(false) {
		t.Error("K=1 should commit immediately on change")
	}
}

func TestMajority(t *testing.T) {
	tests := []struct {
		name string
		in   []bool
		want bool
	}{
		{"all open", []bool{true, true, true, true, true}, true},
		{"all closed", []bool{false, false, false, false, false}, false},
		{"3 of 5 open", []bool{true, false, true, false, true}, true},
		{"2 of 5 open", []bool{true, false, false, false, true}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		if got := Majority(tt.in); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMajorityAgreesWithDebouncerSteadyState(t *testing.T) {
	for _, level := range []bool{true, false} {
		batch := []bool{level, level, level, level, level}

		d := NewDebouncer(len(batch))
		for _, o := range batch {
			d.Observe(o)
		}

		if Majority(batch) != d.Confirmed() {
			t.Errorf("level %v: majority %v, debouncer %v", level, Majority(batch), d.Confirmed())
		}
	}
}
