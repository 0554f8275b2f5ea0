package gpio

import (
	"errors"
	"testing"
	"time"
)

func TestReadDoorBatchUnanimous(t *testing.T) {
	f := NewFakeDoorReader([]bool{true, true, true, true, true})

	var slept []time.Duration
	open, err := ReadDoorBatch(f, 5, 10*time.Millisecond, func(d time.Duration) { slept = append(slept, d) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Error("expected open")
	}
	if f.Reads != 5 {
		t.Errorf("Reads: got %d, want 5", f.Reads)
	}
	// No sleep after the last sample
	if len(slept) != 4 {
		t.Errorf("sleeps: got %d, want 4", len(slept))
	}
	for i, d := range slept {
		if d != 10*time.Millisecond {
			t.Errorf("sleep %d: got %v, want 10ms", i, d)
		}
	}
}

func TestReadDoorBatchMajority(t *testing.T) {
	f := NewFakeDoorReader([]bool{true, false, true, false, false})

	open, err := ReadDoorBatch(f, 5, time.Millisecond, func(time.Duration) {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Error("2 of 5 open should resolve closed")
	}
}

func TestReadDoorBatchError(t *testing.T) {
	f := NewFakeDoorReader([]bool{true})
	f.ReadError = errors.New("bus error")

	_, err := ReadDoorBatch(f, 5, time.Millisecond, func(time.Duration) {})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, f.ReadError) {
		t.Errorf("expected wrapped read error, got %v", err)
	}
}
