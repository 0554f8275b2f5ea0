package telemetry

import (
	"errors"
	"io"
	"testing"

	"github.com/grid-x/serial"
)

// fakePort records writes and can be told to fail.
type fakePort struct {
	writes   []string
	writeErr error
	closed   bool
}

func (p *fakePort) Write(b []byte) (int, error) {
	if p.writeErr != nil {
		return 0, p.writeErr
	}
	p.writes = append(p.writes, string(b))
	return len(b), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

// newTestSerialSink returns a sink whose opener hands out port, or openErr.
func newTestSerialSink(port *fakePort, openErr *error, opens *int) *SerialSink {
	s := NewSerialSink("/dev/ttyTEST", 115200)
	s.open = func(c *serial.Config) (io.WriteCloser, error) {
		*opens++
		if *openErr != nil {
			return nil, *openErr
		}
		return port, nil
	}
	return s
}

func TestSerialSinkConfig(t *testing.T) {
	s := NewSerialSink("/dev/ttyAMA0", 9600)
	if s.cfg.Address != "/dev/ttyAMA0" || s.cfg.BaudRate != 9600 {
		t.Errorf("config: got %+v", s.cfg)
	}
	if s.cfg.DataBits != 8 || s.cfg.StopBits != 1 || s.cfg.Parity != "N" {
		t.Errorf("expected 8N1, got %+v", s.cfg)
	}
}

func TestSerialSinkOpensLazilyAndWrites(t *testing.T) {
	port := &fakePort{}
	var openErr error
	opens := 0
	s := newTestSerialSink(port, &openErr, &opens)

	if opens != 0 {
		t.Fatal("port should not open before first Emit")
	}
	if err := s.Emit("t=4.0C"); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := s.Emit("t=4.1C"); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if opens != 1 {
		t.Errorf("opens: got %d, want 1", opens)
	}
	if len(port.writes) != 2 || port.writes[0] != "t=4.0C\r\n" {
		t.Errorf("writes: got %q", port.writes)
	}
}

func TestSerialSinkBuffersWhileOpenFails(t *testing.T) {
	port := &fakePort{}
	openErr := errors.New("no such device")
	opens := 0
	s := newTestSerialSink(port, &openErr, &opens)

	if err := s.Emit("one"); err == nil {
		t.Fatal("expected open error")
	}
	if err := s.Emit("two"); !errors.Is(err, openErr) {
		t.Errorf("expected wrapped open error, got %v", err)
	}
	if s.Pending() != 2 {
		t.Fatalf("pending: got %d, want 2", s.Pending())
	}

	openErr = nil
	if err := s.Emit("three"); err != nil {
		t.Fatalf("Emit after recovery: %v", err)
	}
	want := []string{"one\r\n", "two\r\n", "three\r\n"}
	if len(port.writes) != len(want) {
		t.Fatalf("writes: got %q, want %q", port.writes, want)
	}
	for i := range want {
		if port.writes[i] != want[i] {
			t.Errorf("[%d]: got %q, want %q", i, port.writes[i], want[i])
		}
	}
	if s.Pending() != 0 {
		t.Errorf("pending after replay: got %d", s.Pending())
	}
}

func TestSerialSinkWriteFailureReopens(t *testing.T) {
	port := &fakePort{}
	var openErr error
	opens := 0
	s := newTestSerialSink(port, &openErr, &opens)

	s.Emit("one")
	port.writeErr = errors.New("i/o error")
	if err := s.Emit("two"); err == nil {
		t.Fatal("expected write error")
	}
	if !port.closed {
		t.Error("failed port should be closed")
	}
	if s.Pending() != 1 {
		t.Errorf("pending: got %d, want 1", s.Pending())
	}

	port.writeErr = nil
	port.closed = false
	if err := s.Emit("three"); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if opens != 2 {
		t.Errorf("opens: got %d, want 2", opens)
	}
	if len(port.writes) != 3 || port.writes[1] != "two\r\n" || port.writes[2] != "three\r\n" {
		t.Errorf("writes: got %q", port.writes)
	}
}

func TestSerialSinkClose(t *testing.T) {
	port := &fakePort{}
	var openErr error
	opens := 0
	s := newTestSerialSink(port, &openErr, &opens)

	s.Emit("one")
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !port.closed {
		t.Error("port should be closed")
	}
	if err := s.Emit("two"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestSerialSinkCloseNeverOpened(t *testing.T) {
	s := NewSerialSink("/dev/ttyTEST", 115200)
	if err := s.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
