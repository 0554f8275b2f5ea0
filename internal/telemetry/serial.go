package telemetry

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/grid-x/serial"
)

// DefaultBufferLines is how many lines SerialSink keeps while the port is down.
const DefaultBufferLines = 64

// SerialSink writes lines to a serial console. Lines emitted while the port
// cannot be opened or written are buffered (oldest dropped when full) and
// replayed in order once a write succeeds.
type SerialSink struct {
	cfg     serial.Config
	open    func(*serial.Config) (io.WriteCloser, error)
	port    io.WriteCloser
	pending *ringBuffer
	closed  bool
}

// NewSerialSink returns a sink for the device at address (e.g. /dev/ttyAMA0).
// The port is opened lazily on the first Emit.
func NewSerialSink(address string, baud int) *SerialSink {
	return &SerialSink{
		cfg: serial.Config{
			Address:  address,
			BaudRate: baud,
			DataBits: 8,
			StopBits: 1,
			Parity:   "N",
			Timeout:  time.Second,
		},
		open: func(c *serial.Config) (io.WriteCloser, error) {
			return serial.Open(c)
		},
		pending: newRingBuffer(DefaultBufferLines),
	}
}

// Emit queues line and flushes the queue to the port.
func (s *SerialSink) Emit(line string) error {
	if s.closed {
		return ErrClosed
	}
	s.pending.push(line)
	return s.flush()
}

// Pending returns how many lines are waiting for the port.
func (s *SerialSink) Pending() int {
	return s.pending.len()
}

func (s *SerialSink) flush() error {
	if s.port == nil {
		port, err := s.open(&s.cfg)
		if err != nil {
			return fmt.Errorf("open serial %s: %w", s.cfg.Address, err)
		}
		s.port = port
		if n := s.pending.len(); n > 1 {
			log.Printf("telemetry: serial %s open, replaying %d lines", s.cfg.Address, n)
		}
	}

	lines := s.pending.drainAll()
	for i, line := range lines {
		if _, err := io.WriteString(s.port, line+"\r\n"); err != nil {
			// Keep this and every later line for the next attempt.
			for _, l := range lines[i:] {
				s.pending.push(l)
			}
			s.port.Close()
			s.port = nil
			return fmt.Errorf("write serial %s: %w", s.cfg.Address, err)
		}
	}
	return nil
}

// Close closes the port. Buffered lines are discarded.
func (s *SerialSink) Close() error {
	s.closed = true
	if s.port == nil {
		return nil
	}
	err := s.port.Close()
	s.port = nil
	if err != nil {
		return fmt.Errorf("close serial %s: %w", s.cfg.Address, err)
	}
	return nil
}
