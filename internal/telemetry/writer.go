package telemetry

import (
	"fmt"
	"io"
)

// WriterSink writes lines to an io.Writer such as os.Stdout.
type WriterSink struct {
	w      io.Writer
	closed bool
}

// NewWriterSink wraps w. Close does not close w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Emit writes line followed by a newline.
func (s *WriterSink) Emit(line string) error {
	if s.closed {
		return ErrClosed
	}
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// Close stops further writes.
func (s *WriterSink) Close() error {
	s.closed = true
	return nil
}

// Multi fans each line out to several sinks.
type Multi []Sink

// Emit writes line to every sink, even if an earlier one fails.
func (m Multi) Emit(line string) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(line); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("emit errors: %v", errs)
	}
	return nil
}

// Close closes every sink.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
