package displayfs

import (
	"errors"
	"fmt"

	"github.com/flavioheleno/displayfs/rgb565"
	"periph.io/x/conn/v3"
)

// Transport is the byte link to the panel. Its discovery and lifetime are
// managed by the caller.
type Transport interface {
	// Clear discards bytes pending in either direction.
	Clear() error
	// Write queues p for the panel.
	Write(p []byte) (int, error)
	// Flush blocks until queued bytes have been sent.
	Flush() error
}

// ConnTransport adapts a periph conn.Conn. Each Write becomes one write-only
// Tx; Clear and Flush are no-ops because Tx is synchronous.
func ConnTransport(c conn.Conn) Transport {
	return &connTransport{c: c}
}

type connTransport struct {
	c conn.Conn
}

func (t *connTransport) Clear() error { return nil }
func (t *connTransport) Flush() error { return nil }

func (t *connTransport) Write(p []byte) (int, error) {
	if err := t.c.Tx(p, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t *connTransport) String() string {
	return t.c.String()
}

// TransportError reports a failed step of SendFrame.
type TransportError struct {
	Op     string // "clear", "header", "payload" or "flush"
	Offset int    // payload offset of the failed chunk, for Op "payload"
	Err    error
}

func (e *TransportError) Error() string {
	if e.Op == "payload" {
		return fmt.Sprintf("displayfs: %s at offset %d: %v", e.Op, e.Offset, e.Err)
	}
	return fmt.Sprintf("displayfs: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Sentinel errors.
var (
	// ErrHalted is returned by every drawing call after Halt.
	ErrHalted = errors.New("displayfs: halted")

	// ErrPayloadSize is returned when a payload is not exactly one frame.
	// It is the same value rgb565.FromPayload returns.
	ErrPayloadSize = rgb565.ErrPayloadSize
)
