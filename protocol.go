package displayfs

import (
	"encoding/binary"
	"io"
	"time"

	"github.com/flavioheleno/displayfs/screen"
)

// Command bytes of the set-bitmap frame.
const (
	cmdSetBitmap = 0x05
	cmdEnd       = 0x0A
)

// HeaderSize is the length of the set-bitmap header.
const HeaderSize = 10

// ChunkSize is the number of payload bytes written per transport write.
const ChunkSize = screen.PhysicalWidth * 4

// DefaultSettle is how long the controller needs to apply a frame.
const DefaultSettle = 100 * time.Millisecond

// sleep is replaced in tests.
var sleep = time.Sleep

// Header returns the set-bitmap header addressing the whole panel:
//
//	0x05, x0, y0, x1, y1, 0x0A
//
// with every coordinate a little-endian uint16, x0 = y0 = 0 and (x1, y1) the
// last physical column and row. The header is the same for both
// orientations since the payload is always in physical scan order.
func Header() [HeaderSize]byte {
	var h [HeaderSize]byte
	h[0] = cmdSetBitmap
	binary.LittleEndian.PutUint16(h[1:], 0)
	binary.LittleEndian.PutUint16(h[3:], 0)
	binary.LittleEndian.PutUint16(h[5:], screen.PhysicalWidth-1)
	binary.LittleEndian.PutUint16(h[7:], screen.PhysicalHeight-1)
	h[9] = cmdEnd
	return h
}

// SendFrame streams one full frame over t:
//
//  1. clear whatever is buffered on the transport
//  2. write and flush the header
//  3. write the payload in ChunkSize pieces
//  4. flush, then wait settle for the panel to apply the frame
//
// The first failing step aborts the frame and is returned as a
// *TransportError. Nothing is retried; the clear at the start of the next
// frame resynchronises the panel.
func SendFrame(t Transport, payload []byte, settle time.Duration) error {
	if len(payload) != screen.PayloadSize {
		return ErrPayloadSize
	}
	if err := t.Clear(); err != nil {
		return &TransportError{Op: "clear", Err: err}
	}
	h := Header()
	if err := writeFull(t, h[:]); err != nil {
		return &TransportError{Op: "header", Err: err}
	}
	if err := t.Flush(); err != nil {
		return &TransportError{Op: "flush", Err: err}
	}
	chunks := 0
	for off := 0; off < len(payload); off += ChunkSize {
		end := min(off+ChunkSize, len(payload))
		if err := writeFull(t, payload[off:end]); err != nil {
			return &TransportError{Op: "payload", Offset: off, Err: err}
		}
		chunks++
	}
	if err := t.Flush(); err != nil {
		return &TransportError{Op: "flush", Err: err}
	}
	Logger().Debug("displayfs: frame sent", "bytes", len(payload), "chunks", chunks)
	if settle > 0 {
		sleep(settle)
	}
	return nil
}

func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}
