// Package serialport opens the USB serial link of a Display FS panel.
package serialport

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flavioheleno/displayfs"
	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
	"periph.io/x/conn/v3/physic"
)

// USB bridges the panel ships with.
var knownDevices = []struct {
	vid, pid string
	name     string
}{
	{"1A86", "7523", "CH340"},
	{"1A86", "5523", "CH341"},
	{"1A86", "FE0C", "WeAct Display FS"},
}

// ErrNotFound is returned by Find when no known device is attached.
var ErrNotFound = errors.New("serialport: no display found")

// Opts is the configuration for the serial link.
type Opts struct {
	Baud        physic.Frequency // Line rate (default: 115200Hz)
	ReadTimeout time.Duration    // Read timeout (default: 1s)
}

// DefaultOpts is used when Open receives nil.
var DefaultOpts = Opts{
	Baud:        115200 * physic.Hertz,
	ReadTimeout: time.Second,
}

// Port is an open serial link. It implements displayfs.Transport.
type Port struct {
	name string
	p    serial.Port
}

var _ displayfs.Transport = (*Port)(nil)

// listPorts is replaced in tests.
var listPorts = enumerator.GetDetailedPortsList

// Find returns the name of the first attached port whose USB VID/PID matches
// a known display bridge.
func Find() (string, error) {
	ports, err := listPorts()
	if err != nil {
		return "", fmt.Errorf("serialport: failed to list ports: %w", err)
	}
	if p := match(ports); p != nil {
		return p.Name, nil
	}
	return "", ErrNotFound
}

// Describe returns the bridge name for a VID/PID pair, or "" when unknown.
func Describe(vid, pid string) string {
	for _, d := range knownDevices {
		if strings.EqualFold(d.vid, vid) && strings.EqualFold(d.pid, pid) {
			return d.name
		}
	}
	return ""
}

func match(ports []*enumerator.PortDetails) *enumerator.PortDetails {
	for _, p := range ports {
		if p == nil || !p.IsUSB {
			continue
		}
		if Describe(p.VID, p.PID) != "" {
			return p
		}
	}
	return nil
}

// Open opens the named port.
//
// opts can be nil to use DefaultOpts.
func Open(name string, opts *Opts) (*Port, error) {
	o := DefaultOpts
	if opts != nil {
		if opts.Baud < 0 || opts.ReadTimeout < 0 {
			return nil, fmt.Errorf("serialport: invalid options %+v", *opts)
		}
		if opts.Baud != 0 {
			o.Baud = opts.Baud
		}
		if opts.ReadTimeout != 0 {
			o.ReadTimeout = opts.ReadTimeout
		}
	}

	p, err := serial.Open(name, mode(o))
	if err != nil {
		return nil, fmt.Errorf("serialport: failed to open %s: %w", name, err)
	}
	if err := p.SetReadTimeout(o.ReadTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("serialport: failed to set read timeout: %w", err)
	}
	return &Port{name: name, p: p}, nil
}

func mode(o Opts) *serial.Mode {
	return &serial.Mode{
		BaudRate: int(o.Baud / physic.Hertz),
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// Clear discards bytes pending in both directions.
func (p *Port) Clear() error {
	if err := p.p.ResetInputBuffer(); err != nil {
		return err
	}
	return p.p.ResetOutputBuffer()
}

// Write queues b for transmission.
func (p *Port) Write(b []byte) (int, error) {
	return p.p.Write(b)
}

// Flush waits until every queued byte has been transmitted.
func (p *Port) Flush() error {
	return p.p.Drain()
}

// Close closes the port.
func (p *Port) Close() error {
	return p.p.Close()
}

func (p *Port) String() string {
	return p.name
}
