// Package serial adapts a UART/serial port to the lineterm.Transport
// interface using goserial's termios-based primitives.
package serial

import (
	"github.com/daedaluz/goserial"
)

// Port wraps a goserial.Port as a lineterm.Transport: one byte in, one
// byte out, raw mode enforced at Open time so control characters reach
// the session instead of being swallowed by line discipline.
type Port struct {
	port *serial.Port
}

// Options mirrors the subset of goserial's port options this editor
// cares about: the line speed.
type Options struct {
	BaudRate CFlagValue
}

// CFlagValue is a serial line speed, expressed using goserial's CFlag
// baud-rate constants (B9600, B115200, ...).
type CFlagValue = serial.CFlag

// Open opens name in raw mode at the requested speed and returns a Port
// ready to back a lineterm.Session.
func Open(name string, opts Options) (*Port, error) {
	sopts := serial.NewOptions()
	p, err := serial.Open(name, sopts)
	if err != nil {
		return nil, err
	}
	if err := p.MakeRaw(); err != nil {
		p.Close()
		return nil, err
	}
	attrs, err := p.GetAttr()
	if err != nil {
		p.Close()
		return nil, err
	}
	if opts.BaudRate != 0 {
		attrs.SetSpeed(opts.BaudRate)
		if err := p.SetAttr(serial.TCSANOW, attrs); err != nil {
			p.Close()
			return nil, err
		}
	}
	return &Port{port: p}, nil
}

// ReadOne reads exactly one byte, blocking until it arrives.
func (p *Port) ReadOne() (byte, error) {
	var buf [1]byte
	for {
		n, err := p.port.Read(buf[:])
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return buf[0], nil
		}
	}
}

// WriteAll writes every byte of data, retrying on short writes.
func (p *Port) WriteAll(data []byte) error {
	for len(data) > 0 {
		n, err := p.port.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Close releases the underlying file descriptor.
func (p *Port) Close() error {
	return p.port.Close()
}
