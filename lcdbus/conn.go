// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdbus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Opts defines the options for a serial Conn.
type Opts struct {
	// Speed is the SPI clock.
	Speed physic.Frequency
	// MaxTxSize is the number of data bytes buffered before a transfer is
	// issued. 0 means 4096.
	MaxTxSize int
	// WordBytes is the size of a command or parameter on the wire: 1 for
	// 8-bit serial controllers, 2 for 16-bit serial interfaces. 0 means 1.
	WordBytes int
	// GRAM lists the registers whose data words are RGB565 pixels, always
	// sent as two bytes. nil means the DCS memory write commands.
	GRAM []uint16
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Speed:     40 * physic.MegaHertz,
	MaxTxSize: 4096,
	WordBytes: 1,
	GRAM:      dcsGRAM,
}

// dcsGRAM are the DCS write_memory_start and write_memory_continue
// commands.
var dcsGRAM = []uint16{0x2C, 0x3C}

// Conn is a Bus over a serial connection and a data/command line.
//
// Commands and parameters are sent as WordBytes bytes, most significant
// first; an 8-bit controller only sees the low byte. Data following a GRAM
// register is sent as 16-bit pixels. Data words are buffered and sent in
// one transfer when the register changes, on a read, when the buffer is
// full or on Flush. Reads return WordBytes bytes per word.
type Conn struct {
	c  conn.Conn
	dc gpio.PinOut

	eh    errorHandler
	buf   []byte
	max   int
	width int
	gram  []uint16
	// pixels is set while the last register is a GRAM register.
	pixels bool
}

// NewSPI connects to p in mode 0 and returns a Conn using dc as the
// data/command line.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Conn, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if dc == nil || dc == gpio.INVALID {
		return nil, errors.New("lcdbus: a data/command pin is required")
	}
	c, err := p.Connect(opts.Speed, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("lcdbus: %w", err)
	}
	return NewConn(c, dc, opts), nil
}

// NewConn returns a Conn over an already connected c.
func NewConn(c conn.Conn, dc gpio.PinOut, opts *Opts) *Conn {
	if opts == nil {
		opts = &DefaultOpts
	}
	max := opts.MaxTxSize
	if max <= 0 {
		max = 4096
	}
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize(); m > 0 && m < max {
			max = m
		}
	}
	// Keep whole words in every transfer.
	max &^= 1
	if max == 0 {
		max = 2
	}
	width := opts.WordBytes
	if width != 2 {
		width = 1
	}
	gram := opts.GRAM
	if gram == nil {
		gram = dcsGRAM
	}
	return &Conn{c: c, dc: dc, buf: make([]byte, 0, max), max: max, width: width, gram: gram}
}

func (c *Conn) String() string {
	return fmt.Sprintf("lcdbus.Conn{%s}", c.c)
}

// WriteReg implements Bus.
func (c *Conn) WriteReg(reg uint16) {
	c.flush()
	c.pixels = false
	for _, g := range c.gram {
		if reg == g {
			c.pixels = true
			break
		}
	}
	c.eh.out(c.dc, gpio.Low)
	c.eh.tx(c.c, appendWord(nil, reg, c.width), nil)
}

// WriteData implements Bus.
func (c *Conn) WriteData(v uint16) {
	if c.eh.err != nil {
		return
	}
	n := c.width
	if c.pixels {
		n = 2
	}
	c.buf = appendWord(c.buf, v, n)
	if len(c.buf) >= c.max {
		c.flush()
	}
}

// ReadData implements Bus.
func (c *Conn) ReadData() uint16 {
	c.flush()
	var r [2]byte
	c.eh.out(c.dc, gpio.High)
	c.eh.tx(c.c, make([]byte, c.width), r[:c.width])
	if c.eh.err != nil {
		return 0
	}
	if c.width == 1 {
		return uint16(r[0])
	}
	return uint16(r[0])<<8 | uint16(r[1])
}

// Flush implements Flusher.
func (c *Conn) Flush() error {
	c.flush()
	return c.eh.err
}

// Err implements Errer.
func (c *Conn) Err() error {
	return c.eh.err
}

func (c *Conn) flush() {
	if len(c.buf) == 0 {
		return
	}
	c.eh.out(c.dc, gpio.High)
	c.eh.tx(c.c, c.buf, nil)
	c.buf = c.buf[:0]
}

// appendWord appends v to b as n bytes, most significant first.
func appendWord(b []byte, v uint16, n int) []byte {
	if n == 2 {
		return append(b, byte(v>>8), byte(v))
	}
	return append(b, byte(v))
}

var _ Bus = &Conn{}
var _ Flusher = &Conn{}
