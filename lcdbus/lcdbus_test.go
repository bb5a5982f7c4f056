// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdbus

import (
	"errors"
	"fmt"
	"testing"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

func TestConnWrite(t *testing.T) {
	// Column then row address set of 10..109 x 20..69, one byte per
	// parameter.
	p := &conntest.Playback{
		Ops: []conntest.IO{
			{W: []byte{0x2A}},
			{W: []byte{0x00, 0x0A, 0x00, 0x6D}},
			{W: []byte{0x2B}},
			{W: []byte{0x00, 0x14, 0x00, 0x45}},
		},
	}
	dc := &gpiotest.Pin{N: "DC"}
	c := NewConn(p, dc, nil)

	WriteRegData(c, 0x2A, 0, 10, 0, 109)
	WriteRegData(c, 0x2B, 0, 20, 0, 69)
	if dc.L != gpio.Low {
		t.Error("data words must stay buffered until flushed")
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if dc.L != gpio.High {
		t.Error("data must be sent with DC high")
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestConnWordBytes(t *testing.T) {
	p := &conntest.Playback{
		Ops: []conntest.IO{
			{W: []byte{0x00, 0x36}},
			{W: []byte{0x00, 0x48}},
			{W: []byte{0x00, 0x2C}},
			{W: []byte{0xF8, 0x00}},
		},
	}
	c := NewConn(p, &gpiotest.Pin{N: "DC"}, &Opts{WordBytes: 2})
	WriteRegData(c, 0x36, 0x48)
	WriteRegData(c, 0x2C, 0xF800)
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestConnGRAM(t *testing.T) {
	// Pixels are 16 bits whatever the parameter size, and only after a
	// GRAM register.
	p := &conntest.Playback{
		Ops: []conntest.IO{
			{W: []byte{0x5C}},
			{W: []byte{0x12, 0x34}},
			{W: []byte{0x3A}},
			{W: []byte{0x55}},
		},
	}
	c := NewConn(p, &gpiotest.Pin{N: "DC"}, &Opts{GRAM: []uint16{0x5C}})
	WriteRegData(c, 0x5C, 0x1234)
	WriteRegData(c, 0x3A, 0x55)
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestConnSplitsLargeWrites(t *testing.T) {
	p := &conntest.Playback{
		Ops: []conntest.IO{
			{W: []byte{0x2C}},
			{W: []byte{0xF8, 0x00, 0xF8, 0x00}},
			{W: []byte{0xF8, 0x00}},
		},
	}
	c := NewConn(p, &gpiotest.Pin{N: "DC"}, &Opts{MaxTxSize: 5})
	c.WriteReg(0x2C)
	for i := 0; i < 3; i++ {
		c.WriteData(0xF800)
	}
	if err := c.Flush(); err != nil {
		t.Fatal(err)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestConnRead(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts *Opts
		ops  []conntest.IO
	}{
		{
			"8 bits",
			nil,
			[]conntest.IO{
				{W: []byte{0xD3}},
				{W: []byte{0x00}, R: []byte{0x93}},
				{W: []byte{0x00}, R: []byte{0x41}},
			},
		},
		{
			"16 bits",
			&Opts{WordBytes: 2},
			[]conntest.IO{
				{W: []byte{0x00, 0xD3}},
				{W: []byte{0x00, 0x00}, R: []byte{0x00, 0x93}},
				{W: []byte{0x00, 0x00}, R: []byte{0x00, 0x41}},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			p := &conntest.Playback{Ops: tc.ops}
			c := NewConn(p, &gpiotest.Pin{N: "DC"}, tc.opts)
			hi := ReadReg(c, 0xD3)
			lo := c.ReadData()
			if got := hi<<8 | lo; got != 0x9341 {
				t.Fatalf("ID = %#04x", got)
			}
			if err := p.Close(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestConnLatchesError(t *testing.T) {
	p := &conntest.Playback{DontPanic: true}
	c := NewConn(p, &gpiotest.Pin{N: "DC"}, nil)
	c.WriteReg(0x2C)
	first := c.Err()
	if first == nil {
		t.Fatal("expected an error")
	}
	c.WriteReg(0x2A)
	c.WriteData(1)
	if got := c.ReadData(); got != 0 {
		t.Errorf("ReadData() = %#04x after error", got)
	}
	if err := Flush(c); err != first {
		t.Errorf("Flush() = %v, want %v", err, first)
	}
	if p.Count != 0 {
		t.Errorf("bus used after error: %d", p.Count)
	}
}

func TestNewSPI(t *testing.T) {
	if _, err := NewSPI(&spitest.Record{}, nil, nil); err == nil {
		t.Fatal("expected error without DC pin")
	}
	c, err := NewSPI(&spitest.Record{}, &gpiotest.Pin{N: "DC"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.String() == "" {
		t.Fatal("empty name")
	}
}

func TestFMCAddr(t *testing.T) {
	for _, tc := range []struct {
		nex, ax int
		want    uint64
	}{
		{nex: 1, ax: 16, want: 0x6001FFFE},
		{nex: 4, ax: 6, want: 0x6C00007E},
		{nex: 1, ax: 0, want: 0x60000000},
	} {
		t.Run(fmt.Sprintf("NE%d_A%d", tc.nex, tc.ax), func(t *testing.T) {
			if got := FMCAddr(tc.nex, tc.ax); got != tc.want {
				t.Errorf("FMCAddr() = %#x, want %#x", got, tc.want)
			}
		})
	}
}

func TestFMC(t *testing.T) {
	if _, err := NewFMC(0, 6, nil); err == nil {
		t.Error("expected error for sub-bank 0")
	}
	if _, err := NewFMC(1, 26, nil); err == nil {
		t.Error("expected error for A26")
	}

	regs := &fmcRegs{}
	var timing [2]int
	f := &FMC{r: regs, timing: func(a, d int) error {
		timing = [2]int{a, d}
		return nil
	}}
	f.WriteReg(0x2C)
	f.WriteData(0x1234)
	if regs.Reg != 0x2C || regs.RAM != 0x1234 {
		t.Fatalf("regs = %+v", regs)
	}
	regs.RAM = 0x5678
	if got := f.ReadData(); got != 0x5678 {
		t.Fatalf("ReadData() = %#04x", got)
	}
	f.SetWriteTiming(3, 3)
	if timing != [2]int{3, 3} {
		t.Fatalf("timing = %v", timing)
	}

	bad := errors.New("bus busy")
	f.timing = func(a, d int) error { return bad }
	f.SetWriteTiming(2, 2)
	if f.Err() != bad {
		t.Fatalf("Err() = %v", f.Err())
	}
	if a, d := f.WriteTiming(); a != 2 || d != 2 {
		t.Fatalf("WriteTiming() = %d, %d", a, d)
	}
}

func TestParallel(t *testing.T) {
	var pins ParallelPins
	data := make([]*gpiotest.Pin, 16)
	for i := range pins.D {
		data[i] = &gpiotest.Pin{N: fmt.Sprintf("DB%d", i), Num: i}
		pins.D[i] = data[i]
	}
	rs := &gpiotest.Pin{N: "RS"}
	wr := &gpiotest.Pin{N: "WR"}
	rd := &gpiotest.Pin{N: "RD"}
	cs := &gpiotest.Pin{N: "CS"}
	pins.RS, pins.WR, pins.RD, pins.CS = rs, wr, rd, cs

	b, err := NewParallel(&pins)
	if err != nil {
		t.Fatal(err)
	}
	if wr.L != gpio.High || rd.L != gpio.High || cs.L != gpio.High {
		t.Fatal("control lines not idle")
	}

	b.WriteReg(0x2A)
	if rs.L != gpio.Low {
		t.Error("register write must drive RS low")
	}
	b.WriteData(0xA5C3)
	if rs.L != gpio.High {
		t.Error("data write must drive RS high")
	}
	var got uint16
	for i, p := range data {
		if p.L == gpio.High {
			got |= 1 << uint(i)
		}
	}
	if got != 0xA5C3 {
		t.Errorf("bus lines = %#04x", got)
	}

	for i, p := range data {
		p.L = gpio.Level(0x9341&(1<<uint(i)) != 0)
	}
	if v := b.ReadData(); v != 0x9341 {
		t.Errorf("ReadData() = %#04x", v)
	}
	if b.Err() != nil {
		t.Fatal(b.Err())
	}

	pins.D[3] = nil
	if _, err := NewParallel(&pins); err == nil {
		t.Error("expected error for missing data line")
	}
}
