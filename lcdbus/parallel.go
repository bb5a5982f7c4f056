// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdbus

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// ParallelPins lists the lines of a 16-bit Intel 8080 interface.
type ParallelPins struct {
	// D holds DB0 to DB15.
	D [16]gpio.PinIO
	// RS is high for data and low for a register index (often labelled DC).
	RS gpio.PinOut
	// WR and RD latch on their rising edge.
	WR gpio.PinOut
	RD gpio.PinOut
	// CS is optional.
	CS gpio.PinOut
}

// Parallel is a Bus bit-banging the 8080 interface on GPIO lines.
//
// It is slow; one word costs about 20 GPIO operations. Use it to bring up a
// panel or on hosts without a memory controller.
type Parallel struct {
	p      ParallelPins
	eh     errorHandler
	output bool
}

// NewParallel returns a Parallel bus. The control lines are driven to their
// idle state.
func NewParallel(p *ParallelPins) (*Parallel, error) {
	for i, d := range p.D {
		if d == nil {
			return nil, fmt.Errorf("lcdbus: missing data line DB%d", i)
		}
	}
	if p.RS == nil || p.WR == nil || p.RD == nil {
		return nil, errors.New("lcdbus: RS, WR and RD are required")
	}
	b := &Parallel{p: *p, output: true}
	b.eh.out(b.p.WR, gpio.High)
	b.eh.out(b.p.RD, gpio.High)
	b.csOut(gpio.High)
	if b.eh.err != nil {
		return nil, b.eh.err
	}
	return b, nil
}

func (b *Parallel) String() string {
	return "lcdbus.Parallel"
}

// WriteReg implements Bus.
func (b *Parallel) WriteReg(reg uint16) {
	b.write(gpio.Low, reg)
}

// WriteData implements Bus.
func (b *Parallel) WriteData(v uint16) {
	b.write(gpio.High, v)
}

// ReadData implements Bus.
func (b *Parallel) ReadData() uint16 {
	if b.eh.err != nil {
		return 0
	}
	if b.output {
		for _, d := range b.p.D {
			b.eh.in(d)
		}
		b.output = false
	}
	b.eh.out(b.p.RS, gpio.High)
	b.csOut(gpio.Low)
	b.eh.out(b.p.RD, gpio.Low)
	var v uint16
	for i, d := range b.p.D {
		if d.Read() == gpio.High {
			v |= 1 << uint(i)
		}
	}
	b.eh.out(b.p.RD, gpio.High)
	b.csOut(gpio.High)
	if b.eh.err != nil {
		return 0
	}
	return v
}

// Err implements Errer.
func (b *Parallel) Err() error {
	return b.eh.err
}

func (b *Parallel) write(rs gpio.Level, v uint16) {
	b.eh.out(b.p.RS, rs)
	b.csOut(gpio.Low)
	for i, d := range b.p.D {
		b.eh.out(d, v&(1<<uint(i)) != 0)
	}
	b.output = true
	b.eh.out(b.p.WR, gpio.Low)
	b.eh.out(b.p.WR, gpio.High)
	b.csOut(gpio.High)
}

func (b *Parallel) csOut(l gpio.Level) {
	if b.p.CS != nil {
		b.eh.out(b.p.CS, l)
	}
}

var _ Bus = &Parallel{}
