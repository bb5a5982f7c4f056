// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdctl

import (
	"time"

	"github.com/GermanBionicSystems/tftlcd/lcdbus"
)

// Probe is one step of the identification chain.
type Probe struct {
	// ID is the controller the probe confirms.
	ID uint16
	// Reg is the ID register. Dummy words are discarded before the high and
	// low ID bytes are read.
	Reg   uint16
	Dummy int
	// Alias is a raw ID reported by a chip compatible with ID, 0 if none.
	Alias uint16
	// Unlock is written before the ID register is read.
	Unlock []Step
	// LowReg, when set, holds the low ID byte while Reg holds the high one.
	// Settle is waited between the two reads.
	LowReg uint16
	Settle time.Duration
}

// read returns the raw ID the probe sees. Only the low byte of the second ID
// word is significant.
func (p *Probe) read(b lcdbus.Bus, delay lcdbus.Delay) uint16 {
	for _, s := range p.Unlock {
		lcdbus.WriteRegData(b, s.Reg, s.Data...)
	}
	if p.LowReg != 0 {
		hi := lcdbus.ReadReg(b, p.Reg)
		lcdbus.Flush(b)
		delay(p.Settle)
		lo := lcdbus.ReadReg(b, p.LowReg)
		return hi<<8 | lo&0xFF
	}
	b.WriteReg(p.Reg)
	for i := 0; i < p.Dummy; i++ {
		b.ReadData()
	}
	hi := b.ReadData()
	lo := b.ReadData()
	return hi<<8 | lo&0xFF
}

// match returns true when raw identifies the probe's controller.
func (p *Probe) match(raw uint16) bool {
	return raw == p.ID || (p.Alias != 0 && raw == p.Alias)
}

// Probes is the identification chain, in the order it is run. A probe only
// accepts its own controller; a miss moves on to the next one.
var Probes = []Probe{
	{ID: ILI9341, Reg: 0xD3, Dummy: 2},
	{ID: ST7789, Reg: 0x04, Dummy: 2, Alias: 0x8552},
	{ID: NT35310, Reg: 0xD4, Dummy: 2},
	{ID: ST7796, Reg: 0xD3, Dummy: 2},
	{
		ID: NT35510,
		Unlock: []Step{
			{Reg: 0xF000, Data: []uint16{0x55}},
			{Reg: 0xF001, Data: []uint16{0xAA}},
			{Reg: 0xF002, Data: []uint16{0x52}},
			{Reg: 0xF003, Data: []uint16{0x08}},
			{Reg: 0xF004, Data: []uint16{0x01}},
		},
		Reg:    0xC500,
		LowReg: 0xC501,
		Settle: 5 * time.Millisecond,
	},
	{ID: ILI9806, Reg: 0xD3, Dummy: 2},
	{ID: SSD1963, Reg: 0xA1, Dummy: 1, Alias: 0x5761},
}

// Result is the outcome of Detect.
type Result struct {
	// Descriptor is the selected controller, NoPanel when nothing matched.
	Descriptor *Descriptor
	// Step is the index in Probes that matched, -1 when nothing did.
	Step int
	// Raw is the ID read by the matching probe, or by the last one.
	Raw uint16
}

// Detect runs the identification chain once on b.
//
// delay is used for settle times between reads. There is no retry; a
// controller that does not answer any probe yields NoPanel.
func Detect(b lcdbus.Bus, delay lcdbus.Delay) Result {
	if delay == nil {
		delay = lcdbus.Sleep
	}
	r := Result{Descriptor: NoPanel, Step: -1}
	for i := range Probes {
		p := &Probes[i]
		r.Raw = p.read(b, delay)
		if p.match(r.Raw) {
			r.Descriptor = Lookup(p.ID)
			r.Step = i
			return r
		}
	}
	return r
}

// Identify runs Detect and returns the selected descriptor.
func Identify(b lcdbus.Bus, delay lcdbus.Delay) *Descriptor {
	return Detect(b, delay).Descriptor
}
