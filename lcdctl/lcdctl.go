// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdctl

import (
	"fmt"
	"time"

	"github.com/GermanBionicSystems/tftlcd/lcdbus"
)

// Style is how a controller expects its address window to be programmed.
type Style int

const (
	// SingleRegister controllers take the start and end of an axis as four
	// data bytes written to one register (MIPI DCS CASET/PASET).
	SingleRegister Style = iota
	// FourRegister controllers take each byte in its own register, at
	// base+0 to base+3.
	FourRegister
	// SSDStyle controllers (SSD1963) address GRAM in native landscape order;
	// the column axis is mirrored and the axis registers are swapped in
	// portrait.
	SSDStyle
)

func (s Style) String() string {
	switch s {
	case SingleRegister:
		return "SingleRegister"
	case FourRegister:
		return "FourRegister"
	case SSDStyle:
		return "SSDStyle"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ReadDecode is how a controller returns a GRAM pixel after the dummy read.
type ReadDecode int

const (
	// Split565 controllers return R and G in the first word and B in the
	// high bits of the second word.
	Split565 ReadDecode = iota
	// SingleWord controllers return the RGB565 value in one word.
	SingleWord
	// Packed controllers return the RGB565 value instead of the dummy word.
	Packed
)

// Step is one entry of an initialization table.
type Step struct {
	Reg  uint16
	Data []uint16
	// Delay is waited after the register was written.
	Delay time.Duration
}

// Descriptor is the capability record of one controller chip.
//
// Descriptors are immutable; the registry hands out pointers to shared
// values.
type Descriptor struct {
	ID   uint16
	Name string
	// Width and Height are the native panel size in portrait.
	Width, Height int
	Style         Style

	GRAMWrite    uint16
	SetColumn    uint16
	SetRow       uint16
	ReadGRAM     uint16
	MemoryAccess uint16
	DisplayOn    uint16
	DisplayOff   uint16

	// BGR is set when the memory access control register needs the BGR
	// order bit for the panel to show RGB colors.
	BGR  bool
	Read ReadDecode
	Init []Step
	// WriteTiming is the bus address and data setup applied once Init ran.
	WriteTiming [2]int
	// Backlight is set when the controller drives the backlight PWM.
	Backlight bool
}

func (d *Descriptor) String() string {
	if d == nil || d.ID == 0 {
		return "no panel"
	}
	return fmt.Sprintf("%s (%#04x) %dx%d", d.Name, d.ID, d.Width, d.Height)
}

// Present returns false for the NoPanel descriptor.
func (d *Descriptor) Present() bool {
	return d != nil && d.ID != 0
}

// RunInit plays the initialization table on b.
func (d *Descriptor) RunInit(b lcdbus.Bus, delay lcdbus.Delay) {
	if delay == nil {
		delay = lcdbus.Sleep
	}
	for _, s := range d.Init {
		lcdbus.WriteRegData(b, s.Reg, s.Data...)
		if s.Delay != 0 {
			lcdbus.Flush(b)
			delay(s.Delay)
		}
	}
	if t, ok := b.(lcdbus.TimingSetter); ok && d.WriteTiming != [2]int{} {
		lcdbus.Flush(b)
		t.SetWriteTiming(d.WriteTiming[0], d.WriteTiming[1])
	}
}
