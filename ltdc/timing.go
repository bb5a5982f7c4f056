// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc

import (
	"fmt"

	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/tftlcd/lcdctl"
)

// PLLInput is the PLLSAI input frequency: a 25MHz HSE divided by 25.
const PLLInput = physic.MegaHertz

// PLLSAI configures the PLL generating the pixel clock.
//
// The clock is input*N/R/Div. The zero value leaves the clock untouched.
type PLLSAI struct {
	N   int
	R   int
	Div int
}

// IsZero returns true when no clock change is requested.
func (p PLLSAI) IsZero() bool {
	return p.N == 0 || p.R == 0 || p.Div == 0
}

// Frequency returns the pixel clock generated from in.
func (p PLLSAI) Frequency(in physic.Frequency) physic.Frequency {
	if p.IsZero() {
		return 0
	}
	return in * physic.Frequency(p.N) / physic.Frequency(p.R*p.Div)
}

func (p PLLSAI) String() string {
	if p.IsZero() {
		return "PLLSAI{unset}"
	}
	return fmt.Sprintf("PLLSAI{N:%d R:%d Div:%d}", p.N, p.R, p.Div)
}

// Timing is the raster timing of an RGB interface panel.
//
// All values are in pixel clocks for the horizontal ones and lines for the
// vertical ones.
type Timing struct {
	ID     uint16
	Width  int
	Height int
	HSW    int // horizontal sync width
	VSW    int // vertical sync width
	HBP    int // horizontal back porch
	VBP    int // vertical back porch
	HFP    int // horizontal front porch
	VFP    int // vertical front porch
	Clock  PLLSAI
	// InvertPixelClock samples data on the falling edge.
	InvertPixelClock bool
}

func (t *Timing) String() string {
	return fmt.Sprintf("%#04x %dx%d@%s", t.ID, t.Width, t.Height, t.PixelClock())
}

// PixelClock returns the pixel clock, 0 when the clock is not set.
func (t *Timing) PixelClock() physic.Frequency {
	return t.Clock.Frequency(PLLInput)
}

// FrameRate returns the refresh rate the timing produces.
func (t *Timing) FrameRate() physic.Frequency {
	r := t.Registers()
	n := physic.Frequency(r.TotalWidth+1) * physic.Frequency(r.TotalHeight+1)
	if n <= 0 {
		return 0
	}
	return t.PixelClock() / n
}

// Registers are the accumulated values the raster engine is programmed
// with.
type Registers struct {
	HSync, VSync                           int
	AccumulatedHBP, AccumulatedVBP         int
	AccumulatedActiveW, AccumulatedActiveH int
	TotalWidth, TotalHeight                int
}

// Registers returns the accumulated timing values.
func (t *Timing) Registers() Registers {
	return Registers{
		HSync:              t.HSW - 1,
		VSync:              t.VSW - 1,
		AccumulatedHBP:     t.HSW + t.HBP - 1,
		AccumulatedVBP:     t.VSW + t.VBP - 1,
		AccumulatedActiveW: t.HSW + t.HBP + t.Width - 1,
		AccumulatedActiveH: t.VSW + t.VBP + t.Height - 1,
		TotalWidth:         t.HSW + t.HBP + t.Width + t.HFP - 1,
		TotalHeight:        t.VSW + t.VBP + t.Height + t.VFP - 1,
	}
}

// SSCR returns the synchronization size register.
func (r Registers) SSCR() uint32 { return pack(r.HSync, r.VSync) }

// BPCR returns the back porch register.
func (r Registers) BPCR() uint32 { return pack(r.AccumulatedHBP, r.AccumulatedVBP) }

// AWCR returns the active width register.
func (r Registers) AWCR() uint32 { return pack(r.AccumulatedActiveW, r.AccumulatedActiveH) }

// TWCR returns the total width register.
func (r Registers) TWCR() uint32 { return pack(r.TotalWidth, r.TotalHeight) }

func pack(h, v int) uint32 {
	return uint32(h&0xFFF)<<16 | uint32(v&0x7FF)
}

// Timings lists the supported panels.
//
// RGB7018 has no known timing; its entry is all zero and the pixel clock
// is left as is.
var Timings = []Timing{
	{ID: lcdctl.RGB4342, Width: 480, Height: 272, HSW: 1, VSW: 1, HBP: 40, VBP: 8, HFP: 5, VFP: 8, Clock: PLLSAI{288, 4, 8}},
	{ID: lcdctl.RGB7084, Width: 800, Height: 480, HSW: 1, VSW: 1, HBP: 46, VBP: 23, HFP: 210, VFP: 22, Clock: PLLSAI{396, 3, 4}},
	{ID: lcdctl.RGB7016, Width: 1024, Height: 600, HSW: 20, VSW: 3, HBP: 140, VBP: 20, HFP: 160, VFP: 12, Clock: PLLSAI{360, 2, 4}},
	{ID: lcdctl.RGB7018, Width: 1280, Height: 800},
	{ID: lcdctl.RGB4384, Width: 800, Height: 480, HSW: 48, VSW: 3, HBP: 88, VBP: 32, HFP: 40, VFP: 13, Clock: PLLSAI{396, 3, 4}},
	{ID: lcdctl.RGB1018, Width: 1280, Height: 800, HSW: 10, VSW: 3, HBP: 140, VBP: 10, HFP: 10, VFP: 10, Clock: PLLSAI{360, 2, 4}, InvertPixelClock: true},
}

// LookupTiming returns the timing of panel id, nil if unknown.
func LookupTiming(id uint16) *Timing {
	for i := range Timings {
		if Timings[i].ID == id {
			return &Timings[i]
		}
	}
	return nil
}
