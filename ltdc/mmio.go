// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc

import (
	"errors"
	"fmt"

	"periph.io/x/host/v3/pmem"

	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// Peripheral base addresses on STM32F42x/43x.
const (
	LTDCBase  = 0x40016800
	DMA2DBase = 0x4002B000
	RCCBase   = 0x40023800
)

// ltdcRegs is the LTDC register block. RM0090 16.7.
type ltdcRegs struct {
	_     [2]uint32
	SSCR  uint32
	BPCR  uint32
	AWCR  uint32
	TWCR  uint32
	GCR   uint32
	_     [2]uint32
	SRCR  uint32
	_     uint32
	BCCR  uint32
	_     uint32
	IER   uint32
	ISR   uint32
	ICR   uint32
	LIPCR uint32
	CPSR  uint32
	CDSR  uint32
	_     [14]uint32
	Layer [2]layerRegs
}

// layerRegs is one 0x80 bytes layer register block.
type layerRegs struct {
	CR     uint32
	WHPCR  uint32
	WVPCR  uint32
	CKCR   uint32
	PFCR   uint32
	CACR   uint32
	DCCR   uint32
	BFCR   uint32
	_      [2]uint32
	CFBAR  uint32
	CFBLR  uint32
	CFBLNR uint32
	_      [3]uint32
	CLUTWR uint32
	_      [15]uint32
}

const (
	gcrLTDCEN = 1 << 0
	gcrPCPOL  = 1 << 28
	gcrDEPOL  = 1 << 29
	gcrVSPOL  = 1 << 30
	gcrHSPOL  = 1 << 31
	srcrIMR   = 1 << 0
	layerLEN  = 1 << 0
)

// rccRegs covers the RCC registers up to DCKCFGR.
type rccRegs struct {
	CR         uint32
	_          [33]uint32
	PLLSAICFGR uint32
	DCKCFGR    uint32
}

const (
	rccPLLSAION  = 1 << 28
	rccPLLSAIRDY = 1 << 29
)

// dma2dRegs is the DMA2D register block. RM0090 11.5.
type dma2dRegs struct {
	CR      uint32
	ISR     uint32
	IFCR    uint32
	FGMAR   uint32
	FGOR    uint32
	BGMAR   uint32
	BGOR    uint32
	FGPFCCR uint32
	FGCOLR  uint32
	BGPFCCR uint32
	BGCOLR  uint32
	FGCMAR  uint32
	BGCMAR  uint32
	OPFCCR  uint32
	OCOLR   uint32
	OMAR    uint32
	OOR     uint32
	NLR     uint32
}

const (
	dma2dStart   = 1 << 0
	dma2dTCIF    = 1 << 1
	dma2dM2MPFC  = 1 << 16
	dma2dR2M     = 3 << 16
	dma2dModeMsk = 3 << 16
)

// formatCode returns the pixel format code shared by LTDC and DMA2D.
func formatCode(f pixfmt.Format) uint32 {
	if f == pixfmt.RGB565 {
		return 2
	}
	return 0
}

// MMIOEngine drives the LTDC through its memory mapped registers.
type MMIOEngine struct {
	r    *ltdcRegs
	rcc  *rccRegs
	spin int
	acc  Registers
}

// NewMMIOEngine maps the LTDC and RCC registers. It normally requires root.
func NewMMIOEngine() (*MMIOEngine, error) {
	var r *ltdcRegs
	if err := pmem.MapAsPOD(LTDCBase, &r); err != nil {
		return nil, fmt.Errorf("ltdc: %w", err)
	}
	var rcc *rccRegs
	if err := pmem.MapAsPOD(RCCBase, &rcc); err != nil {
		return nil, fmt.Errorf("ltdc: %w", err)
	}
	return newMMIOEngine(r, rcc), nil
}

func newMMIOEngine(r *ltdcRegs, rcc *rccRegs) *MMIOEngine {
	return &MMIOEngine{r: r, rcc: rcc, spin: DefaultSpinLimit}
}

// SetPixelClock implements Engine.
func (e *MMIOEngine) SetPixelClock(c PLLSAI) error {
	var div uint32
	switch c.Div {
	case 2:
		div = 0
	case 4:
		div = 1
	case 8:
		div = 2
	case 16:
		div = 3
	default:
		return fmt.Errorf("ltdc: invalid PLLSAI divider %d", c.Div)
	}
	if c.N < 50 || c.N > 432 || c.R < 2 || c.R > 7 {
		return fmt.Errorf("ltdc: %s out of range", c)
	}
	e.rcc.CR &^= rccPLLSAION
	for n := 0; e.rcc.CR&rccPLLSAIRDY != 0; n++ {
		if n > e.spin {
			return errors.New("ltdc: PLLSAI did not stop")
		}
	}
	q := e.rcc.PLLSAICFGR & (0xF << 24)
	e.rcc.PLLSAICFGR = uint32(c.R)<<28 | q | uint32(c.N)<<6
	e.rcc.DCKCFGR = e.rcc.DCKCFGR&^(3<<16) | div<<16
	e.rcc.CR |= rccPLLSAION
	for n := 0; e.rcc.CR&rccPLLSAIRDY == 0; n++ {
		if n > e.spin {
			return errors.New("ltdc: PLLSAI did not lock")
		}
	}
	return nil
}

// Configure implements Engine.
//
// Sync, data enable and the pixel clock are active low unless the timing
// inverts the pixel clock.
func (e *MMIOEngine) Configure(t *Timing) error {
	e.acc = t.Registers()
	e.r.SSCR = e.acc.SSCR()
	e.r.BPCR = e.acc.BPCR()
	e.r.AWCR = e.acc.AWCR()
	e.r.TWCR = e.acc.TWCR()
	gcr := e.r.GCR &^ (gcrPCPOL | gcrDEPOL | gcrVSPOL | gcrHSPOL)
	if t.InvertPixelClock {
		gcr |= gcrPCPOL
	}
	e.r.GCR = gcr
	e.r.BCCR = 0
	return nil
}

// ConfigureLayer implements Engine.
func (e *MMIOEngine) ConfigureLayer(i int, l *Layer) error {
	if i < 0 || i >= len(e.r.Layer) {
		return errors.New("ltdc: invalid layer")
	}
	fb := l.Framebuffer
	if fb == nil || fb.Phys == 0 {
		return errors.New("ltdc: layer framebuffer must be in physical memory")
	}
	lr := &e.r.Layer[i]
	w := l.Window
	lr.WHPCR = uint32(w.Min.X+e.acc.AccumulatedHBP+1) | uint32(w.Max.X+e.acc.AccumulatedHBP)<<16
	lr.WVPCR = uint32(w.Min.Y+e.acc.AccumulatedVBP+1) | uint32(w.Max.Y+e.acc.AccumulatedVBP)<<16
	lr.PFCR = formatCode(fb.Format)
	lr.CACR = uint32(l.Alpha)
	lr.DCCR = uint32(l.DefaultAlpha)<<24 | uint32(l.Background)&0xFFFFFF
	lr.BFCR = uint32(l.Blend1)<<8 | uint32(l.Blend2)
	lr.CFBAR = uint32(fb.Phys)
	lr.CFBLR = uint32(fb.Stride())<<16 | uint32(w.Dx()*fb.Format.Size()+3)
	lr.CFBLNR = uint32(w.Dy())
	if l.Enabled {
		lr.CR |= layerLEN
	} else {
		lr.CR &^= layerLEN
	}
	e.r.SRCR = srcrIMR
	return nil
}

// Enable implements Engine.
func (e *MMIOEngine) Enable(on bool) error {
	if on {
		e.r.GCR |= gcrLTDCEN
	} else {
		e.r.GCR &^= gcrLTDCEN
	}
	return nil
}

// MMIOBlitter drives the DMA2D through its memory mapped registers.
//
// Transfers touching memory without a physical address run on the CPU.
type MMIOBlitter struct {
	r   *dma2dRegs
	cpu bool
}

// NewMMIOBlitter maps the DMA2D registers. It normally requires root.
func NewMMIOBlitter() (*MMIOBlitter, error) {
	var r *dma2dRegs
	if err := pmem.MapAsPOD(DMA2DBase, &r); err != nil {
		return nil, fmt.Errorf("ltdc: %w", err)
	}
	return &MMIOBlitter{r: r}, nil
}

// Start implements Blitter.
func (b *MMIOBlitter) Start(op *Op) {
	if op.Dst.Addr == 0 || (op.Mode == MemoryToMemory && op.Src.Addr == 0) {
		run(op)
		b.cpu = true
		return
	}
	b.r.CR &^= dma2dStart
	if op.Mode == MemoryToMemory {
		b.r.CR = b.r.CR&^dma2dModeMsk | dma2dM2MPFC
		b.r.FGMAR = uint32(op.Src.Addr)
		b.r.FGOR = uint32(op.Src.Offset)
		b.r.FGPFCCR = formatCode(op.Src.Format)
	} else {
		b.r.CR = b.r.CR&^dma2dModeMsk | dma2dR2M
		if op.Dst.Format == pixfmt.RGB565 {
			b.r.OCOLR = uint32(op.Color.RGB565())
		} else {
			b.r.OCOLR = uint32(op.Color)
		}
	}
	b.r.OPFCCR = formatCode(op.Dst.Format)
	b.r.OOR = uint32(op.Dst.Offset)
	b.r.OMAR = uint32(op.Dst.Addr)
	b.r.NLR = uint32(op.Lines) | uint32(op.Width)<<16
	b.r.CR |= dma2dStart
}

// Done implements Blitter.
func (b *MMIOBlitter) Done() bool {
	return b.cpu || b.r.ISR&dma2dTCIF != 0
}

// Ack implements Blitter.
func (b *MMIOBlitter) Ack() {
	if b.cpu {
		b.cpu = false
		return
	}
	b.r.IFCR |= dma2dTCIF
}

var (
	_ Engine  = &MMIOEngine{}
	_ Blitter = &MMIOBlitter{}
)
