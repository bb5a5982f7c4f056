// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc

import (
	"fmt"

	"periph.io/x/host/v3/pmem"

	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// SDRAMBase is where the first framebuffer lives on the reference board.
const SDRAMBase = 0xC0000000

// Framebuffer is the memory a layer scans out, in the panel's native
// landscape order.
type Framebuffer struct {
	Format pixfmt.Format
	Width  int
	Height int
	Pix    []byte
	// Phys is the physical address of Pix[0], 0 for host memory.
	Phys uint64
}

// NewFramebuffer allocates a framebuffer in host memory.
func NewFramebuffer(w, h int, f pixfmt.Format) *Framebuffer {
	return &Framebuffer{Format: f, Width: w, Height: h, Pix: make([]byte, w*h*f.Size())}
}

// MapFramebuffer maps a framebuffer at physical address base.
//
// It normally requires root.
func MapFramebuffer(base uint64, w, h int, f pixfmt.Format) (*Framebuffer, error) {
	v, err := pmem.Map(base, w*h*f.Size())
	if err != nil {
		return nil, fmt.Errorf("ltdc: mapping framebuffer at %#x: %w", base, err)
	}
	return &Framebuffer{Format: f, Width: w, Height: h, Pix: v.Bytes(), Phys: v.PhysAddr()}, nil
}

// Stride returns the number of bytes per line.
func (f *Framebuffer) Stride() int {
	return f.Width * f.Format.Size()
}

// Size returns the number of bytes of the framebuffer.
func (f *Framebuffer) Size() int {
	return f.Stride() * f.Height
}

func (f *Framebuffer) offset(x, y int) int {
	return f.Format.Size() * (f.Width*y + x)
}

// plane returns the region starting at physical pixel (x, y) with offset
// pixels skipped between lines.
func (f *Framebuffer) plane(x, y, offset int) Plane {
	off := f.offset(x, y)
	p := Plane{Pix: f.Pix[off:], Format: f.Format, Offset: offset}
	if f.Phys != 0 {
		p.Addr = f.Phys + uint64(off)
	}
	return p
}

func (f *Framebuffer) check(w, h int) error {
	if f.Width != w || f.Height != h {
		return fmt.Errorf("ltdc: framebuffer is %dx%d, panel is %dx%d", f.Width, f.Height, w, h)
	}
	if len(f.Pix) < f.Size() {
		return fmt.Errorf("ltdc: framebuffer holds %d bytes, need %d", len(f.Pix), f.Size())
	}
	return nil
}
