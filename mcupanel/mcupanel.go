// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcupanel

import (
	"fmt"

	"github.com/GermanBionicSystems/tftlcd/lcdbus"
	"github.com/GermanBionicSystems/tftlcd/lcdctl"
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// SSD1963 backlight PWM register.
const ssdSetPWM = 0xBE

// Opts holds the options of a Panel.
type Opts struct {
	// Delay is used by the initialization table. Defaults to lcdbus.Sleep.
	Delay lcdbus.Delay
}

// Panel is an MCU interface panel whose framebuffer lives in the
// controller.
//
// Panel is not safe for concurrent use.
type Panel struct {
	b     lcdbus.Bus
	d     *lcdctl.Descriptor
	addr  addresser
	delay lcdbus.Delay

	width, height int
	orient        lcdctl.Orientation
	scan          ScanDir
	// xcmd and ycmd are the registers the logical x and y axis map to.
	xcmd, ycmd uint16
}

// New returns a Panel driving controller d over b.
//
// Nothing is sent on the bus; call Init then SetOrientation.
func New(b lcdbus.Bus, d *lcdctl.Descriptor, opts *Opts) *Panel {
	p := &Panel{
		b:      b,
		d:      d,
		addr:   newAddresser(d.Style),
		delay:  lcdbus.Sleep,
		width:  d.Width,
		height: d.Height,
		orient: lcdctl.Portrait,
		xcmd:   d.SetColumn,
		ycmd:   d.SetRow,
	}
	if opts != nil && opts.Delay != nil {
		p.delay = opts.Delay
	}
	return p
}

func (p *Panel) String() string {
	return fmt.Sprintf("mcupanel{%s, %s, %dx%d}", p.d.Name, p.orient, p.width, p.height)
}

// Descriptor returns the controller driven.
func (p *Panel) Descriptor() *lcdctl.Descriptor {
	return p.d
}

// Width returns the current logical width.
func (p *Panel) Width() int {
	return p.width
}

// Height returns the current logical height.
func (p *Panel) Height() int {
	return p.height
}

// Orientation returns the current orientation.
func (p *Panel) Orientation() lcdctl.Orientation {
	return p.orient
}

// ScanDir returns the last scan direction requested.
func (p *Panel) ScanDir() ScanDir {
	return p.scan
}

// Init plays the controller initialization table and turns the controller
// driven backlight fully on.
func (p *Panel) Init() {
	p.d.RunInit(p.b, p.delay)
	p.SetBacklight(100)
	p.flush()
}

// SetOrientation selects portrait or landscape and resets the scan
// direction to DefaultScanDir.
func (p *Panel) SetOrientation(o lcdctl.Orientation) {
	p.orient = o
	p.width, p.height = p.d.Width, p.d.Height
	if o == lcdctl.Landscape {
		p.width, p.height = p.height, p.width
	}
	p.xcmd, p.ycmd = p.d.SetColumn, p.d.SetRow
	if p.d.Style == lcdctl.SSDStyle && o == lcdctl.Portrait {
		p.xcmd, p.ycmd = p.ycmd, p.xcmd
	}
	p.SetScanDir(DefaultScanDir)
}

// SetScanDir sets the GRAM scan direction.
//
// When the resulting order is column-major the stored width and height are
// swapped so that width >= height, otherwise so that width <= height. The
// address window is then reset to the whole panel using the post-swap
// size. SSD style controllers never swap.
func (p *Panel) SetScanDir(dir ScanDir) {
	p.scan = dir
	if (p.orient == lcdctl.Landscape) != (p.d.Style == lcdctl.SSDStyle) {
		dir = rotated[dir&7]
	}
	v := scanBits[dir&7]
	if p.d.BGR {
		v |= madctlBGR
	}
	lcdbus.WriteRegData(p.b, p.d.MemoryAccess, v)

	if p.d.Style != lcdctl.SSDStyle {
		if v&madctlMV != 0 {
			if p.width < p.height {
				p.width, p.height = p.height, p.width
			}
		} else if p.width > p.height {
			p.width, p.height = p.height, p.width
		}
	}
	p.addr.full(p)
	p.flush()
}

// SetCursor moves the GRAM pointer to (x, y).
func (p *Panel) SetCursor(x, y int) {
	p.addr.cursor(p, x, y)
}

// SetWindow restricts GRAM writes to the w*h rectangle at (sx, sy) and
// moves the pointer to its top left corner.
func (p *Panel) SetWindow(sx, sy, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	p.addr.window(p, sx, sy, w, h)
	p.flush()
}

// PrepareGRAMWrite selects the GRAM write register; WritePixel calls that
// follow store consecutive pixels.
func (p *Panel) PrepareGRAMWrite() {
	p.b.WriteReg(p.d.GRAMWrite)
}

// WritePixel stores one pixel at the GRAM pointer, truncated to RGB565.
func (p *Panel) WritePixel(c pixfmt.Color) {
	p.b.WriteData(c.RGB565())
}

// ReadPixel returns the pixel at (x, y).
//
// Coordinates outside the panel return 0 without touching the bus.
func (p *Panel) ReadPixel(x, y int) pixfmt.Color {
	if !p.in(x, y) {
		return 0
	}
	p.SetCursor(x, y)
	p.b.WriteReg(p.d.ReadGRAM)
	dummy := p.b.ReadData()
	if p.d.Read == lcdctl.Packed {
		return pixfmt.FromRGB565(dummy)
	}
	r := p.b.ReadData()
	if p.d.Read == lcdctl.SingleWord {
		return pixfmt.FromRGB565(r)
	}
	b := p.b.ReadData()
	return pixfmt.FromRGB565(decodeSplit565(r, b))
}

// decodeSplit565 recombines a pixel read as R:G bytes then B in the high
// byte of the following word.
func decodeSplit565(r, b uint16) uint16 {
	g := (r & 0xFF) << 8
	return (r>>11)<<11 | (g>>10)<<5 | b>>11
}

// DrawPoint writes one pixel. Coordinates outside the panel are ignored.
func (p *Panel) DrawPoint(x, y int, c pixfmt.Color) {
	if !p.in(x, y) {
		return
	}
	p.SetCursor(x, y)
	p.PrepareGRAMWrite()
	p.WritePixel(c)
	p.flush()
}

// Clear fills the whole panel.
func (p *Panel) Clear(c pixfmt.Color) {
	p.SetCursor(0, 0)
	p.PrepareGRAMWrite()
	v := c.RGB565()
	for i := p.width * p.height; i > 0; i-- {
		p.b.WriteData(v)
	}
	p.flush()
}

// Fill paints the rectangle with corners (sx, sy) and (ex, ey), inclusive.
// The rectangle is clipped to the panel.
func (p *Panel) Fill(sx, sy, ex, ey int, c pixfmt.Color) {
	x0, y0, x1, y1, ok := p.clip(sx, sy, ex, ey)
	if !ok {
		return
	}
	v := c.RGB565()
	for y := y0; y <= y1; y++ {
		p.SetCursor(x0, y)
		p.PrepareGRAMWrite()
		for x := x0; x <= x1; x++ {
			p.b.WriteData(v)
		}
	}
	p.flush()
}

// Blit copies colors, row-major with a stride of ex-sx+1, into the
// rectangle with corners (sx, sy) and (ex, ey), inclusive. The rectangle is
// clipped to the panel; missing source pixels are skipped.
func (p *Panel) Blit(sx, sy, ex, ey int, colors []pixfmt.Color) {
	x0, y0, x1, y1, ok := p.clip(sx, sy, ex, ey)
	if !ok {
		return
	}
	stride := ex - sx + 1
	for y := y0; y <= y1; y++ {
		row := (y - sy) * stride
		if row+x0-sx >= len(colors) {
			break
		}
		p.SetCursor(x0, y)
		p.PrepareGRAMWrite()
		for x := x0; x <= x1; x++ {
			i := row + x - sx
			if i >= len(colors) {
				break
			}
			p.b.WriteData(colors[i].RGB565())
		}
	}
	p.flush()
}

// DisplayOn turns the panel output on.
func (p *Panel) DisplayOn() {
	p.b.WriteReg(p.d.DisplayOn)
	p.flush()
}

// DisplayOff turns the panel output off. GRAM content is kept.
func (p *Panel) DisplayOff() {
	p.b.WriteReg(p.d.DisplayOff)
	p.flush()
}

// SetBacklight sets the controller driven backlight, from 0 to 100. It is a
// no-op on controllers without a PWM output.
func (p *Panel) SetBacklight(level int) {
	if !p.d.Backlight {
		return
	}
	if level < 0 {
		level = 0
	} else if level > 100 {
		level = 100
	}
	lcdbus.WriteRegData(p.b, ssdSetPWM, 0x05, uint16(level*255/100), 0x01, 0xFF, 0x00, 0x00)
	p.flush()
}

// Err returns the first bus error, if any.
func (p *Panel) Err() error {
	return lcdbus.Err(p.b)
}

func (p *Panel) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// clip returns the part of the inclusive rectangle inside the panel.
func (p *Panel) clip(sx, sy, ex, ey int) (x0, y0, x1, y1 int, ok bool) {
	x0, y0, x1, y1 = max(sx, 0), max(sy, 0), min(ex, p.width-1), min(ey, p.height-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func (p *Panel) flush() {
	_ = lcdbus.Flush(p.b)
}
