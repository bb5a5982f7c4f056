// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcupanel

import (
	"github.com/GermanBionicSystems/tftlcd/lcdbus"
	"github.com/GermanBionicSystems/tftlcd/lcdctl"
)

// addresser programs the GRAM pointer and the address window. There is one
// implementation per lcdctl.Style, picked when the Panel is created.
type addresser interface {
	cursor(p *Panel, x, y int)
	window(p *Panel, sx, sy, w, h int)
	// full sets the window to the whole panel after a scan direction change.
	full(p *Panel)
}

func newAddresser(s lcdctl.Style) addresser {
	switch s {
	case lcdctl.FourRegister:
		return fourRegister{}
	case lcdctl.SSDStyle:
		return ssd{}
	default:
		return singleRegister{}
	}
}

func hi(v int) uint16 { return uint16(v>>8) & 0xFF }
func lo(v int) uint16 { return uint16(v) & 0xFF }

// axis writes a start/end pair to one register.
func axis(b lcdbus.Bus, reg uint16, start, end int) {
	lcdbus.WriteRegData(b, reg, hi(start), lo(start), hi(end), lo(end))
}

type singleRegister struct{}

func (singleRegister) cursor(p *Panel, x, y int) {
	lcdbus.WriteRegData(p.b, p.xcmd, hi(x), lo(x))
	lcdbus.WriteRegData(p.b, p.ycmd, hi(y), lo(y))
}

func (singleRegister) window(p *Panel, sx, sy, w, h int) {
	axis(p.b, p.xcmd, sx, sx+w-1)
	axis(p.b, p.ycmd, sy, sy+h-1)
}

func (a singleRegister) full(p *Panel) {
	a.window(p, 0, 0, p.width, p.height)
}

// fourRegister spreads each byte of an axis over base+0 to base+3.
type fourRegister struct{}

func (fourRegister) cursor(p *Panel, x, y int) {
	lcdbus.WriteRegData(p.b, p.xcmd, hi(x))
	lcdbus.WriteRegData(p.b, p.xcmd+1, lo(x))
	lcdbus.WriteRegData(p.b, p.ycmd, hi(y))
	lcdbus.WriteRegData(p.b, p.ycmd+1, lo(y))
}

func (fourRegister) axis(b lcdbus.Bus, base uint16, start, end int) {
	lcdbus.WriteRegData(b, base, hi(start))
	lcdbus.WriteRegData(b, base+1, lo(start))
	lcdbus.WriteRegData(b, base+2, hi(end))
	lcdbus.WriteRegData(b, base+3, lo(end))
}

func (a fourRegister) window(p *Panel, sx, sy, w, h int) {
	a.axis(p.b, p.xcmd, sx, sx+w-1)
	a.axis(p.b, p.ycmd, sy, sy+h-1)
}

func (a fourRegister) full(p *Panel) {
	a.window(p, 0, 0, p.width, p.height)
}

// ssd addresses GRAM in the controller's native landscape order. In
// portrait the x axis runs on the row register and is mirrored.
type ssd struct{}

func (ssd) cursor(p *Panel, x, y int) {
	if p.orient == lcdctl.Portrait {
		x = p.width - 1 - x
		axis(p.b, p.xcmd, 0, x)
	} else {
		axis(p.b, p.xcmd, x, p.width-1)
	}
	axis(p.b, p.ycmd, y, p.height-1)
}

func (ssd) window(p *Panel, sx, sy, w, h int) {
	if p.orient == lcdctl.Portrait {
		sx = p.width - w - sx
	}
	singleRegister{}.window(p, sx, sy, w, h)
}

func (ssd) full(p *Panel) {
	singleRegister{}.full(p)
}
