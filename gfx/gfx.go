// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package gfx draws lines, circles and text out of the two primitives every
// panel backend provides: single points and solid rectangles.
//
// The shapes reproduce the panel firmware pixel for pixel, including its
// quirks: Line paints its first point twice and FillCircle uses a 0.707
// approximation to split the disc into spans.
package gfx

import (
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// Canvas is the surface drawn on. *lcd.Dev implements it.
type Canvas interface {
	DrawPoint(x, y int, c pixfmt.Color)
	ReadPoint(x, y int) pixfmt.Color
	// Fill paints the rectangle with corners (sx, sy) and (ex, ey),
	// inclusive.
	Fill(sx, sy, ex, ey int, c pixfmt.Color)
	Width() int
	Height() int
}

// Line draws from (x1, y1) to (x2, y2), both ends included.
func Line(c Canvas, x1, y1, x2, y2 int, col pixfmt.Color) {
	dx, incx := span(x2 - x1)
	dy, incy := span(y2 - y1)
	distance := max(dx, dy)
	row, colm := x1, y1
	xerr, yerr := 0, 0
	for t := 0; t <= distance+1; t++ {
		c.DrawPoint(row, colm, col)
		xerr += dx
		yerr += dy
		if xerr > distance {
			xerr -= distance
			row += incx
		}
		if yerr > distance {
			yerr -= distance
			colm += incy
		}
	}
}

// span returns the magnitude and direction of d.
func span(d int) (int, int) {
	switch {
	case d > 0:
		return d, 1
	case d < 0:
		return -d, -1
	}
	return 0, 0
}

// HLine draws n points to the right of (x, y). It does nothing when n is 0
// or the start lies beyond the canvas.
func HLine(c Canvas, x, y, n int, col pixfmt.Color) {
	if n <= 0 || x > c.Width() || y > c.Height() {
		return
	}
	c.Fill(x, y, x+n-1, y, col)
}

// Rect outlines the rectangle with corners (x1, y1) and (x2, y2).
func Rect(c Canvas, x1, y1, x2, y2 int, col pixfmt.Color) {
	Line(c, x1, y1, x2, y1, col)
	Line(c, x1, y1, x1, y2, col)
	Line(c, x1, y2, x2, y2, col)
	Line(c, x2, y1, x2, y2, col)
}

// Circle outlines a circle of radius r centered on (x0, y0).
func Circle(c Canvas, x0, y0, r int, col pixfmt.Color) {
	a, b := 0, r
	di := 3 - r<<1
	for a <= b {
		c.DrawPoint(x0+a, y0-b, col)
		c.DrawPoint(x0+b, y0-a, col)
		c.DrawPoint(x0+b, y0+a, col)
		c.DrawPoint(x0+a, y0+b, col)
		c.DrawPoint(x0-a, y0+b, col)
		c.DrawPoint(x0-b, y0+a, col)
		c.DrawPoint(x0-a, y0-b, col)
		c.DrawPoint(x0-b, y0-a, col)
		a++
		if di < 0 {
			di += 4*a + 6
		} else {
			di += 10 + 4*(a-b)
			b--
		}
	}
}

// FillCircle paints a disc of radius r centered on (x, y) as horizontal
// spans.
func FillCircle(c Canvas, x, y, r int, col pixfmt.Color) {
	imax := r*707/1000 + 1
	sqmax := r*r + r/2
	xr := r
	HLine(c, x-r, y, 2*r, col)
	for i := 1; i <= imax; i++ {
		if i*i+xr*xr > sqmax {
			// Outer spans.
			if xr > imax {
				HLine(c, x-i+1, y+xr, 2*(i-1), col)
				HLine(c, x-i+1, y-xr, 2*(i-1), col)
			}
			xr--
		}
		HLine(c, x-xr, y+i, 2*xr, col)
		HLine(c, x-xr, y-i, 2*xr, col)
	}
}
