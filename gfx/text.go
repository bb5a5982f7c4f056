// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package gfx

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// Mode selects how Char and XNum paint a character cell.
type Mode uint8

const (
	// Overlay leaves background pixels of the cell untouched.
	Overlay Mode = 0x01
	// ZeroPad prints leading zeros instead of blanks. Only used by XNum.
	ZeroPad Mode = 0x80
)

// CellSize returns the size of a character cell of a monospaced face: the
// advance of '0' by the line height.
func CellSize(face font.Face) (w, h int) {
	adv, _ := face.GlyphAdvance('0')
	return adv.Ceil(), face.Metrics().Height.Ceil()
}

// Char draws one character in the cell whose top left corner is (x, y).
//
// The cell is painted column by column. Drawing stops at the bottom or the
// right edge of the canvas.
func Char(c Canvas, x, y int, r rune, face font.Face, mode Mode, fg, bg pixfmt.Color) {
	w, h := CellSize(face)
	dr, mask, mp, _, ok := face.Glyph(fixed.P(0, face.Metrics().Ascent.Ceil()), r)
	if !ok {
		dr = image.Rectangle{}
	}
	for col := 0; col < w; col++ {
		px := x + col
		for row := 0; row < h; row++ {
			py := y + row
			p := image.Pt(col, row)
			if p.In(dr) && opaque(mask.At(mp.X+col-dr.Min.X, mp.Y+row-dr.Min.Y)) {
				c.DrawPoint(px, py, fg)
			} else if mode&Overlay == 0 {
				c.DrawPoint(px, py, bg)
			}
			if py+1 >= c.Height() {
				return
			}
		}
		if px+1 >= c.Width() {
			return
		}
	}
}

func opaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a >= 0x8000
}

// String draws the printable ASCII prefix of s inside the w*h box at
// (x, y), wrapping to the next line at the right edge of the box.
func String(c Canvas, x, y, w, h int, s string, face font.Face, fg, bg pixfmt.Color) {
	cw, ch := CellSize(face)
	x0 := x
	w += x
	h += y
	for _, r := range s {
		if r < ' ' || r > '~' {
			break
		}
		if x >= w {
			x = x0
			y += ch
		}
		if y >= h {
			break
		}
		Char(c, x, y, r, face, 0, fg, bg)
		x += cw
	}
}

// Num draws the n low decimal digits of num, leading zeros blanked.
func Num(c Canvas, x, y int, num uint32, n int, face font.Face, fg, bg pixfmt.Color) {
	XNum(c, x, y, num, n, face, 0, fg, bg)
}

// XNum draws the n low decimal digits of num. Leading zeros are printed when
// mode has ZeroPad and blanked otherwise; the last digit is always printed.
func XNum(c Canvas, x, y int, num uint32, n int, face font.Face, mode Mode, fg, bg pixfmt.Color) {
	cw, _ := CellSize(face)
	lead := true
	for t := 0; t < n; t++ {
		d := rune(uint64(num)/pow10(n-t-1)%10) + '0'
		if lead && t < n-1 {
			if d == '0' {
				if mode&ZeroPad == 0 {
					d = ' '
				}
				Char(c, x+cw*t, y, d, face, mode&Overlay, fg, bg)
				continue
			}
			lead = false
		}
		Char(c, x+cw*t, y, d, face, mode&Overlay, fg, bg)
	}
}

func pow10(n int) uint64 {
	p := uint64(1)
	for ; n > 0 && p <= 1e10; n-- {
		p *= 10
	}
	return p
}

// Text draws s with a tinyfont bitmap font, (x, y) being the left end of
// the baseline.
func Text(c Canvas, x, y int, s string, f tinyfont.Fonter, col pixfmt.Color) {
	tinyfont.WriteLine(displayer{c}, f, int16(x), int16(y), s, col.TinyRGBA())
}

// FaceText draws s anti-aliased with face, (x, y) being the left end of the
// baseline. It returns the x coordinate following the last glyph.
func FaceText(c Canvas, x, y int, s string, face font.Face, col pixfmt.Color) int {
	d := font.Drawer{
		Dst:  canvasImage{c},
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return d.Dot.X.Ceil()
}

// GoRegular returns the Go Regular TrueType face at size points.
func GoRegular(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}

// displayer lets tinyfont draw on a Canvas.
type displayer struct {
	c Canvas
}

func (d displayer) Size() (x, y int16) {
	return int16(d.c.Width()), int16(d.c.Height())
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) {
	d.c.DrawPoint(int(x), int(y), pixfmt.FromRGBA(c))
}

func (d displayer) Display() error {
	return nil
}

// canvasImage lets x/image draw on a Canvas.
type canvasImage struct {
	c Canvas
}

func (i canvasImage) ColorModel() color.Model {
	return pixfmt.Model
}

func (i canvasImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.c.Width(), i.c.Height())
}

func (i canvasImage) At(x, y int) color.Color {
	return i.c.ReadPoint(x, y)
}

func (i canvasImage) Set(x, y int, c color.Color) {
	i.c.DrawPoint(x, y, pixfmt.Model.Convert(c).(pixfmt.Color))
}

var _ drivers.Displayer = displayer{}
