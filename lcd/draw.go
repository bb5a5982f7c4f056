// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd

import (
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"tinygo.org/x/drivers"

	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// ColorModel implements display.Drawer and draw.Image.
func (d *Dev) ColorModel() color.Model {
	return pixfmt.Model
}

// Bounds implements display.Drawer and draw.Image.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.Width(), d.Height())
}

// Draw implements display.Drawer.
//
// The intersection of r with the display is sent as a single block.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	delta := sp.Sub(r.Min)
	r = r.Intersect(d.Bounds())
	if r.Empty() {
		return nil
	}
	buf := make([]pixfmt.Color, 0, r.Dx()*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			buf = append(buf, toColor(src.At(x+delta.X, y+delta.Y)))
		}
	}
	d.Blit(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1, buf)
	return d.Err()
}

// Halt implements conn.Resource.
//
// It turns the panel output and the backlight off.
func (d *Dev) Halt() error {
	d.DisplayOff()
	d.Backlight(false)
	return d.Err()
}

// At implements draw.Image.
func (d *Dev) At(x, y int) color.Color {
	return d.ReadPoint(x, y)
}

// Set implements draw.Image.
func (d *Dev) Set(x, y int, c color.Color) {
	d.DrawPoint(x, y, toColor(c))
}

// Size implements drivers.Displayer.
func (d *Dev) Size() (x, y int16) {
	return int16(d.Width()), int16(d.Height())
}

// SetPixel implements drivers.Displayer.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	d.DrawPoint(int(x), int(y), pixfmt.FromRGBA(c))
}

// Display implements drivers.Displayer. Pixels are already on the panel,
// only the bus error is reported.
func (d *Dev) Display() error {
	return d.Err()
}

func toColor(c color.Color) pixfmt.Color {
	return pixfmt.Model.Convert(c).(pixfmt.Color)
}

var (
	_ display.Drawer    = &Dev{}
	_ draw.Image        = &Dev{}
	_ drivers.Displayer = &Dev{}
)
