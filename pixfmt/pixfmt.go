// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package pixfmt defines the colour value shared by every LCD backend and
// the in-memory pixel formats the direct-mapped framebuffers use.
//
// Colors are carried as 32-bit ARGB8888 values. Backends that store fewer
// bits truncate on write and widen with zero low bits on read, so a round
// trip through RGB565 is lossy:
//
//	FromRGB565(Color(0x123456).RGB565()) == 0xFF103450
package pixfmt

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

// Color is a non alpha-premultiplied 0xAARRGGBB value.
type Color uint32

// Common colors. The secondary shades are the RGB565 palette of the panel
// vendor widened to 8 bits per channel.
const (
	White          Color = 0xFFFFFFFF
	Black          Color = 0xFF000000
	Red            Color = 0xFFFF0000
	Green          Color = 0xFF00FF00
	Blue           Color = 0xFF0000FF
	Magenta        Color = 0xFFFF00FF
	Yellow         Color = 0xFFFFFF00
	Cyan           Color = 0xFF00FFFF
	Brown          Color = 0xFFB88800
	BrownRed       Color = 0xFFF88038
	Gray           Color = 0xFF808480
	DarkBlue       Color = 0xFF003878
	LightBlue      Color = 0xFF78ACE0
	GrayBlue       Color = 0xFF5088C0
	LightGreen     Color = 0xFF8080F8
	LightGray      Color = 0xFFC0C0C0
	LightGrayBlue  Color = 0xFFA0C888
	LightBrownBlue Color = 0xFF286090
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// TinyRGBA returns the color in the form tinygo drivers expect, which is
// color.RGBA with the channels taken verbatim.
func (c Color) TinyRGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// RGB565 truncates the color to 16 bits. Alpha is dropped.
func (c Color) RGB565() uint16 {
	return uint16((c>>8)&0xF800 | (c>>5)&0x07E0 | (c>>3)&0x001F)
}

func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// FromRGB565 widens a 5-6-5 value. The low bits of each channel are zero and
// alpha is opaque.
func FromRGB565(v uint16) Color {
	r := Color(v>>11) & 0x1F
	g := Color(v>>5) & 0x3F
	b := Color(v) & 0x1F
	return 0xFF000000 | r<<19 | g<<10 | b<<3
}

// FromNRGBA converts a color.NRGBA.
func FromNRGBA(n color.NRGBA) Color {
	return Color(n.A)<<24 | Color(n.R)<<16 | Color(n.G)<<8 | Color(n.B)
}

// FromRGBA converts a tinygo style color.RGBA, taking the channels verbatim.
func FromRGBA(n color.RGBA) Color {
	return Color(n.A)<<24 | Color(n.R)<<16 | Color(n.G)<<8 | Color(n.B)
}

// Model converts any color.Color to a Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	return FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
})

// Format is an in-memory pixel layout. Multi-byte pixels are stored little
// endian, which is the layout the LTDC and DMA2D engines scan.
type Format int

// Supported formats.
const (
	ARGB8888 Format = iota
	RGB565
)

func (f Format) String() string {
	switch f {
	case ARGB8888:
		return "ARGB8888"
	case RGB565:
		return "RGB565"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Size returns the number of bytes per pixel.
func (f Format) Size() int {
	if f == RGB565 {
		return 2
	}
	return 4
}

// Quantize returns what reading back c after storing it in f yields.
func (f Format) Quantize(c Color) Color {
	if f == RGB565 {
		return FromRGB565(c.RGB565())
	}
	return c
}

// Encode stores c at the start of dst. dst must hold at least Size() bytes.
func (f Format) Encode(dst []byte, c Color) {
	if f == RGB565 {
		binary.LittleEndian.PutUint16(dst, c.RGB565())
		return
	}
	binary.LittleEndian.PutUint32(dst, uint32(c))
}

// Decode reads the pixel at the start of src.
func (f Format) Decode(src []byte) Color {
	if f == RGB565 {
		return FromRGB565(binary.LittleEndian.Uint16(src))
	}
	return Color(binary.LittleEndian.Uint32(src))
}

var _ color.Color = Color(0)
