// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package pixfmt

import (
	"image/color"
	"testing"
)

func TestRGB565(t *testing.T) {
	for _, tc := range []struct {
		name string
		c    Color
		want uint16
		back Color
	}{
		{name: "white", c: White, want: 0xFFFF, back: 0xFFF8FCF8},
		{name: "black", c: Black, want: 0x0000, back: 0xFF000000},
		{name: "red", c: Red, want: 0xF800, back: 0xFFF80000},
		{name: "green", c: Green, want: 0x07E0, back: 0xFF00FC00},
		{name: "blue", c: Blue, want: 0x001F, back: 0xFF0000F8},
		{name: "mixed", c: 0x123456, want: 0x11AA, back: 0xFF103450},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.RGB565(); got != tc.want {
				t.Errorf("RGB565() = %#04x, want %#04x", got, tc.want)
			}
			if got := FromRGB565(tc.want); got != tc.back {
				t.Errorf("FromRGB565() = %s, want %s", got, tc.back)
			}
			if got := RGB565.Quantize(tc.c); got != tc.back {
				t.Errorf("Quantize() = %s, want %s", got, tc.back)
			}
		})
	}
}

func TestFormatEncodeDecode(t *testing.T) {
	buf := make([]byte, 4)

	ARGB8888.Encode(buf, 0x80123456)
	if buf[0] != 0x56 || buf[3] != 0x80 {
		t.Fatalf("ARGB8888 layout = % x", buf)
	}
	if got := ARGB8888.Decode(buf); got != 0x80123456 {
		t.Errorf("ARGB8888.Decode() = %s", got)
	}

	RGB565.Encode(buf, Red)
	if buf[0] != 0x00 || buf[1] != 0xF8 {
		t.Fatalf("RGB565 layout = % x", buf[:2])
	}
	if got := RGB565.Decode(buf); got != 0xFFF80000 {
		t.Errorf("RGB565.Decode() = %s", got)
	}

	if ARGB8888.Size() != 4 || RGB565.Size() != 2 {
		t.Error("unexpected pixel sizes")
	}
}

func TestModel(t *testing.T) {
	got := Model.Convert(color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	if got != Color(0xFF010203) {
		t.Errorf("Model.Convert() = %v", got)
	}
	if got := Model.Convert(Cyan); got != Cyan {
		t.Errorf("Model.Convert(Cyan) = %v", got)
	}
	if got := FromRGBA(Magenta.TinyRGBA()); got != Magenta {
		t.Errorf("FromRGBA() = %v", got)
	}
}
