// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/conn/v3/display"
)

// TerminalOpts represents the options of a Terminal.
type TerminalOpts struct {
	// Width and Height of the emulated panel.
	Width, Height int
	// Columns is the width of the rendering in characters. Defaults to 80,
	// or Width when smaller.
	Columns int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
}

// Terminal is a panel emulator that prints to the console with ANSI colors.
//
// Each frame is downscaled to Columns characters, one block per character,
// rows halved to compensate for the shape of a character cell. Successive
// frames overwrite each other.
type Terminal struct {
	w       io.Writer
	palette ansi256.Palette
	pix     *image.NRGBA
	small   *image.NRGBA
	printed int
	buf     bytes.Buffer
}

// NewTerminal returns a Terminal that prints on stdout.
func NewTerminal(opts *TerminalOpts) *Terminal {
	return newTerminal(colorable.NewColorableStdout(), opts)
}

func newTerminal(w io.Writer, opts *TerminalOpts) *Terminal {
	if opts == nil {
		opts = &TerminalOpts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	cols := opts.Columns
	if cols <= 0 {
		cols = 80
	}
	cols = min(cols, opts.Width)
	rows := 0
	if opts.Width > 0 {
		rows = max(cols*opts.Height/opts.Width/2, 1)
	}
	t := &Terminal{
		w:       w,
		palette: *p,
		pix:     image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		small:   image.NewNRGBA(image.Rect(0, 0, cols, rows)),
	}
	draw.Draw(t.pix, t.pix.Bounds(), image.Black, image.Point{}, draw.Src)
	return t
}

func (t *Terminal) String() string {
	return fmt.Sprintf("Terminal{%s}", t.pix.Bounds().Size())
}

// Halt implements conn.Resource.
//
// It resets the colors and leaves the cursor below the last frame.
func (t *Terminal) Halt() error {
	_, err := io.WriteString(t.w, "\033[0m\n")
	return err
}

// ColorModel implements display.Drawer.
func (t *Terminal) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (t *Terminal) Bounds() image.Rectangle {
	return t.pix.Bounds()
}

// Draw implements display.Drawer.
func (t *Terminal) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Draw(t.pix, r, src, sp, draw.Src)
	return t.refresh()
}

func (t *Terminal) refresh() error {
	b := t.small.Bounds()
	if b.Empty() {
		return nil
	}
	xdraw.ApproxBiLinear.Scale(t.small, b, t.pix, t.pix.Bounds(), xdraw.Src, nil)
	t.buf.Reset()
	if t.printed != 0 {
		fmt.Fprintf(&t.buf, "\033[%dA", t.printed)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		t.buf.WriteString("\r\033[0m")
		for x := b.Min.X; x < b.Max.X; x++ {
			t.buf.WriteString(t.palette.Block(t.small.NRGBAAt(x, y)))
		}
		t.buf.WriteString("\033[0m\n")
	}
	t.printed = b.Dy()
	_, err := t.buf.WriteTo(t.w)
	return err
}

var _ display.Drawer = &Terminal{}
