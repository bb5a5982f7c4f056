// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

// broken draws on its Stream then fails.
type broken struct {
	*Stream
	err error
}

func (b *broken) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	b.Stream.Draw(r, src, sp)
	return b.err
}

func (b *broken) Halt() error {
	b.Stream.Halt()
	return b.err
}

func TestMirror(t *testing.T) {
	first := &broken{Stream: NewStream(&StreamOpts{Width: 4, Height: 4}), err: errors.New("first")}
	second := &broken{Stream: NewStream(&StreamOpts{Width: 8, Height: 8}), err: errors.New("second")}
	term := newTerminal(&bytes.Buffer{}, &TerminalOpts{Width: 4, Height: 4})
	m := Mirror{first, second, term}
	if got := m.Bounds(); got != image.Rect(0, 0, 4, 4) {
		t.Errorf("Bounds() = %s", got)
	}
	if m.ColorModel() != color.NRGBAModel {
		t.Error("unexpected ColorModel()")
	}
	if got, want := m.String(), "Mirror{Stream{(4,4), PNG}, Stream{(8,8), PNG}, Terminal{(4,4)}}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	white := color.NRGBA{255, 255, 255, 255}
	if err := m.Draw(image.Rect(0, 0, 2, 2), image.NewUniform(white), image.Point{}); err != first.err {
		t.Errorf("Draw() = %v", err)
	}
	for _, s := range []*Stream{first.Stream, second.Stream} {
		if got := s.pix.NRGBAAt(1, 1); got != white {
			t.Errorf("%s: %v", s, got)
		}
	}
	if got := term.pix.NRGBAAt(1, 1); got != white {
		t.Errorf("terminal: %v", got)
	}
	if err := m.Halt(); err != first.err {
		t.Errorf("Halt() = %v", err)
	}
}

func TestMirrorEmpty(t *testing.T) {
	var m Mirror
	if !m.Bounds().Empty() || m.Draw(image.Rect(0, 0, 1, 1), image.Black, image.Point{}) != nil || m.Halt() != nil {
		t.Error("empty Mirror misbehaves")
	}
}
