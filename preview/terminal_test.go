// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maruel/ansi256"
)

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	d := newTerminal(&buf, &TerminalOpts{Width: 8, Height: 8, Columns: 4})
	if got := d.String(); got != "Terminal{(8,8)}" {
		t.Errorf("String() = %q", got)
	}
	red := color.NRGBA{255, 0, 0, 255}
	if err := d.Draw(d.Bounds(), image.NewUniform(red), image.Point{}); err != nil {
		t.Fatal(err)
	}
	line := "\r\033[0m" + strings.Repeat(ansi256.Default.Block(red), 4) + "\033[0m\n"
	if diff := cmp.Diff(buf.String(), line+line); diff != "" {
		t.Fatalf("difference (-got +want):\n%s", diff)
	}

	buf.Reset()
	if err := d.Draw(d.Bounds(), image.NewUniform(red), image.Point{}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(buf.String(), "\033[2A"+line+line); diff != "" {
		t.Fatalf("redraw difference (-got +want):\n%s", diff)
	}

	buf.Reset()
	if err := d.Halt(); err != nil || buf.String() != "\033[0m\n" {
		t.Errorf("Halt() = %v, wrote %q", err, buf.String())
	}
}

func TestTerminalSize(t *testing.T) {
	for _, tc := range []struct {
		opts TerminalOpts
		want image.Point
	}{
		{TerminalOpts{Width: 800, Height: 480}, image.Pt(80, 24)},
		{TerminalOpts{Width: 800, Height: 480, Columns: 40}, image.Pt(40, 12)},
		{TerminalOpts{Width: 16, Height: 2}, image.Pt(16, 1)},
		{TerminalOpts{}, image.Pt(0, 0)},
	} {
		d := newTerminal(&bytes.Buffer{}, &tc.opts)
		if got := d.small.Bounds().Size(); got != tc.want {
			t.Errorf("%+v: %s, want %s", tc.opts, got, tc.want)
		}
	}
}

func TestTerminalEmpty(t *testing.T) {
	for _, opts := range []*TerminalOpts{{}, nil} {
		var buf bytes.Buffer
		d := newTerminal(&buf, opts)
		if err := d.Draw(image.Rect(0, 0, 10, 10), image.Black, image.Point{}); err != nil {
			t.Fatal(err)
		}
		if buf.Len() != 0 {
			t.Errorf("wrote %q", buf.String())
		}
	}
}
