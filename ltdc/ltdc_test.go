// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/tftlcd/lcdctl"
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

func TestTimingRegisters(t *testing.T) {
	tm := LookupTiming(lcdctl.RGB7084)
	if tm == nil {
		t.Fatal("missing 0x7084")
	}
	want := Registers{
		HSync:              0,
		VSync:              0,
		AccumulatedHBP:     46,
		AccumulatedVBP:     23,
		AccumulatedActiveW: 846,
		AccumulatedActiveH: 503,
		TotalWidth:         1056,
		TotalHeight:        525,
	}
	r := tm.Registers()
	if diff := cmp.Diff(r, want); diff != "" {
		t.Fatalf("Registers() difference (-got +want):\n%s", diff)
	}
	if got := []uint32{r.SSCR(), r.BPCR(), r.AWCR(), r.TWCR()}; !cmp.Equal(got, []uint32{0, 0x002E0017, 0x034E01F7, 0x0420020D}) {
		t.Errorf("packed = %#x", got)
	}
	if f := tm.PixelClock(); f != 33*physic.MegaHertz {
		t.Errorf("PixelClock() = %s", f)
	}
	if f := tm.FrameRate(); f != 59354439*physic.MicroHertz {
		t.Errorf("FrameRate() = %s", f)
	}
}

func TestTimings(t *testing.T) {
	for _, tc := range []struct {
		id     uint16
		w, h   int
		clock  physic.Frequency
		invert bool
	}{
		{lcdctl.RGB4342, 480, 272, 9 * physic.MegaHertz, false},
		{lcdctl.RGB7084, 800, 480, 33 * physic.MegaHertz, false},
		{lcdctl.RGB7016, 1024, 600, 45 * physic.MegaHertz, false},
		{lcdctl.RGB7018, 1280, 800, 0, false},
		{lcdctl.RGB4384, 800, 480, 33 * physic.MegaHertz, false},
		{lcdctl.RGB1018, 1280, 800, 45 * physic.MegaHertz, true},
	} {
		tm := LookupTiming(tc.id)
		if tm == nil {
			t.Fatalf("missing %#04x", tc.id)
		}
		if tm.Width != tc.w || tm.Height != tc.h || tm.PixelClock() != tc.clock || tm.InvertPixelClock != tc.invert {
			t.Errorf("%s: got %dx%d %s invert=%t", tm, tm.Width, tm.Height, tm.PixelClock(), tm.InvertPixelClock)
		}
	}
	if LookupTiming(lcdctl.ILI9341) != nil {
		t.Error("MCU controller has a timing")
	}
	if !LookupTiming(lcdctl.RGB7018).Clock.IsZero() {
		t.Error("0x7018 must leave the clock alone")
	}
}

func newDev(t *testing.T, id uint16, opts *Opts) (*Dev, *SoftEngine) {
	e := &SoftEngine{}
	opts.Engine = e
	d, err := New(id, opts)
	if err != nil {
		t.Fatal(err)
	}
	return d, e
}

func TestNew(t *testing.T) {
	d, e := newDev(t, lcdctl.RGB7084, &Opts{Format: pixfmt.RGB565})
	if e.Clock != (PLLSAI{396, 3, 4}) || e.Timing.ID != lcdctl.RGB7084 || !e.Enabled {
		t.Fatalf("engine = %+v", e)
	}
	l := e.Layers[0]
	if l.Window != image.Rect(0, 0, 800, 480) || l.Alpha != 255 || l.DefaultAlpha != 0 || l.Blend1 != 6 || l.Blend2 != 7 || !l.Enabled {
		t.Errorf("layer = %+v", l)
	}
	if l.Framebuffer != d.Framebuffer(0) || l.Framebuffer.Format != pixfmt.RGB565 || len(l.Framebuffer.Pix) != 800*480*2 {
		t.Errorf("framebuffer = %+v", l.Framebuffer)
	}
	if d.Width() != 480 || d.Height() != 800 || d.Orientation() != lcdctl.Portrait {
		t.Errorf("got %s %dx%d", d.Orientation(), d.Width(), d.Height())
	}
	d.SetOrientation(lcdctl.Landscape)
	if d.Width() != 800 || d.Height() != 480 {
		t.Errorf("landscape is %dx%d", d.Width(), d.Height())
	}

	_, e = newDev(t, lcdctl.RGB7018, &Opts{})
	if !e.Clock.IsZero() {
		t.Errorf("clock set to %s", e.Clock)
	}
}

func TestNewErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		id   uint16
		opts Opts
	}{
		{"unknown panel", 0x1234, Opts{}},
		{"layers", lcdctl.RGB4342, Opts{Layers: 3}},
		{"framebuffer count", lcdctl.RGB4342, Opts{Layers: 2, Framebuffers: []*Framebuffer{NewFramebuffer(480, 272, pixfmt.RGB565)}}},
		{"framebuffer size", lcdctl.RGB4342, Opts{Framebuffers: []*Framebuffer{NewFramebuffer(272, 480, pixfmt.RGB565)}}},
		{"framebuffer memory", lcdctl.RGB4342, Opts{Framebuffers: []*Framebuffer{{Format: pixfmt.RGB565, Width: 480, Height: 272}}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.id, &tc.opts); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestDrawPointOffset(t *testing.T) {
	for _, tc := range []struct {
		orient lcdctl.Orientation
		offset int
	}{
		{lcdctl.Landscape, 4 * (800*2 + 3)},
		{lcdctl.Portrait, 4 * (800*(480-3-1) + 2)},
	} {
		t.Run(tc.orient.String(), func(t *testing.T) {
			d, _ := newDev(t, lcdctl.RGB7084, &Opts{Format: pixfmt.ARGB8888})
			d.SetOrientation(tc.orient)
			d.DrawPoint(3, 2, 0x80123456)
			fb := d.Framebuffer(0)
			if got := pixfmt.ARGB8888.Decode(fb.Pix[tc.offset:]); got != 0x80123456 {
				t.Fatalf("framebuffer holds %s", got)
			}
			if got := d.ReadPoint(3, 2); got != 0x80123456 {
				t.Fatalf("ReadPoint() = %s", got)
			}
		})
	}
}

func TestPointRGB565(t *testing.T) {
	d, _ := newDev(t, lcdctl.RGB4342, &Opts{Format: pixfmt.RGB565})
	d.DrawPoint(1, 1, 0x123456)
	if got := d.ReadPoint(1, 1); got != 0xFF103450 {
		t.Errorf("ReadPoint() = %s", got)
	}
	d.DrawPoint(272, 0, pixfmt.Red)
	d.DrawPoint(-1, 0, pixfmt.Red)
	if got := d.ReadPoint(272, 0); got != 0 {
		t.Errorf("out of range ReadPoint() = %s", got)
	}
}

// recordBlitter runs transfers on the CPU and keeps a copy of each.
type recordBlitter struct {
	SoftBlitter
	ops []Op
}

func (r *recordBlitter) Start(op *Op) {
	r.ops = append(r.ops, *op)
	r.SoftBlitter.Start(op)
}

func TestFillPortrait(t *testing.T) {
	b := &recordBlitter{}
	d, _ := newDev(t, lcdctl.RGB4342, &Opts{Format: pixfmt.RGB565, Blitter: b})
	d.Fill(10, 20, 30, 40, pixfmt.Red)
	red := pixfmt.RGB565.Quantize(pixfmt.Red)
	if len(b.ops) != 1 {
		t.Fatalf("%d transfers", len(b.ops))
	}
	op := b.ops[0]
	if op.Mode != RegisterToMemory || op.Width != 21 || op.Lines != 21 || op.Dst.Offset != 480-21 {
		t.Errorf("op = %s offset %d", &op, op.Dst.Offset)
	}
	// Native top left corner is (20, 272-30-1).
	fb := d.Framebuffer(0)
	if len(op.Dst.Pix) != len(fb.Pix)-fb.offset(20, 241) {
		t.Errorf("transfer starts at byte %d", len(fb.Pix)-len(op.Dst.Pix))
	}
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			inside := x >= 10 && x <= 30 && y >= 20 && y <= 40
			if got := d.ReadPoint(x, y) == red; got != inside {
				t.Fatalf("(%d, %d) = %s", x, y, d.ReadPoint(x, y))
			}
		}
	}
}

func TestFillClips(t *testing.T) {
	b := &recordBlitter{}
	d, _ := newDev(t, lcdctl.RGB4342, &Opts{Format: pixfmt.RGB565, Blitter: b})
	d.Fill(200, 0, 400, 10, pixfmt.Blue)
	op := b.ops[0]
	if op.Width != 11 || op.Lines != 72 {
		t.Errorf("op = %s", &op)
	}
	if d.ReadPoint(271, 10) != pixfmt.RGB565.Quantize(pixfmt.Blue) {
		t.Error("edge not filled")
	}
	d.Fill(300, 0, 400, 10, pixfmt.Blue)
	d.Fill(10, 10, 5, 20, pixfmt.Blue)
	if len(b.ops) != 1 {
		t.Errorf("%d transfers for empty rectangles", len(b.ops))
	}
}

func TestBlit(t *testing.T) {
	colors := make([]pixfmt.Color, 12)
	for i := range colors {
		colors[i] = 0xFF000000 | pixfmt.Color(i+1)<<8
	}
	for _, o := range []lcdctl.Orientation{lcdctl.Portrait, lcdctl.Landscape} {
		t.Run(o.String(), func(t *testing.T) {
			b := &recordBlitter{}
			d, _ := newDev(t, lcdctl.RGB4342, &Opts{Format: pixfmt.ARGB8888, Blitter: b})
			d.SetOrientation(o)
			d.Clear(pixfmt.White)
			// 4 wide, 4 tall, only 3 lines supplied.
			d.Blit(5, 6, 8, 9, colors)
			for i, c := range colors {
				if got := d.ReadPoint(5+i%4, 6+i/4); got != c {
					t.Errorf("(%d, %d) = %s, want %s", 5+i%4, 6+i/4, got, c)
				}
			}
			for x := 5; x <= 8; x++ {
				if got := d.ReadPoint(x, 9); got != pixfmt.White {
					t.Errorf("missing source overwrote (%d, 9) with %s", x, got)
				}
			}
			op := b.ops[len(b.ops)-1]
			if op.Mode != MemoryToMemory || op.Src.Format != pixfmt.ARGB8888 || op.Width*op.Lines != 16 {
				t.Errorf("op = %s", &op)
			}
		})
	}
}

func TestClear(t *testing.T) {
	b := &SoftBlitter{}
	d, _ := newDev(t, lcdctl.RGB4342, &Opts{Format: pixfmt.RGB565, Blitter: b})
	d.SetOrientation(lcdctl.Landscape)
	d.Clear(pixfmt.Green)
	if b.Ops != 1 {
		t.Fatalf("%d transfers", b.Ops)
	}
	for _, p := range []image.Point{{0, 0}, {479, 0}, {0, 271}, {479, 271}} {
		if got := d.ReadPoint(p.X, p.Y); got != pixfmt.RGB565.Quantize(pixfmt.Green) {
			t.Errorf("%s = %s", p, got)
		}
	}
}

// stuckBlitter never reports completion.
type stuckBlitter struct {
	polls, acks int
}

func (s *stuckBlitter) Start(*Op) {}
func (s *stuckBlitter) Done() bool {
	s.polls++
	return false
}
func (s *stuckBlitter) Ack() { s.acks++ }

func TestTransferTimeout(t *testing.T) {
	b := &stuckBlitter{}
	d, _ := newDev(t, lcdctl.RGB4342, &Opts{Blitter: b, SpinLimit: 10})
	d.Fill(0, 0, 5, 5, pixfmt.Red)
	if b.polls != 11 || b.acks != 1 {
		t.Errorf("polls = %d, acks = %d", b.polls, b.acks)
	}
	d.Clear(pixfmt.Red)
	if got := d.Stats().Timeouts; got != 2 {
		t.Errorf("Timeouts = %d", got)
	}
}

func TestLayers(t *testing.T) {
	d, e := newDev(t, lcdctl.RGB4342, &Opts{Format: pixfmt.RGB565, Layers: 2})
	if !e.Layers[0].Enabled || e.Layers[1].Enabled {
		t.Fatalf("enabled layers: %t %t", e.Layers[0].Enabled, e.Layers[1].Enabled)
	}
	d.SelectLayer(1)
	d.DrawPoint(0, 0, pixfmt.Red)
	d.SelectLayer(5)
	if d.Layer() != 1 {
		t.Fatalf("Layer() = %d", d.Layer())
	}
	d.SelectLayer(0)
	if got := d.ReadPoint(0, 0); got != pixfmt.Black {
		t.Errorf("layer 0 holds %s", got)
	}
	d.SelectLayer(1)
	if got := d.ReadPoint(0, 0); got != pixfmt.RGB565.Quantize(pixfmt.Red) {
		t.Errorf("layer 1 holds %s", got)
	}

	if err := d.EnableLayer(1, true); err != nil || !e.Layers[1].Enabled {
		t.Errorf("EnableLayer() = %v", err)
	}
	if err := d.SetLayerAlpha(1, 128); err != nil || e.Layers[1].Alpha != 128 {
		t.Errorf("SetLayerAlpha() = %v", err)
	}
	if err := d.SetLayerWindow(1, 10, 10, 100, 50); err != nil || e.Layers[1].Window != image.Rect(10, 10, 110, 60) {
		t.Errorf("SetLayerWindow() = %v", err)
	}
	if err := d.SetLayerWindow(1, 400, 0, 100, 50); err == nil {
		t.Error("window outside the panel accepted")
	}
	if err := d.EnableLayer(2, true); err == nil {
		t.Error("invalid layer accepted")
	}
	if err := d.Enable(false); err != nil || e.Enabled {
		t.Errorf("Enable(false) = %v", err)
	}
}

func TestStaging(t *testing.T) {
	m := &fakeMem{b: make([]byte, 64), phys: 0xC0200000}
	b := &recordBlitter{}
	d, _ := newDev(t, lcdctl.RGB4342, &Opts{Format: pixfmt.RGB565, Blitter: b, Staging: m})
	d.Blit(0, 0, 1, 1, []pixfmt.Color{pixfmt.Red, pixfmt.Green, pixfmt.Blue, pixfmt.White})
	if got := b.ops[0].Src.Addr; got != 0xC0200000 {
		t.Errorf("source address %#x", got)
	}
	// Too large for the staging memory, falls back to host memory.
	d.Blit(0, 0, 9, 9, nil)
	if got := b.ops[1].Src.Addr; got != 0 {
		t.Errorf("source address %#x", got)
	}
}

type fakeMem struct {
	b    []byte
	phys uint64
}

func (f *fakeMem) Close() error               { return nil }
func (f *fakeMem) Bytes() []byte              { return f.b }
func (f *fakeMem) AsPOD(pp interface{}) error { return nil }
func (f *fakeMem) PhysAddr() uint64           { return f.phys }
