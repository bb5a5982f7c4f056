// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc

import (
	"errors"
	"fmt"
	"image"

	"periph.io/x/host/v3/pmem"

	"github.com/GermanBionicSystems/tftlcd/lcdctl"
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// DefaultSpinLimit is how many times the transfer complete flag is polled
// before a block transfer is abandoned.
const DefaultSpinLimit = 0x1FFFFF

// Opts holds the options of a Dev.
type Opts struct {
	// Format of the framebuffers.
	Format pixfmt.Format
	// Layers is 1 or 2.
	Layers int
	// Framebuffers are used instead of host memory when set. There must be
	// one per layer, sized to the panel.
	Framebuffers []*Framebuffer
	// Staging holds the source of MemoryToMemory transfers when set, so a
	// hardware blitter can read it.
	Staging pmem.Mem
	// Engine defaults to a SoftEngine.
	Engine Engine
	// Blitter defaults to a SoftBlitter.
	Blitter Blitter
	// SpinLimit bounds the wait for a block transfer.
	SpinLimit int
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Format:    pixfmt.RGB565,
	Layers:    1,
	SpinLimit: DefaultSpinLimit,
}

// Stats counts abnormal events.
type Stats struct {
	// Timeouts is the number of block transfers that did not report
	// completion within the spin limit.
	Timeouts int
}

// Dev is a panel whose framebuffer is memory mapped and scanned out by the
// LTDC.
//
// Framebuffers are stored in the panel's native landscape order; portrait
// coordinates are rotated on every access.
//
// Dev is not safe for concurrent use.
type Dev struct {
	t       *Timing
	engine  Engine
	blit    Blitter
	spin    int
	fb      []*Framebuffer
	layers  []Layer
	staging pmem.Mem
	stage   []byte
	active  int
	orient  lcdctl.Orientation
	width   int
	height  int
	stats   Stats
}

// New configures the LTDC for panel id.
//
// The pixel clock is set when the timing carries one, then the raster
// timing and the layers are programmed with opaque layers covering the
// panel. The first layer is enabled and selected and the orientation is
// portrait.
func New(id uint16, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	t := LookupTiming(id)
	if t == nil {
		return nil, fmt.Errorf("ltdc: unknown panel %#04x", id)
	}
	n := opts.Layers
	if n == 0 {
		n = 1
	}
	if n < 1 || n > 2 {
		return nil, fmt.Errorf("ltdc: %d layers requested, 1 or 2 supported", n)
	}
	d := &Dev{
		t:       t,
		engine:  opts.Engine,
		blit:    opts.Blitter,
		spin:    opts.SpinLimit,
		staging: opts.Staging,
	}
	if d.engine == nil {
		d.engine = &SoftEngine{}
	}
	if d.blit == nil {
		d.blit = &SoftBlitter{}
	}
	if d.spin <= 0 {
		d.spin = DefaultSpinLimit
	}
	if len(opts.Framebuffers) != 0 {
		if len(opts.Framebuffers) != n {
			return nil, fmt.Errorf("ltdc: %d framebuffers for %d layers", len(opts.Framebuffers), n)
		}
		for _, fb := range opts.Framebuffers {
			if err := fb.check(t.Width, t.Height); err != nil {
				return nil, err
			}
		}
		d.fb = opts.Framebuffers
	} else {
		for i := 0; i < n; i++ {
			d.fb = append(d.fb, NewFramebuffer(t.Width, t.Height, opts.Format))
		}
	}

	if !t.Clock.IsZero() {
		if err := d.engine.SetPixelClock(t.Clock); err != nil {
			return nil, err
		}
	}
	if err := d.engine.Configure(t); err != nil {
		return nil, err
	}
	d.layers = make([]Layer, n)
	for i := range d.layers {
		d.layers[i] = Layer{
			Window:      image.Rect(0, 0, t.Width, t.Height),
			Alpha:       255,
			Blend1:      BlendPixelConstantAlpha,
			Blend2:      BlendOneMinusPixelConstantAlpha,
			Framebuffer: d.fb[i],
			Enabled:     i == 0,
		}
		if err := d.engine.ConfigureLayer(i, &d.layers[i]); err != nil {
			return nil, err
		}
	}
	if err := d.engine.Enable(true); err != nil {
		return nil, err
	}
	d.SetOrientation(lcdctl.Portrait)
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ltdc{%s, %s, %s}", d.t, d.fb[0].Format, d.orient)
}

// Timing returns the panel timing in use.
func (d *Dev) Timing() *Timing {
	return d.t
}

// Width returns the logical width.
func (d *Dev) Width() int {
	return d.width
}

// Height returns the logical height.
func (d *Dev) Height() int {
	return d.height
}

// Orientation returns the current orientation.
func (d *Dev) Orientation() lcdctl.Orientation {
	return d.orient
}

// Stats returns the event counters.
func (d *Dev) Stats() Stats {
	return d.stats
}

// Framebuffer returns the framebuffer of layer i.
func (d *Dev) Framebuffer(i int) *Framebuffer {
	if i < 0 || i >= len(d.fb) {
		return nil
	}
	return d.fb[i]
}

// Layer returns the layer drawing calls target.
func (d *Dev) Layer() int {
	return d.active
}

// SetOrientation selects portrait or landscape. Only the logical size
// changes; the framebuffer is not touched.
func (d *Dev) SetOrientation(o lcdctl.Orientation) {
	d.orient = o
	if o == lcdctl.Portrait {
		d.width, d.height = d.t.Height, d.t.Width
	} else {
		d.width, d.height = d.t.Width, d.t.Height
	}
}

// SelectLayer makes layer i the target of drawing calls. Invalid layers are
// ignored.
func (d *Dev) SelectLayer(i int) {
	if i >= 0 && i < len(d.fb) {
		d.active = i
	}
}

// Enable turns the scan out on or off.
func (d *Dev) Enable(on bool) error {
	return d.engine.Enable(on)
}

// EnableLayer shows or hides layer i.
func (d *Dev) EnableLayer(i int, on bool) error {
	if i < 0 || i >= len(d.layers) {
		return errors.New("ltdc: invalid layer")
	}
	d.layers[i].Enabled = on
	return d.engine.ConfigureLayer(i, &d.layers[i])
}

// SetLayerWindow restricts layer i to the w*h area at (x, y) of the
// native landscape screen.
func (d *Dev) SetLayerWindow(i, x, y, w, h int) error {
	if i < 0 || i >= len(d.layers) {
		return errors.New("ltdc: invalid layer")
	}
	r := image.Rect(x, y, x+w, y+h)
	if r.Empty() || !r.In(image.Rect(0, 0, d.t.Width, d.t.Height)) {
		return fmt.Errorf("ltdc: window %s outside the panel", r)
	}
	d.layers[i].Window = r
	return d.engine.ConfigureLayer(i, &d.layers[i])
}

// SetLayerAlpha sets the constant alpha of layer i.
func (d *Dev) SetLayerAlpha(i int, alpha uint8) error {
	if i < 0 || i >= len(d.layers) {
		return errors.New("ltdc: invalid layer")
	}
	d.layers[i].Alpha = alpha
	return d.engine.ConfigureLayer(i, &d.layers[i])
}

// physical returns the native coordinates of logical pixel (x, y).
func (d *Dev) physical(x, y int) (int, int) {
	if d.orient == lcdctl.Portrait {
		return y, d.t.Height - x - 1
	}
	return x, y
}

func (d *Dev) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < d.width && y < d.height
}

// DrawPoint writes one pixel. Coordinates outside the panel are ignored.
func (d *Dev) DrawPoint(x, y int, c pixfmt.Color) {
	if !d.in(x, y) {
		return
	}
	fb := d.fb[d.active]
	px, py := d.physical(x, y)
	fb.Format.Encode(fb.Pix[fb.offset(px, py):], c)
}

// ReadPoint returns the pixel at (x, y) as stored, 0 outside the panel.
func (d *Dev) ReadPoint(x, y int) pixfmt.Color {
	if !d.in(x, y) {
		return 0
	}
	fb := d.fb[d.active]
	px, py := d.physical(x, y)
	return fb.Format.Decode(fb.Pix[fb.offset(px, py):])
}

// rect returns the native rectangle of the logical inclusive rectangle,
// clipped to the panel.
func (d *Dev) rect(sx, sy, ex, ey int) (psx, psy, pex, pey int, ok bool) {
	x0, y0 := max(sx, 0), max(sy, 0)
	x1, y1 := min(ex, d.width-1), min(ey, d.height-1)
	if x0 > x1 || y0 > y1 {
		return 0, 0, 0, 0, false
	}
	if d.orient == lcdctl.Portrait {
		h := d.t.Height
		return y0, h - x1 - 1, y1, h - x0 - 1, true
	}
	return x0, y0, x1, y1, true
}

// Fill paints the rectangle with corners (sx, sy) and (ex, ey), inclusive,
// with one register to memory transfer. The rectangle is clipped to the
// panel.
func (d *Dev) Fill(sx, sy, ex, ey int, c pixfmt.Color) {
	psx, psy, pex, pey, ok := d.rect(sx, sy, ex, ey)
	if !ok {
		return
	}
	fb := d.fb[d.active]
	w := pex - psx + 1
	d.run(&Op{
		Mode:  RegisterToMemory,
		Width: w,
		Lines: pey - psy + 1,
		Dst:   fb.plane(psx, psy, fb.Width-w),
		Color: c,
	})
}

// Blit copies colors, row-major with a stride of ex-sx+1, into the
// rectangle with corners (sx, sy) and (ex, ey), inclusive, with one memory
// to memory transfer. The rectangle is clipped to the panel; pixels missing
// from colors keep their current value.
func (d *Dev) Blit(sx, sy, ex, ey int, colors []pixfmt.Color) {
	psx, psy, pex, pey, ok := d.rect(sx, sy, ex, ey)
	if !ok {
		return
	}
	fb := d.fb[d.active]
	w, h := pex-psx+1, pey-psy+1
	src := d.stageBuffer(w * h * pixfmt.ARGB8888.Size())
	stride := ex - sx + 1
	i := 0
	put := func(lx, ly int) {
		var c pixfmt.Color
		if j := (ly-sy)*stride + lx - sx; j < len(colors) {
			c = colors[j]
		} else {
			px, py := d.physical(lx, ly)
			c = fb.Format.Decode(fb.Pix[fb.offset(px, py):])
		}
		pixfmt.ARGB8888.Encode(src.Pix[i:], c)
		i += 4
	}
	// Stage in native order so the transfer is a plain rectangle copy.
	if d.orient == lcdctl.Portrait {
		for lx := d.t.Height - 1 - psy; lx >= d.t.Height-1-pey; lx-- {
			for ly := psx; ly <= pex; ly++ {
				put(lx, ly)
			}
		}
	} else {
		for ly := psy; ly <= pey; ly++ {
			for lx := psx; lx <= pex; lx++ {
				put(lx, ly)
			}
		}
	}
	d.run(&Op{
		Mode:  MemoryToMemory,
		Width: w,
		Lines: h,
		Dst:   fb.plane(psx, psy, fb.Width-w),
		Src:   src,
	})
}

// Clear fills the whole panel.
func (d *Dev) Clear(c pixfmt.Color) {
	d.Fill(0, 0, d.width-1, d.height-1, c)
}

// stageBuffer returns an ARGB8888 plane of n bytes.
func (d *Dev) stageBuffer(n int) Plane {
	p := Plane{Format: pixfmt.ARGB8888}
	if d.staging != nil {
		if b := d.staging.Bytes(); len(b) >= n {
			p.Pix, p.Addr = b[:n], d.staging.PhysAddr()
			return p
		}
	}
	if cap(d.stage) < n {
		d.stage = make([]byte, n)
	}
	p.Pix = d.stage[:n]
	return p
}

// run starts op and polls for its completion at most spin+1 times. On
// expiry the transfer is abandoned and counted.
func (d *Dev) run(op *Op) {
	d.blit.Start(op)
	for n := 0; !d.blit.Done(); n++ {
		if n >= d.spin {
			d.stats.Timeouts++
			break
		}
	}
	d.blit.Ack()
}
