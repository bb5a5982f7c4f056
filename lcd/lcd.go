// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcd

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"

	"github.com/GermanBionicSystems/tftlcd/lcdbus"
	"github.com/GermanBionicSystems/tftlcd/lcdctl"
	"github.com/GermanBionicSystems/tftlcd/ltdc"
	"github.com/GermanBionicSystems/tftlcd/mcupanel"
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// Opts holds the wiring of the display.
type Opts struct {
	// Bus is the MCU interface. Leave nil when only an RGB panel can be
	// connected.
	Bus lcdbus.Bus
	// Straps are the ID pins M0, M1 and M2 of an RGB panel. RGB detection is
	// skipped unless all three are set.
	Straps [3]gpio.PinIn
	// Backlight is the backlight enable line, optional.
	Backlight gpio.PinOut
	// LTDC configures the RGB panel. Defaults to ltdc.DefaultOpts.
	LTDC *ltdc.Opts
	// Delay is used during identification and initialization. Defaults to
	// lcdbus.Sleep.
	Delay lcdbus.Delay
	// Logger reports what was detected. Nothing is logged when nil.
	Logger *log.Logger
}

// Stats counts abnormal events.
type Stats struct {
	// Timeouts is the number of block transfers abandoned by the RGB
	// backend.
	Timeouts int
}

// Dev is the display, whichever backend drives it.
//
// A Dev without a detected panel is inert: drawing calls do nothing,
// Width and Height are 0 and ReadPoint returns 0.
//
// Dev is not safe for concurrent use; serialize calls, including those
// made through the image adapters.
type Dev struct {
	b      backend
	id     uint16
	name   string
	panel  *mcupanel.Panel
	rgb    *ltdc.Dev
	bl     gpio.PinOut
	logger *log.Logger
}

// New identifies the panel and brings it up.
//
// An RGB panel announced on the strap pins wins; otherwise the bus
// controllers are probed. The display ends up in landscape, backlight on,
// cleared to white.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	d := &Dev{b: none{}, name: "none", bl: opts.Backlight, logger: opts.Logger}
	delay := opts.Delay
	if delay == nil {
		delay = lcdbus.Sleep
	}
	if id := d.readStraps(opts.Straps); id != 0 {
		if r, err := ltdc.New(id, opts.LTDC); err != nil {
			d.logf("lcd: RGB panel %#04x: %v", id, err)
		} else {
			d.rgb = r
			d.b = rgb{r}
			d.id = id
			d.name = fmt.Sprintf("RGB %#04x %dx%d", id, r.Timing().Width, r.Timing().Height)
			d.logf("lcd: %s", r)
		}
	}
	if d.rgb == nil && opts.Bus != nil {
		res := lcdctl.Detect(opts.Bus, delay)
		if res.Descriptor.Present() {
			p := mcupanel.New(opts.Bus, res.Descriptor, &mcupanel.Opts{Delay: delay})
			p.Init()
			d.panel = p
			d.b = mcu{p}
			d.id = res.Descriptor.ID
			d.name = res.Descriptor.String()
			d.logf("lcd: %s found by probe %d", res.Descriptor, res.Step)
		} else {
			d.logf("lcd: no controller answered, last ID read %#04x", res.Raw)
		}
	}
	d.SetOrientation(lcdctl.Landscape)
	d.Backlight(true)
	d.Clear(pixfmt.White)
	return d
}

func (d *Dev) readStraps(pins [3]gpio.PinIn) uint16 {
	for _, p := range pins {
		if p == nil || p == gpio.INVALID {
			return 0
		}
	}
	id, err := lcdctl.ReadStraps(pins[0], pins[1], pins[2])
	if err != nil {
		d.logf("lcd: %v", err)
		return 0
	}
	return id
}

func (d *Dev) String() string {
	return "lcd{" + d.name + "}"
}

// ID returns the detected panel or controller ID, 0 when none.
func (d *Dev) ID() uint16 {
	return d.id
}

// DirectMapped returns true when the framebuffer is memory mapped.
func (d *Dev) DirectMapped() bool {
	return d.rgb != nil
}

// Panel returns the MCU backend, nil unless a bus controller was detected.
func (d *Dev) Panel() *mcupanel.Panel {
	return d.panel
}

// LTDC returns the RGB backend, nil unless an RGB panel was detected.
func (d *Dev) LTDC() *ltdc.Dev {
	return d.rgb
}

// Width returns the logical width.
func (d *Dev) Width() int {
	return d.b.Width()
}

// Height returns the logical height.
func (d *Dev) Height() int {
	return d.b.Height()
}

// DrawPoint writes one pixel. Coordinates outside the display are ignored.
func (d *Dev) DrawPoint(x, y int, c pixfmt.Color) {
	d.b.DrawPoint(x, y, c)
}

// ReadPoint returns the pixel at (x, y), 0 outside the display.
//
// MCU panels store RGB565, so the value read back has its low bits
// cleared; RGB panels return what their framebuffer format keeps.
func (d *Dev) ReadPoint(x, y int) pixfmt.Color {
	return d.b.ReadPoint(x, y)
}

// SetWindow restricts GRAM writes to the w*h area at (sx, sy). It is a
// no-op on RGB panels.
func (d *Dev) SetWindow(sx, sy, w, h int) {
	d.b.SetWindow(sx, sy, w, h)
}

// Fill paints the rectangle with corners (sx, sy) and (ex, ey), inclusive.
func (d *Dev) Fill(sx, sy, ex, ey int, c pixfmt.Color) {
	d.b.Fill(sx, sy, ex, ey, c)
}

// Blit copies colors, row-major with a stride of ex-sx+1, into the
// rectangle with corners (sx, sy) and (ex, ey), inclusive.
func (d *Dev) Blit(sx, sy, ex, ey int, colors []pixfmt.Color) {
	d.b.Blit(sx, sy, ex, ey, colors)
}

// Clear fills the whole display.
func (d *Dev) Clear(c pixfmt.Color) {
	d.b.Clear(c)
}

// SetOrientation selects portrait or landscape.
func (d *Dev) SetOrientation(o lcdctl.Orientation) {
	d.b.SetOrientation(o)
}

// DisplayOn turns the panel output on.
func (d *Dev) DisplayOn() {
	if err := d.b.display(true); err != nil {
		d.logf("lcd: display on: %v", err)
	}
}

// DisplayOff turns the panel output off.
func (d *Dev) DisplayOff() {
	if err := d.b.display(false); err != nil {
		d.logf("lcd: display off: %v", err)
	}
}

// Backlight drives the backlight enable line, when wired.
func (d *Dev) Backlight(on bool) {
	if d.bl == nil || d.bl == gpio.INVALID {
		return
	}
	if err := d.bl.Out(gpio.Level(on)); err != nil {
		d.logf("lcd: backlight: %v", err)
	}
}

// Stats returns the event counters.
func (d *Dev) Stats() Stats {
	if d.rgb == nil {
		return Stats{}
	}
	return Stats{Timeouts: d.rgb.Stats().Timeouts}
}

// Err returns the first bus error, if any.
func (d *Dev) Err() error {
	if d.panel == nil {
		return nil
	}
	return d.panel.Err()
}

func (d *Dev) logf(format string, args ...interface{}) {
	if d.logger != nil {
		d.logger.Printf(format, args...)
	}
}

// backend is implemented once per panel family.
type backend interface {
	DrawPoint(x, y int, c pixfmt.Color)
	ReadPoint(x, y int) pixfmt.Color
	SetWindow(sx, sy, w, h int)
	Fill(sx, sy, ex, ey int, c pixfmt.Color)
	Blit(sx, sy, ex, ey int, colors []pixfmt.Color)
	Clear(c pixfmt.Color)
	SetOrientation(o lcdctl.Orientation)
	Width() int
	Height() int
	display(on bool) error
}

type mcu struct {
	*mcupanel.Panel
}

func (m mcu) ReadPoint(x, y int) pixfmt.Color {
	return m.ReadPixel(x, y)
}

func (m mcu) display(on bool) error {
	if on {
		m.DisplayOn()
	} else {
		m.DisplayOff()
	}
	return m.Err()
}

type rgb struct {
	*ltdc.Dev
}

func (rgb) SetWindow(sx, sy, w, h int) {}

func (r rgb) display(on bool) error {
	return r.Enable(on)
}

type none struct{}

func (none) DrawPoint(x, y int, c pixfmt.Color)             {}
func (none) ReadPoint(x, y int) pixfmt.Color                { return 0 }
func (none) SetWindow(sx, sy, w, h int)                     {}
func (none) Fill(sx, sy, ex, ey int, c pixfmt.Color)        {}
func (none) Blit(sx, sy, ex, ey int, colors []pixfmt.Color) {}
func (none) Clear(c pixfmt.Color)                           {}
func (none) SetOrientation(o lcdctl.Orientation)            {}
func (none) Width() int                                     { return 0 }
func (none) Height() int                                    { return 0 }
func (none) display(on bool) error                          { return nil }

var (
	_ backend = mcu{}
	_ backend = rgb{}
	_ backend = none{}
)
