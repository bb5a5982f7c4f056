// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package example

import (
	"flag"
	"fmt"
	"image"
	"log"
	"net/http"
	"time"

	"github.com/fogleman/gg"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/pmem"

	"github.com/GermanBionicSystems/tftlcd/gfx"
	"github.com/GermanBionicSystems/tftlcd/lcd"
	"github.com/GermanBionicSystems/tftlcd/lcdbus"
	"github.com/GermanBionicSystems/tftlcd/lcdctl"
	"github.com/GermanBionicSystems/tftlcd/ltdc"
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
	"github.com/GermanBionicSystems/tftlcd/preview"
)

// Example brings up whichever panel is attached to the memory controller or
// the LTDC, draws a test card and mirrors it to the terminal and to an HTTP
// stream for 30 seconds.
func Example() {
	nex := flag.Int("nex", 4, "FMC NOR/PSRAM sub-bank of the MCU panel")
	rs := flag.Int("rs", 6, "address line wired to RS")
	m0 := flag.String("m0", "PG6", "ID strap M0")
	m1 := flag.String("m1", "PI2", "ID strap M1")
	m2 := flag.String("m2", "PI7", "ID strap M2")
	addr := flag.String("http", ":8080", "preview stream address")
	flag.Parse()

	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	opts := lcd.Opts{
		Straps:    [3]gpio.PinIn{gpioreg.ByName(*m0), gpioreg.ByName(*m1), gpioreg.ByName(*m2)},
		Backlight: gpioreg.ByName("PB5"),
		Logger:    log.Default(),
	}
	if b, err := lcdbus.NewFMC(*nex, *rs, nil); err != nil {
		log.Printf("no MCU bus: %v", err)
	} else {
		opts.Bus = b
	}
	if o, err := rgbOpts(opts.Straps); err != nil {
		log.Printf("RGB panel in software: %v", err)
	} else {
		opts.LTDC = o
	}

	dev := lcd.New(&opts)
	if dev.ID() == 0 {
		log.Fatal("no panel detected")
	}
	defer dev.Halt()
	fmt.Printf("%s: %dx%d\n", dev, dev.Width(), dev.Height())

	stream := preview.NewStream(&preview.StreamOpts{Width: dev.Width(), Height: dev.Height(), Format: preview.JPEG})
	go func() {
		if err := http.ListenAndServe(*addr, stream); err != nil {
			log.Print(err)
		}
	}()
	sinks := preview.Mirror{preview.NewTerminal(&preview.TerminalOpts{Width: dev.Width(), Height: dev.Height()}), stream}
	defer sinks.Halt()
	out := append(preview.Mirror{dev}, sinks...)

	if err := out.Draw(out.Bounds(), testCard(dev.Width(), dev.Height()), image.Point{}); err != nil {
		log.Fatal(err)
	}

	// A clock drawn on the panel directly, copied to the sinks once a second.
	face, err := gfx.GoRegular(24)
	if err != nil {
		log.Fatal(err)
	}
	defer face.Close()
	r := image.Rect(0, dev.Height()-40, dev.Width(), dev.Height())
	t := time.NewTicker(time.Second)
	defer t.Stop()
	stop := time.After(30 * time.Second)
	for {
		select {
		case <-stop:
			log.Printf("%s: %+v", dev, dev.Stats())
			return
		case now := <-t.C:
			dev.Fill(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1, pixfmt.Black)
			gfx.FaceText(dev, 10, r.Max.Y-10, now.Format(time.TimeOnly), face, pixfmt.Yellow)
			if err := sinks.Draw(r, dev, r.Min); err != nil {
				log.Fatal(err)
			}
		}
	}
}

// rgbOpts maps the framebuffer of the panel announced on the straps in SDRAM
// and drives the LTDC and DMA2D registers.
func rgbOpts(straps [3]gpio.PinIn) (*ltdc.Opts, error) {
	id, err := lcdctl.ReadStraps(straps[0], straps[1], straps[2])
	if err != nil {
		return nil, err
	}
	t := ltdc.LookupTiming(id)
	if t == nil {
		return nil, fmt.Errorf("no RGB panel on the straps (%#04x)", id)
	}
	fb, err := ltdc.MapFramebuffer(ltdc.SDRAMBase, t.Width, t.Height, pixfmt.RGB565)
	if err != nil {
		return nil, err
	}
	staging, err := pmem.Alloc(t.Width * t.Height * pixfmt.ARGB8888.Size())
	if err != nil {
		return nil, err
	}
	e, err := ltdc.NewMMIOEngine()
	if err != nil {
		return nil, err
	}
	b, err := ltdc.NewMMIOBlitter()
	if err != nil {
		return nil, err
	}
	return &ltdc.Opts{
		Format:       pixfmt.RGB565,
		Layers:       1,
		Framebuffers: []*ltdc.Framebuffer{fb},
		Staging:      staging,
		Engine:       e,
		Blitter:      b,
	}, nil
}

// testCard renders color bars, a grid and a centered circle.
func testCard(w, h int) image.Image {
	c := gg.NewContext(w, h)
	bars := []pixfmt.Color{pixfmt.White, pixfmt.Yellow, pixfmt.Cyan, pixfmt.Green, pixfmt.Magenta, pixfmt.Red, pixfmt.Blue}
	bw := float64(w) / float64(len(bars))
	for i, col := range bars {
		c.SetColor(col)
		c.DrawRectangle(float64(i)*bw, 0, bw, float64(h))
		c.Fill()
	}
	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	for x := 0; x < w; x += 40 {
		c.DrawLine(float64(x)+0.5, 0, float64(x)+0.5, float64(h))
	}
	for y := 0; y < h; y += 40 {
		c.DrawLine(0, float64(y)+0.5, float64(w), float64(y)+0.5)
	}
	c.Stroke()
	c.DrawCircle(float64(w)/2, float64(h)/2, float64(h)/3)
	c.SetLineWidth(3)
	c.Stroke()
	return c.Image()
}
