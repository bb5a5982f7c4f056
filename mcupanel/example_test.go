// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcupanel_test

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/tftlcd/lcdbus"
	"github.com/GermanBionicSystems/tftlcd/lcdbus/lcdbustest"
	"github.com/GermanBionicSystems/tftlcd/lcdctl"
	"github.com/GermanBionicSystems/tftlcd/mcupanel"
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Panel on FMC sub-bank 4 with RS on A6.
	b, err := lcdbus.NewFMC(4, 6, nil)
	if err != nil {
		log.Fatal(err)
	}
	p := mcupanel.New(b, lcdctl.Lookup(lcdctl.ILI9341), nil)
	p.Init()
	p.SetOrientation(lcdctl.Landscape)
	p.Clear(pixfmt.Black)
	p.Fill(10, 10, 109, 59, pixfmt.Red)
	if err := p.Err(); err != nil {
		log.Fatal(err)
	}
}

func ExamplePanel_SetScanDir() {
	p := mcupanel.New(lcdbustest.NewRecord(nil), lcdctl.Lookup(lcdctl.ILI9341), &mcupanel.Opts{Delay: func(time.Duration) {}})
	p.SetOrientation(lcdctl.Portrait)
	fmt.Println(p.Width(), p.Height())
	// Column-major scanning exchanges the axes.
	p.SetScanDir(mcupanel.U2DL2R)
	fmt.Println(p.Width(), p.Height())
	// Output:
	// 240 320
	// 320 240
}
