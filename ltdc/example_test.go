// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/tftlcd/lcdctl"
	"github.com/GermanBionicSystems/tftlcd/ltdc"
	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

func Example() {
	// Without an Engine and a Blitter the panel is emulated in host memory.
	d, err := ltdc.New(lcdctl.RGB4342, &ltdc.Opts{Format: pixfmt.ARGB8888})
	if err != nil {
		log.Fatal(err)
	}
	d.SetOrientation(lcdctl.Landscape)
	d.Clear(pixfmt.Black)
	d.Fill(0, 0, 9, 9, pixfmt.Green)
	fmt.Println(d.Width(), d.Height(), d.ReadPoint(5, 5), d.ReadPoint(10, 10))
	// Output: 480 272 #FF00FF00 #FF000000
}

func ExampleLookupTiming() {
	for _, id := range []uint16{lcdctl.RGB4342, lcdctl.RGB7016} {
		t := ltdc.LookupTiming(id)
		fmt.Println(t, t.FrameRate())
	}
}
