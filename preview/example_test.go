// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview_test

import (
	"image"
	"image/color"
	"log"
	"net/http"
	"time"

	"github.com/GermanBionicSystems/tftlcd/preview"
)

func Example() {
	// Emulate an 800x480 panel: print it and serve it on
	// http://localhost:8080/?format=png.
	s := preview.NewStream(&preview.StreamOpts{Width: 800, Height: 480, Format: preview.JPEG})
	go func() {
		if err := http.ListenAndServe(":8080", s); err != nil {
			log.Fatal(err)
		}
	}()
	d := preview.Mirror{s, preview.NewTerminal(&preview.TerminalOpts{Width: 800, Height: 480})}
	defer d.Halt()

	colors := []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for i := 0; i < 30; i++ {
		if err := d.Draw(d.Bounds(), image.NewUniform(colors[i%len(colors)]), image.Point{}); err != nil {
			log.Fatal(err)
		}
		time.Sleep(time.Second)
	}
}
