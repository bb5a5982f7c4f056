// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"image"
	"image/color"
	"strings"

	"periph.io/x/conn/v3/display"
)

// Mirror draws on all its drawers in order. The first one is the reference:
// it gives Bounds and ColorModel.
type Mirror []display.Drawer

func (m Mirror) String() string {
	s := make([]string, len(m))
	for i, d := range m {
		s[i] = d.String()
	}
	return "Mirror{" + strings.Join(s, ", ") + "}"
}

// Halt implements conn.Resource. All drawers are halted; the first error is
// returned.
func (m Mirror) Halt() error {
	var err error
	for _, d := range m {
		if err1 := d.Halt(); err == nil {
			err = err1
		}
	}
	return err
}

// ColorModel implements display.Drawer.
func (m Mirror) ColorModel() color.Model {
	if len(m) == 0 {
		return color.NRGBAModel
	}
	return m[0].ColorModel()
}

// Bounds implements display.Drawer.
func (m Mirror) Bounds() image.Rectangle {
	if len(m) == 0 {
		return image.Rectangle{}
	}
	return m[0].Bounds()
}

// Draw implements display.Drawer. Every drawer gets the operation even when
// an earlier one failed; the first error is returned.
func (m Mirror) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	var err error
	for _, d := range m {
		if err1 := d.Draw(r, src, sp); err == nil {
			err = err1
		}
	}
	return err
}

var _ display.Drawer = Mirror{}
