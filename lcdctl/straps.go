// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdctl

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Orientation is the logical display orientation.
type Orientation uint8

// Orientations.
const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "Landscape"
	}
	return "Portrait"
}

// IDs of the RGB interface panels, as encoded on the ID strap pins.
const (
	RGB4342 uint16 = 0x4342 // 4.3" 480x272
	RGB7084 uint16 = 0x7084 // 7" 800x480
	RGB7016 uint16 = 0x7016 // 7" 1024x600
	RGB7018 uint16 = 0x7018 // 7" 1280x800
	RGB4384 uint16 = 0x4384 // 4.3" 800x480
	RGB1018 uint16 = 0x1018 // 10.1" 1280x800
)

// strapIDs is indexed by M2:M1:M0.
var strapIDs = [...]uint16{RGB4342, RGB7084, RGB7016, RGB7018, RGB4384, RGB1018}

// ReadStraps identifies an RGB interface panel from its three ID pins.
//
// The pins are configured as pulled-up inputs. The level of m0 is bit 0 of
// the index, m1 bit 1 and m2 bit 2. Index 6 and 7 mean no panel and return
// 0.
func ReadStraps(m0, m1, m2 gpio.PinIn) (uint16, error) {
	idx := 0
	for i, p := range []gpio.PinIn{m0, m1, m2} {
		if p == nil {
			return 0, fmt.Errorf("lcdctl: missing ID strap M%d", i)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return 0, fmt.Errorf("lcdctl: ID strap M%d: %w", i, err)
		}
		if p.Read() == gpio.High {
			idx |= 1 << uint(i)
		}
	}
	return StrapID(idx), nil
}

// StrapID maps a strap index to a panel ID, 0 when out of range.
func StrapID(idx int) uint16 {
	if idx < 0 || idx >= len(strapIDs) {
		return 0
	}
	return strapIDs[idx]
}
