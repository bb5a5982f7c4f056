// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdctl

// Controller IDs as returned by Identify.
const (
	ILI9341 uint16 = 0x9341
	ST7789  uint16 = 0x7789
	NT35310 uint16 = 0x5310
	ST7796  uint16 = 0x7796
	NT35510 uint16 = 0x5510
	ILI9806 uint16 = 0x9806
	SSD1963 uint16 = 0x1963
)

// MIPI DCS opcodes shared by the single register controllers.
const (
	dcsSleepOut        = 0x11
	dcsDisplayOff      = 0x28
	dcsDisplayOn       = 0x29
	dcsColumnAddrSet   = 0x2A
	dcsPageAddrSet     = 0x2B
	dcsMemoryWrite     = 0x2C
	dcsMemoryRead      = 0x2E
	dcsMemoryAccessCtl = 0x36
	dcsPixelFormat     = 0x3A
)

// NoPanel is selected when nothing answered the identification probes.
// Every drawing call on it is a no-op.
var NoPanel = &Descriptor{Name: "none"}

func dcs(id uint16, name string, w, h int, bgr bool, read ReadDecode, timing int, init []Step) *Descriptor {
	return &Descriptor{
		ID:           id,
		Name:         name,
		Width:        w,
		Height:       h,
		Style:        SingleRegister,
		GRAMWrite:    dcsMemoryWrite,
		SetColumn:    dcsColumnAddrSet,
		SetRow:       dcsPageAddrSet,
		ReadGRAM:     dcsMemoryRead,
		MemoryAccess: dcsMemoryAccessCtl,
		DisplayOn:    dcsDisplayOn,
		DisplayOff:   dcsDisplayOff,
		BGR:          bgr,
		Read:         read,
		Init:         init,
		WriteTiming:  [2]int{timing, timing},
	}
}

var registry = []*Descriptor{
	dcs(ILI9341, "ILI9341", 240, 320, true, Split565, 4, ili9341Init),
	dcs(ST7789, "ST7789", 240, 320, true, Split565, 4, st7789Init),
	dcs(NT35310, "NT35310", 320, 480, false, Split565, 3, nt35310Init),
	dcs(ST7796, "ST7796", 320, 480, true, SingleWord, 3, st7796Init),
	{
		ID:           NT35510,
		Name:         "NT35510",
		Width:        480,
		Height:       800,
		Style:        FourRegister,
		GRAMWrite:    0x2C00,
		SetColumn:    0x2A00,
		SetRow:       0x2B00,
		ReadGRAM:     0x2E00,
		MemoryAccess: 0x3600,
		DisplayOn:    0x2900,
		DisplayOff:   0x2800,
		Read:         Split565,
		Init:         nt35510Init,
		WriteTiming:  [2]int{2, 2},
	},
	dcs(ILI9806, "ILI9806", 480, 800, false, Split565, 3, ili9806Init),
	{
		ID:           SSD1963,
		Name:         "SSD1963",
		Width:        480,
		Height:       800,
		Style:        SSDStyle,
		GRAMWrite:    dcsMemoryWrite,
		SetColumn:    dcsColumnAddrSet,
		SetRow:       dcsPageAddrSet,
		ReadGRAM:     dcsMemoryRead,
		MemoryAccess: dcsMemoryAccessCtl,
		DisplayOn:    dcsDisplayOn,
		DisplayOff:   dcsDisplayOff,
		Read:         Packed,
		Init:         ssd1963Init,
		WriteTiming:  [2]int{2, 2},
		Backlight:    true,
	},
}

// Lookup returns the descriptor for id, or nil when the controller is
// unknown.
func Lookup(id uint16) *Descriptor {
	for _, d := range registry {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// All returns every known controller, in identification order.
func All() []*Descriptor {
	out := make([]*Descriptor, len(registry))
	copy(out, registry)
	return out
}
