// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdctl

import "time"

// Initialization tables. Values come from the vendor application notes and
// are not meant to be interpreted; each leaves the panel in 16-bit RGB565
// mode, awake and with the display on.

var ili9341Init = []Step{
	{Reg: 0xCF, Data: []uint16{0x00, 0xC1, 0x30}},
	{Reg: 0xED, Data: []uint16{0x64, 0x03, 0x12, 0x81}},
	{Reg: 0xE8, Data: []uint16{0x85, 0x10, 0x7A}},
	{Reg: 0xCB, Data: []uint16{0x39, 0x2C, 0x00, 0x34, 0x02}},
	{Reg: 0xF7, Data: []uint16{0x20}},
	{Reg: 0xEA, Data: []uint16{0x00, 0x00}},
	{Reg: 0xC0, Data: []uint16{0x1B}},
	{Reg: 0xC1, Data: []uint16{0x01}},
	{Reg: 0xC5, Data: []uint16{0x30, 0x30}},
	{Reg: 0xC7, Data: []uint16{0xB7}},
	{Reg: dcsMemoryAccessCtl, Data: []uint16{0x48}},
	{Reg: dcsPixelFormat, Data: []uint16{0x55}},
	{Reg: 0xB1, Data: []uint16{0x00, 0x1A}},
	{Reg: 0xB6, Data: []uint16{0x0A, 0xA2}},
	{Reg: 0xF2, Data: []uint16{0x00}},
	{Reg: 0x26, Data: []uint16{0x01}},
	{Reg: 0xE0, Data: []uint16{0x0F, 0x2A, 0x28, 0x08, 0x0E, 0x08, 0x54, 0xA9, 0x43, 0x0A, 0x0F, 0x00, 0x00, 0x00, 0x00}},
	{Reg: 0xE1, Data: []uint16{0x00, 0x15, 0x17, 0x07, 0x11, 0x06, 0x2B, 0x56, 0x3C, 0x05, 0x10, 0x0F, 0x3F, 0x3F, 0x0F}},
	{Reg: dcsPageAddrSet, Data: []uint16{0x00, 0x00, 0x01, 0x3F}},
	{Reg: dcsColumnAddrSet, Data: []uint16{0x00, 0x00, 0x00, 0xEF}},
	{Reg: dcsSleepOut, Delay: 120 * time.Millisecond},
	{Reg: dcsDisplayOn},
}

var st7789Init = []Step{
	{Reg: dcsSleepOut, Delay: 120 * time.Millisecond},
	{Reg: dcsMemoryAccessCtl, Data: []uint16{0x00}},
	{Reg: dcsPixelFormat, Data: []uint16{0x05}},
	{Reg: 0xB2, Data: []uint16{0x0C, 0x0C, 0x00, 0x33, 0x33}},
	{Reg: 0xB7, Data: []uint16{0x35}},
	{Reg: 0xBB, Data: []uint16{0x32}},
	{Reg: 0xC0, Data: []uint16{0x0C}},
	{Reg: 0xC2, Data: []uint16{0x01}},
	{Reg: 0xC3, Data: []uint16{0x10}},
	{Reg: 0xC4, Data: []uint16{0x20}},
	{Reg: 0xC6, Data: []uint16{0x0F}},
	{Reg: 0xD0, Data: []uint16{0xA4, 0xA1}},
	{Reg: 0xE0, Data: []uint16{0xD0, 0x00, 0x02, 0x07, 0x0A, 0x28, 0x32, 0x44, 0x42, 0x06, 0x0E, 0x12, 0x14, 0x17}},
	{Reg: 0xE1, Data: []uint16{0xD0, 0x00, 0x02, 0x07, 0x0A, 0x28, 0x31, 0x54, 0x47, 0x0E, 0x1C, 0x17, 0x1B, 0x1E}},
	{Reg: 0x21},
	{Reg: dcsColumnAddrSet, Data: []uint16{0x00, 0x00, 0x00, 0xEF}},
	{Reg: dcsPageAddrSet, Data: []uint16{0x00, 0x00, 0x01, 0x3F}},
	{Reg: dcsDisplayOn},
}

var nt35310Init = []Step{
	{Reg: 0xED, Data: []uint16{0x01, 0xFE}},
	{Reg: 0xEE, Data: []uint16{0xDE, 0x21}},
	{Reg: 0xF1, Data: []uint16{0x01}},
	{Reg: 0xDF, Data: []uint16{0x10}},
	{Reg: 0xC4, Data: []uint16{0x8F}},
	{Reg: 0xC6, Data: []uint16{0x00, 0xE2, 0xE2, 0xE2}},
	{Reg: 0xBF, Data: []uint16{0xAA}},
	{Reg: 0xB0, Data: []uint16{0x0D, 0x00, 0x0D, 0x00, 0x11, 0x00, 0x19, 0x00, 0x21, 0x00, 0x2D, 0x00, 0x3D, 0x00, 0x5D, 0x00, 0x5D, 0x00}},
	{Reg: dcsMemoryAccessCtl, Data: []uint16{0x00}},
	{Reg: dcsPixelFormat, Data: []uint16{0x55}},
	{Reg: 0x35, Data: []uint16{0x00}},
	{Reg: dcsSleepOut, Delay: 120 * time.Millisecond},
	{Reg: dcsDisplayOn},
}

var st7796Init = []Step{
	{Reg: dcsSleepOut, Delay: 120 * time.Millisecond},
	{Reg: dcsMemoryAccessCtl, Data: []uint16{0x48}},
	{Reg: dcsPixelFormat, Data: []uint16{0x55}},
	{Reg: 0xF0, Data: []uint16{0xC3}},
	{Reg: 0xF0, Data: []uint16{0x96}},
	{Reg: 0xB4, Data: []uint16{0x01}},
	{Reg: 0xB6, Data: []uint16{0x0A, 0xA2}},
	{Reg: 0xB7, Data: []uint16{0xC6}},
	{Reg: 0xB9, Data: []uint16{0x02, 0xE0}},
	{Reg: 0xC0, Data: []uint16{0x80, 0x16}},
	{Reg: 0xC1, Data: []uint16{0x19}},
	{Reg: 0xC2, Data: []uint16{0xA7}},
	{Reg: 0xC5, Data: []uint16{0x16}},
	{Reg: 0xE8, Data: []uint16{0x40, 0x8A, 0x00, 0x00, 0x29, 0x19, 0xA5, 0x33}},
	{Reg: 0xE0, Data: []uint16{0xF0, 0x07, 0x0D, 0x04, 0x05, 0x14, 0x36, 0x54, 0x4C, 0x38, 0x13, 0x14, 0x2E, 0x34}},
	{Reg: 0xE1, Data: []uint16{0xF0, 0x10, 0x14, 0x0E, 0x0C, 0x08, 0x35, 0x44, 0x4C, 0x26, 0x10, 0x12, 0x2C, 0x32}},
	{Reg: 0xF0, Data: []uint16{0x3C}},
	{Reg: 0xF0, Data: []uint16{0x69}, Delay: 120 * time.Millisecond},
	{Reg: 0x21},
	{Reg: dcsDisplayOn},
}

// The NT35510 takes one parameter per register address.
var nt35510Init = []Step{
	{Reg: 0xF000, Data: []uint16{0x55}},
	{Reg: 0xF001, Data: []uint16{0xAA}},
	{Reg: 0xF002, Data: []uint16{0x52}},
	{Reg: 0xF003, Data: []uint16{0x08}},
	{Reg: 0xF004, Data: []uint16{0x01}},
	{Reg: 0xB000, Data: []uint16{0x0D}},
	{Reg: 0xB001, Data: []uint16{0x0D}},
	{Reg: 0xB002, Data: []uint16{0x0D}},
	{Reg: 0xB600, Data: []uint16{0x34}},
	{Reg: 0xB601, Data: []uint16{0x34}},
	{Reg: 0xB602, Data: []uint16{0x34}},
	{Reg: 0xB100, Data: []uint16{0x0D}},
	{Reg: 0xB101, Data: []uint16{0x0D}},
	{Reg: 0xB102, Data: []uint16{0x0D}},
	{Reg: 0xB700, Data: []uint16{0x34}},
	{Reg: 0xB701, Data: []uint16{0x34}},
	{Reg: 0xB702, Data: []uint16{0x34}},
	{Reg: 0xBC00, Data: []uint16{0x00}},
	{Reg: 0xBC01, Data: []uint16{0xA0}},
	{Reg: 0xBC02, Data: []uint16{0x00}},
	{Reg: 0xBD00, Data: []uint16{0x00}},
	{Reg: 0xBD01, Data: []uint16{0xA0}},
	{Reg: 0xBD02, Data: []uint16{0x00}},
	{Reg: 0xBE00, Data: []uint16{0x00}},
	{Reg: 0xBE01, Data: []uint16{0x63}},
	{Reg: 0xF000, Data: []uint16{0x55}},
	{Reg: 0xF001, Data: []uint16{0xAA}},
	{Reg: 0xF002, Data: []uint16{0x52}},
	{Reg: 0xF003, Data: []uint16{0x08}},
	{Reg: 0xF004, Data: []uint16{0x00}},
	{Reg: 0xB100, Data: []uint16{0xCC}},
	{Reg: 0xB101, Data: []uint16{0x00}},
	{Reg: 0xB600, Data: []uint16{0x05}},
	{Reg: 0xB700, Data: []uint16{0x70}},
	{Reg: 0xB701, Data: []uint16{0x70}},
	{Reg: 0xB800, Data: []uint16{0x01}},
	{Reg: 0xB801, Data: []uint16{0x03}},
	{Reg: 0xB802, Data: []uint16{0x03}},
	{Reg: 0xB803, Data: []uint16{0x03}},
	{Reg: 0xBC00, Data: []uint16{0x02}},
	{Reg: 0xBC01, Data: []uint16{0x00}},
	{Reg: 0xBC02, Data: []uint16{0x00}},
	{Reg: 0x3500, Data: []uint16{0x00}},
	{Reg: 0x3A00, Data: []uint16{0x55}},
	{Reg: 0x1100, Delay: 120 * time.Millisecond},
	{Reg: 0x2900},
}

var ili9806Init = []Step{
	{Reg: 0xFF, Data: []uint16{0xFF, 0x98, 0x06}},
	{Reg: 0xBC, Data: []uint16{0x01, 0x0E, 0x61, 0xFB, 0x10, 0x10, 0x0B, 0x0F, 0x2E, 0x73, 0xFF, 0xFF, 0x0E, 0x0E, 0x00, 0x03, 0x66, 0x63, 0x01, 0x00, 0x00}},
	{Reg: 0xBD, Data: []uint16{0x01, 0x23, 0x45, 0x67, 0x01, 0x23, 0x45, 0x67}},
	{Reg: 0xBE, Data: []uint16{0x00, 0x21, 0xAB, 0x60, 0x22, 0x22, 0x22, 0x22, 0x22}},
	{Reg: 0xC7, Data: []uint16{0x47}},
	{Reg: 0xED, Data: []uint16{0x7F, 0x0F, 0x00}},
	{Reg: 0xC0, Data: []uint16{0x03, 0x0B, 0x00}},
	{Reg: 0xFC, Data: []uint16{0x08}},
	{Reg: 0xDF, Data: []uint16{0x00, 0x00, 0x00, 0x00, 0x00, 0x20}},
	{Reg: 0xF3, Data: []uint16{0x74}},
	{Reg: 0xB4, Data: []uint16{0x00, 0x00, 0x00}},
	{Reg: 0xF7, Data: []uint16{0x82}},
	{Reg: 0xB1, Data: []uint16{0x00, 0x13, 0x13}},
	{Reg: 0xF2, Data: []uint16{0x80, 0x04, 0x40, 0x28}},
	{Reg: 0xC1, Data: []uint16{0x17, 0x88, 0x88, 0x20}},
	{Reg: dcsPixelFormat, Data: []uint16{0x55}},
	{Reg: dcsSleepOut, Delay: 120 * time.Millisecond},
	{Reg: dcsDisplayOn},
}

// SSD1963 panel timing, for an 800x480 TFT.
const (
	ssdHorRes = 800
	ssdVerRes = 480
	ssdHPW    = 1
	ssdHBP    = 46
	ssdHFP    = 210
	ssdVPW    = 1
	ssdVBP    = 23
	ssdVFP    = 22
	ssdHT     = ssdHorRes + ssdHBP + ssdHFP
	ssdHPS    = ssdHBP
	ssdVT     = ssdVerRes + ssdVBP + ssdVFP
	ssdVPS    = ssdVBP
)

var ssd1963Init = []Step{
	// PLL: 10MHz crystal * 30 / 3 = 100MHz.
	{Reg: 0xE2, Data: []uint16{0x1D, 0x02, 0x04}, Delay: time.Millisecond},
	{Reg: 0xE0, Data: []uint16{0x01}, Delay: 10 * time.Millisecond},
	{Reg: 0xE0, Data: []uint16{0x03}, Delay: 12 * time.Millisecond},
	{Reg: 0x01, Delay: 10 * time.Millisecond},
	{Reg: 0xE6, Data: []uint16{0x2F, 0xFF, 0xFF}},
	{Reg: 0xB0, Data: []uint16{
		0x20, 0x00,
		(ssdHorRes - 1) >> 8, (ssdHorRes - 1) & 0xFF,
		(ssdVerRes - 1) >> 8, (ssdVerRes - 1) & 0xFF,
		0x00,
	}},
	{Reg: 0xB4, Data: []uint16{
		(ssdHT - 1) >> 8, (ssdHT - 1) & 0xFF,
		ssdHPS >> 8, ssdHPS & 0xFF,
		ssdHPW - 1,
		0x00, 0x00, 0x00,
	}},
	{Reg: 0xB6, Data: []uint16{
		(ssdVT - 1) >> 8, (ssdVT - 1) & 0xFF,
		ssdVPS >> 8, ssdVPS & 0xFF,
		ssdVFP - 1,
		0x00, 0x00,
	}},
	{Reg: 0xF0, Data: []uint16{0x03}},
	{Reg: dcsDisplayOn},
	{Reg: 0xD0, Data: []uint16{0x00}},
	{Reg: 0xBE, Data: []uint16{0x05, 0xFE, 0x01, 0x00, 0x00, 0x00}},
	{Reg: 0xB8, Data: []uint16{0x03, 0x01}},
	{Reg: 0xBA, Data: []uint16{0x01}},
}
