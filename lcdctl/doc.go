// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdctl lists the MCU interface TFT controllers the lcd package
// knows about and identifies which one is wired to a bus.
//
// Each controller is described by a Descriptor: native size, the opcodes of
// its GRAM and address window registers, how the address window is
// programmed and how a pixel read back is decoded. Initialization tables
// are carried verbatim as register/value pairs.
//
// Datasheets
//
// ILI9341: https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
//
// ST7789: https://www.rhydolabz.com/documents/33/ST7789.pdf
//
// ST7796S: https://www.displayfuture.com/Display/datasheet/controller/ST7796s.pdf
//
// NT35510: https://www.buydisplay.com/download/ic/NT35510.pdf
//
// SSD1963: https://www.solomon-systech.com/files/ic/datasheet/SSD1963.pdf
package lcdctl
