// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcd drives the TFT panels sold for STM32F4 boards, whichever way
// they are attached.
//
// Two families exist. MCU panels embed a controller (ILI9341, ST7789,
// NT35310, NT35510, ST7796, ILI9806, SSD1963) with its own GRAM, reached
// over a command/data bus from package lcdbus. RGB panels have no
// controller: the LTDC scans a framebuffer out of memory and announces the
// panel model on three strap pins.
//
// New finds out which one is connected and Dev hides the difference. Drawing
// calls never return errors; an MCU transport error is latched and returned
// by Err, an RGB block transfer that never completes is counted in Stats.
//
// Dev also implements display.Drawer, draw.Image and tinygo's
// drivers.Displayer so that periph, x/image, gg and tinyfont renderers can
// draw on it. Package gfx adds lines, circles and text.
package lcd
