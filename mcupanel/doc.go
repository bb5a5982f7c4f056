// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcupanel translates logical drawing coordinates into the register
// writes an MCU interface TFT controller needs.
//
// Controllers disagree on how an address window is programmed (one register
// per axis, one register per byte, or native landscape addressing with a
// mirrored axis) and on how a pixel is read back. A Panel binds the
// addressing strategy of its lcdctl.Descriptor once and keeps track of the
// logical width and height as the orientation and scan direction change.
//
// Pixels are written as RGB565; reads are widened back to pixfmt.Color with
// zero low bits.
package mcupanel
