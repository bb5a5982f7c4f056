// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tftlcd is a container for the TFT panel packages.
//
// Start with package lcd, which detects the panel and draws on it. The
// layers below it can be used on their own: lcdbus (command/data buses),
// lcdctl (controller registry and identification), mcupanel (GRAM
// addressing of MCU panels) and ltdc (framebuffer panels). Package gfx
// draws shapes and text on any of them and package preview shows the
// result on a host.
package tftlcd
