// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package preview provides host side sinks showing what a panel displays.
//
// Terminal prints frames with ANSI colors. Stream serves them over HTTP as a
// multipart "MJPEG" stream that browsers render in an <img> tag. Mirror
// sends every drawing operation to the panel and to the sinks.
//
// Both sinks implement display.Drawer, so anything drawn with
// (*lcd.Dev).Draw can be drawn through a Mirror instead.
package preview
