// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ltdc drives RGB interface panels whose framebuffer is memory
// mapped and continuously scanned out by a raster controller.
//
// Drawing writes the framebuffer directly. Rectangle fills and copies are
// handed to a block transfer engine (the STM32 DMA2D) and waited for with
// a bounded poll; a transfer that never completes is abandoned and counted
// in Stats.
//
// Both collaborators are interfaces. SoftEngine and SoftBlitter keep
// everything in host memory, which is what tests and previews use.
// MMIOEngine and MMIOBlitter program the peripherals through /dev/mem.
//
// Reference
//
// RM0090, chapters 11 (DMA2D) and 16 (LTDC):
// https://www.st.com/resource/en/reference_manual/dm00031020.pdf
package ltdc
