// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc

import (
	"errors"
	"image"

	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// Blending factors.
const (
	BlendConstantAlpha              = 4 // constant alpha
	BlendPixelConstantAlpha         = 6 // pixel alpha * constant alpha
	BlendOneMinusConstantAlpha      = 5 // 1 - constant alpha
	BlendOneMinusPixelConstantAlpha = 7 // 1 - pixel alpha * constant alpha
)

// Layer configures one of the two layers.
type Layer struct {
	// Window is the area of the screen covered by the layer.
	Window image.Rectangle
	// Alpha is the constant alpha; DefaultAlpha is the alpha outside the
	// window.
	Alpha        uint8
	DefaultAlpha uint8
	Blend1       uint8
	Blend2       uint8
	Background   pixfmt.Color
	Framebuffer  *Framebuffer
	Enabled      bool
}

// Engine is the raster timing generator scanning framebuffers out to the
// panel.
type Engine interface {
	// SetPixelClock reprograms the pixel clock. Not called for a zero
	// PLLSAI.
	SetPixelClock(c PLLSAI) error
	// Configure programs the sync, porch and polarity settings.
	Configure(t *Timing) error
	// ConfigureLayer programs layer i, 0 or 1.
	ConfigureLayer(i int, l *Layer) error
	// Enable turns the scan out on or off.
	Enable(on bool) error
}

// SoftEngine keeps the configuration in memory.
//
// It is what a Dev uses when no hardware is available.
type SoftEngine struct {
	Clock   PLLSAI
	Timing  Timing
	Layers  [2]Layer
	Enabled bool
}

// SetPixelClock implements Engine.
func (s *SoftEngine) SetPixelClock(c PLLSAI) error {
	s.Clock = c
	return nil
}

// Configure implements Engine.
func (s *SoftEngine) Configure(t *Timing) error {
	s.Timing = *t
	return nil
}

// ConfigureLayer implements Engine.
func (s *SoftEngine) ConfigureLayer(i int, l *Layer) error {
	if i < 0 || i >= len(s.Layers) {
		return errors.New("ltdc: invalid layer")
	}
	s.Layers[i] = *l
	return nil
}

// Enable implements Engine.
func (s *SoftEngine) Enable(on bool) error {
	s.Enabled = on
	return nil
}

var _ Engine = &SoftEngine{}
