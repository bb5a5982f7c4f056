// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ltdc

import (
	"fmt"

	"github.com/GermanBionicSystems/tftlcd/pixfmt"
)

// Mode is a block transfer mode.
type Mode uint8

// Supported transfer modes.
const (
	// RegisterToMemory fills the destination with Op.Color.
	RegisterToMemory Mode = iota
	// MemoryToMemory copies Op.Src to Op.Dst, converting the pixel format.
	MemoryToMemory
)

func (m Mode) String() string {
	if m == MemoryToMemory {
		return "M2M"
	}
	return "R2M"
}

// Plane is a rectangular pixel region in memory.
type Plane struct {
	// Pix starts at the first pixel of the region.
	Pix []byte
	// Addr is the physical address of Pix[0], 0 when Pix is not in
	// physically addressable memory.
	Addr   uint64
	Format pixfmt.Format
	// Offset is the number of pixels skipped at the end of each line.
	Offset int
}

// Op is one block transfer of Lines lines of Width pixels.
type Op struct {
	Mode  Mode
	Width int
	Lines int
	Dst   Plane
	Src   Plane
	Color pixfmt.Color
}

func (o *Op) String() string {
	return fmt.Sprintf("%s %dx%d", o.Mode, o.Width, o.Lines)
}

// Blitter is a block transfer engine.
//
// Start begins a transfer; Done reports the transfer complete flag and Ack
// clears it. The caller polls Done with a bounded number of attempts.
type Blitter interface {
	Start(op *Op)
	Done() bool
	Ack()
}

// SoftBlitter runs transfers on the CPU, synchronously in Start.
type SoftBlitter struct {
	// Ops counts the transfers started.
	Ops  int
	done bool
}

// Start implements Blitter.
func (s *SoftBlitter) Start(op *Op) {
	s.Ops++
	run(op)
	s.done = true
}

// Done implements Blitter.
func (s *SoftBlitter) Done() bool {
	return s.done
}

// Ack implements Blitter.
func (s *SoftBlitter) Ack() {
	s.done = false
}

// run executes op on Pix. Lines that would run past the end of a buffer
// are dropped.
func run(op *Op) {
	dsz := op.Dst.Format.Size()
	dline := (op.Width + op.Dst.Offset) * dsz
	var tmp [4]byte
	op.Dst.Format.Encode(tmp[:], op.Color)
	ssz := op.Src.Format.Size()
	sline := (op.Width + op.Src.Offset) * ssz
	for l := 0; l < op.Lines; l++ {
		d := l * dline
		if d+op.Width*dsz > len(op.Dst.Pix) {
			return
		}
		s := l * sline
		if op.Mode == MemoryToMemory && s+op.Width*ssz > len(op.Src.Pix) {
			return
		}
		for x := 0; x < op.Width; x++ {
			if op.Mode == MemoryToMemory {
				op.Dst.Format.Encode(op.Dst.Pix[d:], op.Src.Format.Decode(op.Src.Pix[s:]))
				s += ssz
			} else {
				copy(op.Dst.Pix[d:d+dsz], tmp[:dsz])
			}
			d += dsz
		}
	}
}

var _ Blitter = &SoftBlitter{}
