// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdbus

import (
	"fmt"

	"periph.io/x/host/v3/pmem"
)

// FMC bank 1 (NOR/PSRAM) sub-banks start at this address, each 64MiB apart.
const fmcBank1 = 0x60000000

// FMCAddr returns the physical address of the register word for a panel
// wired to NOR/PSRAM sub-bank nex (1 to 4) with its RS line on address line
// ax (0 to 25).
//
// The controller drives a 16-bit bus so address line ax is byte address bit
// ax+1. The register word sits at the highest address with RS low and the
// data word follows it with RS high.
func FMCAddr(nex, ax int) uint64 {
	return uint64(fmcBank1+0x4000000*(nex-1)) | ((uint64(1)<<uint(ax))*2 - 2)
}

// fmcRegs is the register pair as seen by the CPU.
type fmcRegs struct {
	Reg uint16
	RAM uint16
}

// FMC is a Bus over a memory-mapped FMC register pair.
type FMC struct {
	r      *fmcRegs
	timing func(addrSetup, dataSetup int) error
	err    error

	addrSetup, dataSetup int
}

// NewFMC maps the register pair of sub-bank nex, RS on address line ax.
//
// timing is called by SetWriteTiming to reprogram the bank write timing
// register. It may be nil when the host firmware owns that register.
func NewFMC(nex, ax int, timing func(addrSetup, dataSetup int) error) (*FMC, error) {
	if nex < 1 || nex > 4 {
		return nil, fmt.Errorf("lcdbus: invalid FMC sub-bank %d", nex)
	}
	if ax < 0 || ax > 25 {
		return nil, fmt.Errorf("lcdbus: invalid FMC address line A%d", ax)
	}
	var r *fmcRegs
	if err := pmem.MapAsPOD(FMCAddr(nex, ax), &r); err != nil {
		return nil, fmt.Errorf("lcdbus: mapping FMC bank %d: %w", nex, err)
	}
	return &FMC{r: r, timing: timing}, nil
}

func (f *FMC) String() string {
	return "lcdbus.FMC"
}

// WriteReg implements Bus.
func (f *FMC) WriteReg(reg uint16) {
	f.r.Reg = reg
}

// WriteData implements Bus.
func (f *FMC) WriteData(v uint16) {
	f.r.RAM = v
}

// ReadData implements Bus.
func (f *FMC) ReadData() uint16 {
	return f.r.RAM
}

// SetWriteTiming implements TimingSetter.
func (f *FMC) SetWriteTiming(addrSetup, dataSetup int) {
	f.addrSetup, f.dataSetup = addrSetup, dataSetup
	if f.timing == nil || f.err != nil {
		return
	}
	f.err = f.timing(addrSetup, dataSetup)
}

// WriteTiming returns the last write timing requested.
func (f *FMC) WriteTiming() (addrSetup, dataSetup int) {
	return f.addrSetup, f.dataSetup
}

// Err implements Errer.
func (f *FMC) Err() error {
	return f.err
}

var _ Bus = &FMC{}
var _ TimingSetter = &FMC{}
