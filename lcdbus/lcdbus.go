// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdbus

import (
	"time"
)

// Bus is the raw 16-bit command/data access to an MCU interface panel.
//
// Drawing code runs in tight loops so the methods do not return errors. An
// implementation latches its first transport failure, drops every following
// write, returns 0 from reads and reports the failure through Err.
type Bus interface {
	// WriteReg selects the register that following data words go to.
	WriteReg(reg uint16)
	// WriteData writes one data word to the selected register.
	WriteData(v uint16)
	// ReadData reads one data word from the selected register.
	ReadData() uint16
}

// Errer is implemented by buses that latch transport errors.
type Errer interface {
	Err() error
}

// Flusher is implemented by buses that buffer writes.
type Flusher interface {
	Flush() error
}

// TimingSetter is implemented by buses whose write cycle can be retuned once
// the controller initialization sequence completed.
//
// addrSetup and dataSetup are expressed in bus clock cycles.
type TimingSetter interface {
	SetWriteTiming(addrSetup, dataSetup int)
}

// Delay sleeps for the given duration. Identification and initialization
// sequences use it between steps.
type Delay func(time.Duration)

// Sleep is the default Delay.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

// WriteRegData selects reg and writes each data word to it.
func WriteRegData(b Bus, reg uint16, data ...uint16) {
	b.WriteReg(reg)
	for _, v := range data {
		b.WriteData(v)
	}
}

// ReadReg selects reg and returns one data word.
func ReadReg(b Bus, reg uint16) uint16 {
	b.WriteReg(reg)
	return b.ReadData()
}

// Err returns the error latched by b, if it latches any.
func Err(b Bus) error {
	if e, ok := b.(Errer); ok {
		return e.Err()
	}
	return nil
}

// Flush flushes buffered writes on b, if it buffers any.
func Flush(b Bus) error {
	if f, ok := b.(Flusher); ok {
		return f.Flush()
	}
	return Err(b)
}
