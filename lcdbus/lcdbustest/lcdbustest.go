// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdbustest is meant to be used to test panel drivers over a fake
// bus.
package lcdbustest

import (
	"fmt"
	"sync"

	"github.com/GermanBionicSystems/tftlcd/lcdbus"
)

// Op is one register selection followed by the data words written to it and
// the number of words read from it.
type Op struct {
	Reg   uint16
	Data  []uint16
	Reads int
}

func (o Op) String() string {
	return fmt.Sprintf("{%#04x %#04x r%d}", o.Reg, o.Data, o.Reads)
}

// Record implements lcdbus.Bus and lcdbus.TimingSetter.
//
// It records every operation. Reads pop from the per-register queue in
// Responses and return 0 once it is drained.
type Record struct {
	sync.Mutex
	Ops       []Op
	Responses map[uint16][]uint16
	// Accesses counts every bus cycle, writes and reads alike.
	Accesses int
	// Timing is the last write timing set, address then data setup.
	Timing [2]int
}

// NewRecord returns a Record answering reads from responses.
func NewRecord(responses map[uint16][]uint16) *Record {
	return &Record{Responses: responses}
}

func (r *Record) String() string {
	return "lcdbustest.Record"
}

// WriteReg implements lcdbus.Bus.
func (r *Record) WriteReg(reg uint16) {
	r.Lock()
	defer r.Unlock()
	r.Accesses++
	r.Ops = append(r.Ops, Op{Reg: reg})
}

// WriteData implements lcdbus.Bus.
func (r *Record) WriteData(v uint16) {
	r.Lock()
	defer r.Unlock()
	r.Accesses++
	cur := r.current()
	cur.Data = append(cur.Data, v)
}

// ReadData implements lcdbus.Bus.
func (r *Record) ReadData() uint16 {
	r.Lock()
	defer r.Unlock()
	r.Accesses++
	cur := r.current()
	cur.Reads++
	q := r.Responses[cur.Reg]
	if len(q) == 0 {
		return 0
	}
	r.Responses[cur.Reg] = q[1:]
	return q[0]
}

// SetWriteTiming implements lcdbus.TimingSetter.
func (r *Record) SetWriteTiming(addrSetup, dataSetup int) {
	r.Lock()
	defer r.Unlock()
	r.Timing = [2]int{addrSetup, dataSetup}
}

// Reset forgets the recorded operations and the access count.
func (r *Record) Reset() {
	r.Lock()
	defer r.Unlock()
	r.Ops = nil
	r.Accesses = 0
}

// Data returns every data word written to reg, in order.
func (r *Record) Data(reg uint16) []uint16 {
	r.Lock()
	defer r.Unlock()
	var out []uint16
	for _, o := range r.Ops {
		if o.Reg == reg {
			out = append(out, o.Data...)
		}
	}
	return out
}

func (r *Record) current() *Op {
	if len(r.Ops) == 0 {
		// Data without a register selection is recorded against 0xFFFF.
		r.Ops = append(r.Ops, Op{Reg: 0xFFFF})
	}
	return &r.Ops[len(r.Ops)-1]
}

var _ lcdbus.Bus = &Record{}
var _ lcdbus.TimingSetter = &Record{}
