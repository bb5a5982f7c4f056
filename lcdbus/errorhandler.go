// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdbus

import (
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management.
//
// Once err is set every call becomes a no-op.
type errorHandler struct {
	err error
}

func (eh *errorHandler) out(p gpio.PinOut, l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = p.Out(l)
}

func (eh *errorHandler) in(p gpio.PinIn) {
	if eh.err != nil {
		return
	}
	eh.err = p.In(gpio.PullNoChange, gpio.NoEdge)
}

func (eh *errorHandler) tx(c conn.Conn, w, r []byte) {
	if eh.err != nil {
		return
	}
	eh.err = c.Tx(w, r)
}
