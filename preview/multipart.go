// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// newBoundary returns a random boundary valid per RFC 2046 section 5.1.1.
func newBoundary() string {
	var b [30]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// frameWriter writes a never ending multipart/x-mixed-replace body. Every
// part is followed by the next boundary so the client displays it without
// waiting for the next frame. mime/multipart only writes the boundary ahead
// of a part.
type frameWriter struct {
	w        *bufio.Writer
	boundary string
	started  bool
}

func newFrameWriter(w io.Writer) *frameWriter {
	return &frameWriter{w: bufio.NewWriter(w), boundary: newBoundary()}
}

// write sends one complete part.
func (f *frameWriter) write(contentType string, body []byte) error {
	if !f.started {
		fmt.Fprintf(f.w, "--%s\r\n", f.boundary)
		f.started = true
	}
	fmt.Fprintf(f.w, "Content-Type: %s\r\nContent-Length: %d\r\n\r\n", contentType, len(body))
	f.w.Write(body)
	fmt.Fprintf(f.w, "\r\n--%s\r\n", f.boundary)
	return f.w.Flush()
}
