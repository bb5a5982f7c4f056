// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"mime"
	"net/http"
	"sync"

	"periph.io/x/conn/v3/display"
)

// StreamOpts represents the options of a Stream.
type StreamOpts struct {
	// Width and Height of the emulated panel.
	Width, Height int
	// Format is used unless the request has a "format" parameter.
	Format Format
	// Quality of JPEG frames, 1 to 100. Defaults to 90.
	Quality int
}

// Stream is a panel emulator serving its content over HTTP.
//
// Each GET request receives the current frame right away, then a new frame
// after every Draw. Clients that fall behind skip frames. Halt ends all
// responses.
type Stream struct {
	format  Format
	quality int

	mu      sync.Mutex
	pix     *image.NRGBA
	frames  map[Format][]byte
	changed chan struct{}
	halted  chan struct{}
	once    sync.Once
}

// NewStream returns a Stream, initially black.
func NewStream(opts *StreamOpts) *Stream {
	if opts == nil {
		opts = &StreamOpts{}
	}
	q := opts.Quality
	if q <= 0 {
		q = 90
	}
	s := &Stream{
		format:  opts.Format,
		quality: q,
		pix:     image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		frames:  map[Format][]byte{},
		changed: make(chan struct{}),
		halted:  make(chan struct{}),
	}
	draw.Draw(s.pix, s.pix.Bounds(), image.Black, image.Point{}, draw.Src)
	return s
}

func (s *Stream) String() string {
	return fmt.Sprintf("Stream{%s, %s}", s.pix.Bounds().Size(), s.format)
}

// Halt implements conn.Resource.
//
// It ends the responses in flight; new requests get a single frame.
func (s *Stream) Halt() error {
	s.once.Do(func() { close(s.halted) })
	return nil
}

// ColorModel implements display.Drawer.
func (s *Stream) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (s *Stream) Bounds() image.Rectangle {
	return s.pix.Bounds()
}

// Draw implements display.Drawer.
func (s *Stream) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	draw.Draw(s.pix, r, src, sp, draw.Src)
	clear(s.frames)
	close(s.changed)
	s.changed = make(chan struct{})
	return nil
}

// frame returns the current frame encoded as f and a channel closed on the
// next change.
func (s *Stream) frame(f Format) ([]byte, <-chan struct{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.frames[f]
	if !ok {
		var err error
		if b, err = encode(s.pix, f, s.quality); err != nil {
			return nil, nil, err
		}
		s.frames[f] = b
	}
	return b, s.changed, nil
}

// ServeHTTP implements http.Handler.
//
// The "format" parameter selects png, jpeg or bmp frames.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "", http.StatusMethodNotAllowed)
		return
	}
	f := s.format
	if v := r.URL.Query().Get("format"); v != "" {
		var err error
		if f, err = ParseFormat(v); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	fw := newFrameWriter(w)
	w.Header().Set("Content-Type", mime.FormatMediaType("multipart/x-mixed-replace", map[string]string{"boundary": fw.boundary}))
	for {
		b, changed, err := s.frame(f)
		if err != nil {
			log.Printf("preview: %v", err)
			return
		}
		// A write error means the client went away.
		if err := fw.write(f.MIMEType(), b); err != nil {
			return
		}
		if fl, ok := w.(http.Flusher); ok {
			fl.Flush()
		}
		select {
		case <-changed:
		case <-s.halted:
			return
		case <-r.Context().Done():
			return
		}
	}
}

var (
	_ display.Drawer = &Stream{}
	_ http.Handler   = &Stream{}
)
