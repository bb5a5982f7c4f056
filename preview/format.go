// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/bmp"
)

// Format is the encoding of the frames of a Stream.
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case BMP:
		return "BMP"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MIMEType returns the content type of a frame.
func (f Format) MIMEType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case BMP:
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}

// ParseFormat returns the Format named by a "format" URL parameter.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	}
	return PNG, fmt.Errorf("preview: unknown format %q", s)
}

var pngEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

// encode returns img encoded as f. quality only applies to JPEG.
func encode(img image.Image, f Format, quality int) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch f {
	case PNG:
		err = pngEncoder.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality})
	case BMP:
		err = bmp.Encode(&buf, img)
	default:
		err = fmt.Errorf("preview: cannot encode %s", f)
	}
	return buf.Bytes(), err
}
