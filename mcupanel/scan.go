// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mcupanel

import "fmt"

// ScanDir is the order in which the controller advances its GRAM pointer
// after each pixel write.
type ScanDir uint8

// The eight raster orders. The first half is row-major, the second half
// column-major.
const (
	L2RU2D ScanDir = iota // left to right, top to bottom
	L2RD2U                // left to right, bottom to top
	R2LU2D                // right to left, top to bottom
	R2LD2U                // right to left, bottom to top
	U2DL2R                // top to bottom, left to right
	U2DR2L                // top to bottom, right to left
	D2UL2R                // bottom to top, left to right
	D2UR2L                // bottom to top, right to left
)

// DefaultScanDir is applied on every orientation change.
const DefaultScanDir = L2RU2D

func (s ScanDir) String() string {
	if int(s) < len(scanDirNames) {
		return scanDirNames[s]
	}
	return fmt.Sprintf("ScanDir(%d)", uint8(s))
}

var scanDirNames = []string{"L2RU2D", "L2RD2U", "R2LU2D", "R2LD2U", "U2DL2R", "U2DR2L", "D2UL2R", "D2UR2L"}

// Memory access control bits.
const (
	madctlMY  = 0x80 // row address order, bottom to top
	madctlMX  = 0x40 // column address order, right to left
	madctlMV  = 0x20 // row/column exchange
	madctlBGR = 0x08
)

var scanBits = [8]uint16{
	L2RU2D: 0,
	L2RD2U: madctlMY,
	R2LU2D: madctlMX,
	R2LD2U: madctlMY | madctlMX,
	U2DL2R: madctlMV,
	U2DR2L: madctlMV | madctlMX,
	D2UL2R: madctlMV | madctlMY,
	D2UR2L: madctlMV | madctlMY | madctlMX,
}

// rotated maps a requested direction to the one the controller needs when
// the display is rotated 90 degrees from the controller's native scan.
var rotated = [8]ScanDir{
	L2RU2D: D2UL2R,
	L2RD2U: D2UR2L,
	R2LU2D: U2DL2R,
	R2LD2U: U2DR2L,
	U2DL2R: L2RD2U,
	U2DR2L: L2RU2D,
	D2UL2R: R2LD2U,
	D2UR2L: R2LU2D,
}

// ColumnMajor returns true when the controller advances down columns.
func (s ScanDir) ColumnMajor() bool {
	return s >= U2DL2R
}
