// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdbus implements the command/data buses MCU interface TFT
// controllers hang off.
//
// Three transports are provided:
//
// Conn drives a 4-wire serial panel through a periph conn.Conn (usually a
// SPI port) and a data/command GPIO line.
//
// Parallel bit-bangs the 16-bit Intel 8080 interface over GPIO lines.
//
// FMC writes the register pair an STM32 flexible memory controller bank
// exposes in physical memory, mapped through periph's pmem package.
//
// Datasheets
//
// https://www.st.com/resource/en/reference_manual/rm0090-stm32f405415-stm32f407417-stm32f427437-and-stm32f429439-advanced-armbased-32bit-mcus-stmicroelectronics.pdf
// (FMC chapter, NOR/PSRAM controller)
package lcdbus
