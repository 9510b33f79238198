/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

// Package ad9833 encodes the 16-bit register words the AD9833 DDS chip
// expects on its SPI interface. The encoding is pure computation, shifting
// the words onto a bus is the caller's concern.
package ad9833

import (
	"math"
)

// Control register bits. Bit positions follow the AD9833 datasheet.
const (
	CtrlB28     uint16 = 1 << 13
	CtrlHLB     uint16 = 1 << 12
	CtrlFSelect uint16 = 1 << 11
	CtrlPSelect uint16 = 1 << 10
	CtrlReset   uint16 = 1 << 8
	CtrlSleep1  uint16 = 1 << 7
	CtrlSleep12 uint16 = 1 << 6
	CtrlOpbiten uint16 = 1 << 5
	CtrlDiv2    uint16 = 1 << 3
	CtrlMode    uint16 = 1 << 1
)

// Register select patterns occupying bits 15:14 of a word. For the two
// phase registers bit 13 selects between PHASE0 and PHASE1.
const (
	Freq0Select  uint16 = 0x4000
	Freq1Select  uint16 = 0x8000
	Phase0Select uint16 = 0xC000
	Phase1Select uint16 = 0xE000
)

const (
	// TuningBits is the width of the frequency tuning word.
	TuningBits = 28
	// MaxTuning is the first value that no longer fits the tuning word.
	MaxTuning = 1 << TuningBits

	freqMask  uint16 = 0x3FFF
	phaseMask uint16 = 0x0FFF
)

// Reg identifies a destination register of the chip.
type Reg int

const (
	RegCtrl Reg = iota
	RegFreq0
	RegFreq1
	RegPhase0
	RegPhase1
	RegLimit
)

func (r Reg) String() string {
	switch r {
	case RegCtrl:
		return "ctrl"
	case RegFreq0:
		return "freq0"
	case RegFreq1:
		return "freq1"
	case RegPhase0:
		return "phase0"
	case RegPhase1:
		return "phase1"
	}
	return "unknown"
}

// ParseReg is the inverse of Reg.String
func ParseReg(s string) (Reg, error) {
	for r := RegCtrl; r < RegLimit; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, ErrUnknownReg{Name: s}
}

// TuningWord computes the 28-bit frequency tuning word
// N = round(f * 2^28 / mclk). Frequencies below zero, above mclk/2 or not
// representable in 28 bits are rejected, never truncated.
func TuningWord(freqHz, mclkHz float64) (uint32, error) {
	if freqHz < 0 || freqHz > mclkHz/2 {
		return 0, ErrOutOfRange{Frequency: freqHz, MasterClock: mclkHz}
	}
	n := math.Round(freqHz * MaxTuning / mclkHz)
	if n >= MaxTuning {
		return 0, ErrOutOfRange{Frequency: freqHz, MasterClock: mclkHz}
	}
	return uint32(n), nil
}

// FreqWords splits a tuning word into its 14-bit halves, each tagged with
// the register select pattern in bits 15:14. The LSB half goes out first
// when B28 is set.
func FreqWords(sel uint16, n uint32) (lsb, msb uint16) {
	lsb = sel | uint16(n)&freqMask
	msb = sel | uint16(n>>14)&freqMask
	return lsb, msb
}

// DecodeFreqWords reassembles a tuning word from the two tagged halves.
func DecodeFreqWords(lsb, msb uint16) uint32 {
	return uint32(lsb&freqMask) | uint32(msb&freqMask)<<14
}

// Frequency converts a tuning word back to hertz.
func Frequency(n uint32, mclkHz float64) float64 {
	return float64(n) * mclkHz / MaxTuning
}

// PhaseWord builds a tagged 12-bit phase register word.
func PhaseWord(sel, phase uint16) uint16 {
	return sel | phase&phaseMask
}

// Ctrl builds the control word for a waveform shape. B28 is always set
// since frequency registers are loaded as two consecutive 14-bit writes.
func Ctrl(mode Mode, reset bool) (uint16, error) {
	shape, err := mode.ctrlBits()
	if err != nil {
		return 0, err
	}
	word := CtrlB28 | shape
	if reset {
		word |= CtrlReset
	}
	return word, nil
}

// Encode produces the word sequence that reprograms FREQ0 and the
// waveform shape in one go:
//
//	ctrl with RESET set, FREQ0 LSB14, FREQ0 MSB14, ctrl with RESET cleared
//
// The chip is held in reset while the tuning word halves are loaded and
// released afterwards.
func Encode(mode Mode, freqHz, mclkHz float64) ([]uint16, error) {
	ctrl, err := Ctrl(mode, false)
	if err != nil {
		return nil, err
	}
	n, err := TuningWord(freqHz, mclkHz)
	if err != nil {
		return nil, err
	}
	lsb, msb := FreqWords(Freq0Select, n)
	return []uint16{ctrl | CtrlReset, lsb, msb, ctrl}, nil
}

// Classify maps a raw word to the register it addresses and the payload
// bits with the tag stripped. Control words keep their full value.
func Classify(word uint16) (Reg, uint16) {
	switch word & 0xC000 {
	case Freq0Select:
		return RegFreq0, word & freqMask
	case Freq1Select:
		return RegFreq1, word & freqMask
	case Phase0Select:
		// bit 13 picks the phase register
		if word&0x2000 != 0 {
			return RegPhase1, word & phaseMask
		}
		return RegPhase0, word & phaseMask
	}
	return RegCtrl, word
}
