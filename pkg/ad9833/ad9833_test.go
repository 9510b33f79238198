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

package ad9833

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const mclk = 25000000.0

func TestEncodeSine1kHz(t *testing.T) {
	// Known values: N = round(1000 * 2^28 / 25 MHz) = 10737, which fits
	// entirely in the low 14 bits.
	words, err := Encode(Sine, 1000.0, mclk)
	require.NoError(t, err)
	require.Len(t, words, 4)
	assert.Equal(t, CtrlB28|CtrlReset, words[0])
	assert.Equal(t, Freq0Select|10737, words[1])
	assert.Equal(t, Freq0Select, words[2])
	assert.Equal(t, CtrlB28, words[3])
}

func TestEncodeReleasesReset(t *testing.T) {
	words, err := Encode(Triangle, 440.0, mclk)
	require.NoError(t, err)
	require.Len(t, words, 4)
	assert.NotZero(t, words[0]&CtrlReset, "reset must be asserted while loading")
	assert.Zero(t, words[3]&CtrlReset, "reset must be released afterwards")
	assert.Equal(t, words[0], words[3]|CtrlReset, "control words differ only in the reset bit")
}

func TestEncodeSquareShapeBits(t *testing.T) {
	words, err := Encode(Square, 5000.0, mclk)
	require.NoError(t, err)
	ctrl := words[3]
	assert.NotZero(t, ctrl&CtrlOpbiten, "square output uses the DAC MSB")
	assert.NotZero(t, ctrl&CtrlDiv2, "square output at the programmed frequency")
	assert.Zero(t, ctrl&CtrlMode, "triangle bit must be clear for square")
}

func TestEncodeTriangleShapeBits(t *testing.T) {
	words, err := Encode(Triangle, 5000.0, mclk)
	require.NoError(t, err)
	ctrl := words[3]
	assert.NotZero(t, ctrl&CtrlMode)
	assert.Zero(t, ctrl&CtrlOpbiten)
	assert.Zero(t, ctrl&CtrlDiv2)
}

func TestEncodeInvalidMode(t *testing.T) {
	_, err := Encode(Mode(4), 1000.0, mclk)
	require.Error(t, err)
	assert.IsType(t, ErrInvalidMode{}, err)
}

func TestTuningWordBoundaries(t *testing.T) {
	n, err := TuningWord(0, mclk)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Just below the practical ceiling.
	n, err = TuningWord(mclk/2-1, mclk)
	require.NoError(t, err)
	assert.Less(t, n, uint32(MaxTuning))

	_, err = TuningWord(mclk, mclk)
	assert.IsType(t, ErrOutOfRange{}, err)

	_, err = TuningWord(-1.0, mclk)
	assert.IsType(t, ErrOutOfRange{}, err)
}

func TestEncodeNegativeFrequency(t *testing.T) {
	_, err := Encode(Triangle, -1.0, mclk)
	require.Error(t, err)
	assert.IsType(t, ErrOutOfRange{}, err)
}

func TestFreqWordsTagging(t *testing.T) {
	lsb, msb := FreqWords(Freq0Select, 10737)
	assert.Equal(t, Freq0Select|10737, lsb)
	assert.Equal(t, Freq0Select, msb)

	// A value with bits above the low 14.
	lsb, msb = FreqWords(Freq1Select, 0x0ABCDEF)
	assert.Equal(t, Freq1Select, lsb&0xC000)
	assert.Equal(t, Freq1Select, msb&0xC000)
	assert.Equal(t, uint32(0x0ABCDEF), DecodeFreqWords(lsb, msb))
}

func TestTuningWordRoundTrip(t *testing.T) {
	// Reconstructing hertz from the two tagged words must land within one
	// quantization step of the request, mclk/2^28 ~ 0.093 Hz at 25 MHz.
	step := mclk / MaxTuning
	rapid.Check(t, func(t *rapid.T) {
		freq := rapid.Float64Range(0, mclk/2).Draw(t, "freq")
		n, err := TuningWord(freq, mclk)
		require.NoError(t, err)
		lsb, msb := FreqWords(Freq0Select, n)
		back := Frequency(DecodeFreqWords(lsb, msb), mclk)
		assert.InDelta(t, freq, back, step)
	})
}

func TestPhaseWordMasksTag(t *testing.T) {
	assert.Equal(t, Phase0Select|0x0123, PhaseWord(Phase0Select, 0x0123))
	// Payload bits above 12 must not leak into the tag.
	assert.Equal(t, Phase1Select|0x0FFF, PhaseWord(Phase1Select, 0xFFFF))
}

func TestClassify(t *testing.T) {
	ctrl, err := Ctrl(Sine, true)
	require.NoError(t, err)

	reg, value := Classify(ctrl)
	assert.Equal(t, RegCtrl, reg)
	assert.Equal(t, ctrl, value)

	reg, value = Classify(Freq0Select | 10737)
	assert.Equal(t, RegFreq0, reg)
	assert.Equal(t, uint16(10737), value)

	reg, _ = Classify(Freq1Select | 1)
	assert.Equal(t, RegFreq1, reg)

	reg, value = Classify(PhaseWord(Phase0Select, 42))
	assert.Equal(t, RegPhase0, reg)
	assert.Equal(t, uint16(42), value)

	reg, _ = Classify(PhaseWord(Phase1Select, 42))
	assert.Equal(t, RegPhase1, reg)
}

func TestParseMode(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Mode
	}{
		{"s", Sine},
		{"sine", Sine},
		{"t", Triangle},
		{"triangle", Triangle},
		{"q", Square},
		{"square", Square},
	} {
		mode, err := ParseMode(tc.in)
		require.NoError(t, err, "selector %q", tc.in)
		assert.Equal(t, tc.want, mode)
	}

	_, err := ParseMode("w")
	assert.IsType(t, ErrInvalidMode{}, err)
}

func TestParseRegRoundTrip(t *testing.T) {
	for r := RegCtrl; r < RegLimit; r++ {
		parsed, err := ParseReg(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	_, err := ParseReg("freq9")
	assert.IsType(t, ErrUnknownReg{}, err)
}
