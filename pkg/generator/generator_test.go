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

package generator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/device"
)

const mclk = 25000000.0

type recordBus struct {
	words []uint16
}

func (b *recordBus) WriteWord(word uint16) error {
	b.words = append(b.words, word)
	return nil
}

func (b *recordBus) Close() error {
	return nil
}

func run(t *testing.T, script string) (*recordBus, string) {
	t.Helper()
	b := &recordBus{}
	dev := device.NewDevice("ad9833", b, mclk, nil)
	out := &bytes.Buffer{}
	g := New(dev, strings.NewReader(script), out)
	require.NoError(t, g.Run())
	return b, out.String()
}

func TestSessionProgramsWaves(t *testing.T) {
	b, out := run(t, "s 1000\nq 5000\nx\n")

	sine, err := ad9833.Encode(ad9833.Sine, 1000.0, mclk)
	require.NoError(t, err)
	square, err := ad9833.Encode(ad9833.Square, 5000.0, mclk)
	require.NoError(t, err)
	want := append(append([]uint16{}, sine...), square...)
	// Quit resets the chip.
	want = append(want, ad9833.CtrlReset)

	assert.Equal(t, want, b.words)
	assert.Contains(t, out, "output set to sine wave at 1000.00 Hz")
	assert.Contains(t, out, "output set to square wave at 5000.00 Hz")
	assert.Contains(t, out, "exiting generator")
}

func TestMalformedInputReprompts(t *testing.T) {
	b, out := run(t, "zz\nq bogus\nw 100\nx\n")

	assert.Equal(t, []uint16{ad9833.CtrlReset}, b.words, "bad commands must not touch the bus")
	assert.Contains(t, out, "invalid command format")
	assert.Contains(t, out, "invalid frequency value: bogus")
	assert.Contains(t, out, "Invalid waveform mode")
}

func TestOutOfRangeReported(t *testing.T) {
	b, out := run(t, "t -5\ns 30000000\nx\n")

	assert.Equal(t, []uint16{ad9833.CtrlReset}, b.words)
	assert.Contains(t, out, "Frequency out of range")
}

func TestUppercaseAndPaddingAccepted(t *testing.T) {
	b, _ := run(t, "  T 440  \nX\n")

	triangle, err := ad9833.Encode(ad9833.Triangle, 440.0, mclk)
	require.NoError(t, err)
	assert.Equal(t, append(append([]uint16{}, triangle...), ad9833.CtrlReset), b.words)
}

func TestEOFResetsChip(t *testing.T) {
	b, _ := run(t, "s 1000\n")
	require.NotEmpty(t, b.words)
	assert.Equal(t, ad9833.CtrlReset, b.words[len(b.words)-1])
}
