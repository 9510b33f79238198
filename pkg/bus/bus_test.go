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

package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-dds/pkg/config"
)

type recordBus struct {
	words []uint16
	err   error
}

func (b *recordBus) WriteWord(word uint16) error {
	if b.err != nil {
		return b.err
	}
	b.words = append(b.words, word)
	return nil
}

func (b *recordBus) Close() error {
	return nil
}

func TestWriteFrameOrder(t *testing.T) {
	b := &recordBus{}
	require.NoError(t, WriteFrame(b, []uint16{0x2100, 0x69F1, 0x4000, 0x2000}))
	assert.Equal(t, []uint16{0x2100, 0x69F1, 0x4000, 0x2000}, b.words)
}

func TestWriteFrameStopsOnError(t *testing.T) {
	busErr := errors.New("wire fell off")
	b := &recordBus{err: busErr}
	err := WriteFrame(b, []uint16{0x2100, 0x4000})
	assert.Equal(t, busErr, err)
	assert.Empty(t, b.words)
}

func TestNewUnknownBusType(t *testing.T) {
	_, err := New(&config.BusConfig{Type: "i2c"})
	require.Error(t, err)
	assert.IsType(t, config.ErrUnknownBusType{}, err)
}

func TestBulkMessage(t *testing.T) {
	// One 16-bit word is a two byte payload, count nibble 1.
	msg := bulkMessage([]byte{0x21, 0x00})
	assert.Equal(t, []byte{bpBulkTransfer | 0x01, 0x21, 0x00}, msg)
}
