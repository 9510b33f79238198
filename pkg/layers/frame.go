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

package layers

import (
	"encoding/binary"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

const (
	// FrameLayerNum identifies the layer
	FrameLayerNum = 2033
)

// FrameLayer is a burst of 16-bit register words shifted out to the chip,
// MSB word first, two big-endian bytes per word, matching the chip's
// MSB-first SPI framing.
type FrameLayer struct {
	layers.BaseLayer
	Words []uint16
}

var FrameLayerType = gopacket.RegisterLayerType(FrameLayerNum,
	gopacket.LayerTypeMetadata{Name: "FrameLayerType", Decoder: gopacket.DecodeFunc(DecodeFrameLayer)})

// LayerType returns the type of the frame layer in the layer catalog
func (f *FrameLayer) LayerType() gopacket.LayerType {
	return FrameLayerType
}

// Serialize serializes the frame to a preallocated buffer.
func (f *FrameLayer) Serialize(buf []byte) {
	for i, w := range f.Words {
		binary.BigEndian.PutUint16(buf[i*2:i*2+2], w)
	}
}

// SerializeTo serializes the frame layer into bytes and writes the bytes
// to the SerializeBuffer
func (f *FrameLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	bytes, err := b.AppendBytes(2 * len(f.Words))
	if err != nil {
		return err
	}
	f.Serialize(bytes)
	return nil
}

func (f *FrameLayer) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data)%2 != 0 {
		df.SetTruncated()
		return ErrOddFrameLength{Length: len(data)}
	}
	f.BaseLayer = layers.BaseLayer{
		Contents: data[:],
		Payload:  []byte{},
	}
	f.Words = make([]uint16, len(data)/2)
	for i := range f.Words {
		f.Words[i] = binary.BigEndian.Uint16(data[i*2 : i*2+2])
	}
	return nil
}

func DecodeFrameLayer(data []byte, p gopacket.PacketBuilder) error {
	f := &FrameLayer{}
	err := f.DecodeFromBytes(data, p)
	if err != nil {
		return err
	}
	p.AddLayer(f)
	return nil
}

// FrameBytes serializes a word burst to wire bytes. Convenience for
// transports that hand whole frames to a bridge.
func FrameBytes(words []uint16) ([]byte, error) {
	f := &FrameLayer{Words: words}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{}
	if err := gopacket.SerializeLayers(buf, opts, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
