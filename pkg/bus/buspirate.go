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
	"io"
	"sync"
	"time"

	"github.com/pkg/term"

	"jinr.ru/greenlab/go-dds/pkg/layers"
	"jinr.ru/greenlab/go-dds/pkg/log"
)

// Bus Pirate binary mode commands.
const (
	bpReset        byte = 0x00
	bpEnterSPI     byte = 0x01
	bpCSLow        byte = 0x02
	bpCSHigh       byte = 0x03
	bpBulkTransfer byte = 0x10 // low nibble is byte count - 1
	// power on, no pullups
	bpConfigPeriph byte = 0x40 | 0x08
	// 1 MHz clock
	bpConfigSpeed byte = 0x60 | 0x03
	// 3.3V outputs, clock idle high so the chip sees its falling-edge framing
	bpConfigSPI byte = 0x80 | 0x08 | 0x04

	bpAck byte = 0x01

	bpBanner    = "BBIO1"
	bpSPIBanner = "SPI1"
)

// BusPirate drives the chip through a Bus Pirate SPI bridge on a serial
// port. Each word goes out as one chip-select window around a two-byte
// bulk transfer.
type BusPirate struct {
	mu   sync.Mutex
	port *term.Term
}

// NewBusPirate opens the serial port and puts the bridge into binary SPI
// mode.
func NewBusPirate(device string, baud int) (*BusPirate, error) {
	port, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, err
	}
	port.SetReadTimeout(time.Second)
	b := &BusPirate{port: port}
	if err := b.enterBinaryMode(); err != nil {
		port.Close()
		return nil, err
	}
	if err := b.setupSPI(); err != nil {
		port.Close()
		return nil, err
	}
	return b, nil
}

// enterBinaryMode resets the bridge out of its terminal interface. The
// banner may show up after any of the reset bytes, so keep nudging until
// it does.
func (b *BusPirate) enterBinaryMode() error {
	for i := 0; i < 20; i++ {
		if _, err := b.port.Write([]byte{bpReset}); err != nil {
			return err
		}
		if err := b.expect(bpBanner); err == nil {
			return nil
		}
	}
	return ErrBridge{What: "bridge did not enter binary mode"}
}

func (b *BusPirate) setupSPI() error {
	if _, err := b.port.Write([]byte{bpEnterSPI}); err != nil {
		return err
	}
	if err := b.expect(bpSPIBanner); err != nil {
		return err
	}
	for _, c := range []byte{bpConfigPeriph, bpConfigSpeed, bpConfigSPI} {
		if err := b.command(c); err != nil {
			return err
		}
	}
	return nil
}

// command sends a single command byte and checks the ack.
func (b *BusPirate) command(c byte) error {
	if _, err := b.port.Write([]byte{c}); err != nil {
		return err
	}
	resp := make([]byte, 1)
	if _, err := io.ReadFull(b.port, resp); err != nil {
		return err
	}
	if resp[0] != bpAck {
		return ErrBridge{What: "command not acknowledged"}
	}
	return nil
}

func (b *BusPirate) expect(banner string) error {
	resp := make([]byte, len(banner))
	if _, err := io.ReadFull(b.port, resp); err != nil {
		return err
	}
	if string(resp) != banner {
		return ErrBridge{What: "unexpected response: " + string(resp)}
	}
	return nil
}

// WriteWord shifts out one word with chip-select asserted around the
// transfer.
func (b *BusPirate) WriteWord(word uint16) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.port == nil {
		return ErrClosed
	}
	payload, err := layers.FrameBytes([]uint16{word})
	if err != nil {
		return err
	}
	if err := b.command(bpCSLow); err != nil {
		return err
	}
	if err := b.bulkTransfer(payload); err != nil {
		return err
	}
	return b.command(bpCSHigh)
}

// bulkMessage frames payload for the bulk transfer command. The low
// nibble carries the byte count minus one, so up to 16 bytes per command.
func bulkMessage(payload []byte) []byte {
	return append([]byte{bpBulkTransfer | byte(len(payload)-1)}, payload...)
}

// bulkTransfer writes payload bytes through the bridge. The bridge acks
// the command and echoes one byte read from the bus per byte written.
func (b *BusPirate) bulkTransfer(payload []byte) error {
	msg := bulkMessage(payload)
	log.Debug("Bulk transfer: % x", msg)
	if _, err := b.port.Write(msg); err != nil {
		return err
	}
	resp := make([]byte, 1+len(payload))
	if _, err := io.ReadFull(b.port, resp); err != nil {
		return err
	}
	if resp[0] != bpAck {
		return ErrBridge{What: "bulk transfer not acknowledged"}
	}
	return nil
}

// Close powers the bridge back into its terminal interface and closes the
// port.
func (b *BusPirate) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.port == nil {
		return ErrClosed
	}
	b.port.Write([]byte{bpReset})
	err := b.port.Close()
	b.port = nil
	return err
}
