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

// Package bus provides the SPI-style transports that shift 16-bit register
// words to the chip.
package bus

import (
	"time"

	"jinr.ru/greenlab/go-dds/pkg/config"
)

// Bus is a write-only SPI-style link to the chip.
type Bus interface {
	// WriteWord shifts out one 16-bit word, MSB first, with chip-select
	// asserted for the duration of the transfer.
	WriteWord(word uint16) error
	Close() error
}

// WriteFrame shifts out a word sequence in order, one chip-select window
// per word.
func WriteFrame(b Bus, words []uint16) error {
	for _, w := range words {
		if err := b.WriteWord(w); err != nil {
			return err
		}
	}
	return nil
}

// New opens the transport named by the bus config section.
func New(cfg *config.BusConfig) (Bus, error) {
	switch cfg.Type {
	case "gpio":
		return NewGPIO(cfg.GPIO.Chip, cfg.GPIO.Sclk, cfg.GPIO.Mosi, cfg.GPIO.CS,
			time.Duration(cfg.GPIO.HalfCycleUs)*time.Microsecond)
	case "buspirate":
		return NewBusPirate(cfg.Serial.Device, cfg.Serial.Baud)
	}
	return nil, config.ErrUnknownBusType{Type: cfg.Type}
}
