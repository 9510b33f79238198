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
	"sync"
	"time"

	"github.com/warthog618/go-gpiocdev"
)

const consumer = "go-dds"

// GPIO is a bit-banged 3-wire SPI master on Linux GPIO character device
// lines. The AD9833 latches data on the falling clock edge and expects the
// clock to idle high, so the lines are requested with SCLK and FSYNC high.
type GPIO struct {
	mu   sync.Mutex
	sclk *gpiocdev.Line
	mosi *gpiocdev.Line
	cs   *gpiocdev.Line
	// half the clock cycle time
	half time.Duration
}

// NewGPIO requests the three output lines from the given chip.
func NewGPIO(chip string, sclk, mosi, cs int, half time.Duration) (*GPIO, error) {
	sclkLine, err := gpiocdev.RequestLine(chip, sclk, gpiocdev.AsOutput(1), gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, err
	}
	mosiLine, err := gpiocdev.RequestLine(chip, mosi, gpiocdev.AsOutput(0), gpiocdev.WithConsumer(consumer))
	if err != nil {
		sclkLine.Close()
		return nil, err
	}
	csLine, err := gpiocdev.RequestLine(chip, cs, gpiocdev.AsOutput(1), gpiocdev.WithConsumer(consumer))
	if err != nil {
		sclkLine.Close()
		mosiLine.Close()
		return nil, err
	}
	return &GPIO{
		sclk: sclkLine,
		mosi: mosiLine,
		cs:   csLine,
		half: half,
	}, nil
}

// WriteWord shifts out one word MSB first with chip-select held low.
func (g *GPIO) WriteWord(word uint16) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sclk == nil {
		return ErrClosed
	}
	if err := g.cs.SetValue(0); err != nil {
		return err
	}
	time.Sleep(g.half)
	for i := 15; i >= 0; i-- {
		if err := g.mosi.SetValue(int(word>>uint(i)) & 1); err != nil {
			return err
		}
		// the chip latches on this falling edge
		if err := g.sclk.SetValue(0); err != nil {
			return err
		}
		time.Sleep(g.half)
		if err := g.sclk.SetValue(1); err != nil {
			return err
		}
		time.Sleep(g.half)
	}
	return g.cs.SetValue(1)
}

// Close releases the requested lines.
func (g *GPIO) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sclk == nil {
		return ErrClosed
	}
	g.sclk.Close()
	g.mosi.Close()
	g.cs.Close()
	g.sclk = nil
	g.mosi = nil
	g.cs = nil
	return nil
}
