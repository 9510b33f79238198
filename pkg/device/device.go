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

package device

import (
	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/bus"
	"jinr.ru/greenlab/go-dds/pkg/log"
	"jinr.ru/greenlab/go-dds/pkg/srv/control/ifc"
)

// Device is one AD9833 on a bus. It owns the bus handle and remembers the
// last applied settings since the chip cannot be read back.
type Device struct {
	Name string
	bus  bus.Bus
	mclk float64

	mode  ad9833.Mode
	freq  float64
	phase uint16

	// state may be nil, then no register shadow is kept
	state ifc.State
}

// NewDevice ...
func NewDevice(name string, b bus.Bus, mclkHz float64, state ifc.State) *Device {
	return &Device{
		Name:  name,
		bus:   b,
		mclk:  mclkHz,
		mode:  ad9833.Sine,
		state: state,
	}
}

// write shifts the words out in order and mirrors each of them into the
// register shadow.
func (d *Device) write(words ...uint16) error {
	for _, w := range words {
		if err := d.bus.WriteWord(w); err != nil {
			return err
		}
		if d.state != nil {
			reg, _ := ad9833.Classify(w)
			if err := d.state.SetReg(reg, w, d.Name); err != nil {
				log.Warning("Register shadow update failed: %s: %s", reg, err)
			}
		}
	}
	return nil
}

// Init brings the chip into a known state: hold it in reset, then program
// the configured waveform.
func (d *Device) Init(mode ad9833.Mode, freqHz float64) error {
	if err := d.write(ad9833.CtrlReset); err != nil {
		return err
	}
	return d.Apply(mode, freqHz)
}

// Apply programs the waveform shape and the FREQ0 tuning word. The chip
// is held in reset while the tuning word halves are loaded.
func (d *Device) Apply(mode ad9833.Mode, freqHz float64) error {
	words, err := ad9833.Encode(mode, freqHz, d.mclk)
	if err != nil {
		return err
	}
	log.Debug("Programming %s: %s at %g Hz: %04x", d.Name, mode, freqHz, words)
	if err := d.write(words...); err != nil {
		return err
	}
	d.mode = mode
	d.freq = freqHz
	return nil
}

// SetPhase writes the PHASE0 register. The value is in chip units,
// 2π/4096 per step.
func (d *Device) SetPhase(phase uint16) error {
	if err := d.write(ad9833.PhaseWord(ad9833.Phase0Select, phase)); err != nil {
		return err
	}
	d.phase = phase & 0x0FFF
	return nil
}

// Reset asserts the reset bit, silencing the output until the next Apply.
func (d *Device) Reset() error {
	return d.write(ad9833.CtrlReset)
}

func (d *Device) Mode() ad9833.Mode {
	return d.mode
}

// Frequency is the last applied output frequency in hertz.
func (d *Device) Frequency() float64 {
	return d.freq
}

func (d *Device) Phase() uint16 {
	return d.phase
}

func (d *Device) MasterClock() float64 {
	return d.mclk
}
