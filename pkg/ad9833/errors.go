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
	"fmt"
)

// ErrOutOfRange returned when a requested frequency is negative, above the
// practical mclk/2 ceiling, or not representable in the 28-bit tuning word
type ErrOutOfRange struct {
	Frequency   float64
	MasterClock float64
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("Frequency out of range: %g Hz, must be within 0..%g Hz",
		e.Frequency, e.MasterClock/2)
}

// ErrInvalidMode returned when a waveform selector is not one of the three
// recognized shapes. Either Mode or Name is set depending on whether the
// bad value was numeric or textual.
type ErrInvalidMode struct {
	Mode Mode
	Name string
}

func (e ErrInvalidMode) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("Invalid waveform mode: %q, must be one of: s(ine), t(riangle), q (square)", e.Name)
	}
	return fmt.Sprintf("Invalid waveform mode: %d", int(e.Mode))
}

// ErrUnknownReg returned when a register name does not match any chip register
type ErrUnknownReg struct {
	Name string
}

func (e ErrUnknownReg) Error() string {
	return fmt.Sprintf("Unknown register: %s", e.Name)
}
