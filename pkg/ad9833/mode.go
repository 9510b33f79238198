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

// Mode selects the output waveform shape.
type Mode int

const (
	Sine Mode = iota
	Triangle
	Square
)

// ctrlBits returns the shape bits of the control word. Square output uses
// the MSB of the DAC data with DIV2 set, so the square appears at the
// programmed frequency rather than at half of it.
func (m Mode) ctrlBits() (uint16, error) {
	switch m {
	case Sine:
		return 0, nil
	case Triangle:
		return CtrlMode, nil
	case Square:
		return CtrlOpbiten | CtrlDiv2, nil
	}
	return 0, ErrInvalidMode{Mode: m}
}

func (m Mode) String() string {
	switch m {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	}
	return "unknown"
}

// ParseMode maps a waveform selector to a Mode. Both the single-letter
// selectors of the interactive loop (s, t, q) and the full names are
// accepted.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "s", "sine":
		return Sine, nil
	case "t", "triangle":
		return Triangle, nil
	case "q", "square":
		return Square, nil
	}
	return 0, ErrInvalidMode{Name: s}
}
