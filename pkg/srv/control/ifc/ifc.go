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

package ifc

import (
	"jinr.ru/greenlab/go-dds/pkg/ad9833"
)

// State is the register shadow. The AD9833 is write-only, the shadow
// records the last word written to each of its registers.
type State interface {
	SetReg(reg ad9833.Reg, word uint16, deviceName string) error
	GetReg(reg ad9833.Reg, deviceName string) (uint16, error)
	GetRegAll(deviceName string) (map[ad9833.Reg]uint16, error)
	Close()
}

type ControlServer interface {
	Run() error
}

type ApiServer interface {
	Run() error
}
