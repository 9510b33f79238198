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

package control

import (
	"fmt"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
)

// ErrBucketNotFound returned when the shadow bucket for a device is missing
type ErrBucketNotFound struct {
	Name string
}

func (e ErrBucketNotFound) Error() string {
	return fmt.Sprintf("Bucket not found: %s", e.Name)
}

// ErrRegNotWritten returned when a register has no shadow entry yet
type ErrRegNotWritten struct {
	Reg ad9833.Reg
}

func (e ErrRegNotWritten) Error() string {
	return fmt.Sprintf("Register has not been written yet: %s", e.Reg)
}
