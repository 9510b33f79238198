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
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/config"
)

func newTestState(t *testing.T) *RegState {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.SetPath(filepath.Join(t.TempDir(), "config"))
	state, err := NewRegState(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(state.Close)
	return state
}

func TestRegStateSetGet(t *testing.T) {
	state := newTestState(t)

	require.NoError(t, state.SetReg(ad9833.RegCtrl, 0x2100, config.DefaultDeviceName))
	require.NoError(t, state.SetReg(ad9833.RegFreq0, 0x69F1, config.DefaultDeviceName))

	value, err := state.GetReg(ad9833.RegCtrl, config.DefaultDeviceName)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x2100), value)

	// Later writes replace the shadow.
	require.NoError(t, state.SetReg(ad9833.RegCtrl, 0x2000, config.DefaultDeviceName))
	value, err = state.GetReg(ad9833.RegCtrl, config.DefaultDeviceName)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x2000), value)
}

func TestRegStateNotWritten(t *testing.T) {
	state := newTestState(t)

	_, err := state.GetReg(ad9833.RegPhase1, config.DefaultDeviceName)
	require.Error(t, err)
	assert.IsType(t, ErrRegNotWritten{}, err)
}

func TestRegStateGetAll(t *testing.T) {
	state := newTestState(t)

	require.NoError(t, state.SetReg(ad9833.RegCtrl, 0x2028, config.DefaultDeviceName))
	require.NoError(t, state.SetReg(ad9833.RegFreq0, 0x50C7, config.DefaultDeviceName))

	regs, err := state.GetRegAll(config.DefaultDeviceName)
	require.NoError(t, err)
	assert.Equal(t, map[ad9833.Reg]uint16{
		ad9833.RegCtrl:  0x2028,
		ad9833.RegFreq0: 0x50C7,
	}, regs)
}

func TestRegStateUnknownDevice(t *testing.T) {
	state := newTestState(t)

	err := state.SetReg(ad9833.RegCtrl, 0x2100, "nosuch")
	require.Error(t, err)
	assert.IsType(t, ErrBucketNotFound{}, err)
}
