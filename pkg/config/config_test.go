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

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	cfg.Waveform = "triangle"
	cfg.Frequency = 440.0
	cfg.Bus.Type = "buspirate"
	cfg.Bus.Serial.Device = "/dev/ttyACM0"
	require.NoError(t, cfg.Persist(false))

	loaded := NewDefaultConfig()
	loaded.SetPath(path)
	require.NoError(t, loaded.Load())
	assert.Equal(t, "triangle", loaded.Waveform)
	assert.Equal(t, 440.0, loaded.Frequency)
	assert.Equal(t, "buspirate", loaded.Bus.Type)
	assert.Equal(t, "/dev/ttyACM0", loaded.Bus.Serial.Device)
	assert.Equal(t, DefaultMasterClock, loaded.MasterClock)
}

func TestPersistRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")

	cfg := NewDefaultConfig()
	cfg.SetPath(path)
	require.NoError(t, cfg.Persist(false))

	err := cfg.Persist(false)
	require.Error(t, err)
	assert.IsType(t, ErrConfigFileExists{}, err)

	assert.NoError(t, cfg.Persist(true))
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SetPath(filepath.Join(t.TempDir(), "config"))
	require.NoError(t, cfg.Load())
	assert.Equal(t, DefaultWaveform, cfg.Waveform)
	assert.Equal(t, DefaultFrequency, cfg.Frequency)
}

func TestDBPathNextToConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SetPath("/tmp/x/config")
	assert.Equal(t, filepath.Join("/tmp/x", DBFile), cfg.DBPath())
}
