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
	"io/ioutil"
	"net"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// GPIOConfig describes the GPIO lines used for the bit-banged SPI link.
// Offsets are line offsets on the GPIO character device, not header pin numbers.
type GPIOConfig struct {
	Chip        string `json:"chip"`
	Sclk        int    `json:"sclk"`
	Mosi        int    `json:"mosi"`
	CS          int    `json:"cs"`
	HalfCycleUs int    `json:"half_cycle_us"`
}

// SerialConfig describes the serial port of a Bus Pirate SPI bridge.
type SerialConfig struct {
	Device string `json:"device"`
	Baud   int    `json:"baud"`
}

type BusConfig struct {
	Type   string        `json:"type"` // gpio or buspirate
	GPIO   *GPIOConfig   `json:"gpio,omitempty"`
	Serial *SerialConfig `json:"serial,omitempty"`
}

type Config struct {
	DeviceName  string     `json:"device_name"`
	MasterClock float64    `json:"master_clock_hz"`
	Waveform    string     `json:"waveform"`
	Frequency   float64    `json:"frequency_hz"`
	IP          *net.IP    `json:"ip"`
	LogLevel    string     `json:"log_level"`
	Bus         *BusConfig `json:"bus"`
	filepath    string
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(&c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	err = ioutil.WriteFile(c.filepath, data, 0644)
	if err != nil {
		return err
	}

	return nil
}

// Load reads the config file if there is one. A missing file is not an error,
// the defaults stay in effect.
func (c *Config) Load() error {
	data, err := ioutil.ReadFile(c.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) String() (string, error) {
	data, err := yaml.Marshal(&c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DBPath is the location of the register shadow database.
func (c *Config) DBPath() string {
	return filepath.Join(filepath.Dir(c.filepath), DBFile)
}

// SetPath overrides the config file location.
func (c *Config) SetPath(path string) {
	c.filepath = path
}

func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir, ConfigFile)
}

func NewDefaultConfig() *Config {
	ip := net.ParseIP(DefaultIP)
	return &Config{
		DeviceName:  DefaultDeviceName,
		MasterClock: DefaultMasterClock,
		Waveform:    DefaultWaveform,
		Frequency:   DefaultFrequency,
		IP:          &ip,
		LogLevel:    DefaultLogLevel,
		Bus: &BusConfig{
			Type: DefaultBusType,
			GPIO: &GPIOConfig{
				Chip:        DefaultGPIOChip,
				Sclk:        DefaultGPIOSclk,
				Mosi:        DefaultGPIOMosi,
				CS:          DefaultGPIOCS,
				HalfCycleUs: DefaultGPIOHalfCycleUs,
			},
			Serial: &SerialConfig{
				Device: DefaultSerialDevice,
				Baud:   DefaultSerialBaud,
			},
		},
		filepath: DefaultConfigPath(),
	}
}
