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

const (
	ConfigDir  = ".go-dds"
	ConfigFile = "config"
	DBFile     = "state.db"

	DefaultDeviceName = "ad9833"
	// DefaultMasterClock is the 25 MHz reference crystal of the common
	// AD9833 breakout boards.
	DefaultMasterClock = 25000000.0
	DefaultWaveform    = "sine"
	DefaultFrequency   = 1000.0
	DefaultIP          = "127.0.0.1"
	DefaultLogLevel    = "info"

	DefaultBusType = "gpio"

	DefaultGPIOChip        = "gpiochip0"
	DefaultGPIOSclk        = 11
	DefaultGPIOMosi        = 10
	DefaultGPIOCS          = 8
	DefaultGPIOHalfCycleUs = 1

	DefaultSerialDevice = "/dev/ttyUSB0"
	DefaultSerialBaud   = 115200
)
