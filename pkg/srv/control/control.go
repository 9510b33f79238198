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
	"sync"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/bus"
	"jinr.ru/greenlab/go-dds/pkg/config"
	"jinr.ru/greenlab/go-dds/pkg/device"
	"jinr.ru/greenlab/go-dds/pkg/log"
	"jinr.ru/greenlab/go-dds/pkg/srv/control/ifc"
)

// ControlServer owns the bus handle and the device. All chip access goes
// through it, one transaction at a time.
type ControlServer struct {
	context.Context
	*config.Config
	mu     sync.Mutex
	bus    bus.Bus
	device *device.Device
	state  ifc.State
}

var _ ifc.ControlServer = &ControlServer{}

func NewControlServer(ctx context.Context, cfg *config.Config) (*ControlServer, error) {
	log.Debug("Initializing control server for device %s", cfg.DeviceName)
	state, err := NewRegState(ctx, cfg)
	if err != nil {
		return nil, err
	}
	b, err := bus.New(cfg.Bus)
	if err != nil {
		state.Close()
		return nil, err
	}
	s := &ControlServer{
		Context: ctx,
		Config:  cfg,
		bus:     b,
		device:  device.NewDevice(cfg.DeviceName, b, cfg.MasterClock, state),
		state:   state,
	}
	return s, nil
}

// Run programs the configured initial waveform and serves the API until
// it returns. The chip is reset on the way out.
func (s *ControlServer) Run() error {
	defer s.shutdown()

	mode, err := ad9833.ParseMode(s.Config.Waveform)
	if err != nil {
		return err
	}
	if err := s.device.Init(mode, s.Config.Frequency); err != nil {
		return err
	}
	log.Info("Initial state: %s wave at %.2f Hz", mode, s.Config.Frequency)

	api, err := NewApiServer(s.Context, s.Config, s)
	if err != nil {
		return err
	}
	return api.Run()
}

func (s *ControlServer) shutdown() {
	if err := s.device.Reset(); err != nil {
		log.Warning("Reset on shutdown failed: %s", err)
	}
	s.bus.Close()
	s.state.Close()
}

// Apply ...
func (s *ControlServer) Apply(mode ad9833.Mode, freqHz float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device.Apply(mode, freqHz)
}

// SetPhase ...
func (s *ControlServer) SetPhase(phase uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device.SetPhase(phase)
}

// Reset ...
func (s *ControlServer) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device.Reset()
}

// Status ...
func (s *ControlServer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Device:      s.device.Name,
		Mode:        s.device.Mode().String(),
		Frequency:   s.device.Frequency(),
		Phase:       s.device.Phase(),
		MasterClock: s.device.MasterClock(),
	}
}

// RegRead returns the shadow of a single register.
func (s *ControlServer) RegRead(reg ad9833.Reg) (uint16, error) {
	return s.state.GetReg(reg, s.Config.DeviceName)
}

// RegReadAll returns the shadow of all written registers.
func (s *ControlServer) RegReadAll() (map[ad9833.Reg]uint16, error) {
	return s.state.GetRegAll(s.Config.DeviceName)
}
