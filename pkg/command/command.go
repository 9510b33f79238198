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

package command

import (
	"errors"
	"fmt"

	"github.com/imroc/req"

	"jinr.ru/greenlab/go-dds/pkg/config"
	"jinr.ru/greenlab/go-dds/pkg/srv/control"
)

type ApiClient struct {
	*config.Config
	ApiPrefix string
}

func NewApiClient(cfg *config.Config) *ApiClient {
	return &ApiClient{
		Config:    cfg,
		ApiPrefix: fmt.Sprintf("http://%s:%d/api", cfg.IP, control.ApiPort),
	}
}

// Status requests the currently applied output state
func (c *ApiClient) Status() (*control.Status, error) {
	r, err := req.Get(c.ApiPrefix + "/status")
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	status := &control.Status{}
	if err := r.ToJSON(status); err != nil {
		return nil, err
	}
	return status, nil
}

// WaveSet requests a waveform shape and frequency to be programmed
func (c *ApiClient) WaveSet(mode string, freqHz float64) (*control.Status, error) {
	setup := &control.WaveSetup{
		Mode:      mode,
		Frequency: freqHz,
	}
	r, err := req.Post(c.ApiPrefix+"/wave", req.BodyJSON(setup))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	status := &control.Status{}
	if err := r.ToJSON(status); err != nil {
		return nil, err
	}
	return status, nil
}

// PhaseSet requests the PHASE0 register to be programmed
func (c *ApiClient) PhaseSet(phase uint16) (*control.Status, error) {
	setup := &control.PhaseSetup{
		Phase: phase,
	}
	r, err := req.Post(c.ApiPrefix+"/phase", req.BodyJSON(setup))
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	status := &control.Status{}
	if err := r.ToJSON(status); err != nil {
		return nil, err
	}
	return status, nil
}

// Reset requests the chip to be held in reset, silencing the output
func (c *ApiClient) Reset() error {
	r, err := req.Post(c.ApiPrefix + "/reset")
	if err != nil {
		return err
	}
	if r.Response().StatusCode != 200 {
		return errors.New(r.Response().Status)
	}
	return nil
}

// RegRead requests the shadow value of a single register
func (c *ApiClient) RegRead(reg string) (string, error) {
	r, err := req.Get(fmt.Sprintf("%s/reg/%s", c.ApiPrefix, reg))
	if err != nil {
		return "", err
	}
	if r.Response().StatusCode != 200 {
		return "", errors.New(r.Response().Status)
	}
	regHex := &control.RegHex{}
	if err := r.ToJSON(regHex); err != nil {
		return "", err
	}
	return regHex.Value, nil
}

// RegReadAll requests the shadow values of all written registers
func (c *ApiClient) RegReadAll() (map[string]string, error) {
	r, err := req.Get(c.ApiPrefix + "/reg")
	if err != nil {
		return nil, err
	}
	if r.Response().StatusCode != 200 {
		return nil, errors.New(r.Response().Status)
	}
	var regs []*control.RegHex
	if err := r.ToJSON(&regs); err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, reg := range regs {
		result[reg.Reg] = reg.Value
	}
	return result, nil
}
