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
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/config"
	"jinr.ru/greenlab/go-dds/pkg/log"
	"jinr.ru/greenlab/go-dds/pkg/srv/control/ifc"
)

const (
	ApiPort = 8000
)

// WaveSetup ...
type WaveSetup struct {
	Mode      string  `json:"mode"`
	Frequency float64 `json:"frequency_hz"`
}

// PhaseSetup ...
type PhaseSetup struct {
	Phase uint16 `json:"phase"`
}

// Status is the last applied output state.
type Status struct {
	Device      string  `json:"device"`
	Mode        string  `json:"mode"`
	Frequency   float64 `json:"frequency_hz"`
	Phase       uint16  `json:"phase"`
	MasterClock float64 `json:"master_clock_hz"`
}

// RegHex ...
type RegHex struct {
	Reg   string `json:"reg"`
	Value string `json:"value"` // hexadecimal
}

type ApiServer struct {
	context.Context
	*config.Config
	*mux.Router
	ctrl *ControlServer
}

var _ ifc.ApiServer = &ApiServer{}

func NewApiServer(ctx context.Context, cfg *config.Config, ctrl *ControlServer) (*ApiServer, error) {
	log.Info("Initializing API server with address: %s port: %d", cfg.IP, ApiPort)
	s := &ApiServer{
		Context: ctx,
		Config:  cfg,
		ctrl:    ctrl,
	}
	return s, nil
}

// Run ...
func (s *ApiServer) Run() error {
	log.Info("Starting API server: address: %s port: %d", s.Config.IP, ApiPort)
	s.configureRouter()
	httpServer := &http.Server{
		Handler: handlers.LoggingHandler(os.Stderr, s.Router),
		Addr:    fmt.Sprintf("%s:%d", s.Config.IP, ApiPort),
	}
	return httpServer.ListenAndServe()
}

func (s *ApiServer) configureRouter() {
	s.Router = mux.NewRouter()
	subRouter := s.Router.PathPrefix("/api").Subrouter()
	subRouter.HandleFunc("/status", s.handleStatus()).Methods("GET")
	subRouter.HandleFunc("/wave", s.handleWaveSet()).Methods("POST")
	subRouter.HandleFunc("/phase", s.handlePhaseSet()).Methods("POST")
	subRouter.HandleFunc("/reset", s.handleReset()).Methods("POST")
	subRouter.HandleFunc("/reg/{reg:[a-z0-9]+}", s.handleRegRead()).Methods("GET")
	subRouter.HandleFunc("/reg", s.handleRegReadAll()).Methods("GET")
}

func (s *ApiServer) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(s.ctrl.Status())
	}
}

func (s *ApiServer) handleWaveSet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setup := &WaveSetup{}
		err := json.NewDecoder(r.Body).Decode(setup)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Debug("Handling wave set request: mode: %s frequency: %g", setup.Mode, setup.Frequency)

		mode, err := ad9833.ParseMode(setup.Mode)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		err = s.ctrl.Apply(mode, setup.Frequency)
		if err != nil {
			switch err.(type) {
			case ad9833.ErrOutOfRange, ad9833.ErrInvalidMode:
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, err.Error(), http.StatusBadGateway)
			}
			return
		}
		json.NewEncoder(w).Encode(s.ctrl.Status())
	}
}

func (s *ApiServer) handlePhaseSet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		setup := &PhaseSetup{}
		err := json.NewDecoder(r.Body).Decode(setup)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Debug("Handling phase set request: phase: %d", setup.Phase)

		err = s.ctrl.SetPhase(setup.Phase)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(s.ctrl.Status())
	}
}

func (s *ApiServer) handleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling reset request")
		if err := s.ctrl.Reset(); err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
	}
}

func (s *ApiServer) handleRegRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		log.Debug("Handling reg read request: reg: %s", vars["reg"])

		reg, err := ad9833.ParseReg(vars["reg"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		value, err := s.ctrl.RegRead(reg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(&RegHex{Reg: reg.String(), Value: fmt.Sprintf("0x%04x", value)})
	}
}

func (s *ApiServer) handleRegReadAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Handling reg read all request")

		regs, err := s.ctrl.RegReadAll()
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		regsHex := []*RegHex{}
		for reg := ad9833.RegCtrl; reg < ad9833.RegLimit; reg++ {
			value, ok := regs[reg]
			if !ok {
				continue
			}
			regsHex = append(regsHex, &RegHex{Reg: reg.String(), Value: fmt.Sprintf("0x%04x", value)})
		}
		json.NewEncoder(w).Encode(regsHex)
	}
}
