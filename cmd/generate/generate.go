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

package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/bus"
	"jinr.ru/greenlab/go-dds/pkg/config"
	"jinr.ru/greenlab/go-dds/pkg/device"
	"jinr.ru/greenlab/go-dds/pkg/generator"
)

const (
	BusOptionName = "bus"
)

// NewCommand creates the interactive generator command. It owns the bus
// handle directly, without the control server in between.
func NewCommand() *cobra.Command {
	var busType string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Interactively drive the waveform generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if busType != "" {
				cfg.Bus.Type = busType
			}
			b, err := bus.New(cfg.Bus)
			if err != nil {
				return err
			}
			defer b.Close()
			dev := device.NewDevice(cfg.DeviceName, b, cfg.MasterClock, nil)
			mode, err := ad9833.ParseMode(cfg.Waveform)
			if err != nil {
				return err
			}
			if err := dev.Init(mode, cfg.Frequency); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initial state: %s wave at %.2f Hz\n", mode, cfg.Frequency)
			return generator.New(dev, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
	cmd.Flags().StringVar(&busType, BusOptionName, "", "Bus transport: gpio or buspirate")

	return cmd
}
