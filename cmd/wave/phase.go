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

package wave

import (
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-dds/pkg/command"
	"jinr.ru/greenlab/go-dds/pkg/config"
)

func NewPhaseCommand() *cobra.Command {
	var phase uint16
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Set the phase register, 2pi/4096 per step",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			status, err := apiClient.PhaseSet(phase)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "phase set to %d\n", status.Phase)
			return nil
		},
	}
	cmd.Flags().Uint16Var(&phase, PhaseOptionName, 0, "Phase in chip units (0..4095)")

	return cmd
}
