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

package reg

import (
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/command"
	"jinr.ru/greenlab/go-dds/pkg/config"
)

func NewGetCommand() *cobra.Command {
	var regName string
	cfg := config.NewDefaultConfig()
	cfg.Load()
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get register shadow values",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := command.NewApiClient(cfg)
			if regName != "" {
				value, err := apiClient.RegRead(regName)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", regName, value)
				return nil
			}
			regs, err := apiClient.RegReadAll()
			if err != nil {
				return err
			}
			for r := ad9833.RegCtrl; r < ad9833.RegLimit; r++ {
				value, ok := regs[r.String()]
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", r, value)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&regName, RegOptionName, "", "Register name: ctrl, freq0, freq1, phase0, phase1. All if omitted")

	return cmd
}
