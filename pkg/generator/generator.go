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

// Package generator implements the interactive command loop of the tool.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"jinr.ru/greenlab/go-dds/pkg/ad9833"
	"jinr.ru/greenlab/go-dds/pkg/device"
)

const menu = `
--- waveform options ---
 s <freq> : sine wave at <freq> Hz
 t <freq> : triangle wave at <freq> Hz
 q <freq> : square wave at <freq> Hz
 x        : quit
`

const prompt = "enter command (e.g. s 5000) or 'x' to quit: "

type Generator struct {
	dev *device.Device
	in  *bufio.Scanner
	out io.Writer
}

func New(dev *device.Device, in io.Reader, out io.Writer) *Generator {
	return &Generator{
		dev: dev,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run reads commands until the quit command or end of input. Malformed
// input and encoding errors are reported and the loop re-prompts. Bus
// errors are fatal for that command only. The chip is reset on the way
// out.
func (g *Generator) Run() error {
	for {
		fmt.Fprint(g.out, menu)
		fmt.Fprint(g.out, prompt)
		if !g.in.Scan() {
			g.dev.Reset()
			return g.in.Err()
		}
		line := strings.ToLower(strings.TrimSpace(g.in.Text()))
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "x" {
			fmt.Fprintln(g.out, "exiting generator")
			return g.dev.Reset()
		}
		if len(fields) != 2 {
			fmt.Fprintln(g.out, "invalid command format, use: <wave type> <frequency>")
			continue
		}
		mode, err := ad9833.ParseMode(fields[0])
		if err != nil {
			fmt.Fprintln(g.out, err)
			continue
		}
		freq, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			fmt.Fprintf(g.out, "invalid frequency value: %s\n", fields[1])
			continue
		}
		if err := g.dev.Apply(mode, freq); err != nil {
			fmt.Fprintln(g.out, err)
			continue
		}
		fmt.Fprintf(g.out, "output set to %s wave at %.2f Hz\n", mode, freq)
	}
}
