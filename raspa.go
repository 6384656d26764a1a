/*
 * raspa.go, part of raspa-ase.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package raspa

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Fixed file names of a RASPA run directory.
const (
	SimulationInput = "simulation.input"
	stdoutName      = "raspa.stdout"
	stderrName      = "raspa.stderr"
)

// Handle sets up, runs and recovers results from a RASPA calculation, in the
// same spirit as the QM handles of goChem. The zero of everything is not
// usable; get one from NewHandle.
type Handle struct {
	command    string
	wrkdir     string
	frameworks []Framework
	boxes      []*Params
	components []*Params
	parser     *OutputParser
}

func NewHandle() *Handle {
	run := new(Handle)
	run.SetDefaults()
	return run
}

// SetDefaults resolves the RASPA command from $RASPA_DIR, falling back to a
// simulate binary in the working directory when the variable is unset, and
// points the handle at the current directory.
func (H *Handle) SetDefaults() {
	H.command = os.ExpandEnv("${RASPA_DIR}/bin/simulate")
	if H.command == "/bin/simulate" { //RASPA_DIR was not defined
		H.command = "./simulate"
	}
	H.wrkdir = "."
	H.parser = NewOutputParser()
}

func (H *Handle) SetCommand(name string) {
	H.command = name
}

// SetWorkDir sets the directory where the input is written, the engine runs
// and the Output tree is read from.
func (H *Handle) SetWorkDir(dir string) {
	H.wrkdir = dir
}

// AddFramework appends a framework. Frameworks become "Framework N" blocks
// in the order they were added.
func (H *Handle) AddFramework(fw Framework) {
	H.frameworks = append(H.frameworks, fw)
}

// AddBox appends a simulation box ("Box N" block).
func (H *Handle) AddBox(box *Params) {
	H.boxes = append(H.boxes, box)
}

// AddComponent appends an adsorbate component. The component must carry a
// MoleculeName parameter (any casing), which is popped and promoted into the
// "Component N MoleculeName X" block header.
func (H *Handle) AddComponent(comp *Params) {
	H.components = append(H.components, comp)
}

// BuildInput assembles the full parameter tree from the user parameters,
// the frameworks, the components and the boxes, and writes it as
// simulation.input in the working directory. The user parameters always win
// over the generated ones, compared case-insensitively. Framework structure
// files are not written here; RASPA reads them from the working directory by
// FrameworkName.
func (H *Handle) BuildInput(params *Params) error {
	if params == nil {
		params = NewParams()
	}
	cutoff := 12.0
	if v, ok := params.Get("CutOff"); ok {
		if f, ok2 := v.Float(); ok2 {
			cutoff = f
		}
	}
	full := Merge(params, FrameworkParams(H.frameworks, cutoff))
	for i, comp := range H.components {
		name, ok := comp.Pop("MoleculeName")
		if !ok {
			return CError{fmt.Sprintf("component %d has no MoleculeName", i), []string{"BuildInput"}}
		}
		block := NewParams()
		block.Set(fmt.Sprintf("Component %d MoleculeName %s", i, name.String()), Map(comp))
		full = Merge(full, block)
	}
	for i, box := range H.boxes {
		block := NewParams()
		block.Set(fmt.Sprintf("Box %d", i), Map(box))
		full = Merge(full, block)
	}
	err := InputWrite(filepath.Join(H.wrkdir, SimulationInput), full)
	if err != nil {
		return errDecorate(err, "BuildInput")
	}
	return nil
}

// Run runs RASPA on the previously written input, capturing its output to
// raspa.stdout and raspa.stderr in the working directory. With wait false
// the engine is left running in the background and the caller is expected
// to collect Results later.
func (H *Handle) Run(wait bool) (err error) {
	if wait {
		out, err := os.Create(filepath.Join(H.wrkdir, stdoutName))
		if err != nil {
			return err
		}
		defer out.Close()
		serr, err := os.Create(filepath.Join(H.wrkdir, stderrName))
		if err != nil {
			return err
		}
		defer serr.Close()
		command := exec.Command(H.command, SimulationInput)
		command.Dir = H.wrkdir
		command.Stdout = out
		command.Stderr = serr
		err = command.Run()
		return err
	}
	command := exec.Command("sh", "-c", "nohup "+H.command+" "+SimulationInput+" > "+stdoutName+" 2> "+stderrName+" &")
	command.Dir = H.wrkdir
	err = command.Start()
	return err
}

// Results walks the Output/System_N directories RASPA leaves in the working
// directory and parses every .data (or .data.gz) report found, keyed first
// by system directory and then by file name. A run that produced no output
// yields an empty mapping, not an error; partially parseable reports are
// still returned, with the problems available from Warnings.
func (H *Handle) Results() (*Params, error) {
	systems, err := filepath.Glob(filepath.Join(H.wrkdir, "Output", "System_*"))
	if err != nil {
		return nil, CError{err.Error(), []string{"Results"}}
	}
	ret := NewParams()
	for _, sys := range systems {
		plain, err := filepath.Glob(filepath.Join(sys, "*.data"))
		if err != nil {
			return nil, CError{err.Error(), []string{"Results"}}
		}
		packed, err := filepath.Glob(filepath.Join(sys, "*.data.gz"))
		if err != nil {
			return nil, CError{err.Error(), []string{"Results"}}
		}
		sysP := NewParams()
		for _, f := range append(plain, packed...) {
			parsed, err := H.parser.ParseFile(f)
			if err != nil {
				return nil, errDecorate(err, "Results")
			}
			sysP.Set(filepath.Base(f), Map(parsed))
		}
		ret.Set(filepath.Base(sys), Map(sysP))
	}
	return ret, nil
}

// Warnings returns the parse diagnostics accumulated by Results.
func (H *Handle) Warnings() []string {
	return H.parser.Warnings()
}
