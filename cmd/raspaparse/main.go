//raspaparse converts RASPA .data report files into JSON. It takes either a
//single report file (gzipped or not) or a run directory, in which case every
//report under Output/System_N is included, keyed by system and file name.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	raspa "github.com/Quantum-Accelerators/raspa-ase"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Output   string `short:"o" long:"output" description:"Write the JSON document to this file instead of stdout"`
	Pretty   bool   `short:"p" long:"pretty" description:"Indent the JSON output"`
	Warnings bool   `short:"w" long:"warnings" description:"Print parser diagnostics to stderr"`
	Args     struct {
		Path string `positional-arg-name:"data-file-or-run-dir"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(&opts); err != nil {
		fmt.Fprintln(os.Stderr, "raspaparse:", err)
		os.Exit(1)
	}
}

func run(opts *options) error {
	info, err := os.Stat(opts.Args.Path)
	if err != nil {
		return err
	}
	op := raspa.NewOutputParser()
	var result *raspa.Params
	if info.IsDir() {
		result, err = parseRunDir(op, opts.Args.Path)
	} else {
		result, err = op.ParseFile(opts.Args.Path)
	}
	if err != nil {
		return err
	}
	if opts.Warnings {
		for _, w := range op.Warnings() {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
	}
	var doc []byte
	if opts.Pretty {
		doc, err = json.MarshalIndent(result, "", "  ")
	} else {
		doc, err = json.Marshal(result)
	}
	if err != nil {
		return err
	}
	doc = append(doc, '\n')
	if opts.Output != "" {
		return os.WriteFile(opts.Output, doc, 0644)
	}
	_, err = os.Stdout.Write(doc)
	return err
}

// parseRunDir mirrors Handle.Results for a directory given on the command
// line: every .data and .data.gz report under Output/System_* is parsed.
func parseRunDir(op *raspa.OutputParser, dir string) (*raspa.Params, error) {
	systems, err := filepath.Glob(filepath.Join(dir, "Output", "System_*"))
	if err != nil {
		return nil, err
	}
	ret := raspa.NewParams()
	for _, sys := range systems {
		plain, err := filepath.Glob(filepath.Join(sys, "*.data"))
		if err != nil {
			return nil, err
		}
		packed, err := filepath.Glob(filepath.Join(sys, "*.data.gz"))
		if err != nil {
			return nil, err
		}
		sysP := raspa.NewParams()
		for _, f := range append(plain, packed...) {
			parsed, err := op.ParseFile(f)
			if err != nil {
				return nil, err
			}
			sysP.Set(filepath.Base(f), raspa.Map(parsed))
		}
		ret.Set(filepath.Base(sys), raspa.Map(sysP))
	}
	return ret, nil
}
