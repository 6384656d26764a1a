/*
 * input.go, part of raspa-ase.
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
	"strings"
)

// InputString renders a parameter tree in the simulation.input format read
// by RASPA. Each nesting level adds four spaces of indentation, sequences
// are space-joined on the key's line, and booleans become Yes/No. An empty
// tree renders as the empty string. A tree that cannot be rendered (a cycle,
// or a mapping nested inside a sequence) returns an error; nothing is
// silently dropped.
func InputString(P *Params) (string, error) {
	var b strings.Builder
	err := writeLevel(&b, P, 0, make(map[*Params]bool))
	if err != nil {
		return "", errDecorate(err, "InputString")
	}
	return b.String(), nil
}

// InputWrite writes the rendered parameter tree to filename, normally
// "simulation.input" in the run directory.
func InputWrite(filename string, P *Params) error {
	text, err := InputString(P)
	if err != nil {
		return errDecorate(err, "InputWrite")
	}
	f, err := os.Create(filename)
	if err != nil {
		return CError{err.Error(), []string{"InputWrite"}}
	}
	defer f.Close()
	_, err = f.WriteString(text)
	if err != nil {
		return CError{err.Error(), []string{"InputWrite"}}
	}
	return nil
}

func writeLevel(b *strings.Builder, P *Params, depth int, seen map[*Params]bool) error {
	if P == nil {
		return nil
	}
	if seen[P] {
		return CError{"parameter tree contains a cycle", []string{"writeLevel"}}
	}
	seen[P] = true
	defer delete(seen, P)
	ind := strings.Repeat("    ", depth)
	for _, k := range P.keys {
		v := P.vals[strings.ToLower(k)]
		switch v.kind {
		case isMap:
			fmt.Fprintf(b, "%s%s\n", ind, k)
			if err := writeLevel(b, v.m, depth+1, seen); err != nil {
				return err
			}
		case isSeq:
			texts := make([]string, len(v.seq))
			for i, e := range v.seq {
				if e.kind == isMap || e.kind == isSeq {
					return CError{fmt.Sprintf("parameter %q: sequence elements must be scalars", k), []string{"writeLevel"}}
				}
				texts[i] = e.String()
			}
			fmt.Fprintf(b, "%s%s %s\n", ind, k, strings.Join(texts, " "))
		default:
			fmt.Fprintf(b, "%s%s %s\n", ind, k, v.String())
		}
	}
	return nil
}
