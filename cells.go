/*
 * cells.go, part of raspa-ase.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// Framework is a periodic structure handed to RASPA as "Framework N". Cell
// holds the three lattice vectors, in A, as rows. Info carries the free-form
// per-framework parameters (HeliumVoidFraction, UnitCells and so on) that
// end up in its simulation.input block.
type Framework struct {
	Cell [3][3]float64
	Info *Params
}

// empty reports a framework with no lattice, the RASPA convention for "no
// framework, use boxes".
func (F Framework) empty() bool {
	for _, v := range F.Cell {
		for _, x := range v {
			if x != 0 {
				return false
			}
		}
	}
	return true
}

// cross puts the cross product of 3-vectors a and b in dst.
func cross(dst, a, b *mat.VecDense) {
	dst.SetVec(0, a.AtVec(1)*b.AtVec(2)-a.AtVec(2)*b.AtVec(1))
	dst.SetVec(1, a.AtVec(2)*b.AtVec(0)-a.AtVec(0)*b.AtVec(2))
	dst.SetVec(2, a.AtVec(0)*b.AtVec(1)-a.AtVec(1)*b.AtVec(0))
}

// perpWidth returns the distance between the lattice planes spanned by v1
// and v2, measured along v3.
func perpWidth(v1, v2, v3 *mat.VecDense) float64 {
	c := mat.NewVecDense(3, nil)
	cross(c, v1, v2)
	den := mat.Norm(c, 2)
	if den == 0 {
		return 0
	}
	return math.Abs(mat.Dot(c, v3)) / den
}

// SuggestedCells returns, per axis, the minimum number of unit-cell
// replications so that the simulation box stays wider than twice the cutoff
// in every perpendicular direction. RASPA needs this to avoid interactions
// between periodic images within the cutoff sphere.
func SuggestedCells(cell [3][3]float64, cutoff float64) [3]int {
	a := mat.NewVecDense(3, cell[0][:])
	b := mat.NewVecDense(3, cell[1][:])
	c := mat.NewVecDense(3, cell[2][:])
	widths := [3]float64{
		perpWidth(b, c, a),
		perpWidth(c, a, b),
		perpWidth(a, b, c),
	}
	var ret [3]int
	for i, w := range widths {
		if w <= 0 {
			ret[i] = 1
			continue
		}
		ret[i] = int(math.Ceil(cutoff / (0.5 * w)))
	}
	return ret
}

// FrameworkParams assembles the "Framework N" blocks for a simulation input.
// Each non-empty framework gets FrameworkName frameworkN and a UnitCells
// suggestion derived from the cutoff, then its own Info is merged on top, so
// a user-supplied UnitCells (in any casing) wins over the suggestion.
func FrameworkParams(frameworks []Framework, cutoff float64) *Params {
	ret := NewParams()
	for i, fw := range frameworks {
		if fw.empty() {
			continue
		}
		cells := SuggestedCells(fw.Cell, cutoff)
		defaults := NewParams()
		defaults.Set("FrameworkName", Str(fmt.Sprintf("framework%d", i)))
		defaults.Set("UnitCells", SeqInts(cells[0], cells[1], cells[2]))
		ret.Set(fmt.Sprintf("Framework %d", i), Map(Merge(defaults, fw.Info)))
	}
	return ret
}
