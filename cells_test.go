/*
 * cells_test.go, part of raspa-ase.
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
 */

package raspa

import "testing"

var cubic10 = [3][3]float64{{10, 0, 0}, {0, 10, 0}, {0, 0, 10}}

func TestSuggestedCellsCubic(Te *testing.T) {
	//ceil(12.8/5) = 3 replications per axis
	if got := SuggestedCells(cubic10, 12.8); got != [3]int{3, 3, 3} {
		Te.Errorf("10 A cubic cell with 12.8 A cutoff gave %v, want [3 3 3]", got)
	}
	big := [3][3]float64{{30, 0, 0}, {0, 30, 0}, {0, 0, 30}}
	if got := SuggestedCells(big, 12.8); got != [3]int{1, 1, 1} {
		Te.Errorf("30 A cubic cell gave %v, want [1 1 1]", got)
	}
}

func TestSuggestedCellsTriclinic(Te *testing.T) {
	cell := [3][3]float64{{10, 0, 0}, {5, 10, 0}, {0, 0, 10}}
	got := SuggestedCells(cell, 12.8)
	//the a axis is squeezed by the tilted b vector: width 8.944 A
	if got != [3]int{3, 3, 3} {
		Te.Errorf("triclinic cell gave %v, want [3 3 3]", got)
	}
}

func TestFrameworkParams(Te *testing.T) {
	info := NewParams()
	info.Set("HeliumVoidFraction", Num(0.29))
	fws := []Framework{{Cell: cubic10, Info: info}}
	p := FrameworkParams(fws, 12.8)
	text, err := InputString(p)
	if err != nil {
		Te.Fatalf("InputString: %v", err)
	}
	want := "Framework 0\n    FrameworkName framework0\n    UnitCells 3 3 3\n    HeliumVoidFraction 0.29\n"
	if text != want {
		Te.Errorf("got %q, want %q", text, want)
	}
}

func TestFrameworkParamsUserCells(Te *testing.T) {
	info := NewParams()
	info.Set("unitcells", SeqInts(1, 1, 1))
	p := FrameworkParams([]Framework{{Cell: cubic10, Info: info}}, 12.8)
	fwv, _ := p.Get("Framework 0")
	fw, _ := fwv.Mapping()
	//the user's value wins, under the canonical casing
	keys := fw.Keys()
	if len(keys) != 2 || keys[1] != "UnitCells" {
		Te.Fatalf("framework keys are %v", keys)
	}
	v, _ := fw.Get("UnitCells")
	if v.String() != "1 1 1" {
		Te.Errorf("UnitCells is %q, want \"1 1 1\"", v.String())
	}
}

func TestFrameworkParamsSkipsEmpty(Te *testing.T) {
	fws := []Framework{
		{Cell: cubic10},
		{}, //no lattice: not a framework
		{Cell: cubic10},
	}
	p := FrameworkParams(fws, 12.8)
	keys := p.Keys()
	if len(keys) != 2 || keys[0] != "Framework 0" || keys[1] != "Framework 2" {
		Te.Errorf("frameworks are %v, want [Framework 0 Framework 2]", keys)
	}
}
