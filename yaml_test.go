/*
 * yaml_test.go, part of raspa-ase.
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

import (
	"reflect"
	"testing"
)

func TestYAMLParse(Te *testing.T) {
	doc := []byte(`SimulationType: MonteCarlo
NumberOfCycles: 10000
CutOff: 12.8
RemoveAtomNumberCodeFromLabel: true
ExternalTemperature: 300.0
`)
	P, err := YAMLParse(doc)
	if err != nil {
		Te.Fatalf("YAMLParse: %v", err)
	}
	want := []string{"SimulationType", "NumberOfCycles", "CutOff",
		"RemoveAtomNumberCodeFromLabel", "ExternalTemperature"}
	if got := P.Keys(); !reflect.DeepEqual(got, want) {
		Te.Fatalf("key order is %v, want %v", got, want)
	}
	text, err := InputString(P)
	if err != nil {
		Te.Fatalf("InputString: %v", err)
	}
	wantText := "SimulationType MonteCarlo\n" +
		"NumberOfCycles 10000\n" +
		"CutOff 12.8\n" +
		"RemoveAtomNumberCodeFromLabel Yes\n" +
		"ExternalTemperature 300\n"
	if text != wantText {
		Te.Errorf("got:\n%s\nwant:\n%s", text, wantText)
	}
}

func TestYAMLNested(Te *testing.T) {
	doc := []byte(`Framework 0:
  FrameworkName: framework0
  UnitCells: [3, 3, 3]
`)
	P, err := YAMLParse(doc)
	if err != nil {
		Te.Fatalf("YAMLParse: %v", err)
	}
	text, err := InputString(P)
	if err != nil {
		Te.Fatalf("InputString: %v", err)
	}
	want := "Framework 0\n    FrameworkName framework0\n    UnitCells 3 3 3\n"
	if text != want {
		Te.Errorf("got %q, want %q", text, want)
	}
}

func TestYAMLTopLevelNotMapping(Te *testing.T) {
	if _, err := YAMLParse([]byte("- 1\n- 2\n")); err == nil {
		Te.Error("a top-level sequence should be rejected")
	}
}

func TestYAMLEmptyDocument(Te *testing.T) {
	P, err := YAMLParse(nil)
	if err != nil {
		Te.Fatalf("YAMLParse on nothing: %v", err)
	}
	if P.Len() != 0 {
		Te.Errorf("empty document gave keys %v", P.Keys())
	}
}
