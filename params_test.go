/*
 * params_test.go, part of raspa-ase.
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

func TestMerge(Te *testing.T) {
	d1 := NewParams()
	d1.Set("a", Int(1))
	d1.Set("b", Int(2))
	d2 := NewParams()
	d2.Set("A", Int(3))
	d2.Set("C", Int(4))
	m := Merge(d1, d2)
	keys := m.Keys()
	want := []string{"a", "b", "C"}
	if len(keys) != len(want) {
		Te.Fatalf("merged keys %v, want %v", keys, want)
	}
	for i, k := range want {
		if keys[i] != k {
			Te.Errorf("merged key %d is %q, want %q", i, keys[i], k)
		}
	}
	for k, n := range map[string]float64{"a": 3, "b": 2, "C": 4} {
		v, ok := m.Get(k)
		if !ok {
			Te.Fatalf("merged map misses %q", k)
		}
		if f, _ := v.Float(); f != n {
			Te.Errorf("merged %q is %v, want %v", k, f, n)
		}
	}
	//primary must not have been touched
	if v, _ := d1.Get("a"); v.String() != "1" {
		Te.Errorf("Merge mutated its primary argument: a is %v", v)
	}
	if _, ok := d1.Get("C"); ok {
		Te.Errorf("Merge mutated its primary argument: C appeared")
	}
}

func TestGet(Te *testing.T) {
	d := NewParams()
	d.Set("a", Int(1))
	d.Set("b", Int(2))
	if v, ok := d.Get("A"); !ok || v.String() != "1" {
		Te.Errorf("case-insensitive Get failed: %v %v", v, ok)
	}
	if _, ok := d.Get("c"); ok {
		Te.Errorf("Get found a missing key")
	}
	if v := d.GetDefault("c", Int(3)); v.String() != "3" {
		Te.Errorf("GetDefault returned %v, want 3", v)
	}
}

func TestPop(Te *testing.T) {
	d := NewParams()
	d.Set("a", Int(1))
	d.Set("b", Int(2))
	v, ok := d.Pop("A")
	if !ok || v.String() != "1" {
		Te.Fatalf("Pop(A) returned %v %v", v, ok)
	}
	if d.Len() != 1 {
		Te.Errorf("Pop left %d entries, want 1", d.Len())
	}
	if _, ok := d.Get("a"); ok {
		Te.Errorf("popped key still present")
	}
	if _, ok := d.Pop("c"); ok {
		Te.Errorf("Pop found a missing key")
	}
}

func TestSetKeepsCasing(Te *testing.T) {
	d := NewParams()
	d.Set("CutOff", Num(12.0))
	d.Set("first", Int(1))
	d.Set("CUTOFF", Num(14.0))
	keys := d.Keys()
	if len(keys) != 2 || keys[0] != "CutOff" || keys[1] != "first" {
		Te.Errorf("override changed key order or casing: %v", keys)
	}
	if v, _ := d.Get("cutoff"); v.String() != "14" {
		Te.Errorf("override did not replace the value: %v", v)
	}
}

func TestCloneIsDeep(Te *testing.T) {
	inner := NewParams()
	inner.Set("g", Int(5))
	d := NewParams()
	d.Set("f", Map(inner))
	d.Set("s", SeqInts(1, 2))
	c := d.Clone()
	ci, _ := c.Get("f")
	cm, _ := ci.Mapping()
	cm.Set("g", Int(9))
	if v, _ := inner.Get("g"); v.String() != "5" {
		Te.Errorf("Clone shares nested mappings with the original")
	}
}
