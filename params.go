/*
 * params.go, part of raspa-ase.
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
	"strconv"
	"strings"
)

// vkind tags the variants of Value. The set is closed: the serializer and
// the output parser switch over it exhaustively.
type vkind int8

const (
	isString vkind = iota
	isInt
	isFloat
	isBool
	isSeq
	isMap
)

// Value is one node of a parameter tree: a scalar (string, int, float or
// bool), a sequence of Values, or a nested Params mapping. RASPA has no
// true/false literals, so boolean scalars render as "Yes"/"No".
type Value struct {
	kind vkind
	s    string
	i    int
	f    float64
	b    bool
	seq  []Value
	m    *Params
}

func Str(s string) Value { return Value{kind: isString, s: s} }

func Int(n int) Value { return Value{kind: isInt, i: n} }

func Num(f float64) Value { return Value{kind: isFloat, f: f} }

func Bool(b bool) Value { return Value{kind: isBool, b: b} }

// Seq builds a sequence Value. Sequences render space-separated on a single
// input line, so their elements are expected to be scalars.
func Seq(elems ...Value) Value { return Value{kind: isSeq, seq: elems} }

func SeqInts(ns ...int) Value {
	elems := make([]Value, len(ns))
	for i, n := range ns {
		elems[i] = Int(n)
	}
	return Seq(elems...)
}

func SeqNums(fs ...float64) Value {
	elems := make([]Value, len(fs))
	for i, f := range fs {
		elems[i] = Num(f)
	}
	return Seq(elems...)
}

// Map wraps a Params mapping as a Value so it can be nested.
func Map(p *Params) Value { return Value{kind: isMap, m: p} }

// Mapping returns the nested Params of a mapping Value.
func (v Value) Mapping() (*Params, bool) {
	if v.kind != isMap {
		return nil, false
	}
	return v.m, true
}

// Elems returns the elements of a sequence Value.
func (v Value) Elems() ([]Value, bool) {
	if v.kind != isSeq {
		return nil, false
	}
	return v.seq, true
}

// Float returns the numeric value of an int or float scalar.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case isInt:
		return float64(v.i), true
	case isFloat:
		return v.f, true
	}
	return 0, false
}

// IsNum reports whether the Value is an int or float scalar.
func (v Value) IsNum() bool {
	return v.kind == isInt || v.kind == isFloat
}

// String returns the input-file token for a scalar Value (booleans become
// Yes/No). Sequences are space-joined. Mappings have no token form; they
// yield an empty string here and a proper error from the serializer.
func (v Value) String() string {
	switch v.kind {
	case isString:
		return v.s
	case isInt:
		return strconv.Itoa(v.i)
	case isFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case isBool:
		if v.b {
			return "Yes"
		}
		return "No"
	case isSeq:
		texts := make([]string, len(v.seq))
		for i, e := range v.seq {
			texts[i] = e.String()
		}
		return strings.Join(texts, " ")
	}
	return ""
}

// clone deep-copies the Value. Scalars are copied by value; sequences and
// mappings get fresh backing storage.
func (v Value) clone() Value {
	switch v.kind {
	case isSeq:
		elems := make([]Value, len(v.seq))
		for i, e := range v.seq {
			elems[i] = e.clone()
		}
		return Value{kind: isSeq, seq: elems}
	case isMap:
		return Value{kind: isMap, m: v.m.Clone()}
	}
	return v
}

// Params is an ordered mapping from parameter names to Values. Iteration
// order is insertion order and determines the serialized line order. Names
// keep the casing they were first inserted with; Get, Pop, Set and Merge
// compare names case-insensitively, which is how RASPA reads them.
type Params struct {
	keys []string         //original casing, insertion order
	vals map[string]Value //keyed by lower-cased name
}

func NewParams() *Params {
	return &Params{vals: make(map[string]Value)}
}

func (P *Params) Len() int {
	if P == nil {
		return 0
	}
	return len(P.keys)
}

// Keys returns the parameter names in insertion order, original casing.
func (P *Params) Keys() []string {
	if P == nil {
		return nil
	}
	ret := make([]string, len(P.keys))
	copy(ret, P.keys)
	return ret
}

// Set stores a value under key. If a name already matches case-insensitively,
// its value is replaced but the stored casing and position are kept, so
// overriding "CutOff" with "cutoff" does not reorder or rename the entry.
func (P *Params) Set(key string, v Value) {
	low := strings.ToLower(key)
	if _, ok := P.vals[low]; !ok {
		P.keys = append(P.keys, key)
	}
	P.vals[low] = v
}

// Get looks a parameter up by name, ignoring case.
func (P *Params) Get(key string) (Value, bool) {
	if P == nil {
		return Value{}, false
	}
	v, ok := P.vals[strings.ToLower(key)]
	return v, ok
}

// GetDefault is Get with a fallback value for absent names.
func (P *Params) GetDefault(key string, def Value) Value {
	if v, ok := P.Get(key); ok {
		return v
	}
	return def
}

// Pop removes a parameter by name, ignoring case, and returns its value.
// The mapping is modified in place. The second return is false if the name
// was not present.
func (P *Params) Pop(key string) (Value, bool) {
	if P == nil {
		return Value{}, false
	}
	low := strings.ToLower(key)
	v, ok := P.vals[low]
	if !ok {
		return Value{}, false
	}
	delete(P.vals, low)
	for i, k := range P.keys {
		if strings.ToLower(k) == low {
			P.keys = append(P.keys[:i], P.keys[i+1:]...)
			break
		}
	}
	return v, true
}

// Clone deep-copies the mapping, including nested mappings and sequences.
func (P *Params) Clone() *Params {
	if P == nil {
		return nil
	}
	ret := NewParams()
	for _, k := range P.keys {
		ret.Set(k, P.vals[strings.ToLower(k)].clone())
	}
	return ret
}

// Merge combines two parameter mappings without mutating either. Names from
// secondary override case-insensitive matches in primary, keeping primary's
// original casing and position; names only in secondary are appended at the
// end in secondary's order and casing.
func Merge(primary, secondary *Params) *Params {
	ret := primary.Clone()
	if ret == nil {
		ret = NewParams()
	}
	if secondary == nil {
		return ret
	}
	for _, k := range secondary.keys {
		ret.Set(k, secondary.vals[strings.ToLower(k)].clone())
	}
	return ret
}
