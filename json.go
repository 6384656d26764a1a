/*
 * json.go, part of raspa-ase.
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

//JSON encoding of parameter trees and parse results, so other programs can
//consume them. Go maps would lose the entry order, so Params writes its
//object members itself, in insertion order.

package raspa

import (
	"bytes"
	"encoding/json"
	"strings"
)

func (P *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range P.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(P.vals[strings.ToLower(k)])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case isString:
		return json.Marshal(v.s)
	case isInt:
		return json.Marshal(v.i)
	case isFloat:
		return json.Marshal(v.f)
	case isBool:
		return json.Marshal(v.b)
	case isSeq:
		if v.seq == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.seq)
	case isMap:
		return json.Marshal(v.m)
	}
	return []byte("null"), nil
}
