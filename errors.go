/*
 * errors.go, part of raspa-ase.
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

// Error is the interface for errors returned by this package. The Decorate
// method adds information (normally the caller's name) to the error as it is
// passed up, without wrapping it in another type. Passing an empty string
// just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error for this package. It fulfills Error.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

func (err CError) Decorate(deco string) []string {
	//The receiver is not a pointer, but err.deco is a slice, which is
	//a pointer itself, so appending works.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate asserts that err implements Error, decorates it with the
// caller's name and returns it. Errors from outside the package are wrapped
// into a CError first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		err2 = CError{err.Error(), []string{}}
	}
	err2.Decorate(caller)
	return err2
}
