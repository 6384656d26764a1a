/*
 * doc.go, part of raspa-ase.
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

/*Package raspa interfaces Go programs to the RASPA molecular-simulation
engine. It translates between nested parameter trees and the two text
dialects RASPA speaks: the hierarchical simulation.input format RASPA reads,
and the loosely structured .data report files RASPA writes.


	**Capabilities**

    Ordered, case-preserving parameter trees with the case-insensitive
	lookup, pop and merge semantics RASPA expects.

    Serialization of parameter trees to simulation.input text, including
	Yes/No booleans, space-joined sequences and 4-space nesting.

    Heuristic parsing of .data reports back into nested data: section
	splitting on "=" fences, per-block statistics, averages, box lengths,
	per-species molecule counts, host/guest energy decompositions, Widom
	and Henry summaries. Reports are parsed best-effort and never rejected
	whole; diagnostics are collected as warnings.

    Suggested unit-cell replication counts from the lattice vectors and the
	interaction cutoff.

    A Handle that writes the input, launches $RASPA_DIR/bin/simulate and
	collects every report under Output/System_N, transparently reading
	gzipped data files.

    Parameter trees from YAML documents (order-preserving) and parse
	results to JSON (also order-preserving).

    Plots of per-block statistics via gonum/plot.

The parser targets the report dialect of RASPA 2.x. It extracts structure
losslessly but computes no physics: numbers are handed over exactly as RASPA
printed them.*/
package raspa
