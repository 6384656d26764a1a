/*
 * plot.go, part of raspa-ase.
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
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BlockSeries collects, in section order, the first numeric value of every
// "Block" field of a parsed section. This is the per-block progression of a
// statistic, useful to eyeball equilibration.
func BlockSeries(section *Params) []float64 {
	var ys []float64
	for _, k := range section.Keys() {
		if !strings.HasPrefix(k, "Block") {
			continue
		}
		v, _ := section.Get(k)
		elems, ok := v.Elems()
		if !ok {
			continue
		}
		for _, e := range elems {
			if f, isnum := e.Float(); isnum {
				ys = append(ys, f)
				break
			}
		}
	}
	return ys
}

// PlotBlocks draws the block series of a parsed section (block index on X,
// statistic on Y) and saves it as a PNG to filename. It only re-plots
// numbers already extracted from the report; nothing is recomputed.
func PlotBlocks(section *Params, title, filename string) error {
	ys := BlockSeries(section)
	if len(ys) == 0 {
		return CError{"section has no block statistics to plot", []string{"PlotBlocks"}}
	}
	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Block"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return errDecorate(err, "PlotBlocks")
	}
	p.Add(line, points)
	if err := p.Save(12*vg.Centimeter, 8*vg.Centimeter, filename); err != nil {
		return errDecorate(err, "PlotBlocks")
	}
	return nil
}
