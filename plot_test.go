/*
 * plot_test.go, part of raspa-ase.
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
	"os"
	"reflect"
	"testing"
)

func blocksSection() *Params {
	sec := NewParams()
	sec.Set("Block[ 0]", SeqNums(-123.45))
	sec.Set("Block[ 1]", SeqNums(-110.2))
	sec.Set("Block[ 2]", SeqNums(-118.9))
	sec.Set("Average", SeqNums(-117.5, 6.1))
	return sec
}

func TestBlockSeries(Te *testing.T) {
	ys := BlockSeries(blocksSection())
	want := []float64{-123.45, -110.2, -118.9}
	if !reflect.DeepEqual(ys, want) {
		Te.Errorf("series is %v, want %v", ys, want)
	}
}

func TestPlotBlocks(Te *testing.T) {
	name := "test/blocks.png"
	err := PlotBlocks(blocksSection(), "Average total energy", name)
	if err != nil {
		Te.Fatalf("PlotBlocks: %v", err)
	}
	info, err := os.Stat(name)
	if err != nil {
		Te.Fatalf("the plot was not written: %v", err)
	}
	if info.Size() == 0 {
		Te.Error("the plot file is empty")
	}
}

func TestPlotBlocksNoBlocks(Te *testing.T) {
	sec := NewParams()
	sec.Set("Average", SeqNums(1.0))
	if err := PlotBlocks(sec, "nothing", "test/none.png"); err == nil {
		Te.Error("a section without block statistics should be fatal")
	}
}
