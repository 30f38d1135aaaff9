/*
 * gbplot.go, part of gbsa.
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

//Package gbplot draws diagnostic figures for GB/VI softcore parameter
//stores: the quintic switching curve and the distribution of atomic radii.
//The figures are for eyeballing a configuration before a run, nothing more.
package gbplot

import (
	"fmt"

	gbsa "github.com/ghorbanimahdi73/openmm"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//SwitchingCurve samples the quintic softcore switching function of par
//over its switching domain at the given number of points and writes the
//curve to plotname.png. It is an error for par to use a scaling method
//other than QuinticSpline, or for points to be fewer than 2.
func SwitchingCurve(par *gbsa.GBVISoftcore, points int, title, plotname string) error {
	if par.ScalingMethod() != gbsa.QuinticSpline {
		return fmt.Errorf("gbplot: the %v scaling method has no switching curve to plot", par.ScalingMethod())
	}
	if points < 2 {
		return fmt.Errorf("gbplot: need at least 2 points to plot a curve, got %d", points)
	}
	lo, hi := par.SwitchingDomain()
	pts := make(plotter.XYs, points)
	for i := range pts {
		x := lo + float64(i)*(hi-lo)/float64(points-1)
		s, _ := gbsa.QuinticSwitch(x, lo, hi)
		pts[i].X = x
		pts[i].Y = s
	}
	p := basicPlot(title, "1/R^3", "S")
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(13*vg.Centimeter, 10*vg.Centimeter, filename)
}

//RadiiHistogram writes a histogram of the atomic radii of par, with the
//given number of bins, to plotname.png. It errors if the radii have not
//been set: plotting must never allocate a parameter array behind the
//caller's back.
func RadiiHistogram(par *gbsa.GBVISoftcore, bins int, title, plotname string) error {
	if bins < 1 {
		return fmt.Errorf("gbplot: need at least 1 bin, got %d", bins)
	}
	col, err := par.RadiiCol()
	if err != nil {
		return err
	}
	vals := make(plotter.Values, col.Len())
	for i := range vals {
		vals[i] = col.AtVec(i)
	}
	p := basicPlot(title, "radius (nm)", "atoms")
	h, err := plotter.NewHist(vals, bins)
	if err != nil {
		return err
	}
	p.Add(h)
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(13*vg.Centimeter, 10*vg.Centimeter, filename)
}
