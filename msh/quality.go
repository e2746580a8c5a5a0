// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CellArea returns the signed area of a cell computed over its corner
// vertices. Positive area means counter-clockwise orientation.
func (o *Mesh) CellArea(c *Cell) float64 {
	a := o.Verts[c.Verts[0]].C
	b := o.Verts[c.Verts[1]].C
	d := o.Verts[c.Verts[2]].C
	return ((b[0]-a[0])*(d[1]-a[1]) - (d[0]-a[0])*(b[1]-a[1])) / 2.0
}

// CellQuality returns a triangle shape quality in (0,1]: the ratio of the
// cell area to the area of the equilateral triangle with the same summed
// squared edge lengths. 1.0 corresponds to an equilateral triangle.
func (o *Mesh) CellQuality(c *Cell) float64 {
	sum := 0.0
	for e := 0; e < 3; e++ {
		a := o.Verts[c.Verts[e]].C
		b := o.Verts[c.Verts[(e+1)%3]].C
		sum += (b[0]-a[0])*(b[0]-a[0]) + (b[1]-a[1])*(b[1]-a[1])
	}
	return 4.0 * math.Sqrt(3.0) * o.CellArea(c) / sum
}

// Quality returns the minimum and average cell quality of the mesh
func (o *Mesh) Quality() (qmin, qavg float64) {
	qmin = math.MaxFloat64
	for _, c := range o.Cells {
		q := o.CellQuality(c)
		if q < qmin {
			qmin = q
		}
		qavg += q
	}
	qavg /= float64(len(o.Cells))
	return
}

// RegionArea returns the total area of the cells with the given tag
func (o *Mesh) RegionArea(ctag int) (area float64) {
	for _, c := range o.CellTag2cells[ctag] {
		area += o.CellArea(c)
	}
	return
}

// Check verifies topological consistency: all cells positively oriented,
// interior corner edges shared by exactly two cells and boundary edges by
// one, and tagged edges lying on the mesh boundary or interface
func (o *Mesh) Check() (err error) {

	// orientation
	for _, c := range o.Cells {
		if o.CellArea(c) <= 0 {
			return chk.Err("cell %d has non-positive area", c.Id)
		}
	}

	// edge sharing
	type edgeKey struct{ a, b int }
	count := make(map[edgeKey]int)
	tagged := make(map[edgeKey]bool)
	for _, c := range o.Cells {
		for fid := range c.Shp.FaceLocalVerts {
			a, b := o.EdgeVerts(c, fid)
			count[edgeKey{a, b}]++
			if c.FTags[fid] != 0 {
				tagged[edgeKey{a, b}] = true
			}
		}
	}
	for k, n := range count {
		if n < 1 || n > 2 {
			return chk.Err("edge (%d,%d) is shared by %d cells", k.a, k.b, n)
		}
		if n == 1 && !tagged[k] {
			return chk.Err("boundary edge (%d,%d) carries no facet tag", k.a, k.b)
		}
	}
	return
}
