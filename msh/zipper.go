// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
)

// dist returns the distance between two vertices
func (o *generator) dist(a, b int) float64 {
	ca := o.m.Verts[a].C
	cb := o.m.Verts[b].C
	return math.Sqrt((ca[0]-cb[0])*(ca[0]-cb[0]) + (ca[1]-cb[1])*(ca[1]-cb[1]))
}

// addCell appends a counter-clockwise tri3 cell
func (o *generator) addCell(ctag, v0, v1, v2 int) *Cell {
	c := &Cell{
		Id:    len(o.m.Cells),
		Tag:   ctag,
		Type:  "tri3",
		Verts: []int{v0, v1, v2},
		FTags: []int{0, 0, 0},
	}
	o.m.Cells = append(o.m.Cells, c)
	return c
}

// fan triangulates the innermost disk region between a centre vertex and
// the first ring
func (o *generator) fan(centre int, r *ring, ctag int) {
	n := len(r.verts)
	for k := 0; k < n; k++ {
		o.addCell(ctag, centre, r.verts[k], r.verts[(k+1)%n])
	}
}

// zip triangulates the strip between two concentric closed rings. The
// rings may have different vertex counts; the walk advances on the side
// giving the shorter new diagonal, so the strip stays conforming and the
// triangle count is len(inner)+len(outer).
func (o *generator) zip(inner, outer *ring, ctag int) {
	ni, no := len(inner.verts), len(outer.verts)
	i, j := 0, 0
	for i < ni || j < no {
		vi := inner.verts[i%ni]
		vo := outer.verts[j%no]
		switch {
		case i == ni: // inner exhausted: advance outer
			o.addCell(ctag, vi, vo, outer.verts[(j+1)%no])
			j++
		case j == no: // outer exhausted: advance inner
			o.addCell(ctag, vi, vo, inner.verts[(i+1)%ni])
			i++
		default:
			viN := inner.verts[(i+1)%ni]
			voN := outer.verts[(j+1)%no]
			if o.dist(vi, voN) <= o.dist(viN, vo) {
				o.addCell(ctag, vi, vo, voN)
				j++
			} else {
				o.addCell(ctag, vi, vo, viN)
				i++
			}
		}
	}
}
