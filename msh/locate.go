// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/gm"
)

// constants
var (
	LocTol  = 1e-8 // tolerance to compare x-y coordinates
	LocNdiv = 20   // bins n-division
)

// Locator finds vertices by coordinates using spatial bins
type Locator struct {
	msh  *Mesh   // the mesh
	bins gm.Bins // bins with vertex ids
}

// NewLocator builds a locator over the vertices of the mesh
func NewLocator(m *Mesh) (o *Locator) {
	o = &Locator{msh: m}
	δ := LocTol + (m.Xmax-m.Xmin)*1e-3
	xi := []float64{m.Xmin - δ, m.Ymin - δ}
	xf := []float64{m.Xmax + δ, m.Ymax + δ}
	o.bins.Init(xi, xf, []int{LocNdiv, LocNdiv})
	for _, v := range m.Verts {
		o.bins.Append(v.C, v.Id, nil)
	}
	return
}

// Find returns the id of the vertex at x, or -1
func (o *Locator) Find(x []float64) int {
	id, sqDist := o.bins.FindClosest(x)
	if id < 0 || sqDist > LocTol*LocTol {
		return -1
	}
	return id
}

// AlongLine returns the ids of the vertices lying on the segment a-b
func (o *Locator) AlongLine(a, b []float64) []int {
	return o.bins.FindAlongSegment(a, b, LocTol)
}
