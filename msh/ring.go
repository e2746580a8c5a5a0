// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
)

// ring is a closed loop of vertices sampled on an elliptical contour,
// counter-clockwise, starting at angle zero
type ring struct {
	xc, yc float64 // centre
	rx, ry float64 // semi-axes
	verts  []int   // vertex ids
}

// perimeter returns the approximate perimeter of an ellipse with semi-axes
// a and b (Ramanujan)
func perimeter(a, b float64) float64 {
	return math.Pi * (3.0*(a+b) - math.Sqrt((3.0*a+b)*(a+3.0*b)))
}

// divisions returns the number of angular divisions of a contour such that
// segment lengths approximate the characteristic length cl
func divisions(rx, ry, cl float64, min int) int {
	n := int(math.Ceil(perimeter(rx, ry) / cl))
	if n < min {
		n = min
	}
	return n
}

// addVert appends a new vertex and returns its id
func (o *generator) addVert(x, y float64) int {
	id := len(o.m.Verts)
	o.m.Verts = append(o.m.Verts, &Vert{Id: id, C: []float64{x, y}})
	return id
}

// addRing samples a contour with n vertices and appends them to the mesh
func (o *generator) addRing(xc, yc, rx, ry float64, n int) *ring {
	r := &ring{xc: xc, yc: yc, rx: rx, ry: ry}
	for k := 0; k < n; k++ {
		θ := 2.0 * math.Pi * float64(k) / float64(n)
		r.verts = append(r.verts, o.addVert(xc+rx*math.Cos(θ), yc+ry*math.Sin(θ)))
	}
	return r
}

// vertSet returns the set of vertex ids of the ring
func (o *ring) vertSet() map[int]bool {
	set := make(map[int]bool)
	for _, v := range o.verts {
		set[v] = true
	}
	return set
}

// project places point (x,y) onto the ring's elliptical contour
func (o *ring) project(x, y float64) (px, py float64) {
	θ := math.Atan2((y-o.yc)/o.ry, (x-o.xc)/o.rx)
	return o.xc + o.rx*math.Cos(θ), o.yc + o.ry*math.Sin(θ)
}
