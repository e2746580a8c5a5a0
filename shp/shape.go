// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions for the element types produced by
// the mesh generator: 3- and 6-node triangles and their edge shapes
package shp

import (
	"github.com/cpmech/gosl/chk"
)

// ShpFunc computes the shape functions S and, if derivs is true, the
// derivatives dSdR with respect to natural coordinates, at point r.
// idxface ≥ 0 restricts the evaluation to a face (unused by these shapes).
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int)

// Shape holds the data defining one element shape
type Shape struct {

	// constants
	Type           string      // type: "tri3", "tri6", "lin2", "lin3"
	Gndim          int         // geometry number of space dimensions
	Nverts         int         // number of vertices
	BasicType      string      // geometry class: "tri", "lin"
	FaceType       string      // type of shape on faces/edges
	NatCoords      [][]float64 // [gndim][nverts] natural coordinates of vertices
	FaceLocalVerts [][]int     // [nfaces][nfaceverts] local vertex ids on each face

	// function
	Func ShpFunc // shape/derivative function

	// scratch space
	S    []float64   // [nverts] shape function values
	DSdR [][]float64 // [nverts][gndim] derivatives w.r.t natural coordinates
}

// factory of shapes
var factory = make(map[string]func() *Shape)

// Get returns a new Shape structure of the given type.
//  Note: returns nil if the type is unknown
func Get(geoType string) *Shape {
	alloc, ok := factory[geoType]
	if !ok {
		return nil
	}
	return alloc()
}

// NumFaces returns the number of faces/edges of a shape type
func NumFaces(geoType string) int {
	s := Get(geoType)
	if s == nil {
		chk.Panic("cannot find shape type %q", geoType)
	}
	return len(s.FaceLocalVerts)
}

// alloc allocates the scratch arrays of a shape
func (o *Shape) alloc() {
	o.S = make([]float64, o.Nverts)
	o.DSdR = make([][]float64, o.Nverts)
	for i := 0; i < o.Nverts; i++ {
		o.DSdR[i] = make([]float64, o.Gndim)
	}
}
