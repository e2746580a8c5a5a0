// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// add shapes to factory
func init() {
	factory["tri3"] = func() *Shape {
		o := &Shape{
			Type:      "tri3",
			Gndim:     2,
			Nverts:    3,
			BasicType: "tri",
			FaceType:  "lin2",
			NatCoords: [][]float64{
				{0, 1, 0},
				{0, 0, 1},
			},
			FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 0}},
			Func:           tri3,
		}
		o.alloc()
		return o
	}
	factory["tri6"] = func() *Shape {
		o := &Shape{
			Type:      "tri6",
			Gndim:     2,
			Nverts:    6,
			BasicType: "tri",
			FaceType:  "lin3",
			NatCoords: [][]float64{
				{0, 1, 0, 0.5, 0.5, 0},
				{0, 0, 1, 0, 0.5, 0.5},
			},
			FaceLocalVerts: [][]int{{0, 1, 3}, {1, 2, 4}, {2, 0, 5}},
			Func:           tri6,
		}
		o.alloc()
		return o
	}
}

// tri3 computes the shape functions of a 3-node triangle
//
//	s
//	|
//	2
//	| \
//	|  \
//	|   \
//	0----1 --- r
func tri3(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 1.0 - r[0] - r[1]
	S[1] = r[0]
	S[2] = r[1]
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = -1.0, -1.0
	dSdR[1][0], dSdR[1][1] = 1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 1.0
}

// tri6 computes the shape functions of a 6-node triangle. Vertices 3, 4
// and 5 are the midside nodes of edges 0-1, 1-2 and 2-0.
func tri6(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	u := 1.0 - r[0] - r[1]
	S[0] = u * (2.0*u - 1.0)
	S[1] = r[0] * (2.0*r[0] - 1.0)
	S[2] = r[1] * (2.0*r[1] - 1.0)
	S[3] = 4.0 * r[0] * u
	S[4] = 4.0 * r[0] * r[1]
	S[5] = 4.0 * r[1] * u
	if !derivs {
		return
	}
	dSdR[0][0], dSdR[0][1] = 1.0-4.0*u, 1.0-4.0*u
	dSdR[1][0], dSdR[1][1] = 4.0*r[0]-1.0, 0.0
	dSdR[2][0], dSdR[2][1] = 0.0, 4.0*r[1]-1.0
	dSdR[3][0], dSdR[3][1] = 4.0*(u-r[0]), -4.0*r[0]
	dSdR[4][0], dSdR[4][1] = 4.0*r[1], 4.0*r[0]
	dSdR[5][0], dSdR[5][1] = -4.0*r[1], 4.0*(u-r[1])
}
