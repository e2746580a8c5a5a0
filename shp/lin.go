// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// add shapes to factory
func init() {
	factory["lin2"] = func() *Shape {
		o := &Shape{
			Type:      "lin2",
			Gndim:     1,
			Nverts:    2,
			BasicType: "lin",
			NatCoords: [][]float64{
				{-1, 1},
			},
			Func: lin2,
		}
		o.alloc()
		return o
	}
	factory["lin3"] = func() *Shape {
		o := &Shape{
			Type:      "lin3",
			Gndim:     1,
			Nverts:    3,
			BasicType: "lin",
			NatCoords: [][]float64{
				{-1, 1, 0},
			},
			Func: lin3,
		}
		o.alloc()
		return o
	}
}

// lin2 computes the shape functions of a 2-node line
//
//	-1     0     +1
//	 0-----------1 --- r
func lin2(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 0.5 * (1.0 - r[0])
	S[1] = 0.5 * (1.0 + r[0])
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// lin3 computes the shape functions of a 3-node line with the middle node
// stored last
func lin3(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int) {
	S[0] = 0.5 * r[0] * (r[0] - 1.0)
	S[1] = 0.5 * r[0] * (r[0] + 1.0)
	S[2] = 1.0 - r[0]*r[0]
	if !derivs {
		return
	}
	dSdR[0][0] = r[0] - 0.5
	dSdR[1][0] = r[0] + 0.5
	dSdR[2][0] = -2.0 * r[0]
}
