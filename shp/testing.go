// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckShape checks that shape functions evaluate to 1.0 @ their own node
// and to 0.0 @ all other nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false, -1)

		// check
		if verbose {
			io.Pf("S(%v) = %v\n", r[:shape.Gndim], shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckPartitionOfUnity checks that shape functions sum to 1.0 @ interior
// points
func CheckPartitionOfUnity(tst *testing.T, shape *Shape, rpoints [][]float64, tol float64, verbose bool) {
	for _, r := range rpoints {
		shape.Func(shape.S, shape.DSdR, r, false, -1)
		sum := 0.0
		for m := 0; m < shape.Nverts; m++ {
			sum += shape.S[m]
		}
		if verbose {
			io.Pf("sum S(%v) = %v\n", r, sum)
		}
		if math.Abs(sum-1.0) > tol {
			tst.Errorf("%s failed: sum of S @ %v = %g is not unity\n", shape.Type, r, sum)
			return
		}
	}
}

// CheckDSdR checks the analytical derivatives of shape functions against
// centred finite differences
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true, -1)
	ana := make([][]float64, shape.Nverts)
	for m := 0; m < shape.Nverts; m++ {
		ana[m] = make([]float64, shape.Gndim)
		copy(ana[m], shape.DSdR[m])
	}

	// numerical
	h := 1e-6
	Sp := make([]float64, shape.Nverts)
	Sm := make([]float64, shape.Nverts)
	for i := 0; i < shape.Gndim; i++ {
		tmp := r[i]
		r[i] = tmp + h
		shape.Func(Sp, shape.DSdR, r, false, -1)
		r[i] = tmp - h
		shape.Func(Sm, shape.DSdR, r, false, -1)
		r[i] = tmp
		for m := 0; m < shape.Nverts; m++ {
			num := (Sp[m] - Sm[m]) / (2.0 * h)
			if verbose {
				io.Pf("dS%d/dr%d: ana=%13.6e num=%13.6e\n", m, i, ana[m][i], num)
			}
			chk.Float64(tst, io.Sf("%s dS%ddr%d", shape.Type, m, i), tol, ana[m][i], num)
		}
	}
}

// CheckShapeFace checks that the face-local vertex tables select vertices
// lying on the edges of the reference shape (r=0, s=0 or r+s=1)
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// skip 1D shapes
	nfaces := len(shape.FaceLocalVerts)
	if nfaces == 0 {
		return
	}

	// loop over face vertices
	for k := 0; k < nfaces; k++ {
		for _, n := range shape.FaceLocalVerts[k] {
			r := shape.NatCoords[0][n]
			s := shape.NatCoords[1][n]
			onEdge := math.Abs(r) < tol || math.Abs(s) < tol || math.Abs(r+s-1.0) < tol
			if verbose {
				io.Pf("face %d: vert %d @ (%g,%g)\n", k, n, r, s)
			}
			if !onEdge {
				tst.Errorf("%s failed: face %d vertex %d @ (%g,%g) is not on an edge\n", shape.Type, k, n, r, s)
				return
			}
		}
	}
}
