// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// CompoDisk computes the plane-strain solution of a circular elastic
// inclusion bonded to a matrix disk under uniform radial traction p applied
// at the outer boundary
//
//               , - ~ ~ ~ - ,
//           , '               ' ,
//         ,        Em, νm        ,
//        ,        , - ~ ,         ,
//       ,       ,  Ei, νi ,        ,   ← p
//       ,       ,    ·Ri  ,        ,
//       ,       ,         ,        ,
//        ,        , _ _ ,         ,
//         ,                      ,
//           ,                 , '
//             ' - , _ _ _ , -'   Re
//
// The displacement is radial: u = a1·r in the inclusion and
// u = a2·r + b2/r in the matrix
type CompoDisk struct {
	// input
	Ei float64 // Young's modulus of inclusion
	νi float64 // Poisson's coefficient of inclusion
	Em float64 // Young's modulus of matrix
	νm float64 // Poisson's coefficient of matrix
	Ri float64 // radius of inclusion
	Re float64 // radius of matrix disk
	p  float64 // compressive radial traction at r = Re (positive value)

	// derived
	k1 float64 // 2(λ+μ) of inclusion
	k2 float64 // 2(λ+μ) of matrix
	μ2 float64 // shear modulus of matrix
	a1 float64 // displacement coefficient of inclusion
	a2 float64 // displacement coefficient of matrix
	b2 float64 // displacement coefficient of matrix
}

// Init initialises this structure with default values corresponding to the
// reference composite disk
func (o *CompoDisk) Init(prms dbf.Params) {

	// default values
	o.Ei = 11.0
	o.νi = 0.3
	o.Em = 0.8
	o.νm = 0.35
	o.Ri = 1.0
	o.Re = 6.9
	o.p = 1.0

	// parameters
	for _, prm := range prms {
		switch prm.N {
		case "Ei":
			o.Ei = prm.V
		case "nui":
			o.νi = prm.V
		case "Em":
			o.Em = prm.V
		case "num":
			o.νm = prm.V
		case "ri":
			o.Ri = prm.V
		case "re":
			o.Re = prm.V
		case "p":
			o.p = prm.V
		}
	}

	// elastic constants
	μ1 := o.Ei / (2.0 * (1.0 + o.νi))
	λ1 := o.Ei * o.νi / ((1.0 + o.νi) * (1.0 - 2.0*o.νi))
	o.μ2 = o.Em / (2.0 * (1.0 + o.νm))
	λ2 := o.Em * o.νm / ((1.0 + o.νm) * (1.0 - 2.0*o.νm))
	o.k1 = 2.0 * (λ1 + μ1)
	o.k2 = 2.0 * (λ2 + o.μ2)

	// displacement coefficients from continuity at Ri and traction at Re
	ri2, re2 := o.Ri*o.Ri, o.Re*o.Re
	den := o.k2*(o.k1+2.0*o.μ2)*re2 - 2.0*o.μ2*ri2*(o.k2-o.k1)
	o.b2 = -o.p * ri2 * re2 * (o.k2 - o.k1) / den
	o.a2 = -o.p * re2 * (o.k1 + 2.0*o.μ2) / den
	o.a1 = o.a2 + o.b2/ri2
}

// Ur computes the radial displacement at radius r
func (o CompoDisk) Ur(r float64) float64 {
	if r <= o.Ri {
		return o.a1 * r
	}
	return o.a2*r + o.b2/r
}

// Stress computes the radial and hoop stresses at radius r
func (o CompoDisk) Stress(r float64) (σr, σθ float64) {
	if r <= o.Ri {
		σr = o.k1 * o.a1
		σθ = σr
		return
	}
	σr = o.k2*o.a2 - 2.0*o.μ2*o.b2/(r*r)
	σθ = o.k2*o.a2 + 2.0*o.μ2*o.b2/(r*r)
	return
}

// Displ computes the displacement components at point x
func (o CompoDisk) Displ(x []float64) (u []float64) {
	r := math.Hypot(x[0], x[1])
	u = make([]float64, 2)
	if r < 1e-14 {
		return
	}
	ur := o.Ur(r)
	u[0] = ur * x[0] / r
	u[1] = ur * x[1] / r
	return
}

// CheckInterface checks continuity of displacement and radial stress at Ri
func (o CompoDisk) CheckInterface(tst *testing.T, tol float64) {
	uin := o.a1 * o.Ri
	uout := o.a2*o.Ri + o.b2/o.Ri
	chk.Float64(tst, "u continuity", tol, uin, uout)
	σin, _ := o.Stress(o.Ri * (1.0 - 1e-12))
	σout, _ := o.Stress(o.Ri * (1.0 + 1e-12))
	chk.Float64(tst, "σr continuity", tol, σin, σout)
}

// CheckOuter checks the traction condition at Re
func (o CompoDisk) CheckOuter(tst *testing.T, tol float64) {
	σr, _ := o.Stress(o.Re)
	chk.Float64(tst, "σr(Re)", tol, σr, -o.p)
}
