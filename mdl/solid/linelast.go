// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements a linear elastic model for plane-strain or
// plane-stress analyses
type LinElast struct {
	E       float64 // Young's modulus
	Nu      float64 // Poisson's ratio
	Rho     float64 // density
	Ndim    int     // space dimension
	Pstress bool    // plane-stress
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// Clean cleans resources
func (o *LinElast) Clean() {
}

// Init initialises model
func (o *LinElast) Init(ndim int, pstress bool, prms dbf.Params) (err error) {
	o.Ndim = ndim
	o.Pstress = pstress
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	if o.E <= 0 {
		return chk.Err("Young's modulus must be positive. E=%g is incorrect", o.E)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("Poisson's ratio must be in [0, 0.5). nu=%g is incorrect", o.Nu)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 1.0},
		&dbf.P{N: "nu", V: 0.3},
	}
}

// GetRho returns density
func (o LinElast) GetRho() float64 {
	return o.Rho
}

// CalcD computes the 2D constitutive modulus relating {σx, σy, σxy} to
// {εx, εy, 2εxy}. D must be pre-allocated with size 3x3.
func (o LinElast) CalcD(D [][]float64) (err error) {
	if len(D) != 3 {
		return chk.Err("D matrix must be 3x3. %dx%d is incorrect", len(D), len(D))
	}
	if o.Pstress {
		c := o.E / (1.0 - o.Nu*o.Nu)
		D[0][0], D[0][1], D[0][2] = c, c*o.Nu, 0
		D[1][0], D[1][1], D[1][2] = c*o.Nu, c, 0
		D[2][0], D[2][1], D[2][2] = 0, 0, c*(1.0-o.Nu)/2.0
		return
	}
	c := o.E / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
	D[0][0], D[0][1], D[0][2] = c*(1.0-o.Nu), c*o.Nu, 0
	D[1][0], D[1][1], D[1][2] = c*o.Nu, c*(1.0-o.Nu), 0
	D[2][0], D[2][1], D[2][2] = 0, 0, c*(1.0-2.0*o.Nu)/2.0
	return
}
