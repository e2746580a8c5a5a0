// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotFdata holds information to plot functions
type PlotFdata struct {
	Ti    float64  `json:"ti"`    // initial time
	Tf    float64  `json:"tf"`    // final time
	Np    int      `json:"np"`    // number of points
	Eps   bool     `json:"eps"`   // save eps instead of png
	Skip  []string `json:"skip"`  // skip these functions
	Fnkey string   `json:"fnkey"` // filename key; e.g. mysim
}

// FuncData holds function definition
type FuncData struct {
	Name string     `json:"name"` // name of function; e.g. "load"
	Type string     `json:"type"` // type of function; e.g. "cte", "rmp"
	Prms dbf.Params `json:"prms"` // parameters
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
//  Note: returns a constant zero function if name == "zero"
func (o FuncsData) Get(name string) (dbf.T, error) {
	if name == "zero" {
		return &dbf.Zero, nil
	}
	for _, f := range o {
		if f.Name == name {
			return dbf.New(f.Type, f.Prms), nil
		}
	}
	return nil, chk.Err("cannot find function named %q", name)
}

// PlotAll plots all functions
func (o FuncsData) PlotAll(pd *PlotFdata, dirout, fnkey string) {
	for _, f := range o {
		if utl.StrIndexSmall(pd.Skip, f.Name) >= 0 {
			continue
		}
		fcn, err := o.Get(f.Name)
		if err != nil {
			chk.Panic("cannot plot function %q:\n%v", f.Name, err)
		}
		T := utl.LinSpace(pd.Ti, pd.Tf, pd.Np)
		F := make([]float64, len(T))
		for i, t := range T {
			F[i] = fcn.F(t, nil)
		}
		plt.Reset(true, &plt.A{Eps: pd.Eps})
		plt.Plot(T, F, &plt.A{C: "b", Ls: "-", NoClip: true})
		plt.Gll("$t$", io.Sf("$f(t)$: %s", f.Name), nil)
		plt.Save(dirout, io.Sf("fcn-%s-%s", fnkey, f.Name))
	}
}

// String prints one function
func (o FuncData) String() string {
	return io.Sf("    {\n      \"name\" : %q,\n      \"type\" : %q,\n      \"prms\" : [\n%v\n      ]\n    }", o.Name, o.Type, o.Prms)
}

// String prints functions
func (o FuncsData) String() string {
	if len(o) == 0 {
		return "  \"functions\" : []"
	}
	l := "  \"functions\" : [\n"
	for i, f := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", f)
	}
	l += "\n  ]"
	return l
}
