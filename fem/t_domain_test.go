// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/msolides-2022/compomesh/geo"
	"github.com/msolides-2022/compomesh/inp"
	"github.com/msolides-2022/compomesh/msh"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_node01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node01")

	v := &msh.Vert{Id: 7, C: []float64{1, 2}}
	n := NewNode(v)

	eq := n.AddDofAndEq("ux", 0)
	chk.IntAssert(eq, 1)
	eq = n.AddDofAndEq("uy", eq)
	chk.IntAssert(eq, 2)

	// adding an existent dof must not create a new equation
	eq = n.AddDofAndEq("ux", eq)
	chk.IntAssert(eq, 2)
	chk.IntAssert(len(n.Dofs), 2)

	chk.IntAssert(n.GetEq("ux"), 0)
	chk.IntAssert(n.GetEq("uy"), 1)
	chk.IntAssert(n.GetEq("pl"), -1)
	if n.GetDof("uy") == nil {
		tst.Errorf("cannot find dof uy\n")
		return
	}
	if n.GetDof("uz") != nil {
		tst.Errorf("inexistent dof must be nil\n")
		return
	}
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. geometric model from input data")

	geo.Initialize()
	defer geo.Finalize()

	g := &inp.GeoData{Model: "Disk", Ri: 1.0, Re: 6.9, Aspect: 1.0}
	groups := new(inp.GroupsData)
	groups.SetDefault()
	mdl := BuildModel(g, groups)

	inc := mdl.GroupByName(2, "inclusion")
	if inc == nil {
		tst.Errorf("cannot find inclusion group\n")
		return
	}
	chk.IntAssert(inc.Tag, 1)
	mat := mdl.GroupByName(2, "matrix")
	if mat == nil {
		tst.Errorf("cannot find matrix group\n")
		return
	}
	chk.IntAssert(mat.Tag, 2)
	if mdl.GroupByName(1, "inner_boundary") == nil || mdl.GroupByName(1, "outer_boundary") == nil {
		tst.Errorf("cannot find boundary groups\n")
		return
	}
}

func Test_domain01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domain01. composite disk handoff")

	m := NewMain("data/composite.sim", "", true, false, chk.Verbose, 0)
	err := m.Run()
	if err != nil {
		tst.Errorf("run failed:\n%v", err)
		return
	}
	chk.IntAssert(len(m.Domains), 1)
	dom := m.Domains[0]

	// names
	chk.StrAssert(dom.Name, "composite")
	chk.StrAssert(dom.CellSetsName, "composite_cells")
	chk.StrAssert(dom.FacetSetsName, "composite_facets")

	// nodes and equations: all vertices are active with ux and uy
	chk.IntAssert(len(dom.Nodes), len(dom.Msh.Verts))
	chk.IntAssert(dom.Ny, 2*len(dom.Nodes))
	chk.IntAssert(dom.Vid2node[0].GetEq("ux"), 0)
	chk.IntAssert(dom.Vid2node[0].GetEq("uy"), 1)
	for _, n := range dom.Nodes {
		chk.IntAssert(len(n.Dofs), 2)
	}

	// elements with bound materials
	chk.IntAssert(len(dom.Elems), len(dom.Msh.Cells))
	ninc, nmat := 0, 0
	for _, e := range dom.Elems {
		if e.Mat == nil || e.Mat.Solid == nil {
			tst.Errorf("element of cell %d has no material\n", e.Cell.Id)
			return
		}
		switch e.Cell.Tag {
		case 1:
			chk.StrAssert(e.Mat.Name, "inclusion")
			ninc++
		case 2:
			chk.StrAssert(e.Mat.Name, "matrix")
			nmat++
		}
	}
	chk.IntAssert(ninc, 164)
	chk.IntAssert(ninc+nmat, len(dom.Msh.Cells))
	chk.Float64(tst, "inclusion E", 1e-17, dom.Elems[0].Mat.Prms.Find("E").V, 11.0)

	// facet sets
	chk.IntAssert(len(dom.FacetSets), 2)
	inner := dom.FacetSet(1)
	outer := dom.FacetSet(2)
	if inner == nil || outer == nil {
		tst.Errorf("cannot find facet sets\n")
		return
	}
	chk.StrAssert(inner.Name, "inner_boundary")
	chk.StrAssert(outer.Name, "outer_boundary")
	chk.IntAssert(len(inner.Pairs), 64)
	chk.IntAssert(len(outer.Pairs), 217)
	chk.IntAssert(len(outer.Verts), 217)
	if dom.FacetSet(3) != nil {
		tst.Errorf("inexistent facet set must be nil\n")
		return
	}

	// boundary conditions: radial traction on the outer boundary
	chk.IntAssert(len(dom.NatBcs), 1)
	nbc := dom.NatBcs[0]
	chk.StrAssert(nbc.Key, "qn")
	chk.IntAssert(nbc.Tag, 2)
	chk.Float64(tst, "qn(0)", 1e-17, nbc.Fcn.F(0, nil), -1.0)
	chk.IntAssert(len(dom.EssenBcs), 0)

	// mesh file was written to the output directory
	mm, err := msh.ReadMsh(m.Sim.DirOut, "composite.msh", 0)
	if err != nil {
		tst.Errorf("cannot read mesh file back:\n%v", err)
		return
	}
	chk.IntAssert(len(mm.Verts), len(dom.Msh.Verts))
	chk.IntAssert(len(mm.Cells), len(dom.Msh.Cells))
}
