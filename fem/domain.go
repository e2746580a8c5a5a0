// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/msolides-2022/compomesh/inp"
	"github.com/msolides-2022/compomesh/msh"
)

// elemDofKeys maps element types to the keys of primary variables at each node
var elemDofKeys = map[string][]string{
	"u": {"ux", "uy"},
}

// essenKeys holds the keys of essential (Dirichlet) conditions
var essenKeys = map[string]bool{
	"ux": true,
	"uy": true,
}

// Elem ties a mesh cell to its element data and material
type Elem struct {
	Cell  *msh.Cell     // corresponding mesh cell
	Edat  *inp.ElemData // element data from region
	Mat   *inp.Material // material with initialised model
	Conds []*Cond       // element conditions; e.g. gravity
}

// Cond holds one element condition
type Cond struct {
	Key   string // condition key; e.g. "g"
	Fcn   dbf.T  // condition function
	Extra string // extra information
}

// FacetSet collects the cell edges and vertices of one tagged boundary
type FacetSet struct {
	Tag   int              // facet tag
	Name  string           // group name; e.g. "inner_boundary"
	Pairs []msh.CellFaceId // (cell, local face id) pairs along this boundary
	Verts []int            // sorted ids of vertices along this boundary
}

// EssenBc holds one essential (Dirichlet) boundary condition at a node
type EssenBc struct {
	Key   string // dof key; e.g. "ux"
	Eq    int    // equation number
	Vid   int    // vertex id
	Fcn   dbf.T  // prescribed value function
	Extra string // extra information
}

// NatBc holds one natural (Neumann) boundary condition along a facet set
type NatBc struct {
	Key   string           // condition key; e.g. "qn"
	Tag   int              // facet tag
	Pairs []msh.CellFaceId // edges along the boundary
	Fcn   dbf.T            // prescribed value function
	Extra string           // extra information
}

// PtNatBc holds one natural boundary condition at a single node
type PtNatBc struct {
	Key   string // condition key; e.g. "fx"
	Vid   int    // vertex id
	Fcn   dbf.T  // prescribed value function
	Extra string // extra information
}

// Domain holds all Nodes and Elems of one region in addition to the numbering
// of equations and the sets of tagged boundaries. It is the data handed off
// to solvers and post-processors.
type Domain struct {

	// init: auxiliary variables
	Distr   bool            // distributed/parallel run
	Proc    int             // this processor number
	Verbose bool            // verbose
	ShowMsg bool            // show messages: if verbose==true and proc==0
	Sim     *inp.Simulation // [from Main] input data
	Reg     *inp.Region     // region data
	Msh     *msh.Mesh       // mesh data

	// names of this domain and its sets
	Name          string // domain name; e.g. "composite"
	CellSetsName  string // name of collection of cell sets; e.g. "composite_cells"
	FacetSetsName string // name of collection of facet sets; e.g. "composite_facets"

	// stage: nodes (active) and elements (active AND in this processor)
	Nodes  []*Node // active nodes. Note: indices in Nodes do NOT correspond to Ids => use Vid2node
	Elems  []*Elem // [procNcells] only active elements in this processor
	MyCids []int   // [procNcells] the ids of cells in this processor

	// stage: auxiliary maps for nodes and elements
	Vid2node []*Node // [nverts] VertexId => index in Nodes. Inactive vertices are 'nil'
	Cid2elem []*Elem // [ncells] CellId => element. Cells in other processors or inactive are 'nil'

	// stage: tagged boundaries and conditions
	FacetSets []*FacetSet // tagged boundaries, sorted by tag
	EssenBcs  []*EssenBc  // essential (Dirichlet) conditions
	NatBcs    []*NatBc    // natural (Neumann) conditions along facets
	PtNatBcs  []*PtNatBc  // natural conditions at single nodes

	// stage: dimensions
	Ny    int // total number of dofs
	NnzKb int // number of nonzeros in the global Jacobian matrix
}

// NewDomains returns one domain per region
func NewDomains(sim *inp.Simulation, proc, nproc int, distr, verb bool) (doms []*Domain) {
	doms = make([]*Domain, len(sim.Regions))
	for i, reg := range sim.Regions {
		doms[i] = new(Domain)
		doms[i].Distr = distr
		doms[i].Proc = proc
		doms[i].Verbose = verb
		doms[i].ShowMsg = verb && proc == 0
		doms[i].Sim = sim
		doms[i].Reg = reg
		doms[i].Msh = reg.Msh
		doms[i].Name = sim.Data.Name
		doms[i].CellSetsName = sim.Data.Name + "_cells"
		doms[i].FacetSetsName = sim.Data.Name + "_facets"
		if distr {
			if nproc != len(reg.Msh.Part2cells) {
				chk.Panic("number of processors must be equal to the number of partitions defined in mesh file. %d != %d", nproc, len(reg.Msh.Part2cells))
			}
		}
	}
	return
}

// SetStage sets nodes, equation numbers and boundary conditions for given stage
func (o *Domain) SetStage(stgidx int) (err error) {

	// pointer to stage structure
	if stgidx < 0 || stgidx >= len(o.Sim.Stages) {
		return chk.Err("stage index %d is out of range", stgidx)
	}
	stg := o.Sim.Stages[stgidx]

	// nodes (active) and elements (active AND in this processor)
	o.Nodes = make([]*Node, 0)
	o.Elems = make([]*Elem, 0)
	o.MyCids = make([]int, 0)

	// auxiliary maps for nodes and elements
	o.Vid2node = make([]*Node, len(o.Msh.Verts))
	o.Cid2elem = make([]*Elem, len(o.Msh.Cells))

	// conditions
	o.EssenBcs = nil
	o.NatBcs = nil
	o.PtNatBcs = nil

	// allocate nodes and cells (active only) -------------------------------------------------------

	// for each cell
	var eq int // current equation number => total number of equations @ end of loop
	o.NnzKb = 0
	for _, cell := range o.Msh.Cells {

		// element data
		edat := o.Reg.Etag2data(cell.Tag)
		if edat == nil {
			return chk.Err("cannot find element data for cell tag %d", cell.Tag)
		}

		// skip inactive element
		if edat.Inact {
			continue
		}

		// dof keys of this element type
		dofkeys, ok := elemDofKeys[edat.Type]
		if !ok {
			return chk.Err("cannot handle element type %q", edat.Type)
		}

		// loop over nodes of this element
		var eNdof int // number of DOFs of this element
		for _, v := range cell.Verts {

			// new or existent node
			var nod *Node
			if o.Vid2node[v] == nil {
				nod = NewNode(o.Msh.Verts[v])
				o.Vid2node[v] = nod
				o.Nodes = append(o.Nodes, nod)
			} else {
				nod = o.Vid2node[v]
			}

			// set DOFs and equation numbers
			for _, ukey := range dofkeys {
				eq = nod.AddDofAndEq(ukey, eq)
				eNdof += 1
			}
		}

		// number of non-zeros
		o.NnzKb += eNdof * eNdof

		// allocate element
		mycell := cell.Part == o.Proc // cell belongs to this processor
		if mycell || !o.Distr {
			mat := o.Sim.MatModels.Get(edat.Mat)
			if mat == nil {
				return chk.Err("cannot find material %q of cell tag %d", edat.Mat, cell.Tag)
			}
			if mat.Solid == nil {
				return chk.Err("material %q of cell tag %d has no solid model", edat.Mat, cell.Tag)
			}
			e := &Elem{Cell: cell, Edat: edat, Mat: mat}
			o.Cid2elem[cell.Id] = e
			o.Elems = append(o.Elems, e)
			o.MyCids = append(o.MyCids, cell.Id)
		}
	}

	// total number of dofs
	o.Ny = eq

	// tagged boundaries
	err = o.buildFacetSets()
	if err != nil {
		return
	}

	// element conditions
	var fcn dbf.T
	for _, ec := range stg.EleConds {
		cells, ok := o.Msh.CellTag2cells[ec.Tag]
		if !ok {
			return chk.Err("cannot find cells with tag = %d to assign conditions", ec.Tag)
		}
		for _, cell := range cells {
			e := o.Cid2elem[cell.Id]
			if e != nil { // set conditions only for this processor's element
				for j, key := range ec.Keys {
					fcn, err = o.Sim.Functions.Get(ec.Funcs[j])
					if err != nil {
						return
					}
					e.Conds = append(e.Conds, &Cond{key, fcn, ec.Extra})
				}
			}
		}
	}

	// face boundary conditions
	for _, fc := range stg.FaceBcs {
		fs := o.FacetSet(fc.Tag)
		if fs == nil {
			return chk.Err("cannot find faces with tag = %d to assign face boundary conditions", fc.Tag)
		}
		for j, key := range fc.Keys {
			fcn, err = o.Sim.Functions.Get(fc.Funcs[j])
			if err != nil {
				return
			}
			if essenKeys[key] {
				for _, vid := range fs.Verts {
					n := o.Vid2node[vid]
					if n == nil {
						continue
					}
					o.EssenBcs = append(o.EssenBcs, &EssenBc{key, n.GetEq(key), vid, fcn, fc.Extra})
				}
			} else {
				o.NatBcs = append(o.NatBcs, &NatBc{key, fc.Tag, fs.Pairs, fcn, fc.Extra})
			}
		}
	}

	// vertex boundary conditions
	for _, nc := range stg.NodeBcs {
		verts, ok := o.Msh.VertTag2verts[nc.Tag]
		if !ok {
			return chk.Err("cannot find vertices with tag = %d to assign node boundary conditions", nc.Tag)
		}
		for _, v := range verts {
			if o.Vid2node[v.Id] != nil { // set BCs only for active nodes
				n := o.Vid2node[v.Id]
				for j, key := range nc.Keys {
					fcn, err = o.Sim.Functions.Get(nc.Funcs[j])
					if err != nil {
						return
					}
					if essenKeys[key] {
						o.EssenBcs = append(o.EssenBcs, &EssenBc{key, n.GetEq(key), v.Id, fcn, nc.Extra})
					} else {
						o.PtNatBcs = append(o.PtNatBcs, &PtNatBc{key, v.Id, fcn, nc.Extra})
					}
				}
			}
		}
	}

	// list boundary conditions
	if o.Sim.Data.ListBcs && o.ShowMsg {
		o.printBcs()
	}
	return
}

// FacetSet returns the facet set with given tag
//  Note: returns nil if not found
func (o *Domain) FacetSet(tag int) *FacetSet {
	for _, fs := range o.FacetSets {
		if fs.Tag == tag {
			return fs
		}
	}
	return nil
}

// buildFacetSets collects the edges and vertices of each tagged boundary
func (o *Domain) buildFacetSets() (err error) {
	o.FacetSets = nil
	for _, tag := range o.Sim.Groups.FacetTags() {
		pairs, ok := o.Msh.FaceTag2cells[tag]
		if !ok {
			return chk.Err("mesh has no faces with tag = %d", tag)
		}
		seen := make(map[int]bool)
		var verts []int
		for _, pair := range pairs {
			for _, vid := range o.Msh.EdgeGlobalVerts(pair.C, pair.Fid) {
				if !seen[vid] {
					seen[vid] = true
					verts = append(verts, vid)
				}
			}
		}
		sort.Ints(verts)
		o.FacetSets = append(o.FacetSets, &FacetSet{
			Tag:   tag,
			Name:  o.Sim.Groups.FacetGroupName(tag),
			Pairs: pairs,
			Verts: verts,
		})
	}
	return
}

// printBcs prints the boundary conditions of the current stage
func (o *Domain) printBcs() {
	io.Pf("%s: boundary conditions\n", o.Name)
	for _, nbc := range o.NatBcs {
		io.Pf("  natural: key=%q tag=%d nedges=%d\n", nbc.Key, nbc.Tag, len(nbc.Pairs))
	}
	for _, ebc := range o.EssenBcs {
		io.Pf("  essential: key=%q vid=%d eq=%d\n", ebc.Key, ebc.Vid, ebc.Eq)
	}
	for _, pbc := range o.PtNatBcs {
		io.Pf("  point: key=%q vid=%d\n", pbc.Key, pbc.Vid)
	}
}
