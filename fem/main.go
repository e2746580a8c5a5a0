// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem prepares finite element data: it generates the mesh of the
// composite disk and assembles domains with nodes, equation numbers,
// materials and boundary conditions
package fem

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"

	"github.com/msolides-2022/compomesh/geo"
	"github.com/msolides-2022/compomesh/inp"
	"github.com/msolides-2022/compomesh/msh"
)

// Main holds all data for the preparation of a finite element simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Domains []*Domain       // all domains
	Nproc   int             // number of processors
	Proc    int             // processor id
	ShowMsg bool            // show messages
}

// NewMain reads the simulation input file, generates or reads the meshes and
// allocates one domain per region
//  Input:
//   simfilepath   -- simulation (.sim) filename including full path
//   alias         -- word to be appended to simulation key
//   erasePrev     -- erase previous results files
//   allowParallel -- allow parallel execution; otherwise, run in serial mode regardless whether MPI is on or not
//   verbose       -- show messages
func NewMain(simfilepath, alias string, erasePrev, allowParallel, verbose bool, goroutineId int) (o *Main) {

	// new Main object
	o = new(Main)

	// fix erasePrev flag when MPI is on
	if mpi.IsOn() {
		if mpi.WorldRank() != 0 {
			erasePrev = false
		}
	}

	// read input data
	o.Sim = inp.ReadSim(simfilepath, alias, erasePrev, true, goroutineId)
	if o.Sim == nil {
		chk.Panic("cannot read simulation input data")
	}

	// multiprocessing data
	o.Nproc = 1
	distr := false
	if mpi.IsOn() {
		if allowParallel {
			o.Proc = mpi.WorldRank()
			o.Nproc = mpi.WorldSize()
			distr = o.Nproc > 1
		}
	}
	o.ShowMsg = verbose && (o.Proc == 0)

	// message
	if o.ShowMsg {
		io.Pf("> Initialisation step completed\n")
		io.Pf("> Simulation (.sim) file read\n")
	}

	// generate or read meshes
	err := o.prepareMeshes()
	if err != nil {
		chk.Panic("cannot prepare meshes:\n%v", err)
	}

	// allocate domains
	o.Domains = NewDomains(o.Sim, o.Proc, o.Nproc, distr, verbose)
	return
}

// Run prepares all stages: it numbers equations and assembles boundary
// conditions in all domains
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// plot functions
	if o.Sim.PlotF != nil {
		if o.Proc == 0 {
			o.Sim.Functions.PlotAll(o.Sim.PlotF, o.Sim.DirOut, o.Sim.Key)
		}
		if o.ShowMsg {
			io.Pf("> Functions plotted\n")
		}
		return
	}

	// message
	if o.ShowMsg {
		io.Pf("> Setting stages\n")
	}

	// loop over stages
	for stgidx, stg := range o.Sim.Stages {

		// skip stage?
		if stg.Skip {
			continue
		}

		// set stage
		err = o.SetStage(stgidx)
		if err != nil {
			return
		}
	}

	// summary
	if o.ShowMsg {
		for _, d := range o.Domains {
			io.Pf("> Domain %q: %d nodes, %d elements, %d equations\n", d.Name, len(d.Nodes), len(d.Elems), d.Ny)
			for _, fs := range d.FacetSets {
				io.Pf(">   facet set %q (tag=%d): %d edges\n", fs.Name, fs.Tag, len(fs.Pairs))
			}
		}
	}
	return
}

// SetStage sets stage for all domains
//  Input:
//   stgidx -- stage index (in o.Sim.Stages)
func (o *Main) SetStage(stgidx int) (err error) {
	if o.ShowMsg {
		io.Pf("> Setting stage %d\n", stgidx)
	}
	for _, d := range o.Domains {
		err = d.SetStage(stgidx)
		if err != nil {
			return
		}
	}
	return
}

// BuildModel creates the geometric model of the composite disk: an inclusion
// fragmented out of a matrix disk, with tagged cell and facet groups
//  Note: a geometry kernel session must be active
func BuildModel(g *inp.GeoData, groups *inp.GroupsData) *geo.Model {

	// group tags
	innerCtag, ok := groups.Cells["inclusion"]
	if !ok {
		chk.Panic("cells group must define \"inclusion\"")
	}
	outerCtag, ok := groups.Cells["matrix"]
	if !ok {
		chk.Panic("cells group must define \"matrix\"")
	}
	innerFtag, ok := groups.Facets["inner_boundary"]
	if !ok {
		chk.Panic("facets group must define \"inner_boundary\"")
	}
	outerFtag, ok := groups.Facets["outer_boundary"]
	if !ok {
		chk.Panic("facets group must define \"outer_boundary\"")
	}

	// surfaces: the inclusion is carved out of the matrix disk
	m := geo.NewModel(g.Model)
	inner := m.AddDisk(g.Xc, g.Yc, g.Ri, g.Aspect*g.Ri)
	outer := m.AddDisk(g.Xc, g.Yc, g.Re, g.Re)
	m.Fragment([]geo.Entity{{2, outer}}, []geo.Entity{{2, inner}})
	m.Synchronize()

	// physical groups; boundary curves are sorted outermost first
	lines := m.Entities(1)
	m.AddPhysicalGroup(2, []int{inner}, innerCtag)
	m.SetPhysicalName(2, innerCtag, "inclusion")
	m.AddPhysicalGroup(2, []int{outer}, outerCtag)
	m.SetPhysicalName(2, outerCtag, "matrix")
	m.AddPhysicalGroup(1, []int{lines[1].Tag}, innerFtag)
	m.SetPhysicalName(1, innerFtag, "inner_boundary")
	m.AddPhysicalGroup(1, []int{lines[0].Tag}, outerFtag)
	m.SetPhysicalName(1, outerFtag, "outer_boundary")
	return m
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// prepareMeshes generates the mesh of regions without a mesh file and writes
// the result to the output directory
func (o *Main) prepareMeshes() (err error) {
	for _, reg := range o.Sim.Regions {

		// mesh was read from file already
		if reg.Msh != nil {
			continue
		}

		// generate
		reg.Msh, err = o.generateMesh()
		if err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("> Mesh generated: %d vertices, %d cells\n", len(reg.Msh.Verts), len(reg.Msh.Cells))
		}

		// write mesh file
		if o.Proc == 0 {
			err = reg.Msh.WriteMsh(o.Sim.DirOut, o.Sim.Key+".msh")
			if err != nil {
				return
			}
			if o.ShowMsg {
				io.Pf("> Mesh file written to %s\n", o.Sim.DirOut)
			}
		}
	}
	return
}

// generateMesh runs the geometry kernel and the mesh generator
func (o *Main) generateMesh() (m *msh.Mesh, err error) {
	geo.Initialize()
	defer geo.Finalize()
	mdl := BuildModel(&o.Sim.Geo, &o.Sim.Groups)
	return msh.Generate(mdl, &o.Sim.Mesh)
}

// onexit cleans resources and prints final message
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// clean resources
	o.Sim.Clean()

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		err = prevErr
	}
	return
}
