// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from (.sim) and (.mat) JSON files
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/msolides-2022/compomesh/msh"
)

// Data holds global data for simulations
type Data struct {
	Name    string `json:"name"`    // name of domain; e.g. "composite". default is the simulation filename key
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/compomesh
	Encoder string `json:"encoder"` // encoder name; e.g. "json" or "gob"
	Pstress bool   `json:"pstress"` // plane-stress
	ListBcs bool   `json:"listbcs"` // list boundary conditions
}

// GeoData holds the geometry definition of the composite disk
type GeoData struct {
	Model  string  `json:"model"`  // geometry model name; e.g. "Disk"
	Ri     float64 `json:"ri"`     // semi-axis of inclusion along x
	Re     float64 `json:"re"`     // semi-axis of matrix disk along x
	Aspect float64 `json:"aspect"` // ratio between y and x semi-axes; default is 1
	Xc     float64 `json:"xc"`     // x-coordinate of centre
	Yc     float64 `json:"yc"`     // y-coordinate of centre
}

// GroupsData maps group names to positive tags for cells and facets
type GroupsData struct {
	Cells  map[string]int `json:"cells"`  // cell group name => tag; e.g. {"inclusion":1, "matrix":2}
	Facets map[string]int `json:"facets"` // facet group name => tag; e.g. {"inner_boundary":1, "outer_boundary":2}
}

// ElemData holds element data
type ElemData struct {
	Tag   int    `json:"tag"`   // tag of element
	Mat   string `json:"mat"`   // material name
	Type  string `json:"type"`  // type of element; e.g. "u"
	Nip   int    `json:"nip"`   // number of integration points; 0 => use default
	Nipf  int    `json:"nipf"`  // number of integration points on face; 0 => use default
	Extra string `json:"extra"` // extra flags (in keycode format); e.g. "!thick:0.2"
	Inact bool   `json:"inact"` // whether element starts inactive or not
}

// Region holds region data
type Region struct {

	// input data
	Desc      string      `json:"desc"`      // description of region
	Mshfile   string      `json:"mshfile"`   // file path of file with mesh data; empty => generate mesh from geometry
	ElemsData []*ElemData `json:"elemsdata"` // list of elements data
	AbsPath   bool        `json:"abspath"`   // mesh filename is given in absolute path

	// derived
	Msh *msh.Mesh // the mesh
}

// FaceBc holds face boundary condition
type FaceBc struct {
	Tag   int      `json:"tag"`   // tag of face
	Keys  []string `json:"keys"`  // key indicating type of bcs; e.g. qn, ux, uy
	Funcs []string `json:"funcs"` // name of function; e.g. zero, load
	Extra string   `json:"extra"` // extra information
}

// NodeBc holds node boundary condition
type NodeBc struct {
	Tag   int      `json:"tag"`   // tag of node
	Keys  []string `json:"keys"`  // key indicating type of bcs; e.g. ux, uy
	Funcs []string `json:"funcs"` // name of function; e.g. zero, load
	Extra string   `json:"extra"` // extra information
}

// EleCond holds element condition
type EleCond struct {
	Tag   int      `json:"tag"`   // tag of cell/element
	Keys  []string `json:"keys"`  // key indicating type of condition; e.g. "g" (gravity)
	Funcs []string `json:"funcs"` // name of function; e.g. grav, none
	Extra string   `json:"extra"` // extra information
}

// Stage holds stage data
type Stage struct {
	Desc     string     `json:"desc"`     // description of simulation stage
	Skip     bool       `json:"skip"`     // do not run stage
	EleConds []*EleCond `json:"eleconds"` // element conditions
	FaceBcs  []*FaceBc  `json:"facebcs"`  // face boundary conditions
	NodeBcs  []*NodeBc  `json:"nodebcs"`  // node boundary conditions
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Geo       GeoData     `json:"geometry"`  // geometry of the composite disk
	Mesh      msh.Control `json:"mesh"`      // mesh generation control
	Groups    GroupsData  `json:"groups"`    // names and tags of cell/facet groups
	Functions FuncsData   `json:"functions"` // stores all boundary condition functions
	PlotF     *PlotFdata  `json:"plotf"`     // plot functions
	Regions   []*Region   `json:"regions"`   // stores all regions
	Stages    []*Stage    `json:"stages"`    // stores all stages

	// derived
	GoroutineId int    // id of goroutine to avoid race problems
	DirOut      string // directory to save results
	Key         string // simulation key; e.g. composite.sim => composite or composite-alias
	EncType     string // encoder type
	Ndim        int    // space dimension
	MatModels   *MatDb // materials and models
}

// Simulation //////////////////////////////////////////////////////////////////////////////////////

// Clean cleans resources
func (o *Simulation) Clean() {
	if o.MatModels != nil {
		o.MatModels.Clean()
	}
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev, createDirOut bool, goroutineId int) *Simulation {

	// new sim
	var o Simulation
	o.GoroutineId = goroutineId

	// read file
	b := io.ReadFile(simfilepath)

	// set default values
	o.Mesh.SetDefault()

	// decode
	err := json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// input directory and filename key
	dir := filepath.Dir(simfilepath)
	fn := filepath.Base(simfilepath)
	dir = os.ExpandEnv(dir)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// domain name
	if o.Data.Name == "" {
		o.Data.Name = fnkey
	}

	// geometry
	if o.Geo.Model == "" {
		o.Geo.Model = "Disk"
	}
	if o.Geo.Aspect == 0 {
		o.Geo.Aspect = 1
	}
	if o.Geo.Ri < 1e-14 {
		chk.Panic("ReadSim: inclusion semi-axis (ri=%g) must be positive", o.Geo.Ri)
	}
	if o.Geo.Re <= o.Geo.Ri {
		chk.Panic("ReadSim: matrix semi-axis (re=%g) must be greater than inclusion semi-axis (ri=%g)", o.Geo.Re, o.Geo.Ri)
	}
	if o.Geo.Aspect < 1e-14 {
		chk.Panic("ReadSim: aspect ratio (%g) must be positive", o.Geo.Aspect)
	}

	// mesh control; default characteristic length is one fifth of the inclusion semi-axis
	if o.Mesh.ClMin < 1e-14 {
		o.Mesh.ClMin = o.Geo.Ri / 5.0
	}
	if o.Mesh.ClMax < 1e-14 {
		o.Mesh.ClMax = o.Mesh.ClMin
	}
	err = o.Mesh.Validate()
	if err != nil {
		chk.Panic("ReadSim: mesh control is invalid:\n%v", err)
	}

	// groups
	o.Groups.SetDefault()
	err = o.Groups.Validate()
	if err != nil {
		chk.Panic("ReadSim: groups are invalid:\n%v", err)
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/compomesh/" + fnkey
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "json"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// space dimension; the disk generator is 2D only
	o.Ndim = 2

	// for all regions
	if len(o.Regions) < 1 {
		chk.Panic("ReadSim: at least one region must be defined")
	}
	for _, reg := range o.Regions {

		// read mesh, if given; otherwise the mesh is generated from the geometry data later
		if reg.Mshfile != "" {
			ddir := dir
			if reg.AbsPath {
				ddir = ""
			}
			reg.Msh, err = msh.ReadMsh(ddir, reg.Mshfile, goroutineId)
			if err != nil {
				chk.Panic("ReadSim: cannot read mesh file:\n%v", err)
			}
			if reg.Msh.Ndim != o.Ndim {
				chk.Panic("ReadSim: Ndim value is inconsistent: %d != %d", reg.Msh.Ndim, o.Ndim)
			}
		}

		// check that all cell groups have element data
		for _, tag := range o.Groups.CellTags() {
			if reg.Etag2data(tag) == nil {
				chk.Panic("ReadSim: cannot find element data for cell tag %d", tag)
			}
		}
	}

	// for all stages
	for _, stg := range o.Stages {
		for _, fbc := range stg.FaceBcs {
			if !o.Groups.HasFacetTag(fbc.Tag) {
				chk.Panic("ReadSim: face boundary condition tag (%d) is not in the facets group", fbc.Tag)
			}
			for _, fname := range fbc.Funcs {
				if _, err = o.Functions.Get(fname); err != nil {
					chk.Panic("ReadSim: cannot find function named %q in face boundary conditions\n%v", fname, err)
				}
			}
		}
		for _, nbc := range stg.NodeBcs {
			for _, fname := range nbc.Funcs {
				if _, err = o.Functions.Get(fname); err != nil {
					chk.Panic("ReadSim: cannot find function named %q in node boundary conditions\n%v", fname, err)
				}
			}
		}
		for _, econd := range stg.EleConds {
			for _, fname := range econd.Funcs {
				if _, err = o.Functions.Get(fname); err != nil {
					chk.Panic("ReadSim: cannot find function named %q in element conditions\n%v", fname, err)
				}
			}
		}
	}

	// read materials database and initialise models
	o.MatModels, err = ReadMat(dir, o.Data.Matfile, o.Ndim, o.Data.Pstress)
	if err != nil {
		chk.Panic("loading materials and initialising models failed:\n%v", err)
	}

	// check that all element data refer to existent materials
	for _, reg := range o.Regions {
		for _, edat := range reg.ElemsData {
			if o.MatModels.Get(edat.Mat) == nil {
				chk.Panic("ReadSim: material %q of element tag %d is not in the material database", edat.Mat, edat.Tag)
			}
		}
	}

	// results
	return &o
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// Etag2data returns the ElemData corresponding to element tag
//  Note: returns nil if not found
func (o *Region) Etag2data(etag int) *ElemData {
	for _, edat := range o.ElemsData {
		if edat.Tag == etag {
			return edat
		}
	}
	return nil
}

// GetInfo returns formatted information
func (o *Simulation) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// GetEleCond returns element condition structure by giving an elem tag
//  Note: returns nil if not found
func (o Stage) GetEleCond(elemtag int) *EleCond {
	for _, ec := range o.EleConds {
		if elemtag == ec.Tag {
			return ec
		}
	}
	return nil
}

// GetNodeBc returns node boundary condition structure by giving a node tag
//  Note: returns nil if not found
func (o Stage) GetNodeBc(nodetag int) *NodeBc {
	for _, nbc := range o.NodeBcs {
		if nodetag == nbc.Tag {
			return nbc
		}
	}
	return nil
}

// GetFaceBc returns face boundary condition structure by giving a face tag
//  Note: returns nil if not found
func (o Stage) GetFaceBc(facetag int) *FaceBc {
	for _, fbc := range o.FaceBcs {
		if facetag == fbc.Tag {
			return fbc
		}
	}
	return nil
}

// groups //////////////////////////////////////////////////////////////////////////////////////////

// SetDefault sets default group names and tags
func (o *GroupsData) SetDefault() {
	if len(o.Cells) == 0 {
		o.Cells = map[string]int{"inclusion": 1, "matrix": 2}
	}
	if len(o.Facets) == 0 {
		o.Facets = map[string]int{"inner_boundary": 1, "outer_boundary": 2}
	}
}

// Validate checks that tags are positive and unique within each map
func (o *GroupsData) Validate() error {
	for _, m := range []map[string]int{o.Cells, o.Facets} {
		seen := make(map[int]string)
		for name, tag := range m {
			if tag < 1 {
				return chk.Err("tag of group %q must be positive; %d is invalid", name, tag)
			}
			if other, ok := seen[tag]; ok {
				return chk.Err("groups %q and %q cannot share the same tag (%d)", other, name, tag)
			}
			seen[tag] = name
		}
	}
	return nil
}

// CellTags returns a sorted list of cell tags
func (o *GroupsData) CellTags() (tags []int) {
	for _, tag := range o.Cells {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return
}

// FacetTags returns a sorted list of facet tags
func (o *GroupsData) FacetTags() (tags []int) {
	for _, tag := range o.Facets {
		tags = append(tags, tag)
	}
	sort.Ints(tags)
	return
}

// HasFacetTag tells whether tag belongs to the facets group or not
func (o *GroupsData) HasFacetTag(tag int) bool {
	for _, t := range o.Facets {
		if t == tag {
			return true
		}
	}
	return false
}

// CellGroupName returns the name of the cell group with given tag
//  Note: returns "" if not found
func (o *GroupsData) CellGroupName(tag int) string {
	for name, t := range o.Cells {
		if t == tag {
			return name
		}
	}
	return ""
}

// FacetGroupName returns the name of the facet group with given tag
//  Note: returns "" if not found
func (o *GroupsData) FacetGroupName(tag int) string {
	for name, t := range o.Facets {
		if t == tag {
			return name
		}
	}
	return ""
}
