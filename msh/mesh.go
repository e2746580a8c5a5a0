// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the mesh data structure and the generation of
// triangular meshes over composite disk geometries with tagged physical
// regions and boundary facets
package msh

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"sort"

	"github.com/msolides-2022/compomesh/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vert holds vertex data
type Vert struct {

	// input
	Id  int       `json:"i"` // id
	Tag int       `json:"t"` // tag
	C   []float64 `json:"c"` // coordinates

	// derived
	SharedBy []int `json:"-"` // ids of cells sharing this vertex
}

// Cell holds cell data
type Cell struct {

	// input
	Id    int    `json:"i"`     // id
	Tag   int    `json:"t"`     // tag of physical cell group
	Part  int    `json:"part"`  // partition id
	Type  string `json:"type"`  // geometry type; e.g. "tri3", "tri6"
	Verts []int  `json:"verts"` // vertices
	FTags []int  `json:"ftags"` // edge (facet) tags; 0 means untagged

	// derived
	Shp *shp.Shape `json:"-"` // shape structure
}

// CellFaceId is a pair of cell and local face/edge index
type CellFaceId struct {
	C   *Cell // cell
	Fid int   // local face/edge index
}

// Mesh holds a mesh for FE analyses
type Mesh struct {

	// input
	Verts []*Vert `json:"verts"` // vertices
	Cells []*Cell `json:"cells"` // cells

	// derived
	Ndim    int     `json:"-"` // space dimension
	Xmin    float64 `json:"-"` // min x-coordinate
	Xmax    float64 `json:"-"` // max x-coordinate
	Ymin    float64 `json:"-"` // min y-coordinate
	Ymax    float64 `json:"-"` // max y-coordinate
	MaxElev float64 `json:"-"` // maximum elevation (largest y-coordinate)

	// derived maps
	VertTag2verts map[int][]*Vert      `json:"-"` // vertex tag => set of vertices
	CellTag2cells map[int][]*Cell      `json:"-"` // cell tag => set of cells
	FaceTag2cells map[int][]CellFaceId `json:"-"` // face tag => set of cells with local edge ids
	Part2cells    map[int][]*Cell      `json:"-"` // partition number => set of cells
}

// CalcDerived computes derived quantities: limits, shared-by lists and tag
// maps. It also validates vertex references and edge tag lengths.
func (o *Mesh) CalcDerived(goroutineId int) (err error) {

	// check
	if len(o.Verts) < 3 || len(o.Cells) < 1 {
		return chk.Err("mesh must have at least 3 vertices and 1 cell. nverts=%d, ncells=%d is incorrect", len(o.Verts), len(o.Cells))
	}

	// vertices: ids, limits
	o.Ndim = 2
	for i, v := range o.Verts {
		if v.Id != i {
			return chk.Err("vertex ids must be sequential. %d != %d", v.Id, i)
		}
		if len(v.C) < 2 {
			return chk.Err("vertex %d must have at least 2 coordinates", v.Id)
		}
		v.SharedBy = nil
		if i == 0 {
			o.Xmin, o.Xmax = v.C[0], v.C[0]
			o.Ymin, o.Ymax = v.C[1], v.C[1]
		} else {
			if v.C[0] < o.Xmin {
				o.Xmin = v.C[0]
			}
			if v.C[0] > o.Xmax {
				o.Xmax = v.C[0]
			}
			if v.C[1] < o.Ymin {
				o.Ymin = v.C[1]
			}
			if v.C[1] > o.Ymax {
				o.Ymax = v.C[1]
			}
		}
	}
	o.MaxElev = o.Ymax

	// cells: shapes, shared-by, edge tags
	o.VertTag2verts = make(map[int][]*Vert)
	o.CellTag2cells = make(map[int][]*Cell)
	o.FaceTag2cells = make(map[int][]CellFaceId)
	o.Part2cells = make(map[int][]*Cell)
	for i, c := range o.Cells {
		if c.Id != i {
			return chk.Err("cell ids must be sequential. %d != %d", c.Id, i)
		}
		c.Shp = shp.Get(c.Type)
		if c.Shp == nil {
			return chk.Err("cannot allocate shape structure of type %q for cell %d", c.Type, c.Id)
		}
		if len(c.Verts) != c.Shp.Nverts {
			return chk.Err("cell %d (%s) must have %d vertices. %d is incorrect", c.Id, c.Type, c.Shp.Nverts, len(c.Verts))
		}
		nedges := len(c.Shp.FaceLocalVerts)
		if len(c.FTags) == 0 {
			c.FTags = make([]int, nedges)
		}
		if len(c.FTags) != nedges {
			return chk.Err("cell %d (%s) must have %d edge tags. %d is incorrect", c.Id, c.Type, nedges, len(c.FTags))
		}
		for _, vid := range c.Verts {
			if vid < 0 || vid >= len(o.Verts) {
				return chk.Err("cell %d references inexistent vertex %d", c.Id, vid)
			}
			o.Verts[vid].SharedBy = append(o.Verts[vid].SharedBy, c.Id)
		}
		o.CellTag2cells[c.Tag] = append(o.CellTag2cells[c.Tag], c)
		o.Part2cells[c.Part] = append(o.Part2cells[c.Part], c)
		for fid, ftag := range c.FTags {
			if ftag != 0 {
				o.FaceTag2cells[ftag] = append(o.FaceTag2cells[ftag], CellFaceId{c, fid})
			}
		}
	}

	// vertex tags
	for _, v := range o.Verts {
		sort.Ints(v.SharedBy)
		if v.Tag != 0 {
			o.VertTag2verts[v.Tag] = append(o.VertTag2verts[v.Tag], v)
		}
		if len(v.SharedBy) < 1 {
			return chk.Err("vertex %d belongs to no cell", v.Id)
		}
	}
	return
}

// EdgeVerts returns the global corner vertex ids of an edge of a cell,
// sorted ascending
func (o *Mesh) EdgeVerts(c *Cell, fid int) (a, b int) {
	lverts := c.Shp.FaceLocalVerts[fid]
	a, b = c.Verts[lverts[0]], c.Verts[lverts[1]]
	if b < a {
		a, b = b, a
	}
	return
}

// EdgeGlobalVerts returns all global vertex ids of an edge of a cell, in
// local order (corners first, midside last for tri6)
func (o *Mesh) EdgeGlobalVerts(c *Cell, fid int) (res []int) {
	for _, l := range c.Shp.FaceLocalVerts[fid] {
		res = append(res, c.Verts[l])
	}
	return
}

// ReadMsh reads a mesh (.msh) JSON file
//  Note: returns nil on errors
func ReadMsh(dir, fn string, goroutineId int) (o *Mesh, err error) {

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))

	// decode
	o = new(Mesh)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal mesh file %q:\n%v", fn, err)
	}

	// derived
	err = o.CalcDerived(goroutineId)
	if err != nil {
		return nil, err
	}
	return
}

// WriteMsh writes the mesh to a (.msh) JSON file in dir
func (o *Mesh) WriteMsh(dir, fn string) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return chk.Err("cannot marshal mesh:\n%v", err)
	}
	var buf bytes.Buffer
	buf.Write(b)
	io.WriteFileD(dir, fn, &buf)
	return
}

// String returns a JSON representation of the mesh
func (o *Mesh) String() string {
	b, err := json.Marshal(o)
	if err != nil {
		chk.Panic("cannot marshal mesh:\n%v", err)
	}
	return string(b)
}
