// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements handling of the prepared FE data for inspection,
// plotting and export
package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/plt"

	"github.com/msolides-2022/compomesh/fem"
	"github.com/msolides-2022/compomesh/inp"
	"github.com/msolides-2022/compomesh/msh"
)

// Global variables
var (
	Analysis *fem.Main       // the fem structure
	Sim      *inp.Simulation // [from Analysis] input data
	Dom      *fem.Domain     // [from Analysis] FE domain
	Loc      *msh.Locator    // vertex locator over the domain's mesh
)

// Start prepares the data of a simulation input file and sets the handling
// of results for the given stage and region
func Start(simfnpath string, stageIdx, regionIdx int) {

	// fem structure
	Analysis = fem.NewMain(simfnpath, "", false, false, false, 0)
	Sim = Analysis.Sim
	Dom = Analysis.Domains[regionIdx]

	// set stage
	err := Analysis.SetStage(stageIdx)
	if err != nil {
		chk.Panic("cannot set stage:\n%v", err)
	}

	// vertex locator
	Loc = msh.NewLocator(Dom.Msh)
}

// VertAt returns the id of the vertex at x, or -1
func VertAt(x []float64) int {
	return Loc.Find(x)
}

// VertsAlong returns the ids of the vertices lying on the segment a-b
func VertsAlong(a, b []float64) []int {
	return Loc.AlongLine(a, b)
}

// NodesOnFacet returns the nodes along the boundary with given facet tag
func NodesOnFacet(ftag int) (nodes []*fem.Node) {
	fs := Dom.FacetSet(ftag)
	if fs == nil {
		chk.Panic("cannot find facet set with tag = %d", ftag)
	}
	for _, vid := range fs.Verts {
		if Dom.Vid2node[vid] != nil {
			nodes = append(nodes, Dom.Vid2node[vid])
		}
	}
	return
}

// Draw plots the mesh of the current domain and saves the figure
func Draw(dirout, fnkey string, onlyTagged, withIds bool) {
	plt.Reset(true, nil)
	Dom.Msh.Draw2d(onlyTagged, withIds)
	plt.Save(dirout, fnkey)
}
