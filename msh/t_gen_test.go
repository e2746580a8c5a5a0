// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"
	"testing"

	"github.com/msolides-2022/compomesh/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// buildComposite creates the reference model: unit inclusion inside a
// matrix disk with radius 6.9, groups tagged as in the input decks
func buildComposite(aspect float64) *geo.Model {
	m := geo.NewModel("Disk")
	inner := m.AddDisk(0, 0, 1.0, aspect*1.0)
	outer := m.AddDisk(0, 0, 6.9, 6.9)
	m.Fragment([]geo.Entity{{2, outer}}, []geo.Entity{{2, inner}})
	m.Synchronize()
	lines := m.Entities(1)
	m.AddPhysicalGroup(2, []int{inner}, 1)
	m.SetPhysicalName(2, 1, "inclusion")
	m.AddPhysicalGroup(2, []int{outer}, 2)
	m.SetPhysicalName(2, 2, "matrix")
	m.AddPhysicalGroup(1, []int{lines[1].Tag}, 1)
	m.SetPhysicalName(1, 1, "inner_boundary")
	m.AddPhysicalGroup(1, []int{lines[0].Tag}, 2)
	m.SetPhysicalName(1, 2, "outer_boundary")
	return m
}

func Test_gen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen01. composite disk, first order")

	geo.Initialize()
	defer geo.Finalize()
	mdl := buildComposite(1.0)

	ctl := new(Control)
	ctl.SetDefault()
	ctl.ClMin, ctl.ClMax = 0.2, 0.2
	m, err := Generate(mdl, ctl)
	if err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	io.Pforan("nverts=%d ncells=%d\n", len(m.Verts), len(m.Cells))

	// topology
	if err := m.Check(); err != nil {
		tst.Errorf("check failed:\n%v", err)
		return
	}

	// regions
	chk.IntAssert(len(m.CellTag2cells[1]), 164)
	if len(m.CellTag2cells[2]) < 1 {
		tst.Errorf("matrix region is empty\n")
		return
	}
	for _, c := range m.Cells {
		chk.StrAssert(c.Type, "tri3")
	}

	// facet groups: interface tagged on both sides
	chk.IntAssert(len(m.FaceTag2cells[1]), 64)
	chk.IntAssert(len(m.FaceTag2cells[2]), 217)
	ninc, nmat := 0, 0
	for _, pair := range m.FaceTag2cells[1] {
		if pair.C.Tag == 1 {
			ninc++
		} else {
			nmat++
		}
	}
	chk.IntAssert(ninc, 32)
	chk.IntAssert(nmat, 32)

	// areas
	chk.Float64(tst, "inclusion area", 0.05, m.RegionArea(1), math.Pi)
	chk.Float64(tst, "matrix area", 0.25, m.RegionArea(2), math.Pi*(6.9*6.9-1.0))

	// limits
	chk.Float64(tst, "xmin", 1e-13, m.Xmin, -6.9)
	chk.Float64(tst, "xmax", 1e-13, m.Xmax, 6.9)
	chk.Float64(tst, "ymin", 1e-13, m.Ymin, -6.9)
	chk.Float64(tst, "ymax", 1e-13, m.Ymax, 6.9)

	// quality and edge sizes
	qmin, qavg := m.Quality()
	io.Pfcyan("qmin=%g qavg=%g\n", qmin, qavg)
	if qmin < 0.3 {
		tst.Errorf("minimum quality is too low: %g\n", qmin)
		return
	}
	lmin, lmax := edgeLengthRange(m)
	io.Pfcyan("lmin=%g lmax=%g\n", lmin, lmax)
	if lmin < 0.7*ctl.ClMin || lmax > 1.5*ctl.ClMax {
		tst.Errorf("edge lengths out of range: [%g,%g]\n", lmin, lmax)
		return
	}

	// drawing
	if chk.Verbose {
		plt.Reset(true, nil)
		m.Draw2d(false, false)
		plt.Save("/tmp/compomesh", "test_gen01")
	}
}

func Test_gen02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen02. composite disk, second order")

	geo.Initialize()
	defer geo.Finalize()
	mdl := buildComposite(1.0)

	ctl := new(Control)
	ctl.SetDefault()
	ctl.ClMin, ctl.ClMax = 0.2, 0.2
	ctl.Order = 2
	m, err := Generate(mdl, ctl)
	if err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	// all cells elevated
	for _, c := range m.Cells {
		chk.StrAssert(c.Type, "tri6")
		chk.IntAssert(len(c.Verts), 6)
		chk.IntAssert(len(c.FTags), 3)
	}
	if err := m.Check(); err != nil {
		tst.Errorf("check failed:\n%v", err)
		return
	}

	// midside vertices on the interface lie on the unit circle
	for _, pair := range m.FaceTag2cells[1] {
		gv := m.EdgeGlobalVerts(pair.C, pair.Fid)
		chk.IntAssert(len(gv), 3)
		mid := m.Verts[gv[2]]
		radius := math.Hypot(mid.C[0], mid.C[1])
		chk.Float64(tst, "interface midside radius", 1e-14, radius, 1.0)
	}

	// midside vertices on the outer boundary lie on the outer circle
	for _, pair := range m.FaceTag2cells[2] {
		gv := m.EdgeGlobalVerts(pair.C, pair.Fid)
		mid := m.Verts[gv[2]]
		radius := math.Hypot(mid.C[0], mid.C[1])
		chk.Float64(tst, "outer midside radius", 1e-13, radius, 6.9)
	}
}

func Test_gen03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen03. elliptical inclusion")

	geo.Initialize()
	defer geo.Finalize()
	mdl := buildComposite(0.5)

	ctl := new(Control)
	ctl.SetDefault()
	ctl.ClMin, ctl.ClMax = 0.15, 0.25
	m, err := Generate(mdl, ctl)
	if err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}
	if err := m.Check(); err != nil {
		tst.Errorf("check failed:\n%v", err)
		return
	}
	chk.Float64(tst, "inclusion area", 0.05, m.RegionArea(1), math.Pi*1.0*0.5)
	qmin, _ := m.Quality()
	if qmin < 0.2 {
		tst.Errorf("minimum quality is too low: %g\n", qmin)
		return
	}
}

func Test_gen04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gen04. control validation")

	geo.Initialize()
	defer geo.Finalize()
	mdl := buildComposite(1.0)

	ctl := new(Control)
	ctl.SetDefault()
	ctl.ClMin, ctl.ClMax = 0.3, 0.2
	if _, err := Generate(mdl, ctl); err == nil {
		tst.Errorf("clmin > clmax must fail\n")
		return
	}
	ctl.ClMin, ctl.ClMax = 0.2, 0.2
	ctl.Order = 3
	if _, err := Generate(mdl, ctl); err == nil {
		tst.Errorf("order 3 must fail\n")
		return
	}
	ctl.Order = 1
	ctl.MinDivs = 2
	if _, err := Generate(mdl, ctl); err == nil {
		tst.Errorf("mindivs smaller than 3 must fail\n")
		return
	}
}

// edgeLengthRange returns the smallest and largest corner edge lengths
func edgeLengthRange(m *Mesh) (lmin, lmax float64) {
	lmin = math.MaxFloat64
	for _, c := range m.Cells {
		for e := 0; e < 3; e++ {
			a := m.Verts[c.Verts[e]].C
			b := m.Verts[c.Verts[(e+1)%3]].C
			l := math.Hypot(b[0]-a[0], b[1]-a[1])
			if l < lmin {
				lmin = l
			}
			if l > lmax {
				lmax = l
			}
		}
	}
	return
}
