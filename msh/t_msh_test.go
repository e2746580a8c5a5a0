// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/msolides-2022/compomesh/geo"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_msh01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh01. write and read back")

	geo.Initialize()
	defer geo.Finalize()
	mdl := buildComposite(1.0)

	ctl := new(Control)
	ctl.SetDefault()
	ctl.ClMin, ctl.ClMax = 0.2, 0.2
	m1, err := Generate(mdl, ctl)
	if err != nil {
		tst.Errorf("generation failed:\n%v", err)
		return
	}

	err = m1.WriteMsh("/tmp/compomesh", "composite.msh")
	if err != nil {
		tst.Errorf("write failed:\n%v", err)
		return
	}
	m2, err := ReadMsh("/tmp/compomesh", "composite.msh", 0)
	if err != nil {
		tst.Errorf("read failed:\n%v", err)
		return
	}
	io.Pforan("nverts=%d ncells=%d\n", len(m2.Verts), len(m2.Cells))

	chk.IntAssert(len(m2.Verts), len(m1.Verts))
	chk.IntAssert(len(m2.Cells), len(m1.Cells))
	chk.IntAssert(len(m2.CellTag2cells[1]), len(m1.CellTag2cells[1]))
	chk.IntAssert(len(m2.FaceTag2cells[1]), len(m1.FaceTag2cells[1]))
	chk.IntAssert(len(m2.FaceTag2cells[2]), len(m1.FaceTag2cells[2]))
	chk.Float64(tst, "xmin", 1e-15, m2.Xmin, m1.Xmin)
	chk.Float64(tst, "ymax", 1e-15, m2.Ymax, m1.Ymax)

	// centre vertex is shared by the whole fan
	chk.Ints(tst, "SharedBy of centre", m2.Verts[0].SharedBy, []int{0, 1, 2, 3, 4, 5, 6, 7})
}

func Test_msh02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh02. locator")

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

	loc := NewLocator(m)

	// centre
	chk.IntAssert(loc.Find([]float64{0, 0}), 0)

	// every ring has a vertex at angle zero: centre + 5 inclusion rings +
	// 30 matrix rings along the positive x-axis
	ids := loc.AlongLine([]float64{0, 0}, []float64{6.9, 0})
	io.Pforan("ids along x-axis = %v\n", ids)
	chk.IntAssert(len(ids), 36)
}

func Test_msh03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("msh03. invalid meshes")

	m := &Mesh{
		Verts: []*Vert{
			{Id: 0, C: []float64{0, 0}},
			{Id: 1, C: []float64{1, 0}},
			{Id: 2, C: []float64{0, 1}},
		},
		Cells: []*Cell{
			{Id: 0, Tag: 1, Type: "tri9", Verts: []int{0, 1, 2}},
		},
	}
	if err := m.CalcDerived(0); err == nil {
		tst.Errorf("unknown cell type must fail\n")
		return
	}

	m.Cells[0].Type = "tri3"
	m.Cells[0].Verts = []int{0, 1, 5}
	if err := m.CalcDerived(0); err == nil {
		tst.Errorf("inexistent vertex must fail\n")
		return
	}

	m.Cells[0].Verts = []int{0, 1, 2}
	m.Cells[0].FTags = nil
	if err := m.CalcDerived(0); err != nil {
		tst.Errorf("valid mesh must not fail:\n%v", err)
		return
	}
	chk.Ints(tst, "default ftags", m.Cells[0].FTags, []int{0, 0, 0})
}
