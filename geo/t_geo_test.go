// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_model01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model01. disk in disk: fragment and synchronize")

	Initialize()
	defer Finalize()

	m := NewModel("Disk")
	inner := m.AddDisk(0, 0, 1.0, 1.0)
	outer := m.AddDisk(0, 0, 6.9, 6.9)

	frags := m.Fragment([]Entity{{2, outer}}, []Entity{{2, inner}})
	chk.IntAssert(len(frags), 1)
	chk.IntAssert(len(frags[0]), 2)
	chk.IntAssert(frags[0][0].Tag, inner)
	chk.IntAssert(frags[0][1].Tag, outer)

	m.Synchronize()
	if !m.Synced() {
		tst.Errorf("model must be synced after Synchronize\n")
		return
	}

	// surfaces: inclusion full, matrix annular
	chk.Float64(tst, "inclusion Rx", 1e-15, m.Surf(inner).Rx, 1.0)
	chk.Float64(tst, "matrix Rx", 1e-15, m.Surf(outer).Rx, 6.9)
	chk.Float64(tst, "matrix hole Rx", 1e-15, m.Surf(outer).HoleRx, 1.0)

	// curves: outer contour listed first, inner interface second
	lines := m.Entities(1)
	chk.IntAssert(len(lines), 2)
	chk.Float64(tst, "outer curve Rx", 1e-15, m.Crv(lines[0].Tag).Rx, 6.9)
	chk.Float64(tst, "inner curve Rx", 1e-15, m.Crv(lines[1].Tag).Rx, 1.0)
}

func Test_model02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model02. physical groups")

	Initialize()
	defer Finalize()

	m := NewModel("Disk")
	inner := m.AddDisk(0, 0, 1.0, 1.0)
	outer := m.AddDisk(0, 0, 6.9, 6.9)
	m.Fragment([]Entity{{2, outer}}, []Entity{{2, inner}})
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

	cellgroups := m.PhysicalGroups(2)
	chk.IntAssert(len(cellgroups), 2)
	chk.StrAssert(cellgroups[0].Name, "inclusion")
	chk.StrAssert(cellgroups[1].Name, "matrix")

	g := m.GroupByName(1, "outer_boundary")
	if g == nil {
		tst.Errorf("cannot find group outer_boundary\n")
		return
	}
	chk.IntAssert(g.Tag, 2)
	chk.Ints(tst, "outer_boundary entities", g.Etags, []int{lines[0].Tag})

	gi := m.GroupOfEntity(2, inner)
	chk.StrAssert(gi.Name, "inclusion")
}

func Test_model03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model03. elliptical inclusion")

	Initialize()
	defer Finalize()

	m := NewModel("Ellipse")
	inner := m.AddDisk(0, 0, 1.0, 0.5)
	outer := m.AddDisk(0, 0, 6.9, 6.9)
	m.Fragment([]Entity{{2, outer}}, []Entity{{2, inner}})
	m.Synchronize()

	lines := m.Entities(1)
	chk.IntAssert(len(lines), 2)
	chk.Float64(tst, "inner curve Ry", 1e-15, m.Crv(lines[1].Tag).Ry, 0.5)
	chk.Float64(tst, "matrix hole Ry", 1e-15, m.Surf(outer).HoleRy, 0.5)
}

func Test_model04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model04. session lifecycle")

	// operations need an active session
	func() {
		defer chk.RecoverTstPanicIsOK(tst)
		NewModel("early")
	}()

	// sessions do not nest
	Initialize()
	func() {
		defer chk.RecoverTstPanicIsOK(tst)
		Initialize()
	}()

	// current model bookkeeping
	if !IsOn() {
		tst.Errorf("session must be on after Initialize\n")
		return
	}
	NewModel("a")
	NewModel("b")
	chk.StrAssert(Current().Name, "b")
	chk.StrAssert(SetCurrent("a").Name, "a")
	chk.StrAssert(Current().Name, "a")
	func() {
		defer chk.RecoverTstPanicIsOK(tst)
		SetCurrent("void")
	}()
	func() {
		defer chk.RecoverTstPanicIsOK(tst)
		NewModel("a")
	}()

	// finalize clears the registry
	Finalize()
	if IsOn() {
		tst.Errorf("session must be off after Finalize\n")
		return
	}
	func() {
		defer chk.RecoverTstPanicIsOK(tst)
		Current()
	}()

	// names do not leak into the next session
	Initialize()
	defer Finalize()
	NewModel("a")
}

func Test_model05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("model05. invalid disks and fragments")

	Initialize()
	defer Finalize()

	m := NewModel("Disk")
	func() {
		defer chk.RecoverTstPanicIsOK(tst)
		m.AddDisk(0, 0, -1.0, 1.0)
	}()

	// tool must be strictly inside target: equal radii are invalid
	inner := m.AddDisk(0, 0, 1.0, 1.0)
	outer := m.AddDisk(0, 0, 1.0, 1.0)
	defer chk.RecoverTstPanicIsOK(tst)
	m.Fragment([]Entity{{2, outer}}, []Entity{{2, inner}})
}
