// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_out01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out01. vertex selection")

	Start("data/composite.sim", 0, 0)

	// centre vertex
	chk.IntAssert(VertAt([]float64{0, 0}), 0)
	chk.IntAssert(VertAt([]float64{100, 100}), -1)

	// vertices along the positive x axis: centre + 5 inclusion rings + 30 matrix rings
	ids := VertsAlong([]float64{0, 0}, []float64{6.9, 0})
	chk.IntAssert(len(ids), 36)

	// nodes on the boundaries
	inner := NodesOnFacet(1)
	outer := NodesOnFacet(2)
	chk.IntAssert(len(inner), 32)
	chk.IntAssert(len(outer), 217)
	for _, n := range inner {
		chk.IntAssert(len(n.Dofs), 2)
	}

	// drawing
	if chk.Verbose {
		Draw("/tmp/compomesh", "test_out01", false, false)
	}
}

func Test_out02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("out02. vtu export")

	Start("data/composite.sim", 0, 0)

	err := Vtu()
	if err != nil {
		tst.Errorf("vtu export failed:\n%v", err)
		return
	}
	s := string(io.ReadFile(Sim.DirOut + "/" + Sim.Key + ".vtu"))
	if !strings.Contains(s, "UnstructuredGrid") {
		tst.Errorf("vtu file has no UnstructuredGrid element\n")
		return
	}
	if !strings.Contains(s, "Name=\"tag\"") {
		tst.Errorf("vtu file has no tag data\n")
		return
	}
}
