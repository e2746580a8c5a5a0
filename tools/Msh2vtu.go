// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

// Msh2vtu converts a mesh (.msh) file to a ParaView (.vtu) file
package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/msolides-2022/compomesh/msh"
	"github.com/msolides-2022/compomesh/out"
)

func main() {

	// input parameters
	mshfnpath, fnkey := io.ArgToFilename(0, "", ".msh", true)
	dirout := io.ArgToString(1, filepath.Dir(mshfnpath))

	io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
		"mesh filename path", "mshfnpath", mshfnpath,
		"output directory", "dirout", dirout,
	))

	// read mesh
	m, err := msh.ReadMsh(filepath.Dir(mshfnpath), filepath.Base(mshfnpath), 0)
	if err != nil {
		chk.Panic("cannot read mesh:\n%v", err)
	}

	// write vtu
	err = out.WriteVtu(dirout, fnkey+".vtu", m)
	if err != nil {
		chk.Panic("cannot write vtu file:\n%v", err)
	}
	io.Pf("file <%s/%s.vtu> written\n", dirout, fnkey)
}
