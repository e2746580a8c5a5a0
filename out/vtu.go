// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/msolides-2022/compomesh/msh"
)

// vtkTypes maps cell types to VTK cell type codes
var vtkTypes = map[string]int{
	"tri3": 5,
	"tri6": 22,
}

// WriteVtu writes an unstructured grid (.vtu) file for ParaView with the
// cell tags and partitions as cell data
func WriteVtu(dirout, fn string, m *msh.Mesh) (err error) {

	// buffer
	var buf bytes.Buffer
	io.Ff(&buf, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	io.Ff(&buf, "<VTKFile type=\"UnstructuredGrid\" version=\"0.1\" byte_order=\"LittleEndian\">\n")
	io.Ff(&buf, "<UnstructuredGrid>\n")
	io.Ff(&buf, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(m.Verts), len(m.Cells))

	// points
	io.Ff(&buf, "<Points>\n<DataArray type=\"Float64\" NumberOfComponents=\"3\" format=\"ascii\">\n")
	for _, v := range m.Verts {
		io.Ff(&buf, "%23.15e %23.15e 0 ", v.C[0], v.C[1])
	}
	io.Ff(&buf, "\n</DataArray>\n</Points>\n")

	// cells
	io.Ff(&buf, "<Cells>\n<DataArray type=\"Int32\" Name=\"connectivity\" format=\"ascii\">\n")
	for _, c := range m.Cells {
		for _, v := range c.Verts {
			io.Ff(&buf, "%d ", v)
		}
	}
	io.Ff(&buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"offsets\" format=\"ascii\">\n")
	offset := 0
	for _, c := range m.Cells {
		offset += len(c.Verts)
		io.Ff(&buf, "%d ", offset)
	}
	io.Ff(&buf, "\n</DataArray>\n<DataArray type=\"UInt8\" Name=\"types\" format=\"ascii\">\n")
	for _, c := range m.Cells {
		code, ok := vtkTypes[c.Type]
		if !ok {
			return chk.Err("cannot export cell type %q to vtu", c.Type)
		}
		io.Ff(&buf, "%d ", code)
	}
	io.Ff(&buf, "\n</DataArray>\n</Cells>\n")

	// cell data
	io.Ff(&buf, "<CellData Scalars=\"tag\">\n<DataArray type=\"Int32\" Name=\"tag\" format=\"ascii\">\n")
	for _, c := range m.Cells {
		io.Ff(&buf, "%d ", c.Tag)
	}
	io.Ff(&buf, "\n</DataArray>\n<DataArray type=\"Int32\" Name=\"part\" format=\"ascii\">\n")
	for _, c := range m.Cells {
		io.Ff(&buf, "%d ", c.Part)
	}
	io.Ff(&buf, "\n</DataArray>\n</CellData>\n")

	// footer
	io.Ff(&buf, "</Piece>\n</UnstructuredGrid>\n</VTKFile>\n")

	// write file
	io.WriteFileD(dirout, fn, &buf)
	return
}

// Vtu exports the mesh of the current domain to the output directory
func Vtu() (err error) {
	return WriteVtu(Sim.DirOut, Sim.Key+".vtu", Dom.Msh)
}
