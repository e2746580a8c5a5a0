// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// colours per cell tag index
var drawColours = []string{"#4f8048", "#affde8", "#e9a934", "#72a6c5", "#c97060"}

// Draw2d draws the mesh. Tagged edges are highlighted; withIds adds vertex
// and cell ids
func (o *Mesh) Draw2d(onlyTagged, withIds bool) {

	// cells
	if !onlyTagged {
		k := 0
		for _, cells := range o.CellTag2cells {
			clr := drawColours[k%len(drawColours)]
			k++
			for _, c := range cells {
				x := make([]float64, 4)
				y := make([]float64, 4)
				for i := 0; i < 3; i++ {
					v := o.Verts[c.Verts[i]]
					x[i], y[i] = v.C[0], v.C[1]
				}
				x[3], y[3] = x[0], y[0]
				plt.Plot(x, y, &plt.A{C: clr, Ls: "-", Lw: 0.7, NoClip: true})
			}
		}
	}

	// tagged edges
	for ftag, pairs := range o.FaceTag2cells {
		clr := drawColours[ftag%len(drawColours)]
		for _, pair := range pairs {
			var x, y []float64
			for _, vid := range o.EdgeGlobalVerts(pair.C, pair.Fid) {
				v := o.Verts[vid]
				x = append(x, v.C[0])
				y = append(y, v.C[1])
			}
			plt.Plot(x[:2], y[:2], &plt.A{C: clr, Ls: "-", Lw: 2, NoClip: true})
		}
	}

	// ids
	if withIds {
		for _, v := range o.Verts {
			plt.Text(v.C[0], v.C[1], io.Sf("%d", v.Id), &plt.A{Fsz: 5, C: "red"})
		}
		for _, c := range o.Cells {
			xc, yc := 0.0, 0.0
			for i := 0; i < 3; i++ {
				v := o.Verts[c.Verts[i]]
				xc += v.C[0] / 3.0
				yc += v.C[1] / 3.0
			}
			plt.Text(xc, yc, io.Sf("%d", c.Id), &plt.A{Fsz: 5})
		}
	}

	plt.Equal()
	plt.Gll("$x$", "$y$", nil)
}
