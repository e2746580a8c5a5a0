// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Entity identifies a geometric entity by dimension and tag
type Entity struct {
	Dim int // dimension: 1=curve, 2=surface
	Tag int // tag within dimension
}

// Surface is an elliptical disk, possibly with an elliptical hole
// (annulus) after fragmentation
type Surface struct {
	Tag    int     // surface tag
	Xc, Yc float64 // centre
	Rx, Ry float64 // semi-axes of outer contour
	HoleRx float64 // semi-axis of hole contour; 0 means no hole
	HoleRy float64 // semi-axis of hole contour; 0 means no hole
}

// Curve is a full elliptical contour
type Curve struct {
	Tag    int     // curve tag
	Xc, Yc float64 // centre
	Rx, Ry float64 // semi-axes
}

// Model holds surfaces, curves and physical groups of one geometric model
type Model struct {

	// identification
	Name string // name of model

	// entities
	surfaces map[int]*Surface // surfaces, by tag
	curves   map[int]*Curve   // curves, by tag
	surfOrd  []int            // surface tags in listing order
	crvOrd   []int            // curve tags in listing order
	nextSurf int              // next surface tag
	nextCrv  int              // next curve tag

	// state
	fragmented bool // Fragment has been called
	synced     bool // Synchronize has derived the curve entities

	// physical groups: dim => group tag => group
	groups map[int]map[int]*PhysicalGroup
}

// AddDisk adds an elliptical disk surface centred at (xc,yc) with semi-axes
// rx and ry and returns its tag
func (o *Model) AddDisk(xc, yc, rx, ry float64) int {
	assertSession()
	if rx <= 0 || ry <= 0 {
		chk.Panic("disk semi-axes must be positive. rx=%g, ry=%g is incorrect", rx, ry)
	}
	tag := o.nextSurf
	o.nextSurf++
	o.surfaces[tag] = &Surface{Tag: tag, Xc: xc, Yc: yc, Rx: rx, Ry: ry}
	o.surfOrd = append(o.surfOrd, tag)
	o.synced = false
	return tag
}

// Fragment performs the boolean fragmentation of target surfaces by tool
// surfaces. Only the embedded-inclusion case is handled: one target (outer
// disk) and one tool (inner disk) sharing the same centre, with the tool
// strictly inside the target. The tool surface becomes the inclusion and
// the target surface becomes the surrounding annulus (matrix).
//
// The result follows the convention of the upstream CAD kernels: res[0]
// lists the fragments with the innermost one first, i.e. res[0][0] is the
// inclusion surface and res[0][1] the matrix surface.
func (o *Model) Fragment(target, tool []Entity) (res [][]Entity) {
	assertSession()
	if o.fragmented {
		chk.Panic("model %q is fragmented already", o.Name)
	}
	if len(target) != 1 || len(tool) != 1 {
		chk.Panic("fragment needs exactly one target and one tool surface. %d and %d are incorrect", len(target), len(tool))
	}
	if target[0].Dim != 2 || tool[0].Dim != 2 {
		chk.Panic("fragment operates on surfaces (dim=2). target dim=%d, tool dim=%d is incorrect", target[0].Dim, tool[0].Dim)
	}
	outer := o.Surf(target[0].Tag)
	inner := o.Surf(tool[0].Tag)
	if math.Abs(outer.Xc-inner.Xc) > 1e-14 || math.Abs(outer.Yc-inner.Yc) > 1e-14 {
		chk.Panic("fragment: surfaces must share the same centre. (%g,%g) != (%g,%g)", outer.Xc, outer.Yc, inner.Xc, inner.Yc)
	}
	if inner.Rx >= outer.Rx || inner.Ry >= outer.Ry {
		chk.Panic("fragment: tool surface must be strictly inside target surface. inner=(%g,%g), outer=(%g,%g)", inner.Rx, inner.Ry, outer.Rx, outer.Ry)
	}

	// target becomes annulus with inner contour equal to the tool contour
	outer.HoleRx = inner.Rx
	outer.HoleRy = inner.Ry

	o.fragmented = true
	o.synced = false
	return [][]Entity{{{2, inner.Tag}, {2, outer.Tag}}}
}

// Synchronize derives the curve entities (boundary contours) from the
// current surfaces. Shared contours are created once. Curves are listed
// from the outermost contour to the innermost one.
func (o *Model) Synchronize() {
	assertSession()
	if o.synced {
		return
	}

	// reset curves
	o.curves = make(map[int]*Curve)
	o.crvOrd = nil
	o.nextCrv = 1

	// collect contours from the outermost surface inwards
	type contour struct{ xc, yc, rx, ry float64 }
	var cts []contour
	ord := make([]int, len(o.surfOrd))
	copy(ord, o.surfOrd)
	// outermost first: sort by decreasing rx
	for i := 0; i < len(ord); i++ {
		for j := i + 1; j < len(ord); j++ {
			if o.surfaces[ord[j]].Rx > o.surfaces[ord[i]].Rx {
				ord[i], ord[j] = ord[j], ord[i]
			}
		}
	}
	for _, stag := range ord {
		s := o.surfaces[stag]
		cts = append(cts, contour{s.Xc, s.Yc, s.Rx, s.Ry})
		if s.HoleRx > 0 {
			cts = append(cts, contour{s.Xc, s.Yc, s.HoleRx, s.HoleRy})
		}
	}

	// create unique curves
	for _, ct := range cts {
		if o.findCurve(ct.xc, ct.yc, ct.rx, ct.ry) != 0 {
			continue
		}
		tag := o.nextCrv
		o.nextCrv++
		o.curves[tag] = &Curve{Tag: tag, Xc: ct.xc, Yc: ct.yc, Rx: ct.rx, Ry: ct.ry}
		o.crvOrd = append(o.crvOrd, tag)
	}
	o.synced = true
}

// Synced tells whether the model has been synchronized after the last
// topological change
func (o *Model) Synced() bool {
	return o.synced
}

// Entities returns the entities of the given dimension in listing order.
// Curves are only available after Synchronize.
func (o *Model) Entities(dim int) (res []Entity) {
	assertSession()
	switch dim {
	case 1:
		if !o.synced {
			chk.Panic("model %q must be synchronized before curve entities can be listed", o.Name)
		}
		for _, tag := range o.crvOrd {
			res = append(res, Entity{1, tag})
		}
	case 2:
		for _, tag := range o.surfOrd {
			res = append(res, Entity{2, tag})
		}
	default:
		chk.Panic("entities of dimension %d are not available", dim)
	}
	return
}

// Surf returns a surface by tag
func (o *Model) Surf(tag int) *Surface {
	s, ok := o.surfaces[tag]
	if !ok {
		chk.Panic("cannot find surface with tag %d in model %q", tag, o.Name)
	}
	return s
}

// Crv returns a curve by tag
func (o *Model) Crv(tag int) *Curve {
	c, ok := o.curves[tag]
	if !ok {
		chk.Panic("cannot find curve with tag %d in model %q", tag, o.Name)
	}
	return c
}

// findCurve returns the tag of the curve matching the given contour, or 0
func (o *Model) findCurve(xc, yc, rx, ry float64) int {
	for _, tag := range o.crvOrd {
		c := o.curves[tag]
		if math.Abs(c.Xc-xc) < 1e-14 && math.Abs(c.Yc-yc) < 1e-14 &&
			math.Abs(c.Rx-rx) < 1e-14 && math.Abs(c.Ry-ry) < 1e-14 {
			return tag
		}
	}
	return 0
}
