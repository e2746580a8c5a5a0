// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/msolides-2022/compomesh/geo"

	"github.com/cpmech/gosl/chk"
)

// Control holds mesh generation parameters
type Control struct {
	ClMin   float64 `json:"clmin"`   // minimum characteristic length
	ClMax   float64 `json:"clmax"`   // maximum characteristic length
	Order   int     `json:"order"`   // element order: 1 => tri3, 2 => tri6
	MinDivs int     `json:"mindivs"` // minimum angular divisions per contour
}

// SetDefault sets default values
func (o *Control) SetDefault() {
	o.Order = 1
	o.MinDivs = 8
}

// Validate checks the control parameters
func (o *Control) Validate() error {
	if o.ClMin <= 0 || o.ClMax <= 0 {
		return chk.Err("characteristic lengths must be positive. clmin=%g, clmax=%g is incorrect", o.ClMin, o.ClMax)
	}
	if o.ClMin > o.ClMax {
		return chk.Err("clmin must not exceed clmax. %g > %g is incorrect", o.ClMin, o.ClMax)
	}
	if o.Order != 1 && o.Order != 2 {
		return chk.Err("mesh order must be 1 or 2. %d is incorrect", o.Order)
	}
	if o.MinDivs < 3 {
		return chk.Err("mindivs must be at least 3. %d is incorrect", o.MinDivs)
	}
	return nil
}

// generator builds the mesh of one model
type generator struct {
	m        *Mesh      // mesh being built
	cl       float64    // working characteristic length
	mindivs  int        // minimum angular divisions
	contours []*contour // tagged boundary contours
}

// contour binds a ring of boundary vertices to a facet tag
type contour struct {
	ring *ring        // vertices on the contour
	ftag int          // facet tag
	set  map[int]bool // vertex ids on the contour
}

// newContour creates a tagged contour
func newContour(r *ring, ftag int) *contour {
	return &contour{ring: r, ftag: ftag, set: r.vertSet()}
}

// Generate triangulates the synchronized model using the physical groups
// for cell and facet tags and returns the mesh
func Generate(mdl *geo.Model, ctl *Control) (*Mesh, error) {

	// check input
	if err := ctl.Validate(); err != nil {
		return nil, err
	}
	if !mdl.Synced() {
		return nil, chk.Err("model %q must be synchronized before meshing", mdl.Name)
	}

	// identify inclusion (plain disk) and matrix (annulus) surfaces
	surfs := mdl.Entities(2)
	if len(surfs) != 2 {
		return nil, chk.Err("model %q must have exactly 2 surfaces. %d is incorrect", mdl.Name, len(surfs))
	}
	var inc, mat *geo.Surface
	for _, e := range surfs {
		s := mdl.Surf(e.Tag)
		if s.HoleRx > 0 {
			mat = s
		} else {
			inc = s
		}
	}
	if inc == nil || mat == nil {
		return nil, chk.Err("model %q must have one plain surface and one annular surface; run Fragment first", mdl.Name)
	}

	// cell tags from physical groups
	gInc := mdl.GroupOfEntity(2, inc.Tag)
	gMat := mdl.GroupOfEntity(2, mat.Tag)
	if gInc == nil || gMat == nil {
		return nil, chk.Err("both surfaces of model %q must belong to physical groups", mdl.Name)
	}

	// facet tags from physical groups over the contours
	var innerFtag, outerFtag int
	for _, e := range mdl.Entities(1) {
		c := mdl.Crv(e.Tag)
		g := mdl.GroupOfEntity(1, e.Tag)
		if g == nil {
			return nil, chk.Err("curve %d of model %q belongs to no physical group", e.Tag, mdl.Name)
		}
		if math.Abs(c.Rx-inc.Rx) < 1e-14 && math.Abs(c.Ry-inc.Ry) < 1e-14 {
			innerFtag = g.Tag
		} else {
			outerFtag = g.Tag
		}
	}
	if innerFtag == 0 || outerFtag == 0 {
		return nil, chk.Err("model %q must have physical groups on both boundary contours", mdl.Name)
	}

	// generator
	o := &generator{
		m:       new(Mesh),
		cl:      (ctl.ClMin + ctl.ClMax) / 2.0,
		mindivs: ctl.MinDivs,
	}

	// inclusion: centre + rings up to the interface
	iface := o.genDisk(inc, gInc.Tag)
	o.contours = append(o.contours, newContour(iface, innerFtag))

	// matrix: rings from the interface (shared) to the outer boundary
	outerRing := o.genAnnulus(mat, gMat.Tag, iface)
	o.contours = append(o.contours, newContour(outerRing, outerFtag))

	// facet tags on boundary edges
	o.applyFtags()

	// second order
	if ctl.Order == 2 {
		o.elevate()
	}

	// derived data
	if err := o.m.CalcDerived(0); err != nil {
		return nil, err
	}
	return o.m, nil
}

// genDisk meshes a plain elliptical disk and returns its boundary ring
func (o *generator) genDisk(s *geo.Surface, ctag int) *ring {

	// radial layers
	rmin := math.Min(s.Rx, s.Ry)
	nl := int(math.Round(rmin / o.cl))
	if nl < 1 {
		nl = 1
	}

	// centre and rings
	centre := o.addVert(s.Xc, s.Yc)
	var prev *ring
	for k := 1; k <= nl; k++ {
		t := float64(k) / float64(nl)
		rx, ry := s.Rx*t, s.Ry*t
		n := divisions(rx, ry, o.cl, o.mindivs)
		cur := o.addRing(s.Xc, s.Yc, rx, ry, n)
		if k == 1 {
			o.fan(centre, cur, ctag)
		} else {
			o.zip(prev, cur, ctag)
		}
		prev = cur
	}
	return prev
}

// genAnnulus meshes an annular surface, reusing the given inner ring so
// the mesh stays conforming across the interface, and returns the outer
// boundary ring
func (o *generator) genAnnulus(s *geo.Surface, ctag int, inner *ring) *ring {

	// radial layers
	dr := ((s.Rx - s.HoleRx) + (s.Ry - s.HoleRy)) / 2.0
	nl := int(math.Round(dr / o.cl))
	if nl < 1 {
		nl = 1
	}

	// rings
	prev := inner
	for k := 1; k <= nl; k++ {
		t := float64(k) / float64(nl)
		rx := s.HoleRx + (s.Rx-s.HoleRx)*t
		ry := s.HoleRy + (s.Ry-s.HoleRy)*t
		n := divisions(rx, ry, o.cl, o.mindivs)
		cur := o.addRing(s.Xc, s.Yc, rx, ry, n)
		o.zip(prev, cur, ctag)
		prev = cur
	}
	return prev
}

// applyFtags tags the cell edges lying on the tagged contours. The
// interface contour is shared by inclusion and matrix cells, so the tag
// lands on both sides.
func (o *generator) applyFtags() {
	edgeLocal := [][]int{{0, 1}, {1, 2}, {2, 0}}
	for _, ct := range o.contours {
		for _, c := range o.m.Cells {
			for fid, lv := range edgeLocal {
				if ct.set[c.Verts[lv[0]]] && ct.set[c.Verts[lv[1]]] {
					c.FTags[fid] = ct.ftag
				}
			}
		}
	}
}

// elevate converts all tri3 cells to tri6 by inserting midside vertices.
// Midside vertices are shared between neighbouring cells and, on tagged
// contours, projected onto the exact elliptical boundary.
func (o *generator) elevate() {
	type edgeKey struct{ a, b int }
	mids := make(map[edgeKey]int)
	edgeLocal := [][]int{{0, 1}, {1, 2}, {2, 0}}
	for _, c := range o.m.Cells {
		newVerts := make([]int, 3)
		for e, lv := range edgeLocal {
			a, b := c.Verts[lv[0]], c.Verts[lv[1]]
			key := edgeKey{a, b}
			if b < a {
				key = edgeKey{b, a}
			}
			mid, ok := mids[key]
			if !ok {
				ca, cb := o.m.Verts[a].C, o.m.Verts[b].C
				x, y := (ca[0]+cb[0])/2.0, (ca[1]+cb[1])/2.0
				if ct := o.contourOf(a, b); ct != nil {
					x, y = ct.ring.project(x, y)
				}
				mid = o.addVert(x, y)
				mids[key] = mid
			}
			newVerts[e] = mid
		}
		c.Type = "tri6"
		c.Verts = append(c.Verts, newVerts...)
	}
}

// contourOf returns the tagged contour containing both vertices, or nil
func (o *generator) contourOf(a, b int) *contour {
	for _, ct := range o.contours {
		if ct.set[a] && ct.set[b] {
			return ct
		}
	}
	return nil
}
