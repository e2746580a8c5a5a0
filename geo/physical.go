// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geo

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// PhysicalGroup is a named/tagged subset of entities of one dimension.
// Groups over surfaces select cell regions; groups over curves select
// boundary facets.
type PhysicalGroup struct {
	Dim   int    // dimension of entities
	Tag   int    // group tag
	Name  string // group name; set via SetPhysicalName
	Etags []int  // tags of member entities
}

// AddPhysicalGroup creates a physical group of dimension dim collecting the
// entities with the given tags
func (o *Model) AddPhysicalGroup(dim int, etags []int, tag int) {
	assertSession()
	if len(etags) < 1 {
		chk.Panic("physical group %d must contain at least one entity", tag)
	}
	for _, etag := range etags {
		switch dim {
		case 1:
			o.Crv(etag) // panics if absent
		case 2:
			o.Surf(etag)
		default:
			chk.Panic("physical groups of dimension %d are not available", dim)
		}
	}
	if o.groups[dim] == nil {
		o.groups[dim] = make(map[int]*PhysicalGroup)
	}
	if _, ok := o.groups[dim][tag]; ok {
		chk.Panic("physical group with dim=%d and tag=%d exists already", dim, tag)
	}
	o.groups[dim][tag] = &PhysicalGroup{Dim: dim, Tag: tag, Etags: etags}
}

// SetPhysicalName sets the name of the physical group with the given
// dimension and tag
func (o *Model) SetPhysicalName(dim, tag int, name string) {
	assertSession()
	g, ok := o.groups[dim][tag]
	if !ok {
		chk.Panic("cannot find physical group with dim=%d and tag=%d", dim, tag)
	}
	g.Name = name
}

// PhysicalGroups returns the groups of one dimension sorted by tag
func (o *Model) PhysicalGroups(dim int) (res []*PhysicalGroup) {
	assertSession()
	for _, g := range o.groups[dim] {
		res = append(res, g)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Tag < res[j].Tag })
	return
}

// GroupByName returns the group of one dimension with the given name.
//  Note: returns nil if not found
func (o *Model) GroupByName(dim int, name string) *PhysicalGroup {
	for _, g := range o.groups[dim] {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// GroupOfEntity returns the group containing the entity with the given
// dimension and tag.
//  Note: returns nil if the entity belongs to no group
func (o *Model) GroupOfEntity(dim, etag int) *PhysicalGroup {
	for _, g := range o.groups[dim] {
		for _, t := range g.Etags {
			if t == etag {
				return g
			}
		}
	}
	return nil
}
