// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"

	"github.com/msolides-2022/compomesh/msh"
)

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key; e.g. "ux", "uy"
	Eq  int    // equation number
}

// String returns the string representation of this Dof
func (o *Dof) String() string {
	return io.Sf("{%q:%d}", o.Key, o.Eq)
}

// Node holds a pointer to a mesh vertex and the number of the equation
// associated with each of its degrees-of-freedom
type Node struct {
	Dofs []*Dof    // degrees-of-freedom == solution variables
	Vert *msh.Vert // pointer to mesh vertex
}

// NewNode allocates a new node
func NewNode(v *msh.Vert) *Node {
	return &Node{Vert: v}
}

// AddDofAndEq adds a new Dof to the node and returns the next equation number.
// Nothing is added if the Dof exists already.
func (o *Node) AddDofAndEq(key string, eq int) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return eq
		}
	}
	o.Dofs = append(o.Dofs, &Dof{key, eq})
	return eq + 1
}

// GetDof returns the Dof with given key
//  Note: returns nil if not found
func (o *Node) GetDof(key string) *Dof {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof
		}
	}
	return nil
}

// GetEq returns the equation number of the Dof with given key
//  Note: returns -1 if not found
func (o *Node) GetEq(key string) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof.Eq
		}
	}
	return -1
}

// String returns the string representation of this node
func (o *Node) String() string {
	return io.Sf("{v:%d x:%v dofs:%v}", o.Vert.Id, o.Vert.C, o.Dofs)
}
