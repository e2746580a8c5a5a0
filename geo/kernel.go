// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geo implements a small 2D geometry kernel with elliptical disk
// primitives, boolean fragmentation and physical groups
package geo

import (
	"github.com/cpmech/gosl/chk"
)

// kernel session state
var (
	initialised bool              // session is active
	models      map[string]*Model // all models in this session
	current     *Model            // current model
)

// Initialize starts a geometry kernel session. Models can only be created
// and operated upon between Initialize and Finalize.
func Initialize() {
	if initialised {
		chk.Panic("geometry kernel is already initialised")
	}
	initialised = true
	models = make(map[string]*Model)
	current = nil
}

// Finalize terminates the session and clears all models
func Finalize() {
	if !initialised {
		chk.Panic("geometry kernel is not initialised")
	}
	initialised = false
	models = nil
	current = nil
}

// IsOn tells whether a session is active
func IsOn() bool {
	return initialised
}

// NewModel creates a new named model and makes it the current one
func NewModel(name string) *Model {
	assertSession()
	if _, ok := models[name]; ok {
		chk.Panic("model named %q exists already", name)
	}
	m := &Model{
		Name:     name,
		surfaces: make(map[int]*Surface),
		curves:   make(map[int]*Curve),
		groups:   make(map[int]map[int]*PhysicalGroup),
		nextSurf: 1,
		nextCrv:  1,
	}
	models[name] = m
	current = m
	return m
}

// SetCurrent switches the current model
func SetCurrent(name string) *Model {
	assertSession()
	m, ok := models[name]
	if !ok {
		chk.Panic("cannot find model named %q", name)
	}
	current = m
	return m
}

// Current returns the current model
func Current() *Model {
	assertSession()
	if current == nil {
		chk.Panic("there is no current model; call NewModel first")
	}
	return current
}

// assertSession panics if the kernel session is not active
func assertSession() {
	if !initialised {
		chk.Panic("geometry kernel is not initialised; call geo.Initialize first")
	}
}
