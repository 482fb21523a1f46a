// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the Scene, which owns the meshes currently
// on display and replaces them as a whole when their parameters change.
package scene

import (
	"fmt"
	"log/slog"
	"sync"

	"cogentcore.org/demos3d/base/ordmap"
	"cogentcore.org/demos3d/shape"
)

// SurfaceName is the mesh name of the superellipsoid surface.
const SurfaceName = "superellipsoid"

// generate builds surface meshes; tests replace it to hold a build open.
var generate = shape.Generate

// Update describes one change of the scene. Geometry is the mesh that
// changed, or nil if it was deleted.
type Update struct {
	Version  uint64
	Name     string
	Params   shape.SuperParams
	Grid     shape.Grid
	Geometry *shape.Geometry
}

// Scene holds the named meshes currently on display, including the
// superellipsoid surface, which is regenerated from its parameters.
// Meshes are never modified in place: each change builds a new mesh
// and then swaps it in, so a mesh obtained from the Scene stays valid
// and unchanged. It is safe for concurrent use.
type Scene struct {
	// build serializes surface changes without blocking readers, so each
	// change starts from the state the previous one committed.
	build sync.Mutex

	mu      sync.RWMutex
	params  shape.SuperParams
	grid    shape.Grid
	version uint64

	// meshes in the order added, the surface first
	meshes *ordmap.Map[string, *shape.Geometry]

	subs   map[int]chan Update
	nextID int
}

// New returns a new Scene showing the surface for the given
// parameters and grid.
func New(params shape.SuperParams, grid shape.Grid) (*Scene, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	sc := &Scene{meshes: ordmap.New[string, *shape.Geometry](), subs: map[int]chan Update{}}
	sc.params = params
	sc.grid = grid
	sc.meshes.Add(SurfaceName, generate(params, grid))
	return sc, nil
}

// NewDefault returns a new Scene with the default parameters and grid.
func NewDefault() *Scene {
	sc, _ := New(shape.DefaultParams(), shape.DefaultGrid())
	return sc
}

// Params returns the current surface parameters and grid.
func (sc *Scene) Params() (shape.SuperParams, shape.Grid) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.params, sc.grid
}

// State returns the current surface parameters, grid and version together.
func (sc *Scene) State() (shape.SuperParams, shape.Grid, uint64) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.params, sc.grid, sc.version
}

// Version returns the number of changes made to the scene.
func (sc *Scene) Version() uint64 {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.version
}

// Surface returns the current superellipsoid surface mesh.
func (sc *Scene) Surface() *shape.Geometry {
	g, _ := sc.Mesh(SurfaceName)
	return g
}

// SetParams regenerates the surface for the given parameters on the
// current grid.
func (sc *Scene) SetParams(params shape.SuperParams) {
	sc.build.Lock()
	defer sc.build.Unlock()
	sc.mu.RLock()
	grid := sc.grid
	sc.mu.RUnlock()
	sc.swapSurface(params, grid)
}

// SetSurface regenerates the surface for the given parameters and grid.
func (sc *Scene) SetSurface(params shape.SuperParams, grid shape.Grid) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	sc.setSurface(params, grid)
	return nil
}

// Reset restores the default surface parameters and grid.
func (sc *Scene) Reset() {
	sc.setSurface(shape.DefaultParams(), shape.DefaultGrid())
}

func (sc *Scene) setSurface(params shape.SuperParams, grid shape.Grid) {
	sc.build.Lock()
	defer sc.build.Unlock()
	sc.swapSurface(params, grid)
}

// swapSurface builds the new surface outside of the read lock and then
// swaps it in. It must be called with the build lock held.
func (sc *Scene) swapSurface(params shape.SuperParams, grid shape.Grid) {
	g := generate(params, grid)
	sc.mu.Lock()
	sc.params = params
	sc.grid = grid
	sc.meshes.Add(SurfaceName, g)
	up := sc.commit(SurfaceName, g)
	sc.mu.Unlock()
	slog.Debug("scene surface updated", "version", up.Version, "params", params.String(), "vertices", g.NumVertex())
}

// SetMesh sets or replaces the mesh of the given name.
func (sc *Scene) SetMesh(name string, g *shape.Geometry) {
	sc.mu.Lock()
	sc.meshes.Add(name, g)
	sc.commit(name, g)
	sc.mu.Unlock()
}

// DeleteMesh removes the mesh of the given name, returning false if
// there is no such mesh. The surface cannot be deleted.
func (sc *Scene) DeleteMesh(name string) bool {
	if name == SurfaceName {
		return false
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if !sc.meshes.DeleteKey(name) {
		return false
	}
	sc.commit(name, nil)
	return true
}

// Mesh returns the mesh of the given name.
func (sc *Scene) Mesh(name string) (*shape.Geometry, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.meshes.ValueByKeyTry(name)
}

// MeshByNameTry returns the mesh of the given name, or an error if not found.
func (sc *Scene) MeshByNameTry(name string) (*shape.Geometry, error) {
	g, ok := sc.Mesh(name)
	if !ok {
		return nil, fmt.Errorf("scene: mesh %q not found", name)
	}
	return g, nil
}

// MeshList returns the names of the meshes, in the order added.
func (sc *Scene) MeshList() []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.meshes.Keys()
}

// Subscribe returns a channel receiving each subsequent [Update], and a
// function that ends the subscription and closes the channel.
// Delivery never blocks the scene: a subscriber that falls behind loses
// its oldest pending update. buf must be at least 1.
func (sc *Scene) Subscribe(buf int) (<-chan Update, func()) {
	ch := make(chan Update, max(buf, 1))
	sc.mu.Lock()
	id := sc.nextID
	sc.nextID++
	sc.subs[id] = ch
	sc.mu.Unlock()
	var once sync.Once
	return ch, func() {
		once.Do(func() {
			sc.mu.Lock()
			delete(sc.subs, id)
			sc.mu.Unlock()
			close(ch)
		})
	}
}

// commit bumps the version and notifies subscribers. It must be called
// with the lock held.
func (sc *Scene) commit(name string, g *shape.Geometry) Update {
	sc.version++
	up := Update{Version: sc.version, Name: name, Params: sc.params, Grid: sc.grid, Geometry: g}
	for _, ch := range sc.subs {
		select {
		case ch <- up:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- up:
		default:
		}
	}
	return up
}
