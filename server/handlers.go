// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"cogentcore.org/demos3d/meshio"
	"cogentcore.org/demos3d/preview"
	"cogentcore.org/demos3d/shape"
)

// maxBody is the largest accepted request body.
const maxBody = 1 << 16

// surfaceKeys are the query keys of [Surface] fields.
var surfaceKeys = []string{"A", "B", "C", "n", "m", "phiSteps", "thetaSteps", "cleanSeam"}

// applyQuery sets the surface fields given in the query.
func applyQuery(q url.Values, sf *Surface) error {
	floats := map[string]*float64{"A": &sf.A, "B": &sf.B, "C": &sf.C, "n": &sf.N, "m": &sf.M}
	for k, fp := range floats {
		if !q.Has(k) {
			continue
		}
		v, err := strconv.ParseFloat(q.Get(k), 64)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*fp = v
	}
	ints := map[string]*int{"phiSteps": &sf.PhiSteps, "thetaSteps": &sf.ThetaSteps}
	for k, ip := range ints {
		if !q.Has(k) {
			continue
		}
		v, err := strconv.Atoi(q.Get(k))
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*ip = v
	}
	if q.Has("cleanSeam") {
		v, err := strconv.ParseBool(q.Get("cleanSeam"))
		if err != nil {
			return fmt.Errorf("cleanSeam: %w", err)
		}
		sf.CleanSeam = v
	}
	return nil
}

func hasSurfaceQuery(q url.Values) bool {
	for _, k := range surfaceKeys {
		if q.Has(k) {
			return true
		}
	}
	return false
}

// handleMesh writes a mesh: the scene mesh given by name, a new
// surface for any surface values in the query (leaving the scene
// unchanged), or else the current surface.
func (s *Server) handleMesh(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fname := q.Get("format")
	if fname == "" {
		fname = "json"
	}
	var g *shape.Geometry
	switch {
	case q.Has("name"):
		var err error
		g, err = s.Scene.MeshByNameTry(q.Get("name"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
	case hasSurfaceQuery(q):
		sf := s.current()
		if err := applyQuery(q, &sf); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.checkSurface(sf); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		g = shape.Generate(sf.SuperParams, sf.Grid)
	default:
		g = s.Scene.Surface()
	}

	if fname == "png" {
		w.Header().Set("Content-Type", "image/png")
		logWriteError(preview.WritePNG(w, g, s.Preview))
		return
	}
	f, err := meshio.ParseFormat(fname)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", f.ContentType())
	if f != meshio.JSON {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", g.Name+f.Ext()))
	}
	logWriteError(meshio.Write(w, f, g))
}

func (s *Server) handleMeshes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Scene.MeshList())
}

func (s *Server) handleGetParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.state())
}

// handleSetParams updates the surface from a JSON [Surface] body.
// Fields missing from the body keep their current values.
func (s *Server) handleSetParams(w http.ResponseWriter, r *http.Request) {
	sf := s.current()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&sf); err != nil {
		http.Error(w, "invalid surface JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.checkSurface(sf); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.Scene.SetSurface(sf.SuperParams, sf.Grid); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, s.state())
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.Scene.Reset()
	writeJSON(w, s.state())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	logWriteError(json.NewEncoder(w).Encode(v))
}

// logWriteError logs an error writing a response, which can only
// happen once the status has been sent.
func logWriteError(err error) {
	if err != nil {
		slog.Warn("error writing response", "err", err)
	}
}
