// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server provides the live preview server, which serves the
// meshes of a [scene.Scene] over HTTP and streams each change of the
// scene to WebSocket clients, which can also change the surface.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cogentcore.org/demos3d/preview"
	"cogentcore.org/demos3d/scene"
	"cogentcore.org/demos3d/shape"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout is how long Serve waits for open requests on shutdown.
var ShutdownTimeout = 5 * time.Second

// ErrTooLarge is returned for a grid above the step limit of the server.
var ErrTooLarge = errors.New("server: grid too large")

// Server serves a [scene.Scene]. Routes:
//
//	GET  /mesh     the surface, or the mesh given by name, in a format
//	GET  /meshes   the names of the meshes
//	GET  /params   the surface parameters and grid
//	POST /params   update the surface parameters and grid
//	POST /reset    restore the default surface
//	GET  /ws       WebSocket stream of mesh updates
type Server struct {

	// Scene is the scene being served
	Scene *scene.Scene

	// MaxSteps is the largest accepted grid step count
	MaxSteps int

	// Preview are the options for png mesh requests
	Preview preview.Options

	upgrader websocket.Upgrader
}

// New returns a new Server for the given scene.
func New(sc *scene.Scene, maxSteps int) *Server {
	s := &Server{Scene: sc, MaxSteps: maxSteps, Preview: preview.DefaultOptions()}
	// the preview is served to local pages of any origin
	s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	return s
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /mesh", s.handleMesh)
	mux.HandleFunc("GET /meshes", s.handleMeshes)
	mux.HandleFunc("GET /params", s.handleGetParams)
	mux.HandleFunc("POST /params", s.handleSetParams)
	mux.HandleFunc("POST /reset", s.handleReset)
	mux.HandleFunc("GET /ws", s.handleWS)
	return logRequests(mux)
}

// ListenAndServe listens on the given address and calls [Server.Serve].
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on the given listener until ctx is done, then shuts
// down, waiting up to [ShutdownTimeout] for open requests. WebSocket
// connections are closed when ctx is done.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	slog.Info("preview server listening", "addr", ln.Addr().String())
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := hs.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return hs.Shutdown(sctx)
	})
	err := g.Wait()
	slog.Info("preview server stopped", "addr", ln.Addr().String())
	return err
}

// Surface is the surface parameters and grid, as exchanged in JSON.
type Surface struct {
	shape.SuperParams
	shape.Grid
}

// checkSurface validates surface values received from a client.
func (s *Server) checkSurface(sf Surface) error {
	if err := sf.SuperParams.Validate(); err != nil {
		return err
	}
	if err := sf.Grid.Validate(); err != nil {
		return err
	}
	if s.MaxSteps > 0 && (sf.PhiSteps > s.MaxSteps || sf.ThetaSteps > s.MaxSteps) {
		return fmt.Errorf("%dx%d above %d: %w", sf.PhiSteps, sf.ThetaSteps, s.MaxSteps, ErrTooLarge)
	}
	return nil
}

// current returns the current surface of the scene.
func (s *Server) current() Surface {
	p, g := s.Scene.Params()
	return Surface{p, g}
}

// State is the reply to parameter requests.
type State struct {
	Version uint64  `json:"version"`
	Surface Surface `json:"surface"`
}

func (s *Server) state() State {
	p, g, v := s.Scene.State()
	return State{Version: v, Surface: Surface{p, g}}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// Hijack passes through to the wrapped writer, for the WebSocket upgrade.
func (sw *statusWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return http.NewResponseController(sw.ResponseWriter).Hijack()
}

func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// logRequests logs each request at debug level.
func logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		st := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(sw, r)
		slog.Debug("request", "method", r.Method, "path", r.URL.Path, "status", sw.status, "dur", time.Since(st))
	})
}
