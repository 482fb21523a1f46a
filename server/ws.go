// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cogentcore.org/demos3d/base/errors"
	"cogentcore.org/demos3d/meshio"
	"cogentcore.org/demos3d/scene"
	"github.com/gorilla/websocket"
)

const (
	// writeWait is the time allowed to write one message.
	writeWait = 10 * time.Second

	// pingPeriod is how often idle connections are pinged.
	pingPeriod = 30 * time.Second
)

// Message types sent to WebSocket clients.
const (
	MessageMesh   = "mesh"
	MessageDelete = "delete"
	MessageError  = "error"
)

// Request types received from WebSocket clients.
const (
	RequestParams = "params"
	RequestReset  = "reset"
)

// Message is a message sent to WebSocket clients.
type Message struct {
	Type    string `json:"type"`
	Version uint64 `json:"version,omitempty"`
	Name    string `json:"name,omitempty"`

	// Surface is set for the superellipsoid surface mesh
	Surface *Surface `json:"surface,omitempty"`

	Geometry *meshio.BufferGeometry `json:"geometry,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// Request is a message received from WebSocket clients. A params
// request also holds any [Surface] fields to change, at the top level:
//
//	{"type": "params", "A": 1.5, "n": 0.5}
type Request struct {
	Type string `json:"type"`
}

func updateMessage(up scene.Update) Message {
	if up.Geometry == nil {
		return Message{Type: MessageDelete, Version: up.Version, Name: up.Name}
	}
	msg := Message{Type: MessageMesh, Version: up.Version, Name: up.Name, Geometry: meshio.NewBufferGeometry(up.Geometry)}
	if up.Name == scene.SurfaceName {
		msg.Surface = &Surface{up.Params, up.Grid}
	}
	return msg
}

// handleWS sends all current meshes, and then each change, to the
// client, and applies the requests it sends.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	defer conn.Close()
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	slog.Info("preview client connected", "remote", r.RemoteAddr)

	// subscribe first, so no change after the initial meshes is missed
	ups, unsub := s.Scene.Subscribe(8)
	defer unsub()
	replies := make(chan Message, 4)
	go s.readWS(ctx, cancel, conn, replies)

	send := func(msg Message) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			slog.Debug("preview client write failed", "remote", r.RemoteAddr, "err", err)
			return false
		}
		return true
	}
	p, g, v := s.Scene.State()
	for _, name := range s.Scene.MeshList() {
		geom, ok := s.Scene.Mesh(name)
		if !ok {
			continue
		}
		if !send(updateMessage(scene.Update{Version: v, Name: name, Params: p, Grid: g, Geometry: geom})) {
			return
		}
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			slog.Info("preview client disconnected", "remote", r.RemoteAddr)
			return
		case up, ok := <-ups:
			if !ok || !send(updateMessage(up)) {
				return
			}
		case msg := <-replies:
			if !send(msg) {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readWS reads client requests until the connection fails, then cancels ctx.
func (s *Server) readWS(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, replies chan<- Message) {
	defer cancel()
	conn.SetReadLimit(maxBody)
	for {
		typ, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if typ != websocket.TextMessage {
			continue
		}
		if err := s.handleRequest(data); err != nil {
			select {
			case replies <- Message{Type: MessageError, Error: err.Error()}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// handleRequest applies one client request. Successful changes are
// seen by the client as scene updates.
func (s *Server) handleRequest(data []byte) error {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("invalid request JSON: %w", err)
	}
	switch req.Type {
	case RequestReset:
		s.Scene.Reset()
		return nil
	case RequestParams:
		sf := s.current()
		if err := json.Unmarshal(data, &sf); err != nil {
			return fmt.Errorf("invalid surface JSON: %w", err)
		}
		if err := s.checkSurface(sf); err != nil {
			return err
		}
		return s.Scene.SetSurface(sf.SuperParams, sf.Grid)
	}
	return fmt.Errorf("unknown request type %q", req.Type)
}
