// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"cogentcore.org/demos3d/base/websocket"
	"cogentcore.org/demos3d/config"
	"cogentcore.org/demos3d/server"
)

// pushRequest is a params request with the full surface.
type pushRequest struct {
	server.Request
	server.Surface
}

// Push sends the configured surface to the preview server at
// Server.Addr and waits until the server shows it.
func Push(ctx context.Context, c *config.Config) error {
	// ends the message callback once Push returns
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	url := "ws://" + c.Server.Addr + "/ws"
	cl, err := websocket.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("push: %w", err)
	}
	defer cl.Close()

	msgs := make(chan server.Message, 8)
	cl.OnMessage(func(typ websocket.MessageTypes, data []byte) {
		var msg server.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid server message", "err", err)
			return
		}
		select {
		case msgs <- msg:
		case <-ctx.Done():
		}
	})
	closed := make(chan struct{})
	cl.OnClose(func() { close(closed) })

	req := pushRequest{server.Request{Type: server.RequestParams}, server.Surface{SuperParams: c.Shape, Grid: c.Grid}}
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	if err := cl.Send(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-closed:
			return fmt.Errorf("push: connection to %s closed", url)
		case msg := <-msgs:
			switch {
			case msg.Type == server.MessageError:
				return fmt.Errorf("push: server: %s", msg.Error)
			case msg.Surface != nil && msg.Surface.SuperParams == c.Shape && msg.Surface.Grid == c.Grid:
				slog.Info("pushed surface", "addr", c.Server.Addr, "version", msg.Version, "params", c.Shape.String())
				return nil
			}
		}
	}
}
