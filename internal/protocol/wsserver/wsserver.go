//
// chessengine - a Go chess engine core
//
// MIT License
//
// Copyright (c) 2026 chessengine contributors
//

// Package wsserver tunnels the line protocol of internal/protocol over a
// websocket connection, for driving the engine from a browser-based
// board instead of stdio. It is a transport only; game logic is
// untouched.
package wsserver

import (
	"io"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/ggeorgochess/chessengine/internal/logging"
	"github.com/ggeorgochess/chessengine/internal/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler upgrades an HTTP connection to a websocket and runs one Engine
// per connection, reading commands as text frames and writing protocol
// output back the same way.
func Handler(ttSizeMB, pawnTTSizeMB int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logging.Engine.Errorf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		pr, pw := io.Pipe()
		out := &wsWriter{conn: conn}
		engine := protocol.New(out, ttSizeMB, pawnTTSizeMB)

		go func() {
			defer pw.Close()
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				if _, err := pw.Write(append(data, '\n')); err != nil {
					return
				}
			}
		}()

		engine.Run(pr)
	}
}

// wsWriter adapts a websocket connection to io.Writer so protocol.Engine
// can write its line-oriented output without knowing about frames.
type wsWriter struct {
	conn *websocket.Conn
}

func (w *wsWriter) Write(p []byte) (int, error) {
	if err := w.conn.WriteMessage(websocket.TextMessage, p); err != nil {
		return 0, err
	}
	return len(p), nil
}
