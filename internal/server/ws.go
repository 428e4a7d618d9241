package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"Nightfall/internal/game"
)

/* ----------------------------- Networking ---------------------------- */

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsMsg struct {
	Type string `json:"type"`
	// click
	X float64 `json:"x,omitempty"`
	Y float64 `json:"y,omitempty"`
	// choice
	Index int `json:"index,omitempty"`
}

type liveConn struct {
	conn     *websocket.Conn
	sendTick *time.Ticker
}

func serveWS(h *game.Hub, w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	lc := &liveConn{
		conn:     conn,
		sendTick: time.NewTicker(time.Duration(1000.0/game.UpdateRateHz) * time.Millisecond),
	}

	sess := h.GetSession(sessionID)
	sess.Mu.Lock()
	sess.Conns++
	sess.Mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reader
	go func() {
		defer cancel()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var m wsMsg
			if err := json.Unmarshal(data, &m); err != nil {
				continue
			}
			switch m.Type {
			case "click":
				sess.Mu.Lock()
				sess.Seq.Click(&game.Point{X: m.X, Y: m.Y})
				sess.Mu.Unlock()
			case "advance":
				sess.Mu.Lock()
				sess.Seq.Click(nil)
				sess.Mu.Unlock()
			case "choice":
				sess.Mu.Lock()
				sess.Seq.SelectChoice(m.Index)
				sess.Mu.Unlock()
			case "voice_done":
				sess.Mu.Lock()
				sess.Seq.VoiceDone()
				sess.Mu.Unlock()
			}
		}
	}()

	// Writer
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-lc.sendTick.C:
				sess.Mu.Lock()
				msg := buildStateMsg(sess)
				sess.Mu.Unlock()
				_ = conn.WriteJSON(msg)
			}
		}
	}()

	// Cleanup
	<-ctx.Done()
	lc.sendTick.Stop()
	conn.Close()
	sess.Mu.Lock()
	sess.Conns--
	if sess.Conns <= 0 {
		sess.Conns = 0
		sess.IdleSince = sess.Now
	}
	sess.Mu.Unlock()
}
