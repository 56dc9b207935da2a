package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/cosmo-mac/cosmos-dungeon/internal/engine"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/api"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

// Websocket tuning.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client bridges one websocket connection and one private game session.
// The session is touched only from readPump, which keeps the engine's
// single-threaded ownership contract intact.
type Client struct {
	conn    *websocket.Conn
	session *engine.Session
	send    chan *api.Snapshot
	log     *logrus.Entry
}

func NewClient(conn *websocket.Conn, session *engine.Session) *Client {
	return &Client{
		conn:    conn,
		session: session,
		send:    make(chan *api.Snapshot, 16),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "ws_client",
			"session":   session.ID.String()[:8],
			"remote":    conn.RemoteAddr().String(),
		}),
	}
}

// readPump reads intents, applies them to the session, and queues the
// resulting snapshots. It owns the session and the send channel.
func (c *Client) readPump(onClose func()) {
	defer func() {
		close(c.send)
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("close after readPump")
		}
		onClose()
		c.log.Info("Client disconnected")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// First frame out is the title screen.
	c.send <- c.session.Snapshot()

	for {
		var in api.Intent
		if err := c.conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("read failed")
			}
			return
		}

		snap := c.session.Apply(in)
		c.send <- snap
		if snap.Done {
			return
		}
	}
}

// writePump delivers snapshots and keeps the connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("close after writePump")
		}
	}()

	for {
		select {
		case snap, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(snap); err != nil {
				c.log.WithError(err).Debug("write snapshot failed")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
