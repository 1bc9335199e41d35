package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"antwalk/internal/ctxlog"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Updates queued per client before intermediate ones get skipped.
	sendBuffer = 64
)

// Update is one progress report from a running walk.
type Update struct {
	Step    int    `json:"step"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Heading string `json:"heading"`
	Marked  int    `json:"marked"`
	Halted  bool   `json:"halted"`
}

// Monitor pushes walk progress to websocket clients. A new client
// immediately receives the most recent update, then the live stream.
type Monitor struct {
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[chan Update]struct{}
	last Update
	seen bool
}

// NewMonitor returns a Monitor with no clients.
func NewMonitor() *Monitor {
	return &Monitor{subs: make(map[chan Update]struct{})}
}

// Publish fans an update out to all connected clients. Clients that cannot
// keep up miss intermediate updates rather than slowing the run loop.
func (m *Monitor) Publish(u Update) {
	m.mu.Lock()
	m.last = u
	m.seen = true
	for ch := range m.subs {
		select {
		case ch <- u:
		default:
		}
	}
	m.mu.Unlock()
}

func (m *Monitor) subscribe() (chan Update, Update, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ch := make(chan Update, sendBuffer)
	m.subs[ch] = struct{}{}
	return ch, m.last, m.seen
}

func (m *Monitor) unsubscribe(ch chan Update) {
	m.mu.Lock()
	delete(m.subs, ch)
	m.mu.Unlock()
}

// ServeHTTP upgrades the connection and streams updates until the peer goes
// away.
func (m *Monitor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := ctxlog.FromContext(r.Context())
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("monitor upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	ch, last, seen := m.subscribe()
	defer m.unsubscribe(ch)

	remote := conn.RemoteAddr().String()
	log.Info("monitor client connected", "remote", remote)

	if seen {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(last); err != nil {
			return
		}
	}

	// drain the read side so we notice when the peer closes
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case u := <-ch:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(u); err != nil {
				log.Info("monitor client dropped", "remote", remote, "err", err)
				return
			}
		case <-done:
			log.Info("monitor client left", "remote", remote)
			return
		}
	}
}
