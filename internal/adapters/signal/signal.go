package signal

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/dkeye/Duel/internal/app/orch"
	"github.com/dkeye/Duel/internal/config"
	"github.com/dkeye/Duel/internal/core"
)

var ErrBackpressure = errors.New("backpressure")

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Controller owns the live connection table and pushes every transport
// event through the orchestrator. One instance serves all connections.
type Controller struct {
	Orch *orch.Orchestrator

	cfg      *config.Config
	validate *validator.Validate
	limiter  *ChatRateLimiter

	// evMu extends the router's event serialization over delivery: an
	// event's notifications are enqueued on every receiver before the
	// next event may mutate state, so no connection can observe an
	// older directory or user count after a newer one.
	evMu sync.Mutex

	mu    sync.RWMutex
	conns map[core.SessionID]core.SignalConnection
}

// dispatch runs one event against the router and delivers its effects
// as a single unit.
func (ctl *Controller) dispatch(event func() []core.Effect) {
	ctl.evMu.Lock()
	defer ctl.evMu.Unlock()
	ctl.apply(event())
}

func NewController(o *orch.Orchestrator, cfg *config.Config) *Controller {
	return &Controller{
		Orch:     o,
		cfg:      cfg,
		validate: validator.New(),
		limiter:  NewChatRateLimiter(cfg.ChatRateLimit, cfg.ChatRateInterval),
		conns:    make(map[core.SessionID]core.SignalConnection),
	}
}

type wsConn struct {
	conn *websocket.Conn
	send chan core.Frame

	mu     sync.RWMutex
	closed bool
}

func (c *wsConn) TrySend(f core.Frame) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errors.New("connection closed")
	}
	select {
	case c.send <- f:
	default:
		return ErrBackpressure
	}
	return nil
}

func (c *wsConn) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.send)
	_ = c.conn.Close()
	c.mu.Unlock()
}

// HandleSignal upgrades the request and runs the connection. The session
// handle is minted here, once per connection; it dies with the socket.
func (ctl *Controller) HandleSignal(ctx context.Context, c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error().Err(err).Msg("ws upgrade")
		return
	}

	sid := core.SessionID(uuid.NewString())
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("new WS connection")

	conn := &wsConn{
		conn: ws,
		send: make(chan core.Frame, ctl.cfg.SendBuffer),
	}

	ctl.mu.Lock()
	ctl.conns[sid] = conn
	ctl.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	ctl.dispatch(func() []core.Effect { return ctl.Orch.OnConnect(sid) })

	go ctl.writePump(ctx, conn)
	go ctl.readPump(ctx, cancel, sid, conn)
}

// drop tears down the connection state after the read side ends and
// delivers the disconnect effects to whoever is left.
func (ctl *Controller) drop(sid core.SessionID, conn *wsConn) {
	ctl.mu.Lock()
	delete(ctl.conns, sid)
	ctl.mu.Unlock()
	conn.Close()

	ctl.dispatch(func() []core.Effect { return ctl.Orch.OnDisconnect(sid) })
	ctl.limiter.Forget(sid)
}

// apply delivers the router's effects through the connection table.
func (ctl *Controller) apply(effects []core.Effect) {
	for _, e := range effects {
		switch e.Op {
		case core.SendTo:
			ctl.mu.RLock()
			conn, ok := ctl.conns[e.Target]
			ctl.mu.RUnlock()
			if ok {
				ctl.sendJSON(conn, e.Event, e.Payload)
			}
		case core.BroadcastAll, core.BroadcastExcept:
			ctl.mu.RLock()
			targets := make([]core.SignalConnection, 0, len(ctl.conns))
			for sid, conn := range ctl.conns {
				if e.Op == core.BroadcastExcept && sid == e.Target {
					continue
				}
				targets = append(targets, conn)
			}
			ctl.mu.RUnlock()
			for _, conn := range targets {
				ctl.sendJSON(conn, e.Event, e.Payload)
			}
		}
	}
}
