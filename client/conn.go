package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ajstarna/poker-client/config"
	"github.com/ajstarna/poker-client/state"
)

var connLogger = log.With().Str("logger_name", "client::conn").Logger()

const (
	ConnState__DISCONNECTED = "DISCONNECTED"
	ConnState__CONNECTING   = "CONNECTING"
	ConnState__CONNECTED    = "CONNECTED"

	ConnEvent__DIAL = "DIAL"
	ConnEvent__OPEN = "OPEN"
	ConnEvent__FAIL = "FAIL"
	ConnEvent__DROP = "DROP"
)

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 3 * time.Second
)

// Manager owns the websocket connection to the game server. It dials,
// reads, dispatches messages into the shared state, and redials with
// exponential backoff when the connection drops. EnsureConnected is the
// supervisory entry point and is expected to be called repeatedly from a
// single goroutine (the frame loop); the read loop runs on its own
// goroutine.
type Manager struct {
	serverURL string
	app       *state.App
	store     state.SessionStore
	backoff   *Backoff
	sm        *fsm.FSM

	mu          sync.Mutex
	conn        *websocket.Conn
	session     *state.Session
	nextAttempt time.Time
	attempt     uint32
	closed      bool
}

func NewManager(serverURL string, conf *config.ClientConfig, app *state.App, store state.SessionStore) *Manager {
	m := &Manager{
		serverURL: serverURL,
		app:       app,
		store:     store,
		backoff:   NewBackoff(conf.BackoffFloor(), conf.BackoffCeiling()),
	}

	session, err := store.Load()
	if err != nil {
		connLogger.Error().Err(err).Msg("Unable to load saved session. Starting fresh.")
	}
	if session == nil {
		session = &state.Session{}
	}
	m.session = session
	if session.PlayerName != "" {
		app.SetPlayerName(session.PlayerName)
	}

	m.sm = fsm.NewFSM(
		ConnState__DISCONNECTED,
		fsm.Events{
			{
				Name: ConnEvent__DIAL,
				Src:  []string{ConnState__DISCONNECTED},
				Dst:  ConnState__CONNECTING,
			},
			{
				Name: ConnEvent__OPEN,
				Src:  []string{ConnState__CONNECTING},
				Dst:  ConnState__CONNECTED,
			},
			{
				Name: ConnEvent__FAIL,
				Src:  []string{ConnState__CONNECTING},
				Dst:  ConnState__DISCONNECTED,
			},
			{
				Name: ConnEvent__DROP,
				Src:  []string{ConnState__CONNECTED, ConnState__CONNECTING},
				Dst:  ConnState__DISCONNECTED,
			},
		},
		fsm.Callbacks{
			"enter_state": func(e *fsm.Event) {
				connLogger.Debug().Msgf("[%s] ===> [%s]", e.Src, e.Dst)
			},
		},
	)
	return m
}

// Connected reports whether the socket is currently open.
func (m *Manager) Connected() bool {
	return m.sm.Current() == ConnState__CONNECTED
}

// EnsureConnected starts a dial when disconnected and the backoff wait
// has elapsed. Safe to call every frame; it returns immediately when a
// connection is open or a dial is in flight.
func (m *Manager) EnsureConnected(ctx context.Context) {
	m.mu.Lock()
	if m.closed || time.Now().Before(m.nextAttempt) {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	if err := m.sm.Event(ConnEvent__DIAL); err != nil {
		// Already connecting or connected.
		return
	}
	go m.dial(ctx)
}

// dialURL picks the join endpoint. A saved session UUID means we try to
// reclaim our previous seat via the rejoin endpoint; anything invalid
// falls back to a fresh join.
func (m *Manager) dialURL() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session.UUID != "" {
		if _, err := uuid.Parse(m.session.UUID); err != nil {
			connLogger.Warn().Msgf("Saved session id [%s] is not a valid UUID. Joining fresh.", m.session.UUID)
			m.session.UUID = ""
		} else {
			return fmt.Sprintf("%s/rejoin/%s", m.serverURL, m.session.UUID)
		}
	}
	return fmt.Sprintf("%s/join", m.serverURL)
}

func (m *Manager) dial(ctx context.Context) {
	url := m.dialURL()

	m.mu.Lock()
	m.attempt++
	attempt := m.attempt
	m.mu.Unlock()

	connLogger.Info().Msgf("Connecting to [%s] (attempt %d)", url, attempt)
	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	conn, _, err := websocket.Dial(dialCtx, url, nil)
	cancel()
	if err != nil {
		wait := m.scheduleRetry()
		connLogger.Warn().Err(err).
			Msgf("Connection attempt %d failed. Retrying in %v.", attempt, wait)
		m.sm.Event(ConnEvent__FAIL)
		return
	}

	m.mu.Lock()
	m.conn = conn
	m.attempt = 0
	m.backoff.Reset()
	m.nextAttempt = time.Time{}
	m.mu.Unlock()

	connLogger.Info().Msg("Connected")
	m.sm.Event(ConnEvent__OPEN)
	go m.readLoop(ctx, conn)
}

func (m *Manager) scheduleRetry() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	wait := m.backoff.Next()
	m.nextAttempt = time.Now().Add(wait)
	return wait
}

func (m *Manager) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			m.onDrop(err)
			return
		}
		m.handleMessage(data)
	}
}

func (m *Manager) onDrop(err error) {
	m.mu.Lock()
	m.conn = nil
	closed := m.closed
	m.mu.Unlock()

	if closed {
		return
	}

	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		connLogger.Info().Msg("Server closed the connection")
	default:
		connLogger.Warn().Err(err).Msg("Connection lost")
	}

	wait := m.scheduleRetry()
	connLogger.Info().Msgf("Reconnecting in %v", wait)
	m.sm.Event(ConnEvent__DROP)
}

// Close shuts the connection down for good. No reconnect is attempted
// after Close.
func (m *Manager) Close() {
	m.mu.Lock()
	m.closed = true
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()
	if conn != nil {
		conn.Close(websocket.StatusNormalClosure, "client exiting")
	}
}

// send marshals and writes one outbound message. Sends while the socket
// is closed are rejected rather than queued; the caller's state is left
// untouched and the next successful message will reflect it.
func (m *Manager) send(payload []byte) error {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn == nil {
		return errors.New("not connected")
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, payload); err != nil {
		return errors.Wrap(err, "Error writing to server")
	}
	return nil
}
