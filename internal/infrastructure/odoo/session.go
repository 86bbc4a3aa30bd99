package odoo

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SessionManager owns the single shared ERP session. Every query goes
// through Ensure, which verifies the cached session is still alive and
// re-authenticates when it is not. Concurrent callers that hit an expired
// session trigger exactly one re-authentication; the rest wait for it.
type SessionManager struct {
	client   *Client
	login    string
	password string
	log      *zap.Logger

	mu      sync.RWMutex
	current *Session

	sf singleflight.Group
}

// NewSessionManager wires a manager over client with the service
// credentials used for automatic renewal.
func NewSessionManager(client *Client, login, password string, log *zap.Logger) *SessionManager {
	return &SessionManager{
		client:   client,
		login:    login,
		password: password,
		log:      log,
	}
}

// Current returns the cached session without probing it, or nil.
func (m *SessionManager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Ensure returns a live session, probing the cached one first and
// re-authenticating with the service credentials when the probe fails.
func (m *SessionManager) Ensure(ctx context.Context) (*Session, error) {
	if sess := m.Current(); sess != nil {
		if err := m.probe(ctx, sess); err == nil {
			return sess, nil
		} else {
			m.log.Warn("session probe failed, renewing", zap.Error(err))
		}
	}
	return m.refresh(ctx)
}

// probe reads the session's own user record. A live session answers with
// its id and name; a dead one answers with an upstream session error.
func (m *SessionManager) probe(ctx context.Context, sess *Session) error {
	res, err := m.client.CallKW(ctx, sess.UID, "res.users", "read",
		[]any{[]any{sess.UID}, []any{"id", "name"}}, nil)
	if err != nil {
		return err
	}
	var users []struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(res, &users); err != nil {
		return err
	}
	if len(users) == 0 {
		return ErrNoSession
	}
	return nil
}

func (m *SessionManager) refresh(ctx context.Context) (*Session, error) {
	v, err, _ := m.sf.Do("refresh", func() (any, error) {
		sess, _, err := m.authenticate(ctx, m.login, m.password)
		return sess, err
	})
	if err != nil {
		return nil, err
	}
	return v.(*Session), nil
}

// Login opens a session with the supplied credentials and makes it the
// shared session. The full auth payload is returned for the caller.
func (m *SessionManager) Login(ctx context.Context, login, password string) (*AuthResult, error) {
	_, auth, err := m.authenticate(ctx, login, password)
	return auth, err
}

func (m *SessionManager) authenticate(ctx context.Context, login, password string) (*Session, *AuthResult, error) {
	m.client.ResetCookies()
	auth, err := m.client.Authenticate(ctx, login, password)
	if err != nil {
		return nil, nil, err
	}
	sess := &Session{
		UID:      int64(auth.UID),
		Login:    auth.Username,
		Name:     auth.Name,
		Database: auth.DB,
	}
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()
	m.log.Info("odoo session established",
		zap.Int64("uid", sess.UID),
		zap.String("login", sess.Login),
		zap.String("db", sess.Database))
	return sess, auth, nil
}

// Logout tears down the shared session both upstream and locally.
func (m *SessionManager) Logout(ctx context.Context) error {
	m.mu.Lock()
	had := m.current != nil
	m.current = nil
	m.mu.Unlock()

	var err error
	if had {
		err = m.client.DestroySession(ctx)
	}
	m.client.ResetCookies()
	return err
}
