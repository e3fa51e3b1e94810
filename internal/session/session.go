// Package session keeps each viewer's last search text between page loads.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/hub/internal/logger"
)

const (
	// CookieName carries the viewer's session id.
	CookieName = "hub_session"
	// QueryParam is the search text parameter of the hub page.
	QueryParam = "q"
)

// Store persists the search text of a session.
// A missing or expired session is reported with ok=false and no error.
type Store interface {
	GetQuery(ctx context.Context, id string) (query string, ok bool, err error)
	SaveQuery(ctx context.Context, id, query string, ttl time.Duration) error
	Count(ctx context.Context) (int, error)
}

// Manager ties the session cookie to a Store.
type Manager struct {
	store  Store
	ttl    time.Duration
	logger logger.Logger
	now    func() time.Time
}

// NewManager creates a session manager.
func NewManager(store Store, ttl time.Duration, log logger.Logger) *Manager {
	return &Manager{
		store:  store,
		ttl:    ttl,
		logger: log,
		now:    time.Now,
	}
}

// Store returns the backing store.
func (m *Manager) Store() Store {
	return m.store
}

// ResolveQuery returns the search text for this request.
//
// When the request carries ?q= (even empty) it wins and is saved to the
// session. Otherwise the session's last query is restored. Store errors
// are logged and never fail the request.
func (m *Manager) ResolveQuery(w http.ResponseWriter, r *http.Request) string {
	id := m.sessionID(w, r)
	ctx := r.Context()

	values := r.URL.Query()
	if values.Has(QueryParam) {
		query := values.Get(QueryParam)
		if err := m.store.SaveQuery(ctx, id, query, m.ttl); err != nil {
			m.logger.Warn("failed to save session query",
				logger.String("session", id),
				logger.Error(err))
		}
		return query
	}

	query, ok, err := m.store.GetQuery(ctx, id)
	if err != nil {
		m.logger.Warn("failed to load session query",
			logger.String("session", id),
			logger.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	return query
}

// sessionID returns the id from the cookie, issuing a new one when the
// cookie is missing or not a valid UUID. The cookie expiry is refreshed.
func (m *Manager) sessionID(w http.ResponseWriter, r *http.Request) string {
	id := ""
	if c, err := r.Cookie(CookieName); err == nil {
		if parsed, err := uuid.Parse(c.Value); err == nil {
			id = parsed.String()
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		Expires:  m.now().Add(m.ttl),
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
