// Package session provides cookie-based HTTP sessions backed by Redis.
//
// The storefront uses the session only as a persistence scope: the cart is
// keyed by session ID, so two tabs sharing the cookie share one cart while a
// fresh browser gets an empty one.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Bamimore2000/borokini/pkg/cache"
)

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		CookieName: "borokini_session",
		TTL:        7 * 24 * time.Hour, // carts should survive a week, not an afternoon
		HTTPOnly:   true,
		Secure:     false, // set true in production
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	data    map[string]interface{}
	opts    Options
	changed bool
	fresh   bool
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func redisKey(id string) string { return "borokini:session:" + id }

func load(id string) map[string]interface{} {
	var data map[string]interface{}
	if cache.Get(redisKey(id), &data) {
		return data
	}
	return map[string]interface{}{}
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Fresh reports whether the session was created for this request (no cookie yet).
func (s *Session) Fresh() bool { return s.fresh }

// Set stores a value under key in the session.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// Invalidate destroys the session data.
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// Save persists the session to Redis and writes the cookie to the response.
// The middleware does both automatically; Save exists for handlers that need
// the data durable before responding.
func (s *Session) Save(w http.ResponseWriter) error {
	if s.changed {
		if err := s.persist(); err != nil {
			return err
		}
	}
	s.writeCookie(w)
	return nil
}

func (s *Session) persist() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := cache.Set(redisKey(s.id), json.RawMessage(raw), s.opts.TTL); err != nil {
		return fmt.Errorf("session: redis save: %w", err)
	}
	s.changed = false
	return nil
}

func (s *Session) writeCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    s.id,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})
}

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
// The cookie is written before the handler runs, so a fresh session keeps
// its ID even when the handler never touches session data. Data changes are
// persisted after the handler returns.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts}

			if cookie, err := r.Cookie(opts.CookieName); err == nil && cookie.Value != "" {
				sess.id = cookie.Value
				sess.data = load(sess.id)
			} else {
				id, _ := newID()
				sess.id = id
				sess.data = map[string]interface{}{}
				sess.fresh = true
				sess.writeCookie(w)
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))

			if sess.changed {
				sess.persist()
			}
		})
	}
}

// FromCtx retrieves the session from the request context.
// Returns an empty (unsaved) session if none is present.
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	id, _ := newID()
	return &Session{id: id, data: map[string]interface{}{}, opts: DefaultOptions(), fresh: true}
}
