package clubsite

import (
	"crypto/subtle"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "admin_session"

// Session is the validated credential passed explicitly into every mutating
// repository operation. Authorization is a function of this value, not of
// ambient request state.
type Session struct {
	Authenticated bool
}

// Valid reports whether the session may perform mutating operations.
func (s Session) Valid() bool {
	return s.Authenticated
}

// Gate validates the single shared admin password and issues, inspects, and
// revokes the admin session cookie. There are no user accounts or roles.
type Gate struct {
	password string
	limiter  *loginLimiter
}

// NewGate creates an authentication gate for the given shared password.
func NewGate(password string, limiter *loginLimiter) *Gate {
	return &Gate{password: password, limiter: limiter}
}

// Login compares the submitted password against the shared secret in
// constant time. On success it marks the request's session cookie
// authenticated; on mismatch it returns ErrUnauthorized and never touches
// the cookie.
func (g *Gate) Login(c echo.Context, password string) (Session, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		g.limiter.Record(c.RealIP())
		return Session{}, ErrUnauthorized
	}
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return Session{}, err
	}
	sess.Values["authenticated"] = true
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return Session{}, err
	}
	return Session{Authenticated: true}, nil
}

// Authenticate inspects the request's session cookie and returns the
// resulting Session. An absent or tampered cookie yields an
// unauthenticated Session, never an error.
func (g *Gate) Authenticate(c echo.Context) Session {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return Session{}
	}
	auth, ok := sess.Values["authenticated"].(bool)
	return Session{Authenticated: ok && auth}
}

// Logout deletes the session cookie the caller presented.
func (g *Gate) Logout(c echo.Context) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Options.MaxAge = -1
	return sess.Save(c.Request(), c.Response())
}

// AllowAttempt reports whether the IP is still under the login rate limit.
func (g *Gate) AllowAttempt(ip string) bool {
	return g.limiter.Check(ip)
}
