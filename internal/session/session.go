// Package session resolves and issues the opaque identifier that scopes
// every ledger read and write.
//
// The default scheme is a presence check on the sessionId cookie: any
// non-empty value is taken as the caller's identity. It is not an
// authentication mechanism. Stronger schemes plug in through Resolver.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	CookieName    = "sessionId"
	DefaultMaxAge = 7 * 24 * time.Hour
)

var ErrNoSession = errors.New("no session")

// Resolver extracts a session id from a request and mints new ones.
type Resolver interface {
	// Resolve returns the caller's session id, or ErrNoSession.
	Resolve(r *http.Request) (string, error)
	// Issue creates a new session id and attaches it to the response.
	Issue(w http.ResponseWriter) (string, error)
}

type Mode string

const (
	ModePlain  Mode = "plain"
	ModeSigned Mode = "signed"
)

type Options struct {
	Mode   Mode
	Secret string
	MaxAge time.Duration
	Secure bool
}

// New builds the Resolver selected by opts.Mode.
func New(opts Options) (Resolver, error) {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}

	switch opts.Mode {
	case ModePlain, "":
		return NewCookieResolver(opts), nil
	case ModeSigned:
		if opts.Secret == "" {
			return nil, errors.New("signed sessions require a secret")
		}

		return NewSignedResolver(opts), nil
	default:
		return nil, fmt.Errorf("unknown session mode: %s", opts.Mode)
	}
}

func readCookie(r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", ErrNoSession
	}

	return c.Value, nil
}

func writeCookie(w http.ResponseWriter, value string, opts Options) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
