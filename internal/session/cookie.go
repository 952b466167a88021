package session

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieResolver trusts the raw cookie value. No signature, expiry or
// registry lookup is performed.
type CookieResolver struct {
	opts Options
}

func NewCookieResolver(opts Options) *CookieResolver {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}

	return &CookieResolver{opts: opts}
}

func (c *CookieResolver) Resolve(r *http.Request) (string, error) {
	return readCookie(r)
}

func (c *CookieResolver) Issue(w http.ResponseWriter) (string, error) {
	id := uuid.NewString()
	writeCookie(w, id, c.opts)

	return id, nil
}
