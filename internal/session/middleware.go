package session

import (
	"context"
	"net/http"

	"github.com/MrJamesThe3rd/pocket/internal/http/render"
)

type ctxKey struct{}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the session id stored by Require.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Require rejects requests without a session with 401 before the next
// handler runs.
func Require(res Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := res.Resolve(r)
			if err != nil {
				render.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithID(r.Context(), id)))
		})
	}
}

// ResolveOrIssue returns the caller's session id, issuing a new one on the
// response when the request carries none. The bool reports whether a cookie
// was set.
func ResolveOrIssue(res Resolver, w http.ResponseWriter, r *http.Request) (string, bool, error) {
	if id, err := res.Resolve(r); err == nil {
		return id, false, nil
	}

	id, err := res.Issue(w)
	if err != nil {
		return "", false, err
	}

	return id, true, nil
}
