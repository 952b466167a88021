package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SignedResolver stores the session id as the subject of an HS256 token.
// A token that fails verification counts as no session at all.
type SignedResolver struct {
	opts   Options
	secret []byte
	now    func() time.Time
}

func NewSignedResolver(opts Options) *SignedResolver {
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}

	return &SignedResolver{
		opts:   opts,
		secret: []byte(opts.Secret),
		now:    time.Now,
	}
}

func (s *SignedResolver) Resolve(r *http.Request) (string, error) {
	raw, err := readCookie(r)
	if err != nil {
		return "", err
	}

	var claims jwt.RegisteredClaims

	_, err = jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoSession, err)
	}

	if claims.Subject == "" {
		return "", ErrNoSession
	}

	return claims.Subject, nil
}

func (s *SignedResolver) Issue(w http.ResponseWriter) (string, error) {
	id := uuid.NewString()
	now := s.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.opts.MaxAge)),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	writeCookie(w, signed, s.opts)

	return id, nil
}
