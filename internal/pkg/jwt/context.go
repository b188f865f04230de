package jwt

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaims = errors.New("missing or invalid identity claims")

// FromContext returns the identity of the verified token on ctx.
func FromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	c, ok := ClaimsFromMap(claims)
	if !ok {
		return Claims{}, ErrMissingClaims
	}
	return c, nil
}

// ContextWithClaims stores c on ctx as if a verified token carried it.
func ContextWithClaims(ctx context.Context, c Claims) context.Context {
	token := jwt.New()
	_ = token.Set("user_id", c.UserID)
	_ = token.Set("station_id", c.StationID)
	_ = token.Set("name", c.Name)
	_ = token.Set("role", c.Role)
	if c.Position != nil {
		_ = token.Set("position", *c.Position)
	}
	return jwtauth.NewContext(ctx, token, nil)
}
