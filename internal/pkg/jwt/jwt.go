package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Claims are the identity fields carried in an access token.
type Claims struct {
	UserID    string
	StationID string
	Name      string
	Role      string
	Position  *string
}

type Service interface {
	GenerateAccessToken(c Claims) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(c Claims) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id":    c.UserID,
		"station_id": c.StationID,
		"name":       c.Name,
		"role":       c.Role,
		"position":   returnValueOrNil(c.Position),
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// ClaimsFromMap reads identity claims decoded by jwtauth. ok is false when a
// required claim is missing.
func ClaimsFromMap(m map[string]interface{}) (Claims, bool) {
	var c Claims
	var ok bool

	if c.UserID, ok = m["user_id"].(string); !ok || c.UserID == "" {
		return Claims{}, false
	}
	if c.StationID, ok = m["station_id"].(string); !ok || c.StationID == "" {
		return Claims{}, false
	}
	if c.Role, ok = m["role"].(string); !ok || c.Role == "" {
		return Claims{}, false
	}
	c.Name, _ = m["name"].(string)
	if p, ok := m["position"].(string); ok && p != "" {
		c.Position = &p
	}
	return c, true
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
