package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Alexander2005-rgb/Quiz-application/apperr"
	"github.com/Alexander2005-rgb/Quiz-application/models"
)

// DefaultTokenTTL is how long an issued token stays valid. There is no
// revocation list: a verified, non-expired token is always accepted.
const DefaultTokenTTL = 24 * time.Hour

var (
	ErrTokenExpired = apperr.New(apperr.KindAuthentication, apperr.CodeTokenExpired, "token expired")
	ErrBadSignature = apperr.New(apperr.KindAuthentication, apperr.CodeInvalidSignature, "invalid token signature")
	ErrMalformed    = apperr.New(apperr.KindAuthentication, apperr.CodeMalformedToken, "malformed token")
)

// Claims is the identity payload embedded in a bearer token.
type Claims struct {
	UserID   uint        `json:"userId"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service signing with secret. A zero ttl
// selects DefaultTokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (ts *TokenService) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return ts.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrBadSignature):
			return nil, ErrBadSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !token.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}
