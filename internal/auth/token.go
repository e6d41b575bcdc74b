package auth

import (
	"errors"
	"time"

	"blogapi/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenValidity is how long an issued token stays valid.
	TokenValidity = 24 * time.Hour
	// ExpiresInSeconds is TokenValidity expressed in seconds, as reported
	// to clients in the login response.
	ExpiresInSeconds = 86400

	tokenIssuer   = "blog-api"
	tokenAudience = "blog-client"
)

var (
	// ErrTokenExpired is returned when a structurally valid token is past
	// its expiry.
	ErrTokenExpired = models.NewUnauthorizedError("Token has expired")
	// ErrInvalidToken is returned for any other token defect: bad
	// signature, malformed payload, wrong issuer or audience.
	ErrInvalidToken = models.NewUnauthorizedError("Invalid token")
)

// TokenCodec issues and decodes signed bearer tokens. Tokens are
// self-contained; no server-side session state exists, so a token stays
// usable until it expires.
type TokenCodec struct {
	secret []byte
	now    func() time.Time
}

// NewTokenCodec returns a codec signing with the given HMAC secret.
func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue creates a signed token for the given user. Returns the compact
// token string and its expiry time.
func (tc *TokenCodec) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := tc.now()
	expiresAt := now.Add(TokenValidity)

	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    tokenIssuer,
		Audience:  jwt.ClaimStrings{tokenAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tc.secret)
	if err != nil {
		return "", time.Time{}, models.NewInternalError(err)
	}
	return signed, expiresAt, nil
}

// Decode validates the token and returns the user ID it was issued for.
// An expired token yields ErrTokenExpired; every other defect yields
// ErrInvalidToken so callers cannot probe for what exactly was wrong.
func (tc *TokenCodec) Decode(tokenString string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return tc.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
		jwt.WithTimeFunc(func() time.Time { return tc.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		return uuid.Nil, ErrInvalidToken
	}
	if !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}
