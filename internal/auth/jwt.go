// Package auth verifies bearer tokens and resolves them into principals.
// Both the HTTP middleware and the websocket authenticate frame go through
// the same verifier, so a token means the same thing on every transport.
package auth

import (
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid is the sentinel every token rejection unwraps to: bad
// signature, expiry, malformed claims or an unknown role.
var ErrTokenInvalid = errors.New("token is invalid")

// TokenVerifier validates HS256-signed tokens carrying userId and role claims.
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a verifier for the given signing secret.
func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}

	return &TokenVerifier{secret: []byte(secret)}, nil
}

// Verify parses and validates the token and resolves its claims into a
// Principal. Any failure, including an expired token or a role outside the
// known set, unwraps to ErrTokenInvalid.
func (v *TokenVerifier) Verify(tokenString string) (kernel.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Principal{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.Principal{}, fmt.Errorf("%w: unexpected claims type", ErrTokenInvalid)
	}

	userIDClaim, ok := claims["userId"].(string)
	if !ok {
		return kernel.Principal{}, fmt.Errorf("%w: userId claim is missing", ErrTokenInvalid)
	}
	roleClaim, ok := claims["role"].(string)
	if !ok {
		return kernel.Principal{}, fmt.Errorf("%w: role claim is missing", ErrTokenInvalid)
	}

	userID, err := kernel.UUIDFromString(userIDClaim)
	if err != nil {
		return kernel.Principal{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	role, err := kernel.RoleFromString(roleClaim)
	if err != nil {
		return kernel.Principal{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	principal, err := kernel.NewPrincipal(userID, role)
	if err != nil {
		return kernel.Principal{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	return principal, nil
}

// Issue signs a token for the principal, valid for the given duration.
func (v *TokenVerifier) Issue(principal kernel.Principal, ttl time.Duration) (string, error) {
	if err := principal.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": principal.UserID().String(),
		"role":   principal.Role().String(),
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	})

	return token.SignedString(v.secret)
}
