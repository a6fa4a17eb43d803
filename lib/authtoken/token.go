// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package authtoken

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by Verify and related functions.
var (
	ErrTokenExpired = errors.New("authtoken: token has expired")
	ErrTokenInvalid = errors.New("authtoken: token is invalid")
)

// Mint signs an access token for the given user ID using the wall
// clock.
func Mint(secret []byte, userID string, ttl time.Duration) (string, error) {
	return MintAt(secret, userID, time.Now(), ttl)
}

// MintAt is like Mint but accepts an explicit issue time. This
// supports deterministic testing.
func MintAt(secret []byte, userID string, now time.Time, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("authtoken: user ID is required")
	}
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("authtoken: signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry against the wall clock
// and returns the subject user ID.
func Verify(secret []byte, token string) (string, error) {
	return VerifyAt(secret, token, time.Now())
}

// VerifyAt is like Verify but accepts an explicit time for the expiry
// check. Returns ErrTokenExpired for a well-signed but stale token and
// ErrTokenInvalid for everything else (bad signature, wrong algorithm,
// malformed, missing subject).
func VerifyAt(secret []byte, token string, now time.Time) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
