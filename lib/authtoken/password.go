// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package authtoken

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password. A non-positive
// cost selects the bcrypt default.
func HashPassword(password string, cost int) ([]byte, error) {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("authtoken: hashing password: %w", err)
	}
	return hash, nil
}

// VerifyPassword reports whether password matches the stored bcrypt
// hash.
func VerifyPassword(hash []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
