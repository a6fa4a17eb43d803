// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package user defines the user identity record.
package user

import (
	"fmt"
	"strings"
	"time"
)

// User is an identity record. PasswordHash is the bcrypt hash of the
// user's password; it has no JSON tag path out of the server, API
// responses use the Public projection.
type User struct {
	ID           string    `cbor:"id"`
	Email        string    `cbor:"email"`
	Username     string    `cbor:"username"`
	FullName     string    `cbor:"full_name,omitempty"`
	PasswordHash []byte    `cbor:"password_hash"`
	CreatedAt    time.Time `cbor:"created_at"`
}

// Public is the API-facing projection of a User. It never carries
// password material.
type Public struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the API-facing projection of u.
func (u *User) Public() Public {
	return Public{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

// Validate checks field constraints. Email validation is shallow
// (presence and shape); the unique-email rule is enforced by the
// store.
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("user: valid email is required")
	}
	if u.Username == "" {
		return fmt.Errorf("user: username is required")
	}
	if len(u.PasswordHash) == 0 {
		return fmt.Errorf("user: password hash is required")
	}
	return nil
}
