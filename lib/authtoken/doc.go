// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package authtoken provides password hashing and bearer token
// signing for the API.
//
// Passwords are hashed with bcrypt; verification is constant-time by
// construction. Access tokens are HS256 JWTs carrying only the
// registered claims: subject (user ID), issued-at, and expiry. The
// server resolves the subject back to a user record on every request,
// so a token outliving its user is rejected at resolution time rather
// than at verification time.
//
// Mint and Verify take an explicit "now" via the *At variants to
// support deterministic expiry tests; the plain variants use the wall
// clock.
package authtoken
