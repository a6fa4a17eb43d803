// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"net/http"

	"github.com/hypergrow-online/OneDate/lib/authtoken"
	"github.com/hypergrow-online/OneDate/lib/schema/user"
	"github.com/hypergrow-online/OneDate/lib/service"
	"github.com/hypergrow-online/OneDate/lib/store"
)

// registerRequest is the POST /api/v1/auth/register body.
type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// tokenResponse is the POST /api/v1/auth/login response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var request registerRequest
	if err := service.DecodeJSON(r, &request); err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	if request.Email == "" || request.Username == "" || request.Password == "" {
		service.WriteError(w, s.logger, service.Validation("email, username, and password are required"))
		return
	}

	hash, err := authtoken.HashPassword(request.Password, s.bcryptCost)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	u := &user.User{
		Email:        request.Email,
		Username:     request.Username,
		FullName:     request.FullName,
		PasswordHash: hash,
	}
	err = s.store.CreateUser(r.Context(), u, s.clock.Now())
	if errors.Is(err, store.ErrDuplicateEmail) {
		service.WriteError(w, s.logger, service.Validation("email already registered"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}

	s.logger.Info("user registered", "user_id", u.ID)
	service.WriteJSON(w, http.StatusCreated, u.Public())
}

func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	// Form-encoded credentials; the username field carries the email.
	if err := r.ParseForm(); err != nil {
		service.WriteError(w, s.logger, service.Validation("malformed form body"))
		return
	}
	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		service.WriteError(w, s.logger, service.Validation("username and password are required"))
		return
	}

	// One generic detail for unknown email and wrong password alike,
	// so login attempts cannot probe which emails are registered.
	u, err := s.store.UserByEmail(r.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		service.WriteError(w, s.logger, service.Unauthorized("incorrect email or password"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	if !authtoken.VerifyPassword(u.PasswordHash, password) {
		service.WriteError(w, s.logger, service.Unauthorized("incorrect email or password"))
		return
	}

	token, err := authtoken.MintAt(s.tokenSecret, u.ID, s.clock.Now(), s.tokenTTL)
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func (s *server) handleMe(w http.ResponseWriter, r *http.Request, userID string) {
	u, err := s.store.UserByID(r.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		// Valid token for a deleted account.
		service.WriteError(w, s.logger, service.Unauthorized("could not validate credentials"))
		return
	}
	if err != nil {
		service.WriteError(w, s.logger, err)
		return
	}
	service.WriteJSON(w, http.StatusOK, u.Public())
}
