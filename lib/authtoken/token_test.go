// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package authtoken

import (
	"errors"
	"testing"
	"time"
)

var (
	testSecret = []byte("test-signing-secret")
	testEpoch  = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
)

func TestMintVerifyRoundTrip(t *testing.T) {
	token, err := MintAt(testSecret, "user-123", testEpoch, 30*time.Minute)
	if err != nil {
		t.Fatalf("MintAt: %v", err)
	}

	subject, err := VerifyAt(testSecret, token, testEpoch.Add(time.Minute))
	if err != nil {
		t.Fatalf("VerifyAt: %v", err)
	}
	if subject != "user-123" {
		t.Errorf("subject: got %q, want user-123", subject)
	}
}

func TestVerifyExpired(t *testing.T) {
	token, err := MintAt(testSecret, "user-123", testEpoch, 30*time.Minute)
	if err != nil {
		t.Fatalf("MintAt: %v", err)
	}

	_, err = VerifyAt(testSecret, token, testEpoch.Add(31*time.Minute))
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expired token: got %v, want ErrTokenExpired", err)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := MintAt(testSecret, "user-123", testEpoch, 30*time.Minute)
	if err != nil {
		t.Fatalf("MintAt: %v", err)
	}

	_, err = VerifyAt([]byte("other-secret"), token, testEpoch)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("wrong secret: got %v, want ErrTokenInvalid", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	_, err := VerifyAt(testSecret, "not-a-token", testEpoch)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("garbage token: got %v, want ErrTokenInvalid", err)
	}
}

func TestMintRequiresSubject(t *testing.T) {
	if _, err := MintAt(testSecret, "", testEpoch, time.Minute); err == nil {
		t.Error("MintAt accepted an empty user ID")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2", 4) // minimum cost, tests only
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "hunter3") {
		t.Error("wrong password accepted")
	}
}
