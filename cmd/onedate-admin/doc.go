// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// onedate-admin performs operator chores against a OneDate deployment's
// data directory, without going through the HTTP API.
//
// Usage:
//
//	onedate-admin --config onedate.yaml create-user --email a@b.c --username alice
//
// create-user prompts for the password on the terminal with echo
// disabled (or reads one line from piped stdin) and writes the account
// directly to the document store. Useful for bootstrapping the first
// account and for environments where open registration is disabled at
// the network layer.
package main
