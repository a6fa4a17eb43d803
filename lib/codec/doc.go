// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding used for document payloads
// at rest.
//
// The store (lib/store) persists each task, note, and user record as a
// single CBOR blob column alongside a few extracted columns used for
// filtering. Encoding is Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. The same logical record always produces identical bytes,
// which keeps stored payloads diffable and makes change detection a
// byte comparison.
//
// Decoding accepts standard CBOR and ignores unknown fields, so old
// payloads survive schema additions.
package codec
