// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

// Package mediastore stores uploaded media blobs on local disk,
// addressed by content hash.
//
// Objects are named by the BLAKE3 keyed hash of their uncompressed
// bytes, so storing the same video twice yields one file and the
// object ID doubles as an integrity check on read. On disk each object
// carries a small header recording the compression algorithm, the
// uncompressed size, and the declared content type; payloads that are
// already compressed (video, images, audio) are stored verbatim while
// text-like payloads are compressed with zstd or LZ4.
//
// The package also defines [Uploader], the interface to a remote
// storage backend. The HTTP layer tries the remote first and falls
// back to the local store when the upload fails, so a media object is
// never lost to a remote outage.
package mediastore
