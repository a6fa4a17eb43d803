// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package mediastore

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrObjectNotFound is returned by Get for an unknown object ID.
var ErrObjectNotFound = errors.New("mediastore: object not found")

// Object header layout: 1 tag byte, 8-byte big-endian uncompressed
// size, 2-byte big-endian content-type length, content type, payload.
const headerSize = 1 + 8 + 2

const maxContentTypeLen = 255

// Store is a content-addressed blob store rooted at a single
// directory. Safe for concurrent use; writes go through a temp file
// and rename, so readers never observe partial objects.
type Store struct {
	dir    string
	logger *slog.Logger
}

// Open opens a store rooted at dir, creating the directory if needed.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("mediastore: directory is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mediastore: creating directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Put stores data under its content hash and returns the hash. The
// compression algorithm is chosen from contentType; storing the same
// bytes twice is a no-op that returns the same hash.
func (s *Store) Put(data []byte, contentType string) (Hash, error) {
	if len(contentType) > maxContentTypeLen {
		contentType = contentType[:maxContentTypeLen]
	}

	hash := HashObject(data)
	path := s.objectPath(hash)
	if _, err := os.Stat(path); err == nil {
		return hash, nil
	}

	tag := selectCompression(contentType)
	payload, err := compress(data, tag)
	if errors.Is(err, errIncompressible) {
		tag = CompressionNone
		payload = data
	} else if err != nil {
		return Hash{}, err
	}

	header := make([]byte, headerSize, headerSize+len(contentType))
	header[0] = byte(tag)
	binary.BigEndian.PutUint64(header[1:9], uint64(len(data)))
	binary.BigEndian.PutUint16(header[9:11], uint16(len(contentType)))
	header = append(header, contentType...)

	tmp, err := os.CreateTemp(s.dir, "object-*.tmp")
	if err != nil {
		return Hash{}, fmt.Errorf("mediastore: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(header); err != nil {
		tmp.Close()
		return Hash{}, fmt.Errorf("mediastore: writing object: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return Hash{}, fmt.Errorf("mediastore: writing object: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Hash{}, fmt.Errorf("mediastore: writing object: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Hash{}, fmt.Errorf("mediastore: publishing object: %w", err)
	}

	s.logger.Debug("stored media object",
		"id", hash.String(),
		"size", len(data),
		"stored_size", headerSize+len(contentType)+len(payload),
		"compression", tag.String())
	return hash, nil
}

// Get loads an object by hash, verifies its content against the hash,
// and returns the uncompressed bytes with the declared content type.
func (s *Store) Get(hash Hash) (data []byte, contentType string, err error) {
	raw, err := os.ReadFile(s.objectPath(hash))
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", ErrObjectNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("mediastore: reading object: %w", err)
	}
	if len(raw) < headerSize {
		return nil, "", fmt.Errorf("mediastore: object %s: truncated header", hash)
	}

	tag := CompressionTag(raw[0])
	uncompressedSize := binary.BigEndian.Uint64(raw[1:9])
	typeLen := int(binary.BigEndian.Uint16(raw[9:11]))
	if len(raw) < headerSize+typeLen {
		return nil, "", fmt.Errorf("mediastore: object %s: truncated content type", hash)
	}
	contentType = string(raw[headerSize : headerSize+typeLen])
	payload := raw[headerSize+typeLen:]

	data, err = decompress(payload, tag, int(uncompressedSize))
	if err != nil {
		return nil, "", fmt.Errorf("mediastore: object %s: %w", hash, err)
	}

	if actual := HashObject(data); !bytes.Equal(actual[:], hash[:]) {
		return nil, "", fmt.Errorf("mediastore: object %s: content hash mismatch", hash)
	}
	return data, contentType, nil
}

func (s *Store) objectPath(hash Hash) string {
	return filepath.Join(s.dir, hash.String())
}
