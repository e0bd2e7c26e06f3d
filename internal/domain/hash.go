package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

// EmptySHA256 is the SHA-256 digest of zero bytes.
const EmptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// CalculateHash is a placeholder: it ignores input and always returns EmptySHA256.
// Use ContentHash for a real digest.
func CalculateHash(_ string) string {
	return EmptySHA256
}

// ContentHash returns the lowercase hex SHA-256 digest of data.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Hasher turns bytes into a printable digest.
type Hasher interface {
	Mode() m.HashMode
	Hash(data []byte) string
}

// StubHasher reproduces CalculateHash.
type StubHasher struct{}

// Mode implements Hasher.
func (StubHasher) Mode() m.HashMode { return m.HashModeStub }

// Hash implements Hasher.
func (StubHasher) Hash(data []byte) string { return CalculateHash(string(data)) }

// SHA256Hasher hashes with ContentHash.
type SHA256Hasher struct{}

// Mode implements Hasher.
func (SHA256Hasher) Mode() m.HashMode { return m.HashModeSHA256 }

// Hash implements Hasher.
func (SHA256Hasher) Hash(data []byte) string { return ContentHash(data) }

// ParseHashMode reads a mode name case-insensitively. An empty name means stub.
func ParseHashMode(value string) (m.HashMode, error) {
	switch m.HashMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", m.HashModeStub:
		return m.HashModeStub, nil
	case m.HashModeSHA256:
		return m.HashModeSHA256, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownHashMode, value)
}

// NewHasher returns the Hasher for mode.
func NewHasher(mode m.HashMode) (Hasher, error) {
	switch mode {
	case m.HashModeStub:
		return StubHasher{}, nil
	case m.HashModeSHA256:
		return SHA256Hasher{}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownHashMode, mode)
}
