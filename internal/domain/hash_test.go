package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

func TestCalculateHash_IgnoresInput(t *testing.T) {
	assert.Equal(t, CalculateHash("x"), CalculateHash("y"))
	assert.Equal(t, EmptySHA256, CalculateHash(""))
	assert.Equal(t, EmptySHA256, CalculateHash("the quick brown fox"))
}

func TestContentHash(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", EmptySHA256},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"hello world", "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentHash([]byte(tt.in)))
		})
	}
}

func TestContentHash_MatchesStubOnEmptyInput(t *testing.T) {
	assert.Equal(t, CalculateHash("anything"), ContentHash(nil))
}

func TestParseHashMode(t *testing.T) {
	tests := []struct {
		value   string
		want    m.HashMode
		wantErr bool
	}{
		{"", m.HashModeStub, false},
		{"stub", m.HashModeStub, false},
		{" STUB ", m.HashModeStub, false},
		{"sha256", m.HashModeSHA256, false},
		{"SHA256", m.HashModeSHA256, false},
		{"md5", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseHashMode(tt.value)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownHashMode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHasher(t *testing.T) {
	stub, err := NewHasher(m.HashModeStub)
	require.NoError(t, err)
	assert.Equal(t, m.HashModeStub, stub.Mode())
	assert.Equal(t, EmptySHA256, stub.Hash([]byte("abc")))

	sha, err := NewHasher(m.HashModeSHA256)
	require.NoError(t, err)
	assert.Equal(t, m.HashModeSHA256, sha.Mode())
	assert.Equal(t, ContentHash([]byte("abc")), sha.Hash([]byte("abc")))

	_, err = NewHasher("crc32")
	require.ErrorIs(t, err, ErrUnknownHashMode)
}
