package service

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_BlobFormat(t *testing.T) {
	blob, err := hashPassword("s3cret")
	require.NoError(t, err)

	digestHex, saltHex, ok := strings.Cut(blob, ".")
	require.True(t, ok, "blob must be digest.salt")

	digest, err := hex.DecodeString(digestHex)
	require.NoError(t, err)
	salt, err := hex.DecodeString(saltHex)
	require.NoError(t, err)

	assert.Len(t, digest, scryptKeyLen)
	assert.Len(t, salt, scryptSaltLen)
}

func TestHashPassword_SaltIsFreshPerCall(t *testing.T) {
	first, err := hashPassword("s3cret")
	require.NoError(t, err)
	second, err := hashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	blob, err := hashPassword("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		stored    string
		want      bool
		wantErr   bool
	}{
		{name: "correct password", candidate: "s3cret", stored: blob, want: true},
		{name: "wrong password", candidate: "guess", stored: blob, want: false},
		{name: "empty candidate", candidate: "", stored: blob, want: false},
		{name: "blob without separator", candidate: "s3cret", stored: "deadbeef", wantErr: true},
		{name: "non-hex digest", candidate: "s3cret", stored: "zzzz.abcd", wantErr: true},
		{name: "non-hex salt", candidate: "s3cret", stored: "abcd.zzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, err := verifyPassword(tt.candidate, tt.stored)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}
