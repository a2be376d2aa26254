package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. N must be a power of two; the values follow the
// library's interactive-login recommendation.
const (
	scryptN       = 32768
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 64
	scryptSaltLen = 16
)

// hashPassword derives a one-way scrypt digest of password salted with a
// freshly generated random value. The returned blob has the form
// "hex(digest).hex(salt)", so verification is self-contained.
func hashPassword(password string) (string, error) {
	salt := make([]byte, scryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	digest, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("error deriving password digest: %w", err)
	}

	return hex.EncodeToString(digest) + "." + hex.EncodeToString(salt), nil
}

// verifyPassword recomputes the scrypt digest of candidate using the salt
// embedded in stored and compares the digests in constant time.
func verifyPassword(candidate, stored string) (bool, error) {
	digestHex, saltHex, ok := strings.Cut(stored, ".")
	if !ok {
		return false, errors.New("malformed password blob")
	}

	digest, err := hex.DecodeString(digestHex)
	if err != nil {
		return false, fmt.Errorf("error decoding stored digest: %w", err)
	}

	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("error decoding stored salt: %w", err)
	}

	candidateDigest, err := scrypt.Key([]byte(candidate), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, fmt.Errorf("error deriving candidate digest: %w", err)
	}

	return subtle.ConstantTimeCompare(digest, candidateDigest) == 1, nil
}
