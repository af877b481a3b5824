// Package cryptox implements password hashing and verification for the
// forum's user records. Hashes use argon2id in PHC string format
// ($argon2id$v=19$m=...,t=...,p=...$salt$hash), so records produced by
// other argon2id tooling verify as-is.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrMalformedHash       = errors.New("malformed password hash")
	ErrUnsupportedHash     = errors.New("unsupported password hash")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// Default parameters for newly created hashes.
const (
	defaultMemory      = 64 * 1024
	defaultIterations  = 2
	defaultParallelism = 1
	saltLength         = 16
	keyLength          = 32
)

// HashPassword hashes the password with argon2id and a fresh random salt,
// returning the PHC-encoded string.
func HashPassword(password []byte) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey(password, salt, defaultIterations, defaultMemory, defaultParallelism, keyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, defaultMemory, defaultIterations, defaultParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key))

	return encoded, nil
}

// VerifyPassword reports whether password matches the PHC-encoded hash.
// Parameters are taken from the encoded string, and the final comparison is
// constant time.
func VerifyPassword(password []byte, encoded string) (bool, error) {
	salt, key, memory, iterations, parallelism, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey(password, salt, iterations, memory, parallelism, uint32(len(key)))

	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeHash(encoded string) (salt, key []byte, memory, iterations uint32, parallelism uint8, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	if parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrUnsupportedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}
	if version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrIncompatibleVersion
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	key, err = base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	return salt, key, memory, iterations, parallelism, nil
}
