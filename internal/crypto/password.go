// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	saltLen = 16

	// legacyDigestLen is the hex length of an unsalted SHA-256 digest.
	legacyDigestLen = sha256.Size * 2
)

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// Argon2id tuning parameters, kept per instance so that tests and small
	// deployments can lower the memory cost.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	random io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
		random:       rand.Reader,
	}
}

// Hash implements [PasswordHasher]. It reads 16 random bytes from the OS
// CSPRNG as salt and derives the key with Argon2id.
func (h *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := h.derive(password, salt)
	return hex.EncodeToString(append(salt, key...)), nil
}

// Verify implements [PasswordHasher].
func (h *passwordHasher) Verify(digest, password string) bool {
	if len(digest) == legacyDigestLen {
		return verifyLegacy(digest, password)
	}

	if len(digest) != (saltLen+int(h.argonKeyLen))*2 {
		return false
	}

	raw, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}

	salt, want := raw[:saltLen], raw[saltLen:]
	got := h.derive(password, salt)

	return subtle.ConstantTimeCompare(got, want) == 1
}

func (h *passwordHasher) derive(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		h.argonTime,
		h.argonMemory,
		h.argonThreads,
		h.argonKeyLen,
	)
}

// legacyDigest returns the unsalted lowercase-hex SHA-256 digest used by
// records created before the Argon2id scheme.
func legacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func verifyLegacy(digest, password string) bool {
	if _, err := hex.DecodeString(digest); err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(legacyDigest(password)), []byte(strings.ToLower(digest))) == 1
}
