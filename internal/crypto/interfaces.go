// Package crypto holds the one-way password primitive shared by the
// driver, dispatcher and user credential paths.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into storable digests and checks
// supplied passwords against them. It knows nothing about storage or users.
//
// Digest layout (lowercase hex):
//
//	salt (16 bytes) || Argon2id(password, salt) (32 bytes)   -> 96 hex chars
//
// Digests of the older unsalted SHA-256 scheme (64 hex chars) are still
// accepted by Verify.
type PasswordHasher interface {
	// Hash returns a fresh digest of password with a random per-call salt.
	// Hashing the same password twice yields different digests.
	Hash(password string) (string, error)

	// Verify reports whether password produces digest. The comparison runs
	// in constant time. A malformed digest never verifies.
	Verify(digest, password string) bool
}
