// Package password wraps bcrypt for credential hashing. bcrypt embeds a
// random salt in every digest and compares in constant time, so equal
// passwords never produce equal digests and verification leaks no timing
// information about where a mismatch occurred.
package password

import "golang.org/x/crypto/bcrypt"

// Hash generates a salted digest of the plaintext.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches digest. Any malformed or
// corrupted digest counts as a mismatch, never an error.
func Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
