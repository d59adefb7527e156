package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret hashes the admin secret for use as ADMIN_PASSWORD_HASH.
func HashSecret(secret string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifySecret compares a candidate against the configured admin secret.
// A bcrypt hash takes precedence; the plaintext fallback uses a constant-time
// comparison. A malformed candidate and a wrong candidate are
// indistinguishable to the caller.
func VerifySecret(hash, plain, candidate string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
	}
	if plain == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(candidate)) == 1
}
