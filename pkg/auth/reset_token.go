package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// resetTokenBytes is the amount of entropy in a reset token.
const resetTokenBytes = 20

// GenerateResetToken creates a random password-reset token. The plaintext
// token is returned to be emailed to the user; only its SHA-256 hash is
// ever persisted, so a leaked database does not yield usable tokens.
func GenerateResetToken() (token string, tokenHash string, err error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	token = hex.EncodeToString(buf)
	return token, HashResetToken(token), nil
}

// HashResetToken returns the hex-encoded SHA-256 hash of a plaintext token.
func HashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareResetTokenHashes compares two token hashes in constant time.
func CompareResetTokenHashes(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
