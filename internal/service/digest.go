package service

import (
	"crypto/sha256"
	"encoding/hex"
)

// PasswordDigest returns the hex-encoded SHA-256 digest of password. This is
// the scheme the stored credential data uses: no per-user salt, so identical
// passwords digest identically. Weak by modern standards; kept for
// compatibility with existing portal_users rows. Replace with a salted KDF
// if the stored hashes are ever migrated.
func PasswordDigest(password string) string {
	h := sha256.Sum256([]byte(password))
	return hex.EncodeToString(h[:])
}
