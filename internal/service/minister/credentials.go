package minister

import (
	"crypto/subtle"
	"strings"
)

// credentialsMatch is the single place stored credentials are compared
// against a supplied password. The legacy data holds plaintext passwords;
// rows that have been rehashed to bcrypt are recognized by prefix, so the
// storage scheme can migrate without touching any caller.
func (s *Service) credentialsMatch(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	if isBcryptHash(stored) {
		return s.hasher.Compare(stored, supplied) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") ||
		strings.HasPrefix(s, "$2b$") ||
		strings.HasPrefix(s, "$2y$")
}
