package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher is the one-way credential hashing primitive. The salt is
// generated per call and embedded in the digest, so hashing the same
// password twice yields different digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, digest string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Check reports whether password matches digest. Malformed digests compare
// as a mismatch rather than an error.
func (h *BcryptHasher) Check(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
