package auth

import "golang.org/x/crypto/bcrypt"

// AdminVerifier checks the shared admin credential. The key is hashed once
// at startup so the plaintext never sits in the verifier and comparison is
// constant-time.
type AdminVerifier struct {
	hash []byte
}

func NewAdminVerifier(adminKey string) (*AdminVerifier, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(adminKey), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminVerifier{hash: h}, nil
}

// Verify reports whether the presented key is the admin credential.
func (v *AdminVerifier) Verify(key string) bool {
	if key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(key)) == nil
}
