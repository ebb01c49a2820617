package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialSource supplies the administrator credential. It is an interface
// so tests can substitute fixtures and deployments can move the secret
// elsewhere without touching the auth service.
type CredentialSource interface {
	VerifyAdmin(username, password string) bool
	AdminUsername() string
}

type configCredentialSource struct {
	username string
	hash     []byte
}

// NewConfigCredentialSource hashes the configured admin password once at
// startup; the plaintext is not retained.
func NewConfigCredentialSource(username, password string) (CredentialSource, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &configCredentialSource{username: username, hash: hash}, nil
}

func (c *configCredentialSource) VerifyAdmin(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := bcrypt.CompareHashAndPassword(c.hash, []byte(password)) == nil
	return userOK && passOK
}

func (c *configCredentialSource) AdminUsername() string {
	return c.username
}
