package archive

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Admin holds the single admin account allowed to modify the archive.
type Admin struct {
	Email        string
	PasswordHash string
}

// Session is what a successful authentication returns.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
}

// Authenticate checks the credentials against the configured admin.
// Every mismatch produces the same message.
func (a Admin) Authenticate(email, password string) (*Session, error) {
	denied := invalid("Invalid credentials")
	if a.Email == "" || a.PasswordHash == "" {
		return nil, denied
	}

	email = strings.TrimSpace(email)
	emailOK := subtle.ConstantTimeCompare([]byte(strings.ToLower(email)), []byte(strings.ToLower(a.Email))) == 1
	passwordOK := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
	if !emailOK || !passwordOK {
		return nil, denied
	}

	return &Session{Authenticated: true, Email: email}, nil
}

// HashPassword returns the bcrypt hash to put in auth.admin_password_hash.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
