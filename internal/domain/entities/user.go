package entities

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/domain/apperrors"
)

type User struct {
	ID           uint
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string
	PasswordHash string
}

// NewUser trims the username and carries the plaintext password in
// PasswordHash only until HashPassword runs. The ID is assigned by the
// store on create.
func NewUser(username, password string) *User {
	now := time.Now()
	return &User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Username:     strings.TrimSpace(username),
		PasswordHash: strings.TrimSpace(password),
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return apperrors.ErrValidation
	}
	if u.PasswordHash == "" {
		return apperrors.ErrValidation
	}
	return nil
}

// HashPassword replaces the plaintext held in PasswordHash with its bcrypt
// digest. Must be called exactly once, before the user is persisted.
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
