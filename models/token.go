package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a session token. It embeds the parsed [jwt.Token] and the standard
// claim set, and caches the compact serialized form plus the owner's ID so
// callers do not re-read claims on every use.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact JWS form, ready for an Authorization header.
	SignedString string `json:"-"`

	// UserID caches the sub claim.
	UserID string `json:"-"`
}

// GetUserID reads the sub claim; empty subjects are an error because every
// vault operation is scoped to an owner.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", errors.New("token subject is empty")
	}

	return userID, nil
}

// String returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
