// Package auth keeps the TMDB access token in the system keyring.
package auth

import (
	"errors"

	"github.com/cinebox-cli/cinebox/constant"
	"github.com/zalando/go-keyring"
)

const user = "tmdb-token"

// ErrNoToken is returned when the keyring holds no token for cinebox.
var ErrNoToken = errors.New("no TMDB token stored in the keyring")

// SetAPIKey stores the token, replacing any previous one.
func SetAPIKey(token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	return keyring.Set(constant.Cinebox, user, token)
}

// GetAPIKey returns the stored token or ErrNoToken.
func GetAPIKey() (string, error) {
	token, err := keyring.Get(constant.Cinebox, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNoToken
	}
	return token, err
}

// DeleteAPIKey removes the stored token. Removing a missing token is not an error.
func DeleteAPIKey() error {
	err := keyring.Delete(constant.Cinebox, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
