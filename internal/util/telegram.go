package util

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// TelegramUser is the identity payload Telegram embeds in the web-view
// init data. Field names follow the Telegram Web Apps wire format.
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

var (
	ErrNoHash       = errors.New("init data has no hash")
	ErrHashMismatch = errors.New("init data hash mismatch")
	ErrNoUser       = errors.New("init data has no user payload")
)

// ValidateInitData verifies the signature Telegram puts on web-app init
// data and returns the embedded user. The secret key is
// HMAC-SHA256("WebAppData", botToken); the data-check-string is every
// field except hash, rendered as k=v, sorted lexicographically and joined
// with newlines.
func ValidateInitData(initData, botToken string) (*TelegramUser, error) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, fmt.Errorf("parse init data: %w", err)
	}

	gotHash := values.Get("hash")
	if gotHash == "" {
		return nil, ErrNoHash
	}
	values.Del("hash")

	pairs := make([]string, 0, len(values))
	for key, vals := range values {
		for _, v := range vals {
			pairs = append(pairs, key+"="+v)
		}
	}
	sort.Strings(pairs)
	checkString := strings.Join(pairs, "\n")

	if !hmac.Equal([]byte(SignInitData(checkString, botToken)), []byte(gotHash)) {
		return nil, ErrHashMismatch
	}

	raw := values.Get("user")
	if raw == "" {
		return nil, ErrNoUser
	}
	var user TelegramUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode user payload: %w", err)
	}
	return &user, nil
}

// SignInitData computes the hex signature for an already-built
// data-check-string.
func SignInitData(checkString, botToken string) string {
	mac := hmac.New(sha256.New, []byte("WebAppData"))
	mac.Write([]byte(botToken))
	secret := mac.Sum(nil)

	mac = hmac.New(sha256.New, secret)
	mac.Write([]byte(checkString))
	return hex.EncodeToString(mac.Sum(nil))
}
