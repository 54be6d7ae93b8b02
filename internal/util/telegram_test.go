package util

import (
	"errors"
	"net/url"
	"sort"
	"strings"
	"testing"
)

const testBotToken = "12345:TEST-TOKEN"

// signedInitData builds init data the way the Telegram client would: the
// query fields plus a hash over the sorted k=v pairs.
func signedInitData(t *testing.T, fields map[string]string) string {
	t.Helper()

	pairs := make([]string, 0, len(fields))
	for k, v := range fields {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	hash := SignInitData(strings.Join(pairs, "\n"), testBotToken)

	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}
	values.Set("hash", hash)
	return values.Encode()
}

func TestValidateInitData_Valid(t *testing.T) {
	initData := signedInitData(t, map[string]string{
		"auth_date": "1700000000",
		"query_id":  "AAE1",
		"user":      `{"id":987654321,"first_name":"Вера","last_name":"К","username":"vera_k","photo_url":"https://t.me/i/userpic/320/vera.jpg"}`,
	})

	user, err := ValidateInitData(initData, testBotToken)
	if err != nil {
		t.Fatalf("ValidateInitData() error = %v, want nil", err)
	}
	if user.ID != 987654321 {
		t.Errorf("user.ID = %d, want 987654321", user.ID)
	}
	if user.FirstName != "Вера" {
		t.Errorf("user.FirstName = %q, want %q", user.FirstName, "Вера")
	}
	if user.Username != "vera_k" {
		t.Errorf("user.Username = %q, want %q", user.Username, "vera_k")
	}
}

func TestValidateInitData_WrongBotToken(t *testing.T) {
	initData := signedInitData(t, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":1,"first_name":"A"}`,
	})

	_, err := ValidateInitData(initData, "54321:OTHER-TOKEN")
	if !errors.Is(err, ErrHashMismatch) {
		t.Errorf("ValidateInitData() error = %v, want ErrHashMismatch", err)
	}
}

func TestValidateInitData_TamperedField(t *testing.T) {
	initData := signedInitData(t, map[string]string{
		"auth_date": "1700000000",
		"user":      `{"id":1,"first_name":"A"}`,
	})
	tampered := strings.Replace(initData, "1700000000", "1700000001", 1)

	_, err := ValidateInitData(tampered, testBotToken)
	if !errors.Is(err, ErrHashMismatch) {
		t.Errorf("ValidateInitData() error = %v, want ErrHashMismatch", err)
	}
}

func TestValidateInitData_MissingHash(t *testing.T) {
	_, err := ValidateInitData("auth_date=1700000000&user=%7B%22id%22%3A1%7D", testBotToken)
	if !errors.Is(err, ErrNoHash) {
		t.Errorf("ValidateInitData() error = %v, want ErrNoHash", err)
	}
}

func TestValidateInitData_MissingUser(t *testing.T) {
	initData := signedInitData(t, map[string]string{
		"auth_date": "1700000000",
	})

	_, err := ValidateInitData(initData, testBotToken)
	if !errors.Is(err, ErrNoUser) {
		t.Errorf("ValidateInitData() error = %v, want ErrNoUser", err)
	}
}
