package validator

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"file-vault-api/internal/interface/api/rest/dto/auth"
	"file-vault-api/internal/interface/api/rest/dto/user"
)

const (
	maxUsernameLen = 25
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

func IsID(s string) (bool, uint64) {
	id, err := strconv.ParseUint(s, 10, 64)
	return err == nil && id > 0, id
}

func ValidateNewUser(r user.Request) map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)
	password := r.Password

	if username == "" {
		errs["username"] = "username is required"
	} else if utf8.RuneCountInString(username) > maxUsernameLen {
		errs["username"] = "username length must be at most 25 characters"
	}

	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateVerify checks presence only. Anything beyond that must come
// back as a NotVerified result, not a validation error, so length rules
// do not apply here.
func ValidateVerify(r auth.VerifyRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
