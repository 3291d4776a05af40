package user

import (
	"file-vault-api/internal/domain/user"
)

// HashMask replaces the bcrypt hash in every outbound user view.
const HashMask = "********"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:           uint64(uDomain.ID),
		Username:     uDomain.Username,
		PasswordHash: HashMask,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}
