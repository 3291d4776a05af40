package user

type (
	User struct {
		ID           uint64
		Username     string
		PasswordHash string
	}
	Users []*User
)
