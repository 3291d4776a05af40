package user

type (
	ID   uint64
	User struct {
		ID           ID
		Username     string
		PasswordHash string
	}
	Users []*User
)
