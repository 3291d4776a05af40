package user

type (
	User struct {
		ID       uint64 `json:"id"`
		Username string `json:"username"`
		// always the mask, never the stored hash
		PasswordHash string `json:"password_hash"`
	}
	Users        []User
	ResponseData struct {
		Data Users `json:"data"`
	}
)
