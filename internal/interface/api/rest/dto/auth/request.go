package auth

type VerifyRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
