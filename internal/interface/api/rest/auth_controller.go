package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-vault-api/internal/application/ports"
	"file-vault-api/internal/interface/api/rest/dto/auth"
	"file-vault-api/internal/interface/api/rest/validator"
)

const (
	StatusVerified    = "Verified"
	StatusNotVerified = "NotVerified"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
	}

	r.POST(RouteVerify, ac.VerifyHandler)

	return ac
}

// VerifyHandler answers 200 for both outcomes. An unknown user and a
// wrong password produce the same response shape, so nothing about
// account existence leaks through the status code or body.
func (ac *AuthController) VerifyHandler(c *gin.Context) {
	var req auth.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateVerify(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	verified, err := ac.userService.VerifyCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to verify credentials"},
		)
		ac.logger.Error("VerifyCredentials() error", zap.Error(err))
		return
	}

	status := StatusNotVerified
	if verified {
		status = StatusVerified
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}
