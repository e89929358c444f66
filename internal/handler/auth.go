package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/failure"
	"github.com/gahette/judo-library/internal/httperr"
	"github.com/gahette/judo-library/internal/service"
)

type AuthHandler interface {
	Login(c *gin.Context)
}

type authHandler struct {
	auth   *service.AuthService
	errs   *httperr.Writer
	logger *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, errs *httperr.Writer, logger *zap.Logger) AuthHandler {
	return &authHandler{auth: auth, errs: errs, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Write(c, failure.ErrBadCredentials)
		return
	}

	token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
