package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/failure"
	"github.com/gahette/judo-library/internal/httperr"
	"github.com/gahette/judo-library/internal/models"
	"github.com/gahette/judo-library/internal/service"
)

type UserHandler interface {
	GetAll(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Untrash(c *gin.Context)
	Trash(c *gin.Context)
	Delete(c *gin.Context)
}

type userHandler struct {
	users  *service.UserService
	errs   *httperr.Writer
	logger *zap.Logger
}

func NewUserHandler(users *service.UserService, errs *httperr.Writer, logger *zap.Logger) UserHandler {
	return &userHandler{users: users, errs: errs, logger: logger}
}

// GetAll handles GET /users
func (h *userHandler) GetAll(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// Get handles GET /users/:id
func (h *userHandler) Get(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	user, err := h.users.Get(id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

type createUserRequest struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Pseudo    string `json:"pseudo"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Create handles PUT /users
func (h *userHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Write(c, failure.ErrMissingData)
		return
	}

	user := &models.User{
		LastName:  req.LastName,
		FirstName: req.FirstName,
		Pseudo:    req.Pseudo,
		Email:     req.Email,
		Password:  req.Password,
	}
	if err := h.users.Create(user); err != nil {
		h.errs.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User Created", "data": user})
}

// Update handles PATCH /users/:id
func (h *userHandler) Update(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	var req service.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.Write(c, failure.ErrMissingData)
		return
	}

	if err := h.users.Update(id, req); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User Updated"})
}

// Untrash handles POST /users/untrash/:id
func (h *userHandler) Untrash(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	if err := h.users.Untrash(id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Trash handles DELETE /users/trash/:id
func (h *userHandler) Trash(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	if err := h.users.Trash(id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /users/:id, removing the row for good.
func (h *userHandler) Delete(c *gin.Context) {
	id, err := paramID(c)
	if err != nil {
		h.errs.Write(c, err)
		return
	}

	if err := h.users.Purge(id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
