package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/school-erp/internal/application"
	"github.com/oksasatya/school-erp/internal/domain/entity"
	"github.com/oksasatya/school-erp/pkg/response"
	"github.com/oksasatya/school-erp/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Username   string `json:"username" binding:"required,handle"`
	Password   string `json:"password" binding:"required"`
	ProfilePic string `json:"profilePic"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastname"`
	MobileNo   string `json:"mobileNo"`
	Address    string `json:"address"`
	IsActive   bool   `json:"isActive"`
}

type updateUserRequest struct {
	Password   string  `json:"password"`
	ProfilePic *string `json:"profilePic"`
	Email      *string `json:"email"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastname"`
	MobileNo   *string `json:"mobileNo"`
	Address    *string `json:"address"`
	IsActive   *bool   `json:"isActive"`
}

// userResponse never carries the password hash.
type userResponse struct {
	UserID     int64     `json:"userId"`
	Username   string    `json:"username"`
	ProfilePic string    `json:"profilePic"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastname"`
	MobileNo   string    `json:"mobileNo"`
	Address    string    `json:"address"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		UserID:     u.ID,
		Username:   u.Username,
		ProfilePic: u.ProfilePic,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MobileNo:   u.MobileNo,
		Address:    u.Address,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func userID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return 0, false
	}
	return id, true
}

func (h *UserHandler) writeErr(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, application.ErrUserNotFound):
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, application.ErrUsernameTaken):
		response.Error[any](c, http.StatusConflict, "username already exists", nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "error "+action+" user", nil)
	}
}

// Create POST /api/user
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(c.Request.Context(), application.CreateUserInput{
		Username:   req.Username,
		Password:   req.Password,
		ProfilePic: req.ProfilePic,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MobileNo:   req.MobileNo,
		Address:    req.Address,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.writeErr(c, err, "creating")
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u), "user created", nil)
}

// List GET /api/user
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.writeErr(c, err, "listing")
		return
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	response.Success(c, http.StatusOK, out, "users", nil)
}

// Get GET /api/user/:userId
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.writeErr(c, err, "getting")
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user", nil)
}

// Update PUT /api/user/:userId
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(c.Request.Context(), id, application.UpdateUserInput{
		Password:   req.Password,
		ProfilePic: req.ProfilePic,
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MobileNo:   req.MobileNo,
		Address:    req.Address,
		IsActive:   req.IsActive,
	})
	if err != nil {
		h.writeErr(c, err, "updating")
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user updated", nil)
}

// Delete DELETE /api/user/:userId
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.writeErr(c, err, "deleting")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, "User deleted successfully", nil)
}
