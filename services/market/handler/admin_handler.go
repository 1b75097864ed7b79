package handler

import (
	"net/http"

	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/services/market/helpers"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	service AdminServiceInterface
}

func NewAdminHandler(service AdminServiceInterface) *AdminHandler {
	return &AdminHandler{service: service}
}

// ListUsersHandler handles GET /admin/users
func (h *AdminHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		helpers.HandleServiceError(c, "ListUsersHandler", err, nil)
		return
	}
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		out = append(out, helpers.PublicUser(u))
	}
	utils.JSONResponse(c, http.StatusOK, out, "users retrieved successfully")
}

// CreateUserHandler handles POST /admin/users
func (h *AdminHandler) CreateUserHandler(c *gin.Context) {
	var req model.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}
	user, err := h.service.CreateUser(req)
	if err != nil {
		helpers.HandleServiceError(c, "CreateUserHandler", err, map[string]any{"username": req.Username})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, helpers.PublicUser(user), "user created")
	helpers.LogSuccess("CreateUserHandler", "user created", map[string]any{"user_id": user.ID})
}

// UpdateUserHandler handles PATCH /admin/users/:id
func (h *AdminHandler) UpdateUserHandler(c *gin.Context) {
	userID := c.Param("id")
	var upd model.AdminUserUpdate
	if err := helpers.BindStrict(c, &upd); err != nil {
		helpers.HandleServiceError(c, "AdminUpdateUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	user, err := h.service.AdminUpdateUser(userID, upd)
	if err != nil {
		helpers.HandleServiceError(c, "AdminUpdateUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.PublicUser(user), "user updated")
}

// DeleteUserHandler handles DELETE /admin/users/:id
func (h *AdminHandler) DeleteUserHandler(c *gin.Context) {
	userID := c.Param("id")
	if err := h.service.DeleteUser(userID); err != nil {
		helpers.HandleServiceError(c, "DeleteUserHandler", err, map[string]any{"user_id": userID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": userID}, "user deleted")
	helpers.LogSuccess("DeleteUserHandler", "user deleted", map[string]any{"user_id": userID})
}
