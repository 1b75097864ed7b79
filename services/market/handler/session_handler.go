package handler

import (
	"fmt"
	"net/http"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/services/market/helpers"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	service SessionServiceInterface
}

func NewSessionHandler(service SessionServiceInterface) *SessionHandler {
	return &SessionHandler{service: service}
}

// LoginHandler handles POST /session/login
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Login(req.Role, req.Identifier, req.Password)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", err, map[string]any{"identifier": req.Identifier})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewSessionResponse(user), "logged in")
	helpers.LogSuccess("LoginHandler", "logged in", map[string]any{"user_id": user.ID})
}

// RegisterHandler handles POST /session/register
func (h *SessionHandler) RegisterHandler(c *gin.Context) {
	var req model.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(req)
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", err, map[string]any{"username": req.Username})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, helpers.NewSessionResponse(user), "account created")
	helpers.LogSuccess("RegisterHandler", "account created", map[string]any{"user_id": user.ID})
}

// LogoutHandler handles POST /session/logout
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	h.service.Logout()
	utils.JSONResponse(c, http.StatusOK, nil, "logged out")
}

// CurrentHandler handles GET /session
func (h *SessionHandler) CurrentHandler(c *gin.Context) {
	user, ok := h.service.Current()
	if !ok {
		helpers.HandleServiceError(c, "CurrentHandler", fmt.Errorf("session: %w", marketerrors.ErrNotAuthenticated), nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewSessionResponse(user), "session retrieved successfully")
}

// UpdateUserHandler handles PATCH /session/user
func (h *SessionHandler) UpdateUserHandler(c *gin.Context) {
	var upd model.UserUpdate
	if err := helpers.BindStrict(c, &upd); err != nil {
		helpers.HandleServiceError(c, "UpdateUserHandler", err, nil)
		return
	}

	user, err := h.service.UpdateUser(upd)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateUserHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewSessionResponse(user), "profile updated")
}

// TopUpHandler handles POST /session/wallet/topup
func (h *SessionHandler) TopUpHandler(c *gin.Context) {
	var req helpers.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "TopUpHandler", err)
		return
	}

	user, err := h.service.TopUpWallet(req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "TopUpHandler", err, map[string]any{"amount": req.Amount})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.NewSessionResponse(user), "wallet topped up")
	helpers.LogSuccess("TopUpHandler", "wallet topped up", map[string]any{"user_id": user.ID, "amount": req.Amount})
}

// AuthCodeHandler handles POST /session/auth-code
func (h *SessionHandler) AuthCodeHandler(c *gin.Context) {
	var req helpers.AuthCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AuthCodeHandler", err)
		return
	}

	code, err := h.service.RequestAuthCode(req.Identifier)
	if err != nil {
		helpers.HandleServiceError(c, "AuthCodeHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.AuthCodeResponse{Identifier: req.Identifier, Code: code}, "code sent")
}
