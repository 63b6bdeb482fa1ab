package handler

import (
	"net/http"

	model "player-auction/internal/models"
	"player-auction/services/auction/helpers"
	"player-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service AuthServiceInterface
}

func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// AdminAuthHandler handles POST /api/admin/auth with action register or login
func (h *AuthHandler) AdminAuthHandler(c *gin.Context) {
	const name = "AdminAuthHandler"

	var req helpers.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	switch req.Action {
	case helpers.ActionRegister:
		admin, err := h.service.RegisterAdmin(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			helpers.RespondError(c, name, err, map[string]any{"username": req.Username})
			return
		}
		utils.JSONResponse(c, http.StatusCreated, helpers.AdminResponse{ID: admin.ID, Username: admin.Username}, "admin registered successfully")
		helpers.LogSuccess(name, "admin registered", map[string]any{"admin_id": admin.ID})

	case helpers.ActionLogin:
		h.login(c, name, model.RoleAdmin, req)

	default:
		helpers.HandleInvalidAction(c, name, req.Action)
	}
}

// BuyerAuthHandler handles POST /api/buyer/auth with action register or login
func (h *AuthHandler) BuyerAuthHandler(c *gin.Context) {
	const name = "BuyerAuthHandler"

	var req helpers.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, name, err)
		return
	}

	switch req.Action {
	case helpers.ActionRegister:
		buyer, err := h.service.RegisterBuyer(c.Request.Context(), req.Username, req.Password, req.TeamName)
		if err != nil {
			helpers.RespondError(c, name, err, map[string]any{"username": req.Username})
			return
		}
		resp := helpers.BuyerResponse{ID: buyer.ID, Username: buyer.Username, TeamName: buyer.TeamName}
		utils.JSONResponse(c, http.StatusCreated, resp, "buyer registered successfully")
		helpers.LogSuccess(name, "buyer registered", map[string]any{"buyer_id": buyer.ID, "team_name": buyer.TeamName})

	case helpers.ActionLogin:
		h.login(c, name, model.RoleBuyer, req)

	default:
		helpers.HandleInvalidAction(c, name, req.Action)
	}
}

func (h *AuthHandler) login(c *gin.Context, name string, role model.Role, req helpers.AuthRequest) {
	var (
		token string
		err   error
	)
	if role == model.RoleAdmin {
		token, err = h.service.LoginAdmin(c.Request.Context(), req.Username, req.Password)
	} else {
		token, err = h.service.LoginBuyer(c.Request.Context(), req.Username, req.Password)
	}
	if err != nil {
		helpers.RespondError(c, name, err, map[string]any{"username": req.Username})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.TokenResponse{Token: token}, "login successful")
	helpers.LogSuccess(name, "login successful", map[string]any{"username": req.Username, "role": role})
}
