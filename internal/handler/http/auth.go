package http

import (
	"encoding/json"
	"net/http"

	"github.com/peoplecore/hrm-backend-go/internal/domain/user"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore/hrm-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	AdminResetPassword(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService user.AuthService
}

func NewAuthHandler(authService user.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ChangePassword implements AuthHandler.
func (h *authHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req user.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = middleware.UserID(r)

	if err := h.authService.ChangePassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Password updated", nil)
}

// AdminResetPassword implements AuthHandler.
func (h *authHandlerImpl) AdminResetPassword(w http.ResponseWriter, r *http.Request) {
	var req user.AdminResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AdminID = middleware.UserID(r)

	tempPassword, err := h.authService.AdminResetPassword(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Password reset", map[string]string{"tempPassword": tempPassword})
}

// Me implements AuthHandler.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	usr, err := h.authService.Me(r.Context(), middleware.UserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]interface{}{
		"id":                usr.ID,
		"username":          usr.Username,
		"role":              usr.Role,
		"mustResetPassword": usr.MustResetPassword,
	})
}
