package http

import (
	"net/http"

	"github.com/bunkops/bunk-backend-go/internal/domain/auth"
	"github.com/bunkops/bunk-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	RegisterStation(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// RegisterStation handles POST /auth/register-station
func (a *AuthHandlerImpl) RegisterStation(w http.ResponseWriter, r *http.Request) {
	var req auth.RegisterStationRequest
	if !decodeJSON(w, r, &req, "RegisterStation") {
		return
	}

	resp, err := a.authService.RegisterStation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Station registered successfully", resp)
}

// Login handles POST /auth/login
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if !decodeJSON(w, r, &req, "Login") {
		return
	}

	resp, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", resp)
}

// Me handles GET /auth/me
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	resp, err := a.authService.Me(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
