package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"formbuilder/internal/domains"
	"formbuilder/internal/httpx"
	"formbuilder/internal/service"
	"formbuilder/internal/storage"
)

type AuthHandlers struct {
	service AuthServices
}

type AuthServices interface {
	Register(ctx context.Context, admin domains.AdminRegister) error
	Login(ctx context.Context, email string, password string) (string, string, error)
	Refresh(ctx context.Context, token string) (string, string, error)
	Me(ctx context.Context, token string) (domains.Admin, error)
}

func NewAuthHandlers(service AuthServices) *AuthHandlers {
	return &AuthHandlers{
		service: service,
	}
}

func (srv AuthHandlers) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	adminData, err := httpx.ReadBody[domains.AdminRegister](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := srv.service.Register(r.Context(), adminData); err != nil {
		if errors.Is(err, storage.ErrUserExist) {
			httpx.Error(w, http.StatusConflict, "Admin already exists")
			return
		}
		slog.Error("register admin failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to register admin")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (srv AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginData, err := httpx.ReadBody[LoginData](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, refreshToken, err := srv.service.Login(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, service.PasswordIncorrect) || errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("login failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (srv AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	request, err := httpx.ReadBody[TokenRefreshRequest](r)
	if err != nil || request.RefreshToken == "" {
		httpx.Error(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	accessToken, refreshToken, err := srv.service.Refresh(r.Context(), request.RefreshToken)
	if err != nil {
		if errors.Is(err, service.TokenIncorrect) {
			httpx.Error(w, http.StatusUnauthorized, "Token is incorrect")
			return
		}
		slog.Error("refresh failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Failed to refresh tokens")
		return
	}

	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (srv AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	admin, err := srv.service.Me(r.Context(), tokenString)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	httpx.JSON(w, http.StatusOK, admin)
}
