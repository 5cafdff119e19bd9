package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/resi/internal/domain/errors"
	"github.com/polkiloo/resi/internal/domain/model"
	"github.com/polkiloo/resi/internal/server/http/dto"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Body request tidak valid")
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrPasswordTooLong):
			respondMessage(c, http.StatusBadRequest, "Password maksimal 72 byte")
		case errors.Is(err, domainErrors.ErrValidation):
			respondMessage(c, http.StatusBadRequest, "Email dan password wajib diisi")
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			respondMessage(c, http.StatusBadRequest, "Email sudah terdaftar")
		default:
			internalError(c, h.logger, "register", err)
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{Message: "Registrasi berhasil", User: toUserResponse(user)})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Body request tidak valid")
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			respondMessage(c, http.StatusBadRequest, "Email atau password salah")
		default:
			internalError(c, h.logger, "login", err)
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Message: "Login berhasil", Token: token, User: toUserResponse(user)})
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
