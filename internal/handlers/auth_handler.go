package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/auth"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	users  *repository.UserGormRepository
	issuer *auth.TokenIssuer
	emails validators.EmailChecker
	log    *zap.Logger
}

func NewAuthHandler(
	users *repository.UserGormRepository,
	issuer *auth.TokenIssuer,
	emails validators.EmailChecker,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer, emails: emails, log: log}
}

// --------- Handlers ---------

// Register always creates an owner; admins only come from the bootstrap config.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emails.Valid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	user := models.User{
		Nombre:       strings.TrimSpace(req.Nombre),
		Email:        email,
		PasswordHash: hashed,
		Telefono:     strings.TrimSpace(req.Telefono),
		Rol:          models.RoleOwner,
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		writeError(c, h.log, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, "User registered", &user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Email or password is wrong.")
			return
		}
		writeError(c, h.log, err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		httperr.Unauthorized(c, "invalid_credentials", "Email or password is wrong.")
		return
	}

	h.respondWithToken(c, http.StatusOK, "Login successful", user)
}

// GET /api/users/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), middleware.ActorFrom(c).UserID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /api/debug/whoami
func (h *AuthHandler) WhoAmI(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"user": gin.H{
			"_id":   actor.UserID,
			"email": c.GetString(middleware.ContextUserEmail),
			"rol":   actor.Role,
		},
	})
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, message string, user *models.User) {
	token, err := h.issuer.Issue(user)
	if err != nil {
		h.log.Error("token issue failed", zap.String("user_id", user.ID), zap.Error(err))
		httperr.Internal(c, "failed_to_generate_token", "Could not create a session token.")
		return
	}

	c.JSON(status, dto.AuthResponse{
		Message: message,
		Token:   token,
		User:    dto.NewUserSummary(user),
	})
}
