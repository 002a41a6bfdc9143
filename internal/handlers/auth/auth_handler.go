// internal/handlers/auth/auth_handler.go
package auth

import (
	"context"
	"net/http"

	domain "rxautos-service/internal/domain/account"
	"rxautos-service/internal/forms"
	"rxautos-service/internal/middleware"
	xerrors "rxautos-service/internal/pkg/errors"
	"rxautos-service/internal/pkg/response"
	authUsecase "rxautos-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *authUsecase.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *authUsecase.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// ========== Registration ==========

// Register handles user registration (public endpoint)
func (h *AuthHandler) Register(c *gin.Context) {
	var req forms.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	pipe := forms.NewPipeline(forms.KindSignup)
	var opErr error
	ok := pipe.Submit(c.Request.Context(),
		func() map[string]string { return forms.ValidateSignup(req) },
		func(ctx context.Context) error {
			_, opErr = h.authService.SignUp(ctx, req.Email, req.Password, req.Name)
			return opErr
		},
	)
	if !ok {
		if fields := pipe.FieldErrors(); len(fields) > 0 {
			response.ValidationError(c, "dados inválidos", fields)
			return
		}
		if pipe.EmailExists() {
			response.Error(c, http.StatusConflict, authUsecase.MsgEmailTaken, xerrors.ErrDuplicateEntry)
			return
		}
		h.logger.Error("registration failed",
			zap.String("email", req.Email),
			zap.Error(opErr),
		)
		response.Error(c, http.StatusBadGateway, pipe.GeneralError(), nil)
		return
	}

	response.Success(c, http.StatusCreated, "cadastro realizado com sucesso", nil)
}

// ========== Login ==========

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req forms.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	ip := c.ClientIP()
	pipe := forms.NewPipeline(forms.KindLogin)
	var session *domain.Session
	var opErr error
	ok := pipe.Submit(c.Request.Context(),
		func() map[string]string { return forms.ValidateLogin(req) },
		func(ctx context.Context) error {
			session, opErr = h.authService.SignIn(ctx, ip, req.Email, req.Password)
			return opErr
		},
	)
	if !ok {
		if fields := pipe.FieldErrors(); len(fields) > 0 {
			response.ValidationError(c, "dados inválidos", fields)
			return
		}
		h.logger.Warn("login failed",
			zap.String("email", req.Email),
			zap.String("ip", ip),
			zap.Error(opErr),
		)
		switch {
		case xerrors.Is(opErr, xerrors.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, pipe.GeneralError(), nil)
		case xerrors.Is(opErr, xerrors.ErrUnauthorized):
			response.Error(c, http.StatusUnauthorized, pipe.GeneralError(), nil)
		default:
			response.Error(c, http.StatusBadGateway, pipe.GeneralError(), nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "login realizado com sucesso", session)
}

// ========== Logout ==========

// Logout revokes the current session (requires auth)
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.MustGetToken(c)

	if err := h.authService.SignOut(c.Request.Context(), token); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, "logout realizado com sucesso", nil)
}

// ========== Password Management ==========

// ForgotPassword asks the account service to send a recovery email
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}
	if errs := forms.ValidateLogin(forms.LoginInput{Email: req.Email, Password: "-"}); !forms.Valid(errs) {
		response.ValidationError(c, "dados inválidos", errs)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Email); err != nil {
		response.Error(c, http.StatusBadGateway, err.Error(), nil)
		return
	}

	response.Success(c, http.StatusOK, "email de recuperação enviado", nil)
}

// ========== Current User ==========

// Me returns the user behind the session token (requires auth)
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	response.Success(c, http.StatusOK, "user retrieved", gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName(),
	})
}
