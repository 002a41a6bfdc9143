// internal/handlers/profile/profile_handler.go
package profile

import (
	"context"
	"net/http"

	"rxautos-service/internal/forms"
	"rxautos-service/internal/middleware"
	"rxautos-service/internal/pkg/response"
	profileUsecase "rxautos-service/internal/service/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *profileUsecase.ProfileService
	logger         *zap.Logger
}

func NewProfileHandler(profileService *profileUsecase.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Get returns the user's profile form, masked for display (requires auth)
func (h *ProfileHandler) Get(c *gin.Context) {
	uid := middleware.MustGetUserID(c)
	token := middleware.MustGetToken(c)

	form, err := h.profileService.Load(c.Request.Context(), token, uid)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "failed to load profile", err)
		return
	}

	response.Success(c, http.StatusOK, "profile retrieved", form)
}

// Update saves the profile form and returns the persisted record (requires auth)
func (h *ProfileHandler) Update(c *gin.Context) {
	uid := middleware.MustGetUserID(c)
	token := middleware.MustGetToken(c)

	var req profileUsecase.Form
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	pipe := forms.NewPipeline(forms.KindProfile)
	var saved *profileUsecase.Form
	var opErr error
	ok := pipe.Submit(c.Request.Context(),
		func() map[string]string { return map[string]string{} },
		func(ctx context.Context) error {
			saved, opErr = h.profileService.Save(ctx, token, uid, &req)
			return opErr
		},
	)
	if !ok {
		h.logger.Error("profile save failed", zap.String("uid", uid), zap.Error(opErr))
		response.Error(c, http.StatusBadGateway, "failed to save profile", opErr)
		return
	}

	response.Success(c, http.StatusOK, "perfil salvo com sucesso", saved)
}
