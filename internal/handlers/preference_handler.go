package handlers

import (
	"errors"
	"net/http"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/service"
	"go_5_flashcard_keep/internal/webutil"

	"github.com/go-playground/validator/v10"
)

type PreferenceHandler struct {
	service service.PreferenceService
}

func NewPreferenceHandler(s service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: s}
}

// GetPreferences はテナントのスケジューリング設定を返します。
// 設定が未作成の場合はデフォルト値で払い出してから返す
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	prefs, err := h.service.GetPreferences(r.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to get scheduling preferences", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, prefs, logger)
}

// PatchPreferences はスケジューリング設定の一部を更新します。
// nil のフィールドは変更されない
func (h *PreferenceHandler) PatchPreferences(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.PatchPreferenceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode preference request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for preference update", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for preference update", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	prefs, err := h.service.PatchPreferences(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Failed to patch scheduling preferences", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Scheduling preferences updated")
	webutil.RespondWithJSON(w, http.StatusOK, prefs, logger)
}
