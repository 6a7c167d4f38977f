// internal/handlers/class_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/service"
	"go_5_flashcard_keep/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ClassHandler struct {
	service service.ClassService
	logger  *slog.Logger
}

func NewClassHandler(s service.ClassService, logger *slog.Logger) *ClassHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClassHandler{
		service: s,
		logger:  logger,
	}
}

// PostClass は新しいクラスリソースを作成するためのハンドラ
func (h *ClassHandler) PostClass(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostClass"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	var req model.PostClassRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()), slog.Any("request", req))
			firstErr := validationErrors[0]
			appErr := model.NewAppError("VALIDATION_ERROR", firstErr.Translate(webutil.Trans), firstErr.Field(), model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	class, err := h.service.PostClass(r.Context(), tenantID, &req)
	if err != nil {
		logger.Error("Error posting class in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Class posted successfully", slog.String("class_id", class.ClassID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, class, logger)
}

// GetClasses はクラスリソースの一覧を取得するためのハンドラ
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetClasses"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	classes, err := h.service.GetClasses(r.Context(), tenantID)
	if err != nil {
		logger.Error("Error listing classes in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if classes == nil {
		classes = []*model.Class{}
	}
	logger.Info("Classes listed successfully", slog.Int("count", len(classes)))
	webutil.RespondWithJSON(w, http.StatusOK, classes, logger)
}

// GetClass は特定のクラスリソースを取得するためのハンドラ
func (h *ClassHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetClass"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	classIDStr := chi.URLParam(r, "class_id")
	classID, err := uuid.Parse(classIDStr)
	if err != nil {
		logger.Warn("Invalid class ID format in URL", slog.String("class_id_str", classIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "class_idの形式が正しくありません。", "class_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("class_id", classID.String()))

	class, err := h.service.GetClass(r.Context(), tenantID, classID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Class not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting class from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Class retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, class, logger)
}

// PutClass は特定のクラスリソースを置き換えるためのハンドラ
func (h *ClassHandler) PutClass(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PutClass"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for PutClass", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	classIDStr := chi.URLParam(r, "class_id")
	classID, err := uuid.Parse(classIDStr)
	if err != nil {
		logger.Warn("Invalid class ID format in URL for PutClass", slog.String("class_id_str", classIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "class_idの形式が正しくありません。", "class_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("class_id", classID.String()))

	var req model.PutClassRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode PutClass request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for PutClass", slog.Any("errors", validationErrors.Error()))
			firstErr := validationErrors[0]
			appErr := model.NewAppError("VALIDATION_ERROR", firstErr.Translate(webutil.Trans), firstErr.Field(), model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for PutClass", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	class, err := h.service.PutClass(r.Context(), tenantID, classID, &req)
	if err != nil {
		logger.Error("Error putting class in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Class put successfully")
	webutil.RespondWithJSON(w, http.StatusOK, class, logger)
}

// DeleteClass は特定のクラスリソースを削除するためのハンドラ。
// 配下の講義とカードも論理削除される
func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteClass"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeleteClass", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	classIDStr := chi.URLParam(r, "class_id")
	classID, err := uuid.Parse(classIDStr)
	if err != nil {
		logger.Warn("Invalid class ID format in URL for DeleteClass", slog.String("class_id_str", classIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "class_idの形式が正しくありません。", "class_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("class_id", classID.String()))

	err = h.service.DeleteClass(r.Context(), tenantID, classID)
	if err != nil {
		logger.Error("Error deleting class in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Class deleted successfully (or was already deleted)")
	w.WriteHeader(http.StatusNoContent)
}
