// internal/handlers/lecture_handler.go
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

type LectureHandler struct {
	service service.LectureService
	logger  *slog.Logger
}

func NewLectureHandler(s service.LectureService, logger *slog.Logger) *LectureHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LectureHandler{
		service: s,
		logger:  logger,
	}
}

// PostLecture はクラス配下に新しい講義リソースを作成するためのハンドラ
func (h *LectureHandler) PostLecture(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostLecture"))

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

	var req model.PostLectureRequest
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

	lecture, err := h.service.PostLecture(r.Context(), tenantID, classID, &req)
	if err != nil {
		logger.Error("Error posting lecture in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lecture posted successfully", slog.String("lecture_id", lecture.LectureID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, lecture, logger)
}

// GetLectures はクラス配下の講義リソースの一覧を取得するためのハンドラ
func (h *LectureHandler) GetLectures(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLectures"))

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

	lectures, err := h.service.GetLectures(r.Context(), tenantID, classID)
	if err != nil {
		logger.Error("Error listing lectures in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if lectures == nil {
		lectures = []*model.Lecture{}
	}
	logger.Info("Lectures listed successfully", slog.Int("count", len(lectures)))
	webutil.RespondWithJSON(w, http.StatusOK, lectures, logger)
}

// GetLecture は特定の講義リソースを取得するためのハンドラ
func (h *LectureHandler) GetLecture(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLecture"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	lectureIDStr := chi.URLParam(r, "lecture_id")
	lectureID, err := uuid.Parse(lectureIDStr)
	if err != nil {
		logger.Warn("Invalid lecture ID format in URL", slog.String("lecture_id_str", lectureIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "lecture_idの形式が正しくありません。", "lecture_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("lecture_id", lectureID.String()))

	lecture, err := h.service.GetLecture(r.Context(), tenantID, lectureID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Lecture not found in service", slog.Any("error", err))
		} else {
			logger.Error("Error getting lecture from service", slog.Any("error", err))
		}
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lecture retrieved successfully")
	webutil.RespondWithJSON(w, http.StatusOK, lecture, logger)
}

// DeleteLecture は特定の講義リソースを削除するためのハンドラ。
// 配下のカードは講義との紐付けだけが外れ、削除はされない
func (h *LectureHandler) DeleteLecture(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteLecture"))

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt for DeleteLecture", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("tenant_id", tenantID.String()))

	lectureIDStr := chi.URLParam(r, "lecture_id")
	lectureID, err := uuid.Parse(lectureIDStr)
	if err != nil {
		logger.Warn("Invalid lecture ID format in URL for DeleteLecture", slog.String("lecture_id_str", lectureIDStr), slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_URL_PARAM", "lecture_idの形式が正しくありません。", "lecture_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("lecture_id", lectureID.String()))

	err = h.service.DeleteLecture(r.Context(), tenantID, lectureID)
	if err != nil {
		logger.Error("Error deleting lecture in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Lecture deleted successfully (or was already deleted)")
	w.WriteHeader(http.StatusNoContent)
}
