package handlers

import (
	"net/http"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/service"
	"go_5_flashcard_keep/internal/webutil"
)

type PlanHandler struct {
	service service.PlanService
}

func NewPlanHandler(s service.PlanService) *PlanHandler {
	return &PlanHandler{service: s}
}

// GetNotificationPlan は当日の通知計画を計算して返します。
// 呼び出すたびに既存の未送信計画は破棄され、新しい計画で置き換えられる
func (h *PlanHandler) GetNotificationPlan(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	tenantID, err := middleware.GetTenantIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	plan, err := h.service.ComputeNotificationPlan(r.Context(), tenantID)
	if err != nil {
		logger.Error("Failed to compute notification plan", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if plan.ConfigWarning != "" {
		logger.Warn("Notification plan degraded by configuration", "warning", plan.ConfigWarning)
	} else {
		logger.Info("Notification plan computed", "batches", len(plan.Batches))
	}
	webutil.RespondWithJSON(w, http.StatusOK, plan, logger)
}
