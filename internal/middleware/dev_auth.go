// internal/middleware/dev_auth.go
package middleware

import (
	"context"
	"net/http"

	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/webutil"

	"github.com/google/uuid"
)

// DevTenantContextMiddleware は auth.enabled=false のときに使う開発用ミドルウェアです。
// X-Tenant-ID ヘッダーの値を検証なしでそのままテナントIDとして信用します。
// ヘッダー自体は必須 (テナント境界はローカルでも維持する)
func DevTenantContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		rawID := r.Header.Get("X-Tenant-ID")
		if rawID == "" {
			logger.Warn("Dev auth failed: X-Tenant-ID header missing")
			webutil.RespondWithError(w, http.StatusUnauthorized, "[DEV] Unauthorized: Missing X-Tenant-ID header")
			return
		}

		tenantID, err := uuid.Parse(rawID)
		if err != nil {
			logger.Warn("Dev auth failed: Invalid X-Tenant-ID format", "value", rawID)
			webutil.RespondWithError(w, http.StatusUnauthorized, "[DEV] Unauthorized: Invalid X-Tenant-ID format")
			return
		}

		logger.Debug("Dev auth: tenant taken from header without validation", "tenant_id", tenantID)
		ctx := context.WithValue(r.Context(), model.TenantIDKey, tenantID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
